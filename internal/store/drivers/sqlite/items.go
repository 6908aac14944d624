package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/corkboardhq/corkd/internal/domain"
)

type itemsRepo struct {
	db dbtx
}

const itemColumns = `id, board_id, title, description, status_id, type_id,
	assignee_id, creator_id, due_date, importance, created_at, updated_at`

func scanItem(row interface{ Scan(...any) error }) (domain.Item, error) {
	var it domain.Item
	var statusID, typeID, assigneeID sql.NullInt64
	var dueDate sql.NullTime

	err := row.Scan(
		&it.ID, &it.BoardID, &it.Title, &it.Description,
		&statusID, &typeID, &assigneeID,
		&it.CreatorID, &dueDate, &it.Importance,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return domain.Item{}, err
	}

	it.StatusID = int64Ptr(statusID)
	it.TypeID = int64Ptr(typeID)
	it.AssigneeID = int64Ptr(assigneeID)
	it.DueDate = timePtr(dueDate)
	return it, nil
}

func (r *itemsRepo) GetItemByID(ctx context.Context, id int64) (domain.Item, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id)

	it, err := scanItem(row)
	if err != nil {
		return domain.Item{}, mapNotFound(err)
	}
	return it, nil
}

func (r *itemsRepo) ListItems(
	ctx context.Context,
	boardID int64,
	filter domain.ItemFilter,
) ([]domain.Item, error) {
	clauses := []string{"board_id = ?"}
	args := []any{boardID}

	if filter.StatusID != nil {
		clauses = append(clauses, "status_id = ?")
		args = append(args, *filter.StatusID)
	}
	if filter.TypeID != nil {
		clauses = append(clauses, "type_id = ?")
		args = append(args, *filter.TypeID)
	}
	if filter.AssigneeID != nil {
		clauses = append(clauses, "assignee_id = ?")
		args = append(args, *filter.AssigneeID)
	}
	if filter.CreatorID != nil {
		clauses = append(clauses, "creator_id = ?")
		args = append(args, *filter.CreatorID)
	}
	if filter.Importance != nil {
		clauses = append(clauses, "importance = ?")
		args = append(args, *filter.Importance)
	}

	query := `SELECT ` + itemColumns + ` FROM items WHERE ` +
		strings.Join(clauses, " AND ") + ` ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *itemsRepo) CreateItem(ctx context.Context, it domain.Item) (domain.Item, error) {
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO items (board_id, title, description, status_id, type_id,
			assignee_id, creator_id, due_date, importance, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.BoardID, it.Title, it.Description,
		nullInt64(it.StatusID), nullInt64(it.TypeID), nullInt64(it.AssigneeID),
		it.CreatorID, nullTime(it.DueDate), it.Importance, now, now)
	if err != nil {
		return domain.Item{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Item{}, err
	}

	it.ID = id
	it.CreatedAt = now
	it.UpdatedAt = now
	return it, nil
}

func (r *itemsRepo) UpdateItemStatus(ctx context.Context, itemID int64, statusID *int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE items SET status_id = ?, updated_at = ? WHERE id = ?`,
		nullInt64(statusID), time.Now().UTC(), itemID)
	return err
}

func (r *itemsRepo) UpdateItemType(ctx context.Context, itemID int64, typeID *int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE items SET type_id = ?, updated_at = ? WHERE id = ?`,
		nullInt64(typeID), time.Now().UTC(), itemID)
	return err
}

func (r *itemsRepo) UpdateItemAssignee(ctx context.Context, itemID int64, assigneeID *int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE items SET assignee_id = ?, updated_at = ? WHERE id = ?`,
		nullInt64(assigneeID), time.Now().UTC(), itemID)
	return err
}

func (r *itemsRepo) DeleteItem(ctx context.Context, itemID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, itemID)
	return err
}

func (r *itemsRepo) DeleteItemsByStatus(ctx context.Context, boardID, statusID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM items WHERE board_id = ? AND status_id = ?`, boardID, statusID)
	return err
}
