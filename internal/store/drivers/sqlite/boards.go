package sqlite

import (
	"context"
	"time"

	"github.com/corkboardhq/corkd/internal/domain"
)

type boardsRepo struct {
	db dbtx
}

func (r *boardsRepo) GetBoardByID(ctx context.Context, id int64) (domain.Board, error) {
	var b domain.Board
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, admin_id, created_at, updated_at FROM boards WHERE id = ?`, id).
		Scan(&b.ID, &b.Title, &b.AdminID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return domain.Board{}, mapNotFound(err)
	}
	return b, nil
}

func (r *boardsRepo) ListBoardsForUser(ctx context.Context, userID int64) ([]domain.Board, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT b.id, b.title, b.admin_id, b.created_at, b.updated_at
		 FROM boards b
		 LEFT JOIN board_roles br ON br.board_id = b.id
		 WHERE b.admin_id = ? OR br.user_id = ?
		 ORDER BY b.id`,
		userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var boards []domain.Board
	for rows.Next() {
		var b domain.Board
		if err := rows.Scan(&b.ID, &b.Title, &b.AdminID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		boards = append(boards, b)
	}
	return boards, rows.Err()
}

func (r *boardsRepo) CreateBoard(ctx context.Context, b domain.Board) (domain.Board, error) {
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO boards (title, admin_id, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		b.Title, b.AdminID, now, now)
	if err != nil {
		return domain.Board{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Board{}, err
	}

	b.ID = id
	b.CreatedAt = now
	b.UpdatedAt = now
	return b, nil
}

func (r *boardsRepo) DeleteBoard(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, id)
	return err
}

func (r *boardsRepo) AddStatus(ctx context.Context, boardID int64, name string) (domain.Status, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO statuses (board_id, name) VALUES (?, ?)`, boardID, name)
	if err != nil {
		return domain.Status{}, mapConstraint(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Status{}, err
	}
	return domain.Status{ID: id, BoardID: boardID, Name: name}, nil
}

func (r *boardsRepo) RemoveStatus(ctx context.Context, boardID int64, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM statuses WHERE board_id = ? AND name = ?`, boardID, name)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *boardsRepo) ListStatuses(ctx context.Context, boardID int64) ([]domain.Status, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, board_id, name FROM statuses WHERE board_id = ? ORDER BY id`, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []domain.Status
	for rows.Next() {
		var s domain.Status
		if err := rows.Scan(&s.ID, &s.BoardID, &s.Name); err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}

func (r *boardsRepo) GetStatusByID(ctx context.Context, id int64) (domain.Status, error) {
	var s domain.Status
	err := r.db.QueryRowContext(ctx,
		`SELECT id, board_id, name FROM statuses WHERE id = ?`, id).
		Scan(&s.ID, &s.BoardID, &s.Name)
	if err != nil {
		return domain.Status{}, mapNotFound(err)
	}
	return s, nil
}

func (r *boardsRepo) AddType(ctx context.Context, boardID int64, name string) (domain.ItemType, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO item_types (board_id, name) VALUES (?, ?)`, boardID, name)
	if err != nil {
		return domain.ItemType{}, mapConstraint(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.ItemType{}, err
	}
	return domain.ItemType{ID: id, BoardID: boardID, Name: name}, nil
}

func (r *boardsRepo) RemoveType(ctx context.Context, typeID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM item_types WHERE id = ?`, typeID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *boardsRepo) ListTypes(ctx context.Context, boardID int64) ([]domain.ItemType, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, board_id, name FROM item_types WHERE board_id = ? ORDER BY id`, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.ItemType
	for rows.Next() {
		var t domain.ItemType
		if err := rows.Scan(&t.ID, &t.BoardID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *boardsRepo) GetTypeByID(ctx context.Context, id int64) (domain.ItemType, error) {
	var t domain.ItemType
	err := r.db.QueryRowContext(ctx,
		`SELECT id, board_id, name FROM item_types WHERE id = ?`, id).
		Scan(&t.ID, &t.BoardID, &t.Name)
	if err != nil {
		return domain.ItemType{}, mapNotFound(err)
	}
	return t, nil
}
