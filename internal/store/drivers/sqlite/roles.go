package sqlite

import (
	"context"

	"github.com/corkboardhq/corkd/internal/domain"
)

type rolesRepo struct {
	db dbtx
}

func (r *rolesRepo) UpsertAssignment(ctx context.Context, a domain.RoleAssignment) error {
	// Replace-on-assign: the PK on (board_id, user_id) keeps one role per
	// user per board.
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO board_roles (board_id, user_id, role) VALUES (?, ?, ?)
		 ON CONFLICT (board_id, user_id) DO UPDATE SET role = excluded.role`,
		a.BoardID, a.UserID, string(a.Role))
	return err
}

func (r *rolesRepo) DeleteAssignment(ctx context.Context, a domain.RoleAssignment) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM board_roles WHERE board_id = ? AND user_id = ? AND role = ?`,
		a.BoardID, a.UserID, string(a.Role))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *rolesRepo) GetAssignment(
	ctx context.Context,
	boardID, userID int64,
) (domain.RoleAssignment, error) {
	var a domain.RoleAssignment
	var role string
	err := r.db.QueryRowContext(ctx,
		`SELECT board_id, user_id, role FROM board_roles WHERE board_id = ? AND user_id = ?`,
		boardID, userID).
		Scan(&a.BoardID, &a.UserID, &role)
	if err != nil {
		return domain.RoleAssignment{}, mapNotFound(err)
	}
	a.Role = domain.Role(role)
	return a, nil
}

func (r *rolesRepo) ListAssignments(
	ctx context.Context,
	boardID int64,
) ([]domain.RoleAssignment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT board_id, user_id, role FROM board_roles WHERE board_id = ? ORDER BY user_id`,
		boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []domain.RoleAssignment
	for rows.Next() {
		var a domain.RoleAssignment
		var role string
		if err := rows.Scan(&a.BoardID, &a.UserID, &role); err != nil {
			return nil, err
		}
		a.Role = domain.Role(role)
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}
