package service

import (
	"context"
	"errors"

	"github.com/corkboardhq/corkd/internal/domain"
	"github.com/corkboardhq/corkd/internal/store"
)

// RolesService maintains the (board, user, role) assignment set and answers
// membership questions for it. It performs no caller authorization; the
// board-admin gate is enforced at the call site.
type RolesService struct {
	Store store.Store
}

// Assign grants role to the user on the board, replacing any role they
// already held there. Idempotent.
func (s *RolesService) Assign(
	ctx context.Context,
	boardID, userID int64,
	role domain.Role,
) (domain.RoleAssignment, error) {
	a := domain.RoleAssignment{BoardID: boardID, UserID: userID, Role: role}
	if err := s.Store.Roles().UpsertAssignment(ctx, a); err != nil {
		return domain.RoleAssignment{}, err
	}
	return a, nil
}

// Remove deletes the exact (board, user, role) grant. Removing an absent
// grant is a no-op, reported as false.
func (s *RolesService) Remove(
	ctx context.Context,
	boardID, userID int64,
	role domain.Role,
) (bool, error) {
	return s.Store.Roles().DeleteAssignment(ctx, domain.RoleAssignment{
		BoardID: boardID,
		UserID:  userID,
		Role:    role,
	})
}

// HasRole reports whether the user holds exactly this role on the board.
func (s *RolesService) HasRole(
	ctx context.Context,
	boardID, userID int64,
	role domain.Role,
) (bool, error) {
	a, err := s.Store.Roles().GetAssignment(ctx, boardID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return a.Role == role, nil
}

// RoleFor returns the user's role on the board, if any.
func (s *RolesService) RoleFor(
	ctx context.Context,
	boardID, userID int64,
) (domain.Role, bool, error) {
	a, err := s.Store.Roles().GetAssignment(ctx, boardID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return a.Role, true, nil
}

// ListAssignments returns every grant on the board.
func (s *RolesService) ListAssignments(
	ctx context.Context,
	boardID int64,
) ([]domain.RoleAssignment, error) {
	return s.Store.Roles().ListAssignments(ctx, boardID)
}
