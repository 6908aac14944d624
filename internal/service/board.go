package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/corkboardhq/corkd/internal/domain"
	"github.com/corkboardhq/corkd/internal/store"
)

var (
	ErrBoardNotFound  = errors.New("board does not exist")
	ErrStatusNotFound = errors.New("status does not exist")
	ErrTypeNotFound   = errors.New("type does not exist")
)

// BoardService is entity plumbing for boards and their status/type labels.
type BoardService struct {
	Store store.Store
}

// CreateBoard creates a board with admin as its owner and grants them the
// ADMIN role in the same transaction.
func (s *BoardService) CreateBoard(
	ctx context.Context,
	title string,
	admin domain.User,
) (domain.Board, error) {
	var board domain.Board

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		board, err = tx.Boards().CreateBoard(ctx, domain.Board{
			Title:   title,
			AdminID: admin.ID,
		})
		if err != nil {
			return err
		}

		return tx.Roles().UpsertAssignment(ctx, domain.RoleAssignment{
			BoardID: board.ID,
			UserID:  admin.ID,
			Role:    domain.RoleAdmin,
		})
	})
	if err != nil {
		return domain.Board{}, fmt.Errorf("create board: %w", err)
	}

	return board, nil
}

func (s *BoardService) GetBoard(ctx context.Context, boardID int64) (domain.Board, error) {
	board, err := s.Store.Boards().GetBoardByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Board{}, ErrBoardNotFound
		}
		return domain.Board{}, err
	}
	return board, nil
}

func (s *BoardService) ListBoards(ctx context.Context, userID int64) ([]domain.Board, error) {
	return s.Store.Boards().ListBoardsForUser(ctx, userID)
}

func (s *BoardService) DeleteBoard(ctx context.Context, boardID int64) error {
	if _, err := s.GetBoard(ctx, boardID); err != nil {
		return err
	}
	return s.Store.Boards().DeleteBoard(ctx, boardID)
}

// AddStatus adds a status label to the board. A duplicate name fails with
// store.ErrAlreadyExists.
func (s *BoardService) AddStatus(
	ctx context.Context,
	boardID int64,
	name string,
) (domain.Status, error) {
	if _, err := s.GetBoard(ctx, boardID); err != nil {
		return domain.Status{}, err
	}
	return s.Store.Boards().AddStatus(ctx, boardID, name)
}

// RemoveStatus deletes the status label and every item on the board that
// holds it.
func (s *BoardService) RemoveStatus(ctx context.Context, boardID int64, name string) error {
	if _, err := s.GetBoard(ctx, boardID); err != nil {
		return err
	}

	statuses, err := s.Store.Boards().ListStatuses(ctx, boardID)
	if err != nil {
		return err
	}

	for _, status := range statuses {
		if status.Name != name {
			continue
		}
		return s.Store.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Items().DeleteItemsByStatus(ctx, boardID, status.ID); err != nil {
				return err
			}
			_, err := tx.Boards().RemoveStatus(ctx, boardID, name)
			return err
		})
	}

	return ErrStatusNotFound
}

func (s *BoardService) AddType(
	ctx context.Context,
	boardID int64,
	name string,
) (domain.ItemType, error) {
	if _, err := s.GetBoard(ctx, boardID); err != nil {
		return domain.ItemType{}, err
	}
	return s.Store.Boards().AddType(ctx, boardID, name)
}

func (s *BoardService) RemoveType(ctx context.Context, typeID int64) error {
	removed, err := s.Store.Boards().RemoveType(ctx, typeID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrTypeNotFound
	}
	return nil
}

func (s *BoardService) ListStatuses(ctx context.Context, boardID int64) ([]domain.Status, error) {
	return s.Store.Boards().ListStatuses(ctx, boardID)
}

func (s *BoardService) ListTypes(ctx context.Context, boardID int64) ([]domain.ItemType, error) {
	return s.Store.Boards().ListTypes(ctx, boardID)
}
