package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/corkboardhq/corkd/internal/domain"
	"github.com/corkboardhq/corkd/internal/store"
)

var ErrItemNotFound = errors.New("item does not exist")

// ItemService is entity plumbing for items on a board.
type ItemService struct {
	Store store.Store
}

// CreateItemParams carries the optional fields an item can start with.
type CreateItemParams struct {
	BoardID     int64
	Title       string
	Description string
	StatusID    *int64
	TypeID      *int64
	AssigneeID  *int64
	DueDate     *time.Time
	Importance  int
}

// CreateItem validates that any referenced status/type belongs to the board
// before inserting.
func (s *ItemService) CreateItem(
	ctx context.Context,
	p CreateItemParams,
	creator domain.User,
) (domain.Item, error) {
	if _, err := s.Store.Boards().GetBoardByID(ctx, p.BoardID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Item{}, ErrBoardNotFound
		}
		return domain.Item{}, err
	}

	if err := s.checkStatus(ctx, p.BoardID, p.StatusID); err != nil {
		return domain.Item{}, err
	}
	if err := s.checkType(ctx, p.BoardID, p.TypeID); err != nil {
		return domain.Item{}, err
	}

	item, err := s.Store.Items().CreateItem(ctx, domain.Item{
		BoardID:     p.BoardID,
		Title:       p.Title,
		Description: p.Description,
		StatusID:    p.StatusID,
		TypeID:      p.TypeID,
		AssigneeID:  p.AssigneeID,
		CreatorID:   creator.ID,
		DueDate:     p.DueDate,
		Importance:  p.Importance,
	})
	if err != nil {
		return domain.Item{}, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

func (s *ItemService) GetItem(ctx context.Context, itemID int64) (domain.Item, error) {
	item, err := s.Store.Items().GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Item{}, ErrItemNotFound
		}
		return domain.Item{}, err
	}
	return item, nil
}

// FilterItems returns the board's items matching every set filter field.
func (s *ItemService) FilterItems(
	ctx context.Context,
	boardID int64,
	filter domain.ItemFilter,
) ([]domain.Item, error) {
	if _, err := s.Store.Boards().GetBoardByID(ctx, boardID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}
	return s.Store.Items().ListItems(ctx, boardID, filter)
}

// SetStatus moves the item to a status label of its board, or clears it.
func (s *ItemService) SetStatus(ctx context.Context, itemID int64, statusID *int64) (domain.Item, error) {
	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		return domain.Item{}, err
	}
	if err := s.checkStatus(ctx, item.BoardID, statusID); err != nil {
		return domain.Item{}, err
	}
	if err := s.Store.Items().UpdateItemStatus(ctx, itemID, statusID); err != nil {
		return domain.Item{}, err
	}
	item.StatusID = statusID
	return item, nil
}

// SetType assigns the item a type label of its board, or clears it.
func (s *ItemService) SetType(ctx context.Context, itemID int64, typeID *int64) (domain.Item, error) {
	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		return domain.Item{}, err
	}
	if err := s.checkType(ctx, item.BoardID, typeID); err != nil {
		return domain.Item{}, err
	}
	if err := s.Store.Items().UpdateItemType(ctx, itemID, typeID); err != nil {
		return domain.Item{}, err
	}
	item.TypeID = typeID
	return item, nil
}

// SetAssignee assigns the item to a user, or clears the assignment.
func (s *ItemService) SetAssignee(
	ctx context.Context,
	itemID int64,
	assigneeID *int64,
) (domain.Item, error) {
	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		return domain.Item{}, err
	}
	if assigneeID != nil {
		if _, err := s.Store.Users().GetUserByID(ctx, *assigneeID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Item{}, ErrUserNotFound
			}
			return domain.Item{}, err
		}
	}
	if err := s.Store.Items().UpdateItemAssignee(ctx, itemID, assigneeID); err != nil {
		return domain.Item{}, err
	}
	item.AssigneeID = assigneeID
	return item, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, itemID int64) error {
	if _, err := s.GetItem(ctx, itemID); err != nil {
		return err
	}
	return s.Store.Items().DeleteItem(ctx, itemID)
}

func (s *ItemService) checkStatus(ctx context.Context, boardID int64, statusID *int64) error {
	if statusID == nil {
		return nil
	}
	status, err := s.Store.Boards().GetStatusByID(ctx, *statusID)
	if err != nil || status.BoardID != boardID {
		return ErrStatusNotFound
	}
	return nil
}

func (s *ItemService) checkType(ctx context.Context, boardID int64, typeID *int64) error {
	if typeID == nil {
		return nil
	}
	t, err := s.Store.Boards().GetTypeByID(ctx, *typeID)
	if err != nil || t.BoardID != boardID {
		return ErrTypeNotFound
	}
	return nil
}
