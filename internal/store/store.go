package store

import (
	"context"
	"errors"

	"github.com/corkboardhq/corkd/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement it. Sub-repositories keep concerns tidy and let services
// depend on just the slice of persistence they use.
type Store interface {
	Users() Users
	Boards() Boards
	Items() Items
	Roles() Roles

	ApplyMigrations() error

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped Store.
type Tx interface {
	Users() Users
	Boards() Boards
	Items() Items
	Roles() Roles
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByEmail is used during login and duplicate-email checks.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user and returns it with the store-assigned
	// id. A duplicate email fails with ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	// UpdateName mutates the display name and bumps updated_at.
	UpdateName(ctx context.Context, userID int64, name string) error

	// DeleteUser removes a user. Boards they administer cascade away.
	DeleteUser(ctx context.Context, userID int64) error
}

type Boards interface {
	GetBoardByID(ctx context.Context, id int64) (domain.Board, error)

	// ListBoardsForUser returns boards the user administers or holds a role
	// on, ordered by creation.
	ListBoardsForUser(ctx context.Context, userID int64) ([]domain.Board, error)

	CreateBoard(ctx context.Context, b domain.Board) (domain.Board, error)

	// DeleteBoard cascades to items, statuses, types and role assignments.
	DeleteBoard(ctx context.Context, id int64) error

	AddStatus(ctx context.Context, boardID int64, name string) (domain.Status, error)
	RemoveStatus(ctx context.Context, boardID int64, name string) (bool, error)
	ListStatuses(ctx context.Context, boardID int64) ([]domain.Status, error)
	GetStatusByID(ctx context.Context, id int64) (domain.Status, error)

	AddType(ctx context.Context, boardID int64, name string) (domain.ItemType, error)
	RemoveType(ctx context.Context, typeID int64) (bool, error)
	ListTypes(ctx context.Context, boardID int64) ([]domain.ItemType, error)
	GetTypeByID(ctx context.Context, id int64) (domain.ItemType, error)
}

type Items interface {
	GetItemByID(ctx context.Context, id int64) (domain.Item, error)

	// ListItems returns a board's items matching the filter, newest first.
	ListItems(ctx context.Context, boardID int64, filter domain.ItemFilter) ([]domain.Item, error)

	CreateItem(ctx context.Context, it domain.Item) (domain.Item, error)

	UpdateItemStatus(ctx context.Context, itemID int64, statusID *int64) error
	UpdateItemType(ctx context.Context, itemID int64, typeID *int64) error
	UpdateItemAssignee(ctx context.Context, itemID int64, assigneeID *int64) error

	DeleteItem(ctx context.Context, itemID int64) error

	// DeleteItemsByStatus removes every item on the board holding the given
	// status, used when a status label is deleted.
	DeleteItemsByStatus(ctx context.Context, boardID, statusID int64) error
}

type Roles interface {
	// UpsertAssignment inserts the (board, user, role) grant, replacing any
	// existing role the user held on the board.
	UpsertAssignment(ctx context.Context, a domain.RoleAssignment) error

	// DeleteAssignment removes a grant only if the stored role matches.
	// Reports whether anything was removed; an absent grant is not an error.
	DeleteAssignment(ctx context.Context, a domain.RoleAssignment) (bool, error)

	// GetAssignment returns the user's grant on the board, if any.
	GetAssignment(ctx context.Context, boardID, userID int64) (domain.RoleAssignment, error)

	// ListAssignments returns every grant on the board.
	ListAssignments(ctx context.Context, boardID int64) ([]domain.RoleAssignment, error)
}
