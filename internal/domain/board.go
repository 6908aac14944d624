package domain

import "time"

// Board is the top-level container for items. The admin is the creating
// user; statuses, types, items and role assignments all cascade away with
// their board.
type Board struct {
	ID        int64
	Title     string
	AdminID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Status is a board-scoped item state label ("Open", "Done", ...).
type Status struct {
	ID      int64
	BoardID int64
	Name    string
}

// ItemType is a board-scoped item classification ("Bug", "Task", ...).
type ItemType struct {
	ID      int64
	BoardID int64
	Name    string
}
