package domain

import "time"

type Item struct {
	ID          int64
	BoardID     int64
	Title       string
	Description string
	StatusID    *int64
	TypeID      *int64
	AssigneeID  *int64
	CreatorID   int64
	DueDate     *time.Time
	Importance  int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ItemFilter narrows a board's item listing. Nil fields are ignored; set
// fields must all match exactly.
type ItemFilter struct {
	StatusID   *int64
	TypeID     *int64
	AssigneeID *int64
	CreatorID  *int64
	Importance *int
}
