package domain

import "time"

type BorrowStatus string

const (
	BorrowStatusActive   BorrowStatus = "active"
	BorrowStatusReturned BorrowStatus = "returned"
	BorrowStatusOverdue  BorrowStatus = "overdue"
)

// BorrowRecord is one borrow-to-return cycle for one umbrella by one user.
// Records are created by the borrow operation and only ever mutated by the
// return operation (or the nightly overdue sweep); they are never deleted.
// DueTime is fixed at creation.
type BorrowRecord struct {
	ID              string       `json:"id"`
	UserID          string       `json:"userId"`
	UmbrellaID      string       `json:"umbrellaId"`
	BorrowStationID string       `json:"borrowStationId"`
	ReturnStationID *string      `json:"returnStationId,omitempty"`
	BorrowTime      time.Time    `json:"borrowTime"`
	DueTime         time.Time    `json:"dueTime"`
	ReturnTime      *time.Time   `json:"returnTime,omitempty"`
	Status          BorrowStatus `json:"status"`
	CreatedOn       time.Time    `json:"createdOn"`
	UpdatedOn       time.Time    `json:"updatedOn"`

	// Populated on detail queries (denormalized joins).
	User          *User     `json:"user,omitempty"`
	Umbrella      *Umbrella `json:"umbrella,omitempty"`
	BorrowStation *Station  `json:"borrowStation,omitempty"`
	ReturnStation *Station  `json:"returnStation,omitempty"`
}

// Open reports whether the record still holds an umbrella. An overdue loan is
// still open: it can be returned, it just missed its due time.
func (b *BorrowRecord) Open() bool {
	return b.Status == BorrowStatusActive || b.Status == BorrowStatusOverdue
}
