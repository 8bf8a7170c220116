package domain

import "time"

// Block represents an owner-defined closure of (date range x field x time slot).
// An applicable block preempts booking; its reason is shown verbatim to users.
type Block struct {
	ID        string
	StartDate string // YYYY-MM-DD, inclusive
	EndDate   string // YYYY-MM-DD, inclusive, >= StartDate
	Field     string // field identifier or Wildcard
	TimeSlot  string // slot identifier or Wildcard
	Reason    string
	CreatedAt time.Time
}

// Applies reports whether the block covers the given (date, field, timeSlot).
// The date range is inclusive on both ends; dates compare lexicographically
// since they are stored in YYYY-MM-DD form.
func (b *Block) Applies(date, field, timeSlot string) bool {
	if date < b.StartDate || date > b.EndDate {
		return false
	}
	if b.Field != Wildcard && b.Field != field {
		return false
	}
	if b.TimeSlot != Wildcard && b.TimeSlot != timeSlot {
		return false
	}
	return true
}
