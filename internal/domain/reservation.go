package domain

import "time"

// ReservationStatus represents the status of a reservation request
type ReservationStatus string

const (
	StatusPending  ReservationStatus = "pending"
	StatusApproved ReservationStatus = "approved"
	StatusRejected ReservationStatus = "rejected"

	// StatusAliasPending legacy spelling of the pending status kept by old
	// records; normalized to StatusPending everywhere status is read
	StatusAliasPending = "Beklemede"
)

// NormalizeStatus maps legacy status spellings onto the canonical enum.
// Unknown values are returned as-is so validation can reject them.
func NormalizeStatus(raw string) ReservationStatus {
	if raw == StatusAliasPending {
		return StatusPending
	}
	return ReservationStatus(raw)
}

// PendingStatusValues returns every stored spelling that means "pending".
// Repositories use it in IN-filters so legacy rows keep participating in
// conflict resolution and expiry.
func PendingStatusValues() []string {
	return []string{string(StatusPending), StatusAliasPending}
}

// Reservation represents a booking request for a (date, field, timeSlot) tuple
type Reservation struct {
	ID           string
	Date         string // YYYY-MM-DD
	Field        string
	TimeSlot     TimeSlot
	CustomerName string
	Status       ReservationStatus

	// Pointer to the payment proof artifact owned by the file-storage
	// collaborator; opaque to this service
	PaymentProofURL  *string
	PaymentProofName *string

	// AdminNote is set by the system on system-initiated transitions
	// (cascade rejection, expiry)
	AdminNote *string

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsPending returns true if the reservation is still awaiting an admin decision
func (r *Reservation) IsPending() bool {
	return r.Status == StatusPending
}

// IsTerminal returns true if the reservation reached a final state.
// Terminal states are one-way: no transition ever returns a record to pending.
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusApproved || r.Status == StatusRejected
}

// SlotDeadline returns the moment after which a pending reservation is
// considered stale: slot end time on the reservation date plus the grace
// period. Used by the expiry sweeper.
func (r *Reservation) SlotDeadline(grace time.Duration, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(DateFormat, r.Date, loc)
	if err != nil {
		return time.Time{}, err
	}

	endHour, err := r.TimeSlot.EndHour()
	if err != nil {
		return time.Time{}, err
	}

	slotEnd := time.Date(date.Year(), date.Month(), date.Day(), endHour, 0, 0, 0, loc)
	return slotEnd.Add(grace), nil
}
