package notify

// EventReservationCreated тип события о новой брони
const EventReservationCreated = "reservation_created"

// ReservationEvent событие для уведомления администратора о новой брони
// Содержит ровно те поля, которые нужны письму: кто, когда, какая саха, какой час
type ReservationEvent struct {
	Type          string `json:"type"`
	ReservationID string `json:"reservation_id"`
	CustomerName  string `json:"customer_name"`
	Date          string `json:"date"`
	Field         string `json:"field"`
	TimeSlot      string `json:"time_slot"`
}
