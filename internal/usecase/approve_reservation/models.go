package approve_reservation

// Response результат одобрения брони
type Response struct {
	ID       string
	Date     string
	Field    string
	TimeSlot string
	Status   string

	// CascadeRejected число pending-броней того же кортежа,
	// отклонённых каскадом в той же транзакции
	CascadeRejected int64
}
