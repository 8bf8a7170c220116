package approve_reservation

import (
	approveReservation "github.com/m04kA/HalisahaBookingService/internal/usecase/approve_reservation"
)

// ApproveReservationResponse HTTP модель ответа на одобрение брони
type ApproveReservationResponse struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Field           string `json:"field"`
	TimeSlot        string `json:"timeSlot"`
	Status          string `json:"status"`
	CascadeRejected int64  `json:"cascadeRejected"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(res *approveReservation.Response) *ApproveReservationResponse {
	return &ApproveReservationResponse{
		ID:              res.ID,
		Date:            res.Date,
		Field:           res.Field,
		TimeSlot:        res.TimeSlot,
		Status:          res.Status,
		CascadeRejected: res.CascadeRejected,
	}
}
