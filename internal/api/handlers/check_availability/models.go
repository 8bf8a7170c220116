package check_availability

import (
	checkAvailability "github.com/m04kA/HalisahaBookingService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP модель вердикта доступности слота
type AvailabilityResponse struct {
	Date     string `json:"date"`
	Field    string `json:"field"`
	TimeSlot string `json:"timeSlot"`

	Verdict    string `json:"verdict"`
	Selectable bool   `json:"selectable"`

	BlockReason  string `json:"blockReason,omitempty"`
	CustomerName string `json:"customerName,omitempty"`
}

// FromUseCaseResponse конвертирует вердикт use case в HTTP модель
func FromUseCaseResponse(req *checkAvailability.Request, res *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Date:         req.Date,
		Field:        req.Field,
		TimeSlot:     req.TimeSlot,
		Verdict:      string(res.Verdict),
		Selectable:   res.Selectable,
		BlockReason:  res.BlockReason,
		CustomerName: res.CustomerName,
	}
}
