package models

import (
	"errors"
	"time"

	"github.com/m04kA/HalisahaBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID               string  `json:"id"`
	Date             string  `json:"date"`     // "2025-06-01"
	Field            string  `json:"field"`    // "saha-1"
	TimeSlot         string  `json:"timeSlot"` // "16-17"
	CustomerName     string  `json:"customerName"`
	Status           string  `json:"status"`
	PaymentProofURL  *string `json:"paymentProofUrl,omitempty"`
	PaymentProofName *string `json:"paymentProofName,omitempty"`
	AdminNote        *string `json:"adminNote,omitempty"`
	SubmittedAt      string  `json:"submittedAt"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// FromDomainReservation конвертирует доменную модель в ответ
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:               res.ID,
		Date:             res.Date,
		Field:            res.Field,
		TimeSlot:         res.TimeSlot.String(),
		CustomerName:     res.CustomerName,
		Status:           string(res.Status),
		PaymentProofURL:  res.PaymentProofURL,
		PaymentProofName: res.PaymentProofName,
		AdminNote:        res.AdminNote,
		SubmittedAt:      res.SubmittedAt.Format(time.RFC3339),
		CreatedAt:        res.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        res.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список доменных моделей в ответ
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	out := make([]*ReservationResponse, 0, len(list))
	for _, res := range list {
		out = append(out, FromDomainReservation(res))
	}
	return &ReservationListResponse{
		Reservations: out,
		Total:        len(out),
	}
}

// ToDomainReservationStatus валидирует и конвертирует статус из строки
// Принимает и legacy-алиас pending-статуса
func ToDomainReservationStatus(raw string) (domain.ReservationStatus, error) {
	status := domain.NormalizeStatus(raw)
	switch status {
	case domain.StatusPending, domain.StatusApproved, domain.StatusRejected:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}
