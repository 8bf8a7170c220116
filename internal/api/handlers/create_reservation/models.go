package create_reservation

import (
	"time"

	createReservation "github.com/m04kA/HalisahaBookingService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP модель запроса на создание брони.
// Принимает два набора ключей: канонические английские и исторические
// турецкие алиасы старого фронтенда (sahaAdi, saat, adSoyad, tarih).
// При наличии обоих приоритет у канонического ключа
type CreateReservationRequest struct {
	Date         string `json:"date"`
	Field        string `json:"field"`
	TimeSlot     string `json:"timeSlot"`
	CustomerName string `json:"customerName"`

	// Турецкие алиасы
	DateAlias         string `json:"tarih"`
	FieldAlias        string `json:"sahaAdi"`
	TimeSlotAlias     string `json:"saat"`
	CustomerNameAlias string `json:"adSoyad"`

	PaymentProofURL  *string `json:"paymentProofUrl"`
	PaymentProofName *string `json:"paymentProofName"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case,
// разрешая алиасы ключей
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		Date:             coalesce(r.Date, r.DateAlias),
		Field:            coalesce(r.Field, r.FieldAlias),
		TimeSlot:         coalesce(r.TimeSlot, r.TimeSlotAlias),
		CustomerName:     coalesce(r.CustomerName, r.CustomerNameAlias),
		PaymentProofURL:  r.PaymentProofURL,
		PaymentProofName: r.PaymentProofName,
	}
}

func coalesce(primary, fallback string) string {
	if primary != "" {
		return primary
	}
	return fallback
}

// CreateReservationResponse HTTP модель ответа с созданной бронью
type CreateReservationResponse struct {
	ID               string  `json:"id"`
	Date             string  `json:"date"`
	Field            string  `json:"field"`
	TimeSlot         string  `json:"timeSlot"`
	CustomerName     string  `json:"customerName"`
	Status           string  `json:"status"`
	PaymentProofURL  *string `json:"paymentProofUrl,omitempty"`
	PaymentProofName *string `json:"paymentProofName,omitempty"`
	SubmittedAt      string  `json:"submittedAt"`
	CreatedAt        string  `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(res *createReservation.Response) *CreateReservationResponse {
	return &CreateReservationResponse{
		ID:               res.ID,
		Date:             res.Date,
		Field:            res.Field,
		TimeSlot:         res.TimeSlot,
		CustomerName:     res.CustomerName,
		Status:           res.Status,
		PaymentProofURL:  res.PaymentProofURL,
		PaymentProofName: res.PaymentProofName,
		SubmittedAt:      res.SubmittedAt.Format(time.RFC3339),
		CreatedAt:        res.CreatedAt.Format(time.RFC3339),
	}
}
