package create_reservation

import "time"

// Request модель запроса на создание брони
type Request struct {
	Date             string  // Дата брони, YYYY-MM-DD
	Field            string  // Идентификатор сахи из закрытого набора
	TimeSlot         string  // Идентификатор часового слота, например "16-17"
	CustomerName     string  // Имя клиента
	PaymentProofURL  *string // Указатель на квитанцию во внешнем хранилище (опционально)
	PaymentProofName *string // Имя файла квитанции (опционально)
}

// Response модель ответа с созданной бронью
type Response struct {
	ID               string
	Date             string
	Field            string
	TimeSlot         string
	CustomerName     string
	Status           string
	PaymentProofURL  *string
	PaymentProofName *string
	SubmittedAt      time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
