package models

import (
	"time"

	"github.com/m04kA/HalisahaBookingService/internal/domain"
)

// CreateBlockRequest запрос на создание блокировки
type CreateBlockRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Field     string `json:"field"`
	TimeSlot  string `json:"timeSlot"`
	Reason    string `json:"reason"`
}

// BlockResponse блокировка в ответе API
type BlockResponse struct {
	ID        string `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Field     string `json:"field"`
	TimeSlot  string `json:"timeSlot"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"createdAt"`
}

// BlockListResponse список блокировок
type BlockListResponse struct {
	Blocks []BlockResponse `json:"blocks"`
	Total  int             `json:"total"`
}

// ToDomainBlock конвертирует запрос в доменную модель
func (r *CreateBlockRequest) ToDomainBlock() *domain.Block {
	return &domain.Block{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Field:     r.Field,
		TimeSlot:  r.TimeSlot,
		Reason:    r.Reason,
	}
}

// FromDomainBlock конвертирует доменную модель в ответ API
func FromDomainBlock(b *domain.Block) *BlockResponse {
	return &BlockResponse{
		ID:        b.ID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Field:     b.Field,
		TimeSlot:  b.TimeSlot,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBlockList конвертирует список доменных моделей в ответ API
func FromDomainBlockList(list []*domain.Block) *BlockListResponse {
	resp := &BlockListResponse{
		Blocks: make([]BlockResponse, 0, len(list)),
		Total:  len(list),
	}
	for _, b := range list {
		resp.Blocks = append(resp.Blocks, *FromDomainBlock(b))
	}
	return resp
}
