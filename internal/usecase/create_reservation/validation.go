package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/HalisahaBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Все четыре обязательных поля должны быть заполнены до любой записи
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Field) == "" {
		return fmt.Errorf("%w: field is required", ErrInvalidInput)
	}

	if !domain.IsValidField(req.Field) {
		return fmt.Errorf("%w: unknown field %q", ErrInvalidInput, req.Field)
	}

	if strings.TrimSpace(req.TimeSlot) == "" {
		return fmt.Errorf("%w: timeSlot is required", ErrInvalidInput)
	}

	if !domain.IsValidTimeSlot(req.TimeSlot) {
		return fmt.Errorf("%w: unknown time slot %q", ErrInvalidInput, req.TimeSlot)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	return nil
}
