package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/HalisahaBookingService/internal/api/handlers"
	checkAvailability "github.com/m04kA/HalisahaBookingService/internal/usecase/check_availability"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=2025-06-01&field=saha-1&timeSlot=16-17
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &checkAvailability.Request{
		Date:     query.Get("date"),
		Field:    query.Get("field"),
		TimeSlot: query.Get("timeSlot"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /availability - Failed to check availability: date=%s, field=%s, slot=%s, error=%v",
				req.Date, req.Field, req.TimeSlot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - date=%s, field=%s, slot=%s -> %s",
		req.Date, req.Field, req.TimeSlot, result.Verdict)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(req, result))
}
