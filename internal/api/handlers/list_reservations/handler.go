package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/HalisahaBookingService/internal/api/handlers"
	"github.com/m04kA/HalisahaBookingService/internal/service/reservations"
)

const (
	msgInvalidStatus = "invalid status filter"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations?status=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var statusFilter *string
	if raw := r.URL.Query().Get("status"); raw != "" {
		statusFilter = &raw
	}

	result, err := h.service.ListAll(r.Context(), statusFilter)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Listed %d reservation(s)", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
