package reject_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HalisahaBookingService/internal/api/handlers"
	"github.com/m04kA/HalisahaBookingService/internal/service/reservations"
)

const (
	msgMissingID = "missing reservation id"
	msgNotFound  = "reservation not found"
)

// RejectReservationResponse HTTP модель ответа на отклонение брони
type RejectReservationResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

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

// Handle PATCH /api/v1/reservations/{reservationId}/reject
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID := vars["reservationId"]
	if reservationID == "" {
		h.logger.Warn("PATCH /reservations/{id}/reject - Missing reservation ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	if err := h.service.Reject(r.Context(), reservationID); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/reject - Reservation not found: id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /reservations/{id}/reject - Failed to reject reservation: id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/reject - Reservation rejected: id=%s", reservationID)
	handlers.RespondJSON(w, http.StatusOK, RejectReservationResponse{
		ID:     reservationID,
		Status: "rejected",
	})
}
