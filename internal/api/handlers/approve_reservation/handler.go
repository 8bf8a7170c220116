package approve_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HalisahaBookingService/internal/api/handlers"
	approveReservation "github.com/m04kA/HalisahaBookingService/internal/usecase/approve_reservation"
)

const (
	msgMissingID       = "missing reservation id"
	msgNotFound        = "reservation not found"
	msgAlreadyRejected = "reservation has already been rejected"
)

type Handler struct {
	useCase ApproveReservationUseCase
	logger  Logger
}

func NewHandler(useCase ApproveReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID := vars["reservationId"]
	if reservationID == "" {
		h.logger.Warn("PATCH /reservations/{id}/approve - Missing reservation ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, approveReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/approve - Reservation not found: id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, approveReservation.ErrAlreadyRejected):
			h.logger.Warn("PATCH /reservations/{id}/approve - Already rejected: id=%s", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyRejected)

		default:
			h.logger.Error("PATCH /reservations/{id}/approve - Failed to approve reservation: id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/approve - Reservation approved: id=%s, cascade_rejected=%d",
		result.ID, result.CascadeRejected)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
