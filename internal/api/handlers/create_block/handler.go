package create_block

import (
	"errors"
	"net/http"

	"github.com/m04kA/HalisahaBookingService/internal/api/handlers"
	"github.com/m04kA/HalisahaBookingService/internal/service/blocks"
	"github.com/m04kA/HalisahaBookingService/internal/service/blocks/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
)

type Handler struct {
	service BlockService
	logger  Logger
}

func NewHandler(service BlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("POST /blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /blocks - Failed to create block: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocks - Block created: id=%s, %s..%s, field=%s, slot=%s",
		result.ID, result.StartDate, result.EndDate, result.Field, result.TimeSlot)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
