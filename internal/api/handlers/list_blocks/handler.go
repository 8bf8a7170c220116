package list_blocks

import (
	"net/http"

	"github.com/m04kA/HalisahaBookingService/internal/api/handlers"
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

// Handle GET /api/v1/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /blocks - Failed to list blocks: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /blocks - Listed %d block(s)", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
