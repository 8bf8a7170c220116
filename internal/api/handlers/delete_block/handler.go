package delete_block

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HalisahaBookingService/internal/api/handlers"
	"github.com/m04kA/HalisahaBookingService/internal/service/blocks"
)

const (
	msgMissingID = "missing block id"
	msgNotFound  = "block not found"
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

// Handle DELETE /api/v1/blocks/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blockID := vars["blockId"]
	if blockID == "" {
		h.logger.Warn("DELETE /blocks/{id} - Missing block ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	if err := h.service.Delete(r.Context(), blockID); err != nil {
		switch {
		case errors.Is(err, blocks.ErrBlockNotFound):
			h.logger.Warn("DELETE /blocks/{id} - Block not found: id=%s", blockID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /blocks/{id} - Failed to delete block: id=%s, error=%v", blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blocks/{id} - Block deleted: id=%s", blockID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
