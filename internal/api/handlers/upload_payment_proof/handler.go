package upload_payment_proof

import (
	"errors"
	"net/http"

	"github.com/m04kA/HalisahaBookingService/internal/api/handlers"
	"github.com/m04kA/HalisahaBookingService/internal/integrations/filestore"
)

const (
	msgInvalidForm    = "invalid multipart form"
	msgMissingFile    = "missing file field"
	msgUploadRejected = "file store rejected the upload"

	// Квитанция об оплате - фото или PDF, больше 10 МБ быть не должно
	maxUploadBytes = 10 << 20
)

// UploadResponse HTTP модель ответа с указателем на сохранённый файл
type UploadResponse struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

type Handler struct {
	client FileStoreClient
	logger Logger
}

func NewHandler(client FileStoreClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle POST /api/v1/payment-proofs
// Принимает multipart/form-data с полем "file"; содержимое не инспектируется,
// сервис хранит только указатель на внешнее хранилище
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.logger.Warn("POST /payment-proofs - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.logger.Warn("POST /payment-proofs - Missing file field: %v", err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	stored, err := h.client.Upload(r.Context(), header.Filename, contentType, file)
	if err != nil {
		switch {
		case errors.Is(err, filestore.ErrUploadRejected):
			h.logger.Warn("POST /payment-proofs - Upload rejected: name=%s, error=%v", header.Filename, err)
			handlers.RespondBadRequest(w, msgUploadRejected)

		default:
			h.logger.Error("POST /payment-proofs - Failed to upload file: name=%s, error=%v", header.Filename, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payment-proofs - File uploaded: name=%s, url=%s", stored.Name, stored.URL)
	handlers.RespondJSON(w, http.StatusCreated, UploadResponse{
		URL:  stored.URL,
		Name: stored.Name,
	})
}
