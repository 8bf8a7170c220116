package upload_payment_proof

import (
	"context"
	"io"

	"github.com/m04kA/HalisahaBookingService/internal/integrations/filestore"
)

type FileStoreClient interface {
	Upload(ctx context.Context, name, contentType string, body io.Reader) (*filestore.StoredFile, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
