package filestore

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("filestore client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от хранилища
	ErrInvalidResponse = errors.New("filestore client: invalid response")

	// ErrUploadRejected возвращается, когда хранилище отклонило загрузку
	ErrUploadRejected = errors.New("filestore client: upload rejected")
)
