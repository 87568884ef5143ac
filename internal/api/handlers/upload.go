package handlers

import (
	"io"
	"mime/multipart"

	"event-portal-backend/internal/service"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// openUpload adapts one multipart part into a storage upload. The
// returned closer must be closed after the service call consumed the
// body.
func openUpload(fh *multipart.FileHeader) (*service.Upload, io.Closer, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &service.Upload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        f,
	}, f, nil
}
