package service

import "io"

// Upload is an uploaded-file object as handed over by the hosting
// front-end: a name, a MIME type and a byte-readable body.
type Upload struct {
	Name        string
	ContentType string
	Body        io.Reader
}
