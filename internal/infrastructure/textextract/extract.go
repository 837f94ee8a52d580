package textextract

import (
	"errors"
	"fmt"
	"strings"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrEmptyDocument   = errors.New("no text could be extracted from the document")
)

// FromUpload extracts plain text from an uploaded resume document.
// PDF and DOCX are the accepted formats, matching the upload endpoint.
func FromUpload(contentType string, data []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch strings.TrimSpace(strings.ToLower(contentType)) {
	case ContentTypePDF:
		text, err = fromPDF(data)
	case ContentTypeDOCX:
		text, err = fromDOCX(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}
