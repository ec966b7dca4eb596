package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNoText              = errors.New("no text to analyze")
	ErrStoplistUnavailable = errors.New("stoplist unavailable")
	ErrUnsupportedDocument = errors.New("unsupported document type")
	ErrDocumentTooLarge    = errors.New("document too large")
	ErrInvalidConfig       = errors.New("invalid configuration")
)
