package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrFileAccess      = errors.New("file access error")
	ErrParse           = errors.New("parse error")
	ErrExternalService = errors.New("external service error")
	ErrEncoding        = errors.New("encoding error")
	ErrValidation      = errors.New("validation error")
	ErrConfiguration   = errors.New("configuration error")
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrExternalService
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind returns the taxonomy label for an error produced by Wrap, or "error"
// when the failure carries no recognized marker.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrFileAccess):
		return "FileAccessError"
	case errors.Is(err, ErrParse):
		return "ParseError"
	case errors.Is(err, ErrExternalService):
		return "ExternalServiceError"
	case errors.Is(err, ErrEncoding):
		return "EncodingError"
	case errors.Is(err, ErrValidation):
		return "ValidationError"
	case errors.Is(err, ErrConfiguration):
		return "ConfigurationError"
	default:
		return "error"
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
