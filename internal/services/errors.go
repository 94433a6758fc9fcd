package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoMetadata    = errors.New("metadata not found")
	ErrParse         = errors.New("parse error")
	ErrIO            = errors.New("io error")
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes pipeline stage context while
// tagging it with the provided marker for later outcome classification. The
// marker should be one of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Recoverable reports whether the error only disqualifies a single file from
// processing, as opposed to an I/O failure that warrants operator attention.
func Recoverable(err error) bool {
	return errors.Is(err, ErrNoMetadata) || errors.Is(err, ErrParse)
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
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
