package services

import (
	"errors"
	"fmt"
	"strings"
)

// Fatal error kinds for a conversion run. Recoverable conditions (unreadable
// tags, missing cover art, absent fonts) are substituted locally and never
// reach this channel.
var (
	ErrToolingMissing = errors.New("required tooling missing")
	ErrInvalidJob     = errors.New("invalid job")
	ErrEncodeFailed   = errors.New("encode failed")
	ErrCombineFailed  = errors.New("combine failed")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided kind for later classification. The kind should be one of
// the exported sentinel errors above.
func Wrap(kind error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if kind == nil {
		kind = ErrInvalidJob
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", kind, detail, err)
	}
	return fmt.Errorf("%w: %s", kind, detail)
}

// Kind reports which sentinel an error was tagged with, or nil when untagged.
func Kind(err error) error {
	for _, kind := range []error{ErrToolingMissing, ErrInvalidJob, ErrEncodeFailed, ErrCombineFailed} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
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
		return "conversion failure"
	}
	return strings.Join(parts, ": ")
}
