package services_test

import (
	"errors"
	"strings"
	"testing"

	"sleeve/internal/services"
)

func TestWrapTagsKindAndKeepsCause(t *testing.T) {
	cause := errors.New("exit status 1")
	err := services.Wrap(services.ErrEncodeFailed, "encode", "track 3", "ffmpeg", cause)
	if !errors.Is(err, services.ErrEncodeFailed) {
		t.Fatalf("expected encode kind, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause preserved, got %v", err)
	}
	if !strings.Contains(err.Error(), "encode: track 3: ffmpeg") {
		t.Fatalf("unexpected detail: %v", err)
	}
}

func TestWrapDefaultsNilKindToInvalidJob(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrInvalidJob) {
		t.Fatalf("expected invalid-job fallback, got %v", err)
	}
}

func TestKind(t *testing.T) {
	err := services.Wrap(services.ErrCombineFailed, "combine", "", "concat", nil)
	if kind := services.Kind(err); kind != services.ErrCombineFailed {
		t.Fatalf("unexpected kind: %v", kind)
	}
	if kind := services.Kind(errors.New("plain")); kind != nil {
		t.Fatalf("expected nil kind for untagged error, got %v", kind)
	}
}
