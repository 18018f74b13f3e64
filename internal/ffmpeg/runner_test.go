package ffmpeg_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"sleeve/internal/ffmpeg"
)

func TestRunnerCapturesOutput(t *testing.T) {
	runner := ffmpeg.NewRunner(slog.New(slog.NewTextHandler(io.Discard, nil)))
	result, err := runner.Run(context.Background(), ffmpeg.Request{
		Binary: "sh",
		Args:   []string{"-c", "echo frame written"},
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Output != "frame written" {
		t.Fatalf("unexpected output: %q", result.Output)
	}
}

func TestRunnerSurfacesDiagnosticOnFailure(t *testing.T) {
	runner := ffmpeg.NewRunner(slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := runner.Run(context.Background(), ffmpeg.Request{
		Binary: "sh",
		Args:   []string{"-c", "echo 'no such codec' >&2; exit 3"},
	})
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	if !strings.Contains(err.Error(), "no such codec") {
		t.Fatalf("expected stderr text in error, got: %v", err)
	}
}

func TestRunnerMissingBinary(t *testing.T) {
	runner := ffmpeg.NewRunner(slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := runner.Run(context.Background(), ffmpeg.Request{Binary: "sleeve-test-no-such-binary"})
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
}
