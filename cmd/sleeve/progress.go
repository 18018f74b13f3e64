package main

import (
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"sleeve/internal/convert"
)

// newProgressSink returns a ProgressFunc plus a finish callback. On a
// terminal it renders an interactive bar; otherwise milestones go to the
// structured log so piped output stays line-oriented.
func newProgressSink(logger *slog.Logger) (convert.ProgressFunc, func()) {
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		sink := func(status string, percent int) {
			logger.Info("progress", "status", status, "percent", percent)
		}
		return sink, func() {}
	}

	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Starting"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)
	sink := func(status string, percent int) {
		bar.Describe(status)
		_ = bar.Set(percent)
	}
	finish := func() {
		_ = bar.Finish()
	}
	return sink, finish
}
