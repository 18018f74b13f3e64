// Package ffmpeg builds and executes transcoder invocations. The invocation
// contract is typed (Request/Result plus a Runner interface) so pipeline tests
// can inject a fake transcoder instead of executing the real binary.
package ffmpeg

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Request describes a single transcoder invocation.
type Request struct {
	Binary string
	Args   []string
}

// CommandLine renders the invocation for logging.
func (r Request) CommandLine() string {
	return strings.Join(append([]string{r.Binary}, r.Args...), " ")
}

// Result carries the combined stdout/stderr of a finished invocation.
type Result struct {
	Output string
}

// Runner executes transcoder requests.
type Runner interface {
	Run(ctx context.Context, req Request) (Result, error)
}

type execRunner struct {
	logger *slog.Logger
}

// NewRunner returns a Runner backed by os/exec.
func NewRunner(logger *slog.Logger) Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &execRunner{logger: logger}
}

// Run executes the request and blocks until it completes. A non-zero exit is
// returned as an error with the tool's diagnostic output attached.
func (r *execRunner) Run(ctx context.Context, req Request) (Result, error) {
	binary := strings.TrimSpace(req.Binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	r.logger.Debug("running transcoder", slog.String("command", req.CommandLine()))

	cmd := exec.CommandContext(ctx, binary, req.Args...)
	output, err := cmd.CombinedOutput()
	diagnostic := strings.TrimSpace(string(output))
	if err != nil {
		return Result{Output: diagnostic}, fmt.Errorf("%s: %w: %s", binary, err, tail(diagnostic, 2000))
	}
	return Result{Output: diagnostic}, nil
}

// tail keeps the last n bytes of a diagnostic; ffmpeg prints the actual error
// at the end of its output.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "…" + s[len(s)-n:]
}
