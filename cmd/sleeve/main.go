package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"sleeve/internal/services"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps tagged failure kinds to distinct exit codes so scripts can
// tell a setup problem from a mid-pipeline one.
func exitCode(err error) int {
	switch services.Kind(err) {
	case services.ErrToolingMissing:
		return 2
	case services.ErrInvalidJob:
		return 3
	case services.ErrEncodeFailed:
		return 4
	case services.ErrCombineFailed:
		return 5
	default:
		return 1
	}
}
