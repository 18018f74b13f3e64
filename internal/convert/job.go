package convert

import (
	"strings"

	"sleeve/internal/services"
)

// Job is an immutable conversion request: ordered audio tracks, one cover
// image, one destination path. Track order is the caller-supplied file order;
// embedded track-number tags are display text only and never re-sort the job.
// Duplicate paths pass through unchecked.
type Job struct {
	AudioFiles []string
	CoverArt   string
	OutputPath string
}

// Validate checks the minimal preconditions for a run to start.
func (j Job) Validate() error {
	if len(j.AudioFiles) == 0 {
		return services.Wrap(services.ErrInvalidJob, "validate", "", "at least one audio file is required", nil)
	}
	for _, path := range j.AudioFiles {
		if strings.TrimSpace(path) == "" {
			return services.Wrap(services.ErrInvalidJob, "validate", "", "audio file paths must be non-empty", nil)
		}
	}
	if strings.TrimSpace(j.CoverArt) == "" {
		return services.Wrap(services.ErrInvalidJob, "validate", "", "cover art path is required", nil)
	}
	if strings.TrimSpace(j.OutputPath) == "" {
		return services.Wrap(services.ErrInvalidJob, "validate", "", "output path is required", nil)
	}
	return nil
}

// Summary describes a finished run for logging and the history record.
type Summary struct {
	Album           string
	Artist          string
	TrackCount      int
	TotalDurationMS int64
}
