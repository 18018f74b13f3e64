// Package convert runs the album conversion pipeline: one encoded video
// segment per audio track, concatenated into a single MKV with chapter
// markers derived from the track metadata.
package convert

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"sleeve/internal/artframe"
	"sleeve/internal/chapters"
	"sleeve/internal/config"
	"sleeve/internal/ffmpeg"
	"sleeve/internal/fileutil"
	"sleeve/internal/metadata"
	"sleeve/internal/services"
	"sleeve/internal/textutil"
)

// ProgressFunc receives coarse pipeline milestones. Percent is monotonically
// non-decreasing and reaches 100 exactly once, on success.
type ProgressFunc func(status string, percent int)

// TrackReader yields metadata for one audio file. Implementations never fail;
// unreadable files produce defaulted tracks.
type TrackReader interface {
	Read(ctx context.Context, path string) metadata.Track
}

// FrameRenderer writes a still frame PNG for one track.
type FrameRenderer interface {
	RenderPNG(path, coverPath string, text artframe.Text) error
}

// Converter owns one conversion run end to end. All intermediate artifacts
// live in a per-run scratch directory under the configured work dir; the
// destination path only ever sees a complete file.
type Converter struct {
	cfg      *config.Config
	logger   *slog.Logger
	runner   ffmpeg.Runner
	reader   TrackReader
	composer FrameRenderer
}

// New builds a Converter with the standard collaborators: an exec-backed
// ffmpeg runner, an ffprobe metadata reader, and the frame composer.
func New(cfg *config.Config, logger *slog.Logger) *Converter {
	return &Converter{
		cfg:      cfg,
		logger:   logger,
		runner:   ffmpeg.NewRunner(logger),
		reader:   metadata.NewReader(cfg.Tools.FFprobe, logger),
		composer: artframe.NewComposer(cfg.Video.Width, cfg.Video.Height, cfg.Frame.FontPath, logger),
	}
}

// NewWithCollaborators builds a Converter around caller-supplied
// collaborators. Tests use it to substitute fakes.
func NewWithCollaborators(cfg *config.Config, logger *slog.Logger, runner ffmpeg.Runner, reader TrackReader, composer FrameRenderer) *Converter {
	return &Converter{cfg: cfg, logger: logger, runner: runner, reader: reader, composer: composer}
}

// Run executes the pipeline for job. It holds the work-dir lock for the
// duration of the run so concurrent invocations cannot interleave scratch
// state or race on the destination.
func (c *Converter) Run(ctx context.Context, job Job, progress ProgressFunc) (Summary, error) {
	if progress == nil {
		progress = func(string, int) {}
	}
	if err := job.Validate(); err != nil {
		return Summary{}, err
	}
	if err := os.MkdirAll(c.cfg.Paths.WorkDir, 0o755); err != nil {
		return Summary{}, services.Wrap(services.ErrInvalidJob, "setup", "", "create work directory", err)
	}

	lock := flock.New(c.cfg.LockFilePath())
	locked, err := lock.TryLock()
	if err != nil {
		return Summary{}, services.Wrap(services.ErrInvalidJob, "setup", "", "acquire work lock", err)
	}
	if !locked {
		return Summary{}, services.Wrap(services.ErrInvalidJob, "setup", "", "another conversion is already running", nil)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	scratch, err := c.makeScratchDir(job)
	if err != nil {
		return Summary{}, services.Wrap(services.ErrInvalidJob, "setup", "", "create scratch directory", err)
	}
	defer func() {
		_ = os.RemoveAll(scratch)
	}()

	total := len(job.AudioFiles)
	summary := Summary{TrackCount: total}
	var builder chapters.Builder
	segments := make([]string, 0, total)

	for i, audioPath := range job.AudioFiles {
		progress(fmt.Sprintf("Processing track %d/%d", i+1, total), i*50/total)

		track := c.reader.Read(ctx, audioPath)
		if i == 0 {
			summary.Album = track.Album
			summary.Artist = track.Artist
		}

		framePath := filepath.Join(scratch, fmt.Sprintf("frame_%03d.png", i))
		text := artframe.Text{
			Title:       track.Title,
			TrackNumber: track.TrackNumber,
			Artist:      track.Artist,
			Album:       track.Album,
		}
		if err := c.composer.RenderPNG(framePath, job.CoverArt, text); err != nil {
			return summary, services.Wrap(services.ErrEncodeFailed, "encode", track.Title, "render frame", err)
		}

		segmentPath := filepath.Join(scratch, fmt.Sprintf("segment_%03d.mkv", i))
		request := ffmpeg.Request{
			Binary: c.cfg.Tools.FFmpeg,
			Args:   ffmpeg.SegmentArgs(framePath, audioPath, track.Duration, c.encodeOptions(), segmentPath),
		}
		if _, err := c.runner.Run(ctx, request); err != nil {
			return summary, services.Wrap(services.ErrEncodeFailed, "encode", track.Title, fmt.Sprintf("encode segment %d", i+1), err)
		}
		segments = append(segments, segmentPath)
		builder.Add(track.TrackNumber, track.Title, track.Duration)

		c.logger.Info("track encoded",
			"track", i+1,
			"of", total,
			"title", track.Title,
			"duration_seconds", track.Duration)
	}

	progress("Combining segments...", 50)
	chaptersPath := filepath.Join(scratch, "chapters.txt")
	if err := builder.WriteFile(chaptersPath); err != nil {
		return summary, services.Wrap(services.ErrCombineFailed, "combine", summary.Album, "write chapter metadata", err)
	}
	manifestPath := filepath.Join(scratch, "concat.txt")
	if err := ffmpeg.WriteConcatManifest(manifestPath, segments); err != nil {
		return summary, services.Wrap(services.ErrCombineFailed, "combine", summary.Album, "write concat manifest", err)
	}

	progress("Creating final MKV...", 75)
	combinedPath := filepath.Join(scratch, "combined.mkv")
	request := ffmpeg.Request{
		Binary: c.cfg.Tools.FFmpeg,
		Args:   ffmpeg.CombineArgs(manifestPath, chaptersPath, combinedPath),
	}
	if _, err := c.runner.Run(ctx, request); err != nil {
		return summary, services.Wrap(services.ErrCombineFailed, "combine", summary.Album, "concatenate segments", err)
	}

	if err := fileutil.MoveFile(combinedPath, job.OutputPath); err != nil {
		return summary, services.Wrap(services.ErrCombineFailed, "combine", summary.Album, "publish output", err)
	}

	summary.TotalDurationMS = builder.TotalMillis()
	c.logger.Info("conversion complete",
		"output", job.OutputPath,
		"tracks", summary.TrackCount,
		"total_duration_ms", summary.TotalDurationMS)
	progress("Complete!", 100)
	return summary, nil
}

func (c *Converter) encodeOptions() ffmpeg.EncodeOptions {
	return ffmpeg.EncodeOptions{
		Codec:       c.cfg.Video.Codec,
		Preset:      c.cfg.Video.Preset,
		CRF:         c.cfg.Video.CRF,
		FrameRate:   c.cfg.Video.FrameRate,
		PixelFormat: c.cfg.Video.PixelFormat,
	}
}

func (c *Converter) makeScratchDir(job Job) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(job.OutputPath), filepath.Ext(job.OutputPath))
	name := fmt.Sprintf("sleeve-%s-%s", textutil.SanitizeToken(stem), uuid.NewString()[:8])
	scratch := filepath.Join(c.cfg.Paths.WorkDir, name)
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		return "", err
	}
	return scratch, nil
}
