package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sleeve/internal/config"
	"sleeve/internal/convert"
	"sleeve/internal/deps"
	"sleeve/internal/history"
	"sleeve/internal/logging"
	"sleeve/internal/services"
	"sleeve/internal/textutil"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var coverPath string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "convert --cover <image> [--output <file.mkv>] <audio-file>...",
		Short: "Encode audio tracks into a single chaptered MKV",
		Long: `Convert encodes one video segment per audio file, using a still frame
built from the cover image and track metadata, then concatenates the
segments into a single MKV with one chapter per track. Tracks appear in
the order given on the command line.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			statuses := deps.CheckBinaries(deps.Required(cfg.Tools.FFmpeg, cfg.Tools.FFprobe))
			if missing := deps.Missing(statuses); len(missing) > 0 {
				return services.Wrap(services.ErrToolingMissing, "preflight", "",
					fmt.Sprintf("required tools not found: %s", strings.Join(missing, ", ")), nil)
			}

			output := outputPath
			if strings.TrimSpace(output) == "" {
				output = defaultOutputPath(args[0])
			}
			job := convert.Job{
				AudioFiles: args,
				CoverArt:   coverPath,
				OutputPath: output,
			}

			sink, finish := newProgressSink(logger)
			started := time.Now()
			summary, runErr := convert.New(cfg, logger).Run(cmd.Context(), job, sink)
			finish()

			recordHistory(cmd, cfg, job, summary, started, runErr)

			if runErr != nil {
				return runErr
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d tracks, %s)\n",
				job.OutputPath, summary.TrackCount, formatDuration(summary.TotalDurationMS))
			return nil
		},
	}

	cmd.Flags().StringVar(&coverPath, "cover", "", "Cover art image for the still frames")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination MKV path (defaults to <album dir>.mkv next to the tracks)")
	_ = cmd.MarkFlagRequired("cover")
	return cmd
}

// defaultOutputPath derives the destination from the first track's directory:
// the sanitized directory name with an .mkv extension, alongside the tracks.
func defaultOutputPath(firstTrack string) string {
	dir := filepath.Dir(firstTrack)
	name := textutil.SanitizeFileName(filepath.Base(dir))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "album"
	}
	return filepath.Join(dir, name+".mkv")
}

// recordHistory stores the run outcome when history is enabled. Failures to
// record are reported on stderr but never mask the conversion result.
func recordHistory(cmd *cobra.Command, cfg *config.Config, job convert.Job, summary convert.Summary, started time.Time, runErr error) {
	if !cfg.History.Enabled {
		return
	}
	store, err := history.Open(cfg.HistoryDBPath())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: open history database: %v\n", err)
		return
	}
	defer store.Close()

	record := history.Record{
		CreatedAt:       started,
		FinishedAt:      time.Now(),
		OutputPath:      job.OutputPath,
		Album:           summary.Album,
		Artist:          summary.Artist,
		TrackCount:      summary.TrackCount,
		TotalDurationMS: summary.TotalDurationMS,
		Status:          history.StatusCompleted,
	}
	if runErr != nil {
		record.Status = history.StatusFailed
		record.ErrorText = runErr.Error()
	}
	if _, err := store.Add(cmd.Context(), record); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: record history: %v\n", err)
	}
}

func formatDuration(millis int64) string {
	d := time.Duration(millis) * time.Millisecond
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
