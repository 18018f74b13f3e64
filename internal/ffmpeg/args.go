package ffmpeg

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// EncodeOptions controls the video side of a segment encode. The audio side is
// not configurable: source streams are always copied, never re-encoded.
type EncodeOptions struct {
	Codec       string
	Preset      string
	CRF         int
	FrameRate   int
	PixelFormat string
}

// DefaultEncodeOptions matches the fixed quality target for static album art:
// visually lossless x264 at one frame per second.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		Codec:       "libx264",
		Preset:      "medium",
		CRF:         18,
		FrameRate:   1,
		PixelFormat: "yuv420p",
	}
}

// SegmentArgs builds the argument list that loops a still frame for the full
// track duration and muxes it against the stream-copied audio.
func SegmentArgs(framePath, audioPath string, durationSeconds float64, opts EncodeOptions, outputPath string) []string {
	return []string{
		"-y",
		"-loop", "1", "-i", framePath,
		"-i", audioPath,
		"-c:v", opts.Codec, "-preset", opts.Preset, "-crf", strconv.Itoa(opts.CRF),
		"-c:a", "copy",
		"-t", formatSeconds(durationSeconds),
		"-pix_fmt", opts.PixelFormat,
		"-r", strconv.Itoa(opts.FrameRate),
		outputPath,
	}
}

// CombineArgs builds the argument list that concatenates the segment manifest
// and merges the chapter metadata file, stream-copying everything.
func CombineArgs(manifestPath, chaptersPath, outputPath string) []string {
	return []string{
		"-y",
		"-f", "concat", "-safe", "0", "-i", manifestPath,
		"-i", chaptersPath,
		"-c", "copy",
		"-map_metadata", "1",
		outputPath,
	}
}

// WriteConcatManifest writes the concat demuxer manifest: one absolute segment
// path per line in sequence, single quotes escaped for the demuxer.
func WriteConcatManifest(path string, segmentPaths []string) error {
	var b strings.Builder
	for _, segment := range segmentPaths {
		abs, err := filepath.Abs(segment)
		if err != nil {
			return fmt.Errorf("resolve segment path %s: %w", segment, err)
		}
		escaped := strings.ReplaceAll(abs, "'", `'\''`)
		fmt.Fprintf(&b, "file '%s'\n", escaped)
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// formatSeconds renders a duration for ffmpeg's -t flag without exponent
// notation and without trailing zero noise.
func formatSeconds(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}
