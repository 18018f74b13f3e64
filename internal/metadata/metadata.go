// Package metadata reads per-track tags and stream properties from audio
// files. Reads never fail: unreadable files fall back to filename-derived
// titles and fixed defaults so the pipeline always continues.
package metadata

import (
	"context"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"sleeve/internal/media/ffprobe"
)

// Defaults substituted when a track's tags or stream properties are unreadable.
const (
	DefaultArtist     = "Unknown Artist"
	DefaultAlbum      = "Unknown Album"
	DefaultSampleRate = 44100
	DefaultBitDepth   = 16
	DefaultChannels   = 2
)

// Track holds the display and stream properties of one audio file. Immutable
// once read; one instance per track per conversion run.
type Track struct {
	Path        string
	Title       string
	Artist      string
	Album       string
	TrackNumber int
	Duration    float64
	SampleRate  int
	BitDepth    int
	Channels    int
}

// Reader extracts Track values through ffprobe.
type Reader struct {
	binary string
	logger *slog.Logger
}

// NewReader returns a Reader using the given ffprobe command.
func NewReader(binary string, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{binary: binary, logger: logger}
}

// Read returns the metadata for one audio file. Any probe failure is logged
// and substituted with Defaults; the error never propagates.
func (r *Reader) Read(ctx context.Context, path string) Track {
	result, err := inspectMedia(ctx, r.binary, path)
	if err != nil {
		r.logger.Warn("metadata read failed, using defaults",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return Defaults(path)
	}

	track := Defaults(path)
	if title, ok := result.Tag("TITLE"); ok {
		track.Title = title
	}
	if artist, ok := result.Tag("ARTIST"); ok {
		track.Artist = artist
	}
	if album, ok := result.Tag("ALBUM"); ok {
		track.Album = album
	}
	// Vorbis comments carry TRACKNUMBER; ID3 sources surface as "track".
	raw, ok := result.Tag("TRACKNUMBER")
	if !ok {
		raw, ok = result.Tag("track")
	}
	if ok {
		if number := parseTrackNumber(raw); number > 0 {
			track.TrackNumber = number
		}
	}
	if duration := result.DurationSeconds(); duration > 0 {
		track.Duration = duration
	}
	if rate := result.SampleRate(); rate > 0 {
		track.SampleRate = rate
	}
	if depth := result.BitDepth(); depth > 0 {
		track.BitDepth = depth
	}
	if channels := result.Channels(); channels > 0 {
		track.Channels = channels
	}
	return track
}

// Defaults returns the fallback Track for a path: filename stem as title,
// unknown artist/album, track 1, 44100 Hz / 16-bit / stereo, zero duration.
func Defaults(path string) Track {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return Track{
		Path:        path,
		Title:       stem,
		Artist:      DefaultArtist,
		Album:       DefaultAlbum,
		TrackNumber: 1,
		SampleRate:  DefaultSampleRate,
		BitDepth:    DefaultBitDepth,
		Channels:    DefaultChannels,
	}
}

// parseTrackNumber accepts both "7" and "7/12" tag forms.
func parseTrackNumber(raw string) int {
	raw = strings.TrimSpace(raw)
	if idx := strings.IndexAny(raw, "/-"); idx > 0 {
		raw = raw[:idx]
	}
	number, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || number < 1 {
		return 0
	}
	return number
}

// inspectMedia is replaced in tests to avoid requiring an ffprobe binary.
var inspectMedia = ffprobe.Inspect
