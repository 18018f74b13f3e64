// Package ffprobe wraps the ffprobe binary for media inspection, exposing the
// tags and audio stream properties the metadata reader needs.
package ffprobe
