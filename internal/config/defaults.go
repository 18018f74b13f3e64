package config

const (
	defaultWorkDir  = "~/.cache/sleeve/work"
	defaultLogDir   = "~/.local/share/sleeve/logs"
	defaultStateDir = "~/.local/share/sleeve"

	defaultFFmpeg  = "ffmpeg"
	defaultFFprobe = "ffprobe"

	defaultVideoCodec  = "libx264"
	defaultVideoPreset = "medium"
	defaultVideoCRF    = 18
	defaultFrameRate   = 1
	defaultPixelFormat = "yuv420p"
	defaultFrameWidth  = 1920
	defaultFrameHeight = 1080

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			WorkDir:  defaultWorkDir,
			LogDir:   defaultLogDir,
			StateDir: defaultStateDir,
		},
		Tools: Tools{
			FFmpeg:  defaultFFmpeg,
			FFprobe: defaultFFprobe,
		},
		Video: Video{
			Codec:       defaultVideoCodec,
			Preset:      defaultVideoPreset,
			CRF:         defaultVideoCRF,
			FrameRate:   defaultFrameRate,
			PixelFormat: defaultPixelFormat,
			Width:       defaultFrameWidth,
			Height:      defaultFrameHeight,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled: true,
		},
	}
}
