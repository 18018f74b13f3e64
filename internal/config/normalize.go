package config

import "strings"

// normalize expands path fields and fills blanks with defaults so the rest of
// the program never sees a relative or ~-prefixed directory.
func (c *Config) normalize() error {
	defaults := Default()

	fillString(&c.Paths.WorkDir, defaults.Paths.WorkDir)
	fillString(&c.Paths.LogDir, defaults.Paths.LogDir)
	fillString(&c.Paths.StateDir, defaults.Paths.StateDir)
	fillString(&c.Tools.FFmpeg, defaults.Tools.FFmpeg)
	fillString(&c.Tools.FFprobe, defaults.Tools.FFprobe)
	fillString(&c.Video.Codec, defaults.Video.Codec)
	fillString(&c.Video.Preset, defaults.Video.Preset)
	fillString(&c.Video.PixelFormat, defaults.Video.PixelFormat)
	fillString(&c.Logging.Format, defaults.Logging.Format)
	fillString(&c.Logging.Level, defaults.Logging.Level)

	if c.Video.Width == 0 {
		c.Video.Width = defaults.Video.Width
	}
	if c.Video.Height == 0 {
		c.Video.Height = defaults.Video.Height
	}
	if c.Video.FrameRate == 0 {
		c.Video.FrameRate = defaults.Video.FrameRate
	}

	for _, path := range []*string{&c.Paths.WorkDir, &c.Paths.LogDir, &c.Paths.StateDir} {
		expanded, err := ExpandPath(*path)
		if err != nil {
			return err
		}
		*path = expanded
	}

	if c.Frame.FontPath != "" {
		expanded, err := ExpandPath(c.Frame.FontPath)
		if err != nil {
			return err
		}
		c.Frame.FontPath = expanded
	}

	return nil
}

func fillString(field *string, fallback string) {
	if strings.TrimSpace(*field) == "" {
		*field = fallback
	} else {
		*field = strings.TrimSpace(*field)
	}
}
