package artframe

import (
	"log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Point sizes for the three text tiers on the right half of the frame.
const (
	titleFontSize = 72
	infoFontSize  = 48
	smallFontSize = 36
)

type faceSet struct {
	title font.Face
	info  font.Face
	small font.Face
}

// loadFaces builds the three text faces. Preference order: the configured
// font file, then the embedded Go font, then the built-in bitmap face.
// Rendering never fails for font reasons.
func loadFaces(fontPath string, logger *slog.Logger) faceSet {
	parsed := loadFont(fontPath, logger)
	if parsed == nil {
		return faceSet{
			title: basicfont.Face7x13,
			info:  basicfont.Face7x13,
			small: basicfont.Face7x13,
		}
	}
	return faceSet{
		title: newFace(parsed, titleFontSize),
		info:  newFace(parsed, infoFontSize),
		small: newFace(parsed, smallFontSize),
	}
}

func loadFont(fontPath string, logger *slog.Logger) *sfnt.Font {
	if fontPath != "" {
		raw, err := os.ReadFile(fontPath)
		if err == nil {
			parsed, parseErr := opentype.Parse(raw)
			if parseErr == nil {
				return parsed
			}
			err = parseErr
		}
		logger.Warn("configured font unusable, falling back to embedded font",
			slog.String("path", fontPath),
			slog.String("error", err.Error()))
	}

	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		logger.Warn("embedded font unusable, falling back to bitmap face",
			slog.String("error", err.Error()))
		return nil
	}
	return parsed
}

func newFace(parsed *sfnt.Font, size float64) font.Face {
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}
