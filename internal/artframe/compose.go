// Package artframe renders the per-track video frame: album artwork scaled
// into the left half, track text laid out on the right.
package artframe

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	// Cover art decoders. webp/bmp come from x/image, the rest from stdlib;
	// png registers through the encode import above.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var (
	colorWhite     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorLightGray = color.RGBA{R: 211, G: 211, B: 211, A: 255}
)

// Text holds the display fields rendered on the right half of a frame.
type Text struct {
	Title       string
	TrackNumber int
	Artist      string
	Album       string
}

// Composer renders fixed-resolution frames. Safe to reuse across tracks; the
// faces are loaded once.
type Composer struct {
	width  int
	height int
	faces  faceSet
	logger *slog.Logger
}

// NewComposer returns a Composer for the given frame size. fontPath may be
// empty; see loadFaces for the fallback chain.
func NewComposer(width, height int, fontPath string, logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{
		width:  width,
		height: height,
		faces:  loadFaces(fontPath, logger),
		logger: logger,
	}
}

// Render composes one frame. Cover art load failure degrades to a placeholder
// box; the method never fails.
func (c *Composer) Render(coverPath string, text Text) *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	draw.Draw(frame, frame.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	c.drawCover(frame, coverPath)
	c.drawText(frame, text)
	return frame
}

// RenderPNG composes one frame and writes it to path as PNG.
func (c *Composer) RenderPNG(path, coverPath string, text Text) error {
	frame := c.Render(coverPath, text)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frame file: %w", err)
	}
	if err := png.Encode(f, frame); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode frame: %w", err)
	}
	return f.Close()
}

// coverBox returns the square the artwork fits into and its top-left corner,
// centered in the left half with 50px of padding on each side.
func (c *Composer) coverBox() (size, x, y int) {
	size = min(c.height-100, c.width/2-100)
	x = (c.width/2 - size) / 2
	y = (c.height - size) / 2
	return size, x, y
}

func (c *Composer) drawCover(frame *image.RGBA, coverPath string) {
	size, boxX, boxY := c.coverBox()

	cover, err := decodeImage(coverPath)
	if err != nil {
		c.logger.Warn("cover art unusable, drawing placeholder",
			slog.String("path", coverPath),
			slog.String("error", err.Error()))
		c.drawPlaceholder(frame, size, boxX, boxY)
		return
	}

	// Fit preserving aspect ratio, centered inside the square on both axes.
	srcBounds := cover.Bounds()
	srcW, srcH := srcBounds.Dx(), srcBounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		c.drawPlaceholder(frame, size, boxX, boxY)
		return
	}
	dstW, dstH := size, size
	if srcW > srcH {
		dstH = size * srcH / srcW
	} else if srcH > srcW {
		dstW = size * srcW / srcH
	}
	dstX := boxX + (size-dstW)/2
	dstY := boxY + (size-dstH)/2
	dstRect := image.Rect(dstX, dstY, dstX+dstW, dstY+dstH)

	draw.CatmullRom.Scale(frame, dstRect, cover, srcBounds, draw.Over, nil)
}

// drawPlaceholder draws a 2px white outlined square with a centered
// "No Cover Art" label.
func (c *Composer) drawPlaceholder(frame *image.RGBA, size, x, y int) {
	outline := image.NewUniform(colorWhite)
	const border = 2
	// Top, bottom, left, right edges.
	draw.Draw(frame, image.Rect(x, y, x+size, y+border), outline, image.Point{}, draw.Src)
	draw.Draw(frame, image.Rect(x, y+size-border, x+size, y+size), outline, image.Point{}, draw.Src)
	draw.Draw(frame, image.Rect(x, y, x+border, y+size), outline, image.Point{}, draw.Src)
	draw.Draw(frame, image.Rect(x+size-border, y, x+size, y+size), outline, image.Point{}, draw.Src)

	label := "No Cover Art"
	labelWidth := font.MeasureString(c.faces.info, label).Ceil()
	metrics := c.faces.info.Metrics()
	labelX := x + (size-labelWidth)/2
	labelY := y + size/2 + (metrics.Ascent.Ceil()-metrics.Descent.Ceil())/2
	drawString(frame, c.faces.info, colorWhite, labelX, labelY, label)
}

func (c *Composer) drawText(frame *image.RGBA, text Text) {
	startX := c.width/2 + 50
	columnWidth := c.width/2 - 100

	titleAscent := c.faces.title.Metrics().Ascent.Ceil()
	infoAscent := c.faces.info.Metrics().Ascent.Ceil()
	smallAscent := c.faces.small.Metrics().Ascent.Ceil()

	trackText := fmt.Sprintf("%02d. %s", text.TrackNumber, text.Title)
	y := c.height/2 - 100

	for _, line := range wrapText(c.faces.title, trackText, columnWidth) {
		drawString(frame, c.faces.title, colorWhite, startX, y+titleAscent, line)
		y += 80
	}

	y += 40
	drawString(frame, c.faces.info, colorLightGray, startX, y+infoAscent, text.Artist)
	y += 60
	drawString(frame, c.faces.small, colorLightGray, startX, y+smallAscent, text.Album)
}

func drawString(dst *image.RGBA, face font.Face, col color.Color, x, baselineY int, s string) {
	drawer := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, baselineY),
	}
	drawer.DrawString(s)
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}
