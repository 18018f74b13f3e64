package artframe

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font"
)

func newTestComposer(t *testing.T) *Composer {
	t.Helper()
	return NewComposer(1920, 1080, "", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeCover(t *testing.T, width, height int, fill color.RGBA) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, fill)
		}
	}
	path := filepath.Join(t.TempDir(), "cover.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create cover: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode cover: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close cover: %v", err)
	}
	return path
}

func TestRenderPlacesCoverInLeftHalf(t *testing.T) {
	c := newTestComposer(t)
	cover := writeCover(t, 500, 500, color.RGBA{R: 200, G: 40, B: 40, A: 255})

	frame := c.Render(cover, Text{Title: "Opening", TrackNumber: 1, Artist: "The Band", Album: "Live Set"})

	size, x, y := c.coverBox()
	center := frame.RGBAAt(x+size/2, y+size/2)
	if center.R < 100 || center.G > 100 {
		t.Fatalf("expected red cover pixel at box center, got %+v", center)
	}

	// Outside the cover box the background stays black.
	corner := frame.RGBAAt(2, 2)
	if corner.R != 0 || corner.G != 0 || corner.B != 0 {
		t.Fatalf("expected black background, got %+v", corner)
	}
}

func TestRenderPreservesAspectRatio(t *testing.T) {
	c := newTestComposer(t)
	// A wide cover must be letterboxed inside the square: pixels above the
	// centered strip stay black.
	cover := writeCover(t, 800, 200, color.RGBA{R: 40, G: 200, B: 40, A: 255})

	frame := c.Render(cover, Text{Title: "Wide", TrackNumber: 1})

	size, x, y := c.coverBox()
	top := frame.RGBAAt(x+size/2, y+4)
	if top.G > 100 {
		t.Fatalf("expected letterboxed area above wide cover, got %+v", top)
	}
	middle := frame.RGBAAt(x+size/2, y+size/2)
	if middle.G < 100 {
		t.Fatalf("expected cover pixel at vertical center, got %+v", middle)
	}
}

func TestRenderUnreadableCoverDrawsPlaceholder(t *testing.T) {
	c := newTestComposer(t)

	frame := c.Render(filepath.Join(t.TempDir(), "missing.jpg"), Text{Title: "Opening", TrackNumber: 1})

	size, x, y := c.coverBox()
	edge := frame.RGBAAt(x+size/2, y)
	if edge.R != 255 || edge.G != 255 || edge.B != 255 {
		t.Fatalf("expected white outline pixel on placeholder border, got %+v", edge)
	}
	inside := frame.RGBAAt(x+size/4, y+size/4)
	if inside.R != 0 {
		t.Fatalf("expected black interior inside placeholder, got %+v", inside)
	}
}

func TestRenderPNGWritesFile(t *testing.T) {
	c := newTestComposer(t)
	path := filepath.Join(t.TempDir(), "frame_000.png")

	if err := c.RenderPNG(path, "no-cover-here.png", Text{Title: "Opening", TrackNumber: 1}); err != nil {
		t.Fatalf("RenderPNG returned error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open frame: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	if cfg.Width != 1920 || cfg.Height != 1080 {
		t.Fatalf("unexpected frame size: %dx%d", cfg.Width, cfg.Height)
	}
}

func TestWrapTextSplitsLongTitles(t *testing.T) {
	c := newTestComposer(t)
	column := 1920/2 - 100
	title := "01. The Continuing Story of a Song With an Exceptionally Long and Winding Title"

	lines := wrapText(c.faces.title, title, column)
	if len(lines) < 2 {
		t.Fatalf("expected wrapped title to span multiple lines, got %v", lines)
	}
	for _, line := range lines {
		if strings.Contains(line, " ") && font.MeasureString(c.faces.title, line).Ceil() > column {
			t.Fatalf("multi-word line exceeds column width: %q", line)
		}
	}
}

func TestWrapTextOverlongSingleWord(t *testing.T) {
	c := newTestComposer(t)
	word := strings.Repeat("Overlong", 12)

	lines := wrapText(c.faces.title, "short "+word+" tail", 300)
	found := false
	for _, line := range lines {
		if line == word {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected overlong word on its own line, got %v", lines)
	}
}

func TestWrapTextShortTitleSingleLine(t *testing.T) {
	c := newTestComposer(t)
	lines := wrapText(c.faces.title, "01. Help", 1920/2-100)
	if len(lines) != 1 || lines[0] != "01. Help" {
		t.Fatalf("unexpected wrap of short title: %v", lines)
	}
}
