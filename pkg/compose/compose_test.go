package compose

import (
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/collage/pkg/errors"
	"github.com/matzehuels/collage/pkg/layout"
)

var (
	black = color.NRGBA{A: 255}
	red   = color.NRGBA{R: 255, A: 255}
)

// writeColorJPEG encodes a uniformly colored JPEG at path.
func writeColorJPEG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, imaging.New(w, h, c), &jpeg.Options{Quality: 95}); err != nil {
		t.Fatal(err)
	}
}

// isDark reports whether the pixel is close to black.
func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r>>8 < 32 && g>>8 < 32 && b>>8 < 32
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{name: "black", input: "#000000", want: color.NRGBA{A: 255}},
		{name: "white", input: "#FFFFFF", want: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{name: "orange", input: "#ff8800", want: color.NRGBA{R: 255, G: 136, A: 255}},
		{name: "short form", input: "#f00", want: color.NRGBA{R: 255, A: 255}},
		{name: "missing hash", input: "ff8800", wantErr: true},
		{name: "garbage", input: "#zzzzzz", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) = nil error, want INVALID_COLOR", tt.input)
				}
				if !errors.Is(err, errors.ErrCodeInvalidColor) {
					t.Errorf("error code = %q, want INVALID_COLOR", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFitCellLetterbox(t *testing.T) {
	// A wide 2:1 image in a square cell: fitted to 60x30, centered, with
	// letterbox bars above and below.
	src := imaging.New(100, 50, red)
	cell := FitCell(src, 60, 60, black)

	if got := cell.Bounds(); got.Dx() != 60 || got.Dy() != 60 {
		t.Fatalf("cell bounds = %v, want 60x60", got)
	}
	if !isDark(cell.At(30, 2)) {
		t.Error("top letterbox bar should be background")
	}
	if !isDark(cell.At(30, 57)) {
		t.Error("bottom letterbox bar should be background")
	}
	if isDark(cell.At(30, 30)) {
		t.Error("cell center should hold image content")
	}
}

func TestFitCellPillarbox(t *testing.T) {
	// A tall 1:2 image in a square cell: bars appear left and right.
	src := imaging.New(50, 100, red)
	cell := FitCell(src, 60, 60, black)

	if !isDark(cell.At(2, 30)) {
		t.Error("left pillarbox bar should be background")
	}
	if !isDark(cell.At(57, 30)) {
		t.Error("right pillarbox bar should be background")
	}
	if isDark(cell.At(30, 30)) {
		t.Error("cell center should hold image content")
	}
}

func TestCompose(t *testing.T) {
	dir := t.TempDir()
	files := make([]string, 4)
	for i := range files {
		files[i] = filepath.Join(dir, string(rune('a'+i))+".jpg")
		writeColorJPEG(t, files[i], 100, 100, red)
	}

	grid, err := layout.Calculate(4, 1.0, layout.Constraints{Size: 200, Padding: 0})
	if err != nil {
		t.Fatal(err)
	}

	c := &Compositor{Workers: 2}
	canvas, err := c.Compose(context.Background(), files, grid, black)
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}

	if b := canvas.Bounds(); b.Dx() != grid.CanvasWidth || b.Dy() != grid.CanvasHeight {
		t.Fatalf("canvas = %v, want %dx%d", b, grid.CanvasWidth, grid.CanvasHeight)
	}

	// Every cell center must hold image content.
	for i := range files {
		x, y := grid.CellOrigin(i)
		cx, cy := x+grid.CellWidth/2, y+grid.CellHeight/2
		if isDark(canvas.At(cx, cy)) {
			t.Errorf("cell %d center (%d,%d) is background, want image content", i, cx, cy)
		}
	}
}

func TestComposeSkipsUndecodable(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.jpg")
	bad := filepath.Join(dir, "bad.jpg")
	writeColorJPEG(t, good, 100, 100, red)
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	grid, err := layout.Calculate(2, 1.0, layout.Constraints{Size: 200, Padding: 0})
	if err != nil {
		t.Fatal(err)
	}

	c := &Compositor{}
	canvas, err := c.Compose(context.Background(), []string{good, bad}, grid, black)
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}

	// First cell has content, second stays background-only.
	x, y := grid.CellOrigin(0)
	if isDark(canvas.At(x+grid.CellWidth/2, y+grid.CellHeight/2)) {
		t.Error("cell 0 should hold image content")
	}
	x, y = grid.CellOrigin(1)
	if !isDark(canvas.At(x+grid.CellWidth/2, y+grid.CellHeight/2)) {
		t.Error("cell 1 should stay background after decode failure")
	}
}

func TestComposeCanceledContext(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.jpg")
	writeColorJPEG(t, file, 50, 50, red)

	grid, err := layout.Calculate(1, 1.0, layout.Constraints{Size: 100, Padding: 0})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &Compositor{}
	if _, err := c.Compose(ctx, []string{file}, grid, black); err == nil {
		t.Error("Compose() with canceled context = nil error, want context.Canceled")
	}
}

func TestWriteJPEG(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "nested", "deeper", "collage.jpg")

	img := imaging.New(32, 24, red)
	if err := WriteJPEG(img, out, 80); err != nil {
		t.Fatalf("WriteJPEG() error: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	defer f.Close()

	decoded, format, err := image.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("format = %q, want jpeg", format)
	}
	if b := decoded.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Errorf("bounds = %v, want 32x24", b)
	}
}

func TestWriteJPEGInvalidQuality(t *testing.T) {
	img := imaging.New(8, 8, black)
	err := WriteJPEG(img, filepath.Join(t.TempDir(), "x.jpg"), 0)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %q, want INVALID_INPUT", errors.GetCode(err))
	}
}
