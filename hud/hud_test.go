package hud

import (
	"image"
	"image/color"
	"testing"
)

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -1 && d <= 1
}

func TestBoxBackground(t *testing.T) {
	r, err := NewRasterizer(1)
	if err != nil {
		t.Fatalf("NewRasterizer: %v", err)
	}

	tests := []struct {
		name string
		bg   color.RGBA
	}{
		{"blue", color.RGBA{0, 0, 255, 255}},
		{"red", color.RGBA{255, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := r.Box("5000", Bold, 48, color.White, tt.bg, 178, 80, 4)
			if err != nil {
				t.Fatalf("Box: %v", err)
			}
			if got := img.Bounds(); got != image.Rect(0, 0, 178, 80) {
				t.Fatalf("bounds = %v, want 178x80", got)
			}

			// left margin, away from the text and the rounded corners
			got := img.RGBAAt(4, 40)
			if !near(got.R, tt.bg.R) || !near(got.G, tt.bg.G) || !near(got.B, tt.bg.B) || !near(got.A, 255) {
				t.Errorf("background pixel = %v, want %v", got, tt.bg)
			}

			// the very corner is cut by the radius
			if corner := img.RGBAAt(0, 0); corner.A == 255 {
				t.Errorf("corner pixel is fully opaque: %v", corner)
			}

			if !hasWhite(img) {
				t.Error("no white text pixels drawn")
			}
		})
	}
}

func hasWhite(img *image.RGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R == 255 && c.G == 255 && c.B == 255 {
				return true
			}
		}
	}
	return false
}

func TestBoxScale(t *testing.T) {
	r, err := NewRasterizer(2)
	if err != nil {
		t.Fatalf("NewRasterizer: %v", err)
	}
	img, err := r.Box("0", Bold, 48, color.White, color.Black, 178, 80, 4)
	if err != nil {
		t.Fatalf("Box: %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 356, 160) {
		t.Errorf("bounds = %v, want 356x160", got)
	}
}

func TestTextWidthGrows(t *testing.T) {
	r, err := NewRasterizer(1)
	if err != nil {
		t.Fatalf("NewRasterizer: %v", err)
	}
	short, err := r.Text("0", Bold, 32, color.Black)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	long, err := r.Text("#AkuBalatro", Bold, 32, color.Black)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if long.Bounds().Dx() <= short.Bounds().Dx() {
		t.Errorf("widths: %d <= %d", long.Bounds().Dx(), short.Bounds().Dx())
	}
	if long.Bounds().Dy() != short.Bounds().Dy() {
		t.Errorf("heights differ: %d vs %d", long.Bounds().Dy(), short.Bounds().Dy())
	}
}

func TestStats(t *testing.T) {
	s := NewStats()
	if s.String() != "-- FPS" {
		t.Errorf("initial String() = %q", s.String())
	}

	now := 0.0
	s.Tick(now)
	changed := false
	for i := 0; i < 61; i++ {
		now += 1.0 / 60
		changed = s.Tick(now) || changed
	}
	if !changed {
		t.Fatal("no update after one second of frames")
	}
	if s.FPS() != 60 {
		t.Errorf("FPS() = %v, want 60", s.FPS())
	}

	for i := 0; i < 31; i++ {
		now += 1.0 / 30
		s.Tick(now)
	}
	if s.FPS() != 30 {
		t.Errorf("FPS() = %v, want 30", s.FPS())
	}
	if got, want := s.String(), "30 FPS (30-60)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if ft := s.FrameTime(); ft < 33 || ft > 34 {
		t.Errorf("FrameTime() = %v, want ~33.3", ft)
	}
}
