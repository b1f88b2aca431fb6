package art

import (
	"image"
	"testing"
)

func TestBlockSelectsMode(t *testing.T) {
	if got := len(Block(false)); got != 8 {
		t.Fatalf("full block has %d lines, want 8", got)
	}
	if got := len(Block(true)); got != 3 {
		t.Fatalf("minimal block has %d lines, want 3", got)
	}
}

func TestBlockLinesUniformWidth(t *testing.T) {
	for _, minimal := range []bool{false, true} {
		block := Block(minimal)
		want := Width(block)
		for i, line := range block {
			if w := Width([]string{line}); w != want {
				t.Fatalf("minimal=%v line %d has width %d, want %d", minimal, i, w, want)
			}
		}
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		lines []string
		want  int
	}{
		{nil, 0},
		{Block(false), 23},
		{Block(true), 11},
		{[]string{"ab", "abcd", "a"}, 4},
	}
	for _, tt := range tests {
		if got := Width(tt.lines); got != tt.want {
			t.Fatalf("Width(%q) = %d, want %d", tt.lines, got, tt.want)
		}
	}
}

func TestRasterizePreservesAspect(t *testing.T) {
	const widthPx = 320
	img, err := Rasterize(widthPx)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != widthPx {
		t.Fatalf("raster width = %d, want %d", bounds.Dx(), widthPx)
	}
	ratio := float64(bounds.Dy()) / float64(bounds.Dx())
	if ratio < 0.4 || ratio > 0.9 {
		t.Fatalf("raster aspect ratio %.2f outside the crab's proportions", ratio)
	}
	rgba, ok := img.(*image.RGBA)
	if !ok {
		t.Fatalf("Rasterize returned %T, want *image.RGBA", img)
	}
	center := rgba.RGBAAt(bounds.Dx()/2, bounds.Dy()/2)
	if center.A == 0 {
		t.Fatal("raster center pixel is fully transparent, nothing was drawn")
	}
}

func TestRasterizeRejectsBadWidth(t *testing.T) {
	if _, err := Rasterize(0); err == nil {
		t.Fatal("Rasterize(0) succeeded, want error")
	}
}
