package cpixel

import (
	"math"
	"strings"
	"testing"
)

// split builds a height x width image whose columns left of at are lo and the rest hi.
func split(height, width, at uint, lo, hi Luma8) Bitmap[Luma8] {
	img := Filled(Dimensions{height, width}, lo)
	for r := range height {
		row := img.Row(r)
		for c := at; c < width; c++ {
			row[c] = hi
		}
	}
	return img
}

func TestEdgeCellConverterVerticalEdge(t *testing.T) {
	cc := NewEdgeCellConverter[Luma8](nil)
	grid := cc.ConvertOne(split(4, 6, 3, 0, 255), Dimensions{1, 1}, false)

	want := strings.Repeat("  ||$$\n", 4)
	if got := Render(grid); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEdgeCellConverterHorizontalEdge(t *testing.T) {
	img, _ := NewBitmap(Dimensions{4, 3}, []Luma8{
		0, 0, 0,
		0, 0, 0,
		255, 255, 255,
		255, 255, 255,
	})

	cc := NewEdgeCellConverter[Luma8](nil)
	grid := cc.ConvertOne(img, Dimensions{1, 1}, false)

	want := "   \n===\n===\n$$$\n"
	if got := Render(grid); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEdgeCellConverterKeepsFlatAreas(t *testing.T) {
	fill := NewRampCellConverter[Luma8](DefaultGlyphRamp)
	cc := NewEdgeCellConverter[Luma8](fill)

	img := Filled(Dimensions{5, 5}, Luma8(90))
	if got, want := Render(cc.ConvertOne(img, Dimensions{1, 1}, false)), Render(fill.ConvertOne(img, Dimensions{1, 1}, false)); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Tall cells raise the magnitude threshold by the squared aspect ratio.
func TestEdgeCellConverterScalesThresholdByAspect(t *testing.T) {
	fill := NewRampCellConverter[Luma8](DefaultGlyphRamp)
	cc := NewEdgeCellConverter[Luma8](fill)

	square := split(4, 6, 3, 0, 100)
	if got, plain := Render(cc.ConvertOne(square, Dimensions{1, 1}, false)), Render(fill.ConvertOne(square, Dimensions{1, 1}, false)); got == plain {
		t.Errorf("square cells: no edges found in %q", got)
	}

	tall := split(8, 6, 3, 0, 100)
	if got, plain := Render(cc.ConvertOne(tall, Dimensions{2, 1}, false)), Render(fill.ConvertOne(tall, Dimensions{2, 1}, false)); got != plain {
		t.Errorf("tall cells: got %q, want %q", got, plain)
	}
}

func TestEdgeGlyph(t *testing.T) {
	tests := []struct {
		grad float64
		want Cpixel
	}{
		{math.Inf(-1), '='},
		{-10, '='},
		{-3, '\\'},
		{-1.5, 'l'},
		{-0.7, 'L'},
		{0, '|'},
		{0.7, 'J'},
		{1.5, 'j'},
		{3, '/'},
		{10, '='},
		{math.Inf(1), '='},
	}

	for _, tt := range tests {
		if got := edgeGlyph(tt.grad); got != tt.want {
			t.Errorf("edgeGlyph(%v) = %q, want %q", tt.grad, got, tt.want)
		}
	}
}

func TestGradient(t *testing.T) {
	if got := gradient(0, 5); !math.IsInf(got, 1) {
		t.Errorf("gradient(0, 5) = %v", got)
	}
	if got := gradient(0, -5); !math.IsInf(got, -1) {
		t.Errorf("gradient(0, -5) = %v", got)
	}
	if got := gradient(4, 2); got != 0.5 {
		t.Errorf("gradient(4, 2) = %v", got)
	}
}

func TestWithEdgeGlyphs(t *testing.T) {
	img := split(4, 6, 3, 0, 255)
	ramp, _ := NewGlyphRamp(" #")

	// The ramp option comes after the edge option and must still get outlines drawn over it.
	c := New(img.Dimensions, img.Dimensions, Dimensions{1, 1}, false,
		WithResamplingMode[Luma8](ResamplingModes.NearestNeighbor()),
		WithEdgeGlyphs[Luma8](true),
		WithGlyphRamp[Luma8](ramp),
	)

	grid, err := c.ConvertOne(img)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Render(grid), strings.Repeat("  ||##\n", 4); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	off := New(img.Dimensions, img.Dimensions, Dimensions{1, 1}, false,
		WithEdgeGlyphs[Luma8](false),
		WithGlyphRamp[Luma8](ramp),
	)
	grid, err = off.ConvertOne(img)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Render(grid), strings.Repeat("   ###\n", 4); got != want {
		t.Errorf("edges off: got %q, want %q", got, want)
	}
}
