package cpixel

import (
	"fmt"

	"github.com/rivo/uniseg"
)

/*
CellConverter turns a pixel bitmap into a grid of cpixels, one per cell-sized block of pixels. The returned grid must have dimensions img.Dimensions.CeilDiv(cell).
*/
type CellConverter[T Brightness[T]] interface {
	ConvertOne(img Bitmap[T], cell Dimensions, maximizeContrast bool) Bitmap[Cpixel]
}

/*
GlyphRamp is an ordered list of glyphs from darkest (index 0, used for Min brightness) to brightest (last index, used for Max brightness).
*/
type GlyphRamp []Cpixel

/*
DefaultGlyphRamp contains generic symbols commonly seen in ascii art, ordered dark to bright:

	 .'`^",:;Il!i><~+_-?][}{1)(|\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$
*/
var DefaultGlyphRamp = mustGlyphRamp(" .'`^\",:;Il!i><~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$")

/*
NewGlyphRamp builds a ramp from a string, darkest glyph first. Every glyph must take exactly one terminal cell, so combining marks, control characters and East Asian wide characters are rejected.
*/
func NewGlyphRamp(glyphs string) (GlyphRamp, error) {
	if glyphs == "" {
		return nil, fmt.Errorf("%w: ramp is empty", ErrInvalidGlyphRamp)
	}

	ramp := make(GlyphRamp, 0, len(glyphs))
	for i, r := range glyphs {
		if w := uniseg.StringWidth(string(r)); w != 1 {
			return nil, fmt.Errorf("%w: glyph %q at byte %d is %d cells wide", ErrInvalidGlyphRamp, r, i, w)
		}
		ramp = append(ramp, Cpixel(r))
	}

	return ramp, nil
}

func mustGlyphRamp(glyphs string) GlyphRamp {
	ramp, err := NewGlyphRamp(glyphs)
	if err != nil {
		panic(err)
	}
	return ramp
}

// Darkest returns the glyph used for Min brightness.
func (g GlyphRamp) Darkest() Cpixel {
	return g[0]
}

// Brightest returns the glyph used for Max brightness.
func (g GlyphRamp) Brightest() Cpixel {
	return g[len(g)-1]
}

// Lookup maps a level in [0, 1] onto the ramp. Out of range levels are clamped.
func (g GlyphRamp) Lookup(level float64) Cpixel {
	idx := int(level * float64(len(g)-1))
	idx = min(len(g)-1, max(0, idx))

	return g[idx]
}

/*
RampCellConverter is the library's CellConverter. It is stateless, so one value can serve any number of concurrent conversions.

Every block of cell pixels is reduced to its mean with Reduce. Blocks on the bottom and right edges may be partial when the image is not an exact multiple of the cell. They are reduced over the pixels they do contain.

With maximizeContrast set, the reduced values of the whole frame are stretched so the darkest cell becomes Min and the brightest becomes Max. A uniform frame is left as is.
*/
type RampCellConverter[T Brightness[T]] struct {
	Ramp GlyphRamp
}

// NewRampCellConverter returns a RampCellConverter for ramp, or DefaultGlyphRamp if ramp is empty.
func NewRampCellConverter[T Brightness[T]](ramp GlyphRamp) RampCellConverter[T] {
	if len(ramp) == 0 {
		ramp = DefaultGlyphRamp
	}
	return RampCellConverter[T]{Ramp: ramp}
}

func (c RampCellConverter[T]) ConvertOne(img Bitmap[T], cell Dimensions, maximizeContrast bool) Bitmap[Cpixel] {
	ramp := c.Ramp
	if len(ramp) == 0 {
		ramp = DefaultGlyphRamp
	}

	levels := ReduceCells(img, cell)
	if maximizeContrast {
		StretchFrame(levels.Buffer)
	}

	out := make([]Cpixel, len(levels.Buffer))
	for i, v := range levels.Buffer {
		out[i] = ramp.Lookup(Level(v))
	}

	return Bitmap[Cpixel]{Dimensions: levels.Dimensions, Buffer: out}
}

/*
ReduceCells partitions img into cell-sized blocks and reduces each block to one intensity. The result has one pixel per block, with dimensions img.Dimensions.CeilDiv(cell).
*/
func ReduceCells[T Brightness[T]](img Bitmap[T], cell Dimensions) Bitmap[T] {
	grid := img.Dimensions.CeilDiv(cell)
	if grid.Empty() || img.Dimensions.Empty() {
		return Bitmap[T]{Dimensions: grid, Buffer: make([]T, grid.Area())}
	}

	out := make([]T, grid.Area())
	block := make([]T, 0, min(cell.Area(), img.Dimensions.Area()))

	for r := range grid.Height {
		top := r * cell.Height
		bottom := min(top+cell.Height, img.Dimensions.Height)

		for c := range grid.Width {
			left := c * cell.Width
			right := min(left+cell.Width, img.Dimensions.Width)

			block = block[:0]
			for y := top; y < bottom; y++ {
				block = append(block, img.Row(y)[left:right]...)
			}

			out[r*grid.Width+c] = Reduce(block)
		}
	}

	return Bitmap[T]{Dimensions: grid, Buffer: out}
}

// StretchFrame applies Stretch to every value in frame, using the frame's own min and max as the observed range.
func StretchFrame[T Brightness[T]](frame []T) {
	if len(frame) == 0 {
		return
	}

	lo, hi := frame[0], frame[0]
	for _, v := range frame[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	for i, v := range frame {
		frame[i] = Stretch(v, lo, hi)
	}
}
