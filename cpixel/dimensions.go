package cpixel

import (
	"fmt"
	"math"
	"math/bits"
)

/*
Dimensions is a 2D size, in whatever unit the caller is working in (pixels or character cells). It is a plain value and is always copied, never shared.

A zero Height or Width describes an empty area. Every operation on Dimensions tolerates empty areas and never divides by zero.
*/
type Dimensions struct {
	Height uint
	Width  uint
}

// Area returns Height * Width, saturating at the maximum uint.
func (d Dimensions) Area() uint {
	return mulSat(d.Height, d.Width)
}

// Empty reports whether either side is zero.
func (d Dimensions) Empty() bool {
	return d.Height == 0 || d.Width == 0
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Height, d.Width)
}

/*
Scale multiplies both sides by the matching side of factor. Use it to turn an area measured in character cells into an area measured in pixels:

	screenInPixels := outputConstraints.Scale(cpixelDimensions)

Overflowing sides saturate at the maximum uint instead of wrapping.
*/
func (d Dimensions) Scale(factor Dimensions) Dimensions {
	return Dimensions{
		Height: mulSat(d.Height, factor.Height),
		Width:  mulSat(d.Width, factor.Width),
	}
}

/*
CeilDiv returns how many blocks of size block are needed to cover d, counting a partially covered block as a whole one. Dividing by a block with a zero side returns an empty Dimensions.
*/
func (d Dimensions) CeilDiv(block Dimensions) Dimensions {
	if block.Empty() {
		return Dimensions{}
	}

	return Dimensions{
		Height: ceilDiv(d.Height, block.Height),
		Width:  ceilDiv(d.Width, block.Width),
	}
}

/*
FitWithLockedRatio returns the largest Dimensions that fits inside bounds while keeping the height/width ratio of source.

The scale factor that fits the height (bounds.Height / source.Height) is compared against the one that fits the width (bounds.Width / source.Width). The smaller one is applied to both sides, and the result is floored so it never exceeds bounds on either axis. This can upscale as well as downscale.

All arithmetic is exact integer arithmetic on 128 bit intermediates, so results are identical on every platform. If source or bounds is empty, or flooring collapses one side to zero, the result is the empty Dimensions{}.
*/
func FitWithLockedRatio(source, bounds Dimensions) Dimensions {
	if source.Empty() || bounds.Empty() {
		return Dimensions{}
	}

	sh, sw := uint64(source.Height), uint64(source.Width)
	bh, bw := uint64(bounds.Height), uint64(bounds.Width)

	// bh/sh <= bw/sw  <=>  bh*sw <= bw*sh
	heightHi, heightLo := bits.Mul64(bh, sw)
	widthHi, widthLo := bits.Mul64(bw, sh)
	heightLimited := heightHi < widthHi || (heightHi == widthHi && heightLo <= widthLo)

	var fit Dimensions
	if heightLimited {
		fit = Dimensions{
			Height: bounds.Height,
			Width:  uint(mulDiv(sw, bh, sh)),
		}
	} else {
		fit = Dimensions{
			Height: uint(mulDiv(sh, bw, sw)),
			Width:  bounds.Width,
		}
	}

	if fit.Empty() {
		return Dimensions{}
	}

	return fit
}

// mulDiv computes floor(a*b/c). The caller guarantees the quotient fits in 64 bits.
func mulDiv(a, b, c uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	q, _ := bits.Div64(hi, lo, c)
	return q
}

func mulSat(a, b uint) uint {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxUint {
		return math.MaxUint
	}
	return uint(lo)
}

func ceilDiv(a, b uint) uint {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}
