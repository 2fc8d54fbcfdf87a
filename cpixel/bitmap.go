package cpixel

import "fmt"

/*
Bitmap is a rectangular image stored row-major: the pixel at (row, col) is Buffer[row*Width + col]. len(Buffer) must always equal Dimensions.Area(). Use NewBitmap to get that checked.

A Bitmap is owned by whoever holds it. Conversions allocate a new Bitmap rather than writing into their input.
*/
type Bitmap[T any] struct {
	Dimensions Dimensions
	Buffer     []T
}

// NewBitmap wraps buf as a bitmap of size d, or returns ErrMalformedBitmap if the lengths disagree.
func NewBitmap[T any](d Dimensions, buf []T) (Bitmap[T], error) {
	if uint(len(buf)) != d.Area() {
		return Bitmap[T]{}, fmt.Errorf("%w: %s needs %d pixels, got %d", ErrMalformedBitmap, d, d.Area(), len(buf))
	}

	return Bitmap[T]{Dimensions: d, Buffer: buf}, nil
}

// Filled returns a bitmap of size d with every pixel set to v.
func Filled[T any](d Dimensions, v T) Bitmap[T] {
	buf := make([]T, d.Area())
	for i := range buf {
		buf[i] = v
	}

	return Bitmap[T]{Dimensions: d, Buffer: buf}
}

// At returns the pixel at (row, col). It does not bounds check beyond what the slice does.
func (b Bitmap[T]) At(row, col uint) T {
	return b.Buffer[row*b.Dimensions.Width+col]
}

// Row returns row r as a subslice of the buffer (not a copy).
func (b Bitmap[T]) Row(r uint) []T {
	start := r * b.Dimensions.Width
	return b.Buffer[start : start+b.Dimensions.Width]
}

func (b Bitmap[T]) valid() bool {
	return uint(len(b.Buffer)) == b.Dimensions.Area()
}

// Cpixel is the glyph rendered for a single character cell.
type Cpixel rune

func (c Cpixel) String() string {
	return string(rune(c))
}
