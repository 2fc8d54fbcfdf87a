package cpixel

import "math"

/*
Intensity is the set of unsigned integer representations a pixel may use. Widths above 32 bits are left out on purpose: every brightness computation widens to 64 bits internally and that must never wrap.
*/
type Intensity interface {
	~uint8 | ~uint16 | ~uint32
}

/*
Brightness is the capability every pixel type must have to take part in a conversion. It is satisfied by Luma8, Luma16 and Luma32, and by any user type with an unsigned underlying type of up to 32 bits that implements the three methods.

	- Min returns the lowest representable intensity (black).
	- Max returns the highest representable intensity (white).
	- Average returns the midpoint of the receiver and another intensity. Implementations must widen before adding so the sum cannot overflow.

Min and Max never look at the receiver, so they can be called on the zero value:

	var zero T
	lo, hi := zero.Min(), zero.Max()
*/
type Brightness[T any] interface {
	Intensity
	Min() T
	Max() T
	Average(T) T
}

// Luma8 is an 8 bit grayscale intensity in [0, 255].
type Luma8 uint8

func (Luma8) Min() Luma8 { return 0 }
func (Luma8) Max() Luma8 { return math.MaxUint8 }

// Average returns (p + q) / 2, computed in 16 bits.
func (p Luma8) Average(q Luma8) Luma8 {
	return Luma8((uint16(p) + uint16(q)) / 2)
}

// Luma16 is a 16 bit grayscale intensity in [0, 65535].
type Luma16 uint16

func (Luma16) Min() Luma16 { return 0 }
func (Luma16) Max() Luma16 { return math.MaxUint16 }

// Average returns (p + q) / 2, computed in 32 bits.
func (p Luma16) Average(q Luma16) Luma16 {
	return Luma16((uint32(p) + uint32(q)) / 2)
}

// Luma32 is a 32 bit grayscale intensity.
type Luma32 uint32

func (Luma32) Min() Luma32 { return 0 }
func (Luma32) Max() Luma32 { return math.MaxUint32 }

// Average returns (p + q) / 2, computed in 64 bits.
func (p Luma32) Average(q Luma32) Luma32 {
	return Luma32((uint64(p) + uint64(q)) / 2)
}

/*
Level returns where v sits between T's Min and Max, as a value in [0, 1]. Values outside of [Min, Max] (only possible for user types with a narrower range than their underlying type) are clamped.
*/
func Level[T Brightness[T]](v T) float64 {
	var zero T
	lo, hi := zero.Min(), zero.Max()
	if hi <= lo {
		return 0
	}
	if v <= lo {
		return 0
	}
	if v >= hi {
		return 1
	}

	return float64(uint64(v)-uint64(lo)) / float64(uint64(hi)-uint64(lo))
}

// FromLevel is the inverse of Level. It rounds to the nearest intensity and clamps level to [0, 1].
func FromLevel[T Brightness[T]](level float64) T {
	var zero T
	lo, hi := zero.Min(), zero.Max()

	switch {
	case math.IsNaN(level) || level <= 0:
		return lo
	case level >= 1:
		return hi
	}

	span := float64(uint64(hi) - uint64(lo))
	return T(uint64(lo) + uint64(math.Round(level*span)))
}

/*
Stretch linearly maps v from the observed range [lo, hi] onto T's full range [Min, Max]. This is the contrast maximization step. When the observed range is a single value there is nothing to stretch and v is returned as is.
*/
func Stretch[T Brightness[T]](v, lo, hi T) T {
	var zero T
	tMin, tMax := zero.Min(), zero.Max()

	if hi <= lo {
		return v
	}
	if v <= lo {
		return tMin
	}
	if v >= hi {
		return tMax
	}

	// Each factor is < 2^32, so the product fits in 64 bits.
	offset := (uint64(v) - uint64(lo)) * (uint64(tMax) - uint64(tMin))
	return T(uint64(tMin) + offset/(uint64(hi)-uint64(lo)))
}

/*
Reduce collapses samples into their arithmetic mean, rounded down. The sum is accumulated in 64 bits, so it cannot wrap for blocks of up to 2^32 samples. Every sample carries the same weight whatever its position. An empty slice reduces to Min.
*/
func Reduce[T Brightness[T]](samples []T) T {
	if len(samples) == 0 {
		var zero T
		return zero.Min()
	}

	var sum uint64
	for _, v := range samples {
		sum += uint64(v)
	}

	return T(sum / uint64(len(samples)))
}

// To16 rescales v onto the 16 bit gray space used by image.Gray16.
func To16[T Brightness[T]](v T) uint16 {
	return uint16(math.Round(Level(v) * math.MaxUint16))
}

// From16 is the inverse of To16.
func From16[T Brightness[T]](v uint16) T {
	return FromLevel[T](float64(v) / math.MaxUint16)
}
