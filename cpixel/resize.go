package cpixel

import (
	"fmt"
	"image"
	"image/color"

	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
)

/*
Resizer rescales a bitmap to exactly target. Implementations must keep the row-major layout and the pixel type. A target with a zero side gives an empty bitmap with dimensions == target.
*/
type Resizer[T Brightness[T]] interface {
	Resize(img Bitmap[T], target Dimensions) Bitmap[T]
}

// ResizerFunc adapts a plain function to the Resizer interface.
type ResizerFunc[T Brightness[T]] func(img Bitmap[T], target Dimensions) Bitmap[T]

func (f ResizerFunc[T]) Resize(img Bitmap[T], target Dimensions) Bitmap[T] {
	return f(img, target)
}

// resamplingModes is the private struct that functions as a namespace for the enum ResamplingMode
type resamplingModes struct{}

// ResamplingModes is the public instance of resamplingModes. Do not reassign this variable
var ResamplingModes = resamplingModes{}

type ResamplingMode int

// NearestNeighbor picks the closest source pixel for every target pixel. Fastest, and exact for integer downscales.
func (r resamplingModes) NearestNeighbor() ResamplingMode {
	return ResamplingMode(0)
}

// Bilinear interpolates between the four nearest source pixels. This is the default.
func (r resamplingModes) Bilinear() ResamplingMode {
	return ResamplingMode(1)
}

// Lanczos uses a Lanczos3 kernel. Sharpest result, slowest.
func (r resamplingModes) Lanczos() ResamplingMode {
	return ResamplingMode(2)
}

// CatmullRom uses the Catmull-Rom cubic kernel from golang.org/x/image/draw.
func (r resamplingModes) CatmullRom() ResamplingMode {
	return ResamplingMode(3)
}

func (m ResamplingMode) String() string {
	switch m {
	case ResamplingModes.NearestNeighbor():
		return "nearest"
	case ResamplingModes.Bilinear():
		return "bilinear"
	case ResamplingModes.Lanczos():
		return "lanczos"
	case ResamplingModes.CatmullRom():
		return "catmullrom"
	default:
		return fmt.Sprintf("ResamplingMode(%d)", int(m))
	}
}

// ParseResamplingMode interprets the names printed by ResamplingMode.String, plus a few short aliases.
func ParseResamplingMode(s string) (ResamplingMode, error) {
	switch s {
	case "nearest", "nearest-neighbor", "nn":
		return ResamplingModes.NearestNeighbor(), nil
	case "bilinear", "linear", "bl":
		return ResamplingModes.Bilinear(), nil
	case "lanczos", "lanczos3":
		return ResamplingModes.Lanczos(), nil
	case "catmullrom", "catmull-rom", "cubic":
		return ResamplingModes.CatmullRom(), nil
	default:
		return 0, fmt.Errorf("unknown resampling mode: %q", s)
	}
}

/*
NewResizer returns the library's Resizer for mode. Unknown modes fall back to nearest neighbour.

Bilinear and Lanczos are backed by github.com/nfnt/resize, CatmullRom by golang.org/x/image/draw. Those libraries work on image.Gray16, so pixels are rescaled to 16 bits and back. That is lossless for Luma8 and Luma16, and limits Luma32 to 16 bits of precision.
*/
func NewResizer[T Brightness[T]](mode ResamplingMode) Resizer[T] {
	switch mode {
	case ResamplingModes.Bilinear():
		return interpolatingResizer[T]{interp: resize.Bilinear}
	case ResamplingModes.Lanczos():
		return interpolatingResizer[T]{interp: resize.Lanczos3}
	case ResamplingModes.CatmullRom():
		return kernelResizer[T]{kernel: xdraw.CatmullRom}
	default:
		return nearestResizer[T]{}
	}
}

type nearestResizer[T Brightness[T]] struct{}

func (nearestResizer[T]) Resize(img Bitmap[T], target Dimensions) Bitmap[T] {
	if done, ok := trivialResize(img, target); ok {
		return done
	}

	src := img.Dimensions
	out := make([]T, target.Area())

	for y := range target.Height {
		srcY := uint(uint64(y) * uint64(src.Height) / uint64(target.Height))
		srcRow := img.Row(srcY)
		dstRow := out[y*target.Width : (y+1)*target.Width]

		for x := range target.Width {
			srcX := uint(uint64(x) * uint64(src.Width) / uint64(target.Width))
			dstRow[x] = srcRow[srcX]
		}
	}

	return Bitmap[T]{Dimensions: target, Buffer: out}
}

type interpolatingResizer[T Brightness[T]] struct {
	interp resize.InterpolationFunction
}

func (r interpolatingResizer[T]) Resize(img Bitmap[T], target Dimensions) Bitmap[T] {
	if done, ok := trivialResize(img, target); ok {
		return done
	}

	resized := resize.Resize(target.Width, target.Height, toGray16(img), r.interp)
	return fromGray[T](resized, target)
}

type kernelResizer[T Brightness[T]] struct {
	kernel *xdraw.Kernel
}

func (r kernelResizer[T]) Resize(img Bitmap[T], target Dimensions) Bitmap[T] {
	if done, ok := trivialResize(img, target); ok {
		return done
	}

	src := toGray16(img)
	dst := image.NewGray16(image.Rect(0, 0, int(target.Width), int(target.Height)))
	r.kernel.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	return fromGray[T](dst, target)
}

// trivialResize handles the cases every resizer treats the same way: empty target, empty source, no-op.
func trivialResize[T Brightness[T]](img Bitmap[T], target Dimensions) (Bitmap[T], bool) {
	var zero T

	switch {
	case target.Empty():
		return Bitmap[T]{Dimensions: target}, true
	case img.Dimensions.Empty():
		return Filled(target, zero.Min()), true
	case img.Dimensions == target:
		buf := make([]T, len(img.Buffer))
		copy(buf, img.Buffer)
		return Bitmap[T]{Dimensions: target, Buffer: buf}, true
	}

	return Bitmap[T]{}, false
}

func toGray16[T Brightness[T]](img Bitmap[T]) *image.Gray16 {
	w, h := int(img.Dimensions.Width), int(img.Dimensions.Height)
	g := image.NewGray16(image.Rect(0, 0, w, h))

	for y := range h {
		for x := range w {
			g.SetGray16(x, y, color.Gray16{Y: To16(img.Buffer[y*w+x])})
		}
	}

	return g
}

func fromGray[T Brightness[T]](img image.Image, target Dimensions) Bitmap[T] {
	bounds := img.Bounds()
	out := make([]T, target.Area())

	w, h := int(target.Width), int(target.Height)
	for y := range h {
		for x := range w {
			c := color.Gray16Model.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray16)
			out[y*w+x] = From16[T](c.Y)
		}
	}

	return Bitmap[T]{Dimensions: target, Buffer: out}
}
