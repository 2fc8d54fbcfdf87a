// Package imageio decodes image files into grayscale cpixel bitmaps.
//
// The decoders for png, jpeg, gif, bmp and webp are registered on import. To support other image formats, import
// your custom decoders for their side effects as usual, image.Decode() picks them up.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/nebbyJammin/cpixel/cpixel"
)

// luminanceModels is the private struct that functions as a namespace for the enum LuminanceModel
type luminanceModels struct{}

// LuminanceModels is the public instance of luminanceModels. Do not reassign this variable
var LuminanceModels = luminanceModels{}

type LuminanceModel int

/*
Rec709 uses the ITU-R BT.709 weights (0.2126 R + 0.7152 G + 0.0722 B) on the gamma encoded channels, scaled by alpha so transparent pixels come out black.
*/
func (l luminanceModels) Rec709() LuminanceModel {
	return LuminanceModel(0)
}

/*
Perceptual uses the L* lightness of CIE L*a*b*. Mid tones are spread more evenly along the glyph ramp than with Rec709. Alpha is applied the same way.
*/
func (l luminanceModels) Perceptual() LuminanceModel {
	return LuminanceModel(1)
}

func (m LuminanceModel) String() string {
	switch m {
	case LuminanceModels.Rec709():
		return "rec709"
	case LuminanceModels.Perceptual():
		return "perceptual"
	default:
		return fmt.Sprintf("LuminanceModel(%d)", int(m))
	}
}

func ParseLuminanceModel(s string) (LuminanceModel, error) {
	switch s {
	case "rec709", "709", "luma":
		return LuminanceModels.Rec709(), nil
	case "perceptual", "lab", "lightness":
		return LuminanceModels.Perceptual(), nil
	default:
		return 0, fmt.Errorf("unknown luminance model: %q", s)
	}
}

// Level returns the brightness of c in [0, 1] under model m.
func (m LuminanceModel) Level(c color.Color) float64 {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return 0
	}
	alpha := float64(a) / 0xffff

	if m == LuminanceModels.Perceptual() {
		// colorful wants non-premultiplied channels.
		straight := colorful.Color{
			R: float64(r) / float64(a),
			G: float64(g) / float64(a),
			B: float64(b) / float64(a),
		}
		l, _, _ := straight.Clamped().Lab()
		return clamp01(l) * alpha
	}

	// RGBA() is alpha premultiplied, which already scales by alpha.
	return clamp01((0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 0xffff)
}

// FromImage converts img to a bitmap of T using model. The bitmap has img's bounds as its dimensions.
func FromImage[T cpixel.Brightness[T]](img image.Image, model LuminanceModel) cpixel.Bitmap[T] {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	d := cpixel.Dimensions{Height: uint(h), Width: uint(w)}

	buf := make([]T, w*h)

	// Gray images need no luminance model.
	switch gray := img.(type) {
	case *image.Gray:
		for y := range h {
			for x := range w {
				buf[y*w+x] = cpixel.FromLevel[T](float64(gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y) / 0xff)
			}
		}
		return cpixel.Bitmap[T]{Dimensions: d, Buffer: buf}
	case *image.Gray16:
		for y := range h {
			for x := range w {
				buf[y*w+x] = cpixel.From16[T](gray.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y)
			}
		}
		return cpixel.Bitmap[T]{Dimensions: d, Buffer: buf}
	}

	for y := range h {
		for x := range w {
			buf[y*w+x] = cpixel.FromLevel[T](model.Level(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}

	return cpixel.Bitmap[T]{Dimensions: d, Buffer: buf}
}

/*
Decode reads an image from r and converts it with FromImage. It uses image.Decode() under the hood, so only registered formats are understood.
*/
func Decode[T cpixel.Brightness[T]](r io.Reader, model LuminanceModel) (cpixel.Bitmap[T], string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return cpixel.Bitmap[T]{}, "", fmt.Errorf("decoding image: %w", err)
	}

	return FromImage[T](img, model), format, nil
}

// Load opens path and decodes it, see Decode.
func Load[T cpixel.Brightness[T]](path string, model LuminanceModel) (cpixel.Bitmap[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return cpixel.Bitmap[T]{}, fmt.Errorf("error reading file %s: %w", path, err)
	}
	defer f.Close()

	bm, _, err := Decode[T](f, model)
	if err != nil {
		return cpixel.Bitmap[T]{}, fmt.Errorf("%s: %w", path, err)
	}

	return bm, nil
}

func clamp01(v float64) float64 {
	return min(1, max(0, v))
}
