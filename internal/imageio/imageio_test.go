package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/nebbyJammin/cpixel/cpixel"
)

func checker() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.Black)
	img.Set(1, 0, color.White)
	img.Set(0, 1, color.White)
	img.Set(1, 1, color.Black)
	return img
}

func TestFromImageRGBA(t *testing.T) {
	for _, model := range []LuminanceModel{LuminanceModels.Rec709(), LuminanceModels.Perceptual()} {
		bm := FromImage[cpixel.Luma8](checker(), model)

		if bm.Dimensions != (cpixel.Dimensions{Height: 2, Width: 2}) {
			t.Fatalf("%s: dims = %v", model, bm.Dimensions)
		}

		want := []cpixel.Luma8{0, 255, 255, 0}
		for i := range want {
			if bm.Buffer[i] != want[i] {
				t.Errorf("%s: pixel %d = %d, want %d", model, i, bm.Buffer[i], want[i])
			}
		}
	}
}

func TestFromImageGray(t *testing.T) {
	img := image.NewGray(image.Rect(3, 3, 5, 4))
	img.SetGray(3, 3, color.Gray{Y: 12})
	img.SetGray(4, 3, color.Gray{Y: 250})

	bm := FromImage[cpixel.Luma8](img, LuminanceModels.Perceptual())
	if bm.Dimensions != (cpixel.Dimensions{Height: 1, Width: 2}) {
		t.Fatalf("dims = %v", bm.Dimensions)
	}
	if bm.Buffer[0] != 12 || bm.Buffer[1] != 250 {
		t.Errorf("buffer = %v, want [12 250]", bm.Buffer)
	}

	wide := FromImage[cpixel.Luma16](img, LuminanceModels.Rec709())
	if wide.Buffer[1] != 250*257 {
		t.Errorf("Luma16 pixel = %d, want %d", wide.Buffer[1], 250*257)
	}
}

func TestFromImageGray16(t *testing.T) {
	img := image.NewGray16(image.Rect(0, 0, 1, 1))
	img.SetGray16(0, 0, color.Gray16{Y: 40000})

	if got := FromImage[cpixel.Luma16](img, LuminanceModels.Rec709()).Buffer[0]; got != 40000 {
		t.Errorf("pixel = %d, want 40000", got)
	}
}

func TestTransparentIsBlack(t *testing.T) {
	c := color.NRGBA{R: 255, G: 255, B: 255, A: 0}
	for _, model := range []LuminanceModel{LuminanceModels.Rec709(), LuminanceModels.Perceptual()} {
		if got := model.Level(c); got != 0 {
			t.Errorf("%s: Level = %v, want 0", model, got)
		}
	}
}

func TestPerceptualLiftsMidTones(t *testing.T) {
	grey := color.RGBA{R: 64, G: 64, B: 64, A: 255}
	rec := LuminanceModels.Rec709().Level(grey)
	lab := LuminanceModels.Perceptual().Level(grey)
	if lab <= rec {
		t.Errorf("perceptual %v should be brighter than rec709 %v for dark grey", lab, rec)
	}
}

func TestDecodePNGAndBMP(t *testing.T) {
	encoders := map[string]func(*bytes.Buffer, image.Image) error{
		"png": func(b *bytes.Buffer, img image.Image) error { return png.Encode(b, img) },
		"bmp": func(b *bytes.Buffer, img image.Image) error { return bmp.Encode(b, img) },
	}

	for name, encode := range encoders {
		var buf bytes.Buffer
		if err := encode(&buf, checker()); err != nil {
			t.Fatalf("%s: encode: %v", name, err)
		}

		bm, format, err := Decode[cpixel.Luma8](&buf, LuminanceModels.Rec709())
		if err != nil {
			t.Fatalf("%s: Decode: %v", name, err)
		}
		if format != name {
			t.Errorf("format = %q, want %q", format, name)
		}
		if bm.Buffer[0] != 0 || bm.Buffer[1] != 255 {
			t.Errorf("%s: buffer = %v", name, bm.Buffer)
		}
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, _, err := Decode[cpixel.Luma8](bytes.NewReader([]byte("not an image")), LuminanceModels.Rec709()); err == nil {
		t.Error("expected an error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checker.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, checker()); err != nil {
		t.Fatal(err)
	}
	f.Close()

	bm, err := Load[cpixel.Luma8](path, LuminanceModels.Rec709())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if bm.Dimensions.Area() != 4 {
		t.Errorf("dims = %v", bm.Dimensions)
	}

	if _, err := Load[cpixel.Luma8](filepath.Join(t.TempDir(), "missing.png"), LuminanceModels.Rec709()); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestParseLuminanceModel(t *testing.T) {
	for _, m := range []LuminanceModel{LuminanceModels.Rec709(), LuminanceModels.Perceptual()} {
		got, err := ParseLuminanceModel(m.String())
		if err != nil || got != m {
			t.Errorf("ParseLuminanceModel(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseLuminanceModel("hsv"); err == nil {
		t.Error("expected an error")
	}
}
