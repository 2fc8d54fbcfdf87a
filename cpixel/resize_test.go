package cpixel

import "testing"

var allResamplingModes = []ResamplingMode{
	ResamplingModes.NearestNeighbor(),
	ResamplingModes.Bilinear(),
	ResamplingModes.Lanczos(),
	ResamplingModes.CatmullRom(),
}

func TestResizersHonourTarget(t *testing.T) {
	src := Filled(Dimensions{20, 30}, Luma8(128))

	targets := []Dimensions{
		{10, 15},
		{7, 3},
		{40, 60},
		{1, 1},
	}

	for _, mode := range allResamplingModes {
		r := NewResizer[Luma8](mode)
		for _, target := range targets {
			got := r.Resize(src, target)
			if got.Dimensions != target {
				t.Errorf("%s: dims = %v, want %v", mode, got.Dimensions, target)
			}
			if uint(len(got.Buffer)) != target.Area() {
				t.Errorf("%s: len = %d, want %d", mode, len(got.Buffer), target.Area())
			}
		}
	}
}

func TestResizersKeepUniformImagesUniform(t *testing.T) {
	src := Filled(Dimensions{16, 16}, Luma8(200))

	for _, mode := range allResamplingModes {
		got := NewResizer[Luma8](mode).Resize(src, Dimensions{5, 7})
		for i, v := range got.Buffer {
			if v < 199 || v > 201 {
				t.Fatalf("%s: pixel %d = %d, want ~200", mode, i, v)
			}
		}
	}
}

func TestResizersZeroTarget(t *testing.T) {
	src := Filled(Dimensions{4, 4}, Luma8(1))

	for _, mode := range allResamplingModes {
		got := NewResizer[Luma8](mode).Resize(src, Dimensions{0, 3})
		if got.Dimensions != (Dimensions{0, 3}) || len(got.Buffer) != 0 {
			t.Errorf("%s: got %v", mode, got)
		}
	}
}

func TestResizersEmptySource(t *testing.T) {
	for _, mode := range allResamplingModes {
		got := NewResizer[Luma8](mode).Resize(Bitmap[Luma8]{}, Dimensions{2, 2})
		if len(got.Buffer) != 4 {
			t.Fatalf("%s: len = %d", mode, len(got.Buffer))
		}
		for _, v := range got.Buffer {
			if v != 0 {
				t.Errorf("%s: empty source should resize to Min, got %d", mode, v)
			}
		}
	}
}

func TestResizeSameSizeCopies(t *testing.T) {
	src, _ := NewBitmap(Dimensions{1, 2}, []Luma8{3, 4})

	for _, mode := range allResamplingModes {
		got := NewResizer[Luma8](mode).Resize(src, src.Dimensions)
		if got.Buffer[0] != 3 || got.Buffer[1] != 4 {
			t.Fatalf("%s: got %v", mode, got.Buffer)
		}

		got.Buffer[0] = 99
		if src.Buffer[0] != 3 {
			t.Fatalf("%s: resize aliased its input", mode)
		}
	}
}

func TestNearestNeighborDownscale(t *testing.T) {
	src, _ := NewBitmap(Dimensions{2, 4}, []Luma8{
		1, 2, 3, 4,
		5, 6, 7, 8,
	})

	got := NewResizer[Luma8](ResamplingModes.NearestNeighbor()).Resize(src, Dimensions{1, 2})
	if got.Buffer[0] != 1 || got.Buffer[1] != 3 {
		t.Errorf("got %v, want [1 3]", got.Buffer)
	}
}

func TestResizeLuma16(t *testing.T) {
	src := Filled(Dimensions{8, 8}, Luma16(40000))
	got := NewResizer[Luma16](ResamplingModes.Bilinear()).Resize(src, Dimensions{4, 4})
	for _, v := range got.Buffer {
		if v < 39999 || v > 40001 {
			t.Fatalf("pixel = %d, want ~40000", v)
		}
	}
}

func TestParseResamplingMode(t *testing.T) {
	for _, mode := range allResamplingModes {
		got, err := ParseResamplingMode(mode.String())
		if err != nil || got != mode {
			t.Errorf("ParseResamplingMode(%q) = %v, %v", mode.String(), got, err)
		}
	}

	if _, err := ParseResamplingMode("sinc"); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}

func TestResizerFunc(t *testing.T) {
	called := false
	r := ResizerFunc[Luma8](func(img Bitmap[Luma8], target Dimensions) Bitmap[Luma8] {
		called = true
		return Filled(target, Luma8(0))
	})

	r.Resize(Bitmap[Luma8]{}, Dimensions{1, 1})
	if !called {
		t.Error("ResizerFunc was not called")
	}
}
