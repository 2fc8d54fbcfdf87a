package cpixel

/*
Converter turns bitmaps of a fixed size into grids of cpixels that fit a display area measured in character cells.

The geometry is derived once, in New or WithSettings:

	screenInPixels   = outputConstraints.Scale(cpixelDimensions)
	outputDimensions = FitWithLockedRatio(inputImageDimensions, screenInPixels)

Every image passed to ConvertOne is resized to outputDimensions and then split into cpixelDimensions-sized blocks, each becoming one Cpixel.

A Converter is a value. Nothing mutates a live instance; reconfiguring means calling WithSettings, which returns a new Converter with freshly derived geometry. ConvertOne only reads the configuration, so one Converter can be shared between goroutines as long as its Resizer and CellConverter are stateless (the library's are).
*/
type Converter[T Brightness[T]] struct {
	cells   CellConverter[T]
	resizer Resizer[T]

	cpixelDimensions     Dimensions
	outputConstraints    Dimensions
	inputImageDimensions Dimensions
	outputDimensions     Dimensions

	maximizeContrast bool
	pad              bool
	edges            bool
}

// Option configures the collaborators of a Converter. See New.
type Option[T Brightness[T]] func(*Converter[T])

/*
New creates a Converter for images of inputImageDimensions pixels, to be shown in an area of outputConstraints character cells where each cell covers cpixelDimensions pixels.

Nothing is validated: zero dimensions are allowed and give a degenerate Converter whose conversions return an empty grid.

Defaults, each of which can be replaced with an Option:
  - Resizer: NewResizer(ResamplingModes.Bilinear())
  - CellConverter: RampCellConverter with DefaultGlyphRamp
  - Padding: on (see WithPadding)
  - Edge glyphs: off (see WithEdgeGlyphs)
*/
func New[T Brightness[T]](
	outputConstraints Dimensions,
	inputImageDimensions Dimensions,
	cpixelDimensions Dimensions,
	maximizeContrast bool,
	opts ...Option[T],
) Converter[T] {
	c := Converter[T]{
		cells:            NewRampCellConverter[T](DefaultGlyphRamp),
		resizer:          NewResizer[T](ResamplingModes.Bilinear()),
		maximizeContrast: maximizeContrast,
		pad:              true,
	}

	for _, o := range opts {
		o(&c)
	}

	if c.edges {
		c.cells = NewEdgeCellConverter(c.cells)
	}

	return c.WithSettings(outputConstraints, inputImageDimensions, cpixelDimensions)
}

// WithResizer replaces the Resizer. A nil Resizer is ignored.
func WithResizer[T Brightness[T]](r Resizer[T]) Option[T] {
	return func(c *Converter[T]) {
		if r != nil {
			c.resizer = r
		}
	}
}

// WithResamplingMode uses the library Resizer for mode.
func WithResamplingMode[T Brightness[T]](mode ResamplingMode) Option[T] {
	return WithResizer(NewResizer[T](mode))
}

// WithCellConverter replaces the CellConverter. A nil CellConverter is ignored.
func WithCellConverter[T Brightness[T]](cc CellConverter[T]) Option[T] {
	return func(c *Converter[T]) {
		if cc != nil {
			c.cells = cc
		}
	}
}

// WithGlyphRamp uses a RampCellConverter with ramp.
func WithGlyphRamp[T Brightness[T]](ramp GlyphRamp) Option[T] {
	return WithCellConverter[T](NewRampCellConverter[T](ramp))
}

/*
WithPadding decides what happens when the fitted image does not fill the whole output area, which is the usual case since the aspect ratio is kept.

With padding on (the default), ConvertOne always returns exactly OutputConstraints cells. The image sits in the top-left corner and the rest is filled with the darkest glyph. With padding off, only the OutputCells() grid covering the image is returned.
*/
func WithPadding[T Brightness[T]](pad bool) Option[T] {
	return func(c *Converter[T]) {
		c.pad = pad
	}
}

/*
WithEdgeGlyphs outlines strong edges with directional glyphs, drawn over whatever CellConverter the other options picked. See EdgeCellConverter. It works best when the output is large (around 100x100 cells or more); on small outputs most detected edges are noise.
*/
func WithEdgeGlyphs[T Brightness[T]](enabled bool) Option[T] {
	return func(c *Converter[T]) {
		c.edges = enabled
	}
}

/*
WithSettings returns a new Converter with the given geometry. The contrast flag and every collaborator are carried over, and outputDimensions is derived again from scratch. The receiver is a copy, so the Converter it was called on is unaffected.
*/
func (c Converter[T]) WithSettings(
	outputConstraints Dimensions,
	inputImageDimensions Dimensions,
	cpixelDimensions Dimensions,
) Converter[T] {
	c.outputConstraints = outputConstraints
	c.inputImageDimensions = inputImageDimensions
	c.cpixelDimensions = cpixelDimensions
	c.outputDimensions = generateOutputDimensions(inputImageDimensions, outputConstraints, cpixelDimensions)

	return c
}

func generateOutputDimensions(imageDimensions, outputConstraints, cpixelDimensions Dimensions) Dimensions {
	screenInPixels := outputConstraints.Scale(cpixelDimensions)
	return FitWithLockedRatio(imageDimensions, screenInPixels)
}

func (c Converter[T]) MaximizeContrast() bool {
	return c.maximizeContrast
}

// OutputConstraints is the display area, in character cells.
func (c Converter[T]) OutputConstraints() Dimensions {
	return c.outputConstraints
}

// InputImageDimensions is the size, in pixels, every image passed to ConvertOne must have.
func (c Converter[T]) InputImageDimensions() Dimensions {
	return c.inputImageDimensions
}

// CpixelDimensions is the pixel footprint of one character cell.
func (c Converter[T]) CpixelDimensions() Dimensions {
	return c.cpixelDimensions
}

// OutputDimensions is the size, in pixels, images are resized to before being split into cells.
func (c Converter[T]) OutputDimensions() Dimensions {
	return c.outputDimensions
}

// OutputCells is the number of cells covered by the resized image. It never exceeds OutputConstraints.
func (c Converter[T]) OutputCells() Dimensions {
	return c.outputDimensions.CeilDiv(c.cpixelDimensions)
}

// Degenerate reports whether the configured geometry has zero area, in which case ConvertOne returns an empty grid.
func (c Converter[T]) Degenerate() bool {
	return c.OutputCells().Empty()
}

/*
ConvertOne converts one image. img must have exactly InputImageDimensions, otherwise a *DimensionMismatchError is returned. A buffer that does not match its dimensions returns ErrMalformedBitmap.

With degenerate geometry the result is an empty grid and a nil error.
*/
func (c Converter[T]) ConvertOne(img Bitmap[T]) (Bitmap[Cpixel], error) {
	if img.Dimensions != c.inputImageDimensions {
		return Bitmap[Cpixel]{}, &DimensionMismatchError{Want: c.inputImageDimensions, Got: img.Dimensions}
	}
	if !img.valid() {
		_, err := NewBitmap(img.Dimensions, img.Buffer)
		return Bitmap[Cpixel]{}, err
	}
	if c.Degenerate() {
		return Bitmap[Cpixel]{}, nil
	}

	resized := c.resizer.Resize(img, c.outputDimensions)
	grid := c.cells.ConvertOne(resized, c.cpixelDimensions, c.maximizeContrast)

	if c.pad {
		grid = c.padToConstraints(grid)
	}

	return grid, nil
}

func (c Converter[T]) padToConstraints(grid Bitmap[Cpixel]) Bitmap[Cpixel] {
	target := c.outputConstraints
	if grid.Dimensions == target {
		return grid
	}

	var zero T
	blank := c.cells.ConvertOne(Filled(Dimensions{Height: 1, Width: 1}, zero.Min()), Dimensions{Height: 1, Width: 1}, false)
	glyph := DefaultGlyphRamp.Darkest()
	if len(blank.Buffer) > 0 {
		glyph = blank.Buffer[0]
	}
	fill := Filled(target, glyph)

	rows := min(grid.Dimensions.Height, target.Height)
	cols := min(grid.Dimensions.Width, target.Width)
	for r := range rows {
		copy(fill.Row(r), grid.Row(r)[:cols])
	}

	return fill
}
