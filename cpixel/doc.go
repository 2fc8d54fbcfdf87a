// The cpixel package turns grayscale bitmaps into grids of character pixels (cpixels): every glyph-sized cell of the
// image is averaged down to one brightness, which picks a character from a dark-to-bright glyph ramp.
// Pixels can be any type satisfying Brightness (Luma8, Luma16, Luma32 or your own).
//
// Start by calling New() with the display area in cells, the input image size in pixels and the pixel footprint of one
// character cell. Pass options to replace the resizer or the glyph ramp (see converter.go).
/*
	conv := cpixel.New[cpixel.Luma8](
		cpixel.Dimensions{Height: 24, Width: 80},   // terminal rows/cols
		img.Dimensions,                              // input image, in pixels
		cpixel.Dimensions{Height: 16, Width: 8},     // one terminal cell, in pixels
		false,                                       // maximize contrast
	)

	grid, err := conv.ConvertOne(img)
	fmt.Print(cpixel.Render(grid))
*/
// A Converter is an immutable value and is safe for concurrent use. Use WithSettings() to get one with new geometry.
package cpixel
