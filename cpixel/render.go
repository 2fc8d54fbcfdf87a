package cpixel

import "strings"

const bytesPerCharReserve = 1.5 // most ramp glyphs are ASCII, leave a little room for the rest

/*
Render joins a cpixel grid into a string, one line per row, each line terminated by '\n'. An empty grid renders as "".
*/
func Render(grid Bitmap[Cpixel]) string {
	height, width := grid.Dimensions.Height, grid.Dimensions.Width
	if grid.Dimensions.Empty() {
		return ""
	}

	var b strings.Builder
	b.Grow(int(bytesPerCharReserve * float64(width+1) * float64(height))) // width + 1 because leave a byte for the new line

	for r := range height {
		for _, c := range grid.Row(r) {
			b.WriteRune(rune(c))
		}
		b.WriteRune('\n')
	}

	return b.String()
}

// Lines returns every row of grid as its own string, without line terminators.
func Lines(grid Bitmap[Cpixel]) []string {
	if grid.Dimensions.Empty() {
		return nil
	}

	lines := make([]string, 0, grid.Dimensions.Height)
	for r := range grid.Dimensions.Height {
		row := grid.Row(r)
		runes := make([]rune, len(row))
		for i, c := range row {
			runes[i] = rune(c)
		}
		lines = append(lines, string(runes))
	}

	return lines
}
