package cpixel

import "math"

const (
	// DefaultEdgeMagnitudeSqThreshold is the minimum squared Sobel magnitude, on a 0-255 luminance scale and for
	// square cells, for a cell to count as an edge. It is scaled by the square of the cell aspect ratio.
	DefaultEdgeMagnitudeSqThreshold = 80000

	// DefaultEdgeLaplacianThreshold is the maximum absolute Laplacian for a cell to count as an edge.
	DefaultEdgeLaplacianThreshold = 300
)

// edgeGlyphStops maps the aspect-corrected Sobel gradient (gy/gx) to an outline glyph. The first stop whose upTo is
// not below the gradient wins.
var edgeGlyphStops = [...]struct {
	upTo  float64
	glyph Cpixel
}{
	{-6, '='},
	{-2, '\\'},
	{-1, 'l'},
	{-0.5, 'L'},
	{0.5, '|'},
	{1, 'J'},
	{2, 'j'},
	{7, '/'},
	{math.Inf(1), '='},
}

/*
EdgeCellConverter draws outlines over another CellConverter. Cells are reduced to one intensity each (contrast stretched when requested), a 3x3 Sobel kernel is run over that grid, and cells with a strong gradient and a small Laplacian are replaced by a glyph that follows the edge direction: | for vertical edges, = for horizontal ones, / \ and the J j L l curves in between.

Pixels outside the grid are clamped to the nearest edge pixel, so the frame border never reads as an edge.

Fill draws every cell that is not an edge. It must return a grid of img.Dimensions.CeilDiv(cell), otherwise its grid is returned unchanged.
*/
type EdgeCellConverter[T Brightness[T]] struct {
	Fill CellConverter[T]

	// MagnitudeSqThreshold is compared against gx*gx + gy*gy, after scaling by the squared cell aspect ratio.
	MagnitudeSqThreshold float64
	// LaplacianThreshold is the largest |Laplacian| still drawn as an edge. Larger values are treated as noise.
	LaplacianThreshold float64
}

// NewEdgeCellConverter wraps fill with the default thresholds. A nil fill uses the default ramp.
func NewEdgeCellConverter[T Brightness[T]](fill CellConverter[T]) EdgeCellConverter[T] {
	if fill == nil {
		fill = NewRampCellConverter[T](DefaultGlyphRamp)
	}

	return EdgeCellConverter[T]{
		Fill:                 fill,
		MagnitudeSqThreshold: DefaultEdgeMagnitudeSqThreshold,
		LaplacianThreshold:   DefaultEdgeLaplacianThreshold,
	}
}

func (e EdgeCellConverter[T]) ConvertOne(img Bitmap[T], cell Dimensions, maximizeContrast bool) Bitmap[Cpixel] {
	fill := e.Fill
	if fill == nil {
		fill = NewRampCellConverter[T](DefaultGlyphRamp)
	}

	grid := fill.ConvertOne(img, cell, maximizeContrast)

	levels := ReduceCells(img, cell)
	if levels.Dimensions != grid.Dimensions || len(grid.Buffer) != len(levels.Buffer) || levels.Dimensions.Empty() {
		return grid
	}
	if maximizeContrast {
		StretchFrame(levels.Buffer)
	}

	lum := newLuminanceGrid(levels)

	// Character cells are usually taller than wide. aspect > 1 flattens the vertical gradient.
	aspect := float64(cell.Height) / float64(cell.Width)
	magThreshold := e.MagnitudeSqThreshold * aspect * aspect

	for y := range lum.height {
		for x := range lum.width {
			gx, gy, lap := lum.sobel(x, y, 1/aspect)

			if gx*gx+gy*gy < magThreshold || math.Abs(lap) > e.LaplacianThreshold {
				continue
			}

			grid.Buffer[y*lum.width+x] = edgeGlyph(gradient(gx, gy) * aspect)
		}
	}

	return grid
}

type luminanceGrid struct {
	width, height int
	values        []float64
}

func newLuminanceGrid[T Brightness[T]](levels Bitmap[T]) luminanceGrid {
	values := make([]float64, len(levels.Buffer))
	for i, v := range levels.Buffer {
		values[i] = Level(v) * 255
	}

	return luminanceGrid{
		width:  int(levels.Dimensions.Width),
		height: int(levels.Dimensions.Height),
		values: values,
	}
}

// at clamps x and y into the grid.
func (g luminanceGrid) at(x, y int) float64 {
	x = min(g.width-1, max(0, x))
	y = min(g.height-1, max(0, y))
	return g.values[y*g.width+x]
}

// sobel returns the horizontal and vertical Sobel responses and the Laplacian at x, y. invAspect weighs the vertical
// neighbours of the Laplacian.
func (g luminanceGrid) sobel(x, y int, invAspect float64) (gx, gy, lap float64) {
	gx = -g.at(x-1, y-1) + g.at(x+1, y-1) +
		-2*g.at(x-1, y) + 2*g.at(x+1, y) +
		-g.at(x-1, y+1) + g.at(x+1, y+1)

	gy = -g.at(x-1, y-1) - 2*g.at(x, y-1) - g.at(x+1, y-1) +
		g.at(x-1, y+1) + 2*g.at(x, y+1) + g.at(x+1, y+1)

	lap = invAspect*(g.at(x, y-1)+g.at(x, y+1)) +
		g.at(x-1, y) + g.at(x+1, y) +
		-2*(1+invAspect)*g.at(x, y)

	return gx, gy, lap
}

// gradient is gy/gx, with a vertical gradient mapped to an infinity of the sign of gy.
func gradient(gx, gy float64) float64 {
	if gx == 0 {
		if gy > 0 {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	return gy / gx
}

func edgeGlyph(grad float64) Cpixel {
	for _, s := range edgeGlyphStops {
		if grad <= s.upTo {
			return s.glyph
		}
	}
	return edgeGlyphStops[len(edgeGlyphStops)-1].glyph
}
