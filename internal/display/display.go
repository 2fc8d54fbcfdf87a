// Package display shows cpixel grids full screen in the terminal and redraws them whenever the terminal is resized.
package display

import (
	"github.com/gdamore/tcell/v2"

	"github.com/nebbyJammin/cpixel/cpixel"
)

/*
Source produces the grid to show for a screen of the given size in cells. It is called again on every resize, so it is expected to rebuild its Converter with WithSettings. When contrast is true the grid should be contrast maximized.
*/
type Source func(cells cpixel.Dimensions, contrast bool) (cpixel.Bitmap[cpixel.Cpixel], error)

// Size returns the screen size as Dimensions.
func Size(screen tcell.Screen) cpixel.Dimensions {
	w, h := screen.Size()
	return cpixel.Dimensions{Height: uint(max(0, h)), Width: uint(max(0, w))}
}

// Draw clears screen and writes grid to it from the top-left corner. Cells outside the screen are dropped.
func Draw(screen tcell.Screen, grid cpixel.Bitmap[cpixel.Cpixel]) {
	screen.Clear()

	size := Size(screen)
	rows := min(grid.Dimensions.Height, size.Height)
	cols := min(grid.Dimensions.Width, size.Width)

	for y := range rows {
		row := grid.Row(y)
		for x := range cols {
			screen.SetContent(int(x), int(y), rune(row[x]), nil, tcell.StyleDefault)
		}
	}

	screen.Show()
}

/*
Run draws the grid from source and keeps redrawing it until the user quits with q, Esc or Ctrl-C. Pressing c toggles contrast maximization, starting from contrast. Run does not Init or Fini the screen.
*/
func Run(screen tcell.Screen, source Source, contrast bool) error {
	redraw := func() error {
		grid, err := source(Size(screen), contrast)
		if err != nil {
			return err
		}
		Draw(screen, grid)
		return nil
	}

	if err := redraw(); err != nil {
		return err
	}

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			// PollEvent returns nil once the screen is finalized.
			return nil
		case *tcell.EventResize:
			screen.Sync()
			if err := redraw(); err != nil {
				return err
			}
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				return nil
			case ev.Rune() == 'c':
				contrast = !contrast
				if err := redraw(); err != nil {
					return err
				}
			}
		}
	}
}
