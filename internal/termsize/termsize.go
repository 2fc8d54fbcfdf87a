// Package termsize reports how big the terminal is, both in character cells and in pixels per cell.
package termsize

import (
	"golang.org/x/term"

	"github.com/nebbyJammin/cpixel/cpixel"
)

var (
	// DefaultCells is used when the output is not a terminal.
	DefaultCells = cpixel.Dimensions{Height: 24, Width: 80}

	// DefaultFootprint is the common 8x16 pixel terminal font cell, used when the terminal does not report pixels.
	DefaultFootprint = cpixel.Dimensions{Height: 16, Width: 8}
)

// Cells returns the size of the terminal on fd in rows and columns, or DefaultCells if fd is not a terminal.
func Cells(fd int) cpixel.Dimensions {
	if !term.IsTerminal(fd) {
		return DefaultCells
	}

	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return DefaultCells
	}

	return cpixel.Dimensions{Height: uint(h), Width: uint(w)}
}

// Footprint returns the size in pixels of one character cell of the terminal on fd, or DefaultFootprint if unknown.
func Footprint(fd int) cpixel.Dimensions {
	rows, cols, xpixel, ypixel, ok := winsize(fd)
	if !ok {
		return DefaultFootprint
	}

	return footprintFromWinsize(rows, cols, xpixel, ypixel)
}

func footprintFromWinsize(rows, cols, xpixel, ypixel uint16) cpixel.Dimensions {
	if rows == 0 || cols == 0 || xpixel == 0 || ypixel == 0 {
		return DefaultFootprint
	}

	fp := cpixel.Dimensions{
		Height: uint(ypixel / rows),
		Width:  uint(xpixel / cols),
	}
	if fp.Empty() {
		return DefaultFootprint
	}

	return fp
}
