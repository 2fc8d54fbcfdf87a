package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/nebbyJammin/cpixel/cpixel"
	"github.com/nebbyJammin/cpixel/internal/config"
	"github.com/nebbyJammin/cpixel/internal/display"
	"github.com/nebbyJammin/cpixel/internal/imageio"
	"github.com/nebbyJammin/cpixel/internal/termsize"
)

var errSomeFailed = errors.New("some images could not be converted")

type app struct {
	cfg    *config.Config
	logger *slog.Logger
	tui    bool

	out    io.Writer
	errOut io.Writer
}

// converterFor builds the base Converter for the configured settings. Its input dimensions are filled in per image.
func converterFor[T cpixel.Brightness[T]](cfg *config.Config, constraints, footprint cpixel.Dimensions, contrast bool) (cpixel.Converter[T], error) {
	mode, err := cfg.ResamplingMode()
	if err != nil {
		return cpixel.Converter[T]{}, err
	}
	ramp, err := cfg.GlyphRamp()
	if err != nil {
		return cpixel.Converter[T]{}, err
	}

	return cpixel.New(constraints, cpixel.Dimensions{}, footprint, contrast,
		cpixel.WithResamplingMode[T](mode),
		cpixel.WithGlyphRamp[T](ramp),
		cpixel.WithPadding[T](cfg.Pad),
		cpixel.WithEdgeGlyphs[T](cfg.Edges),
	), nil
}

func run[T cpixel.Brightness[T]](a app, paths []string) error {
	model, err := a.cfg.LuminanceModel()
	if err != nil {
		return err
	}

	fd := int(os.Stdout.Fd())
	footprint := a.cfg.Footprint(termsize.Footprint(fd))

	if a.tui {
		if len(paths) == 0 {
			return errors.New("-tui needs an image")
		}
		return showInteractive[T](a, paths[0], model, footprint)
	}

	constraints := a.cfg.Constraints(termsize.Cells(fd))
	base, err := converterFor[T](a.cfg, constraints, footprint, a.cfg.Contrast)
	if err != nil {
		return err
	}

	a.logger.Debug("converter ready",
		"cells", constraints,
		"footprint", footprint,
		"contrast", base.MaximizeContrast(),
		"workers", a.cfg.Workers,
	)

	return printAll(a, convertAll(a, base, paths, model))
}

// printAll writes the converted images in input order, separated by a blank line. Failures go to a.errOut.
func printAll(a app, results []result) error {
	failed, printed := false, false
	for _, res := range results {
		if res.err != nil {
			failed = true
			fmt.Fprintf(a.errOut, "%s\n", res.err)
			continue
		}

		if printed {
			fmt.Fprintln(a.out)
		}
		fmt.Fprint(a.out, res.text)
		printed = true
	}

	if failed {
		return errSomeFailed
	}
	return nil
}

type result struct {
	text string
	err  error
}

// convertAll converts every path, a.cfg.Workers at a time. A failing image does not stop the others.
func convertAll[T cpixel.Brightness[T]](a app, base cpixel.Converter[T], paths []string, model imageio.LuminanceModel) []result {
	results := make([]result, len(paths))

	var g errgroup.Group
	if a.cfg.Workers > 0 {
		g.SetLimit(a.cfg.Workers)
	}

	// Errors are kept per image in results, so the group itself never fails.
	for i, path := range paths {
		g.Go(func() error {
			text, err := convertFile(a.logger, base, path, model)
			results[i] = result{text: text, err: err}
			return nil
		})
	}
	g.Wait()

	return results
}

func convertFile[T cpixel.Brightness[T]](logger *slog.Logger, base cpixel.Converter[T], path string, model imageio.LuminanceModel) (string, error) {
	start := time.Now()

	img, err := imageio.Load[T](path, model)
	if err != nil {
		return "", err
	}

	conv := base.WithSettings(base.OutputConstraints(), img.Dimensions, base.CpixelDimensions())
	grid, err := conv.ConvertOne(img)
	if err != nil {
		return "", fmt.Errorf("error converting %s: %w", path, err)
	}

	logger.Debug("converted",
		"file", path,
		"input", img.Dimensions,
		"resized", conv.OutputDimensions(),
		"cells", conv.OutputCells(),
		"elapsed", time.Since(start),
	)

	return cpixel.Render(grid), nil
}

func showInteractive[T cpixel.Brightness[T]](a app, path string, model imageio.LuminanceModel, footprint cpixel.Dimensions) error {
	img, err := imageio.Load[T](path, model)
	if err != nil {
		return err
	}

	// One base per contrast setting; resizes only ever go through WithSettings.
	plain, err := converterFor[T](a.cfg, cpixel.Dimensions{}, footprint, false)
	if err != nil {
		return err
	}
	contrasted, err := converterFor[T](a.cfg, cpixel.Dimensions{}, footprint, true)
	if err != nil {
		return err
	}

	source := func(cells cpixel.Dimensions, contrast bool) (cpixel.Bitmap[cpixel.Cpixel], error) {
		base := plain
		if contrast {
			base = contrasted
		}
		return base.WithSettings(cells, img.Dimensions, footprint).ConvertOne(img)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer screen.Fini()

	return display.Run(screen, source, a.cfg.Contrast)
}
