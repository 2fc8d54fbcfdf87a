package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/nebbyJammin/cpixel/cpixel"
	"github.com/nebbyJammin/cpixel/internal/config"
)

const (
	contrastUsage = "Maximizes contrast: stretches the image's brightness range over the whole glyph ramp."
	sobelUsage    = "Enables sobel edge detection: strong edges are outlined with glyphs that follow their direction."
	noPadUsage    = "Do not pad the output to the full -w x -h area."
	widthUsage    = "Specifies the output width in character cells. Defaults to the terminal width."
	heightUsage   = "Specifies the output height in character cells. Defaults to the terminal height."
	cellWUsage    = "Specifies the width in pixels of one character cell. Defaults to what the terminal reports, or 8."
	cellHUsage    = "Specifies the height in pixels of one character cell. Defaults to what the terminal reports, or 16."
	resampleUsage = "Specifies the resampling mode:\n" +
		`    - "nearest"` + "\n" +
		`    - "bilinear"` + "\n" +
		`    - "lanczos"` + "\n" +
		`    - "catmullrom"` + "\n"
	lumUsage = "Specifies how color is turned into brightness:\n" +
		`    - "rec709"` + "\n" +
		`    - "perceptual"` + "\n"
	depthUsage   = "Specifies the pixel bit depth used for the conversion: 8, 16 or 32."
	rampUsage    = "Specifies the glyph ramp, darkest glyph first."
	workersUsage = "Specifies how many images are converted at the same time."
	tuiUsage     = "Shows the first image full screen and redraws it when the terminal is resized. Keys: c toggles contrast, q quits."
	verboseUsage = "Logs timings and geometry to stderr."
)

func main() {
	envFile := config.DefaultEnvFile
	if v, ok := os.LookupEnv("CPIXEL_ENV_FILE"); ok {
		envFile = v
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(2)
	}

	useTUI := false
	verbose := false

	enableContrast := func(s string) error {
		cfg.Contrast = true
		return nil
	}

	enableSobel := func(s string) error {
		cfg.Edges = true
		return nil
	}

	disablePad := func(s string) error {
		cfg.Pad = false
		return nil
	}

	flag.BoolFunc("c", contrastUsage, enableContrast)
	flag.BoolFunc("contrast", "alias for -c", enableContrast)

	flag.BoolFunc("s", sobelUsage, enableSobel)
	flag.BoolFunc("sobel", "alias for -s", enableSobel)

	flag.BoolFunc("nopad", noPadUsage, disablePad)

	flag.UintVar(&cfg.Width, "w", cfg.Width, widthUsage)
	flag.UintVar(&cfg.Width, "width", cfg.Width, "alias for -w")
	flag.UintVar(&cfg.Height, "h", cfg.Height, heightUsage)
	flag.UintVar(&cfg.Height, "height", cfg.Height, "alias for -h")

	flag.UintVar(&cfg.CellWidth, "cw", cfg.CellWidth, cellWUsage)
	flag.UintVar(&cfg.CellWidth, "cell-width", cfg.CellWidth, "alias for -cw")
	flag.UintVar(&cfg.CellHeight, "ch", cfg.CellHeight, cellHUsage)
	flag.UintVar(&cfg.CellHeight, "cell-height", cfg.CellHeight, "alias for -ch")

	flag.StringVar(&cfg.Resample, "resample", cfg.Resample, resampleUsage)
	flag.StringVar(&cfg.Luminance, "lum", cfg.Luminance, lumUsage)
	flag.IntVar(&cfg.Depth, "depth", cfg.Depth, depthUsage)
	flag.StringVar(&cfg.Ramp, "ramp", cfg.Ramp, rampUsage)
	flag.IntVar(&cfg.Workers, "j", cfg.Workers, workersUsage)

	flag.BoolVar(&useTUI, "tui", false, tuiUsage)
	flag.BoolVar(&verbose, "v", false, verboseUsage)

	// Parse flags
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(2)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				paths = append(paths, line)
			}
		}
	}

	a := app{cfg: cfg, logger: logger, tui: useTUI, out: os.Stdout, errOut: os.Stderr}

	switch cfg.Depth {
	case 16:
		err = run[cpixel.Luma16](a, paths)
	case 32:
		err = run[cpixel.Luma32](a, paths)
	default:
		err = run[cpixel.Luma8](a, paths)
	}

	if err != nil {
		logger.Error("cpixel failed", "err", err)
		os.Exit(1)
	}
}
