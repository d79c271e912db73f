package main

import (
	"fmt"
	"io"
	"os"

	"github.com/osuushi/quadrangulate/internal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

// Reads a flat JSON array of x, y coordinates, triangulates the points, and
// prints one quadrilateral per triangle. Whatever happens (missing file, bad
// JSON, degenerate points) is reported on stdout and the process exits
// normally; only bad flags exit nonzero.
func main() {
	app, cfg, verbose := newApp()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		logger = zap.NewNop()
	}
	defer func() {
		_ = logger.Sync()
	}()

	run(*cfg, os.Stdout, logger)
}

func newApp() (*kingpin.Application, *internal.Config, *bool) {
	cfg := internal.DefaultConfig()
	var verbose bool

	app := kingpin.New("quadrangulate", "Delaunay-triangulate a JSON coordinate list and derive a quadrilateral per triangle.")
	app.HelpFlag.Short('h')

	app.Flag("input", "JSON array of interleaved x, y coordinates, or an SVG file.").
		Short('i').
		Envar("QUADRANGULATE_INPUT").
		Default(cfg.Input).
		StringVar(&cfg.Input)
	app.Flag("engine", "Triangulation engine.").
		Short('e').
		Envar("QUADRANGULATE_ENGINE").
		Default(cfg.Engine).
		EnumVar(&cfg.Engine, internal.EngineNames()...)
	app.Flag("format", "Output format.").
		Short('f').
		Envar("QUADRANGULATE_FORMAT").
		Default(cfg.Format).
		EnumVar(&cfg.Format, internal.Formats...)
	app.Flag("png", "Also render the result to this PNG file.").
		PlaceHolder("PATH").
		StringVar(&cfg.PNGPath)
	app.Flag("svg", "Also render the result to this SVG file.").
		PlaceHolder("PATH").
		StringVar(&cfg.SVGPath)
	app.Flag("scale", "Pixels per unit when rendering.").
		Default(fmt.Sprint(cfg.Scale)).
		Float64Var(&cfg.Scale)
	app.Flag("imgcat", "Print the PNG render to the terminal (iTerm only).").
		BoolVar(&cfg.Imgcat)
	app.Flag("color", "Color the report lines.").
		BoolVar(&cfg.Color)
	app.Flag("verbose", "Debug logging to stderr.").
		Short('v').
		BoolVar(&verbose)

	return app, &cfg, &verbose
}

// Logs go to stderr so they never mix with the report on stdout
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	return config.Build()
}

// One run: pipeline, report, renders. Never fails; every outcome is printed
// to out.
func run(cfg internal.Config, out io.Writer, logger *zap.Logger) {
	result, err := internal.Run(cfg, logger)
	if err != nil {
		logger.Debug("run failed", zap.Error(err))
	}
	if reportErr := internal.Report(out, cfg, result, err); reportErr != nil {
		logger.Error("failed to write report", zap.Error(reportErr))
		return
	}
	if err == nil {
		if renderErr := internal.Render(cfg, result, out, logger); renderErr != nil {
			logger.Warn("render failed", zap.Error(renderErr))
		}
	}
}
