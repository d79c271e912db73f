package internal

import (
	"io"

	"github.com/osuushi/quadrangulate/internal/dbg"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Everything a run needs to know. The CLI fills this from flags and the
// environment; nothing below here reads either directly.
type Config struct {
	Input  string
	Engine string
	Format string

	// Optional render targets. Empty means don't render.
	PNGPath string
	SVGPath string
	// Pixels per unit for renders
	Scale float64
	// Print the PNG to the terminal after rendering it
	Imgcat bool

	// ANSI colour on the report lines. Off unless asked for, so that output
	// stays plain when redirected.
	Color bool
}

func DefaultConfig() Config {
	return Config{
		Input:  DefaultInputPath,
		Engine: DefaultEngine,
		Format: FormatText,
		Scale:  DefaultScale,
	}
}

type Result struct {
	Engine        string
	Points        []Point
	Triangulation *Triangulation
	Quads         []Quad
	// Set when the input had an odd number of values. Nothing past validation
	// ran, so everything but Engine is empty.
	Unpaired bool
}

// Run the load, validate, triangulate, derive pipeline. An odd-length input is
// not an error: it comes back as a Result with Unpaired set.
func Run(cfg Config, log *zap.Logger) (*Result, error) {
	engine, err := EngineByName(cfg.Engine)
	if err != nil {
		return nil, err
	}

	log.Debug("loading coordinates", zap.String("input", cfg.Input))
	coords, err := Load(cfg.Input)
	if err != nil {
		return nil, err
	}

	points, err := Pairs(coords)
	if errors.Is(err, ErrUnpaired) {
		log.Debug("coordinate count is odd", zap.Int("values", len(coords)))
		return &Result{Engine: engine.Name(), Unpaired: true}, nil
	}
	if err != nil {
		return nil, err
	}

	log.Debug("triangulating",
		zap.Int("points", len(points)),
		zap.String("engine", engine.Name()),
	)
	triangulation, err := engine.Triangulate(points)
	if err != nil {
		return nil, errors.Wrap(err, "triangulating")
	}

	quads := DeriveQuads(points, triangulation.Triangles)
	if log.Core().Enabled(zap.DebugLevel) {
		for i := range triangulation.Triangles {
			tri := &triangulation.Triangles[i]
			log.Debug("derived quad",
				zap.Int("index", i),
				zap.String("triangle", dbg.Name(tri)),
				zap.Stringer("vertices", tri),
				zap.Stringer("quad", quads[i]),
			)
		}
	}
	log.Debug("done",
		zap.Int("triangles", len(triangulation.Triangles)),
		zap.Int("hull", len(triangulation.Hull)),
		zap.Float64("hullArea", PolygonFromIndexes(points, triangulation.Hull).SignedArea()),
	)

	return &Result{
		Engine:        engine.Name(),
		Points:        points,
		Triangulation: triangulation,
		Quads:         quads,
	}, nil
}

// Write the renders cfg asks for. Only meaningful for a successful run with
// quads; anything else is a no-op.
func Render(cfg Config, result *Result, out io.Writer, log *zap.Logger) error {
	if result == nil || result.Unpaired || result.Triangulation == nil {
		return nil
	}
	if cfg.PNGPath != "" {
		log.Debug("rendering png", zap.String("path", cfg.PNGPath), zap.Float64("scale", cfg.Scale))
		if err := RenderPNG(cfg.PNGPath, result, cfg.Scale, cfg.Imgcat, out); err != nil {
			return err
		}
	}
	if cfg.SVGPath != "" {
		log.Debug("rendering svg", zap.String("path", cfg.SVGPath), zap.Float64("scale", cfg.Scale))
		if err := RenderSVG(cfg.SVGPath, result, cfg.Scale); err != nil {
			return err
		}
	}
	return nil
}
