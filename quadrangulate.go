// Delaunay triangulation of a flat coordinate list, and a simple per-triangle
// quadrilateral derived from it.
//
// Coordinates are read as x, y, x, y..., triangulated by a pluggable engine,
// and each triangle (a, b, c) becomes the quad
//
//	a, b, midpoint(a, c), midpoint(b, c)
//
// Triangle vertex order is whatever the engine emits, so quads are only
// comparable between runs of the same engine.
package quadrangulate

import (
	"github.com/osuushi/quadrangulate/internal"
	"go.uber.org/zap"
)

type Point = internal.Point
type Triangle = internal.Triangle
type Quad = internal.Quad
type Triangulation = internal.Triangulation
type Config = internal.Config
type Result = internal.Result

const (
	EngineDelaunator   = internal.EngineDelaunator
	EngineBowyerWatson = internal.EngineBowyerWatson
)

// Returned by Pairs for an odd number of coordinates
var ErrUnpaired = internal.ErrUnpaired

// Read a JSON array of numbers (or the points of an SVG file) from path.
func Load(path string) ([]float64, error) {
	return internal.Load(path)
}

// Reshape x, y, x, y... into points, in input order.
func Pairs(coords []float64) ([]Point, error) {
	return internal.Pairs(coords)
}

// Triangulate points with the named engine. An empty name uses the default
// engine. Degenerate input (fewer than three points, or all collinear) is an
// error.
func Triangulate(points []Point, engine string) (*Triangulation, error) {
	if engine == "" {
		engine = internal.DefaultEngine
	}
	e, err := internal.EngineByName(engine)
	if err != nil {
		return nil, err
	}
	return e.Triangulate(points)
}

// One quad per triangle, in triangle order.
func DeriveQuads(triangulation *Triangulation) []Quad {
	return internal.DeriveQuads(triangulation.Points, triangulation.Triangles)
}

// Quadrangulate the coordinates at path with the default engine.
func Quadrangulate(path string) ([]Quad, error) {
	cfg := internal.DefaultConfig()
	cfg.Input = path
	result, err := internal.Run(cfg, zap.NewNop())
	if err != nil {
		return nil, err
	}
	if result.Unpaired {
		return nil, ErrUnpaired
	}
	return result.Quads, nil
}
