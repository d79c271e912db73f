package internal

import (
	"sort"

	"github.com/fogleman/delaunay"
	"github.com/pkg/errors"
)

// An Engine computes a Delaunay triangulation of a point set.
//
// Engines agree on which triangles exist (up to the choice of diagonal in
// cocircular groups), but not on the order triangles are emitted in, nor on
// which vertex comes first, nor on winding. Quads are derived from that order,
// so quads are only comparable between runs of the same engine.
type Engine interface {
	Name() string
	Triangulate(points []Point) (*Triangulation, error)
}

const (
	EngineDelaunator   = "delaunator"
	EngineBowyerWatson = "bowyer-watson"

	DefaultEngine = EngineDelaunator
)

var engines = map[string]Engine{
	EngineDelaunator:   delaunatorEngine{},
	EngineBowyerWatson: bowyerWatsonEngine{},
}

func EngineByName(name string) (Engine, error) {
	engine, ok := engines[name]
	if !ok {
		return nil, errors.Errorf("unknown triangulation engine %q (have %v)", name, EngineNames())
	}
	return engine, nil
}

func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func checkPointCount(points []Point) error {
	if len(points) < 3 {
		return errors.Errorf("need at least 3 points to triangulate, got %d", len(points))
	}
	return nil
}

// Sweep-hull triangulation from github.com/fogleman/delaunay, a port of
// mapbox's delaunator. Its triangles wind clockwise in a Y-up coordinate
// system, and near-duplicate points are silently skipped.
type delaunatorEngine struct{}

func (delaunatorEngine) Name() string {
	return EngineDelaunator
}

func (delaunatorEngine) Triangulate(points []Point) (*Triangulation, error) {
	if err := checkPointCount(points); err != nil {
		return nil, err
	}

	input := make([]delaunay.Point, len(points))
	for i, p := range points {
		input[i] = delaunay.Point{X: p.X, Y: p.Y}
	}
	dt, err := delaunay.Triangulate(input)
	if err != nil {
		return nil, errors.Wrap(err, EngineDelaunator)
	}
	if len(dt.Triangles) == 0 {
		return nil, errors.Errorf("%s: no Delaunay triangulation exists for this input", EngineDelaunator)
	}

	triangles := make([]Triangle, len(dt.Triangles)/3)
	for i := range triangles {
		triangles[i] = Triangle{
			A: dt.Triangles[3*i],
			B: dt.Triangles[3*i+1],
			C: dt.Triangles[3*i+2],
		}
	}
	return &Triangulation{
		Points:    points,
		Triangles: triangles,
		Hull:      ConvexHull(points),
	}, nil
}

type bowyerWatsonEngine struct{}

func (bowyerWatsonEngine) Name() string {
	return EngineBowyerWatson
}

func (bowyerWatsonEngine) Triangulate(points []Point) (result *Triangulation, err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = errors.Wrap(recoveredErr, EngineBowyerWatson)
		}
	}()
	if err := checkPointCount(points); err != nil {
		return nil, err
	}

	return &Triangulation{
		Points:    points,
		Triangles: triangulateBowyerWatson(points),
		Hull:      ConvexHull(points),
	}, nil
}
