package internal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allEngines(t *testing.T) []Engine {
	var result []Engine
	for _, name := range EngineNames() {
		engine, err := EngineByName(name)
		require.NoError(t, err)
		result = append(result, engine)
	}
	return result
}

func TestEngineByName(t *testing.T) {
	assert.Equal(t, []string{EngineBowyerWatson, EngineDelaunator}, EngineNames())

	engine, err := EngineByName(DefaultEngine)
	require.NoError(t, err)
	assert.Equal(t, EngineDelaunator, engine.Name())

	_, err = EngineByName("qhull")
	assert.EqualError(t, err, `unknown triangulation engine "qhull" (have [bowyer-watson delaunator])`)
}

func TestTriangulate_Fixtures(t *testing.T) {
	for _, engine := range allEngines(t) {
		for _, name := range fixtureNames {
			engine, name := engine, name
			t.Run(fmt.Sprintf("%s/%s", engine.Name(), name), func(t *testing.T) {
				tri, err := engine.Triangulate(LoadFixture(name))
				require.NoError(t, err)
				AssertValidTriangulation(t, tri)
			})
		}
	}
}

func TestTriangulate_Square(t *testing.T) {
	for _, engine := range allEngines(t) {
		engine := engine
		t.Run(engine.Name(), func(t *testing.T) {
			tri, err := engine.Triangulate(Square())
			require.NoError(t, err)
			assert.Len(t, tri.Triangles, 2)
			AssertValidTriangulation(t, tri)
		})
	}
}

// Only checked for the in-repo engine. The sweep-hull engine is free to emit
// slivers along collinear hull points.
func TestTriangulate_Grid(t *testing.T) {
	tri, err := bowyerWatsonEngine{}.Triangulate(Grid(5))
	require.NoError(t, err)
	// Any triangulation of a lattice uses two triangles per cell
	assert.Len(t, tri.Triangles, 2*4*4)
	AssertValidTriangulation(t, tri)
}

func TestTriangulate_WithDuplicates(t *testing.T) {
	for _, engine := range allEngines(t) {
		engine := engine
		t.Run(engine.Name(), func(t *testing.T) {
			tri, err := engine.Triangulate(WithDuplicates())
			require.NoError(t, err)
			assert.Len(t, tri.Triangles, 3)
			AssertValidTriangulation(t, tri)
		})
	}
}

func TestBowyerWatsonIsCounterclockwise(t *testing.T) {
	engine, err := EngineByName(EngineBowyerWatson)
	require.NoError(t, err)
	for _, name := range fixtureNames {
		tri, err := engine.Triangulate(LoadFixture(name))
		require.NoError(t, err)
		for _, triangle := range tri.Triangles {
			assert.True(t, IsCCW(triangle.Vertices(tri.Points)), "%s: %v", name, triangle)
		}
	}
}

// Degenerate input must come back as an error, never a panic
func TestTriangulate_Degenerate(t *testing.T) {
	cases := map[string][]Point{
		"empty":      {},
		"one point":  {{1, 2}},
		"two points": {{1, 2}, {3, 4}},
		"collinear":  Collinear(),
		"duplicates": Duplicates(),
		// A real triangle, but its extent overflows float64
		"huge":       {{1e308, 0}, {-1e308, 0}, {0, 1e308}},
	}
	for _, engine := range allEngines(t) {
		for name, points := range cases {
			engine, points := engine, points
			t.Run(engine.Name()+"/"+name, func(t *testing.T) {
				var tri *Triangulation
				var err error
				assert.NotPanics(t, func() {
					tri, err = engine.Triangulate(points)
				})
				assert.Error(t, err)
				assert.Nil(t, tri)
			})
		}
	}
}

func TestTriangulate_TooFewPointsMessage(t *testing.T) {
	for _, engine := range allEngines(t) {
		_, err := engine.Triangulate([]Point{{0, 0}, {1, 1}})
		assert.EqualError(t, err, "need at least 3 points to triangulate, got 2", engine.Name())
	}
}

func TestTriangulate_Deterministic(t *testing.T) {
	for _, engine := range allEngines(t) {
		points := LoadFixture("scatter")
		first, err := engine.Triangulate(points)
		require.NoError(t, err)
		second, err := engine.Triangulate(points)
		require.NoError(t, err)
		assert.Equal(t, first.Triangles, second.Triangles, engine.Name())
	}
}

// Both engines should find the same triangles on input with no cocircular
// ambiguity, even though order and rotation differ.
func TestEnginesAgreeOnTriangleSets(t *testing.T) {
	canonical := func(tri *Triangulation) map[[3]int]struct{} {
		set := make(map[[3]int]struct{})
		for _, triangle := range tri.Triangles {
			idx := triangle.Indexes()
			// Sort the three indexes
			if idx[0] > idx[1] {
				idx[0], idx[1] = idx[1], idx[0]
			}
			if idx[1] > idx[2] {
				idx[1], idx[2] = idx[2], idx[1]
			}
			if idx[0] > idx[1] {
				idx[0], idx[1] = idx[1], idx[0]
			}
			set[idx] = struct{}{}
		}
		return set
	}

	points := LoadFixture("scatter")
	delaunator, err := delaunatorEngine{}.Triangulate(points)
	require.NoError(t, err)
	bowyerWatson, err := bowyerWatsonEngine{}.Triangulate(points)
	require.NoError(t, err)
	assert.Equal(t, canonical(delaunator), canonical(bowyerWatson))
}
