package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Slack for the incircle determinant, which grows with the fourth power of the
// coordinates
const Tolerance = 1e-6

// For areas, which are sums of exact products on the fixtures
const Epsilon = 1e-9

// Helper to check that a triangulation is valid. The rules are:
// 1. Every triangle has nonzero area, and all triangles wind the same way.
// 2. Every distinct input point is a vertex of some triangle.
// 3. The sum of the areas of all triangles is equal to the area of the hull.
// 4. No point is strictly inside the circumcircle of any triangle (Delaunay).
//
// Returns the winding sign shared by all the triangles.
func AssertValidTriangulation(t *testing.T, tri *Triangulation) float64 {
	require.NotNil(t, tri)
	require.NotEmpty(t, tri.Triangles)
	points := tri.Points

	sign := math.Copysign(1, Orient(tri.Triangles[0].Vertices(points)))
	used := make(map[Point]struct{})
	var triangleArea float64
	for _, triangle := range tri.Triangles {
		a, b, c := triangle.Vertices(points)
		area := SignedArea(a, b, c)
		require.NotZero(t, area, "degenerate triangle %v", triangle)
		require.Equal(t, sign, math.Copysign(1, area), "triangle %v winds the wrong way", triangle)
		triangleArea += math.Abs(area)
		used[a] = struct{}{}
		used[b] = struct{}{}
		used[c] = struct{}{}
	}

	for _, p := range points {
		_, ok := used[p]
		assert.True(t, ok, "point %v is not used by any triangle", p)
	}

	hullArea := PolygonFromIndexes(points, tri.Hull).SignedArea()
	require.InDelta(t, hullArea, triangleArea, Epsilon*math.Max(1, hullArea), "triangles must cover the hull exactly")

	for _, triangle := range tri.Triangles {
		a, b, c := triangle.Vertices(points)
		if sign < 0 {
			a, b = b, a
		}
		for _, p := range points {
			det := InCircleDeterminant(a, b, c, p)
			assert.LessOrEqual(t, det, Tolerance, "point %v is inside the circumcircle of %v", p, triangle)
		}
	}
	return sign
}
