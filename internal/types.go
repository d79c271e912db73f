package internal

import (
	"fmt"
	"strconv"
	"strings"
)

type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Triangles refer to points by index into the point set they were built from,
// rather than holding the points. The order of A, B and C is whatever the
// engine emitted, and it is significant for quad derivation.
type Triangle struct {
	A, B, C int
}

// A quad is two vertices of a triangle followed by two edge midpoints. See
// DeriveQuads for the exact rule.
type Quad [4]Point

type Triangulation struct {
	Points    []Point
	Triangles []Triangle
	// Counterclockwise convex hull, as indexes into Points
	Hull []int
}

type IndexStack []int

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", formatFloat(p.X), formatFloat(p.Y))
}

func (t Triangle) String() string {
	return fmt.Sprintf("<%d %d %d>", t.A, t.B, t.C)
}

// Indexes in emitted order
func (t Triangle) Indexes() [3]int {
	return [3]int{t.A, t.B, t.C}
}

// Resolve the triangle's indexes against a point set
func (t Triangle) Vertices(points []Point) (a, b, c Point) {
	return points[t.A], points[t.B], points[t.C]
}

func (q Quad) String() string {
	parts := make([]string, len(q))
	for i, p := range q {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Shortest representation that round trips, so that printed output is exact
// and stable between runs.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
