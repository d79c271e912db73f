package internal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveQuad(t *testing.T) {
	quad := DeriveQuad(Point{0, 0}, Point{4, 0}, Point{0, 4})
	want := Quad{{0, 0}, {4, 0}, {0, 2}, {2, 2}}
	if diff := cmp.Diff(want, quad); diff != "" {
		t.Errorf("DeriveQuad() mismatch (-want +got):\n%s", diff)
	}
}

// The rule depends on which vertex comes last, so rotating a triangle changes
// its quad.
func TestDeriveQuad_OrderMatters(t *testing.T) {
	a, b, c := Point{0, 0}, Point{4, 0}, Point{0, 4}
	assert.NotEqual(t, DeriveQuad(a, b, c), DeriveQuad(b, c, a))
	assert.Equal(t, Quad{b, c, Point{2, 0}, Point{0, 2}}, DeriveQuad(b, c, a))
}

func TestDeriveQuads(t *testing.T) {
	for _, engine := range allEngines(t) {
		engine := engine
		t.Run(engine.Name(), func(t *testing.T) {
			for _, points := range [][]Point{Square(), LoadFixture("spiral"), LoadFixture("scatter")} {
				tri, err := engine.Triangulate(points)
				require.NoError(t, err)

				quads := DeriveQuads(tri.Points, tri.Triangles)
				require.Len(t, quads, len(tri.Triangles))
				for i, triangle := range tri.Triangles {
					a, b, c := triangle.Vertices(tri.Points)
					// First two points are the triangle's first two vertices, exactly
					assert.Equal(t, a, quads[i][0])
					assert.Equal(t, b, quads[i][1])
					assert.Equal(t, Midpoint(a, c), quads[i][2])
					assert.Equal(t, Midpoint(b, c), quads[i][3])
				}
			}
		})
	}
}

func TestDeriveQuads_Empty(t *testing.T) {
	assert.Empty(t, DeriveQuads(nil, nil))
}

// A quad cuts the c corner off its triangle, keeping three quarters of the
// area.
func TestDeriveQuads_Area(t *testing.T) {
	tri, err := bowyerWatsonEngine{}.Triangulate(LoadFixture("hexagon"))
	require.NoError(t, err)
	quads := DeriveQuads(tri.Points, tri.Triangles)
	for i, triangle := range tri.Triangles {
		// a b mid(b,c) mid(a,c) traverses the quad's boundary in order
		q := quads[i]
		boundary := Polygon{Points: []Point{q[0], q[1], q[3], q[2]}}
		assert.InDelta(t, 0.75*SignedArea(triangle.Vertices(tri.Points)), boundary.SignedArea(), Epsilon)
	}
}
