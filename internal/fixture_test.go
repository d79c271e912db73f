package internal

import (
	"embed"
	"log"
)

// Fixtures are SVG files in the fixtures/ directory, loaded by name sans
// extension with the same loader used for .svg inputs. All fixture coordinates
// are integers, so the geometric predicates are exact on them and results
// don't depend on float rounding.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	points, err := LoadSVGPoints(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return points
}

var fixtureNames = []string{"hexagon", "scatter", "spiral"}

// Some ad hoc code specified fixtures

// The 4x4 square [0,0, 4,0, 0,4, 4,4]: two triangles, whichever diagonal
func Square() []Point {
	return []Point{{0, 0}, {4, 0}, {0, 4}, {4, 4}}
}

// n by n lattice. Full of cocircular quadruples and collinear hull points.
func Grid(n int) []Point {
	var points []Point
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			points = append(points, Point{X: float64(x), Y: float64(y)})
		}
	}
	return points
}

func Collinear() []Point {
	return []Point{{0, 0}, {1, 1}, {2, 2}, {5, 5}}
}

func Duplicates() []Point {
	return []Point{{1, 1}, {1, 1}, {1, 1}}
}

// Triangle with repeated points and an interior point
func WithDuplicates() []Point {
	return []Point{{0, 0}, {6, 0}, {0, 6}, {6, 0}, {2, 2}, {0, 0}}
}
