package internal

import "math"

// Incremental Bowyer-Watson Delaunay triangulation. Points are inserted one at
// a time, in input order, into a triangulation seeded with a "super" triangle
// that contains every point. Each insertion deletes the triangles whose
// circumcircle contains the new point (the cavity) and fans new triangles from
// the point to the cavity's boundary. Triangles touching the super triangle
// are dropped at the end.
//
// This is O(n^2), which is plenty for coordinate files written by hand. It
// exists so that there is a second, independent answer to compare the
// library engine against, and because its output order is easy to reason
// about: triangles are counterclockwise, and appear in the order they were
// created.
//
// Known limitation: the super triangle is finite, so for a very thin triangle
// on the hull, a super vertex can land inside its circumcircle and the hull
// triangle is lost. Making the super triangle bigger pushes that problem out,
// but costs precision in the incircle test for every triangle touching it.

// Super triangle size, in multiples of the point set's extent
const superTriangleMargin = 100

type bowyerWatson struct {
	// Input points followed by the three super triangle vertices
	points    []Point
	triangles []Triangle
	n         int
}

func triangulateBowyerWatson(input []Point) []Triangle {
	n := len(input)
	if n < 3 {
		fatalf("need at least 3 points to triangulate, got %d", n)
	}

	bw := &bowyerWatson{n: n}
	bw.seed(input)

	seen := make(map[Point]struct{}, n)
	for i := 0; i < n; i++ {
		if _, ok := seen[input[i]]; ok {
			continue
		}
		seen[input[i]] = struct{}{}
		bw.insert(i)
	}

	result := make([]Triangle, 0, len(bw.triangles))
	for _, tri := range bw.triangles {
		if tri.A >= n || tri.B >= n || tri.C >= n {
			continue
		}
		result = append(result, tri)
	}
	if len(result) == 0 {
		fatalf("no Delaunay triangulation exists for this input")
	}
	return result
}

func (bw *bowyerWatson) seed(input []Point) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range input {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	extent := math.Max(maxX-minX, maxY-minY)
	if extent == 0 {
		fatalf("no Delaunay triangulation exists for this input")
	}
	if math.IsInf(extent, 0) || math.IsNaN(extent) {
		fatalf("point set has non-finite coordinates")
	}

	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	d := extent * superTriangleMargin

	bw.points = make([]Point, 0, bw.n+3)
	bw.points = append(bw.points, input...)
	bw.points = append(bw.points,
		Point{cx - 2*d, cy - d},
		Point{cx + 2*d, cy - d},
		Point{cx, cy + 2*d},
	)
	bw.triangles = []Triangle{{bw.n, bw.n + 1, bw.n + 2}}
}

type edge struct {
	from, to int
}

// Direction independent key for counting shared edges
func (e edge) key() edge {
	if e.from > e.to {
		return edge{e.to, e.from}
	}
	return e
}

func (bw *bowyerWatson) insert(i int) {
	p := bw.points[i]

	var bad []Triangle
	kept := bw.triangles[:0:0]
	for _, tri := range bw.triangles {
		a, b, c := tri.Vertices(bw.points)
		if InCircle(a, b, c, p) {
			bad = append(bad, tri)
		} else {
			kept = append(kept, tri)
		}
	}
	if len(bad) == 0 {
		// Only possible if p coincides with an existing vertex within float
		// precision.
		return
	}

	edgeCount := make(map[edge]int, len(bad)*3)
	for _, tri := range bad {
		for _, e := range triangleEdges(tri) {
			edgeCount[e.key()]++
		}
	}

	// Boundary edges keep the direction they had in their (counterclockwise)
	// triangle, so fanning from p keeps the new triangles counterclockwise.
	for _, tri := range bad {
		for _, e := range triangleEdges(tri) {
			if edgeCount[e.key()] != 1 {
				continue
			}
			newTri := Triangle{e.from, e.to, i}
			if !IsCCW(bw.points[e.from], bw.points[e.to], p) {
				fatalf("cavity is not star shaped from point %d %v: triangle %v is not counterclockwise", i, p, newTri)
			}
			kept = append(kept, newTri)
		}
	}
	bw.triangles = kept
}

func triangleEdges(tri Triangle) [3]edge {
	return [3]edge{{tri.A, tri.B}, {tri.B, tri.C}, {tri.C, tri.A}}
}
