package internal

// Derive one quad per triangle, in triangle order. For a triangle (a, b, c)
// the quad is
//
//	a, b, mid(a, c), mid(b, c)
//
// i.e. the triangle with its c corner cut off along the line joining the
// midpoints of its two edges at c. The rule depends on vertex order, so the
// same triangle can produce a different quad if an engine rotates it.
func DeriveQuads(points []Point, triangles []Triangle) []Quad {
	quads := make([]Quad, 0, len(triangles))
	for _, tri := range triangles {
		quads = append(quads, DeriveQuad(tri.Vertices(points)))
	}
	return quads
}

func DeriveQuad(a, b, c Point) Quad {
	return Quad{a, b, Midpoint(a, c), Midpoint(b, c)}
}
