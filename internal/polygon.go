package internal

type Polygon struct {
	Points []Point
}

// Build the polygon traced by a list of indexes into a point set, such as a
// hull or a quad's source triangle.
func PolygonFromIndexes(points []Point, indexes []int) Polygon {
	poly := Polygon{Points: make([]Point, len(indexes))}
	for i, index := range indexes {
		poly.Points[i] = points[index]
	}
	return poly
}

// Shoelace area. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += vertex.X*nextVertex.Y - nextVertex.X*vertex.Y
	}
	return sum / 2
}
