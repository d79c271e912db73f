package internal

// Reshape a flat x, y, x, y... list into points, preserving input order.
func Pairs(coords []float64) ([]Point, error) {
	if len(coords)%2 != 0 {
		return nil, ErrUnpaired
	}
	points := make([]Point, len(coords)/2)
	for i := range points {
		points[i] = Point{X: coords[2*i], Y: coords[2*i+1]}
	}
	return points, nil
}
