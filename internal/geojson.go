package internal

import geojson "github.com/paulmach/go.geojson"

// GeoJSON builds a feature collection for a successful run: one closed
// polygon per quad, then one per triangle, then the input points as a single
// multipoint. Coordinates are used as given; nothing is projected.
func GeoJSON(result *Result) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for i, quad := range result.Quads {
		feature := geojson.NewPolygonFeature([][][]float64{ring(quad[:])})
		feature.SetProperty("kind", "quad")
		feature.SetProperty("triangle", i)
		fc.AddFeature(feature)
	}

	points := result.Triangulation.Points
	for i, tri := range result.Triangulation.Triangles {
		a, b, c := tri.Vertices(points)
		feature := geojson.NewPolygonFeature([][][]float64{ring([]Point{a, b, c})})
		feature.SetProperty("kind", "triangle")
		feature.SetProperty("triangle", i)
		feature.SetProperty("vertices", tri.Indexes())
		fc.AddFeature(feature)
	}

	coordinates := make([][]float64, len(points))
	for i, p := range points {
		coordinates[i] = []float64{p.X, p.Y}
	}
	feature := geojson.NewMultiPointFeature(coordinates...)
	feature.SetProperty("kind", "points")
	fc.AddFeature(feature)

	return fc
}

// GeoJSON rings repeat their first position at the end
func ring(points []Point) [][]float64 {
	positions := make([][]float64, 0, len(points)+1)
	for _, p := range points {
		positions = append(positions, []float64{p.X, p.Y})
	}
	return append(positions, []float64{points[0].X, points[0].Y})
}
