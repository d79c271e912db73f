package internal

import (
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"
)

const (
	svgBackgroundStyle = "fill:rgb(0,0,0)"
	svgQuadStyle       = "fill:rgb(76,51,255);fill-opacity:0.5;fill-rule:evenodd;stroke:none"
	svgTriangleStyle   = "fill:none;stroke:rgb(0,255,255);stroke-width:1"
	svgHullStyle       = "fill:none;stroke:rgb(255,255,0);stroke-width:2"
	svgPointStyle      = "fill:rgb(255,255,255)"
)

// WriteSVG draws the same picture as the PNG renderer as an SVG document.
// svgo works in integer user units, so coordinates are rounded after scaling.
func WriteSVG(w io.Writer, result *Result, scale float64) {
	points := result.Triangulation.Points
	ct := newCanvasTransform(points, scale)
	canvas := svg.New(w)

	polygon := func(poly []Point, style string) {
		xs := make([]int, len(poly))
		ys := make([]int, len(poly))
		for i, p := range poly {
			x, y := ct.apply(p)
			xs[i], ys[i] = int(math.Round(x)), int(math.Round(y))
		}
		canvas.Polygon(xs, ys, style)
	}

	canvas.Start(ct.width, ct.height)
	canvas.Rect(0, 0, ct.width, ct.height, svgBackgroundStyle)

	for _, quad := range result.Quads {
		polygon(quad[:], svgQuadStyle)
	}
	for _, tri := range result.Triangulation.Triangles {
		a, b, c := tri.Vertices(points)
		polygon([]Point{a, b, c}, svgTriangleStyle)
	}
	if len(result.Triangulation.Hull) >= 3 {
		polygon(PolygonFromIndexes(points, result.Triangulation.Hull).Points, svgHullStyle)
	}
	for _, p := range points {
		x, y := ct.apply(p)
		canvas.Circle(int(math.Round(x)), int(math.Round(y)), 3, svgPointStyle)
	}
	canvas.End()
}

func RenderSVG(path string, result *Result, scale float64) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = errors.Wrapf(closeErr, "closing %s", path)
		}
	}()
	WriteSVG(file, result, scale)
	return nil
}
