package internal

import (
	"image/color"
	"io"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Pixels per unit when none is configured
const DefaultScale = 50

// Padding around the point set, in pixels
const drawPadding = 20

var (
	backgroundColor = color.RGBA{0, 0, 0, 0xff}
	quadFillColor   = color.RGBA{0x4c, 0x33, 0xff, 0x80}
	triangleColor   = color.RGBA{0, 0xff, 0xff, 0xff}
	hullColor       = color.RGBA{0xff, 0xff, 0, 0xff}
	pointColor      = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Maps point set coordinates to image coordinates, with the origin at the
// bottom left like a plot.
type canvasTransform struct {
	bounds        r2.Rect
	scale         float64
	width, height int
}

func newCanvasTransform(points []Point, scale float64) canvasTransform {
	if scale <= 0 {
		scale = DefaultScale
	}
	rs := make([]r2.Point, len(points))
	for i, p := range points {
		rs[i] = r2.Point(p)
	}
	bounds := r2.RectFromPoints(rs...)
	size := bounds.Size()
	return canvasTransform{
		bounds: bounds,
		scale:  scale,
		width:  int(scale*size.X) + drawPadding*2,
		height: int(scale*size.Y) + drawPadding*2,
	}
}

func (ct canvasTransform) apply(p Point) (x, y float64) {
	x = (p.X-ct.bounds.X.Lo)*ct.scale + drawPadding
	y = float64(ct.height) - ((p.Y-ct.bounds.Y.Lo)*ct.scale + drawPadding)
	return x, y
}

// Draw the triangulation and its quads. Quads are filled, triangles and the
// hull are stroked on top, and points are dotted last so nothing hides them.
func drawResult(result *Result, scale float64) *gg.Context {
	points := result.Triangulation.Points
	ct := newCanvasTransform(points, scale)

	c := gg.NewContext(ct.width, ct.height)
	c.SetColor(backgroundColor)
	c.DrawRectangle(0, 0, float64(ct.width), float64(ct.height))
	c.Fill()
	// Quads can self intersect
	c.SetFillRuleEvenOdd()

	tracePolygon := func(poly []Point) {
		x, y := ct.apply(poly[0])
		c.MoveTo(x, y)
		for _, p := range poly[1:] {
			x, y := ct.apply(p)
			c.LineTo(x, y)
		}
		c.ClosePath()
	}

	c.SetColor(quadFillColor)
	for _, quad := range result.Quads {
		tracePolygon(quad[:])
		c.Fill()
	}

	c.SetLineWidth(1)
	c.SetColor(triangleColor)
	for _, tri := range result.Triangulation.Triangles {
		a, b, c2 := tri.Vertices(points)
		tracePolygon([]Point{a, b, c2})
		c.Stroke()
	}

	if len(result.Triangulation.Hull) >= 3 {
		c.SetLineWidth(2)
		c.SetColor(hullColor)
		tracePolygon(PolygonFromIndexes(points, result.Triangulation.Hull).Points)
		c.Stroke()
	}

	c.SetColor(pointColor)
	for _, p := range points {
		x, y := ct.apply(p)
		c.DrawCircle(x, y, 3)
		c.Fill()
	}
	return c
}

func WritePNG(w io.Writer, result *Result, scale float64) error {
	return errors.Wrap(drawResult(result, scale).EncodePNG(w), "encoding png")
}

// RenderPNG writes the picture to path. With show set, the image is also
// printed to out using the iTerm inline image protocol.
func RenderPNG(path string, result *Result, scale float64, show bool, out io.Writer) error {
	if err := savePNG(path, result, scale); err != nil {
		return err
	}
	if show {
		if err := imgcat.CatFile(path, out); err != nil {
			return errors.Wrap(err, "imgcat")
		}
	}
	return nil
}

func savePNG(path string, result *Result, scale float64) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = errors.Wrapf(closeErr, "closing %s", path)
		}
	}()
	return WritePNG(file, result, scale)
}
