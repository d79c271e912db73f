package internal

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) svg parser. It parses the SVG, takes
// the vertices of the first polygon, and then the centers of every circle, in
// document order. Transforms are ignored.
//
// SVG's Y axis points down. We don't flip it, since the triangulation doesn't
// care, and flipping would make the coordinates disagree with the drawing tool
// that produced the file.
func LoadSVGPoints(r io.Reader) ([]Point, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []Point
	if polygons := rootEl.FindAll("polygon"); len(polygons) > 0 {
		polygonPoints, err := parseSVGPointList(polygons[0].Attributes["points"])
		if err != nil {
			return nil, err
		}
		points = append(points, polygonPoints...)
	}

	for _, circleEl := range rootEl.FindAll("circle") {
		x, err := parseSVGNumber(circleEl.Attributes["cx"])
		if err != nil {
			return nil, errors.Wrap(err, "circle cx")
		}
		y, err := parseSVGNumber(circleEl.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrap(err, "circle cy")
		}
		points = append(points, Point{x, y})
	}

	if len(points) == 0 {
		return nil, errors.New("no polygon or circle elements found in svg")
	}
	return points, nil
}

// Points are separated by whitespace and/or commas, so "1,2 3,4" and "1 2 3 4"
// are both accepted.
func parseSVGPointList(pointString string) ([]Point, error) {
	fields := strings.FieldsFunc(pointString, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("invalid point list %q: odd number of values", pointString)
	}
	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := parseSVGNumber(fields[i])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := parseSVGNumber(fields[i+1])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, Point{x, y})
	}
	return points, nil
}

// Missing attributes default to zero, as they do in SVG
func parseSVGNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
}
