package internal

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const DefaultInputPath = "../TRIANGULATION.json"

// Load a flat coordinate list from path. JSON files must hold an array of
// numbers. Paths ending in .svg are read with LoadSVGPoints and flattened, so
// that the rest of the pipeline sees the same shape either way.
func Load(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &InputNotFoundError{Path: path, Err: err}
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		points, err := LoadSVGPoints(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrapf(err, "reading points from %s", path)
		}
		return Flatten(points), nil
	}

	return DecodeCoordinates(path, data)
}

// Decode a JSON number array. Syntax errors become a *DecodeError with the
// location filled in. Well formed JSON of the wrong shape (an object, an array
// of strings) is a plain error: the content parsed fine, it just isn't usable.
func DecodeCoordinates(path string, data []byte) ([]float64, error) {
	var coords []float64
	err := json.Unmarshal(data, &coords)
	if err == nil {
		return coords, nil
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		offset := syntaxErr.Offset
		// Offset counts the offending byte as read, except at end of input where
		// there is no offending byte.
		if offset > 0 && offset <= int64(len(data)) && !isUnexpectedEOF(syntaxErr) {
			offset--
		}
		line, column := lineAndColumn(data, offset)
		return nil, &DecodeError{
			Path:   path,
			Line:   line,
			Column: column,
			Offset: offset,
			Err:    syntaxErr,
		}
	}
	return nil, errors.Wrapf(err, "decoding coordinates from %s", path)
}

func isUnexpectedEOF(err *json.SyntaxError) bool {
	return strings.Contains(err.Error(), "unexpected end of JSON input")
}

func lineAndColumn(data []byte, offset int64) (line, column int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	before := data[:offset]
	line = bytes.Count(before, []byte{'\n'}) + 1
	column = int(offset) - (bytes.LastIndexByte(before, '\n') + 1) + 1
	return line, column
}

func Flatten(points []Point) []float64 {
	coords := make([]float64, 0, len(points)*2)
	for _, p := range points {
		coords = append(coords, p.X, p.Y)
	}
	return coords
}
