package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatPretty  = "pretty"
	FormatGeoJSON = "geojson"
)

var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatPretty, FormatGeoJSON}

const UnpairedMessage = "The data length is not suitable for 2D coordinates."

// Serialized form of a successful run, for the json and yaml formats
type report struct {
	Engine    string     `json:"engine" yaml:"engine"`
	Points    []Point    `json:"points" yaml:"points"`
	Triangles [][3]int   `json:"triangles" yaml:"triangles"`
	Hull      []int      `json:"hull" yaml:"hull"`
	Quads     [][4]Point `json:"quads" yaml:"quads"`
}

func newReport(result *Result) report {
	r := report{
		Engine:    result.Engine,
		Points:    result.Points,
		Triangles: make([][3]int, len(result.Triangulation.Triangles)),
		Hull:      result.Triangulation.Hull,
		Quads:     make([][4]Point, len(result.Quads)),
	}
	for i, tri := range result.Triangulation.Triangles {
		r.Triangles[i] = tri.Indexes()
	}
	for i, quad := range result.Quads {
		r.Quads[i] = quad
	}
	return r
}

// Report prints the outcome of Run to w. Exactly one of the following is
// written: the quads in the configured format, the unpaired-input message, or
// a diagnostic for err. Diagnostics go to w as well, since the caller exits
// normally either way.
func Report(w io.Writer, cfg Config, result *Result, err error) error {
	au := aurora.NewAurora(cfg.Color)

	if err != nil {
		_, writeErr := fmt.Fprintln(w, au.Red(Diagnose(err)))
		return writeErr
	}
	if result.Unpaired {
		_, writeErr := fmt.Fprintln(w, au.Yellow(UnpairedMessage))
		return writeErr
	}

	switch cfg.Format {
	case FormatText, "":
		_, err = fmt.Fprintf(w, "%s %s\n", au.Green("Generated quadrilaterals:"), FormatQuads(result.Quads))
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(newReport(result))
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err = encoder.Encode(newReport(result)); err == nil {
			err = encoder.Close()
		}
	case FormatPretty:
		_, err = pretty.Fprintf(w, "%# v\n", result)
	case FormatGeoJSON:
		var data []byte
		data, err = GeoJSON(result).MarshalJSON()
		if err == nil {
			_, err = fmt.Fprintf(w, "%s\n", data)
		}
	default:
		err = errors.Errorf("unknown output format %q", cfg.Format)
	}
	return errors.Wrapf(err, "writing %s report", cfg.Format)
}

// One line diagnostic for a failed run, picked by error class.
func Diagnose(err error) string {
	var notFound *InputNotFoundError
	var decodeErr *DecodeError
	switch {
	case errors.As(err, &notFound):
		return fmt.Sprintf("The file '%s' was not found.", filepath.Base(notFound.Path))
	case errors.As(err, &decodeErr):
		return fmt.Sprintf("An error occurred while parsing the JSON file: %v", decodeErr)
	default:
		return fmt.Sprintf("An unexpected error occurred: %v", err)
	}
}

func FormatQuads(quads []Quad) string {
	parts := make([]string, len(quads))
	for i, quad := range quads {
		parts[i] = quad.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
