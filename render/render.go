// Package render prints a routing.Table, either as the fixed-width text grid
// or as a YAML document.
package render

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/rmatrix/routing"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for a format name other than text or yaml.
var ErrUnknownFormat = errors.New("render: unknown output format")

// ParseFormat maps a case-insensitive name to a Format. "yml" is accepted
// as YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
	}
}

// Write renders t in format f. Text options are ignored for YAML.
func Write(w io.Writer, t *routing.Table, f Format, opts ...TextOption) error {
	switch f {
	case FormatText:
		return Text(w, t, opts...)
	case FormatYAML:
		return YAML(w, t)
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", string(f))
	}
}
