package loader

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/rmatrix/core"
)

// Format names a graph file encoding.
type Format string

const (
	// FormatText is the whitespace separated edge list.
	FormatText Format = "text"
	// FormatYAML is the nodes/edges YAML document.
	FormatYAML Format = "yaml"
)

const maxLineBytes = 1 << 20

// FormatOf picks the format from the file extension: .yaml and .yml are YAML,
// anything else is the text edge list.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Load reads the graph stored at path in the format chosen by FormatOf.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open graph file %s", path)
	}
	defer f.Close()

	return Read(f, path, FormatOf(path))
}

// Read decodes a graph from r. source is only used in error messages.
func Read(r io.Reader, source string, format Format) (*core.Graph, error) {
	switch format {
	case FormatText:
		return Parse(r, source)
	case FormatYAML:
		return ParseYAML(r, source)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%s: %q", source, format)
	}
}

// Parse reads an edge list: one record per line, either "<a> <b> <weight>"
// or a lone "<node>". Blank lines and lines starting with '#' are skipped.
// A repeated edge keeps the last weight read.
func Parse(r io.Reader, source string) (*core.Graph, error) {
	g := core.NewGraph()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := addRecord(g, source, line, text, strings.Fields(text)); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", source)
	}
	log.Debugf("loader: %s: %d nodes, %d edges", source, g.NodeCount(), g.EdgeCount())

	return g, nil
}

// addRecord applies one text record to g.
func addRecord(g *core.Graph, source string, line int, text string, fields []string) error {
	fail := func(err error) error {
		return &ParseError{Source: source, Line: line, Record: text, Err: err}
	}

	switch len(fields) {
	case 1:
		return g.AddNode(fields[0])
	case 2:
		return fail(ErrMissingWeight)
	case 3:
	default:
		return fail(ErrTooManyFields)
	}

	w, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return fail(ErrBadWeight)
	}

	return addEdge(g, source, line, fields[0], fields[1], w, fail)
}

// addEdge checks an edge record and inserts it, warning on duplicates.
func addEdge(g *core.Graph, source string, line int, a, b string, w int64, fail func(error) error) error {
	switch {
	case a == "" || b == "":
		return fail(ErrEmptyName)
	case w < 0:
		return fail(ErrNegativeWeight)
	case w > core.MaxWeight:
		return fail(ErrWeightTooLarge)
	case a == b:
		return fail(ErrSelfLoop)
	}
	if old, ok := g.Weight(a, b); ok {
		log.WithFields(log.Fields{
			"source": source,
			"line":   line,
			"edge":   a + "-" + b,
			"old":    old,
			"new":    w,
		}).Warn("loader: duplicate edge, keeping the last weight")
	}
	if err := g.AddEdge(a, b, w); err != nil {
		return errors.Wrapf(err, "%s:%d", source, line)
	}

	return nil
}
