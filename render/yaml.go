package render

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rmatrix/routing"
)

// Document is the YAML form of a routing table.
type Document struct {
	Nodes  []string `yaml:"nodes"`
	Routes []Row    `yaml:"routes"`
}

// Row holds the cells of one source.
type Row struct {
	Source string  `yaml:"source"`
	Cells  []Entry `yaml:"cells"`
}

// Entry is one cell. FirstHop and Distance are set only for kind "hop";
// Distance is a pointer so that a zero-length hop still prints.
type Entry struct {
	Destination string `yaml:"destination"`
	Kind        string `yaml:"kind"`
	FirstHop    string `yaml:"first_hop,omitempty"`
	Distance    *int64 `yaml:"distance,omitempty"`
}

// DocumentOf converts t into its YAML form, rows and cells in table order.
func DocumentOf(t *routing.Table) Document {
	doc := Document{Nodes: t.Nodes()}
	for _, src := range doc.Nodes {
		row, _ := t.Row(src)
		r := Row{Source: src, Cells: make([]Entry, len(row))}
		for j, c := range row {
			e := Entry{Destination: doc.Nodes[j], Kind: c.Kind.String()}
			if c.Kind == routing.CellHop {
				d := c.Distance
				e.FirstHop = c.FirstHop
				e.Distance = &d
			}
			r.Cells[j] = e
		}
		doc.Routes = append(doc.Routes, r)
	}

	return doc
}

// YAML writes t as a Document.
func YAML(w io.Writer, t *routing.Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(DocumentOf(t)); err != nil {
		return errors.Wrap(err, "failed to encode routing table")
	}

	return enc.Close()
}
