package loader

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rmatrix/core"
)

// Topology is the YAML form of a graph:
//
//	nodes: [A, B, C, D]
//	edges:
//	  - {from: A, to: B, weight: 1}
//	  - {from: B, to: C, weight: 2}
//
// nodes is optional; it is only needed for nodes without edges.
type Topology struct {
	Nodes []string   `yaml:"nodes,omitempty"`
	Edges []TopoEdge `yaml:"edges,omitempty"`
}

// TopoEdge is one entry of Topology.Edges.
type TopoEdge struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight *int64 `yaml:"weight"`
}

// ParseYAML reads a Topology document. Edge errors carry the line of the
// offending mapping.
func ParseYAML(r io.Reader, source string) (*core.Graph, error) {
	var doc struct {
		Nodes []string    `yaml:"nodes"`
		Edges []yaml.Node `yaml:"edges"`
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "failed to decode %s", source)
	}

	g := core.NewGraph()
	for _, name := range doc.Nodes {
		if err := g.AddNode(name); err != nil {
			return nil, errors.Wrapf(err, "%s: nodes", source)
		}
	}
	for i := range doc.Edges {
		n := &doc.Edges[i]
		record := fmt.Sprintf("edges[%d]", i)
		fail := func(err error) error {
			return &ParseError{Source: source, Line: n.Line, Record: record, Err: err}
		}

		if err := checkEdgeKeys(n); err != nil {
			return nil, fail(err)
		}
		var e TopoEdge
		if err := n.Decode(&e); err != nil {
			return nil, fail(errors.Wrap(ErrBadWeight, err.Error()))
		}
		if e.Weight == nil {
			return nil, fail(ErrMissingWeight)
		}
		if err := addEdge(g, source, n.Line, e.From, e.To, *e.Weight, fail); err != nil {
			return nil, err
		}
	}
	log.Debugf("loader: %s: %d nodes, %d edges", source, g.NodeCount(), g.EdgeCount())

	return g, nil
}

// checkEdgeKeys rejects edge mapping keys TopoEdge does not declare.
// Node.Decode ignores them even when the document decoder is strict.
func checkEdgeKeys(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		switch key := n.Content[i].Value; key {
		case "from", "to", "weight":
		default:
			return errors.Wrapf(ErrUnknownField, "%q", key)
		}
	}

	return nil
}

// TopologyOf converts g into its YAML form: every node, then every edge
// once with From < To.
func TopologyOf(g *core.Graph) Topology {
	t := Topology{Nodes: g.Nodes()}
	for _, e := range g.Edges() {
		w := e.Weight
		t.Edges = append(t.Edges, TopoEdge{From: e.From, To: e.To, Weight: &w})
	}

	return t
}

// WriteYAML emits g as a Topology document.
func WriteYAML(w io.Writer, g *core.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(TopologyOf(g)); err != nil {
		return errors.Wrap(err, "failed to encode topology")
	}

	return enc.Close()
}
