package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/katalvlaran/rmatrix/core"
)

// Write emits g as an edge list that Parse reads back into an equal graph:
// a comment header, one line per node without edges, then one "a b w" line
// per edge with a < b.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d nodes, %d edges\n", g.NodeCount(), g.EdgeCount())
	for _, name := range g.Nodes() {
		n, err := g.Node(name)
		if err != nil {
			return err
		}
		if n.Degree() == 0 {
			fmt.Fprintln(bw, name)
		}
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%s %s %d\n", e.From, e.To, e.Weight)
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "failed to write edge list")
	}

	return nil
}

// Save writes g to path, choosing the format like Load does.
func Save(path string, g *core.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "failed to close %s", path)
		}
	}()

	if FormatOf(path) == FormatYAML {
		return WriteYAML(f, g)
	}

	return Write(f, g)
}
