package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/katalvlaran/rmatrix/routing"
)

// MinColumnWidth is the narrowest column Text will print.
const MinColumnWidth = 10

const gutter = "|    "

// TextOptions controls the text grid.
type TextOptions struct {
	MinWidth  int  // lower bound on the column width
	Separator bool // dashed line under the header
}

// TextOption represents a functional option for Text.
type TextOption func(*TextOptions)

// WithMinWidth raises or lowers the minimum column width. Values below 1 are
// ignored.
func WithMinWidth(n int) TextOption {
	return func(o *TextOptions) {
		if n > 0 {
			o.MinWidth = n
		}
	}
}

// WithoutSeparator drops the dashed line under the header.
func WithoutSeparator() TextOption {
	return func(o *TextOptions) { o.Separator = false }
}

// Text writes t as a fixed-width grid:
//
//	               A         B         C
//	----------------------------------------
//	A         |    self      (B,1)     (B,3)
//	B         |    (A,1)     self      (C,2)
//
// Every column, the source column included, is as wide as the longest node
// name or cell plus one space, and never narrower than the minimum width.
// Trailing blanks are trimmed from each line.
func Text(w io.Writer, t *routing.Table, opts ...TextOption) error {
	cfg := TextOptions{MinWidth: MinColumnWidth, Separator: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	width := columnWidth(t, cfg.MinWidth)
	nodes := t.Nodes()
	bw := bufio.NewWriter(w)

	var line strings.Builder
	emit := func() {
		fmt.Fprintln(bw, strings.TrimRight(line.String(), " "))
		line.Reset()
	}

	line.WriteString(strings.Repeat(" ", width+len(gutter)))
	for _, n := range nodes {
		fmt.Fprintf(&line, "%-*s", width, n)
	}
	emit()
	if cfg.Separator {
		line.WriteString(strings.Repeat("-", (len(nodes)+1)*width))
		emit()
	}

	for _, src := range nodes {
		row, err := t.Row(src)
		if err != nil {
			return err
		}
		fmt.Fprintf(&line, "%-*s%s", width, src, gutter)
		for _, c := range row {
			fmt.Fprintf(&line, "%-*s", width, c.String())
		}
		emit()
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "failed to write routing table")
	}

	return nil
}

// columnWidth returns the shared column width for t.
func columnWidth(t *routing.Table, minWidth int) int {
	widest := 0
	_ = t.Walk(func(src, _ string, c routing.Cell) error {
		if n := utf8.RuneCountInString(src); n > widest {
			widest = n
		}
		if n := utf8.RuneCountInString(c.String()); n > widest {
			widest = n
		}
		return nil
	})
	if widest+1 > minWidth {
		return widest + 1
	}

	return minWidth
}
