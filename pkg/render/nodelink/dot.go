package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/bracket/pkg/errors"
	"github.com/matzehuels/bracket/pkg/observability"
	"github.com/matzehuels/bracket/pkg/tournament"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds node IDs, depths and round metadata to labels.
	// When false, leaves show the entrant and rounds show their winner.
	Detailed bool
}

// ToDOT converts a tournament to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Edges point from child to parent and the layout runs bottom to top, so
// entrants sit on the bottom rank and the grand finals on top. Complete rounds
// are filled, the edge a winner advanced along is bold and edges of byes are
// dashed.
func ToDOT[E, M any](t *tournament.Tournament[E, M], opts Options) string {
	g := t.Graph()
	depth := depths(g, t.Root())

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	if name := t.Name(); name != "" {
		fmt.Fprintf(&buf, "  labelloc=t;\n  label=%q;\n", name)
	}
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		label := fmtLabel(t, n, depth[n.ID], opts.Detailed)
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeName(n.ID), strings.Join(fmtAttrs(n, label), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %s -> %s [%s];\n", nodeName(e.To), nodeName(e.From),
			strings.Join(edgeAttrs(g, e), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeName(id tournament.NodeID) string {
	return "n" + strconv.Itoa(int(id))
}

// depths maps node IDs to their distance from the root.
func depths[M any](g *tournament.Graph[M], root tournament.NodeID) []int {
	d := make([]int, g.NodeCount())
	order := g.PostOrder(root)
	for i := len(order) - 1; i >= 0; i-- {
		if p, ok := g.Parent(order[i]); ok {
			d[order[i]] = d[p] + 1
		}
	}
	return d
}

func fmtLabel[E, M any](t *tournament.Tournament[E, M], n tournament.Node[M], depth int, detailed bool) string {
	var head string
	if id, ok := n.EntrantID(); ok {
		head = entrantLabel(t, id)
	} else if winner, ok, _ := t.Winner(n.ID); ok {
		head = entrantLabel(t, winner)
	} else {
		head = "TBD"
	}
	if !detailed {
		return head
	}

	parts := []string{fmt.Sprintf("node: %d", int(n.ID)), fmt.Sprintf("depth: %d", depth)}
	if id, ok := n.EntrantID(); ok {
		parts = append(parts, id.String())
	} else {
		parts = append(parts, n.Round.String())
	}
	return head + "\n" + strings.Join(parts, "\n")
}

func entrantLabel[E, M any](t *tournament.Tournament[E, M], id tournament.EntrantID) string {
	e, err := t.Entrant(id)
	if err != nil {
		return id.String()
	}
	return e.String()
}

func fmtAttrs[M any](n tournament.Node[M], label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.IsRound() && n.Round.Complete {
		attrs = append(attrs, "fillcolor=\"#d8ecd8\"")
	} else if n.IsRound() {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	return attrs
}

func edgeAttrs[M any](g *tournament.Graph[M], e tournament.Edge) []string {
	attrs := []string{fmt.Sprintf("taillabel=%q", e.Side.String())}
	if parent, err := g.Node(e.From); err == nil {
		if side, ok := parent.Result(); ok && side == e.Side {
			attrs = append(attrs, "penwidth=3")
		}
	}
	if isBye(g, e) {
		attrs = append(attrs, "style=dashed")
	}
	return attrs
}

// isBye reports whether e carries an entrant straight into a round whose
// other child is itself a round.
func isBye[M any](g *tournament.Graph[M], e tournament.Edge) bool {
	child, err := g.Node(e.To)
	if err != nil || child.IsRound() {
		return false
	}
	sibling, err := g.Child(e.From, e.Side.Other())
	if err != nil {
		return false
	}
	s, err := g.Node(sibling)
	return err == nil && s.IsRound()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Failures are reported as PRINT_FAILURE.
func RenderSVG(ctx context.Context, dot string) (svg []byte, err error) {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, "svg", len(dot))
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, "svg", time.Since(start), err) }()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodePrintFailure, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodePrintFailure, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodePrintFailure, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the SVG scales from its
// viewBox instead of Graphviz's point-based width and height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
