// Package nodelink renders tournament brackets as node-link diagrams.
//
// # Overview
//
// This package produces bracket visualizations using Graphviz: every entrant
// and every round is a box, and lines join each round to the two nodes that
// feed it. The layout runs bottom to top so the grand finals is the peak.
//
// # Usage
//
// Convert a tournament to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(t, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, pass the SVG to [render.ToPDF] or [render.ToPNG].
//
// # Styling
//
//   - Complete rounds are filled green and labeled with their winner
//   - Incomplete rounds are dashed grey and labeled "TBD"
//   - The edge a winner advanced along is drawn bold
//   - Edges of byes (an entrant facing the winner of a whole round) are dashed
//
// With [Options.Detailed], labels also carry node IDs, depths and round
// metadata.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. No Graphviz installation is required.
package nodelink
