// Package render holds the bracket renderers and shared format conversion.
//
// # Renderers
//
//   - [text]: terminal tree of the bracket built with lipgloss
//   - [nodelink]: Graphviz node-link diagram (DOT and SVG)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	svg, err := nodelink.RenderSVG(ctx, nodelink.ToDOT(t, nodelink.Options{}))
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
package render
