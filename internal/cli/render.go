package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bracket/pkg/cache"
	"github.com/matzehuels/bracket/pkg/errors"
	"github.com/matzehuels/bracket/pkg/render"
	"github.com/matzehuels/bracket/pkg/render/nodelink"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPDF = "pdf"
	formatPNG = "png"

	defaultScale = 2.0 // PNG resolution multiplier
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatDOT: true, formatSVG: true, formatPDF: true, formatPNG: true}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string  // output file path, "-" for stdout
	format   string  // dot, svg, pdf or png
	solve    bool    // solve before drawing
	detailed bool    // node IDs, depths and metadata in labels
	noCache  bool    // bypass the artifact cache
	scale    float64 // PNG scale factor
}

// renderCommand creates the render command for drawing bracket diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		format: formatSVG,
		solve:  true,
		scale:  defaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render [file.toml]",
		Short: "Render a tournament bracket to DOT, SVG, PDF or PNG",
		Args:  cobra.ExactArgs(1),

		ValidArgsFunction: completeDefinition,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension, - for stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot, pdf, png")
	cmd.Flags().BoolVar(&opts.solve, "solve", opts.solve, "solve the tournament before drawing")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show node IDs, depths and round metadata")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")

	return cmd
}

// validateFormat checks that format is one of validFormats.
func validateFormat(format string) error {
	if !validFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'dot', 'pdf', or 'png')", format)
	}
	return nil
}

// outputPath derives the output path: the explicit output if set, otherwise
// the input path with its extension replaced by the format.
func outputPath(output, input, format string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

// runRender loads and optionally solves the tournament at input, then writes
// its diagram in the requested format.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	b, err := loadBracket(input)
	if err != nil {
		return err
	}
	if opts.solve {
		if err := b.Solve(); err != nil {
			return err
		}
	}
	logger.Infof("Loaded bracket: %d entrants, %d/%d rounds complete", b.Entrants(), b.Complete(), b.Rounds())

	dot := b.DOT(nodelink.Options{Detailed: opts.detailed})

	c, keyer, err := newCache(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer c.Close()

	data, cached, err := renderArtifact(ctx, c, keyer, dot, opts)
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", opts.format, len(data))

	path := outputPath(opts.output, input, opts.format)
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return errors.Wrap(errors.ErrCodePrintFailure, err, "write %s", path)
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(errors.ErrCodePrintFailure, err, "close %s", path)
	}

	if path != "-" {
		printSuccess("Rendered %s", b.Title())
		printFile(path)
		printStats(b.Nodes(), b.Edges(), cached)
	}
	return nil
}

// renderArtifact converts dot to opts.format, consulting the cache first.
// DOT output is returned as is and never cached.
func renderArtifact(ctx context.Context, c cache.Cache, keyer cache.Keyer, dot string, opts *renderOpts) ([]byte, bool, error) {
	return cachedArtifact(ctx, c, keyer, dot, opts, func() ([]byte, error) {
		spinner := newSpinner(ctx, os.Stderr, fmt.Sprintf("Rendering %s...", opts.format))
		spinner.Start()
		data, err := convert(ctx, dot, opts)
		if err != nil {
			if spinner.Cancelled() {
				spinner.Stop()
				return nil, ctx.Err()
			}
			spinner.StopWithError(fmt.Sprintf("Rendering %s failed", opts.format))
			return nil, err
		}
		spinner.Stop()
		return data, nil
	})
}

// cachedArtifact returns the cached artifact for dot and opts, or produces it
// with convertFn and stores it. Cache failures are logged, never returned.
func cachedArtifact(ctx context.Context, c cache.Cache, keyer cache.Keyer, dot string, opts *renderOpts, convertFn func() ([]byte, error)) ([]byte, bool, error) {
	if opts.format == formatDOT {
		return []byte(dot), false, nil
	}

	keyOpts := cache.ArtifactKeyOpts{Format: opts.format}
	if opts.format == formatPNG {
		keyOpts.Scale = opts.scale
	}
	key := keyer.ArtifactKey(cache.Hash([]byte(dot)), keyOpts)

	if data, ok, err := c.Get(ctx, key); err != nil {
		loggerFromContext(ctx).Warnf("Cache read failed: %v", err)
	} else if ok {
		return data, true, nil
	}

	data, err := convertFn()
	if err != nil {
		return nil, false, err
	}
	if err := c.Set(ctx, key, data, artifactTTL); err != nil {
		loggerFromContext(ctx).Warnf("Cache write failed: %v", err)
	}
	return data, false, nil
}

// convert renders dot to SVG and, for PDF and PNG, converts the SVG further.
func convert(ctx context.Context, dot string, opts *renderOpts) ([]byte, error) {
	svg, err := nodelink.RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	switch opts.format {
	case formatSVG:
		return svg, nil
	case formatPDF:
		return render.ToPDF(ctx, svg)
	case formatPNG:
		return render.ToPNG(ctx, svg, opts.scale)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", opts.format)
	}
}
