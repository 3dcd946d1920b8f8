package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tessvane/patchboard/pkg/render"
	"github.com/tessvane/patchboard/pkg/session"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file path (or base path for multiple formats)
	formats []string // output formats: "svg", "png", "dot", "gv-svg"
	padding float64  // canvas margin around the patch content
	scale   float64  // pixel scale factor for PNG output
}

// renderCommand creates the render command for exporting stored patches.
//
// Formats:
//   - svg: vector image using the stored node positions
//   - png: raster image at --scale
//   - dot: Graphviz source for external tooling
//   - gv-svg: SVG with layout recomputed by Graphviz
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		padding: render.DefaultPadding,
		scale:   render.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render <name>",
		Short: "Export a stored patch to SVG, PNG, or Graphviz",
		Long: `Export a stored patch as an image or as Graphviz source.

The patch is looked up by name in the document store. With multiple
formats the files share a base path and differ in extension.`,
		Example: `  # Export drone.svg into the current directory
  patchboard render drone

  # Export both image formats under out/drone.*
  patchboard render drone --format svg,png --output out/drone

  # Let Graphviz lay the patch out
  patchboard render drone --format gv-svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := render.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot, gv-svg (comma-separated)")
	cmd.Flags().Float64Var(&opts.padding, "padding", opts.padding, "margin around the patch in canvas units")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "pixel scale factor for png output")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{render.FormatSVG}
	}
	return strings.Split(s, ",")
}

// fileExt maps a format to its file extension. The Graphviz SVG variant
// gets a distinct suffix so both SVG exports can sit side by side.
func fileExt(format string) string {
	if format == render.FormatGraphvizSVG {
		return ".gv.svg"
	}
	return "." + format
}

// basePath derives the base output path from the output flag and the
// patch name. If output is empty, the patch name is used. If output has
// a format extension (.svg, .png, .dot), that extension is stripped.
// This is used when generating multiple files (e.g., drone.svg, drone.png).
func basePath(output, name string) string {
	if output == "" {
		return name
	}
	ext := filepath.Ext(output)
	if render.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender loads the named patch from the store and exports it to the
// requested formats.
func (c *CLI) runRender(ctx context.Context, name string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	store, err := c.newStore()
	if err != nil {
		return err
	}
	doc, err := store.FindByName(ctx, name)
	if err != nil {
		return err
	}
	logger.Infof("Rendering %q: %d nodes, %d wires", doc.DisplayName(), doc.Patch.NodeCount(), doc.Patch.ConnectionCount())

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	ropts := render.Options{
		Theme:   cfg.BuildTheme(),
		Padding: opts.padding,
		Scale:   opts.scale,
		Logger:  logger,
	}

	if len(opts.formats) == 1 {
		return renderSingle(ctx, doc, opts.formats[0], opts, ropts)
	}
	return renderMultiple(ctx, doc, opts, ropts)
}

// renderSingle exports one format to a single output file. If opts.output
// is empty, the path is derived from the patch name.
func renderSingle(ctx context.Context, doc *session.Document, format string, opts *renderOpts, ropts render.Options) error {
	logger := loggerFromContext(ctx)

	data, err := exportFormat(ctx, doc, format, ropts)
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", format, len(data))

	path := opts.output
	if path == "" {
		path = basePath("", doc.DisplayName()) + fileExt(format)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logger.Infof("Generated %s", path)
	return nil
}

// renderMultiple exports every requested format to its own file beside
// the shared base path.
func renderMultiple(ctx context.Context, doc *session.Document, opts *renderOpts, ropts render.Options) error {
	logger := loggerFromContext(ctx)
	base := basePath(opts.output, doc.DisplayName())
	prog := newProgress(logger)

	for _, format := range opts.formats {
		data, err := exportFormat(ctx, doc, format, ropts)
		if err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}

		path := base + fileExt(format)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Infof("Generated %s", path)
	}

	prog.done(fmt.Sprintf("Exported %d formats", len(opts.formats)))
	return nil
}

// exportFormat renders one format. Graphviz runs inside a WebAssembly
// sandbox and takes a moment on larger patches, so that path gets a
// spinner.
func exportFormat(ctx context.Context, doc *session.Document, format string, ropts render.Options) ([]byte, error) {
	if format != render.FormatGraphvizSVG {
		return render.Export(doc.Patch, format, ropts)
	}

	spinner := newSpinnerWithContext(ctx, "Running Graphviz layout...")
	spinner.Start()
	data, err := render.Export(doc.Patch, format, ropts)
	if err != nil {
		spinner.StopWithError("Graphviz layout failed")
		return nil, err
	}
	spinner.Stop()
	return data, nil
}
