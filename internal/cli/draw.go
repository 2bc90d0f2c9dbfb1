package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qcdraw/qcdraw/pkg/fonts"
	"github.com/qcdraw/qcdraw/pkg/pipeline"
	"github.com/qcdraw/qcdraw/pkg/render/typst"
)

// drawOpts holds the command-line flags for the draw command.
type drawOpts struct {
	output         string  // output file path
	pragmas        string  // pragma filter: all, none, or comma-separated names
	initMode       string  // wire label mode: state or qubit
	simplify       bool    // cancel adjacent self-inverse gate pairs
	pixelsPerPoint float64 // PNG rasterization density
	noCache        bool    // disable the artifact cache
	refresh        bool    // recompute even when cached
	typstBinary    string  // typst executable override
	fontDir        string  // font directory override
}

// drawCommand creates the draw command for rendering circuits to PNG.
func (c *CLI) drawCommand() *cobra.Command {
	opts := drawOpts{
		pragmas:        firstNonEmpty(c.Config.RenderPragmas, pipeline.DefaultRenderPragmas),
		initMode:       firstNonEmpty(c.Config.InitMode, pipeline.DefaultInitMode),
		pixelsPerPoint: c.Config.PixelsPerPoint,
		typstBinary:    c.Config.TypstBinary,
		fontDir:        c.Config.FontDir,
	}
	if opts.pixelsPerPoint == 0 {
		opts.pixelsPerPoint = pipeline.DefaultPixelsPerPoint
	}

	cmd := &cobra.Command{
		Use:   "draw [file]",
		Short: "Render a circuit to a PNG image",
		Long: `Draw reads a serialized circuit (JSON), lays its operations out on
column-aligned qubit, boson, and classical tracks, and compiles the
diagram to PNG with the typst binary. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output == "" {
				opts.output = outputName(args[0], ".png")
			}
			return c.runDraw(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with .png)")
	cmd.Flags().StringVar(&opts.pragmas, "pragmas", opts.pragmas, "pragmas to render: all, none, or comma-separated names")
	cmd.Flags().StringVar(&opts.initMode, "init", opts.initMode, "wire labels: state (|0>) or qubit (q[i])")
	cmd.Flags().BoolVar(&opts.simplify, "simplify", false, "cancel adjacent self-inverse gate pairs before drawing")
	cmd.Flags().Float64Var(&opts.pixelsPerPoint, "ppp", opts.pixelsPerPoint, "pixels per point for PNG output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute all stages even when cached")
	cmd.Flags().StringVar(&opts.typstBinary, "typst", opts.typstBinary, "typst executable to invoke")
	cmd.Flags().StringVar(&opts.fontDir, "font-dir", opts.fontDir, "directory holding the Fira Math font")

	return cmd
}

func (c *CLI) runDraw(ctx context.Context, input string, opts *drawOpts) error {
	circ, err := readCircuit(input)
	if err != nil {
		return err
	}

	fontDir := opts.fontDir
	if fontDir == "" {
		dir, err := fonts.NewManager("").Ensure(ctx)
		if err != nil {
			return err
		}
		fontDir = dir
	}

	engine, err := typst.NewEngine(opts.typstBinary, fontDir, opts.pixelsPerPoint)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Rendering circuit...")
	spinner.Start()
	result, err := c.newRunner(opts.noCache).Execute(ctx, circ, pipeline.Options{
		RenderPragmas:  opts.pragmas,
		InitMode:       opts.initMode,
		Simplify:       opts.simplify,
		Format:         pipeline.FormatPNG,
		PixelsPerPoint: opts.pixelsPerPoint,
		Refresh:        opts.refresh,
		Engine:         engine,
		Logger:         c.Logger,
	})
	spinner.Stop()
	if err != nil {
		return err
	}

	if err := writeOutput(opts.output, result.Image); err != nil {
		return err
	}

	printSuccess("Rendered %d operations", result.Stats.OperationCount)
	printFile(opts.output)
	if result.CacheInfo.ImageHit {
		printDetail("image served from cache")
	}
	return nil
}

// outputName derives an output path from the input path and extension.
func outputName(input, ext string) string {
	if input == "-" {
		return "circuit" + ext
	}
	base := strings.TrimSuffix(input, ".json")
	return base + ext
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
