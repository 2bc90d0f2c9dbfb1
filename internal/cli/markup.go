package cli

import (
	"github.com/spf13/cobra"

	"github.com/qcdraw/qcdraw/pkg/pipeline"
)

// markupCommand creates the markup command for emitting typst source.
func (c *CLI) markupCommand() *cobra.Command {
	var (
		output   string
		pragmas  = firstNonEmpty(c.Config.RenderPragmas, pipeline.DefaultRenderPragmas)
		initMode = firstNonEmpty(c.Config.InitMode, pipeline.DefaultInitMode)
		simplify bool
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "markup [file]",
		Short: "Emit the typst source for a circuit",
		Long: `Markup generates the typst quill source for a circuit without
invoking the typst binary, which makes it usable on machines without
typst or the Fira Math font installed. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			circ, err := readCircuit(args[0])
			if err != nil {
				return err
			}

			markup, err := c.newRunner(noCache).Markup(cmd.Context(), circ, pipeline.Options{
				RenderPragmas: pragmas,
				InitMode:      initMode,
				Simplify:      simplify,
				Format:        pipeline.FormatTyp,
				Logger:        c.Logger,
			})
			if err != nil {
				return err
			}

			if output == "" {
				output = outputName(args[0], ".typ")
			}
			if err := writeOutput(output, []byte(markup)); err != nil {
				return err
			}
			if output != "-" {
				printSuccess("Generated typst markup")
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with .typ, - for stdout)")
	cmd.Flags().StringVar(&pragmas, "pragmas", pragmas, "pragmas to render: all, none, or comma-separated names")
	cmd.Flags().StringVar(&initMode, "init", initMode, "wire labels: state (|0>) or qubit (q[i])")
	cmd.Flags().BoolVar(&simplify, "simplify", false, "cancel adjacent self-inverse gate pairs first")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}
