package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qcdraw/qcdraw/pkg/render/interaction"
)

// graphCommand creates the graph command for interaction diagrams.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		output   string
		format   string
		weighted bool
	)

	cmd := &cobra.Command{
		Use:   "graph [file]",
		Short: "Render the qubit interaction graph of a circuit",
		Long: `Graph draws the coupling structure of a circuit: one node per qubit
and bosonic mode, one edge per pair coupled by a multi-qubit or hybrid
operation. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			circ, err := readCircuit(args[0])
			if err != nil {
				return err
			}

			dot := interaction.ToDOT(circ, interaction.Options{Weighted: weighted})

			var data []byte
			switch format {
			case "dot":
				data = []byte(dot)
			case "svg":
				data, err = interaction.RenderSVG(dot)
			case "png":
				data, err = interaction.RenderPNG(dot)
			default:
				return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', or 'png')", format)
			}
			if err != nil {
				return err
			}

			if output == "" {
				output = outputName(args[0], "."+format)
			}
			if err := writeOutput(output, data); err != nil {
				return err
			}
			if output != "-" {
				printSuccess("Rendered interaction graph")
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: dot, svg, png")
	cmd.Flags().BoolVar(&weighted, "weighted", false, "label edges with operation counts")

	return cmd
}
