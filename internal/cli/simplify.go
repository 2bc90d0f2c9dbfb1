package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/qcdraw/qcdraw/pkg/circuit/simplify"
)

// simplifyCommand creates the simplify command.
func (c *CLI) simplifyCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "simplify [file]",
		Short: "Cancel adjacent self-inverse gate pairs in a circuit",
		Long: `Simplify removes pairs of identical self-inverse two-qubit gates
(CNOT, SWAP, ISwap, ControlledPauliZ) acting on the same qubits with no
interfering operation between them, and writes the reduced circuit as
JSON. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			circ, err := readCircuit(args[0])
			if err != nil {
				return err
			}

			reduced := simplify.Run(circ)
			data, err := json.MarshalIndent(reduced, "", "  ")
			if err != nil {
				return err
			}
			data = append(data, '\n')

			if output == "" {
				output = "-"
			}
			if err := writeOutput(output, data); err != nil {
				return err
			}
			if output != "-" {
				printSuccess("Removed %d operations", circ.Len()-reduced.Len())
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
