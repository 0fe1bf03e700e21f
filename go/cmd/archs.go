package cmd

import (
	"fmt"

	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"

	"github.com/lunixbochs/asmcorn/go/arch"
)

var archsCmd = &cobra.Command{
	Use:   "archs",
	Short: "List architectures and whether they are supported",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		color := useColor()
		for _, a := range arch.List() {
			status, bits := "unsupported", ""
			if arch.Supported(a) {
				status = "supported"
				bits = fmt.Sprintf("%d-bit", arch.Resolve(a).Bits)
			}
			if color {
				c := "green"
				if status == "unsupported" {
					c = "red"
				}
				status = ansi.Color(status, c)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-7s %-6s %s\n", a, bits, status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(archsCmd)
}
