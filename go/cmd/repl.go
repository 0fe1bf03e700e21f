package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lunixbochs/asmcorn/go/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive assembler",
	Long:  "Assemble one line at a time. Type .help for commands.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := targetFlags(cmd)
		if err != nil {
			return err
		}
		r, err := ui.NewRepl(service, t.Arch, t.Addr)
		if err != nil {
			return err
		}
		return r.Run(cmd.OutOrStdout())
	},
}

func init() {
	addTargetFlags(replCmd)
	rootCmd.AddCommand(replCmd)
}
