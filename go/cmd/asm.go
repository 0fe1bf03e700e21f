package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lunixbochs/asmcorn/go/models"
)

var asmCmd = &cobra.Command{
	Use:   "asm [flags] <source...|->",
	Short: "Assemble source into machine code",
	Long: `Assemble source at the load address and print the bytes as hex.
Instructions can be separated by ';' or newlines. Multiple args are joined with newlines.`,
	Example: `
asmcorn asm -a x86 "inc eax; ret"
echo "bl 0x2000" | asmcorn asm -a arm -b 0x1000 -
  `,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := targetFlags(cmd)
		if err != nil {
			return err
		}
		src, err := input(cmd, args)
		if err != nil {
			return err
		}
		out, err := service.AssembleReq(models.AssembleRequest{AsmStr: src, Arch: t.Arch, Addr: t.Addr, Endian: t.Endian})
		if err != nil {
			return err
		}
		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			_, err = cmd.OutOrStdout().Write(out)
			return err
		}
		hex := make([]string, len(out))
		for i, b := range out {
			hex[i] = fmt.Sprintf("%02x", b)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(hex, " "))
		return nil
	},
}

func init() {
	addTargetFlags(asmCmd)
	asmCmd.Flags().Bool("raw", false, "write raw bytes instead of hex")
	rootCmd.AddCommand(asmCmd)
}
