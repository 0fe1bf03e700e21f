package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lunixbochs/asmcorn/go/models"
	"github.com/lunixbochs/asmcorn/go/ui"
)

var disCmd = &cobra.Command{
	Use:   "dis [flags] <hex...|->",
	Short: "Disassemble hex bytes",
	Long: `Disassemble bytes given as hex ("90 c3", "90c3", "0x90,0xc3" or "\x90\xc3")
and print one instruction per line. Any undecodable byte fails the whole input.`,
	Example: `
asmcorn dis -a x86_64 "55 48 89 e5 5d c3"
asmcorn dis -a arm64 -b 0x1000 -l c0035fd6
  `,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := targetFlags(cmd)
		if err != nil {
			return err
		}
		text, err := input(cmd, args)
		if err != nil {
			return err
		}
		mem, err := ui.ParseHex(text)
		if err != nil {
			return err
		}
		req := models.DisassembleRequest{Bytes: mem, Arch: t.Arch, Addr: t.Addr, Endian: t.Endian}
		var out string
		if listing, _ := cmd.Flags().GetBool("listing"); listing {
			out, err = service.Listing(req)
		} else {
			var lines []string
			lines, err = service.DisassembleReq(req)
			out = strings.Join(lines, "\n")
		}
		if err != nil {
			return err
		}
		if out == "" {
			return nil
		}
		if useColor() {
			if colored, err := ui.Colorize(out, t.Arch, config.Syntax); err == nil {
				out = colored
			} else {
				logger.Debug("colorize failed", "err", err)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	addTargetFlags(disCmd)
	disCmd.Flags().BoolP("listing", "l", false, "show addresses and bytes")
	rootCmd.AddCommand(disCmd)
}
