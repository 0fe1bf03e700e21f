// Package cmd is the asmcorn command line.
package cmd

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	asmcorn "github.com/lunixbochs/asmcorn/go"
	"github.com/lunixbochs/asmcorn/go/arch"
	"github.com/lunixbochs/asmcorn/go/logging"
	"github.com/lunixbochs/asmcorn/go/models"
)

var (
	config  *models.Config
	logger  *log.Logger
	service *asmcorn.Service

	// set by Execute when stdout is a terminal
	colorOut bool
)

var rootCmd = &cobra.Command{
	Use:   "asmcorn",
	Short: "Assemble and disassemble x86, x86_64, arm and arm64",
	Long: `asmcorn turns assembly text into machine code with keystone and machine code
back into text with capstone (or golang.org/x/arch with --decoder go).

Defaults for the global flags can be kept in config.json in the user config
folder (for example ~/.config/lunixbochs/asmcorn/config.json).`,
	Example: `
# assemble at a load address
asmcorn asm -a x86_64 -b 0x401000 "push rbp; mov rbp, rsp"

# disassemble hex bytes
asmcorn dis -a arm64 "c0 03 5f d6"
  `,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := models.LoadConfig()
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("decoder") {
			c.Decoder, _ = flags.GetString("decoder")
		}
		if flags.Changed("syntax") {
			c.Syntax, _ = flags.GetString("syntax")
		}
		if flags.Changed("verbose") {
			c.Verbose, _ = flags.GetBool("verbose")
		}
		if flags.Changed("color") {
			c.Color, _ = flags.GetBool("color")
		}
		if err := c.Validate(); err != nil {
			return err
		}
		config = c
		logger = logging.NewLoggerWithWriter(cmd.ErrOrStderr(), c.Verbose)
		service, err = asmcorn.New(c, logger)
		return err
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("decoder", models.DecoderCapstone, "disassembler backend (capstone or go)")
	pf.String("syntax", models.SyntaxIntel, "x86 assembly syntax (intel, att or nasm)")
	pf.BoolP("verbose", "v", false, "debug logging")
	pf.Bool("color", false, "force colored output")
}

func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("arch", "a", "x86_64", "target architecture")
	cmd.Flags().StringP("base", "b", "0", "load address")
	cmd.Flags().StringP("endian", "e", "little", "'big' or 'little' endian")
}

type target struct {
	Arch   models.Architecture
	Addr   uint64
	Endian models.EndianType
}

func targetFlags(cmd *cobra.Command) (target, error) {
	var t target
	name, _ := cmd.Flags().GetString("arch")
	a, err := models.ParseArchitecture(name)
	if err != nil {
		return t, err
	}
	// resolving these would abort, so refuse them here
	if !arch.Supported(a) {
		return t, models.Unsupported{Arch: a}
	}
	base, _ := cmd.Flags().GetString("base")
	addr, err := strconv.ParseUint(base, 0, 64)
	if err != nil {
		return t, errors.Wrapf(err, "bad load address %q", base)
	}
	endian, _ := cmd.Flags().GetString("endian")
	e, err := models.ParseEndian(endian)
	if err != nil {
		return t, err
	}
	return target{Arch: a, Addr: addr, Endian: e}, nil
}

// input joins args, or reads stdin if the only arg is "-".
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.Wrap(err, "failed to read stdin")
		}
		return string(data), nil
	}
	return strings.Join(args, "\n"), nil
}

func useColor() bool {
	if config != nil && config.Color {
		return true
	}
	return colorOut && os.Getenv("NO_COLOR") == ""
}

func Execute() {
	colorOut = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !colorOut {
		if err := rootCmd.Execute(); err != nil {
			os.Exit(1)
		}
		return
	}
	rootCmd.SetOut(colorable.NewColorableStdout())
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
