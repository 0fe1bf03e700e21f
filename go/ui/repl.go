package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"

	asmcorn "github.com/lunixbochs/asmcorn/go"
	"github.com/lunixbochs/asmcorn/go/arch"
	"github.com/lunixbochs/asmcorn/go/models"
)

const replHelp = `.arch <name>   switch architecture
.addr <addr>   move the load address
.dis <hex>     disassemble bytes at the load address
.help          this text
anything else is assembled at the load address, which then advances`

// Repl assembles one line at a time, keeping a running load address.
type Repl struct {
	s  *asmcorn.Service
	rl *readline.Instance

	Arch models.Architecture
	Addr uint64
}

func newRepl(s *asmcorn.Service, a models.Architecture, addr uint64) (*Repl, error) {
	if !arch.Supported(a) {
		return nil, models.Unsupported{Arch: a}
	}
	return &Repl{s: s, Arch: a, Addr: addr}, nil
}

func NewRepl(s *asmcorn.Service, a models.Architecture, addr uint64) (*Repl, error) {
	r, err := newRepl(s, a, addr)
	if err != nil {
		return nil, err
	}
	rl, err := readline.NewEx(&readline.Config{
		InterruptPrompt: "^C",
		HistoryFile:     models.CachePath("history"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open readline")
	}
	r.rl = rl
	return r, nil
}

func (r *Repl) prompt() string {
	return fmt.Sprintf("%s %#x> ", strings.ToLower(r.Arch.String()), r.Addr)
}

// Eval runs one line and returns what should be printed.
func (r *Repl) Eval(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}
	if strings.HasPrefix(line, ".") {
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)
		switch cmd {
		case ".arch":
			a, err := models.ParseArchitecture(arg)
			if err != nil {
				return "", err
			}
			if !arch.Supported(a) {
				return "", models.Unsupported{Arch: a}
			}
			r.Arch = a
			return "", nil
		case ".addr":
			addr, err := strconv.ParseUint(arg, 0, 64)
			if err != nil {
				return "", errors.Wrapf(err, "bad address %q", arg)
			}
			r.Addr = addr
			return "", nil
		case ".dis":
			mem, err := ParseHex(arg)
			if err != nil {
				return "", err
			}
			return r.s.Listing(models.DisassembleRequest{Bytes: mem, Arch: r.Arch, Addr: r.Addr})
		case ".help":
			return replHelp, nil
		}
		return "", errors.Errorf("unknown command %s, try .help", cmd)
	}
	code, err := r.s.Assemble(line, r.Arch, r.Addr)
	if err != nil {
		return "", err
	}
	out, err := r.s.Listing(models.DisassembleRequest{Bytes: code, Arch: r.Arch, Addr: r.Addr})
	if err != nil {
		// still useful to see the bytes
		out = fmt.Sprintf("0x%x: %x", r.Addr, code)
	}
	r.Addr += uint64(len(code))
	return out, nil
}

func (r *Repl) Run(w io.Writer) error {
	defer r.Close()
	for {
		r.rl.SetPrompt(r.prompt())
		line, err := r.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		out, err := r.Eval(line)
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
		} else if out != "" {
			fmt.Fprintln(w, out)
		}
	}
}

func (r *Repl) Close() {
	if r.rl != nil {
		r.rl.Close()
	}
}
