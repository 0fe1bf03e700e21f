package cpu

import (
	ks "github.com/keystone-engine/keystone/bindings/go/keystone"
	"github.com/pkg/errors"

	"github.com/lunixbochs/asmcorn/go/models"
)

var syntaxOptions = map[string]ks.OptionValue{
	models.SyntaxIntel: ks.OPT_SYNTAX_INTEL,
	models.SyntaxATT:   ks.OPT_SYNTAX_ATT,
	models.SyntaxNASM:  ks.OPT_SYNTAX_NASM,
}

type Keystone struct {
	Arch ks.Architecture
	Mode ks.Mode
	ks   *ks.Keystone
}

// NewKeystone opens an engine for one call. The caller owns it and must Close it.
func NewKeystone(arch models.Arch, config *models.Config) (models.Assembler, error) {
	// keystone only opens arm64 in MODE_LITTLE_ENDIAN; capstone can still decode it big-endian
	if arch.Arch == models.ARM64 && arch.Endian == models.Big {
		return nil, errors.New("keystone has no big-endian arm64 mode")
	}
	k := &Keystone{Arch: ks.Architecture(arch.KS_ARCH), Mode: ks.Mode(arch.KS_MODE)}
	if err := k.Open(); err != nil {
		return nil, err
	}
	// syntax only means something to the x86 parser
	if config != nil && config.Syntax != "" && (arch.Arch == models.X86 || arch.Arch == models.X86_64) {
		opt, ok := syntaxOptions[config.Syntax]
		if !ok {
			k.Close()
			return nil, errors.Errorf("unknown syntax %q", config.Syntax)
		}
		if err := k.ks.Option(ks.OPT_SYNTAX, opt); err != nil {
			k.Close()
			return nil, errors.Wrap(err, "ks.Option() failed")
		}
	}
	return k, nil
}

func (k *Keystone) Open() (err error) {
	k.ks, err = ks.New(k.Arch, k.Mode)
	return errors.Wrap(err, "ks.New() failed")
}

func (k *Keystone) Asm(asm string, addr uint64) ([]byte, error) {
	if k.ks == nil {
		return nil, errors.New("keystone engine is closed")
	}
	out, _, ok := k.ks.Assemble(asm, addr)
	if !ok {
		return nil, errors.Wrap(k.ks.LastError(), "ks.Assemble() failed")
	}
	return out, nil
}

func (k *Keystone) Close() error {
	if k.ks == nil {
		return nil
	}
	err := k.ks.Close()
	k.ks = nil
	return errors.Wrap(err, "ks.Close() failed")
}
