// Package goarch decodes machine code with golang.org/x/arch. It covers the
// little-endian x86, x86_64, arm and arm64 configs and needs no C library.
package goarch

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/arch/arm/armasm"
	"golang.org/x/arch/arm64/arm64asm"
	"golang.org/x/arch/x86/x86asm"

	"github.com/lunixbochs/asmcorn/go/models"
)

type ins struct {
	addr     uint64
	raw      []byte
	mnemonic string
	opstr    string
}

func (i *ins) Addr() uint64     { return i.addr }
func (i *ins) Bytes() []byte    { return i.raw }
func (i *ins) Mnemonic() string { return i.mnemonic }
func (i *ins) OpStr() string    { return i.opstr }

type Decoder struct {
	arch models.Arch
	att  bool
}

func New(arch models.Arch, config *models.Config) (models.Disassembler, error) {
	if arch.Endian != models.Little {
		return nil, errors.Errorf("go decoder: no big-endian support for %s", arch.Name)
	}
	switch arch.Arch {
	case models.X86, models.X86_64, models.ARM, models.ARM64:
	default:
		return nil, errors.Errorf("go decoder: no support for %s", arch.Name)
	}
	d := &Decoder{arch: arch}
	if config != nil && config.Syntax == models.SyntaxATT {
		d.att = true
	}
	return d, nil
}

// decode returns the rendered text and length of the instruction at the start of mem.
// PC-relative operands are printed as absolute targets, the way capstone prints them.
func (d *Decoder) decode(mem []byte, pc uint64) (string, int, error) {
	switch d.arch.Arch {
	case models.X86, models.X86_64:
		inst, err := x86asm.Decode(mem, d.arch.Bits)
		if err != nil {
			return "", 0, err
		}
		var text string
		if d.att {
			text = x86asm.GNUSyntax(inst, pc, nil)
		} else {
			text = strings.ToLower(x86asm.IntelSyntax(inst, pc, nil))
		}
		// x86asm treats pc 0 as unknown and prints .+off
		if pc == 0 {
			for _, arg := range inst.Args {
				if rel, ok := arg.(x86asm.Rel); ok {
					target := pc + uint64(inst.Len) + uint64(int64(rel))
					if d.arch.Bits == 32 {
						target &= 0xffffffff
					}
					text = absolute(text, fmt.Sprintf(".%+#x", int64(rel)), fmt.Sprintf("%#x", target))
				}
			}
		}
		return text, inst.Len, nil
	case models.ARM:
		inst, err := armasm.Decode(mem, armasm.ModeARM)
		if err != nil {
			return "", 0, err
		}
		text := armasm.GNUSyntax(inst)
		for _, arg := range inst.Args {
			if rel, ok := arg.(armasm.PCRel); ok {
				// GNUSyntax prints the offset from pc+4; the pipeline reads pc+8
				target := pc + 8 + uint64(int64(int32(rel)))
				text = absolute(text, fmt.Sprintf(".%+#x", int32(rel)+4), fmt.Sprintf("#%#x", uint32(target)))
			}
		}
		return text, inst.Len, nil
	case models.ARM64:
		inst, err := arm64asm.Decode(mem)
		if err != nil {
			return "", 0, err
		}
		text := arm64asm.GNUSyntax(inst)
		for _, arg := range inst.Args {
			if rel, ok := arg.(arm64asm.PCRel); ok {
				base := pc
				if inst.Op == arm64asm.ADRP {
					base &^= 0xfff
				}
				target := base + uint64(int64(rel))
				text = absolute(text, strings.ToLower(rel.String()), fmt.Sprintf("#%#x", target))
			}
		}
		return text, 4, nil
	}
	return "", 0, errors.Errorf("go decoder: no support for %s", d.arch.Name)
}

func absolute(text, rel, target string) string {
	return strings.Replace(text, rel, target, 1)
}

// Dis decodes linearly and stops at the first undecodable offset, returning
// what was decoded so far along with the error.
func (d *Decoder) Dis(mem []byte, addr uint64) ([]models.Ins, error) {
	var ret []models.Ins
	for off := 0; off < len(mem); {
		pc := addr + uint64(off)
		text, size, err := d.decode(mem[off:], pc)
		if err != nil {
			return ret, errors.Wrapf(err, "decode failed at %#x", pc)
		}
		mnemonic, opstr, _ := strings.Cut(strings.TrimSpace(text), " ")
		ret = append(ret, &ins{
			addr:     pc,
			raw:      mem[off : off+size],
			mnemonic: mnemonic,
			opstr:    strings.TrimSpace(opstr),
		})
		off += size
	}
	return ret, nil
}

func (d *Decoder) Close() error { return nil }
