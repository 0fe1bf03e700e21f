package asmcorn

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/lunixbochs/asmcorn/go/models"
)

// Disassemble decodes mem as if its first byte sits at addr, one line per
// instruction formatted as "mnemonic operands". Any byte that does not decode
// fails the whole call.
func (s *Service) Disassemble(mem []byte, a models.Architecture, addr uint64) ([]string, error) {
	return s.DisassembleReq(models.DisassembleRequest{Bytes: mem, Arch: a, Addr: addr})
}

func (s *Service) DisassembleReq(req models.DisassembleRequest) ([]string, error) {
	dis, err := s.decode(req)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(dis))
	for i, ins := range dis {
		out[i] = ins.Mnemonic() + " " + ins.OpStr()
	}
	return out, nil
}

// Listing renders like an objdump: address, padded hex bytes, then the instruction.
func (s *Service) Listing(req models.DisassembleRequest) (string, error) {
	dis, err := s.decode(req)
	if err != nil || len(dis) == 0 {
		return "", err
	}
	var width int
	for _, ins := range dis {
		if len(ins.Bytes()) > width {
			width = len(ins.Bytes())
		}
	}
	out := make([]string, len(dis))
	for i, ins := range dis {
		pad := strings.Repeat(" ", (width-len(ins.Bytes()))*2)
		data := pad + hex.EncodeToString(ins.Bytes())
		out[i] = fmt.Sprintf("0x%x: %s %s %s", ins.Addr(), data, ins.Mnemonic(), ins.OpStr())
	}
	return strings.Join(out, "\n"), nil
}

func (s *Service) decode(req models.DisassembleRequest) ([]models.Ins, error) {
	cfg, err := s.resolve(req.Arch, req.Endian)
	if err != nil {
		return nil, err
	}
	if len(req.Bytes) == 0 {
		return nil, nil
	}
	engine, err := s.NewDis(cfg, s.Config)
	if err != nil {
		return nil, s.fail(models.KindConstruct, req.Arch, errors.Wrap(err, "failed to create disassembler"))
	}
	defer engine.Close()

	dis, err := engine.Dis(req.Bytes, req.Addr)
	if err != nil {
		return nil, s.fail(models.KindOperation, req.Arch, errors.Wrap(err, "disassembly error"))
	}
	// engines stop quietly at the first bad byte, so check coverage ourselves
	next := req.Addr
	for _, ins := range dis {
		if ins.Addr() != next || len(ins.Bytes()) == 0 {
			break
		}
		next += uint64(len(ins.Bytes()))
	}
	if consumed := next - req.Addr; consumed != uint64(len(req.Bytes)) {
		err := errors.Errorf("invalid instruction at %#x", next)
		return nil, s.fail(models.KindOperation, req.Arch, errors.Wrap(err, "disassembly error"))
	}
	s.Log.Debug("disassembled", "arch", cfg.Name, "addr", hexAddr(req.Addr), "count", len(dis))
	return dis, nil
}
