package asmcorn

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/lunixbochs/asmcorn/go/models"
)

// Assemble encodes asm as if its first instruction sits at addr.
func (s *Service) Assemble(asm string, a models.Architecture, addr uint64) ([]byte, error) {
	return s.AssembleReq(models.AssembleRequest{AsmStr: asm, Arch: a, Addr: addr})
}

func (s *Service) AssembleReq(req models.AssembleRequest) ([]byte, error) {
	cfg, err := s.resolve(req.Arch, req.Endian)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.AsmStr) == "" {
		return []byte{}, nil
	}
	engine, err := s.NewAsm(cfg, s.Config)
	if err != nil {
		return nil, s.fail(models.KindConstruct, req.Arch, errors.Wrap(err, "failed to create keystone instance"))
	}
	defer engine.Close()

	out, err := engine.Asm(req.AsmStr, req.Addr)
	if err != nil {
		return nil, s.fail(models.KindOperation, req.Arch, errors.Wrap(err, "assembly error"))
	}
	if out == nil {
		out = []byte{}
	}
	s.Log.Debug("assembled", "arch", cfg.Name, "addr", hexAddr(req.Addr), "size", len(out))
	return out, nil
}
