// Package asmcorn turns assembly text into machine code and machine code back
// into text for a chosen architecture and load address.
package asmcorn

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/lunixbochs/asmcorn/go/arch"
	"github.com/lunixbochs/asmcorn/go/cpu"
	"github.com/lunixbochs/asmcorn/go/cpu/goarch"
	"github.com/lunixbochs/asmcorn/go/models"
)

// Service holds no per-call state. Every call opens its own engine and closes
// it before returning, so one Service can be shared between goroutines.
type Service struct {
	Config *models.Config
	Log    *log.Logger

	NewAsm models.AsmBuilder
	NewDis models.DisBuilder
}

func New(config *models.Config, logger *log.Logger) (*Service, error) {
	if config == nil {
		config = models.DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Service{
		Config: config,
		Log:    logger,
		NewAsm: cpu.NewKeystone,
		NewDis: cpu.NewCapstr,
	}
	if config.Decoder == models.DecoderGo {
		s.NewDis = goarch.New
	}
	return s, nil
}

// resolve panics for architectures without a mapping, see arch.Resolve.
func (s *Service) resolve(a models.Architecture, e models.EndianType) (models.Arch, error) {
	cfg, err := arch.WithEndian(arch.Resolve(a), e)
	if err != nil {
		return cfg, s.fail(models.KindConstruct, a, errors.Wrap(err, "unsupported mode"))
	}
	return cfg, nil
}

func (s *Service) fail(kind models.ErrorKind, a models.Architecture, err error) error {
	s.Log.Debug("request failed", "arch", a, "kind", kind, "err", err)
	return &models.Error{Kind: kind, Arch: a, Err: err}
}

func hexAddr(addr uint64) string {
	return fmt.Sprintf("%#x", addr)
}
