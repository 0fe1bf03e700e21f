package cpu

import (
	cs "github.com/lunixbochs/capstr"
	"github.com/pkg/errors"

	"github.com/lunixbochs/asmcorn/go/models"
)

type Capstr struct {
	Arch, Mode int

	cs *cs.Engine
}

// NewCapstr opens an engine for one call. The caller owns it and must Close it.
func NewCapstr(arch models.Arch, config *models.Config) (models.Disassembler, error) {
	c := &Capstr{Arch: arch.CS_ARCH, Mode: arch.CS_MODE}
	if err := c.Open(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Capstr) Open() (err error) {
	c.cs, err = cs.New(c.Arch, c.Mode)
	return errors.Wrap(err, "cs.New() failed")
}

func (c *Capstr) Dis(mem []byte, addr uint64) ([]models.Ins, error) {
	if c.cs == nil {
		return nil, errors.New("capstone engine is closed")
	}
	dis, err := c.cs.Dis(mem, addr, 0)
	// capstone reports CS_ERR_OK when the first instruction is invalid
	if e, ok := err.(cs.CsError); ok && e == 0 {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "capstone disassembly failed")
	}
	ret := make([]models.Ins, len(dis))
	for i, v := range dis {
		ret[i] = v
	}
	return ret, nil
}

func (c *Capstr) Close() error {
	if c.cs != nil {
		c.cs.Close()
		c.cs = nil
	}
	return nil
}
