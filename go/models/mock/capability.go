package mock

import (
	"sync/atomic"

	"github.com/lunixbochs/asmcorn/go/models"
)

type Ins struct {
	Address uint64
	Raw     []byte
	Mn, Op  string
}

func (i Ins) Addr() uint64     { return i.Address }
func (i Ins) Bytes() []byte    { return i.Raw }
func (i Ins) Mnemonic() string { return i.Mn }
func (i Ins) OpStr() string    { return i.Op }

// Engines hands out fresh mock engines and counts their lifetimes.
type Engines struct {
	AsmOut []byte
	AsmErr error
	DisOut []models.Ins
	DisErr error
	// returned by the builders instead of an engine
	BuildErr error

	Opened, Closed int64
	LastArch       atomic.Value
}

func (e *Engines) open(arch models.Arch) error {
	if e.BuildErr != nil {
		return e.BuildErr
	}
	atomic.AddInt64(&e.Opened, 1)
	e.LastArch.Store(arch)
	return nil
}

func (e *Engines) Live() int64 {
	return atomic.LoadInt64(&e.Opened) - atomic.LoadInt64(&e.Closed)
}

func (e *Engines) NewAsm(arch models.Arch, config *models.Config) (models.Assembler, error) {
	if err := e.open(arch); err != nil {
		return nil, err
	}
	return &asm{e}, nil
}

func (e *Engines) NewDis(arch models.Arch, config *models.Config) (models.Disassembler, error) {
	if err := e.open(arch); err != nil {
		return nil, err
	}
	return &dis{e}, nil
}

type asm struct{ e *Engines }

func (a *asm) Asm(src string, addr uint64) ([]byte, error) {
	if a.e.AsmErr != nil {
		return nil, a.e.AsmErr
	}
	return append([]byte(nil), a.e.AsmOut...), nil
}

func (a *asm) Close() error {
	atomic.AddInt64(&a.e.Closed, 1)
	return nil
}

type dis struct{ e *Engines }

func (d *dis) Dis(mem []byte, addr uint64) ([]models.Ins, error) {
	if d.e.DisErr != nil {
		return nil, d.e.DisErr
	}
	return d.e.DisOut, nil
}

func (d *dis) Close() error {
	atomic.AddInt64(&d.e.Closed, 1)
	return nil
}
