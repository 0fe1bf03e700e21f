package x86

import (
	ks "github.com/keystone-engine/keystone/bindings/go/keystone"
	cs "github.com/lunixbochs/capstr"

	"github.com/lunixbochs/asmcorn/go/models"
)

var Arch = models.Arch{
	Arch: models.X86,
	Name: "x86",
	Bits: 32,

	KS_ARCH: int(ks.ARCH_X86),
	KS_MODE: int(ks.MODE_32),
	CS_ARCH: int(cs.ARCH_X86),
	CS_MODE: int(cs.MODE_32),
}
