package x86_64

import (
	ks "github.com/keystone-engine/keystone/bindings/go/keystone"
	cs "github.com/lunixbochs/capstr"

	"github.com/lunixbochs/asmcorn/go/models"
)

// Same family as x86, only the mode differs.
var Arch = models.Arch{
	Arch: models.X86_64,
	Name: "x86_64",
	Bits: 64,

	KS_ARCH: int(ks.ARCH_X86),
	KS_MODE: int(ks.MODE_64),
	CS_ARCH: int(cs.ARCH_X86),
	CS_MODE: int(cs.MODE_64),
}
