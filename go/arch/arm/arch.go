package arm

import (
	ks "github.com/keystone-engine/keystone/bindings/go/keystone"
	cs "github.com/lunixbochs/capstr"

	"github.com/lunixbochs/asmcorn/go/models"
)

var Arch = models.Arch{
	Arch: models.ARM,
	Name: "arm",
	Bits: 32,

	KS_ARCH: int(ks.ARCH_ARM),
	KS_MODE: int(ks.MODE_ARM),
	CS_ARCH: int(cs.ARCH_ARM),
	CS_MODE: int(cs.MODE_ARM),
}
