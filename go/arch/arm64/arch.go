package arm64

import (
	ks "github.com/keystone-engine/keystone/bindings/go/keystone"
	cs "github.com/lunixbochs/capstr"

	"github.com/lunixbochs/asmcorn/go/models"
)

// keystone rejects MODE_ARM for ARCH_ARM64, it only takes the endian flag.
var Arch = models.Arch{
	Arch: models.ARM64,
	Name: "arm64",
	Bits: 64,

	KS_ARCH: int(ks.ARCH_ARM64),
	KS_MODE: int(ks.MODE_LITTLE_ENDIAN),
	CS_ARCH: int(cs.ARCH_ARM64),
	CS_MODE: int(cs.MODE_ARM),
}
