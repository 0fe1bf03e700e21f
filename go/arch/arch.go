// Package arch maps an Architecture selector onto engine configuration.
// It is the only place architecture support is added or removed.
package arch

import (
	"sort"

	ks "github.com/keystone-engine/keystone/bindings/go/keystone"
	cs "github.com/lunixbochs/capstr"
	"github.com/lunixbochs/fvbommel-util/sortorder"
	"github.com/pkg/errors"

	"github.com/lunixbochs/asmcorn/go/arch/arm"
	"github.com/lunixbochs/asmcorn/go/arch/arm64"
	"github.com/lunixbochs/asmcorn/go/arch/x86"
	"github.com/lunixbochs/asmcorn/go/arch/x86_64"
	"github.com/lunixbochs/asmcorn/go/models"
)

// Resolve returns the engine configuration for a. It panics with
// models.Unsupported for MIPS, PPC and SPARC; check Supported first.
func Resolve(a models.Architecture) models.Arch {
	switch a {
	case models.X86:
		return x86.Arch
	case models.X86_64:
		return x86_64.Arch
	case models.ARM:
		return arm.Arch
	case models.ARM64:
		return arm64.Arch
	case models.MIPS, models.PPC, models.SPARC:
		panic(models.Unsupported{Arch: a})
	}
	panic(errors.Errorf("arch.Resolve: invalid architecture %d", int(a)))
}

// Supported reports whether Resolve will return for a.
func Supported(a models.Architecture) bool {
	switch a {
	case models.X86, models.X86_64, models.ARM, models.ARM64:
		return true
	}
	return false
}

// List returns every architecture ordered by name, naturally (x86 before x86_64).
func List() []models.Architecture {
	ret := models.Architectures()
	sort.SliceStable(ret, func(i, j int) bool {
		return sortorder.NaturalLess(ret[i].String(), ret[j].String())
	})
	return ret
}

// WithEndian applies a byte order to a resolved config. Little leaves it untouched.
// Big is accepted for ARM and ARM64, but keystone cannot open big-endian ARM64,
// so that config only disassembles.
func WithEndian(cfg models.Arch, e models.EndianType) (models.Arch, error) {
	switch e {
	case models.Little:
		return cfg, nil
	case models.Big:
		switch cfg.Arch {
		case models.ARM, models.ARM64:
			cfg.Endian = models.Big
			cfg.KS_MODE |= int(ks.MODE_BIG_ENDIAN)
			cfg.CS_MODE |= int(cs.MODE_BIG_ENDIAN)
			return cfg, nil
		}
		return cfg, errors.Errorf("%s has no big-endian mode", cfg.Name)
	}
	return cfg, errors.Errorf("invalid byte order %d", int(e))
}
