package arm64

import (
	"testing"

	"github.com/lunixbochs/asmcorn/go/cpu"
)

var testAsm = `
mov x1, 100
l1:
subs x1, x1, 1
b.ge l1
ret
`

func TestArm64(t *testing.T) { cpu.SmokeTest(t, Arch, testAsm, 4) }
