package arm

import (
	"testing"

	"github.com/lunixbochs/asmcorn/go/cpu"
)

var testAsm = `
mov r1, #100
l1:
subs r1, r1, #1
bge l1
bx lr
`

func TestArm(t *testing.T) { cpu.SmokeTest(t, Arch, testAsm, 4) }
