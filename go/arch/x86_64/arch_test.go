package x86_64

import (
	"testing"

	"github.com/lunixbochs/asmcorn/go/cpu"
)

var testAsm = `
mov rax, 100
l1:
sub rax, 1
jnz l1
ret
`

func TestX86_64(t *testing.T) { cpu.SmokeTest(t, Arch, testAsm, 4) }
