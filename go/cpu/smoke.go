package cpu

import (
	"testing"

	"github.com/lunixbochs/asmcorn/go/models"
)

// SmokeTest assembles asm with keystone, decodes it back with capstone and
// checks that count instructions covering every byte come out.
func SmokeTest(t testing.TB, arch models.Arch, asm string, count int) {
	const addr = 0x1000
	a, err := NewKeystone(arch, models.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	code, err := a.Asm(asm, addr)
	if err != nil {
		t.Fatal(err)
	}
	if len(code) == 0 {
		t.Fatalf("%s: no code emitted", arch.Name)
	}
	d, err := NewCapstr(arch, models.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()
	dis, err := d.Dis(code, addr)
	if err != nil {
		t.Fatal(err)
	}
	if len(dis) != count {
		t.Fatalf("%s: expected %d instructions, got %d", arch.Name, count, len(dis))
	}
	size := 0
	for _, ins := range dis {
		size += len(ins.Bytes())
	}
	if size != len(code) {
		t.Fatalf("%s: decoded %d of %d bytes", arch.Name, size, len(code))
	}
	if dis[0].Addr() != addr {
		t.Fatalf("%s: first instruction at %#x", arch.Name, dis[0].Addr())
	}
}
