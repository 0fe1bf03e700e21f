package ui

import (
	"strings"
	"testing"

	"github.com/lunixbochs/asmcorn/go/models"
)

func TestColorize(t *testing.T) {
	src := "mov eax, 1\nret "
	out, err := Colorize(src, models.X86, models.SyntaxIntel)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("no escapes in %q", out)
	}
	if !strings.Contains(out, "mov") || !strings.Contains(out, "ret") {
		t.Fatalf("text lost: %q", out)
	}
}
