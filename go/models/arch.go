package models

import (
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
)

// Architecture selects an instruction set family. The text form is the tag name.
type Architecture int

const (
	X86 Architecture = iota
	X86_64
	ARM
	ARM64
	MIPS
	PPC
	SPARC
)

var archNames = [...]string{"X86", "X86_64", "ARM", "ARM64", "MIPS", "PPC", "SPARC"}

// command line spellings
var archAliases = map[string]Architecture{
	"x86":     X86,
	"i386":    X86,
	"x86_64":  X86_64,
	"amd64":   X86_64,
	"arm":     ARM,
	"arm64":   ARM64,
	"aarch64": ARM64,
	"mips":    MIPS,
	"ppc":     PPC,
	"sparc":   SPARC,
}

// Architectures returns every tag in declaration order.
func Architectures() []Architecture {
	return []Architecture{X86, X86_64, ARM, ARM64, MIPS, PPC, SPARC}
}

func (a Architecture) Valid() bool {
	return a >= X86 && a <= SPARC
}

func (a Architecture) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Architecture(%d)", int(a))
	}
	return archNames[a]
}

func ParseArchitecture(s string) (Architecture, error) {
	for i, name := range archNames {
		if s == name {
			return Architecture(i), nil
		}
	}
	if a, ok := archAliases[strings.ToLower(s)]; ok {
		return a, nil
	}
	return 0, errors.Errorf("unknown architecture %q", s)
}

func (a Architecture) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, errors.Errorf("invalid architecture %d", int(a))
	}
	return []byte(a.String()), nil
}

func (a *Architecture) UnmarshalText(b []byte) error {
	v, err := ParseArchitecture(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (Architecture) JSONSchema() *jsonschema.Schema {
	enum := make([]interface{}, len(archNames))
	for i, name := range archNames {
		enum[i] = name
	}
	return &jsonschema.Schema{
		Type:        "string",
		Title:       "Architecture",
		Description: "Target instruction set",
		Enum:        enum,
	}
}

type EndianType int

const (
	Little EndianType = iota
	Big
)

func (e EndianType) String() string {
	switch e {
	case Little:
		return "Little"
	case Big:
		return "Big"
	}
	return fmt.Sprintf("EndianType(%d)", int(e))
}

func ParseEndian(s string) (EndianType, error) {
	switch strings.ToLower(s) {
	case "little", "le", "":
		return Little, nil
	case "big", "be":
		return Big, nil
	}
	return 0, errors.Errorf("%s is not a valid byte order ('little' or 'big')", s)
}

func (e EndianType) MarshalText() ([]byte, error) {
	if e != Little && e != Big {
		return nil, errors.Errorf("invalid endian %d", int(e))
	}
	return []byte(e.String()), nil
}

func (e *EndianType) UnmarshalText(b []byte) error {
	v, err := ParseEndian(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

func (EndianType) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Title:       "Endian",
		Description: "Byte order, Little unless the target is big-endian ARM. Big ARM64 disassembles but does not assemble",
		Enum:        []interface{}{"Little", "Big"},
	}
}

// Arch is the backend configuration for one engine call. It is a plain value:
// copying it never shares state with another call.
type Arch struct {
	Arch   Architecture
	Name   string
	Bits   int
	Endian EndianType

	KS_ARCH int
	KS_MODE int
	CS_ARCH int
	CS_MODE int
}

func (a Arch) String() string {
	return fmt.Sprintf("<Arch %s %dbit %s>", a.Name, a.Bits, a.Endian)
}
