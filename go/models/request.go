package models

import (
	"encoding/json"
	"strconv"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
)

// Bytes is machine code as a JSON array of numbers, the form the shell passes
// around, instead of the base64 string encoding/json would use for []byte.
type Bytes []byte

func (b Bytes) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("null"), nil
	}
	out := make([]byte, 0, len(b)*4+2)
	out = append(out, '[')
	for i, v := range b {
		if i > 0 {
			out = append(out, ',')
		}
		out = strconv.AppendUint(out, uint64(v), 10)
	}
	return append(out, ']'), nil
}

func (b *Bytes) UnmarshalJSON(data []byte) error {
	var nums []uint16
	if err := json.Unmarshal(data, &nums); err != nil {
		return errors.Wrap(err, "bytes must be an array of numbers")
	}
	if nums == nil {
		*b = nil
		return nil
	}
	out := make(Bytes, len(nums))
	for i, n := range nums {
		if n > 0xff {
			return errors.Errorf("byte %d out of range: %d", i, n)
		}
		out[i] = byte(n)
	}
	*b = out
	return nil
}

func (Bytes) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "array",
		Description: "Machine code, one number (0-255) per byte",
		Items:       &jsonschema.Schema{Type: "integer"},
	}
}

// AssembleRequest mirrors the arguments of the shell's assemble command.
type AssembleRequest struct {
	AsmStr string       `json:"asmStr" jsonschema:"title=Source,description=Assembly text, one or more instructions"`
	Arch   Architecture `json:"arch"`
	Addr   uint64       `json:"addr" jsonschema:"title=Address,description=Load address of the first instruction"`
	Endian EndianType   `json:"endian,omitempty"`
}

type AssembleResponse struct {
	Bytes Bytes  `json:"bytes,omitempty"`
	Error string `json:"error,omitempty"`
}

// DisassembleRequest mirrors the arguments of the shell's disassemble command.
type DisassembleRequest struct {
	Bytes  Bytes        `json:"bytes" jsonschema:"title=Bytes,description=Machine code to decode"`
	Arch   Architecture `json:"arch"`
	Addr   uint64       `json:"addr" jsonschema:"title=Address,description=Load address of the first byte"`
	Endian EndianType   `json:"endian,omitempty"`
}

type DisassembleResponse struct {
	Lines []string `json:"lines,omitempty"`
	Error string   `json:"error,omitempty"`
}
