package ui

import (
	"encoding/hex"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// ParseHex accepts "90 c3", "90c3", "0x90, 0xc3" and "\x90\xc3".
func ParseHex(s string) ([]byte, error) {
	s = strings.NewReplacer("0x", "", "0X", "", "\\x", "", ",", " ").Replace(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	mem, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse hex")
	}
	return mem, nil
}
