package ui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/lunixbochs/asmcorn/go/models"
)

var DisasmDark = styles.Register(chroma.MustNewStyle("asmcorn-dark", chroma.StyleEntries{
	chroma.Text:          "#FFFFFF",
	chroma.Comment:       "#7F848E",
	chroma.Keyword:       "#FFFFFF",
	chroma.KeywordPseudo: "#FFFFFF",
	chroma.NameFunction:  "#FFFFFF",
	chroma.Name:          "#7C9C9D",
	chroma.NameBuiltin:   "#7C9C9D",
	chroma.NameVariable:  "#7C9C9D",
	chroma.NameLabel:     "#FFD700",
	chroma.LiteralNumber: "#FF5F87",
	chroma.Operator:      "#FFFFFF",
	chroma.Punctuation:   "#FFFFFF",
	chroma.String:        "#EACD53",
}))

func lexerFor(a models.Architecture, syntax string) chroma.Lexer {
	var candidates []string
	switch a {
	case models.ARM, models.ARM64:
		candidates = []string{"armasm", "gas"}
	default:
		if syntax == models.SyntaxATT {
			candidates = []string{"gas"}
		} else {
			candidates = []string{"nasm", "gas"}
		}
	}
	for _, name := range candidates {
		if lexer := lexers.Get(name); lexer != nil {
			return chroma.Coalesce(lexer)
		}
	}
	return nil
}

// Colorize highlights a listing for a 256-color terminal. It returns code
// unchanged when no lexer fits.
func Colorize(code string, a models.Architecture, syntax string) (string, error) {
	lexer := lexerFor(a, syntax)
	if lexer == nil {
		return code, nil
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code, err
	}
	var buf strings.Builder
	if err := formatter.Format(&buf, DisasmDark, iterator); err != nil {
		return code, err
	}
	return buf.String(), nil
}
