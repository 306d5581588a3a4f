package sexp

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// modLexer defines the lexical structure of KiCad footprint files.
// Quoted strings are matched as a single token including the quotes and any
// embedded whitespace, parentheses, or escaped quotes.
var modLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},

	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},

	// String literals with escape sequences, raw text kept verbatim
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},

	// Bare symbols (identifiers, numbers, layer names)
	{Name: "Symbol", Pattern: `[^\s()"]+`},
})

var (
	symbols     = modLexer.Symbols()
	tWhitespace = symbols["Whitespace"]
	tLParen     = symbols["LParen"]
	tRParen     = symbols["RParen"]
)
