package parser

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
	pc "github.com/shibukawa/parsercombinator"
)

// TokenKind classifies lexed input.
type TokenKind int

const (
	EOF TokenKind = iota
	Newline
	Space
	Field
)

func (k TokenKind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Newline:
		return "Newline"
	case Space:
		return "Space"
	case Field:
		return "Field"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// A Field is everything between separators; the grammar decides whether it is
// a coordinate, a heading or a movement line.
var journeyLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Newline", Pattern: `\r?\n`},
	{Name: "Space", Pattern: `[ \t]+`},
	{Name: "Field", Pattern: `[^ \t\r\n]+|\r`},
})

var tokenKinds = func() map[lexer.TokenType]TokenKind {
	symbols := journeyLexer.Symbols()
	return map[lexer.TokenType]TokenKind{
		lexer.EOF:          EOF,
		symbols["Newline"]: Newline,
		symbols["Space"]:   Space,
		symbols["Field"]:   Field,
	}
}()

// Entity is the value carried by every parser token. Productions replace the
// raw input in Value with what they recognized.
type Entity struct {
	Kind  TokenKind
	Token lexer.Token
	Value any
}

// Tokenize splits text into tokens, ending with an EOF token.
func Tokenize(filename, text string) ([]lexer.Token, error) {
	lex, err := journeyLexer.LexString(filename, text)
	if err != nil {
		return nil, err
	}
	return lexer.ConsumeAll(lex)
}

func toParserTokens(tokens []lexer.Token) []pc.Token[Entity] {
	results := make([]pc.Token[Entity], len(tokens))
	for i, token := range tokens {
		kind := tokenKinds[token.Type]
		results[i] = pc.Token[Entity]{
			Type: kind.String(),
			Pos: &pc.Pos{
				Line:  token.Pos.Line,
				Col:   token.Pos.Column,
				Index: token.Pos.Offset,
			},
			Val: Entity{Kind: kind, Token: token},
			Raw: token.Value,
		}
	}
	return results
}
