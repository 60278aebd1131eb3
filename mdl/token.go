package mdl

import "fmt"

// Kind identifies the lexical class of a token.
type Kind int

const (
	// EOF marks the end of the token stream.
	EOF Kind = iota

	// Ident is a generic identifier made of word characters.
	Ident

	// Int is an integer literal.
	Int

	// KeywordAs is the `as` keyword introducing a model or relation alias.
	KeywordAs

	// KeywordWith is the `with` keyword introducing the option list.
	KeywordWith

	// KeywordPub is the `pub` visibility marker.
	KeywordPub

	// RawMarker is the `r#` prefix marking an identifier that collides
	// with a reserved word.
	RawMarker

	// ArrowOut is the `->` outgoing edge marker.
	ArrowOut

	// ArrowIn is the `<-` incoming edge marker.
	ArrowIn

	LBrace // {
	RBrace // }
	LAngle // <
	RAngle // >
	Comma  // ,
	LParen // (
	RParen // )
)

// String returns the spelling used in diagnostics and expected-token sets.
func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of input"
	case Ident:
		return "identifier"
	case Int:
		return "integer"
	case KeywordAs:
		return `"as"`
	case KeywordWith:
		return `"with"`
	case KeywordPub:
		return `"pub"`
	case RawMarker:
		return `"r#"`
	case ArrowOut:
		return `"->"`
	case ArrowIn:
		return `"<-"`
	case LBrace:
		return `"{"`
	case RBrace:
		return `"}"`
	case LAngle:
		return `"<"`
	case RAngle:
		return `">"`
	case Comma:
		return `","`
	case LParen:
		return `"("`
	case RParen:
		return `")"`
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Pos is a position in the source text. Offset is the byte offset into the
// normalized source; Line and Column are 1-based.
type Pos struct {
	Offset int
	Line   int
	Column int
}

// String renders the position as line:column.
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit. Tokens are immutable once emitted.
type Token struct {
	Kind Kind
	Text string
	Pos  Pos
}

func (t Token) String() string {
	switch t.Kind {
	case Ident, Int:
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	default:
		return t.Kind.String()
	}
}
