package mdl

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// LexError reports an unrecognized character in the source text.
type LexError struct {
	Pos  Pos
	Rune rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: unrecognized character %q", e.Pos, e.Rune)
}

// Lexer tokenizes model definition source. It produces tokens lazily, one
// Next call at a time, and owns its position cursor exclusively.
//
// Recognition runs in strict precedence order: comments, integer literals,
// the raw-literal marker, the edge markers, keywords, identifiers,
// whitespace and finally single-character punctuation. When a keyword
// spelling and the identifier pattern both match, the keyword wins.
type Lexer struct {
	src  string
	off  int
	line int
	col  int
}

// NewLexer creates a lexer over src. The source is NFC-normalized first so
// identifier equality does not depend on the encoding of the input.
func NewLexer(src string) *Lexer {
	return &Lexer{src: norm.NFC.String(src), line: 1, col: 1}
}

// Next returns the next token, or a *LexError on malformed input. After the
// end of the source it keeps returning an EOF token.
func (l *Lexer) Next() (Token, error) {
	l.skipSpace()

	for l.atComment() {
		if err := l.skipComment(); err != nil {
			return Token{}, err
		}
		l.skipSpace()
	}

	pos := l.pos()
	if l.off >= len(l.src) {
		return Token{Kind: EOF, Pos: pos}, nil
	}

	// Two-character markers before anything that could share a prefix
	// with them: `r#` before identifiers, `->` and `<-` before `<`.
	switch {
	case l.has("r#"):
		l.advance(2)
		return Token{Kind: RawMarker, Text: "r#", Pos: pos}, nil
	case l.has("->"):
		l.advance(2)
		return Token{Kind: ArrowOut, Text: "->", Pos: pos}, nil
	case l.has("<-"):
		l.advance(2)
		return Token{Kind: ArrowIn, Text: "<-", Pos: pos}, nil
	}

	c := l.src[l.off]
	if isWordByte(c) {
		start := l.off
		for l.off < len(l.src) && isWordByte(l.src[l.off]) {
			l.advance(1)
		}
		word := l.src[start:l.off]
		return Token{Kind: classifyWord(word), Text: word, Pos: pos}, nil
	}

	if kind, ok := punctKind(c); ok {
		l.advance(1)
		return Token{Kind: kind, Text: string(c), Pos: pos}, nil
	}

	r, _ := utf8.DecodeRuneInString(l.src[l.off:])
	return Token{}, &LexError{Pos: pos, Rune: r}
}

// Tokens drains the lexer into a slice, excluding the trailing EOF token.
func (l *Lexer) Tokens() ([]Token, error) {
	var out []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == EOF {
			return out, nil
		}
		out = append(out, tok)
	}
}

func (l *Lexer) pos() Pos {
	return Pos{Offset: l.off, Line: l.line, Column: l.col}
}

func (l *Lexer) has(prefix string) bool {
	return len(l.src)-l.off >= len(prefix) && l.src[l.off:l.off+len(prefix)] == prefix
}

// advance moves the cursor by n bytes, which must all be single-byte
// ASCII. Multi-byte runes are only ever consumed by skipSpace and the
// error path.
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.src[l.off] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.off++
	}
}

func (l *Lexer) skipSpace() {
	for l.off < len(l.src) {
		switch l.src[l.off] {
		case ' ', '\t', '\r', '\n':
			l.advance(1)
		default:
			return
		}
	}
}

func (l *Lexer) atComment() bool {
	return l.has("//") || l.has("/*")
}

func (l *Lexer) skipComment() error {
	if l.has("//") {
		for l.off < len(l.src) && l.src[l.off] != '\n' {
			l.skipByteOrRune()
		}
		return nil
	}

	start := l.pos()
	l.advance(2) // consume /*
	for l.off < len(l.src) {
		if l.has("*/") {
			l.advance(2)
			return nil
		}
		l.skipByteOrRune()
	}
	return &LexError{Pos: start, Rune: '*'}
}

// skipByteOrRune advances over one rune inside comment text, where any
// character is allowed.
func (l *Lexer) skipByteOrRune() {
	if l.src[l.off] < utf8.RuneSelf {
		l.advance(1)
		return
	}
	_, size := utf8.DecodeRuneInString(l.src[l.off:])
	l.off += size
	l.col++
}

func isWordByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// classifyWord resolves the keyword/identifier tie in favor of keywords.
// A run made purely of digits is an integer literal; a longer word that
// merely starts with digits stays an identifier.
func classifyWord(word string) Kind {
	if isDigits(word) {
		return Int
	}
	switch word {
	case "as":
		return KeywordAs
	case "with":
		return KeywordWith
	case "pub":
		return KeywordPub
	}
	return Ident
}

func punctKind(c byte) (Kind, bool) {
	switch c {
	case '{':
		return LBrace, true
	case '}':
		return RBrace, true
	case '<':
		return LAngle, true
	case '>':
		return RAngle, true
	case ',':
		return Comma, true
	case '(':
		return LParen, true
	case ')':
		return RParen, true
	}
	return 0, false
}
