package mdl

import (
	"fmt"
	"strings"
)

// ParseError reports an unexpected token together with the set of tokens
// that would have been accepted at that point.
type ParseError struct {
	Pos      Pos
	Got      Token
	Expected []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: unexpected %s, expected %s",
		e.Pos, e.Got, strings.Join(e.Expected, " or "))
}

// Parser consumes a token stream and produces a single Model. The grammar
// alternatives that share a prefix (relations, foreign nodes and plain
// properties all start with `pub? name`) are disambiguated with one token
// of lookahead, tried in the order incoming relation, outgoing relation,
// foreign node, property.
type Parser struct {
	lex *Lexer
	tok Token
}

// NewParser wraps a lexer. Lexer errors surface through Parse.
func NewParser(lex *Lexer) *Parser {
	return &Parser{lex: lex}
}

// Parse parses a complete model definition from src.
func Parse(src string) (*Model, error) {
	return NewParser(NewLexer(src)).Parse()
}

// Parse consumes the whole token stream and returns the model. Trailing
// input after the closing brace is an error.
func (p *Parser) Parse() (*Model, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	model := &Model{}

	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	model.Name = name

	if p.tok.Kind == KeywordAs {
		if err := p.advance(); err != nil {
			return nil, err
		}
		alias, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		model.Alias = &alias
	}

	if p.tok.Kind == KeywordWith {
		opts, err := p.parseOptions()
		if err != nil {
			return nil, err
		}
		model.Options = opts
	}

	if _, err := p.expect(LBrace); err != nil {
		return nil, err
	}
	fields, err := parseList(p, RBrace, (*Parser).parseField)
	if err != nil {
		return nil, err
	}
	model.Fields = fields
	if _, err := p.expect(RBrace); err != nil {
		return nil, err
	}

	if p.tok.Kind != EOF {
		return nil, p.unexpected(EOF.String())
	}
	return model, nil
}

// parseOptions parses `with "(" TrailingCommaList<Identifier> ")"`. Zero
// flags is valid and yields an empty option set. Flag names are not
// validated here; unknown flags are stored verbatim.
func (p *Parser) parseOptions() ([]Option, error) {
	if err := p.advance(); err != nil { // consume `with`
		return nil, err
	}
	if _, err := p.expect(LParen); err != nil {
		return nil, err
	}
	opts, err := parseList(p, RParen, func(p *Parser) (Option, error) {
		ident, err := p.parseIdentifier()
		if err != nil {
			return "", err
		}
		return Option(ident.Value), nil
	})
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RParen); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = []Option{}
	}
	return opts, nil
}

func (p *Parser) parseField() (Field, error) {
	pub := false
	if p.tok.Kind == KeywordPub {
		pub = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	switch p.tok.Kind {
	case ArrowIn:
		return p.parseRelation(Incoming, ArrowIn, pub)
	case ArrowOut:
		return p.parseRelation(Outgoing, ArrowOut, pub)
	case RawMarker, Ident:
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		if p.tok.Kind == LAngle {
			if err := p.advance(); err != nil {
				return nil, err
			}
			foreign, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(RAngle); err != nil {
				return nil, err
			}
			return ForeignNode{Name: name, Foreign: foreign, Pub: pub}, nil
		}
		return Property{Name: name, Pub: pub}, nil
	}
	return nil, p.unexpected(Ident.String(), RawMarker.String(), ArrowOut.String(), ArrowIn.String())
}

// parseRelation parses `{arrow} name {arrow} Foreign as alias` where arrow
// is the edge marker matching the relation's direction.
func (p *Parser) parseRelation(dir Direction, arrow Kind, pub bool) (Field, error) {
	if err := p.advance(); err != nil { // consume leading arrow
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(arrow); err != nil {
		return nil, err
	}
	foreign, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(KeywordAs); err != nil {
		return nil, err
	}
	alias, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	return Relation{Name: name, Foreign: foreign, Alias: alias, Dir: dir, Pub: pub}, nil
}

// parseIdentifier parses `RawLiteralMarker? IdentifierToken`.
func (p *Parser) parseIdentifier() (Identifier, error) {
	raw := false
	if p.tok.Kind == RawMarker {
		raw = true
		if err := p.advance(); err != nil {
			return Identifier{}, err
		}
	}
	tok, err := p.expect(Ident)
	if err != nil {
		return Identifier{}, err
	}
	return Identifier{Value: tok.Text, Raw: raw}, nil
}

// parseList is the reusable trailing-comma list combinator: it accepts
// zero, one or many elements with an optional comma after the last one,
// stopping (without consuming) at the stop token.
func parseList[T any](p *Parser, stop Kind, parse func(*Parser) (T, error)) ([]T, error) {
	var out []T
	for {
		if p.tok.Kind == stop {
			return out, nil
		}
		item, err := parse(p)
		if err != nil {
			return nil, err
		}
		out = append(out, item)

		switch p.tok.Kind {
		case Comma:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case stop:
			return out, nil
		default:
			return nil, p.unexpected(Comma.String(), stop.String())
		}
	}
}

func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// expect consumes and returns the current token if it has the wanted kind,
// or fails with a ParseError naming it.
func (p *Parser) expect(kind Kind) (Token, error) {
	if p.tok.Kind != kind {
		return Token{}, p.unexpected(kind.String())
	}
	tok := p.tok
	if err := p.advance(); err != nil {
		return Token{}, err
	}
	return tok, nil
}

func (p *Parser) unexpected(expected ...string) error {
	return &ParseError{Pos: p.tok.Pos, Got: p.tok, Expected: expected}
}
