// Package parser builds internal/ast trees from the token stream produced by
// internal/lexer. The grammar is small and recursive-descent, matching the
// concrete syntax demonstrated by the Rust reference's seed inputs:
//
//	term    := prefix* ascription
//	ascription := application ("::" type)?
//	application := primary ( "." primary | "[" type "]" )*
//	primary := "(" term ")" | "()" | "true" | "false" | IDENT | "|" IDENT "|" application
//	prefix  := "<" "'" IDENT ">"
//
//	type    := "'" IDENT "=>" type | arrow
//	arrow   := atomType ("->" arrow)?
//	atomType := "Bool" | "Unit" | "'" IDENT | "(" type ")"
//
// A leading "<'x>" prefix binds no AST node of its own: the bound name is
// only ever referenced through a matching "'x => ..." Forall written
// somewhere inside the following term, and that Forall node is what
// internal/resolve uses to assign the De Bruijn index. Prefixes exist purely
// so the seed surface syntax round-trips; dropping them changes nothing
// semantically (see DESIGN.md).
package parser

import "github.com/polylambda/bidipoly/internal/lexer"

// Parser consumes a fixed token stream (the whole input is lexed up front,
// since this language has no statements or declarations to stream).
type Parser struct {
	toks []lexer.Token
	pos  int
}

// New lexes src in full and returns a Parser positioned at the first token.
func New(src []byte) *Parser {
	l := lexer.New(src)
	var toks []lexer.Token
	for {
		t := l.Next()
		toks = append(toks, t)
		if t.Type == lexer.EOF {
			break
		}
	}
	return &Parser{toks: toks}
}

func (p *Parser) cur() lexer.Token  { return p.toks[p.pos] }
func (p *Parser) peekAt(n int) lexer.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	if p.cur().Type != tt {
		return lexer.Token{}, newParseError(p.cur(), tt)
	}
	return p.advance(), nil
}
