package parser

import (
	"github.com/polylambda/bidipoly/internal/ast"
	"github.com/polylambda/bidipoly/internal/lexer"
)

// ParseTerm parses the whole token stream as a single term and requires EOF
// to follow it; this language has no declarations or statement sequencing.
func ParseTerm(src []byte) (ast.Term, error) {
	p := New(src)
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.cur().Type != lexer.EOF {
		return nil, newParseErrorMsg(p.cur(), "unexpected trailing input")
	}
	return term, nil
}

func pos(t lexer.Token) ast.Pos { return ast.Pos{Line: t.Line, Column: t.Column} }

// parseTerm skips any leading "<'name>" prefixes (parser-only scoping
// sugar, see the package doc comment) and parses an ascription.
func (p *Parser) parseTerm() (ast.Term, error) {
	for p.cur().Type == lexer.LANGLE {
		if _, err := p.skipPrefix(); err != nil {
			return nil, err
		}
	}
	return p.parseAscription()
}

func (p *Parser) skipPrefix() (string, error) {
	if _, err := p.expect(lexer.LANGLE); err != nil {
		return "", err
	}
	name, err := p.expect(lexer.TYVAR)
	if err != nil {
		return "", err
	}
	if _, err := p.expect(lexer.RANGLE); err != nil {
		return "", err
	}
	return name.Literal, nil
}

// parseAscription := application ("::" type)?
func (p *Parser) parseAscription() (ast.Term, error) {
	start := p.cur()
	term, err := p.parseApplication()
	if err != nil {
		return nil, err
	}
	if p.cur().Type == lexer.COLONCOLON {
		p.advance()
		ty, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return ast.Ann{Pos: pos(start), Term: term, Type: ty}, nil
	}
	return term, nil
}

// parseApplication := primary ( "." primary | "[" type "]" )*
func (p *Parser) parseApplication() (ast.Term, error) {
	term, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur().Type {
		case lexer.DOT:
			dot := p.advance()
			arg, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			term = ast.App{Pos: pos(dot), Func: term, Arg: arg}
		case lexer.LBRACKET:
			lb := p.advance()
			ty, err := p.parseType()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RBRACKET); err != nil {
				return nil, err
			}
			term = ast.TypeApp{Pos: pos(lb), Term: term, Type: ty}
		default:
			return term, nil
		}
	}
}

// parsePrimary := "(" term ")" | "()" | "true" | "false" | IDENT | "|" IDENT "|" application
func (p *Parser) parsePrimary() (ast.Term, error) {
	tok := p.cur()
	switch tok.Type {
	case lexer.UNIT:
		p.advance()
		return ast.Unit{Pos: pos(tok)}, nil
	case lexer.TRUE:
		p.advance()
		return ast.Bool{Pos: pos(tok), Value: true}, nil
	case lexer.FALSE:
		p.advance()
		return ast.Bool{Pos: pos(tok), Value: false}, nil
	case lexer.IDENT:
		p.advance()
		return ast.Var{Pos: pos(tok), Name: tok.Literal}, nil
	case lexer.LPAREN:
		p.advance()
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return term, nil
	case lexer.PIPE:
		p.advance()
		param, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.PIPE); err != nil {
			return nil, err
		}
		body, err := p.parseApplication()
		if err != nil {
			return nil, err
		}
		return ast.Lambda{Pos: pos(tok), Param: param.Literal, Body: body}, nil
	default:
		return nil, newParseErrorMsg(tok, "expected a term")
	}
}

// parseType := "'" IDENT "=>" type | arrow
func (p *Parser) parseType() (ast.Ty, error) {
	if p.cur().Type == lexer.TYVAR && p.peekAt(1).Type == lexer.FATARROW {
		name := p.advance()
		p.advance() // =>
		body, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return ast.TyForall{Pos: pos(name), Name: name.Literal, Body: body}, nil
	}
	return p.parseArrow()
}

// parseArrow := atomType ("->" arrow)?  (right-associative)
func (p *Parser) parseArrow() (ast.Ty, error) {
	from, err := p.parseAtomType()
	if err != nil {
		return nil, err
	}
	if p.cur().Type == lexer.ARROW {
		arrow := p.advance()
		to, err := p.parseArrow()
		if err != nil {
			return nil, err
		}
		return ast.TyArrow{Pos: pos(arrow), From: from, To: to}, nil
	}
	return from, nil
}

// parseAtomType := "Bool" | "Unit" | "'" IDENT | "(" type ")"
func (p *Parser) parseAtomType() (ast.Ty, error) {
	tok := p.cur()
	switch tok.Type {
	case lexer.KWBOOL:
		p.advance()
		return ast.TyBool{Pos: pos(tok)}, nil
	case lexer.KWUNIT:
		p.advance()
		return ast.TyUnit{Pos: pos(tok)}, nil
	case lexer.TYVAR:
		p.advance()
		return ast.TyVar{Pos: pos(tok), Name: tok.Literal}, nil
	case lexer.LPAREN:
		p.advance()
		ty, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return ty, nil
	default:
		return nil, newParseErrorMsg(tok, "expected a type")
	}
}
