package parser

import (
	"fmt"

	"github.com/polylambda/bidipoly/internal/errors"
	"github.com/polylambda/bidipoly/internal/lexer"
)

// ParseError reports an unexpected token, tagged with the PAR001 code so the
// CLI can render it alongside type-checking diagnostics.
type ParseError struct {
	Code    string
	Got     lexer.Token
	Want    lexer.TokenType
	Message string
}

func (e *ParseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s at %d:%d", e.Code, e.Message, e.Got.Line, e.Got.Column)
	}
	return fmt.Sprintf("%s: expected %s, got %s at %d:%d", e.Code, e.Want, e.Got.Type, e.Got.Line, e.Got.Column)
}

func newParseError(got lexer.Token, want lexer.TokenType) error {
	return &ParseError{Code: errors.PAR001, Got: got, Want: want}
}

func newParseErrorMsg(got lexer.Token, msg string) error {
	return &ParseError{Code: errors.PAR001, Got: got, Message: msg}
}
