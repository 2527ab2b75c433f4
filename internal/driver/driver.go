// Package driver wires the lexer, parser, resolver and bidirectional
// checker into the single pipeline spec.md §6 describes: "a reference
// driver reads lines of surface syntax from standard input, parses,
// infers, prints, clears context, repeats." internal/repl and cmd/bidipoly
// both build on InferSource rather than calling the pipeline stages
// directly.
package driver

import (
	"fmt"

	"github.com/polylambda/bidipoly/internal/ast"
	"github.com/polylambda/bidipoly/internal/errors"
	"github.com/polylambda/bidipoly/internal/parser"
	"github.com/polylambda/bidipoly/internal/pp"
	"github.com/polylambda/bidipoly/internal/resolve"
	"github.com/polylambda/bidipoly/internal/types"
)

// Result is one top-level judgment's outcome, kept around so callers (the
// REPL, the CLI) can render both the parsed term and its type.
type Result struct {
	Term string
	Type string
}

// InferSource runs one line of surface syntax through the full pipeline
// against ctx, which is mutated in place the way spec.md §5 describes; on
// any failure ctx must be discarded by the caller (Ctx.Clear, or simply
// dropping it) rather than reused.
func InferSource(ctx *types.Ctx, src string) (*Result, error) {
	term, err := parser.ParseTerm([]byte(src))
	if err != nil {
		if pe, ok := err.(*parser.ParseError); ok {
			pos := ast.Pos{Line: pe.Got.Line, Column: pe.Got.Column}
			return nil, errors.WrapReport(errors.NewParseError(pe.Error(), pos))
		}
		return nil, err
	}

	coreTerm, err := resolve.Term(term)
	if err != nil {
		return nil, err
	}

	ty, err := types.Infer(ctx, coreTerm)
	if err != nil {
		return nil, asReport(err)
	}

	final := types.SubstContext(ty, ctx)
	if types.HasAnyEVar(final) {
		return nil, errors.WrapReport(errors.NewTypeError(
			"ResidualExistential",
			fmt.Sprintf("inferred type %s still contains an unsolved existential", pp.Ty(final)),
		))
	}

	return &Result{Term: term.String(), Type: pp.Ty(final)}, nil
}

func asReport(err error) error {
	if ce, ok := err.(*types.CheckError); ok {
		return errors.WrapReport(errors.NewTypeError(string(ce.Kind), ce.Detail))
	}
	return err
}
