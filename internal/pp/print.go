// Package pp renders core types and terms for end-user output: the REPL's
// "inferred type" line and the CLI's "check" subcommand, in the same
// minimal-parenthesization style as the Rust reference's pp/ast_core.rs
// pretty printer, but walking a Go string builder instead of the `pretty`
// crate's doc-allocator combinators (no equivalent library appears anywhere
// in the example pack, so ambient recursive string building is used
// instead; see DESIGN.md).
package pp

import (
	"fmt"
	"strings"

	"github.com/polylambda/bidipoly/internal/core"
)

// Ty renders a type using ∀ for quantifiers, bare De Bruijn indices for
// bound variables and ?N for existentials, parenthesizing only where the grammar is
// ambiguous (an Arrow or Forall nested to the left of another Arrow).
func Ty(t core.Ty) string {
	var b strings.Builder
	writeTy(&b, t)
	return b.String()
}

func writeTy(b *strings.Builder, t core.Ty) {
	switch ty := t.(type) {
	case core.TUnit:
		b.WriteString("Unit")
	case core.TBool:
		b.WriteString("Bool")
	case core.TUVar:
		fmt.Fprintf(b, "%d", ty.Index)
	case core.TEVar:
		fmt.Fprintf(b, "?%d", ty.Id)
	case core.TArrow:
		writeAtom(b, ty.From)
		b.WriteString(" -> ")
		writeTy(b, ty.To)
	case core.TForall:
		b.WriteString("∀. ")
		writeTy(b, ty.Body)
	default:
		fmt.Fprintf(b, "<?%T>", t)
	}
}

func writeAtom(b *strings.Builder, t core.Ty) {
	switch t.(type) {
	case core.TArrow, core.TForall:
		b.WriteString("(")
		writeTy(b, t)
		b.WriteString(")")
	default:
		writeTy(b, t)
	}
}

// Term renders a core term with core.PrintTerm's De Bruijn notation (#i for
// variables, `\. body` for lambdas, `(f x)` for application), not the named
// surface notation of internal/ast.Term's String methods.
func Term(t core.Term) string {
	return core.PrintTerm(t)
}
