package emitter

import (
	"fmt"
	"strings"

	"github.com/xc-lang/xc/pkg/ast"
	"github.com/xc-lang/xc/pkg/token"
)

// emitExpr translates expr to C, mirroring the analyzer's typing rules 1:1
// (spec.md §4.5). Composite expressions are fully parenthesised; atomic
// ones (literals, numbers, plain identifiers) are not.
func emitExpr(e ast.Expression) string {
	switch ex := e.(type) {
	case *ast.NumberConstant:
		return emitNumber(ex)
	case *ast.LiteralExpression:
		return emitLiteral(ex)
	case *ast.IdentifierConstant:
		return emitIdentifier(ex)
	case *ast.MemberAccess:
		return emitMemberAccess(ex)
	case *ast.PrefixUnary:
		return fmt.Sprintf("(%s%s)", cOperator(ex.Operator.Kind), emitExpr(ex.Operand))
	case *ast.PostfixUnary:
		return fmt.Sprintf("(%s%s)", emitExpr(ex.Operand), cOperator(ex.Operator.Kind))
	case *ast.Binary:
		return fmt.Sprintf("(%s %s %s)", emitExpr(ex.Left), cOperator(ex.Operator.Kind), emitExpr(ex.Right))
	case *ast.FunctionCall:
		return emitCall(ex)
	case *ast.ArrayAccess:
		// Unreachable in a program that passed analysis: array-access
		// semantics are a Non-goal, so the analyzer never types this node,
		// which means no function containing it compiles cleanly.
		return fmt.Sprintf("%s[%s]", emitExpr(ex.Array), emitExpr(ex.Index))
	default:
		return ""
	}
}

// cOperator returns the C spelling of a lexical operator. Every operator
// kind shares its lexeme with C verbatim except boolean xor, which
// collapses to bitwise `^` (spec.md §4.5: "boolean `^^` collapses to `^`").
func cOperator(k token.Kind) string {
	if k == token.BOOLEAN_XOR {
		return "^"
	}
	return token.Lexeme(k)
}

// emitNumber translates a NumberConstant: integer literals pass through
// except a leading `0o` is rewritten to `00` (valid C octal); float
// literals get a trailing `f` (spec.md §4.5, scenario 6).
func emitNumber(e *ast.NumberConstant) string {
	lex := e.Token.Lexeme
	if e.Token.Kind == token.FLOAT_LITERAL {
		return lex + "f"
	}
	if len(lex) >= 2 && lex[0] == '0' && (lex[1] == 'o' || lex[1] == 'O') {
		return "00" + lex[2:]
	}
	return lex
}

func emitLiteral(e *ast.LiteralExpression) string {
	switch e.Token.Kind {
	case token.TRUE:
		return "true"
	case token.FALSE:
		return "false"
	case token.NULL:
		return "NULL"
	default:
		return ""
	}
}

// emitIdentifier auto-dereferences a reference-typed binding (spec.md
// §4.5: "if the identifier's evaluated_type is a reference, emit (*name)").
func emitIdentifier(e *ast.IdentifierConstant) string {
	if t := e.Type(); t != nil && t.IsReference {
		return "(*" + e.Token.Lexeme + ")"
	}
	return e.Token.Lexeme
}

// emitOwnerExpr translates an expression used as a method call's receiver,
// where the usual identifier auto-deref must NOT apply: the raw pointer (if
// already a reference) or the raw value (to be address-of'd by the caller)
// is needed, not the dereferenced value.
func emitOwnerExpr(e ast.Expression) string {
	if id, ok := e.(*ast.IdentifierConstant); ok {
		return id.Token.Lexeme
	}
	return emitExpr(e)
}

// emitMemberAccess translates `owner.member` with a dot, never an arrow —
// resolving spec.md §9's open question in favor of the dot rule. The owner
// is dereferenced first whenever its evaluated_type is a reference (spec.md
// §4.5, scenario 2: `(*self).x`), whether the owner is a bare identifier —
// already handled by emitIdentifier's own auto-deref — or a composite
// expression such as another MemberAccess, e.g. `n.next.val` where `next`
// is itself reference-typed: the inner access's result still needs
// dereferencing before `.val` can apply. Unlike every other composite
// expression, the final result is not additionally wrapped in parens,
// matching the worked example's output.
func emitMemberAccess(e *ast.MemberAccess) string {
	return emitOwnerText(e.Owner) + "." + e.Member.Lexeme
}

func emitOwnerText(owner ast.Expression) string {
	if id, ok := owner.(*ast.IdentifierConstant); ok {
		return emitIdentifier(id)
	}
	text := emitExpr(owner)
	if t := owner.Type(); t != nil && t.IsReference {
		return "(*" + text + ")"
	}
	return text
}

func emitCall(call *ast.FunctionCall) string {
	switch callee := call.Callee.(type) {
	case *ast.IdentifierConstant:
		return emitPlainCall(callee, call)
	case *ast.MemberAccess:
		return emitMethodCall(callee, call)
	default:
		return ""
	}
}

func emitPlainCall(callee *ast.IdentifierConstant, call *ast.FunctionCall) string {
	return fmt.Sprintf("%s(%s)", callee.Token.Lexeme, emitArgs(call.Args))
}

// emitMethodCall translates `owner.m(args)` to `Type_m(&owner, args)` when
// owner's type is not a reference, else `Type_m(owner, args)` (spec.md
// §4.5).
func emitMethodCall(callee *ast.MemberAccess, call *ast.FunctionCall) string {
	ownerType := callee.Owner.Type()

	self := emitOwnerExpr(callee.Owner)
	if !ownerType.IsReference {
		self = "&" + self
	}

	args := append([]string{self}, emitArgList(call.Args)...)
	return fmt.Sprintf("%s_%s(%s)", ownerType.Name(), callee.Member.Lexeme, strings.Join(args, ", "))
}

func emitArgs(args []ast.Expression) string {
	return strings.Join(emitArgList(args), ", ")
}

func emitArgList(args []ast.Expression) []string {
	texts := make([]string, len(args))
	for i, arg := range args {
		texts[i] = emitExpr(arg)
	}
	return texts
}
