package ast

import "github.com/xc-lang/xc/pkg/token"

// PrefixUnary is `('++'|'--'|'!'|'~'|'-'|'&') Expression`.
type PrefixUnary struct {
	exprType
	Operator token.Token
	Operand  Expression
}

func (e *PrefixUnary) Pos() token.Position { return e.Operator.Position }
func (e *PrefixUnary) expressionNode()     {}

// PostfixUnary is `Expression ('++'|'--')`.
type PostfixUnary struct {
	exprType
	Operand  Expression
	Operator token.Token
}

func (e *PostfixUnary) Pos() token.Position { return e.Operand.Pos() }
func (e *PostfixUnary) expressionNode()     {}

// Binary is `Expression Operator Expression`, covering every binary
// operator class in spec.md §4.2/§4.3 (arithmetic, bitwise, boolean,
// relational, equality, assignment, compound assignment).
type Binary struct {
	exprType
	Left     Expression
	Operator token.Token
	Right    Expression
}

func (e *Binary) Pos() token.Position { return e.Left.Pos() }
func (e *Binary) expressionNode()     {}

// LiteralExpression is `'true' | 'false' | 'null'`.
type LiteralExpression struct {
	exprType
	Token token.Token
}

func (e *LiteralExpression) Pos() token.Position { return e.Token.Position }
func (e *LiteralExpression) expressionNode()     {}

// NumberConstant is an integer or float literal.
type NumberConstant struct {
	exprType
	Token token.Token
}

func (e *NumberConstant) Pos() token.Position { return e.Token.Position }
func (e *NumberConstant) expressionNode()     {}

// IdentifierConstant is a bare identifier reference, resolved against the
// SymbolStack during analysis.
type IdentifierConstant struct {
	exprType
	Token token.Token
}

func (e *IdentifierConstant) Pos() token.Position { return e.Token.Position }
func (e *IdentifierConstant) expressionNode()     {}

// MemberAccess is `Expression '.' IDENT`.
type MemberAccess struct {
	exprType
	Owner  Expression
	Member token.Token
}

func (e *MemberAccess) Pos() token.Position { return e.Owner.Pos() }
func (e *MemberAccess) expressionNode()     {}

// FunctionCall is `Expression '(' ExpressionList? ')'`. Callee is either an
// *IdentifierConstant (plain call) or a *MemberAccess (method call).
type FunctionCall struct {
	exprType
	Callee Expression
	Args   []Expression
}

func (e *FunctionCall) Pos() token.Position { return e.Callee.Pos() }
func (e *FunctionCall) expressionNode()     {}

// ArrayAccess is `Expression '[' Expression ']'`. Parsed for grammar
// completeness; spec.md's Non-goals exclude array-access semantics in the
// backend, so the analyzer and emitter do not need to give this a typing
// or translation rule beyond rejecting it if reached (see
// pkg/analyzer/expressions.go).
type ArrayAccess struct {
	exprType
	Array Expression
	Index Expression
}

func (e *ArrayAccess) Pos() token.Position { return e.Array.Pos() }
func (e *ArrayAccess) expressionNode()     {}

// CastExpression is reserved grammar (spec.md §3.2) with no surface syntax
// reachable from the grammar in §4.2; kept as a variant so the sum type
// matches spec.md's enumeration, never constructed by the parser.
type CastExpression struct {
	exprType
	TargetType *DataType
	Target     Expression
}

func (e *CastExpression) Pos() token.Position { return e.TargetType.Pos() }
func (e *CastExpression) expressionNode()     {}

var (
	_ Expression = (*PrefixUnary)(nil)
	_ Expression = (*PostfixUnary)(nil)
	_ Expression = (*Binary)(nil)
	_ Expression = (*LiteralExpression)(nil)
	_ Expression = (*NumberConstant)(nil)
	_ Expression = (*IdentifierConstant)(nil)
	_ Expression = (*MemberAccess)(nil)
	_ Expression = (*FunctionCall)(nil)
	_ Expression = (*ArrayAccess)(nil)
	_ Expression = (*CastExpression)(nil)
)
