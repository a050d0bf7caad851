// Package ast defines X's abstract syntax tree: a tagged sum type per
// syntactic category (declaration / statement / expression), each variant
// satisfying a small marker interface. This collapses the class-hierarchy
// + runtime-kind-tag + downcast idiom spec.md's Design Notes (§9) describe
// in the reference implementation into the pattern the teacher itself uses
// for its own AST (rhino1998-aeon/pkg/parser/ast.go: unexported marker
// methods like `declaration()`, `typ()` implementing a closed interface).
package ast

import "github.com/xc-lang/xc/pkg/token"

// Node is satisfied by every AST variant, including ErrorNode, which can
// stand in for any Declaration, Statement, or Expression position.
type Node interface {
	Pos() token.Position
}

// Declaration is a top-level named entity: a Function or a Structure.
type Declaration interface {
	Node
	declarationNode()
}

// Statement is anything that can appear in a BlockStatement's body.
type Statement interface {
	Node
	statementNode()
}

// Expression is anything that evaluates to a value and carries a mutable
// evaluated_type slot, set once by the analyzer and read by the emitter.
type Expression interface {
	Node
	expressionNode()
	Type() *DataType
	SetType(*DataType)
}

// exprType is embedded by every concrete Expression to provide the shared
// evaluated_type slot without repeating the getter/setter on each variant.
type exprType struct {
	typ *DataType
}

func (e *exprType) Type() *DataType     { return e.typ }
func (e *exprType) SetType(t *DataType) { e.typ = t }

// Program is the AST root: an ordered list of top-level declarations
// (spec.md §3.2). A valid Program contains zero ErrorNodes anywhere in its
// subtree (spec.md §3.4).
type Program struct {
	Declarations []Declaration
}

func (p *Program) Pos() token.Position {
	if len(p.Declarations) == 0 {
		return token.Position{}
	}
	return p.Declarations[0].Pos()
}

// DataType is the triple (is_reference, type_name, dimensions) from
// spec.md §3.2. type_name may be a primitive keyword, an IDENTIFIER (struct
// name), or the synthetic LITERAL_REFERENCE_NULL sentinel minted by the
// analyzer for the type of the null literal.
type DataType struct {
	IsReference bool
	TypeName    token.Token
	Dimensions  uint32
}

func (d *DataType) Pos() token.Position {
	return d.TypeName.Position
}

// IsVoid reports whether d denotes the absence of a value: the bare `void`
// primitive keyword with no reference and no array dimensions. A null
// *DataType (nil) also denotes void at the points in the grammar spec.md
// allows the return type to be omitted entirely (never, in this grammar —
// DataType is mandatory at every position that uses it — but analyzer code
// that manufactures synthetic types treats a nil pointer as void too, per
// spec.md §4.5, "A null DataType denotes void").
func (d *DataType) IsVoid() bool {
	return d == nil || (d.TypeName.Kind == token.VOID && !d.IsReference && d.Dimensions == 0)
}

// IsNullLiteral reports whether d is the synthetic type of the `null`
// literal.
func (d *DataType) IsNullLiteral() bool {
	return d != nil && d.TypeName.Kind == token.LITERAL_REFERENCE_NULL
}

// IsPrimitive reports whether d's type name is one of the eight primitive
// keywords (and not an array/reference, which callers check separately).
func (d *DataType) IsPrimitive() bool {
	return d != nil && token.IsPrimitiveType(d.TypeName.Kind)
}

// IsNumeric reports whether d is a non-reference, non-array integer or
// floating-point primitive.
func (d *DataType) IsNumeric() bool {
	return d.IsInteger() || d.IsFloating()
}

// IsInteger reports whether d is a non-reference, non-array integer
// primitive (byte, short, int, long).
func (d *DataType) IsInteger() bool {
	if d == nil || d.IsReference || d.Dimensions != 0 {
		return false
	}
	switch d.TypeName.Kind {
	case token.BYTE, token.SHORT, token.INT, token.LONG:
		return true
	default:
		return false
	}
}

// IsFloating reports whether d is a non-reference, non-array float or
// double primitive.
func (d *DataType) IsFloating() bool {
	if d == nil || d.IsReference || d.Dimensions != 0 {
		return false
	}
	return d.TypeName.Kind == token.FLOAT || d.TypeName.Kind == token.DOUBLE
}

// IsBool reports whether d is a non-reference, non-array bool.
func (d *DataType) IsBool() bool {
	return d != nil && !d.IsReference && d.Dimensions == 0 && d.TypeName.Kind == token.BOOL
}

// Name returns the type name's lexeme, used for struct lookups and for
// isSameType's lexeme comparison (spec.md §4.3).
func (d *DataType) Name() string {
	if d == nil {
		return "void"
	}
	return d.TypeName.Lexeme
}

// SameType implements isSameType from spec.md §4.3: same dimensions, same
// is_reference, same type-name lexeme — with a reference type and the
// null-literal type considered equal.
func SameType(a, b *DataType) bool {
	if a == nil || b == nil {
		return a.IsVoid() && b.IsVoid()
	}
	if a.IsReference && b.IsNullLiteral() {
		return true
	}
	if b.IsReference && a.IsNullLiteral() {
		return true
	}
	return a.IsReference == b.IsReference && a.Dimensions == b.Dimensions && a.Name() == b.Name()
}

// VariableDeclarator is `DataType IDENT`: the shape shared by function
// parameters, struct members, and the left side of a variable declaration
// statement (spec.md §4.2 grammar).
type VariableDeclarator struct {
	Type *DataType
	Name token.Token
}

func (v *VariableDeclarator) Pos() token.Position { return v.Type.Pos() }
