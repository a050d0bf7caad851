package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xc-lang/xc/pkg/ast"
	"github.com/xc-lang/xc/pkg/token"
)

func primitive(kind token.Kind, lexeme string) *ast.DataType {
	return &ast.DataType{TypeName: token.Token{Kind: kind, Lexeme: lexeme}}
}

func TestDataTypeIsVoid(t *testing.T) {
	r := require.New(t)
	r.True((*ast.DataType)(nil).IsVoid())
	r.True(primitive(token.VOID, "void").IsVoid())
	r.False(primitive(token.INT, "int").IsVoid())
}

func TestDataTypeIsIntegerExcludesReferenceAndArray(t *testing.T) {
	r := require.New(t)
	r.True(primitive(token.INT, "int").IsInteger())
	r.True(primitive(token.LONG, "long").IsInteger())
	r.False(primitive(token.FLOAT, "float").IsInteger())

	ref := primitive(token.INT, "int")
	ref.IsReference = true
	r.False(ref.IsInteger())

	arr := primitive(token.INT, "int")
	arr.Dimensions = 1
	r.False(arr.IsInteger())
}

func TestDataTypeIsFloatingAndIsNumeric(t *testing.T) {
	r := require.New(t)
	r.True(primitive(token.FLOAT, "float").IsFloating())
	r.True(primitive(token.DOUBLE, "double").IsFloating())
	r.True(primitive(token.DOUBLE, "double").IsNumeric())
	r.True(primitive(token.INT, "int").IsNumeric())
	r.False(primitive(token.BOOL, "bool").IsNumeric())
}

func TestDataTypeIsBool(t *testing.T) {
	r := require.New(t)
	r.True(primitive(token.BOOL, "bool").IsBool())
	r.False(primitive(token.INT, "int").IsBool())
}

func TestDataTypeIsPrimitiveExcludesIdentifiers(t *testing.T) {
	r := require.New(t)
	r.True(primitive(token.INT, "int").IsPrimitive())
	r.False(primitive(token.IDENTIFIER, "Pt").IsPrimitive())
}

func TestDataTypeNameFallsBackToVoidOnNil(t *testing.T) {
	r := require.New(t)
	r.Equal("void", (*ast.DataType)(nil).Name())
	r.Equal("int", primitive(token.INT, "int").Name())
}

func TestDataTypeIsNullLiteral(t *testing.T) {
	r := require.New(t)
	null := &ast.DataType{IsReference: true, TypeName: token.Token{Kind: token.LITERAL_REFERENCE_NULL, Lexeme: "null"}}
	r.True(null.IsNullLiteral())
	r.False(primitive(token.INT, "int").IsNullLiteral())
}

func TestSameTypeComparesNameReferenceAndDimensions(t *testing.T) {
	r := require.New(t)
	a := primitive(token.INT, "int")
	b := primitive(token.INT, "int")
	r.True(ast.SameType(a, b))

	c := primitive(token.INT, "int")
	c.Dimensions = 1
	r.False(ast.SameType(a, c))

	d := primitive(token.FLOAT, "float")
	r.False(ast.SameType(a, d))
}

// TestSameTypeAcceptsNullLiteralAgainstAnyReference reproduces spec.md
// §4.3's special case: the null literal's synthetic type compares equal to
// any reference type, in either argument order.
func TestSameTypeAcceptsNullLiteralAgainstAnyReference(t *testing.T) {
	r := require.New(t)
	ref := primitive(token.IDENTIFIER, "Pt")
	ref.IsReference = true
	null := &ast.DataType{IsReference: true, TypeName: token.Token{Kind: token.LITERAL_REFERENCE_NULL, Lexeme: "null"}}

	r.True(ast.SameType(ref, null))
	r.True(ast.SameType(null, ref))
}

func TestSameTypeBothNilIsVoidEqualsVoid(t *testing.T) {
	r := require.New(t)
	r.True(ast.SameType(nil, nil))
}

func TestFunctionHasOwner(t *testing.T) {
	r := require.New(t)
	method := &ast.Function{Owner: token.Token{Lexeme: "Pt"}, Name: token.Token{Lexeme: "sum"}}
	r.True(method.HasOwner())

	free := &ast.Function{Name: token.Token{Lexeme: "main"}}
	r.False(free.HasOwner())
}

func TestStructureFindMember(t *testing.T) {
	r := require.New(t)
	st := &ast.Structure{
		Name: token.Token{Lexeme: "Pt"},
		Members: []*ast.VariableDeclarator{
			{Name: token.Token{Lexeme: "x"}, Type: primitive(token.INT, "int")},
		},
	}

	m, ok := st.FindMember("x")
	r.True(ok)
	r.Equal("x", m.Name.Lexeme)

	_, ok = st.FindMember("missing")
	r.False(ok)
}

// TestErrorNodeChainFlattensNestedAdditional reproduces the parser's
// "accumulate then escalate" model: chaining an already-chained error onto
// another must flatten rather than nest, so All() returns every failure in
// recording order.
func TestErrorNodeChainFlattensNestedAdditional(t *testing.T) {
	r := require.New(t)
	root := ast.NewErrorNode("missing semicolon", token.Position{Line: 1})
	second := ast.NewErrorNode("missing identifier", token.Position{Line: 2})
	third := ast.NewErrorNode("unexpected token", token.Position{Line: 3})

	second.Chain(third)
	root.Chain(second)

	all := root.All()
	r.Len(all, 3)
	r.Same(root, all[0])
	r.Same(second, all[1])
	r.Same(third, all[2])

	// flattening must clear the donor's own Additional so a later traversal
	// through `second` directly would not double-count `third`.
	r.Empty(second.Additional)
}

func TestErrorNodeChainOfNilIsNoop(t *testing.T) {
	r := require.New(t)
	root := ast.NewErrorNode("missing semicolon", token.Position{Line: 1})
	root.Chain(nil)
	r.Len(root.All(), 1)
}
