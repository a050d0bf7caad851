package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xc-lang/xc/pkg/ast"
	"github.com/xc-lang/xc/pkg/lexer"
	"github.com/xc-lang/xc/pkg/parser"
	"github.com/xc-lang/xc/pkg/source"
)

func parseSource(t *testing.T, src string) (*ast.Program, bool) {
	t.Helper()
	sf, err := source.Load("t.x", strings.NewReader(src))
	require.NoError(t, err)

	tokens, lexSink := lexer.New(sf).Tokenize()
	require.False(t, lexSink.HasErrors(), "lexer should not fail for this fixture")

	prog, parseSink := parser.Parse(tokens)
	return prog, parseSink.HasErrors()
}

func TestParseFreeFunction(t *testing.T) {
	r := require.New(t)
	prog, hasErr := parseSource(t, "int main(void) { return 0; }")
	r.False(hasErr)
	r.Len(prog.Declarations, 1)

	fn, ok := prog.Declarations[0].(*ast.Function)
	r.True(ok)
	r.False(fn.HasOwner())
	r.Equal("main", fn.Name.Lexeme)
	r.Empty(fn.Parameters)
	r.Len(fn.Body.Statements, 1)
}

func TestParseMethodWithOwner(t *testing.T) {
	r := require.New(t)
	prog, hasErr := parseSource(t, "struct Pt { int x; int y; } int Pt::sum(void) { return self.x + self.y; }")
	r.False(hasErr)
	r.Len(prog.Declarations, 2)

	st, ok := prog.Declarations[0].(*ast.Structure)
	r.True(ok)
	r.Equal("Pt", st.Name.Lexeme)
	r.Len(st.Members, 2)

	fn, ok := prog.Declarations[1].(*ast.Function)
	r.True(ok)
	r.True(fn.HasOwner())
	r.Equal("Pt", fn.Owner.Lexeme)
	r.Equal("sum", fn.Name.Lexeme)
}

// TestParseForLoopEmptyClauses reproduces spec.md §8's boundary case:
// `for (;;) { }` parses with every clause nil and an empty body.
func TestParseForLoopEmptyClauses(t *testing.T) {
	r := require.New(t)
	prog, hasErr := parseSource(t, "int f(void) { for (;;) { } return 0; }")
	r.False(hasErr)

	fn := prog.Declarations[0].(*ast.Function)
	forStmt, ok := fn.Body.Statements[0].(*ast.ForIteration)
	r.True(ok)
	r.Nil(forStmt.Init)
	r.Nil(forStmt.Condition)
	r.Nil(forStmt.Update)
	r.Empty(forStmt.Body.Statements)
}

func TestParseIfElseIfElseChain(t *testing.T) {
	r := require.New(t)
	prog, hasErr := parseSource(t, `int f(void) {
		if (true) { return 1; } else if (false) { return 2; } else { return 3; }
	}`)
	r.False(hasErr)

	fn := prog.Declarations[0].(*ast.Function)
	cond, ok := fn.Body.Statements[0].(*ast.ConditionalStatement)
	r.True(ok)

	elseIf, ok := cond.Else.(*ast.ConditionalStatement)
	r.True(ok)

	_, ok = elseIf.Else.(*ast.BlockStatement)
	r.True(ok)
}

func TestParseMissingSemicolonReportsSyntaxError(t *testing.T) {
	r := require.New(t)
	_, hasErr := parseSource(t, "int f(void) { return 0 }")
	r.True(hasErr)
}

func TestParseMissingClosingBraceReportsSyntaxError(t *testing.T) {
	r := require.New(t)
	_, hasErr := parseSource(t, "int f(void) { return 0;")
	r.True(hasErr)
}

func TestParseReferenceAndArrayDataType(t *testing.T) {
	r := require.New(t)
	prog, hasErr := parseSource(t, "struct S { &int ref; int[] arr; }")
	r.False(hasErr)

	st := prog.Declarations[0].(*ast.Structure)
	r.True(st.Members[0].Type.IsReference)
	r.Equal(uint32(0), st.Members[0].Type.Dimensions)
	r.False(st.Members[1].Type.IsReference)
	r.Equal(uint32(1), st.Members[1].Type.Dimensions)
}

func TestParsePrecedenceClimbingAssociativity(t *testing.T) {
	r := require.New(t)
	// 1 + 2 * 3 should bind as 1 + (2 * 3), i.e. the outer binary's
	// operator is '+' and its right side is itself a binary '*'.
	prog, hasErr := parseSource(t, "int f(void) { return 1 + 2 * 3; }")
	r.False(hasErr)

	fn := prog.Declarations[0].(*ast.Function)
	ret := fn.Body.Statements[0].(*ast.ReturnStatement)
	outer := ret.Value.(*ast.Binary)
	r.Equal("+", outer.Operator.Lexeme)

	inner, ok := outer.Right.(*ast.Binary)
	r.True(ok)
	r.Equal("*", inner.Operator.Lexeme)
}
