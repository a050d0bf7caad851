package emitter_test

import (
	"strings"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"

	"github.com/xc-lang/xc/pkg/analyzer"
	"github.com/xc-lang/xc/pkg/emitter"
	"github.com/xc-lang/xc/pkg/lexer"
	"github.com/xc-lang/xc/pkg/parser"
	"github.com/xc-lang/xc/pkg/source"
)

func compile(t *testing.T, src string) string {
	t.Helper()
	sf, err := source.Load("t.x", strings.NewReader(src))
	require.NoError(t, err)

	tokens, lexSink := lexer.New(sf).Tokenize()
	require.False(t, lexSink.HasErrors())

	prog, parseSink := parser.Parse(tokens)
	require.False(t, parseSink.HasErrors())

	table, analyzeSink := analyzer.Analyze(slogt.New(t), prog)
	require.False(t, analyzeSink.HasErrors())

	return emitter.Emit("t.x.c", table).String()
}

func TestEmitPreambleAlwaysPresent(t *testing.T) {
	r := require.New(t)
	out := compile(t, "")
	r.Contains(out, "#include <stdint.h>")
	r.Contains(out, "#include <stdbool.h>")
}

func TestEmitEmptyProgramHasNoTypedefsOrDeclarations(t *testing.T) {
	r := require.New(t)
	out := compile(t, "")
	r.NotContains(out, "typedef")
}

func TestEmitFreeFunctionSignatureAndBody(t *testing.T) {
	r := require.New(t)
	out := compile(t, "int main(void) { return 0; }")
	r.Contains(out, "int32_t main(void);")
	r.Contains(out, "int32_t main(void) {")
	r.Contains(out, "return 0;")
}

// TestEmitMethodTranslatesOwnerAndMemberAccess reproduces spec.md §8
// scenario 2: a struct typedef, its forward declaration with the implicit
// self parameter, its struct body, and the self.x/self.y member accesses
// translated through a pointer.
func TestEmitMethodTranslatesOwnerAndMemberAccess(t *testing.T) {
	r := require.New(t)
	out := compile(t, "struct Pt { int x; int y; } int Pt::sum(void) { return self.x + self.y; }")

	r.Contains(out, "typedef struct Pt Pt;")
	r.Contains(out, "int32_t Pt_sum(Pt* self);")
	r.Contains(out, "struct Pt {")
	r.Contains(out, "int32_t x;")
	r.Contains(out, "int32_t y;")
	r.Contains(out, "int32_t Pt_sum(Pt* self) {")
	r.Contains(out, "return ((*self).x + (*self).y);")
}

func TestEmitOctalLiteralRewrittenToCOctal(t *testing.T) {
	r := require.New(t)
	out := compile(t, "int main(void) { int x = 0o17; return x; }")
	r.Contains(out, "int32_t x = 0017;")
}

func TestEmitFloatLiteralGetsFSuffix(t *testing.T) {
	r := require.New(t)
	out := compile(t, "float f(void) { return 3.14; }")
	r.Contains(out, "3.14f")
}

func TestEmitBooleanXorCollapsesToCaret(t *testing.T) {
	r := require.New(t)
	out := compile(t, "bool f(bool a, bool b) { return a ^^ b; }")
	r.Contains(out, "(a ^ b)")
}

func TestEmitReferenceParameterAutoDereferences(t *testing.T) {
	r := require.New(t)
	out := compile(t, "struct S { int v; } int read(&S s) { return s.v; }")
	r.Contains(out, "S* s")
	r.Contains(out, "return (*s).v;")
}

// TestEmitChainedMemberAccessDereferencesReferenceTypedMember resolves
// spec.md §9's dot-vs-arrow open question one hop beyond a bare identifier
// owner: `next` is itself reference-typed, so `n.next.val` must deref the
// intermediate `n.next` result before applying `.val`, not just the
// identifier `n` at the head of the chain.
func TestEmitChainedMemberAccessDereferencesReferenceTypedMember(t *testing.T) {
	r := require.New(t)
	out := compile(t, "struct Node { int val; &Node next; } int f(&Node n) { return n.next.val; }")
	r.Contains(out, "return (*(*n).next).val;")
}

func TestEmitMethodCallTakesAddressOfValueOwner(t *testing.T) {
	r := require.New(t)
	out := compile(t, `struct Pt { int x; }
		int Pt::get(void) { return self.x; }
		int caller(void) { Pt p; return p.get(); }`)
	r.Contains(out, "Pt_get(&p)")
}

func TestEmitMethodCallOnReferenceOwnerPassesPointerDirectly(t *testing.T) {
	r := require.New(t)
	out := compile(t, `struct Pt { int x; }
		int Pt::get(void) { return self.x; }
		int caller(&Pt p) { return p.get(); }`)
	r.Contains(out, "Pt_get(p)")
}

func TestEmitForLoopWithEmptyClauses(t *testing.T) {
	r := require.New(t)
	out := compile(t, "int f(void) { for (;;) { break; } return 0; }")
	r.Contains(out, "for (; ; ) {")
}

func TestEmitIfElseIfElseChain(t *testing.T) {
	r := require.New(t)
	out := compile(t, `int f(void) {
		if (true) { return 1; } else if (false) { return 2; } else { return 3; }
	}`)
	r.Contains(out, "if (true) {")
	r.Contains(out, "} else if (false) {")
	r.Contains(out, "} else {")
}

// TestEmitArrayDeclarationDropsDimensionMarker matches the original
// reference's CGenerator::translateDataType, which never reads
// `dimensions`: an array-typed declaration emits the bare element type.
func TestEmitArrayDeclarationDropsDimensionMarker(t *testing.T) {
	r := require.New(t)
	out := compile(t, "struct S { int[] arr; }")
	r.Contains(out, "int32_t arr;")
}
