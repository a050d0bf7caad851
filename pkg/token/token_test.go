package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xc-lang/xc/pkg/token"
)

func TestKindStringKnownAndUnknown(t *testing.T) {
	r := require.New(t)
	r.Equal("return", token.RETURN.String())
	r.Equal("+=", token.PLUS_ASSIGN.String())
	r.Contains(token.Kind(255).String(), "Kind(255)")
}

func TestIsPrimitiveType(t *testing.T) {
	r := require.New(t)
	for _, k := range []token.Kind{token.VOID, token.BOOL, token.BYTE, token.SHORT, token.INT, token.LONG, token.FLOAT, token.DOUBLE} {
		r.True(token.IsPrimitiveType(k), "%s should be primitive", k)
	}
	r.False(token.IsPrimitiveType(token.IDENTIFIER))
	r.False(token.IsPrimitiveType(token.STRUCT))
}

func TestKeywordsMapMatchesControlAndLiteralKeywords(t *testing.T) {
	r := require.New(t)
	r.Equal(token.IF, token.Keywords["if"])
	r.Equal(token.STRUCT, token.Keywords["struct"])
	r.Equal(token.TRUE, token.Keywords["true"])
	_, ok := token.Keywords["self"]
	r.False(ok, "self is contextual, not a reserved keyword")
}

func TestCompoundAssignClassification(t *testing.T) {
	r := require.New(t)
	r.True(token.IsCompoundAssign(token.PLUS_ASSIGN))
	r.True(token.IsNumericCompoundAssign(token.STAR_ASSIGN))
	r.False(token.IsNumericCompoundAssign(token.AMP_ASSIGN))
	r.True(token.IsIntegerCompoundAssign(token.AMP_ASSIGN))
	r.False(token.IsCompoundAssign(token.ASSIGN))
}

func TestCompoundAssignToInfix(t *testing.T) {
	r := require.New(t)
	infix, ok := token.CompoundAssignToInfix(token.PLUS_ASSIGN)
	r.True(ok)
	r.Equal(token.PLUS, infix)

	_, ok = token.CompoundAssignToInfix(token.ASSIGN)
	r.False(ok)
}

func TestLexemeForOperatorsAndPunctuation(t *testing.T) {
	r := require.New(t)
	r.Equal("^^", token.Lexeme(token.BOOLEAN_XOR))
	r.Equal("::", token.Lexeme(token.COLON_COLON))
	r.Equal(".", token.Lexeme(token.DOT))
}

func TestSyntheticTokenCarriesPositionAndLexeme(t *testing.T) {
	r := require.New(t)
	pos := token.Position{Filename: "a.x", Line: 3, Column: 5}
	tok := token.Synthetic(token.BOOL, "bool", pos)
	r.Equal(token.BOOL, tok.Kind)
	r.Equal("bool", tok.Lexeme)
	r.Equal(pos, tok.Position)
}
