package symbols_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xc-lang/xc/pkg/ast"
	"github.com/xc-lang/xc/pkg/symbols"
	"github.com/xc-lang/xc/pkg/token"
)

func ident(name string) token.Token {
	return token.Token{Kind: token.IDENTIFIER, Lexeme: name}
}

func TestTableDeclareRejectsDuplicateName(t *testing.T) {
	r := require.New(t)
	table := symbols.NewTable()

	r.True(table.Declare(&ast.Structure{Name: ident("Pt")}))
	r.False(table.Declare(&ast.Structure{Name: ident("Pt")}))
}

// TestTableMethodsOnDifferentStructsCollide is the flat-namespace case:
// struct, free function, and method names all share one bare-name key
// (spec.md §3.4), so two structs cannot each declare a same-named method —
// the second Declare is rejected exactly like any other duplicate name.
func TestTableMethodsOnDifferentStructsCollide(t *testing.T) {
	r := require.New(t)
	table := symbols.NewTable()

	r.True(table.Declare(&ast.Structure{Name: ident("Point")}))
	r.True(table.Declare(&ast.Structure{Name: ident("Rect")}))

	pointScale := &ast.Function{Owner: ident("Point"), Name: ident("scale")}
	rectScale := &ast.Function{Owner: ident("Rect"), Name: ident("scale")}
	r.True(table.Declare(pointScale))
	r.False(table.Declare(rectScale))

	found, ok := table.LookupMethod("Point", "scale")
	r.True(ok)
	r.Same(pointScale, found)

	// the name resolves, but to Point's method, not Rect's — LookupMethod
	// checks the owner at lookup time rather than baking it into the key.
	_, ok = table.LookupMethod("Rect", "scale")
	r.False(ok)
}

// TestTableStructAndFunctionShareOneNamespace reproduces spec.md §3.4's
// "combined struct+function namespace": a struct and a function (or
// method) cannot share a name even though they are different Declaration
// kinds.
func TestTableStructAndFunctionShareOneNamespace(t *testing.T) {
	r := require.New(t)
	table := symbols.NewTable()

	r.True(table.Declare(&ast.Structure{Name: ident("Pt")}))
	r.False(table.Declare(&ast.Function{Name: ident("Pt")}))
}

func TestTableLookupFunctionExcludesMethods(t *testing.T) {
	r := require.New(t)
	table := symbols.NewTable()
	table.Declare(&ast.Structure{Name: ident("Pt")})
	table.Declare(&ast.Function{Owner: ident("Pt"), Name: ident("sum")})
	table.Declare(&ast.Function{Name: ident("main")})

	_, ok := table.LookupFunction("sum")
	r.False(ok, "a method must not be reachable through LookupFunction")

	fn, ok := table.LookupFunction("main")
	r.True(ok)
	r.Equal("main", fn.Name.Lexeme)
}

func TestTableFunctionsSortedDeterministically(t *testing.T) {
	r := require.New(t)
	table := symbols.NewTable()
	table.Declare(&ast.Function{Name: ident("zeta")})
	table.Declare(&ast.Function{Name: ident("alpha")})
	table.Declare(&ast.Structure{Name: ident("Beta")})
	table.Declare(&ast.Function{Owner: ident("Beta"), Name: ident("method")})

	fns := table.Functions()
	r.Len(fns, 3)
	names := make([]string, len(fns))
	for i, f := range fns {
		names[i] = f.Name.Lexeme
	}
	r.Equal([]string{"alpha", "method", "zeta"}, names)
}

func TestTableStructsSortedByName(t *testing.T) {
	r := require.New(t)
	table := symbols.NewTable()
	table.Declare(&ast.Structure{Name: ident("Zeta")})
	table.Declare(&ast.Structure{Name: ident("Alpha")})

	structs := table.Structs()
	r.Len(structs, 2)
	r.Equal("Alpha", structs[0].Name.Lexeme)
	r.Equal("Zeta", structs[1].Name.Lexeme)
}

func TestTableLookupStructRejectsFunctionKey(t *testing.T) {
	r := require.New(t)
	table := symbols.NewTable()
	table.Declare(&ast.Function{Name: ident("main")})

	_, ok := table.LookupStruct("main")
	r.False(ok)
}
