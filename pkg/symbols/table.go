// Package symbols implements the SymbolTable and SymbolStack of spec.md
// §3.5/§4.4: a flat top-level namespace shared by functions and structs,
// plus an ordered stack of scope frames used while walking a function body.
//
// Grounded on rhino1998-aeon/pkg/compiler/scope.go's Scope type (parent-chain
// get/put, sorted iteration via slices/cmp for deterministic output) and
// generalized from aeon's package-scoped symbols to X's single flat
// struct+function namespace (spec.md has no module system to scope across).
package symbols

import (
	"cmp"
	"slices"

	"github.com/xc-lang/xc/pkg/ast"
)

// Table is the shared struct+function namespace built by the analyzer's
// "load symbols" phase (spec.md §4.3 phase 1).
type Table struct {
	decls map[string]ast.Declaration
}

// NewTable returns an empty symbol table.
func NewTable() *Table {
	return &Table{decls: make(map[string]ast.Declaration)}
}

// Declare inserts decl under its bare name — struct, free function, and
// method names all share the one flat namespace, with no owner scoping
// (spec.md §3.4: "unique across the combined struct+function namespace"; a
// method is just a Function, a Declaration kind, with no stated exemption).
// ok is false if that name is already bound — spec.md §4.3: "Duplicate names
// (across both kinds) raise 'already defined'".
func (t *Table) Declare(decl ast.Declaration) (ok bool) {
	key := declKey(decl)
	if _, exists := t.decls[key]; exists {
		return false
	}
	t.decls[key] = decl
	return true
}

func declKey(d ast.Declaration) string {
	switch d := d.(type) {
	case *ast.Structure:
		return d.Name.Lexeme
	case *ast.Function:
		return d.Name.Lexeme
	default:
		return "" // unreachable once analysis has run: every other Declaration variant is an ErrorNode, never inserted
	}
}

// Lookup returns the declaration bound to name, if any, in the flat
// namespace.
func (t *Table) Lookup(name string) (ast.Declaration, bool) {
	d, ok := t.decls[name]
	return d, ok
}

// LookupFunction returns the free function (no owner) bound to name.
func (t *Table) LookupFunction(name string) (*ast.Function, bool) {
	f, ok := t.decls[name].(*ast.Function)
	if !ok || f.HasOwner() {
		return nil, false
	}
	return f, true
}

// LookupMethod returns the method named name if one is bound and it is
// owned by ownerName. Unlike Declare's single flat key, the owner check
// happens here at lookup time, not in the key, mirroring the original's
// SymbolTable::lookupFunction(name) followed by a separate owner-lexeme
// comparison at the call site.
func (t *Table) LookupMethod(ownerName, name string) (*ast.Function, bool) {
	f, ok := t.decls[name].(*ast.Function)
	if !ok || !f.HasOwner() || f.Owner.Lexeme != ownerName {
		return nil, false
	}
	return f, true
}

// LookupStruct returns the declaration bound to name if it is a struct.
func (t *Table) LookupStruct(name string) (*ast.Structure, bool) {
	d, ok := t.decls[name]
	if !ok {
		return nil, false
	}
	s, ok := d.(*ast.Structure)
	return s, ok
}

// Functions returns every function in the table, sorted by name for
// deterministic emission order (spec.md §8: identical output for
// semantically-equivalent programs).
func (t *Table) Functions() []*ast.Function {
	var fns []*ast.Function
	for _, d := range t.decls {
		if f, ok := d.(*ast.Function); ok {
			fns = append(fns, f)
		}
	}
	slices.SortFunc(fns, func(a, b *ast.Function) int {
		return cmp.Compare(a.Name.Lexeme, b.Name.Lexeme)
	})
	return fns
}

// Structs returns every struct in the table, sorted by name.
func (t *Table) Structs() []*ast.Structure {
	var structs []*ast.Structure
	for _, d := range t.decls {
		if s, ok := d.(*ast.Structure); ok {
			structs = append(structs, s)
		}
	}
	slices.SortFunc(structs, func(a, b *ast.Structure) int {
		return cmp.Compare(a.Name.Lexeme, b.Name.Lexeme)
	})
	return structs
}

