package analyzer

import (
	"github.com/xc-lang/xc/pkg/ast"
	"github.com/xc-lang/xc/pkg/symbols"
	"github.com/xc-lang/xc/pkg/token"
)

// typeExists reports whether dt names a valid type: a primitive keyword, or
// an IDENTIFIER naming a struct already in the table (spec.md §4.3: "every
// member's type must be a primitive, or an identifier naming a known
// struct"). A nil DataType (void) is always valid at the call sites that
// pass one.
func (a *Analyzer) typeExists(dt *ast.DataType) bool {
	if dt == nil {
		return true
	}
	if dt.IsPrimitive() {
		return true
	}
	if dt.TypeName.Kind == token.IDENTIFIER {
		_, ok := a.table.LookupStruct(dt.TypeName.Lexeme)
		return ok
	}
	return false
}

// checkType reports "unknown type" if dt fails typeExists, returning
// whether it is usable for further checks.
func (a *Analyzer) checkType(dt *ast.DataType) bool {
	if a.typeExists(dt) {
		return true
	}
	a.report(dt.Pos(), "unknown type %q", dt.Name())
	return false
}

// phase 2: validate structures (spec.md §4.3 "Validate structures").
func (a *Analyzer) validateStructures(prog *ast.Program) {
	for _, decl := range prog.Declarations {
		s, ok := decl.(*ast.Structure)
		if !ok {
			continue
		}
		a.validateStructure(s)
	}
}

func (a *Analyzer) validateStructure(s *ast.Structure) {
	seen := make(map[string]bool, len(s.Members))
	for _, m := range s.Members {
		if seen[m.Name.Lexeme] {
			a.report(m.Name.Position, "duplicate member %q in struct %q", m.Name.Lexeme, s.Name.Lexeme)
			continue
		}
		seen[m.Name.Lexeme] = true

		if !a.checkType(m.Type) {
			continue
		}

		if m.Type.TypeName.Lexeme == s.Name.Lexeme && m.Type.TypeName.Kind == token.IDENTIFIER &&
			!m.Type.IsReference && m.Type.Dimensions == 0 {
			a.report(m.Pos(), "struct %q contains a self referencing member", s.Name.Lexeme)
		}
	}
}

// phase 3: validate functions — signatures, then bodies (spec.md §4.3
// "Validate functions").
func (a *Analyzer) validateFunctions(prog *ast.Program) {
	for _, decl := range prog.Declarations {
		f, ok := decl.(*ast.Function)
		if !ok {
			continue
		}
		a.validateFunction(f)
	}
}

func (a *Analyzer) validateFunction(f *ast.Function) {
	if f.HasOwner() {
		if _, ok := a.table.LookupStruct(f.Owner.Lexeme); !ok {
			a.report(f.Owner.Position, "unknown owner struct %q", f.Owner.Lexeme)
		}
	}

	if !f.ReturnType.IsVoid() {
		a.checkType(f.ReturnType)
	}

	names := make(map[string]bool, len(f.Parameters)+1)
	if f.HasOwner() {
		names["self"] = true
	}
	for _, p := range f.Parameters {
		if names[p.Name.Lexeme] {
			if p.Name.Lexeme == "self" {
				a.report(p.Name.Position, "%q is reserved for the implicit owner parameter", p.Name.Lexeme)
			} else {
				a.report(p.Name.Position, "duplicate parameter %q", p.Name.Lexeme)
			}
			continue
		}
		names[p.Name.Lexeme] = true
		a.checkType(p.Type)
	}

	stack := symbols.NewStack()
	stack.PushFunction(f)
	if f.HasOwner() {
		stack.Add("self", &ast.DataType{IsReference: true, TypeName: f.Owner})
	}
	for _, p := range f.Parameters {
		stack.Add(p.Name.Lexeme, p.Type)
	}

	if f.Body != nil {
		a.validateBody(stack, f.Body)
	}
}
