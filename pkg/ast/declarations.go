package ast

import "github.com/xc-lang/xc/pkg/token"

// Function is `DataType (IDENT '::')? IDENT '(' (void|ParameterList)? ')'
// BlockStatement` (spec.md §4.2), e.g. `int Pt::sum(void) {...}`; the parser
// also accepts the owner written before the return type. Owner is the zero
// Token when the function is a free function rather than a struct method.
type Function struct {
	Owner      token.Token // zero value (Kind == token.EOF) when absent
	ReturnType *DataType
	Name       token.Token
	Parameters []*VariableDeclarator
	Body       *BlockStatement
}

func (f *Function) Pos() token.Position { return f.Name.Position }
func (f *Function) declarationNode()    {}

// HasOwner reports whether the function is defined as a struct method.
func (f *Function) HasOwner() bool {
	return f.Owner.Lexeme != ""
}

// Structure is `'struct' IDENT '{' StructureMembers? '}'` (spec.md §4.2).
type Structure struct {
	Name    token.Token
	Members []*VariableDeclarator
}

func (s *Structure) Pos() token.Position { return s.Name.Position }
func (s *Structure) declarationNode()    {}

// FindMember returns the member declared with the given name, if any.
func (s *Structure) FindMember(name string) (*VariableDeclarator, bool) {
	for _, m := range s.Members {
		if m.Name.Lexeme == name {
			return m, true
		}
	}
	return nil, false
}

var (
	_ Declaration = (*Function)(nil)
	_ Declaration = (*Structure)(nil)
)
