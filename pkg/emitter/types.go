package emitter

import (
	"fmt"
	"strings"

	"github.com/xc-lang/xc/pkg/ast"
	"github.com/xc-lang/xc/pkg/token"
)

// cType translates a DataType to its C spelling, per spec.md §4.5's table:
// bool->bool, byte->int8_t, short->int16_t, int->int32_t, long->int64_t,
// float->float, double->double, identifier -> struct name verbatim; a
// reference appends "*". A null DataType denotes void.
//
// dimensions is never consulted: array-access semantics are a Non-goal on
// both ends of the translation, matching the original's
// CGenerator::translateDataType, which switches on type_name and appends
// "*" only for is_reference — an array-typed declaration emits the bare
// element type with no marker of its arity.
func cType(dt *ast.DataType) string {
	if dt.IsVoid() {
		return "void"
	}

	var base string
	switch dt.TypeName.Kind {
	case token.BOOL:
		base = "bool"
	case token.BYTE:
		base = "int8_t"
	case token.SHORT:
		base = "int16_t"
	case token.INT:
		base = "int32_t"
	case token.LONG:
		base = "int64_t"
	case token.FLOAT:
		base = "float"
	case token.DOUBLE:
		base = "double"
	default:
		base = dt.TypeName.Lexeme
	}

	if dt.IsReference {
		return base + "*"
	}
	return base
}

// functionSignature translates a Function's C signature (spec.md §4.5): if
// it has an owner, the name becomes "Owner_name" and an implicit "Owner*
// self" parameter is prepended; with no parameters and no owner, the
// parameter list is written as "void".
func functionSignature(f *ast.Function) string {
	name := f.Name.Lexeme
	var params []string

	if f.HasOwner() {
		name = f.Owner.Lexeme + "_" + f.Name.Lexeme
		params = append(params, fmt.Sprintf("%s* self", f.Owner.Lexeme))
	}
	for _, p := range f.Parameters {
		params = append(params, fmt.Sprintf("%s %s", cType(p.Type), p.Name.Lexeme))
	}

	if len(params) == 0 {
		return fmt.Sprintf("%s %s(void)", cType(f.ReturnType), name)
	}
	return fmt.Sprintf("%s %s(%s)", cType(f.ReturnType), name, strings.Join(params, ", "))
}
