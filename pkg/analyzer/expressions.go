package analyzer

import (
	"github.com/xc-lang/xc/pkg/ast"
	"github.com/xc-lang/xc/pkg/symbols"
	"github.com/xc-lang/xc/pkg/token"
)

// Synthetic type constructors for expression results with no declared
// DataType to copy (literals, comparison results) — spec.md §4.3: "a fresh
// `bool` whose token inherits the operator's position", generalized to
// every synthesized primitive.

func intType(pos token.Position) *ast.DataType {
	return &ast.DataType{TypeName: token.Synthetic(token.INT, "int", pos)}
}

func floatType(pos token.Position) *ast.DataType {
	return &ast.DataType{TypeName: token.Synthetic(token.FLOAT, "float", pos)}
}

func doubleType(pos token.Position) *ast.DataType {
	return &ast.DataType{TypeName: token.Synthetic(token.DOUBLE, "double", pos)}
}

func boolType(pos token.Position) *ast.DataType {
	return &ast.DataType{TypeName: token.Synthetic(token.BOOL, "bool", pos)}
}

func nullLiteralType(pos token.Position) *ast.DataType {
	return &ast.DataType{IsReference: true, TypeName: token.Synthetic(token.LITERAL_REFERENCE_NULL, "null", pos)}
}

func isAssignable(e ast.Expression) bool {
	switch e.(type) {
	case *ast.IdentifierConstant, *ast.MemberAccess:
		return true
	default:
		return false
	}
}

// typeOf computes and memoizes expr's evaluated type (spec.md §4.3: "sets
// evaluated_type exactly once per node; memoised"). A nil return means
// typing failed and a diagnostic was already recorded.
func (a *Analyzer) typeOf(stack *symbols.Stack, expr ast.Expression) *ast.DataType {
	if expr == nil {
		return nil
	}
	if cached := expr.Type(); cached != nil {
		return cached
	}

	var result *ast.DataType

	switch e := expr.(type) {
	case *ast.NumberConstant:
		if e.Token.Kind == token.FLOAT_LITERAL {
			result = floatType(e.Pos())
		} else {
			result = intType(e.Pos())
		}

	case *ast.LiteralExpression:
		switch e.Token.Kind {
		case token.TRUE, token.FALSE:
			result = boolType(e.Pos())
		case token.NULL:
			result = nullLiteralType(e.Pos())
		}

	case *ast.IdentifierConstant:
		typ, ok := stack.Lookup(e.Token.Lexeme)
		if !ok {
			a.report(e.Pos(), "undefined identifier %q", e.Token.Lexeme)
			return nil
		}
		result = typ

	case *ast.PrefixUnary:
		result = a.typePrefix(stack, e)

	case *ast.PostfixUnary:
		result = a.typePostfix(stack, e)

	case *ast.Binary:
		result = a.typeBinary(stack, e)

	case *ast.MemberAccess:
		result = a.typeMemberAccess(stack, e)

	case *ast.FunctionCall:
		result = a.typeFunctionCall(stack, e)

	case *ast.ArrayAccess:
		a.typeOf(stack, e.Array)
		a.typeOf(stack, e.Index)
		a.report(e.Pos(), "array indexing is not supported")
		return nil

	case *ast.CastExpression, *ast.ErrorNode:
		return nil
	}

	if result != nil {
		expr.SetType(result)
	}
	return result
}

func (a *Analyzer) typePrefix(stack *symbols.Stack, e *ast.PrefixUnary) *ast.DataType {
	operandType := a.typeOf(stack, e.Operand)

	switch e.Operator.Kind {
	case token.INCREMENT, token.DECREMENT:
		if _, ok := e.Operand.(*ast.IdentifierConstant); !ok {
			a.report(e.Operand.Pos(), "%s requires an identifier operand", token.Lexeme(e.Operator.Kind))
			return nil
		}
		if operandType == nil || !operandType.IsInteger() {
			a.report(e.Operand.Pos(), "%s requires an integer operand", token.Lexeme(e.Operator.Kind))
			return nil
		}
		return operandType

	case token.BANG:
		if operandType == nil || !operandType.IsBool() {
			a.report(e.Operand.Pos(), "! requires a bool operand")
			return nil
		}
		return operandType

	case token.TILDE:
		if operandType == nil || !operandType.IsInteger() {
			a.report(e.Operand.Pos(), "~ requires an integer operand")
			return nil
		}
		return operandType

	case token.MINUS:
		if _, ok := e.Operand.(*ast.NumberConstant); !ok {
			a.report(e.Operand.Pos(), "unary - requires a numeric literal operand")
			return nil
		}
		return operandType

	case token.AMP:
		switch e.Operand.(type) {
		case *ast.IdentifierConstant, *ast.MemberAccess:
		default:
			a.report(e.Operand.Pos(), "& requires an identifier or member access operand")
			return nil
		}
		if operandType == nil {
			return nil
		}
		if operandType.IsReference || operandType.Dimensions != 0 {
			a.report(e.Operand.Pos(), "cannot take a reference to an already-reference or array value")
			return nil
		}
		return &ast.DataType{IsReference: true, TypeName: operandType.TypeName}
	}

	return nil
}

func (a *Analyzer) typePostfix(stack *symbols.Stack, e *ast.PostfixUnary) *ast.DataType {
	operandType := a.typeOf(stack, e.Operand)

	if _, ok := e.Operand.(*ast.IdentifierConstant); !ok {
		a.report(e.Operand.Pos(), "%s requires an identifier operand", token.Lexeme(e.Operator.Kind))
		return nil
	}
	if operandType == nil || !operandType.IsInteger() {
		a.report(e.Operand.Pos(), "%s requires an integer operand", token.Lexeme(e.Operator.Kind))
		return nil
	}
	return operandType
}

// typeBinary dispatches by operator class, per spec.md §4.3's enumeration.
func (a *Analyzer) typeBinary(stack *symbols.Stack, e *ast.Binary) *ast.DataType {
	left := a.typeOf(stack, e.Left)
	right := a.typeOf(stack, e.Right)
	op := e.Operator.Kind

	switch {
	case op == token.ASSIGN:
		return a.typeAssignment(e, left, right)
	case token.IsNumericCompoundAssign(op):
		return a.typeCompoundAssign(e, left, right, true)
	case token.IsIntegerCompoundAssign(op):
		return a.typeCompoundAssign(e, left, right, false)
	case token.IsAdditive(op):
		return a.typeAdditive(e, left, right)
	case token.IsIntegerOnly(op):
		return a.typeIntegerOnly(e, left, right)
	case token.IsEquality(op):
		return a.typeEquality(e, left, right)
	case token.IsRelational(op):
		return a.typeRelational(e, left, right)
	case token.IsBooleanBinary(op):
		return a.typeBooleanBinary(e, left, right)
	}

	return nil
}

// typeAdditive implements `+ - * /`: both operands numeric; result is
// floating if either side is, with double widening float when both are
// floating (the mixed-promotion Open Question decision), else the left's
// integer type.
func (a *Analyzer) typeAdditive(e *ast.Binary, left, right *ast.DataType) *ast.DataType {
	if left == nil || right == nil {
		return nil
	}
	if !left.IsNumeric() || !right.IsNumeric() {
		a.report(e.Pos(), "%s requires numeric operands", token.Lexeme(e.Operator.Kind))
		return nil
	}
	if left.TypeName.Kind == token.DOUBLE || right.TypeName.Kind == token.DOUBLE {
		return doubleType(e.Operator.Position)
	}
	if left.IsFloating() || right.IsFloating() {
		return floatType(e.Operator.Position)
	}
	return left
}

// typeIntegerOnly implements `% & | ^ << >>`: both operands integer; result
// is the left's type.
func (a *Analyzer) typeIntegerOnly(e *ast.Binary, left, right *ast.DataType) *ast.DataType {
	if left == nil || right == nil {
		return nil
	}
	if !left.IsInteger() || !right.IsInteger() {
		a.report(e.Pos(), "%s requires integer operands", token.Lexeme(e.Operator.Kind))
		return nil
	}
	return left
}

// typeEquality implements `== !=`: both bool, or both numeric; result is a
// fresh bool.
func (a *Analyzer) typeEquality(e *ast.Binary, left, right *ast.DataType) *ast.DataType {
	if left == nil || right == nil {
		return nil
	}
	matches := (left.IsBool() && right.IsBool()) || (left.IsNumeric() && right.IsNumeric())
	if !matches {
		a.report(e.Pos(), "%s requires both bool or both numeric operands", token.Lexeme(e.Operator.Kind))
		return nil
	}
	return boolType(e.Operator.Position)
}

// typeRelational implements `< > <= >=`: both numeric; result is bool.
func (a *Analyzer) typeRelational(e *ast.Binary, left, right *ast.DataType) *ast.DataType {
	if left == nil || right == nil {
		return nil
	}
	if !left.IsNumeric() || !right.IsNumeric() {
		a.report(e.Pos(), "%s requires numeric operands", token.Lexeme(e.Operator.Kind))
		return nil
	}
	return boolType(e.Operator.Position)
}

// typeBooleanBinary implements `&& || ^^`: both bool; result is bool.
func (a *Analyzer) typeBooleanBinary(e *ast.Binary, left, right *ast.DataType) *ast.DataType {
	if left == nil || right == nil {
		return nil
	}
	if !left.IsBool() || !right.IsBool() {
		a.report(e.Pos(), "%s requires bool operands", token.Lexeme(e.Operator.Kind))
		return nil
	}
	return boolType(e.Operator.Position)
}

// typeAssignment implements `=`: left must be an identifier or member
// access; sides must have the same type; result is the left's type.
func (a *Analyzer) typeAssignment(e *ast.Binary, left, right *ast.DataType) *ast.DataType {
	if !isAssignable(e.Left) {
		a.report(e.Left.Pos(), "left-hand side of assignment must be an identifier or member access")
		return nil
	}
	if left == nil || right == nil {
		return nil
	}
	if !ast.SameType(left, right) {
		a.report(e.Pos(), "mismatch in assignment: expected %s, got %s", left.Name(), right.Name())
		return nil
	}
	return left
}

// typeCompoundAssign implements the `op=` family: left must be assignable;
// both sides numeric (for `+= -= *= /=`) or integer (for the rest); result
// is the left's type.
func (a *Analyzer) typeCompoundAssign(e *ast.Binary, left, right *ast.DataType, numeric bool) *ast.DataType {
	if !isAssignable(e.Left) {
		a.report(e.Left.Pos(), "left-hand side of %s must be an identifier or member access", token.Lexeme(e.Operator.Kind))
		return nil
	}
	if left == nil || right == nil {
		return nil
	}
	ok := left.IsNumeric() && right.IsNumeric()
	if !numeric {
		ok = left.IsInteger() && right.IsInteger()
	}
	if !ok {
		a.report(e.Pos(), "%s requires operands of matching numeric kind", token.Lexeme(e.Operator.Kind))
		return nil
	}
	return left
}

// typeMemberAccess implements `Expression '.' IDENT`: the owner's type must
// name a known struct; result is the named member's declared type.
func (a *Analyzer) typeMemberAccess(stack *symbols.Stack, e *ast.MemberAccess) *ast.DataType {
	ownerType := a.typeOf(stack, e.Owner)
	if ownerType == nil {
		return nil
	}
	if ownerType.TypeName.Kind != token.IDENTIFIER || ownerType.Dimensions != 0 {
		a.report(e.Owner.Pos(), "cannot access member %q of non-struct type %s", e.Member.Lexeme, ownerType.Name())
		return nil
	}
	s, ok := a.table.LookupStruct(ownerType.Name())
	if !ok {
		a.report(e.Owner.Pos(), "unknown struct %q", ownerType.Name())
		return nil
	}
	member, ok := s.FindMember(e.Member.Lexeme)
	if !ok {
		a.report(e.Member.Position, "struct %q has no member %q", s.Name.Lexeme, e.Member.Lexeme)
		return nil
	}
	return member.Type
}

// typeFunctionCall implements spec.md §4.3's two FunctionCall shapes: a
// plain-identifier callee resolving to a free function, or a MemberAccess
// callee resolving to a method on the owner's struct type.
func (a *Analyzer) typeFunctionCall(stack *symbols.Stack, e *ast.FunctionCall) *ast.DataType {
	switch callee := e.Callee.(type) {
	case *ast.IdentifierConstant:
		return a.typePlainCall(stack, e, callee)
	case *ast.MemberAccess:
		return a.typeMethodCall(stack, e, callee)
	default:
		a.report(e.Callee.Pos(), "expression is not callable")
		a.typeArgs(stack, e.Args)
		return nil
	}
}

func (a *Analyzer) typePlainCall(stack *symbols.Stack, call *ast.FunctionCall, callee *ast.IdentifierConstant) *ast.DataType {
	fn, ok := a.table.LookupFunction(callee.Token.Lexeme)
	if !ok {
		a.report(callee.Pos(), "undefined function %q", callee.Token.Lexeme)
		a.typeArgs(stack, call.Args)
		return nil
	}
	a.checkArgs(stack, call, fn.Parameters)
	return fn.ReturnType
}

func (a *Analyzer) typeMethodCall(stack *symbols.Stack, call *ast.FunctionCall, callee *ast.MemberAccess) *ast.DataType {
	ownerType := a.typeOf(stack, callee.Owner)
	if ownerType == nil {
		a.typeArgs(stack, call.Args)
		return nil
	}
	if ownerType.TypeName.Kind != token.IDENTIFIER {
		a.report(callee.Owner.Pos(), "cannot call a method on non-struct type %s", ownerType.Name())
		a.typeArgs(stack, call.Args)
		return nil
	}
	if ownerType.Dimensions != 0 {
		a.report(callee.Owner.Pos(), "arrays have no methods")
		a.typeArgs(stack, call.Args)
		return nil
	}
	fn, ok := a.table.LookupMethod(ownerType.Name(), callee.Member.Lexeme)
	if !ok {
		a.report(callee.Member.Position, "struct %q has no method %q", ownerType.Name(), callee.Member.Lexeme)
		a.typeArgs(stack, call.Args)
		return nil
	}
	a.checkArgs(stack, call, fn.Parameters)
	return fn.ReturnType
}

// checkArgs validates arity and, for each position both sides have, type
// equality between the argument and the declared parameter.
func (a *Analyzer) checkArgs(stack *symbols.Stack, call *ast.FunctionCall, params []*ast.VariableDeclarator) {
	if len(call.Args) != len(params) {
		a.report(call.Pos(), "expected %d argument(s), got %d", len(params), len(call.Args))
	}
	n := min(len(call.Args), len(params))
	for i := 0; i < n; i++ {
		argType := a.typeOf(stack, call.Args[i])
		if argType != nil && !ast.SameType(argType, params[i].Type) {
			a.report(call.Args[i].Pos(), "argument %d: expected %s, got %s", i+1, params[i].Type.Name(), argType.Name())
		}
	}
	for i := n; i < len(call.Args); i++ {
		a.typeOf(stack, call.Args[i])
	}
}

// typeArgs types every argument for its side effects (undefined-identifier
// and similar diagnostics) when the call itself cannot be resolved.
func (a *Analyzer) typeArgs(stack *symbols.Stack, args []ast.Expression) {
	for _, arg := range args {
		a.typeOf(stack, arg)
	}
}
