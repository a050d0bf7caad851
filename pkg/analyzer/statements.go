package analyzer

import (
	"github.com/xc-lang/xc/pkg/ast"
	"github.com/xc-lang/xc/pkg/symbols"
)

func (a *Analyzer) validateBody(stack *symbols.Stack, block *ast.BlockStatement) {
	for _, stmt := range block.Statements {
		a.validateStatement(stack, stmt)
	}
}

func (a *Analyzer) validateStatement(stack *symbols.Stack, stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VariableDeclarationStatement:
		a.validateVariableDeclaration(stack, s)
	case *ast.ExpressionStatement:
		a.typeOf(stack, s.Expr)
	case *ast.WhileIteration:
		a.validateWhile(stack, s)
	case *ast.ForIteration:
		a.validateFor(stack, s)
	case *ast.ConditionalStatement:
		a.validateConditional(stack, s)
	case *ast.ReturnStatement:
		a.validateReturn(stack, s)
	case *ast.BreakStatement:
		if !stack.InLoop() {
			a.report(s.Break.Position, "break outside of a loop")
		}
	case *ast.ContinueStatement:
		if !stack.InLoop() {
			a.report(s.Continue.Position, "continue outside of a loop")
		}
	case *ast.ErrorNode:
		// unreachable: see loadSymbols.
	}
}

// validateVariableDeclaration implements spec.md §4.3's variable-decl rule:
// verify the type, reject a redeclaration anywhere in the stack (not just
// the current frame — a block cannot shadow a name already visible from an
// enclosing frame), bind it, and if there is an initializer require it to
// have the declared type.
func (a *Analyzer) validateVariableDeclaration(stack *symbols.Stack, s *ast.VariableDeclarationStatement) {
	a.checkType(s.Declarator.Type)

	if !stack.Add(s.Declarator.Name.Lexeme, s.Declarator.Type) {
		a.report(s.Declarator.Name.Position, "%q is already declared", s.Declarator.Name.Lexeme)
	}

	if s.Initializer == nil {
		return
	}
	initType := a.typeOf(stack, s.Initializer)
	if initType != nil && !ast.SameType(initType, s.Declarator.Type) {
		a.report(s.Initializer.Pos(), "mismatch in variable initializer: expected %s, got %s",
			s.Declarator.Type.Name(), initType.Name())
	}
}

func (a *Analyzer) validateWhile(stack *symbols.Stack, s *ast.WhileIteration) {
	a.requireBool(stack, s.Condition, "while condition")

	stack.PushBlock()
	stack.EnterLoop()
	a.validateBody(stack, s.Body)
	stack.ExitLoop()
	stack.Pop()
}

// validateFor implements spec.md §4.3's for-loop rule: the init binding is
// validated in the enclosing frame — no new scope is pushed — so it stays
// visible after the loop (spec.md §8's `for` boundary case). The body is
// likewise validated "in the current frame".
func (a *Analyzer) validateFor(stack *symbols.Stack, s *ast.ForIteration) {
	if s.Init != nil {
		a.validateVariableDeclaration(stack, s.Init)
	}
	if s.Condition != nil {
		a.requireBool(stack, s.Condition, "for condition")
	}
	if s.Update != nil {
		a.typeOf(stack, s.Update)
	}

	stack.EnterLoop()
	a.validateBody(stack, s.Body)
	stack.ExitLoop()
}

func (a *Analyzer) validateConditional(stack *symbols.Stack, s *ast.ConditionalStatement) {
	a.requireBool(stack, s.Condition, "if condition")

	stack.PushBlock()
	a.validateBody(stack, s.Then)
	stack.Pop()

	switch elseBranch := s.Else.(type) {
	case nil:
	case *ast.ConditionalStatement:
		a.validateConditional(stack, elseBranch)
	case *ast.BlockStatement:
		stack.PushBlock()
		a.validateBody(stack, elseBranch)
		stack.Pop()
	}
}

// validateReturn implements spec.md §4.3's return rule: resolve the
// enclosing function via the stack, then require void-to-void or a type
// match between the declared return type and the value's type.
func (a *Analyzer) validateReturn(stack *symbols.Stack, s *ast.ReturnStatement) {
	fn, ok := stack.EnclosingFunction()
	if !ok {
		a.report(s.Return.Position, "return outside of a function")
		if s.Value != nil {
			a.typeOf(stack, s.Value)
		}
		return
	}

	if fn.ReturnType.IsVoid() && s.Value == nil {
		return
	}
	if fn.ReturnType.IsVoid() && s.Value != nil {
		a.report(s.Value.Pos(), "mismatch in return type: %s returns void", fn.Name.Lexeme)
		a.typeOf(stack, s.Value)
		return
	}
	if !fn.ReturnType.IsVoid() && s.Value == nil {
		a.report(s.Return.Position, "mismatch in return type: %s returns %s", fn.Name.Lexeme, fn.ReturnType.Name())
		return
	}

	valueType := a.typeOf(stack, s.Value)
	if valueType != nil && !ast.SameType(valueType, fn.ReturnType) {
		a.report(s.Value.Pos(), "mismatch in return type: expected %s, got %s", fn.ReturnType.Name(), valueType.Name())
	}
}

// requireBool type-checks cond and reports an error if it is not bool,
// labeling the diagnostic with what, e.g. "while condition".
func (a *Analyzer) requireBool(stack *symbols.Stack, cond ast.Expression, what string) {
	condType := a.typeOf(stack, cond)
	if condType != nil && !condType.IsBool() {
		a.report(cond.Pos(), "%s must be bool, got %s", what, condType.Name())
	}
}
