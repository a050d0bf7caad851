package emitter

import "github.com/xc-lang/xc/pkg/ast"

func emitBlockBody(w *writer, block *ast.BlockStatement) {
	for _, stmt := range block.Statements {
		emitStatement(w, stmt)
	}
}

func emitStatement(w *writer, stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		w.line("%s;", emitExpr(s.Expr))
	case *ast.VariableDeclarationStatement:
		emitVariableDeclaration(w, s)
	case *ast.ConditionalStatement:
		emitConditional(w, s)
	case *ast.WhileIteration:
		emitWhile(w, s)
	case *ast.ForIteration:
		emitFor(w, s)
	case *ast.ReturnStatement:
		if s.Value != nil {
			w.line("return %s;", emitExpr(s.Value))
		} else {
			w.line("return;")
		}
	case *ast.BreakStatement:
		w.line("break;")
	case *ast.ContinueStatement:
		w.line("continue;")
	}
}

func emitVariableDeclaration(w *writer, s *ast.VariableDeclarationStatement) {
	if s.Initializer != nil {
		w.line("%s %s = %s;", cType(s.Declarator.Type), s.Declarator.Name.Lexeme, emitExpr(s.Initializer))
		return
	}
	w.line("%s %s;", cType(s.Declarator.Type), s.Declarator.Name.Lexeme)
}

func emitWhile(w *writer, s *ast.WhileIteration) {
	w.line("while (%s) {", emitExpr(s.Condition))
	w.indent++
	emitBlockBody(w, s.Body)
	w.indent--
	w.line("}")
}

// emitFor translates each of the three optional for-loop clauses inline,
// leaving the matching slot blank when the clause was omitted (spec.md §8:
// `for (;;) {}`).
func emitFor(w *writer, s *ast.ForIteration) {
	var init, cond, update string
	if s.Init != nil {
		init = inlineVariableDeclaration(s.Init)
	}
	if s.Condition != nil {
		cond = emitExpr(s.Condition)
	}
	if s.Update != nil {
		update = emitExpr(s.Update)
	}

	w.line("for (%s; %s; %s) {", init, cond, update)
	w.indent++
	emitBlockBody(w, s.Body)
	w.indent--
	w.line("}")
}

func inlineVariableDeclaration(s *ast.VariableDeclarationStatement) string {
	if s.Initializer != nil {
		return cType(s.Declarator.Type) + " " + s.Declarator.Name.Lexeme + " = " + emitExpr(s.Initializer)
	}
	return cType(s.Declarator.Type) + " " + s.Declarator.Name.Lexeme
}

// emitConditional and emitElse together translate an if/else-if/else chain
// from its recursive AST shape (spec.md §4.2: Else is either another
// ConditionalStatement or a BlockStatement) into C's own chained form.
func emitConditional(w *writer, s *ast.ConditionalStatement) {
	w.line("if (%s) {", emitExpr(s.Condition))
	w.indent++
	emitBlockBody(w, s.Then)
	w.indent--
	emitElse(w, s.Else)
}

func emitElse(w *writer, elseBranch ast.Statement) {
	switch e := elseBranch.(type) {
	case nil:
		w.line("}")
	case *ast.ConditionalStatement:
		w.line("} else if (%s) {", emitExpr(e.Condition))
		w.indent++
		emitBlockBody(w, e.Then)
		w.indent--
		emitElse(w, e.Else)
	case *ast.BlockStatement:
		w.line("} else {")
		w.indent++
		emitBlockBody(w, e)
		w.indent--
		w.line("}")
	}
}
