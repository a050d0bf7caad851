package ast

import "github.com/xc-lang/xc/pkg/token"

// BlockStatement is `'{' Statement* '}'`.
type BlockStatement struct {
	LBrace     token.Token
	Statements []Statement
}

func (b *BlockStatement) Pos() token.Position { return b.LBrace.Position }
func (b *BlockStatement) statementNode()      {}

// ExpressionStatement is a bare expression followed by `;`.
type ExpressionStatement struct {
	Expr Expression
}

func (s *ExpressionStatement) Pos() token.Position { return s.Expr.Pos() }
func (s *ExpressionStatement) statementNode()      {}

// VariableDeclarationStatement is `DataType IDENT ('=' Expression)? ';'`.
type VariableDeclarationStatement struct {
	Declarator  *VariableDeclarator
	Initializer Expression // nil when there is no initializer
}

func (s *VariableDeclarationStatement) Pos() token.Position { return s.Declarator.Pos() }
func (s *VariableDeclarationStatement) statementNode()      {}

// ConditionalStatement is `'if' '(' Expression ')' BlockStatement
// ('else' (ConditionalStatement|BlockStatement))?`.
type ConditionalStatement struct {
	If        token.Token
	Condition Expression
	Then      *BlockStatement
	Else      Statement // *BlockStatement, *ConditionalStatement, or nil
}

func (s *ConditionalStatement) Pos() token.Position { return s.If.Position }
func (s *ConditionalStatement) statementNode()      {}

// WhileIteration is `'while' '(' Expression ')' BlockStatement`.
type WhileIteration struct {
	While     token.Token
	Condition Expression
	Body      *BlockStatement
}

func (s *WhileIteration) Pos() token.Position { return s.While.Position }
func (s *WhileIteration) statementNode()      {}

// ForIteration is `'for' '(' Init? ';' Condition? ';' Update? ')'
// BlockStatement`, each clause optional (spec.md §8: `for (;;) {}` parses
// with all three empty).
type ForIteration struct {
	For       token.Token
	Init      *VariableDeclarationStatement // nil if omitted
	Condition Expression                    // nil if omitted
	Update    Expression                    // nil if omitted
	Body      *BlockStatement
}

func (s *ForIteration) Pos() token.Position { return s.For.Position }
func (s *ForIteration) statementNode()      {}

// ReturnStatement is `'return' Expression? ';'`.
type ReturnStatement struct {
	Return token.Token
	Value  Expression // nil for a bare `return;`
}

func (s *ReturnStatement) Pos() token.Position { return s.Return.Position }
func (s *ReturnStatement) statementNode()      {}

// BreakStatement is `'break' ';'`.
type BreakStatement struct {
	Break token.Token
}

func (s *BreakStatement) Pos() token.Position { return s.Break.Position }
func (s *BreakStatement) statementNode()      {}

// ContinueStatement is `'continue' ';'`.
type ContinueStatement struct {
	Continue token.Token
}

func (s *ContinueStatement) Pos() token.Position { return s.Continue.Position }
func (s *ContinueStatement) statementNode()      {}

var (
	_ Statement = (*BlockStatement)(nil)
	_ Statement = (*ExpressionStatement)(nil)
	_ Statement = (*VariableDeclarationStatement)(nil)
	_ Statement = (*ConditionalStatement)(nil)
	_ Statement = (*WhileIteration)(nil)
	_ Statement = (*ForIteration)(nil)
	_ Statement = (*ReturnStatement)(nil)
	_ Statement = (*BreakStatement)(nil)
	_ Statement = (*ContinueStatement)(nil)
)
