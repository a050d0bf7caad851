package ast

import "github.com/xc-lang/xc/pkg/token"

// ErrorNode substitutes for any Declaration, Statement, or Expression
// position when a production rule fails (spec.md §3.2, §4.2). It carries
// the reason, the source position at which the error was detected, and chains
// any additional errors found while the same rule was running, so one
// composite production can surface every failure a single subproduction
// call uncovered rather than only the first.
type ErrorNode struct {
	exprType

	Reason     string
	Occurrence token.Position
	Additional []*ErrorNode
}

func NewErrorNode(reason string, occurrence token.Position) *ErrorNode {
	return &ErrorNode{Reason: reason, Occurrence: occurrence}
}

// Chain appends other's own node plus its already-chained Additional
// errors, flattening nested chains the way the parser's composite rules
// accumulate failures from more than one subproduction.
func (e *ErrorNode) Chain(other *ErrorNode) {
	if other == nil {
		return
	}
	e.Additional = append(e.Additional, other)
	e.Additional = append(e.Additional, other.Additional...)
	other.Additional = nil
}

// All returns e and every chained additional error, in the order they were
// recorded.
func (e *ErrorNode) All() []*ErrorNode {
	if e == nil {
		return nil
	}
	all := make([]*ErrorNode, 0, 1+len(e.Additional))
	all = append(all, e)
	all = append(all, e.Additional...)
	return all
}

func (e *ErrorNode) Pos() token.Position { return e.Occurrence }

func (e *ErrorNode) declarationNode() {}
func (e *ErrorNode) statementNode()   {}
func (e *ErrorNode) expressionNode()  {}

var (
	_ Declaration = (*ErrorNode)(nil)
	_ Statement   = (*ErrorNode)(nil)
	_ Expression  = (*ErrorNode)(nil)
)
