package parser

import (
	"github.com/xc-lang/xc/pkg/ast"
	"github.com/xc-lang/xc/pkg/token"
)

// The parse*-named functions below implement the precedence ladder of
// spec.md §4.2, lowest to highest: assignment, boolean-or, boolean-xor,
// boolean-and, bitwise-or, bitwise-xor, bitwise-and, equality, relational,
// shift, additive, multiplicative, prefix, postfix, primary. Every level is
// left-associative per spec.md, implemented uniformly as a left-fold loop
// (including assignment, which spec.md explicitly places in the
// left-associative list alongside every other operator).

func (p *Parser) parseExpression() (ast.Expression, *ast.ErrorNode) {
	return p.parseAssignment()
}

func (p *Parser) leftAssoc(next func() (ast.Expression, *ast.ErrorNode), kinds ...token.Kind) (ast.Expression, *ast.ErrorNode) {
	left, err := next()
	if err != nil {
		return nil, err
	}

	for isOneOf(p.current().Kind, kinds) {
		op := p.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Operator: op, Right: right}
	}

	return left, nil
}

func isOneOf(k token.Kind, kinds []token.Kind) bool {
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

func (p *Parser) parseAssignment() (ast.Expression, *ast.ErrorNode) {
	return p.leftAssoc(p.parseBooleanOr,
		token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN,
		token.SLASH_ASSIGN, token.PERCENT_ASSIGN, token.AMP_ASSIGN,
		token.PIPE_ASSIGN, token.CARET_ASSIGN, token.SHL_ASSIGN, token.SHR_ASSIGN,
	)
}

func (p *Parser) parseBooleanOr() (ast.Expression, *ast.ErrorNode) {
	return p.leftAssoc(p.parseBooleanXor, token.OR_OR)
}

func (p *Parser) parseBooleanXor() (ast.Expression, *ast.ErrorNode) {
	return p.leftAssoc(p.parseBooleanAnd, token.BOOLEAN_XOR)
}

func (p *Parser) parseBooleanAnd() (ast.Expression, *ast.ErrorNode) {
	return p.leftAssoc(p.parseBitwiseOr, token.AND_AND)
}

func (p *Parser) parseBitwiseOr() (ast.Expression, *ast.ErrorNode) {
	return p.leftAssoc(p.parseBitwiseXor, token.PIPE)
}

func (p *Parser) parseBitwiseXor() (ast.Expression, *ast.ErrorNode) {
	return p.leftAssoc(p.parseBitwiseAnd, token.CARET)
}

func (p *Parser) parseBitwiseAnd() (ast.Expression, *ast.ErrorNode) {
	return p.leftAssoc(p.parseEquality, token.AMP)
}

func (p *Parser) parseEquality() (ast.Expression, *ast.ErrorNode) {
	return p.leftAssoc(p.parseRelational, token.EQUAL_EQUAL, token.BANG_EQUAL)
}

func (p *Parser) parseRelational() (ast.Expression, *ast.ErrorNode) {
	return p.leftAssoc(p.parseShift, token.LESS, token.GREATER, token.LESS_EQUAL, token.GREATER_EQUAL)
}

func (p *Parser) parseShift() (ast.Expression, *ast.ErrorNode) {
	return p.leftAssoc(p.parseAdditive, token.SHL, token.SHR)
}

func (p *Parser) parseAdditive() (ast.Expression, *ast.ErrorNode) {
	return p.leftAssoc(p.parseMultiplicative, token.PLUS, token.MINUS)
}

func (p *Parser) parseMultiplicative() (ast.Expression, *ast.ErrorNode) {
	return p.leftAssoc(p.parsePrefix, token.STAR, token.SLASH, token.PERCENT)
}

var prefixOperators = []token.Kind{
	token.INCREMENT, token.DECREMENT, token.MINUS, token.BANG, token.TILDE, token.AMP,
}

func (p *Parser) parsePrefix() (ast.Expression, *ast.ErrorNode) {
	if isOneOf(p.current().Kind, prefixOperators) {
		op := p.advance()
		operand, err := p.parsePrefix()
		if err != nil {
			return nil, err
		}
		return &ast.PrefixUnary{Operator: op, Operand: operand}, nil
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() (ast.Expression, *ast.ErrorNode) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.current().Kind {
		case token.DOT:
			p.advance()
			name, err := p.expect(token.IDENTIFIER, "after '.'")
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberAccess{Owner: expr, Member: name}
		case token.LPAREN:
			p.advance()
			args, err := p.parseExpressionList()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RPAREN, "to close call arguments"); err != nil {
				return nil, err
			}
			expr = &ast.FunctionCall{Callee: expr, Args: args}
		case token.LBRACKET:
			p.advance()
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET, "to close array index"); err != nil {
				return nil, err
			}
			expr = &ast.ArrayAccess{Array: expr, Index: index}
		case token.INCREMENT, token.DECREMENT:
			op := p.advance()
			expr = &ast.PostfixUnary{Operand: expr, Operator: op}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseExpressionList() ([]ast.Expression, *ast.ErrorNode) {
	if p.check(token.RPAREN) {
		return nil, nil
	}

	var exprs []ast.Expression

	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	exprs = append(exprs, first)

	for p.match(token.COMMA) {
		next, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, next)
	}

	return exprs, nil
}

func (p *Parser) parsePrimary() (ast.Expression, *ast.ErrorNode) {
	switch p.current().Kind {
	case token.LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, "to close grouped expression"); err != nil {
			return nil, err
		}
		return expr, nil
	case token.TRUE, token.FALSE, token.NULL:
		tok := p.advance()
		return &ast.LiteralExpression{Token: tok}, nil
	case token.INTEGER_LITERAL, token.FLOAT_LITERAL:
		tok := p.advance()
		return &ast.NumberConstant{Token: tok}, nil
	case token.IDENTIFIER:
		tok := p.advance()
		return &ast.IdentifierConstant{Token: tok}, nil
	default:
		return nil, p.newError("expected an expression, found "+describeToken(p.current()), p.current().Position)
	}
}
