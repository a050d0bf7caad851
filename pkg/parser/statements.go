package parser

import (
	"github.com/xc-lang/xc/pkg/ast"
	"github.com/xc-lang/xc/pkg/token"
)

// parseBlockStatement is `'{' Statement* '}'`. Recovery resynchronizes to
// the closing '}' (spec.md §4.2: "Block statements recover by consuming up
// to the closing }"), so one malformed statement does not poison the rest
// of the function.
func (p *Parser) parseBlockStatement() (*ast.BlockStatement, *ast.ErrorNode) {
	lbrace, err := p.expect(token.LBRACE, "to open block")
	if err != nil {
		return nil, err
	}

	block := &ast.BlockStatement{LBrace: lbrace}

	for !p.check(token.RBRACE) && !p.atEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			p.reportError(err)
			p.synchronizeTo(token.RBRACE)
			break
		}
		block.Statements = append(block.Statements, stmt)
	}

	if _, err := p.expect(token.RBRACE, "to close block"); err != nil {
		return block, err
	}

	return block, nil
}

func (p *Parser) parseStatement() (ast.Statement, *ast.ErrorNode) {
	switch p.current().Kind {
	case token.IF:
		return p.parseConditional()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.RETURN:
		return p.parseReturn()
	case token.BREAK:
		return p.parseBreak()
	case token.CONTINUE:
		return p.parseContinue()
	default:
		return tryParse(p, "expected a statement",
			func() (ast.Statement, *ast.ErrorNode) { return p.parseVariableDeclarationStatement() },
			func() (ast.Statement, *ast.ErrorNode) { return p.parseExpressionStatement() },
		)
	}
}

func (p *Parser) parseVariableDeclarationStatement() (ast.Statement, *ast.ErrorNode) {
	decl, err := p.parseVariableDeclarator()
	if err != nil {
		return nil, err
	}

	var init ast.Expression
	if p.match(token.ASSIGN) {
		init, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.SEMICOLON, "after variable declaration"); err != nil {
		return nil, err
	}

	return &ast.VariableDeclarationStatement{Declarator: decl, Initializer: init}, nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, *ast.ErrorNode) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, "after expression"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expr: expr}, nil
}

func (p *Parser) parseConditional() (ast.Statement, *ast.ErrorNode) {
	ifTok := p.advance()

	if _, err := p.expect(token.LPAREN, "after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, "after if condition"); err != nil {
		return nil, err
	}

	then, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}

	stmt := &ast.ConditionalStatement{If: ifTok, Condition: cond, Then: then}

	if p.match(token.ELSE) {
		if p.check(token.IF) {
			elseBranch, err := p.parseConditional()
			if err != nil {
				return nil, err
			}
			stmt.Else = elseBranch
		} else {
			elseBlock, err := p.parseBlockStatement()
			if err != nil {
				return nil, err
			}
			stmt.Else = elseBlock
		}
	}

	return stmt, nil
}

func (p *Parser) parseWhile() (ast.Statement, *ast.ErrorNode) {
	whileTok := p.advance()

	if _, err := p.expect(token.LPAREN, "after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, "after while condition"); err != nil {
		return nil, err
	}

	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}

	return &ast.WhileIteration{While: whileTok, Condition: cond, Body: body}, nil
}

// parseFor is `'for' '(' Init? ';' Condition? ';' Update? ')' BlockStatement`
// with every clause optional (spec.md §8: `for (;;) {}` is valid).
func (p *Parser) parseFor() (ast.Statement, *ast.ErrorNode) {
	forTok := p.advance()

	if _, err := p.expect(token.LPAREN, "after 'for'"); err != nil {
		return nil, err
	}

	stmt := &ast.ForIteration{For: forTok}

	if !p.check(token.SEMICOLON) {
		decl, err := p.parseVariableDeclarator()
		if err != nil {
			return nil, err
		}
		var init ast.Expression
		if p.match(token.ASSIGN) {
			init, err = p.parseExpression()
			if err != nil {
				return nil, err
			}
		}
		stmt.Init = &ast.VariableDeclarationStatement{Declarator: decl, Initializer: init}
	}
	if _, err := p.expect(token.SEMICOLON, "after for-init"); err != nil {
		return nil, err
	}

	if !p.check(token.SEMICOLON) {
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Condition = cond
	}
	if _, err := p.expect(token.SEMICOLON, "after for-condition"); err != nil {
		return nil, err
	}

	if !p.check(token.RPAREN) {
		update, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Update = update
	}
	if _, err := p.expect(token.RPAREN, "after for-update"); err != nil {
		return nil, err
	}

	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	stmt.Body = body

	return stmt, nil
}

func (p *Parser) parseReturn() (ast.Statement, *ast.ErrorNode) {
	returnTok := p.advance()

	var value ast.Expression
	if !p.check(token.SEMICOLON) {
		v, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		value = v
	}

	if _, err := p.expect(token.SEMICOLON, "after return statement"); err != nil {
		return nil, err
	}

	return &ast.ReturnStatement{Return: returnTok, Value: value}, nil
}

func (p *Parser) parseBreak() (ast.Statement, *ast.ErrorNode) {
	breakTok := p.advance()
	if _, err := p.expect(token.SEMICOLON, "after 'break'"); err != nil {
		return nil, err
	}
	return &ast.BreakStatement{Break: breakTok}, nil
}

func (p *Parser) parseContinue() (ast.Statement, *ast.ErrorNode) {
	continueTok := p.advance()
	if _, err := p.expect(token.SEMICOLON, "after 'continue'"); err != nil {
		return nil, err
	}
	return &ast.ContinueStatement{Continue: continueTok}, nil
}
