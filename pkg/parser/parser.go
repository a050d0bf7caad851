// Package parser implements the single-pass recursive-descent parser of
// spec.md §4.2: cursor primitives over the token stream, a
// precedence-climbing expression parser, and an ErrorNode-chaining error
// model with synchronizing recovery at declaration, block, and struct-body
// boundaries.
//
// The cursor design (current/peek/advance over a materialized token slice,
// snapshot/restore for backtracking) is grounded on
// you-not-fish-yoru/internal/syntax/parser.go; the error-accumulation model
// (build a private `errors` accumulator per composite rule, chain failed
// subproductions into it, discard the partial parent if anything failed) is
// the teacher's own errors.ErrorSet pattern (rhino1998-aeon/pkg/compiler
// /errors.go) applied to AST nodes instead of a single aggregated error.
package parser

import (
	"github.com/xc-lang/xc/pkg/ast"
	"github.com/xc-lang/xc/pkg/diagnostics"
	"github.com/xc-lang/xc/pkg/token"
)

// Parser consumes a token stream and produces an AST rooted at a Program.
type Parser struct {
	tokens   []token.Token
	pos      int
	sink     *diagnostics.Sink
	hasError bool
}

// New constructs a Parser over tokens, which must end in an EOF token (the
// Tokenizer guarantees this).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens, sink: diagnostics.NewSink()}
}

// Parse runs the parser to completion, returning the Program and the
// accumulated syntactic diagnostics. A declaration whose production failed
// is reported to the sink and left out of the Program, so the Program
// itself never holds an ErrorNode. The stage has failed iff
// sink.HasErrors() (spec.md §2); that is also p.hasError's final value.
func Parse(tokens []token.Token) (*ast.Program, *diagnostics.Sink) {
	p := New(tokens)
	return p.parseProgram(), p.sink
}

// --- cursor primitives ---

func (p *Parser) current() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) token.Token {
	i := p.pos + offset
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[i]
}

func (p *Parser) atEnd() bool {
	return p.current().Kind == token.EOF
}

func (p *Parser) check(k token.Kind) bool {
	return p.current().Kind == k
}

func (p *Parser) advance() token.Token {
	tok := p.current()
	if !p.atEnd() {
		p.pos++
	}
	return tok
}

// match advances and returns true iff the current token has kind k.
func (p *Parser) match(k token.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it has kind k; otherwise it returns
// an ErrorNode describing what was expected instead.
func (p *Parser) expect(k token.Kind, context string) (token.Token, *ast.ErrorNode) {
	if p.check(k) {
		return p.advance(), nil
	}
	return token.Token{}, p.newError(
		"expected "+token.Lexeme(k)+" "+context+", found "+describeToken(p.current()),
		p.current().Position,
	)
}

func describeToken(t token.Token) string {
	if t.Kind == token.EOF {
		return "end of file"
	}
	return "'" + t.Lexeme + "'"
}

// snapshot/restore back the cursor up for tryParse's backtracking.
func (p *Parser) snapshot() int   { return p.pos }
func (p *Parser) restore(pos int) { p.pos = pos }

// newError builds an ErrorNode without recording it in the diagnostic sink.
// Only reportError, called at a top-level recovery point, actually flips
// hasError and writes to the sink (spec.md §4.2: "A sentinel has_error flag
// on the parser is set when reportError is actually invoked at the top
// level").
func (p *Parser) newError(reason string, occurrence token.Position) *ast.ErrorNode {
	return ast.NewErrorNode(reason, occurrence)
}

// reportError surfaces err and every error chained onto it to the
// diagnostic sink, and marks the parser as having failed.
func (p *Parser) reportError(err *ast.ErrorNode) {
	if err == nil {
		return
	}
	p.hasError = true
	for _, e := range err.All() {
		p.sink.Add(e.Occurrence, 1, "%s", e.Reason)
	}
}

// synchronizeTo advances the cursor until the current token has one of the
// given kinds, or end of file.
func (p *Parser) synchronizeTo(kinds ...token.Kind) {
	for !p.atEnd() {
		for _, k := range kinds {
			if p.check(k) {
				return
			}
		}
		p.advance()
	}
}

// tryParse is the backtracking primitive of spec.md §4.2: it snapshots the
// cursor, tries each alternative in order, and resets the cursor after
// every failed attempt. If every alternative fails it returns the
// ErrorNode whose Occurrence is furthest past the snapshot (the most
// specific diagnostic), or a generic error at the snapshot if none
// progressed at all.
func tryParse[T ast.Node](p *Parser, msg string, rules ...func() (T, *ast.ErrorNode)) (T, *ast.ErrorNode) {
	start := p.snapshot()

	var best *ast.ErrorNode
	bestPos := p.current().Position.Index

	for _, rule := range rules {
		p.restore(start)
		result, errNode := rule()
		if errNode == nil {
			return result, nil
		}
		if errNode.Occurrence.Index > bestPos {
			best = errNode
			bestPos = errNode.Occurrence.Index
		}
	}

	p.restore(start)
	var zero T
	if best != nil {
		return zero, best
	}
	return zero, p.newError(msg, p.current().Position)
}

// --- Program / Declaration ---

func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{}

	for !p.atEnd() {
		decl, err := p.parseDeclaration()
		if err != nil {
			p.reportError(err)
			p.synchronizeTo(token.SEMICOLON, token.RBRACE)
			if p.check(token.SEMICOLON) || p.check(token.RBRACE) {
				p.advance()
			}
			continue
		}
		prog.Declarations = append(prog.Declarations, decl)
	}

	return prog
}

func (p *Parser) parseDeclaration() (ast.Declaration, *ast.ErrorNode) {
	if p.check(token.STRUCT) {
		return p.parseStructure()
	}
	return p.parseFunction()
}

func (p *Parser) parseStructure() (*ast.Structure, *ast.ErrorNode) {
	p.advance() // 'struct'

	name, err := p.expect(token.IDENTIFIER, "after 'struct'")
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.LBRACE, "to open struct body"); err != nil {
		return nil, err
	}

	var members []*ast.VariableDeclarator
	var chain *ast.ErrorNode

	for !p.check(token.RBRACE) && !p.atEnd() {
		member, err := p.parseVariableDeclarator()
		if err != nil {
			if chain == nil {
				chain = err
			} else {
				chain.Chain(err)
			}
			p.synchronizeTo(token.SEMICOLON, token.RBRACE)
			if p.check(token.SEMICOLON) {
				p.advance()
			}
			continue
		}

		if _, semiErr := p.expect(token.SEMICOLON, "after struct member"); semiErr != nil {
			if chain == nil {
				chain = semiErr
			} else {
				chain.Chain(semiErr)
			}
			p.synchronizeTo(token.SEMICOLON, token.RBRACE)
			if p.check(token.SEMICOLON) {
				p.advance()
			}
			continue
		}

		members = append(members, member)
	}

	if _, err := p.expect(token.RBRACE, "to close struct body"); err != nil {
		if chain == nil {
			chain = err
		} else {
			chain.Chain(err)
		}
	}

	if chain != nil {
		return nil, chain
	}

	return &ast.Structure{Name: name, Members: members}, nil
}

func (p *Parser) parseFunction() (*ast.Function, *ast.ErrorNode) {
	var owner token.Token
	if p.check(token.IDENTIFIER) && p.peekAt(1).Kind == token.COLON_COLON {
		owner = p.advance()
		p.advance() // '::'
	}

	returnType, err := p.parseDataType()
	if err != nil {
		return nil, err
	}

	if owner.Lexeme == "" && p.check(token.IDENTIFIER) && p.peekAt(1).Kind == token.COLON_COLON {
		owner = p.advance()
		p.advance() // '::'
	}

	name, err := p.expect(token.IDENTIFIER, "as function name")
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.LPAREN, "to open parameter list"); err != nil {
		return nil, err
	}

	var params []*ast.VariableDeclarator
	if p.check(token.VOID) && p.peekAt(1).Kind == token.RPAREN {
		p.advance() // 'void'
	} else if !p.check(token.RPAREN) {
		params, err = p.parseParameterList()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.RPAREN, "to close parameter list"); err != nil {
		return nil, err
	}

	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}

	return &ast.Function{
		Owner:      owner,
		ReturnType: returnType,
		Name:       name,
		Parameters: params,
		Body:       body,
	}, nil
}

func (p *Parser) parseParameterList() ([]*ast.VariableDeclarator, *ast.ErrorNode) {
	var params []*ast.VariableDeclarator

	first, err := p.parseVariableDeclarator()
	if err != nil {
		return nil, err
	}
	params = append(params, first)

	for p.match(token.COMMA) {
		next, err := p.parseVariableDeclarator()
		if err != nil {
			return nil, err
		}
		params = append(params, next)
	}

	return params, nil
}

func (p *Parser) parseVariableDeclarator() (*ast.VariableDeclarator, *ast.ErrorNode) {
	dt, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENTIFIER, "in declaration")
	if err != nil {
		return nil, err
	}
	return &ast.VariableDeclarator{Type: dt, Name: name}, nil
}

// parseDataType is `'&'? ( IDENT | primitive ) ( '[' ']' )*` (spec.md §4.2).
func (p *Parser) parseDataType() (*ast.DataType, *ast.ErrorNode) {
	isRef := p.match(token.AMP)

	var nameTok token.Token
	switch {
	case p.check(token.IDENTIFIER), token.IsPrimitiveType(p.current().Kind):
		nameTok = p.advance()
	default:
		return nil, p.newError("expected a type name, found "+describeToken(p.current()), p.current().Position)
	}

	var dims uint32
	for p.check(token.LBRACKET) && p.peekAt(1).Kind == token.RBRACKET {
		p.advance()
		p.advance()
		dims++
	}

	return &ast.DataType{IsReference: isRef, TypeName: nameTok, Dimensions: dims}, nil
}
