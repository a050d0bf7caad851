// Package lexer implements the Tokenizer of spec.md §4.1: a head/tail
// cursor scanner that turns source text into a token stream terminated by a
// single EOF token, accumulating lexical diagnostics along the way.
//
// The cursor design (a rune-at-a-time `next`/`peek` pair, line/col reset on
// '\n', an error callback instead of a panic) is grounded on
// you-not-fish-yoru/internal/syntax/source.go's `source.nextch`, adapted
// from a streaming byte reader to an in-memory rune slice since spec.md
// hands the lexer a fully materialized source.SourceFile rather than an
// io.Reader.
package lexer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/xc-lang/xc/pkg/diagnostics"
	"github.com/xc-lang/xc/pkg/source"
	"github.com/xc-lang/xc/pkg/token"
)

// Lexer scans a SourceFile into a token stream.
type Lexer struct {
	filename string
	runes    []rune

	// head: position of the next unread character.
	pos  int
	line int
	col  int

	// tail: position where the current lexeme began.
	tail     int
	tailLine int
	tailCol  int

	lexeme strings.Builder
	sink   *diagnostics.Sink
}

// New constructs a Lexer over sf's full text.
func New(sf *source.SourceFile) *Lexer {
	l := &Lexer{
		filename: sf.Name,
		runes:    []rune(sf.String()),
		line:     1,
		col:      1,
		tailLine: 1,
		tailCol:  1,
		sink:     diagnostics.NewSink(),
	}
	return l
}

// Tokenize scans the entire source and returns the resulting token stream
// (always EOF-terminated) along with any lexical diagnostics. The stage has
// failed iff sink.HasErrors() is true (spec.md §2).
func (l *Lexer) Tokenize() ([]token.Token, *diagnostics.Sink) {
	var tokens []token.Token

	for {
		l.skipTrivia()
		l.snapTail()

		if l.atEnd() {
			tokens = append(tokens, token.Token{Position: l.tailPos(), Kind: token.EOF, Lexeme: ""})
			break
		}

		tok, ok := l.scanOne()
		if ok {
			tokens = append(tokens, tok)
		}
	}

	return tokens, l.sink
}

// --- cursor primitives ---

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.runes)
}

func (l *Lexer) peek() rune {
	if l.atEnd() {
		return 0
	}
	return l.runes[l.pos]
}

func (l *Lexer) peekAt(offset int) rune {
	i := l.pos + offset
	if i < 0 || i >= len(l.runes) {
		return 0
	}
	return l.runes[i]
}

// next advances head by one character, tracking line/col and appending to
// the lexeme buffer.
func (l *Lexer) next() rune {
	ch := l.runes[l.pos]
	l.pos++
	l.lexeme.WriteRune(ch)
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

// snapTail moves tail to head, discarding any accumulated lexeme text. Used
// between tokens and after skipping trivia.
func (l *Lexer) snapTail() {
	l.tail = l.pos
	l.tailLine = l.line
	l.tailCol = l.col
	l.lexeme.Reset()
}

func (l *Lexer) tailPos() token.Position {
	return token.Position{Filename: l.filename, Line: l.tailLine, Column: l.tailCol, Index: l.tail}
}

// consume clears the lexeme buffer and snaps tail to head, returning the
// token that was just scanned.
func (l *Lexer) consume(kind token.Kind) token.Token {
	tok := token.Token{Position: l.tailPos(), Kind: kind, Lexeme: l.lexeme.String()}
	l.snapTail()
	return tok
}

func (l *Lexer) errorf(format string, args ...any) {
	l.sink.Add(l.tailPos(), max(l.lexeme.Len(), 1), format, args...)
}

// --- trivia ---

func (l *Lexer) skipTrivia() {
	for {
		switch {
		case unicode.IsSpace(l.peek()):
			l.pos++
			if l.runes[l.pos-1] == '\n' {
				l.line++
				l.col = 1
			} else {
				l.col++
			}
		case l.peek() == '/' && l.peekAt(1) == '/':
			for !l.atEnd() && l.peek() != '\n' {
				l.pos++
				l.col++
			}
		case l.peek() == '/' && l.peekAt(1) == '*':
			startLine, startCol, startPos := l.line, l.col, l.pos
			l.pos += 2
			l.col += 2
			closed := false
			for !l.atEnd() {
				if l.peek() == '*' && l.peekAt(1) == '/' {
					l.pos += 2
					l.col += 2
					closed = true
					break
				}
				if l.peek() == '\n' {
					l.line++
					l.col = 1
				} else {
					l.col++
				}
				l.pos++
			}
			if !closed {
				l.sink.Add(token.Position{Filename: l.filename, Line: startLine, Column: startCol, Index: startPos}, 2, "unterminated multi-line comment")
			}
		default:
			return
		}
	}
}

// --- dispatch ---

var singleCharPunct = map[rune]token.Kind{
	'(': token.LPAREN, ')': token.RPAREN,
	'[': token.LBRACKET, ']': token.RBRACKET,
	'{': token.LBRACE, '}': token.RBRACE,
	';': token.SEMICOLON, ',': token.COMMA, '.': token.DOT,
	'~': token.TILDE,
}

func (l *Lexer) scanOne() (token.Token, bool) {
	ch := l.peek()

	if kind, ok := singleCharPunct[ch]; ok {
		l.next()
		return l.consume(kind), true
	}

	switch {
	case ch == ':':
		l.next()
		if l.peek() == ':' {
			l.next()
			return l.consume(token.COLON_COLON), true
		}
		return l.consume(token.COLON), true
	case ch == '=':
		l.next()
		if l.peek() == '=' {
			l.next()
			return l.consume(token.EQUAL_EQUAL), true
		}
		return l.consume(token.ASSIGN), true
	case ch == '+':
		l.next()
		switch l.peek() {
		case '=':
			l.next()
			return l.consume(token.PLUS_ASSIGN), true
		case '+':
			l.next()
			return l.consume(token.INCREMENT), true
		default:
			return l.consume(token.PLUS), true
		}
	case ch == '-':
		l.next()
		switch l.peek() {
		case '=':
			l.next()
			return l.consume(token.MINUS_ASSIGN), true
		case '-':
			l.next()
			return l.consume(token.DECREMENT), true
		default:
			return l.consume(token.MINUS), true
		}
	case ch == '*':
		l.next()
		if l.peek() == '=' {
			l.next()
			return l.consume(token.STAR_ASSIGN), true
		}
		return l.consume(token.STAR), true
	case ch == '/':
		l.next()
		if l.peek() == '=' {
			l.next()
			return l.consume(token.SLASH_ASSIGN), true
		}
		return l.consume(token.SLASH), true
	case ch == '%':
		l.next()
		if l.peek() == '=' {
			l.next()
			return l.consume(token.PERCENT_ASSIGN), true
		}
		return l.consume(token.PERCENT), true
	case ch == '&':
		l.next()
		switch l.peek() {
		case '=':
			l.next()
			return l.consume(token.AMP_ASSIGN), true
		case '&':
			l.next()
			return l.consume(token.AND_AND), true
		default:
			return l.consume(token.AMP), true
		}
	case ch == '^':
		l.next()
		switch l.peek() {
		case '=':
			l.next()
			return l.consume(token.CARET_ASSIGN), true
		case '^':
			l.next()
			return l.consume(token.BOOLEAN_XOR), true
		default:
			return l.consume(token.CARET), true
		}
	case ch == '|':
		l.next()
		switch l.peek() {
		case '=':
			l.next()
			return l.consume(token.PIPE_ASSIGN), true
		case '|':
			l.next()
			return l.consume(token.OR_OR), true
		default:
			return l.consume(token.PIPE), true
		}
	case ch == '<':
		l.next()
		switch l.peek() {
		case '=':
			l.next()
			return l.consume(token.LESS_EQUAL), true
		case '<':
			l.next()
			if l.peek() == '=' {
				l.next()
				return l.consume(token.SHL_ASSIGN), true
			}
			return l.consume(token.SHL), true
		default:
			return l.consume(token.LESS), true
		}
	case ch == '>':
		l.next()
		switch l.peek() {
		case '=':
			l.next()
			return l.consume(token.GREATER_EQUAL), true
		case '>':
			l.next()
			if l.peek() == '=' {
				l.next()
				return l.consume(token.SHR_ASSIGN), true
			}
			return l.consume(token.SHR), true
		default:
			return l.consume(token.GREATER), true
		}
	case ch == '!':
		l.next()
		if l.peek() == '=' {
			l.next()
			return l.consume(token.BANG_EQUAL), true
		}
		return l.consume(token.BANG), true
	case ch == '\'':
		return l.scanCharLiteral()
	case unicode.IsDigit(ch):
		return l.scanNumber()
	case isIdentStart(ch):
		return l.scanIdentifier()
	default:
		return l.scanUnrecognized()
	}
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentCont(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

func (l *Lexer) scanIdentifier() (token.Token, bool) {
	for isIdentCont(l.peek()) {
		l.next()
	}
	text := l.lexeme.String()
	if kind, ok := token.Keywords[text]; ok {
		return l.consume(kind), true
	}
	return l.consume(token.IDENTIFIER), true
}

func (l *Lexer) scanUnrecognized() (token.Token, bool) {
	for !l.atEnd() && !isRecognizedStart(l.peek()) {
		l.next()
	}
	if l.lexeme.Len() == 0 {
		// Guarantee forward progress even for a symbol that is itself
		// "recognized" in isolation but reached here (defensive only).
		l.next()
	}
	l.errorf("unrecognized symbol %q", l.lexeme.String())
	l.snapTail()
	return token.Token{}, false
}

func isRecognizedStart(ch rune) bool {
	if unicode.IsSpace(ch) || unicode.IsDigit(ch) || isIdentStart(ch) || ch == '\'' {
		return true
	}
	_, ok := singleCharPunct[ch]
	if ok {
		return true
	}
	switch ch {
	case ':', '=', '+', '-', '*', '/', '%', '&', '^', '|', '<', '>', '!':
		return true
	}
	return false
}

// --- numbers ---

func (l *Lexer) scanNumber() (token.Token, bool) {
	if l.peek() == '0' && (l.peekAt(1) == 'b' || l.peekAt(1) == 'o' || l.peekAt(1) == 'x') {
		return l.scanRadixInteger()
	}

	for unicode.IsDigit(l.peek()) {
		l.next()
	}

	isFloat := false
	if l.peek() == '.' && unicode.IsDigit(l.peekAt(1)) {
		isFloat = true
		l.next() // consume '.'
		for unicode.IsDigit(l.peek()) {
			l.next()
		}
	}

	if isIdentStart(l.peek()) {
		for isIdentCont(l.peek()) {
			l.next()
		}
		l.errorf("malformed numeric literal %q", l.lexeme.String())
		l.snapTail()
		return token.Token{}, false
	}

	if isFloat {
		return l.consume(token.FLOAT_LITERAL), true
	}
	return l.consume(token.INTEGER_LITERAL), true
}

func (l *Lexer) scanRadixInteger() (token.Token, bool) {
	l.next() // '0'
	radixCh := l.next()

	var isDigit func(rune) bool
	var radixName string
	switch radixCh {
	case 'b':
		isDigit = func(r rune) bool { return r == '0' || r == '1' }
		radixName = "binary"
	case 'o':
		isDigit = func(r rune) bool { return r >= '0' && r <= '7' }
		radixName = "octal"
	case 'x':
		isDigit = func(r rune) bool {
			return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
		}
		radixName = "hexadecimal"
	}

	digits := 0
	for isDigit(l.peek()) {
		l.next()
		digits++
	}

	if digits == 0 || isIdentCont(l.peek()) {
		for isIdentCont(l.peek()) {
			l.next()
		}
		l.errorf("invalid digit in %s literal %q", radixName, l.lexeme.String())
		l.snapTail()
		return token.Token{}, false
	}

	return l.consume(token.INTEGER_LITERAL), true
}

// --- character literals ---

func (l *Lexer) scanCharLiteral() (token.Token, bool) {
	l.next() // opening '

	if l.atEnd() || l.peek() == '\'' {
		l.errorf("empty character literal")
		l.recoverCharLiteral()
		return token.Token{}, false
	}

	if l.peek() == '\\' {
		l.next()
		if ok := l.scanEscape(); !ok {
			l.recoverCharLiteral()
			return token.Token{}, false
		}
	} else {
		l.next()
	}

	if l.atEnd() || l.peek() != '\'' {
		l.errorf("unterminated character literal")
		l.recoverCharLiteral()
		return token.Token{}, false
	}
	l.next() // closing '

	return l.consume(token.CHAR_LITERAL), true
}

// recoverCharLiteral consumes up to and including the next closing quote (or
// end of line/file) so scanning can continue after a malformed literal.
func (l *Lexer) recoverCharLiteral() {
	for !l.atEnd() && l.peek() != '\'' && l.peek() != '\n' {
		l.next()
	}
	if l.peek() == '\'' {
		l.next()
	}
	l.snapTail()
}

var simpleEscapes = map[rune]bool{
	'n': true, 't': true, 'b': true, 'r': true, 'a': true,
	'\'': true, '"': true, '\\': true, 'f': true, 'v': true,
}

// scanEscape scans the body of a backslash escape after the backslash has
// already been consumed. Returns false (having already reported a
// diagnostic) if the escape is malformed.
func (l *Lexer) scanEscape() bool {
	ch := l.peek()

	if simpleEscapes[ch] {
		l.next()
		return true
	}

	if unicode.IsDigit(ch) {
		return l.scanNumericEscape()
	}

	l.next()
	l.errorf("unknown escape sequence %q", l.lexeme.String())
	return false
}

// scanNumericEscape scans \0b..., \0o..., \0x..., or a bare decimal run,
// rejecting a trailing '.' as a floating-point escape (spec.md §8).
func (l *Lexer) scanNumericEscape() bool {
	isDigit := unicode.IsDigit
	if l.peek() == '0' && (l.peekAt(1) == 'b' || l.peekAt(1) == 'o' || l.peekAt(1) == 'x') {
		l.next() // '0'
		switch l.next() { // radix letter
		case 'b':
			isDigit = func(r rune) bool { return r == '0' || r == '1' }
		case 'o':
			isDigit = func(r rune) bool { return r >= '0' && r <= '7' }
		case 'x':
			isDigit = func(r rune) bool {
				return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
			}
		}
	}

	for isDigit(l.peek()) {
		l.next()
	}

	if l.peek() == '.' {
		l.next()
		for unicode.IsDigit(l.peek()) {
			l.next()
		}
		l.errorf("escape sequence cannot be a floating point value")
		return false
	}

	return true
}

// DecodeCharLiteral interprets the lexeme of a CHAR_LITERAL token (including
// its surrounding quotes) and returns the rune it denotes. Character
// literals are lexed but are not first-class expression values (spec.md §1
// Non-goals), so nothing downstream of the tokenizer calls this; it is kept
// exported and tested at the lexer boundary so the escape table has a single
// source of truth if that Non-goal is ever lifted.
func DecodeCharLiteral(lexeme string) (rune, bool) {
	body := strings.TrimSuffix(strings.TrimPrefix(lexeme, "'"), "'")
	if body == "" {
		return 0, false
	}
	if body[0] != '\\' {
		r := []rune(body)
		return r[0], true
	}

	esc := body[1:]
	switch esc {
	case "n":
		return '\n', true
	case "t":
		return '\t', true
	case "b":
		return '\b', true
	case "r":
		return '\r', true
	case "a":
		return '\a', true
	case "'":
		return '\'', true
	case "\"":
		return '"', true
	case "\\":
		return '\\', true
	case "f":
		return '\f', true
	case "v":
		return '\v', true
	}

	base := 10
	digits := esc
	switch {
	case strings.HasPrefix(esc, "0b"):
		base, digits = 2, esc[2:]
	case strings.HasPrefix(esc, "0o"):
		base, digits = 8, esc[2:]
	case strings.HasPrefix(esc, "0x"):
		base, digits = 16, esc[2:]
	}

	v, err := strconv.ParseInt(digits, base, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}
