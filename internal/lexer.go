package internal

import (
	"strings"
	"unicode"

	"kestrel/internal/tokens"
)

type lexer struct {
	source []rune
	start  int
	cur    int

	line   int
	column int
	begin  position

	state *interpreterState
}

func newLexer(state *interpreterState) *lexer {
	return &lexer{
		source: []rune(strings.ReplaceAll(state.source, "\r\n", "\n")),
		line:   1,
		column: 1,
		state:  state,
	}
}

// scan fills state.tokens. The last token is always EOF and two newline
// tokens are never adjacent.
func (l *lexer) scan() (err error) {
	defer recoverError(&err)
	for !l.isAtEnd() {
		l.start = l.cur
		l.begin = l.position()
		l.scanToken()
	}
	l.begin = l.position()
	l.emit(tokens.EOF, "")
	return nil
}

func (l *lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(tokens.LEFT_PAREN, "(")
	case ')':
		l.emit(tokens.RIGHT_PAREN, ")")
	case ':':
		l.emit(tokens.COLON, ":")
	case ',':
		l.emit(tokens.COMMA, ",")
	case '-':
		l.emit(tokens.MINUS, "-")
	case '+':
		l.emit(tokens.PLUS, "+")
	case '*':
		l.emit(tokens.STAR, "*")
	case '%':
		l.emit(tokens.MOD, "%")
	case '^':
		l.emit(tokens.POWER, "^")
	case '/':
		if l.match('/') {
			for !l.isAtEnd() && l.peek() != '\n' {
				l.advance()
			}
		} else if l.match('*') {
			l.blockComment()
		} else {
			l.emit(tokens.SLASH, "/")
		}
	case '!':
		if l.match('=') {
			l.emit(tokens.BANG_EQUAL, "!=")
		} else {
			l.emit(tokens.BANG, "!")
		}
	case '=':
		l.expect('=', c)
		l.emit(tokens.EQUAL_EQUAL, "==")
	case '&':
		l.expect('&', c)
		l.emit(tokens.AND, "&&")
	case '|':
		l.expect('|', c)
		l.emit(tokens.OR, "||")
	case '<':
		if l.match('-') {
			l.emit(tokens.ASSIGN, "<-")
		} else if l.match('=') {
			l.emit(tokens.LESS_EQUAL, "<=")
		} else {
			l.emit(tokens.LESS, "<")
		}
	case '>':
		if l.match('=') {
			l.emit(tokens.GREATER_EQUAL, ">=")
		} else {
			l.emit(tokens.GREATER, ">")
		}

	// Ignore whitespace
	case ' ', '\r', '\t':

	case '\n', ';':
		l.newline(c)

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.integer()
		} else if isIdentifierStart(c) {
			l.identifier()
		} else {
			l.state.fatalError(ErrLex, l.begin, errIllegalChar, c)
		}
	}
}

func (l *lexer) newline(c rune) {
	last := len(l.state.tokens) - 1
	if last < 0 || l.state.tokens[last].token == tokens.NEWLINE {
		return
	}
	l.emit(tokens.NEWLINE, string(c))
}

func (l *lexer) blockComment() {
	for {
		if l.isAtEnd() {
			l.state.fatalError(ErrLex, l.begin, errUnclosedComment)
		}
		if l.advance() == '*' && l.match('/') {
			return
		}
	}
}

func (l *lexer) string() {
	var sb strings.Builder
	for {
		if l.isAtEnd() {
			l.state.fatalError(ErrLex, l.begin, errUnclosedString)
		}
		c := l.advance()
		if c == '"' {
			break
		}
		if c == '\\' {
			sb.WriteRune(l.escape())
			continue
		}
		sb.WriteRune(c)
	}
	l.emit(tokens.STRING, sb.String())
}

func (l *lexer) escape() rune {
	if l.isAtEnd() {
		l.state.fatalError(ErrLex, l.begin, errUnclosedString)
	}
	c := l.advance()
	switch c {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 'b':
		return '\b'
	case '0':
		return 0
	case '"', '\\':
		return c
	}
	l.state.fatalError(ErrLex, l.position(), errUnknownEscape, c)
	return 0
}

func (l *lexer) integer() {
	for !l.isAtEnd() && isDigit(l.peek()) {
		l.advance()
	}
	l.emit(tokens.INTEGER, string(l.source[l.start:l.cur]))
}

func (l *lexer) identifier() {
	for !l.isAtEnd() && isIdentifierContinue(l.peek()) {
		l.advance()
	}

	identifier := string(l.source[l.start:l.cur])

	tokenType, ok := tokens.Keywords[identifier]
	if !ok {
		tokenType = tokens.IDENTIFIER
	}

	l.emit(tokenType, identifier)
}

func (l *lexer) expect(c rune, after rune) {
	if l.isAtEnd() {
		l.state.fatalError(ErrLex, l.begin, errIncompleteDigram, c, after, "EOF")
	}
	if next := l.advance(); next != c {
		l.state.fatalError(ErrLex, l.begin, errIncompleteDigram, c, after, next)
	}
}

func (l *lexer) advance() rune {
	c := l.source[l.cur]
	l.cur++
	if c == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return c
}

func (l *lexer) match(c rune) bool {
	if l.isAtEnd() || l.source[l.cur] != c {
		return false
	}
	l.advance()
	return true
}

func (l *lexer) peek() rune {
	return l.source[l.cur]
}

func (l *lexer) position() position {
	return position{source: l.state.name, line: l.line, column: l.column}
}

func (l *lexer) emit(tk tokens.TokenType, lexeme string) {
	l.state.tokens = append(l.state.tokens, token{
		token:  tk,
		lexeme: lexeme,
		pos:    l.begin,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.cur >= len(l.source)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isIdentifierStart(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isIdentifierContinue(c rune) bool {
	return isIdentifierStart(c) || isDigit(c)
}
