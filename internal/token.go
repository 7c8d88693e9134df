package internal

import (
	"fmt"

	"kestrel/internal/tokens"
)

type position struct {
	source string
	line   int
	column int
}

func (p position) String() string {
	source := p.source
	if source == "" {
		source = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d", source, p.line, p.column)
}

type token struct {
	token  tokens.TokenType
	lexeme string
	pos    position
}

func (t *token) String() string {
	return fmt.Sprintf("%v %q at %v", t.token, t.lexeme, t.pos)
}
