package tokens

// TokenType Holds a token
type TokenType int

const (
	EOF TokenType = iota - 1

	// Single-character tokens.
	// (, ), :, ',', -, +, /, *, %, ^, !, new line
	LEFT_PAREN
	RIGHT_PAREN
	COLON
	COMMA
	MINUS
	PLUS
	SLASH
	STAR
	MOD
	POWER
	BANG
	NEWLINE

	// One or two character tokens.
	// !=, ==, >, >=, <, <=, <-, &&, ||
	BANG_EQUAL
	EQUAL_EQUAL
	GREATER
	GREATER_EQUAL
	LESS
	LESS_EQUAL
	ASSIGN
	AND
	OR

	// Literals.
	// *variable*, string, int
	IDENTIFIER
	STRING
	INTEGER

	// Keywords.
	// if, else, end, then, fun, for, do, var
	IF
	ELSE
	END
	THEN
	FUN
	FOR
	DO
	VAR
)

var names = map[TokenType]string{
	EOF:           "EOF",
	LEFT_PAREN:    "(",
	RIGHT_PAREN:   ")",
	COLON:         ":",
	COMMA:         ",",
	MINUS:         "-",
	PLUS:          "+",
	SLASH:         "/",
	STAR:          "*",
	MOD:           "%",
	POWER:         "^",
	BANG:          "!",
	NEWLINE:       "newline",
	BANG_EQUAL:    "!=",
	EQUAL_EQUAL:   "==",
	GREATER:       ">",
	GREATER_EQUAL: ">=",
	LESS:          "<",
	LESS_EQUAL:    "<=",
	ASSIGN:        "<-",
	AND:           "&&",
	OR:            "||",
	IDENTIFIER:    "identifier",
	STRING:        "string",
	INTEGER:       "integer",
	IF:            "if",
	ELSE:          "else",
	END:           "end",
	THEN:          "then",
	FUN:           "fun",
	FOR:           "for",
	DO:            "do",
	VAR:           "var",
}

// Keywords maps reserved words to their token type
var Keywords = map[string]TokenType{
	"if":   IF,
	"else": ELSE,
	"end":  END,
	"then": THEN,
	"fun":  FUN,
	"for":  FOR,
	"do":   DO,
	"var":  VAR,
}

func (t TokenType) String() string {
	if name, ok := names[t]; ok {
		return "<" + name + ">"
	}
	return "<unknown>"
}
