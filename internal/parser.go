package internal

import (
	"strconv"

	"kestrel/internal/tokens"
)

type paramDecl struct {
	name     *token
	typeName *token
}

type branch struct {
	condition expr
	body      *blockExpr
}

// parser stores parser data
type parser struct {
	current int

	state *interpreterState
}

var blockTerminators = map[tokens.TokenType]bool{
	tokens.EOF:  true,
	tokens.END:  true,
	tokens.ELSE: true,
	tokens.DO:   true,
}

var comparisonOperators = []tokens.TokenType{
	tokens.EQUAL_EQUAL,
	tokens.BANG_EQUAL,
	tokens.GREATER,
	tokens.GREATER_EQUAL,
	tokens.LESS,
	tokens.LESS_EQUAL,
}

// parse builds state.root from state.tokens. The first grammar violation
// aborts parsing and nothing is stored.
func (p *parser) parse() (err error) {
	defer recoverError(&err)
	root := p.block()
	p.consume(tokens.EOF)
	p.state.root = root
	return nil
}

// block parses expressions separated by new lines up to, but not including,
// one of the block terminators. A leading new line is skipped.
func (p *parser) block() *blockExpr {
	p.match(tokens.NEWLINE)
	block := &blockExpr{start: p.peek()}
	for !blockTerminators[p.peek().token] {
		block.exprs = append(block.exprs, p.expression())
		p.match(tokens.NEWLINE)
	}
	return block
}

func (p *parser) expression() expr {
	return p.assignment()
}

func (p *parser) assignment() expr {
	expr := p.or()
	for p.match(tokens.ASSIGN) {
		operator := p.previous()
		right := p.or()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) or() expr {
	expr := p.and()
	for p.match(tokens.OR) {
		operator := p.previous()
		right := p.and()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) and() expr {
	expr := p.comparison()
	for p.match(tokens.AND) {
		operator := p.previous()
		right := p.comparison()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

// comparison also owns the '!' prefix, which negates a whole comparison:
// !a == b reads as !(a == b).
func (p *parser) comparison() expr {
	if p.match(tokens.BANG) {
		return &unaryExpr{
			operator: p.previous(),
			right:    p.comparison(),
		}
	}
	expr := p.addition()
	for p.match(comparisonOperators...) {
		operator := p.previous()
		right := p.addition()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) addition() expr {
	expr := p.multiplication()
	for p.match(tokens.PLUS, tokens.MINUS) {
		operator := p.previous()
		right := p.multiplication()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) multiplication() expr {
	expr := p.unary()
	for p.match(tokens.STAR, tokens.SLASH, tokens.MOD) {
		operator := p.previous()
		right := p.unary()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) unary() expr {
	if p.match(tokens.PLUS, tokens.MINUS) {
		return &unaryExpr{
			operator: p.previous(),
			right:    p.unary(),
		}
	}
	return p.power()
}

// power is right associative: the exponent goes back through unary, so
// 2^3^2 is 2^(3^2) and 2^-1 is accepted.
func (p *parser) power() expr {
	expr := p.atom()
	if p.match(tokens.POWER) {
		operator := p.previous()
		right := p.unary()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) atom() expr {
	if p.match(tokens.FUN) {
		return p.fn()
	}
	if p.match(tokens.LEFT_PAREN) {
		expr := p.expression()
		p.consume(tokens.RIGHT_PAREN)
		return expr
	}
	if p.match(tokens.INTEGER) {
		return p.integer()
	}
	if p.match(tokens.STRING) {
		return &stringExpr{literal: p.previous()}
	}
	if p.match(tokens.IF) {
		return p.ifExpr()
	}
	if p.match(tokens.VAR) {
		return p.varDecl()
	}
	if p.match(tokens.IDENTIFIER) {
		name := p.previous()
		if p.match(tokens.LEFT_PAREN) {
			return p.finishCall(name)
		}
		return &variableExpr{name: name}
	}
	if p.match(tokens.FOR) {
		return p.forLoop()
	}

	tk := p.peek()
	p.state.fatalError(ErrParse, tk.pos, errUnexpectedAtom, tk.token)
	return nil
}

func (p *parser) integer() expr {
	literal := p.previous()
	value, err := strconv.ParseInt(literal.lexeme, 10, 64)
	if err != nil {
		p.state.fatalError(ErrParse, literal.pos, errIntegerRange, literal.lexeme)
	}
	return &integerExpr{literal: literal, value: value}
}

// fn parses: fun name(param:type, ...) block end
func (p *parser) fn() expr {
	name := p.consume(tokens.IDENTIFIER)
	p.consume(tokens.LEFT_PAREN)

	var params []*paramDecl
	if p.check(tokens.IDENTIFIER) {
		for {
			params = append(params, p.param())
			if !p.match(tokens.COMMA) {
				break
			}
		}
	}
	p.consume(tokens.RIGHT_PAREN)

	body := p.block()
	p.consume(tokens.END)

	return &fnExpr{
		name:   name,
		params: params,
		body:   body,
	}
}

func (p *parser) param() *paramDecl {
	name := p.consume(tokens.IDENTIFIER)
	p.consume(tokens.COLON)
	return &paramDecl{
		name:     name,
		typeName: p.consume(tokens.IDENTIFIER),
	}
}

// varDecl parses: var name : type <- expression
func (p *parser) varDecl() expr {
	name := p.consume(tokens.IDENTIFIER)
	p.consume(tokens.COLON)
	typeName := p.consume(tokens.IDENTIFIER)
	p.consume(tokens.ASSIGN)
	return &varExpr{
		name:        name,
		typeName:    typeName,
		initializer: p.expression(),
	}
}

func (p *parser) ifExpr() expr {
	st := &ifExpr{
		keyword: p.previous(),
	}

	st.branches = append(st.branches, p.ifBranch())
	for p.match(tokens.ELSE) {
		if p.match(tokens.IF) {
			st.branches = append(st.branches, p.ifBranch())
			continue
		}
		st.elseBranch = p.block()
		break
	}
	p.consume(tokens.END)

	return st
}

func (p *parser) ifBranch() *branch {
	condition := p.expression()
	p.consume(tokens.THEN)
	return &branch{
		condition: condition,
		body:      p.block(),
	}
}

// forLoop parses: for block do block end
func (p *parser) forLoop() expr {
	keyword := p.previous()
	condition := p.block()
	p.consume(tokens.DO)
	body := p.block()
	p.consume(tokens.END)
	return &forExpr{
		keyword:   keyword,
		condition: condition,
		body:      body,
	}
}

func (p *parser) finishCall(callee *token) expr {
	arguments := make([]expr, 0)
	if !p.check(tokens.RIGHT_PAREN) {
		for {
			arguments = append(arguments, p.expression())
			if !p.match(tokens.COMMA) {
				break
			}
		}
	}
	p.consume(tokens.RIGHT_PAREN)
	return &callExpr{
		callee:    callee,
		arguments: arguments,
	}
}

func (p *parser) consume(tk tokens.TokenType) *token {
	if p.check(tk) {
		return p.advance()
	}
	found := p.peek()
	p.state.fatalError(ErrParse, found.pos, errUnexpectedToken, tk, found.token)
	return nil
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(types ...tokens.TokenType) bool {
	for _, tk := range types {
		if p.check(tk) {
			p.current++
			return true
		}
	}
	return false
}

func (p *parser) check(tk tokens.TokenType) bool {
	return p.peek().token == tk
}

var eofToken = token{token: tokens.EOF}

func (p *parser) peek() *token {
	if p.current >= len(p.state.tokens) {
		return &eofToken
	}
	return &p.state.tokens[p.current]
}

func (p *parser) previous() *token {
	return &p.state.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tokens.EOF
}
