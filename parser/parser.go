package parser

import (
	"fmt"
	"strconv"

	"github.com/luna-lang/luna/ast"
	"github.com/luna-lang/luna/lexer"
	"github.com/luna-lang/luna/report"
	"github.com/luna-lang/luna/token"
)

// The parser is recursive descent with one token of lookahead. The first
// syntax error reports and sets a sticky flag; after that every check and
// consume is inert and Parse returns no tree.
type Parser struct {
	lx       *lexer.Lexer
	curToken token.Token
	hadError bool
}

func New(lx *lexer.Lexer) *Parser {
	p := &Parser{lx: lx}
	p.nextToken()
	return p
}

func (p *Parser) HadError() bool {
	return p.hadError || p.lx.HadError
}

func (p *Parser) nextToken() {
	if p.hadError {
		return
	}
	p.curToken = p.lx.NextToken()
	if p.lx.HadError {
		// The lexer has already reported.
		p.hadError = true
	}
}

func (p *Parser) check(t token.TokenType) bool {
	if p.hadError {
		return false
	}
	return p.curToken.Type == t
}

func (p *Parser) match(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

func (p *Parser) consume(t token.TokenType, msg string) {
	if p.hadError {
		return
	}
	if p.check(t) {
		p.nextToken()
		return
	}
	p.Throw(msg, "")
}

func (p *Parser) Throw(msg, hint string) {
	if p.hadError {
		return
	}
	p.hadError = true
	report.Hint(report.Syntax, p.curToken.Line, p.curToken.Col, hint, "%s", msg)
}

// Parse returns the program, or nil after a syntax error.
func (p *Parser) Parse() *ast.Program {
	program := &ast.Program{}
	for !p.check(token.EOF) {
		if p.hadError {
			break
		}
		if p.match(token.NEWLINE) {
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
	}
	if p.HadError() {
		return nil
	}
	return program
}

func (p *Parser) parseStatement() ast.Node {
	if p.hadError {
		return nil
	}

	switch p.curToken.Type {
	case token.FUNC:
		return p.parseFunctionDef()
	case token.LET:
		return p.parseLet()
	case token.PRINT:
		return p.parsePrint()
	case token.RETURN:
		return p.parseReturn()
	case token.BREAK:
		tok := p.curToken
		p.nextToken()
		return &ast.BreakStatement{Token: tok}
	case token.CONTINUE:
		tok := p.curToken
		p.nextToken()
		return &ast.ContinueStatement{Token: tok}
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.SWITCH:
		return p.parseSwitch()
	}

	return p.parseExpressionOrAssignment()
}

func (p *Parser) parseLet() ast.Node {
	letTok := p.curToken
	p.nextToken()

	names := []string{}
	tokens := []token.Token{}
	for {
		if !p.check(token.IDENT) {
			p.Throw("Expected variable name after 'let' or ','",
				"Variables must be identifiers (e.g., let a, b, c)")
			return nil
		}
		names = append(names, p.curToken.Literal)
		tokens = append(tokens, p.curToken)
		p.nextToken()
		if !p.match(token.COMMA) {
			break
		}
	}

	values := []ast.Node{}
	if p.match(token.ASSIGN) {
		for {
			val := p.parseExpression()
			values = append(values, val)
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	if len(values) > 0 && len(values) != len(names) {
		p.Throw(fmt.Sprintf("Variable count (%d) does not match value count (%d)",
			len(names), len(values)),
			"Ensure you provide a value for every variable declared, or none at all.")
		return nil
	}
	if p.hadError {
		return nil
	}

	lets := []ast.Node{}
	for i, name := range names {
		var val ast.Node
		if len(values) > 0 {
			val = values[i]
		}
		lets = append(lets, &ast.LetStatement{Token: tokens[i], Name: name, Value: val})
	}
	if len(lets) == 1 {
		return lets[0]
	}
	// A group runs in the current scope, so every name lands where a
	// single let would.
	return &ast.GroupStatement{Token: letTok, Statements: lets}
}

func (p *Parser) parsePrint() ast.Node {
	tok := p.curToken
	p.nextToken()
	p.consume(token.LPAREN, "Expected '(' after print")
	args := []ast.Node{}
	if !p.check(token.RPAREN) {
		for {
			arg := p.parseExpression()
			if arg != nil {
				args = append(args, arg)
			}
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RPAREN, "Expected ')' after print args")
	if p.hadError {
		return nil
	}
	return &ast.PrintStatement{Token: tok, Args: args}
}

func (p *Parser) parseReturn() ast.Node {
	tok := p.curToken
	p.nextToken()
	var val ast.Node
	if !p.check(token.RBRACE) && !p.check(token.NEWLINE) {
		val = p.parseExpression()
	}
	if p.hadError {
		return nil
	}
	return &ast.ReturnStatement{Token: tok, Value: val}
}

func (p *Parser) parseIf() ast.Node {
	tok := p.curToken
	p.nextToken()
	p.consume(token.LPAREN, "Expected '(' after if")
	cond := p.parseExpression()
	p.consume(token.RPAREN, "Expected ')' after condition")

	// A newline may sit between ')' and '{'.
	p.match(token.NEWLINE)

	p.consume(token.LBRACE, "Expected '{'")
	then := p.parseBlock(p.curToken)

	// And between '}' and 'else'.
	p.match(token.NEWLINE)

	var alt *ast.BlockStatement
	if p.match(token.ELSE) {
		p.match(token.NEWLINE)
		if p.check(token.IF) {
			// else-if nests as an if inside the else block.
			elseTok := p.curToken
			nested := p.parseIf()
			if nested != nil {
				alt = &ast.BlockStatement{Token: elseTok, Statements: []ast.Node{nested}}
			}
		} else {
			p.consume(token.LBRACE, "Expected '{'")
			alt = p.parseBlock(p.curToken)
		}
	}
	if cond == nil || p.hadError {
		return nil
	}
	return &ast.IfStatement{Token: tok, Cond: cond, Then: then, Else: alt}
}

func (p *Parser) parseWhile() ast.Node {
	tok := p.curToken
	p.nextToken()
	p.consume(token.LPAREN, "Expected '(' after while")
	cond := p.parseExpression()
	p.consume(token.RPAREN, "Expected ')'")
	p.match(token.NEWLINE)
	p.consume(token.LBRACE, "Expected '{'")
	body := p.parseBlock(p.curToken)
	if cond == nil || p.hadError {
		return nil
	}
	return &ast.WhileStatement{Token: tok, Cond: cond, Body: body}
}

func (p *Parser) parseFor() ast.Node {
	tok := p.curToken
	p.nextToken()
	p.consume(token.LPAREN, "Expected '(' after for")

	init := p.parseStatement()
	p.consume(token.SEMICOLON, "Expected ';' after loop initializer")

	cond := p.parseExpression()
	p.consume(token.SEMICOLON, "Expected ';' after loop condition")

	incr := p.parseStatement()
	p.consume(token.RPAREN, "Expected ')' after loop increment")

	p.match(token.NEWLINE)
	p.consume(token.LBRACE, "Expected '{' for loop body")
	body := p.parseBlock(p.curToken)

	if p.hadError {
		return nil
	}
	return &ast.ForStatement{Token: tok, Init: init, Cond: cond, Incr: incr, Body: body}
}

func (p *Parser) parseSwitch() ast.Node {
	tok := p.curToken
	p.nextToken()
	p.consume(token.LPAREN, "Expected '(' after switch")
	subject := p.parseExpression()
	p.consume(token.RPAREN, "Expected ')'")
	p.match(token.NEWLINE)
	p.consume(token.LBRACE, "Expected '{' starting switch block")

	cases := []*ast.CaseClause{}
	var deflt *ast.CaseClause

	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		if p.hadError {
			break
		}
		switch {
		case p.check(token.CASE):
			caseTok := p.curToken
			p.nextToken()
			val := p.parseExpression()
			p.consume(token.COLON, "Expected ':' after case value")
			body := p.parseCaseBody()
			if val != nil {
				cases = append(cases, &ast.CaseClause{Token: caseTok, Value: val, Body: body})
			}
		case p.check(token.DEFAULT):
			caseTok := p.curToken
			p.nextToken()
			p.consume(token.COLON, "Expected ':' after default")
			deflt = &ast.CaseClause{Token: caseTok, Body: p.parseCaseBody()}
		case p.match(token.NEWLINE):
			continue
		default:
			p.Throw("Expected 'case' or 'default' inside switch",
				"Switch blocks must contain 'case value:' or 'default:' statements")
			return nil
		}
	}
	p.consume(token.RBRACE, "Expected '}' ending switch")
	if subject == nil || p.hadError {
		return nil
	}
	return &ast.SwitchStatement{Token: tok, Subject: subject, Cases: cases, Default: deflt}
}

func (p *Parser) parseCaseBody() []ast.Node {
	body := []ast.Node{}
	for !p.check(token.CASE) && !p.check(token.DEFAULT) && !p.check(token.RBRACE) && !p.check(token.EOF) {
		if p.hadError {
			break
		}
		if p.match(token.NEWLINE) {
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			body = append(body, stmt)
		}
	}
	return body
}

// parseBlock is called with the '{' already consumed.
func (p *Parser) parseBlock(tok token.Token) *ast.BlockStatement {
	block := &ast.BlockStatement{Token: tok}
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		if p.hadError {
			return block
		}
		if p.match(token.NEWLINE) {
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
	p.consume(token.RBRACE, "Expected '}'")
	return block
}

func (p *Parser) parseFunctionDef() ast.Node {
	tok := p.curToken
	p.nextToken()

	if !p.check(token.IDENT) {
		p.Throw("Expected function name after 'func'",
			"Use 'func functionName(params) { ... }' to define a function")
		return nil
	}
	name := p.curToken.Literal
	p.nextToken()

	p.consume(token.LPAREN, "Expected '('")
	params := []string{}
	if !p.check(token.RPAREN) {
		for {
			if !p.check(token.IDENT) {
				p.Throw("Expected parameter name",
					"Function parameters must be valid identifiers, e.g., 'func add(a, b)'")
				return nil
			}
			params = append(params, p.curToken.Literal)
			p.nextToken()
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RPAREN, "Expected ')'")
	p.match(token.NEWLINE)
	p.consume(token.LBRACE, "Expected '{'")
	body := p.parseBlock(p.curToken)

	if p.hadError {
		return nil
	}
	return &ast.FunctionDefinition{Token: tok, Name: name, Params: params, Body: body}
}

func (p *Parser) parseExpressionOrAssignment() ast.Node {
	expr := p.parseExpression()
	if p.match(token.ASSIGN) {
		switch target := expr.(type) {
		case *ast.Identifier:
			val := p.parseExpression()
			if val == nil || p.hadError {
				return nil
			}
			return &ast.AssignStatement{Token: target.Token, Name: target.Value, Value: val}
		case *ast.IndexExpression:
			val := p.parseExpression()
			if val == nil || p.hadError {
				return nil
			}
			return &ast.IndexAssignStatement{Token: target.Token, Target: target.Target,
				Index: target.Index, Value: val}
		default:
			p.Throw("Invalid assignment target",
				"You can only assign to variables (e.g., 'x = 5') or list indices (e.g., 'arr[0] = 5')")
			return nil
		}
	}
	return expr
}

func (p *Parser) parseExpression() ast.Node {
	if p.hadError {
		return nil
	}
	return p.parseOr()
}

func (p *Parser) parseOr() ast.Node {
	expr := p.parseAnd()
	for p.check(token.OR) {
		opTok := p.curToken
		p.nextToken()
		right := p.parseAnd()
		if expr != nil && right != nil {
			expr = &ast.InfixExpression{Token: opTok, Operator: "||", Left: expr, Right: right}
		}
	}
	return expr
}

func (p *Parser) parseAnd() ast.Node {
	expr := p.parseEquality()
	for p.check(token.AND) {
		opTok := p.curToken
		p.nextToken()
		right := p.parseEquality()
		if expr != nil && right != nil {
			expr = &ast.InfixExpression{Token: opTok, Operator: "&&", Left: expr, Right: right}
		}
	}
	return expr
}

func (p *Parser) parseEquality() ast.Node {
	expr := p.parseComparison()
	for p.check(token.EQ) || p.check(token.NOT_EQ) {
		opTok := p.curToken
		p.nextToken()
		right := p.parseComparison()
		if expr != nil && right != nil {
			expr = &ast.InfixExpression{Token: opTok, Operator: opTok.Literal, Left: expr, Right: right}
		}
	}
	return expr
}

func (p *Parser) parseComparison() ast.Node {
	expr := p.parseAddition()
	for p.check(token.LT) || p.check(token.GT) || p.check(token.LT_EQ) || p.check(token.GT_EQ) {
		opTok := p.curToken
		p.nextToken()
		right := p.parseAddition()
		if expr != nil && right != nil {
			expr = &ast.InfixExpression{Token: opTok, Operator: opTok.Literal, Left: expr, Right: right}
		}
	}
	return expr
}

func (p *Parser) parseAddition() ast.Node {
	expr := p.parseMultiplication()
	for p.check(token.PLUS) || p.check(token.MINUS) {
		opTok := p.curToken
		p.nextToken()
		right := p.parseMultiplication()
		if expr != nil && right != nil {
			expr = &ast.InfixExpression{Token: opTok, Operator: opTok.Literal, Left: expr, Right: right}
		}
	}
	return expr
}

func (p *Parser) parseMultiplication() ast.Node {
	expr := p.parseUnary()
	for p.check(token.STAR) || p.check(token.SLASH) || p.check(token.PERCENT) {
		opTok := p.curToken
		p.nextToken()
		right := p.parseUnary()
		if expr != nil && right != nil {
			expr = &ast.InfixExpression{Token: opTok, Operator: opTok.Literal, Left: expr, Right: right}
		}
	}
	return expr
}

func (p *Parser) parseUnary() ast.Node {
	if p.check(token.BANG) {
		tok := p.curToken
		p.nextToken()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return &ast.NotExpression{Token: tok, Right: operand}
	}
	if p.check(token.MINUS) {
		// -x parses as 0 - x.
		tok := p.curToken
		p.nextToken()
		right := p.parseUnary()
		if right == nil {
			return nil
		}
		zero := &ast.IntegerLiteral{
			Token: token.Token{Type: token.INT, Literal: "0", Line: tok.Line, Col: tok.Col},
			Value: 0,
		}
		return &ast.InfixExpression{Token: tok, Operator: "-", Left: zero, Right: right}
	}
	if p.match(token.PLUS) {
		return p.parseUnary()
	}
	return p.parseCallOrIndex()
}

func (p *Parser) parseCallOrIndex() ast.Node {
	expr := p.parsePrimary()

	for {
		if p.hadError {
			return expr
		}
		switch {
		case p.check(token.LPAREN):
			p.nextToken()
			args := []ast.Node{}
			if !p.check(token.RPAREN) {
				for {
					arg := p.parseExpression()
					if arg != nil {
						args = append(args, arg)
					}
					if !p.match(token.COMMA) {
						break
					}
				}
			}
			p.consume(token.RPAREN, "Expected ')' after arguments")
			ident, ok := expr.(*ast.Identifier)
			if !ok {
				p.Throw("Function call requires a function name",
					"Only identifiers (function names) can be called, e.g., 'myFunction()'")
				return nil
			}
			expr = &ast.CallExpression{Token: ident.Token, Name: ident.Value, Args: args}
		case p.check(token.LBRACK):
			tok := p.curToken
			p.nextToken()
			idx := p.parseExpression()
			p.consume(token.RBRACK, "Expected ']' after index")
			if expr != nil && idx != nil {
				expr = &ast.IndexExpression{Token: tok, Target: expr, Index: idx}
			}
		case p.check(token.PLUS_PLUS):
			p.nextToken()
			ident, ok := expr.(*ast.Identifier)
			if !ok {
				p.Throw("'++' can only be applied to variables",
					"Use '++' only on variable names, e.g., 'count++'")
				return nil
			}
			expr = &ast.IncStatement{Token: ident.Token, Name: ident.Value}
		case p.check(token.MINUS_MINUS):
			p.nextToken()
			ident, ok := expr.(*ast.Identifier)
			if !ok {
				p.Throw("'--' can only be applied to variables",
					"Use '--' only on variable names, e.g., 'count--'")
				return nil
			}
			expr = &ast.DecStatement{Token: ident.Token, Name: ident.Value}
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Node {
	if p.hadError {
		return nil
	}

	switch p.curToken.Type {
	case token.INT:
		tok := p.curToken
		p.nextToken()
		value, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			p.Throw(fmt.Sprintf("Could not parse %q as an integer", tok.Literal), "")
			return nil
		}
		return &ast.IntegerLiteral{Token: tok, Value: value}
	case token.FLOAT:
		tok := p.curToken
		p.nextToken()
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.Throw(fmt.Sprintf("Could not parse %q as a float", tok.Literal), "")
			return nil
		}
		return &ast.FloatLiteral{Token: tok, Value: value}
	case token.STRING:
		tok := p.curToken
		p.nextToken()
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}
	case token.CHAR:
		tok := p.curToken
		p.nextToken()
		var value rune
		for _, r := range tok.Literal {
			value = r
			break
		}
		return &ast.CharLiteral{Token: tok, Value: value}
	case token.TRUE, token.FALSE:
		tok := p.curToken
		p.nextToken()
		return &ast.BooleanLiteral{Token: tok, Value: tok.Type == token.TRUE}
	case token.IDENT:
		tok := p.curToken
		p.nextToken()
		return &ast.Identifier{Token: tok, Value: tok.Literal}
	case token.LPAREN:
		p.nextToken()
		expr := p.parseExpression()
		p.consume(token.RPAREN, "Expected ')' after expression")
		return expr
	case token.LBRACK:
		tok := p.curToken
		p.nextToken()
		elements := []ast.Node{}
		if !p.check(token.RBRACK) {
			for {
				p.match(token.NEWLINE)
				el := p.parseExpression()
				if el != nil {
					elements = append(elements, el)
				}
				if !p.match(token.COMMA) {
					break
				}
				p.match(token.NEWLINE)
			}
		}
		p.consume(token.RBRACK, "Expected ']' at end of list")
		if p.hadError {
			return nil
		}
		return &ast.ListLiteral{Token: tok, Elements: elements}
	case token.INPUT:
		tok := p.curToken
		p.nextToken()
		p.consume(token.LPAREN, "Expected '(' after input")
		prompt := ""
		if !p.check(token.RPAREN) {
			if !p.check(token.STRING) {
				p.Throw("Expected string prompt for input",
					"Use input(\"prompt\") to get user input with a message")
				return nil
			}
			prompt = p.curToken.Literal
			p.nextToken()
		}
		p.consume(token.RPAREN, "Expected ')' after input")
		if p.hadError {
			return nil
		}
		return &ast.InputExpression{Token: tok, Prompt: prompt}
	}

	p.Throw(fmt.Sprintf("Unexpected token '%s'", p.curToken.Literal),
		"Expected an expression (number, string, variable, or '(')")
	return nil
}
