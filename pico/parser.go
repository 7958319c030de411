package pico

import "fmt"

// ParseError reports a grammar violation.
type ParseError struct {
	Message string
	Pos     Position
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("parse: %s (line %d, column %d)", e.Message, e.Pos.Line, e.Pos.Column)
	}
	return "parse: " + e.Message
}

// parser builds the AST from the lexer's token stream. Classes are
// registered as soon as their declaration header is parsed, so
// instantiation sites, including ones inside the class's own methods, can
// be resolved to their ClassDef immediately; a class must therefore be
// declared before its first use.
type parser struct {
	lex     *Lexer
	classes map[string]*ClassDef
}

func newParser(lex *Lexer) *parser {
	return &parser{lex: lex, classes: make(map[string]*ClassDef)}
}

func (p *parser) cur() Token {
	return p.lex.CurrentToken()
}

func (p *parser) next() error {
	_, err := p.lex.NextToken()
	return err
}

func (p *parser) errorf(pos Position, format string, args ...any) error {
	return &ParseError{Message: fmt.Sprintf(format, args...), Pos: pos}
}

// expectChar checks that the current token is Char{c} and consumes it.
func (p *parser) expectChar(c byte) error {
	if !p.cur().IsChar(c) {
		return p.errorf(p.cur().Pos, "expected %q, got %s", string(c), p.cur())
	}
	return p.next()
}

// expectNewline consumes the statement terminator.
func (p *parser) expectNewline() error {
	if p.cur().Type != TokenNewline {
		return p.errorf(p.cur().Pos, "expected end of line, got %s", p.cur())
	}
	return p.next()
}

// expectId returns the current Id token and consumes it.
func (p *parser) expectId() (Token, error) {
	tok, err := p.lex.Expect(TokenId)
	if err != nil {
		return Token{}, err
	}
	return tok, p.next()
}

// ParseProgram parses top-level statements until Eof and wraps them in a
// Compound.
func (p *parser) ParseProgram() (*Compound, error) {
	program := &Compound{}
	for p.cur().Type != TokenEOF {
		if p.cur().Type == TokenNewline {
			if err := p.next(); err != nil {
				return nil, err
			}
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}
	if len(program.Statements) > 0 {
		program.position = program.Statements[0].Pos()
	}
	return program, nil
}

func (p *parser) parseStatement() (Node, error) {
	switch p.cur().Type {
	case TokenClass:
		return p.parseClassDeclaration()
	case TokenIf:
		return p.parseIfStatement()
	case TokenReturn:
		return p.parseReturnStatement()
	case TokenPrint:
		return p.parsePrintStatement()
	case TokenDef:
		return nil, p.errorf(p.cur().Pos, "method definitions are only allowed inside a class")
	default:
		return p.parseSimpleStatement()
	}
}

// parseSimpleStatement covers assignments, field assignments, and bare
// expression statements.
func (p *parser) parseSimpleStatement() (Node, error) {
	pos := p.cur().Pos
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.cur().IsChar('=') {
		target, ok := expr.(*VariableValue)
		if !ok {
			return nil, p.errorf(pos, "cannot assign to this expression")
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expectNewline(); err != nil {
			return nil, err
		}
		if len(target.Names) == 1 {
			return &Assignment{Var: target.Names[0], Value: value, position: pos}, nil
		}
		last := len(target.Names) - 1
		return &FieldAssignment{
			Object:   &VariableValue{Names: target.Names[:last], position: pos},
			Field:    target.Names[last],
			Value:    value,
			position: pos,
		}, nil
	}

	if err := p.expectNewline(); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *parser) parseReturnStatement() (Node, error) {
	pos := p.cur().Pos
	if err := p.next(); err != nil {
		return nil, err
	}
	var value Node = &NoneLiteral{position: pos}
	if p.cur().Type != TokenNewline {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		value = expr
	}
	if err := p.expectNewline(); err != nil {
		return nil, err
	}
	return &ReturnStmt{Value: value, position: pos}, nil
}

func (p *parser) parsePrintStatement() (Node, error) {
	pos := p.cur().Pos
	if err := p.next(); err != nil {
		return nil, err
	}
	stmt := &PrintStmt{position: pos}
	if p.cur().Type != TokenNewline {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			stmt.Args = append(stmt.Args, arg)
			if !p.cur().IsChar(',') {
				break
			}
			if err := p.next(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expectNewline(); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *parser) parseIfStatement() (Node, error) {
	pos := p.cur().Pos
	if err := p.next(); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	then, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	stmt := &IfElse{Condition: condition, Then: then, position: pos}
	if p.cur().Type == TokenElse {
		if err := p.next(); err != nil {
			return nil, err
		}
		alt, err := p.parseSuite()
		if err != nil {
			return nil, err
		}
		stmt.Else = alt
	}
	return stmt, nil
}

// parseSuite parses ":" Newline Indent statements Dedent.
func (p *parser) parseSuite() (Node, error) {
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if err := p.expectNewline(); err != nil {
		return nil, err
	}
	if p.cur().Type != TokenIndent {
		return nil, p.errorf(p.cur().Pos, "expected an indented block, got %s", p.cur())
	}
	pos := p.cur().Pos
	if err := p.next(); err != nil {
		return nil, err
	}

	suite := &Compound{position: pos}
	for p.cur().Type != TokenDedent {
		if p.cur().Type == TokenEOF {
			return nil, p.errorf(p.cur().Pos, "unexpected end of input inside a block")
		}
		if p.cur().Type == TokenNewline {
			if err := p.next(); err != nil {
				return nil, err
			}
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		suite.Statements = append(suite.Statements, stmt)
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	return suite, nil
}

func (p *parser) parseClassDeclaration() (Node, error) {
	pos := p.cur().Pos
	if err := p.next(); err != nil {
		return nil, err
	}
	nameTok, err := p.expectId()
	if err != nil {
		return nil, err
	}
	name := nameTok.Literal
	if _, exists := p.classes[name]; exists {
		return nil, p.errorf(pos, "duplicate class %s", name)
	}

	var parent *ClassDef
	if p.cur().IsChar('(') {
		if err := p.next(); err != nil {
			return nil, err
		}
		baseTok, err := p.expectId()
		if err != nil {
			return nil, err
		}
		base, ok := p.classes[baseTok.Literal]
		if !ok {
			return nil, p.errorf(baseTok.Pos, "unknown base class %s", baseTok.Literal)
		}
		parent = base
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
	}

	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if err := p.expectNewline(); err != nil {
		return nil, err
	}
	if p.cur().Type != TokenIndent {
		return nil, p.errorf(p.cur().Pos, "expected an indented class body, got %s", p.cur())
	}
	cls := &ClassDef{Name: name, Parent: parent}
	p.classes[name] = cls
	if err := p.next(); err != nil {
		return nil, err
	}

	var methods []*Method
	for p.cur().Type != TokenDedent {
		if p.cur().Type == TokenEOF {
			return nil, p.errorf(p.cur().Pos, "unexpected end of input inside class %s", name)
		}
		if p.cur().Type == TokenNewline {
			if err := p.next(); err != nil {
				return nil, err
			}
			continue
		}
		if p.cur().Type != TokenDef {
			return nil, p.errorf(p.cur().Pos, "expected a method definition in class %s, got %s", name, p.cur())
		}
		m, err := p.parseMethod()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	if err := p.next(); err != nil {
		return nil, err
	}

	cls.Methods = methods
	return &ClassDefinition{Class: cls, position: pos}, nil
}

func (p *parser) parseMethod() (*Method, error) {
	pos := p.cur().Pos
	if err := p.next(); err != nil {
		return nil, err
	}
	nameTok, err := p.expectId()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	var params []string
	if !p.cur().IsChar(')') {
		for {
			paramTok, err := p.expectId()
			if err != nil {
				return nil, err
			}
			params = append(params, paramTok.Literal)
			if !p.cur().IsChar(',') {
				break
			}
			if err := p.next(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expectChar(')'); err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	return &Method{
		Name:   nameTok.Literal,
		Params: params,
		Body:   &MethodBody{Body: body, position: pos},
	}, nil
}
