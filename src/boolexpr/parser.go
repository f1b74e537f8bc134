package boolexpr

// Parse builds the expression tree for the given input and returns it
// together with the variables it references, sorted alphabetically.
//
// NOT binds tightest, then AND/NAND, then OR/NOR/XOR. Both binary levels are
// left-associative and parentheses override precedence:
//
//	A OR B AND NOT C   is parsed as   (A OR (B AND (NOT C)))
//	A XOR B XOR C      is parsed as   ((A XOR B) XOR C)
//
// Any problem with the input is reported as a *SyntaxError.
func Parse(expression string) (*Node, []string, error) {
	tokens, err := tokenize(expression)
	if err != nil {
		return nil, nil, err
	}

	p := &parser{tokens: tokens}
	if p.peek().kind == tokenEOF {
		return nil, nil, NewSyntaxError(0, "", "empty expression")
	}

	root, err := p.parseExpression()
	if err != nil {
		return nil, nil, err
	}

	switch next := p.peek(); next.kind {
	case tokenEOF:
	case tokenRightParen:
		return nil, nil, NewSyntaxError(next.offset, next.text, "unbalanced parentheses, no matching '('")
	default:
		return nil, nil, NewSyntaxError(next.offset, next.text, "expected a binary operator")
	}

	return root, root.Variables(), nil
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokenEOF {
		p.pos++
	}
	return t
}

// parseExpression handles the lowest precedence level: OR, NOR and XOR.
func (p *parser) parseExpression() (*Node, error) {
	left, err := p.parseConjunction()
	if err != nil {
		return nil, err
	}

	for isOperator(p.peek(), OR, NOR, XOR) {
		op := p.next().operator
		right, err := p.parseConjunction()
		if err != nil {
			return nil, err
		}
		left = newBinary(op, left, right)
	}
	return left, nil
}

// parseConjunction handles AND and NAND.
func (p *parser) parseConjunction() (*Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for isOperator(p.peek(), AND, NAND) {
		op := p.next().operator
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = newBinary(op, left, right)
	}
	return left, nil
}

func (p *parser) parseUnary() (*Node, error) {
	if isOperator(p.peek(), NOT) {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return newNot(operand), nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (*Node, error) {
	t := p.next()
	switch t.kind {
	case tokenVariable:
		return newVariable(t.text), nil
	case tokenConstant:
		return newConstant(t.value), nil
	case tokenLeftParen:
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		closing := p.next()
		switch closing.kind {
		case tokenRightParen:
			return inner, nil
		case tokenEOF:
			return nil, NewSyntaxError(t.offset, t.text, "unbalanced parentheses, missing ')'")
		default:
			return nil, NewSyntaxError(closing.offset, closing.text, "expected a binary operator or ')'")
		}
	case tokenEOF:
		return nil, NewSyntaxError(t.offset, "", "missing operand, unexpected end of expression")
	case tokenRightParen:
		return nil, NewSyntaxError(t.offset, t.text, "missing operand before ')'")
	default:
		return nil, NewSyntaxError(t.offset, t.text, "missing operand, found operator instead")
	}
}

func isOperator(t token, ops ...Operator) bool {
	if t.kind != tokenOperator {
		return false
	}
	for _, op := range ops {
		if t.operator == op {
			return true
		}
	}
	return false
}
