package notation

// Expr = num | sym | Call | Neg | Plus | Add | Mul | Div | Pow | Rel | Fact | Tuple
// Call = func Expr | func Tuple | func Over(-1) Expr
// Neg = '-' Expr
// Plus = '+' Expr
// Add = Expr '+' Expr | Expr '-' Expr
// Mul = Expr '*' Expr | Expr '÷' Expr | Expr Expr
// Pow = Expr Over
// Rel = Expr ('=' | '<' | '>' | '≤' | '≥') Expr
// Fact = Expr '!'
//
// There is no bracket rule: fractions, radicals, parentheses, and the other
// two-dimensional constructs are resolved into operand tokens while
// tokenizing, so the grammar is flat.

// precedence orders the binding strength of the infix rules. Lower parses
// looser.
type precedence int8

const (
	precLowest precedence = iota
	precEqual
	precAdd
	precMul
	precPrefix
	precPostfix
)

// parser carries the collaborators for one parse call. It holds no state of
// its own between containers; the token cursor travels separately.
type parser struct {
	funcs FuncTable
	num   NumberFunc
	diag  Reporter
}

// Parse converts a layout container into an expression tree. It always
// returns a node: when the input has no valid parse, the result is a
// NodeError whose span covers the container, so callers always have a
// region to highlight. Syntax problems are delivered to the Reporter
// configured with ReportTo; the first failure aborts its parse branch.
func Parse(c *Container, opts ...ParseOption) *Node {
	p := parser{}
	for _, opt := range opts {
		opt.apply(&p)
	}
	if p.funcs == nil {
		p.funcs = globalfuncs
	}
	if p.num == nil {
		p.num = parseNumber
	}
	if p.diag == nil {
		p.diag = discard{}
	}
	return p.parseContainer(c, 0)
}

// parseContainer parses one container's whole token stream. Trailing
// unconsumed tokens are an error: the result is then a NodeError spanning
// the container.
func (p *parser) parseContainer(c *Container, base int) *Node {
	ts := p.tokenize(c, base)
	n := p.parseExpr(ts, precLowest)
	if n != nil && ts.more() {
		p.unexpected(ts)
		n = nil
	}
	if n == nil {
		return &Node{Kind: NodeError, Span: Span{base, base + c.width()}}
	}
	return n
}

// parseExpr is the precedence-climbing driver: one prefix rule, then infix
// rules while the gate accepts the current token at this binding power. A
// nil result means the branch failed and was already reported.
func (p *parser) parseExpr(ts *tokens, prec precedence) *Node {
	n := p.prefix(ts)
	if n == nil {
		return nil
	}
	checkSpan(n)
	for validInfix(ts.current(), prec) {
		n = p.infix(ts, n)
		if n == nil {
			return nil
		}
		checkSpan(n)
	}
	return n
}

func (p *parser) prefix(ts *tokens) *Node {
	t := ts.current()
	switch t.kind {
	case tokenOperand:
		if t.fn {
			return p.parseCall(ts)
		}
		ts.next()
		return t.node
	case tokenCodePoint:
		switch t.r {
		case '+':
			// Unary plus is a no-op.
			ts.next()
			return p.parseExpr(ts, precPrefix)
		case '-':
			ts.next()
			n := p.parseExpr(ts, precPrefix)
			if n == nil {
				return nil
			}
			return negate(n, t.span)
		}
	}
	p.unexpected(ts)
	return nil
}

func (p *parser) infix(ts *tokens, left *Node) *Node {
	t := ts.current()
	switch t.kind {
	case tokenOperand:
		// Implicit multiplication; leave the operand for the prefix rule so
		// that function operands become calls.
		rhs := p.parseExpr(ts, precMul)
		if rhs == nil {
			return nil
		}
		return join(OpMul, left, rhs)
	case tokenOver:
		// Exponent. The node's range is the superscript's own range, not
		// the span of both operands; downstream relies on this asymmetry.
		ts.next()
		return &Node{
			Kind:   NodeBinary,
			Op:     OpPow,
			List:   []*Node{left, t.node},
			Span:   t.span,
			OpSpan: t.span,
		}
	case tokenCodePoint:
		switch t.r {
		case '!':
			ts.next()
			return &Node{
				Kind:   NodeUnary,
				Op:     OpFactorial,
				List:   []*Node{left},
				Span:   Span{left.Span.Start, t.span.End},
				OpSpan: t.span,
			}
		case '*':
			ts.next()
			rhs := p.parseExpr(ts, precMul)
			if rhs == nil {
				return nil
			}
			return join(OpMul, left, rhs)
		case '÷':
			ts.next()
			rhs := p.parseExpr(ts, precMul)
			if rhs == nil {
				return nil
			}
			return &Node{
				Kind:   NodeBinary,
				Op:     OpDiv,
				List:   []*Node{left, rhs},
				Span:   Span{left.Span.Start, rhs.Span.End},
				OpSpan: t.span,
			}
		case '+':
			ts.next()
			rhs := p.parseExpr(ts, precAdd)
			if rhs == nil {
				return nil
			}
			return join(OpAdd, left, rhs)
		case '-':
			// a-b is a plus the negation of b; there is no subtract tag.
			ts.next()
			rhs := p.parseExpr(ts, precAdd)
			if rhs == nil {
				return nil
			}
			return join(OpAdd, left, negate(rhs, t.span))
		case '=', '<', '>', '≤', '≥':
			// Relational operators chain right-associatively: a<b<c is
			// a<(b<c). Parsing the right side one step looser than the
			// gate admits achieves that.
			ts.next()
			rhs := p.parseExpr(ts, precEqual-1)
			if rhs == nil {
				return nil
			}
			return &Node{
				Kind:   NodeBinary,
				Op:     relop(t.r),
				List:   []*Node{left, rhs},
				Span:   Span{left.Span.Start, rhs.Span.End},
				OpSpan: t.span,
			}
		}
	}
	// Subscripts pass the gate at postfix strength but have no rule here,
	// so they always surface as unexpected tokens.
	p.unexpected(ts)
	return nil
}

// validInfix gates the infix loop: it reports whether the current token
// continues the expression at the caller's binding power. Everything here
// is left-associative; relational operators get their right-associativity
// from the looser right-side precedence in the infix rule.
func validInfix(t token, prec precedence) bool {
	switch t.kind {
	case tokenEOF:
		return false
	case tokenOperand:
		return prec < precMul
	case tokenOver, tokenUnder:
		return prec < precPostfix
	case tokenCodePoint:
		switch t.r {
		case '=', '<', '>', '≤', '≥':
			return prec < precEqual
		case '+', '-':
			return prec < precAdd
		case '*', '÷':
			return prec < precMul
		case '!':
			return prec < precPostfix
		}
	}
	return false
}

func relop(r rune) Op {
	switch r {
	case '=':
		return OpEqual
	case '<':
		return OpLess
	case '>':
		return OpGreater
	case '≤':
		return OpLessEq
	case '≥':
		return OpGreaterEq
	default:
		panic("notation: no relational operator for " + string(r))
	}
}

// parseCall assembles a call from a function-flagged operand. A function
// symbol must be called; a following superscript of exactly -1 marks the
// inverse function, any other superscript is ambiguous and fails the
// branch. The arguments are either a following tuple operand, or a single
// term extended by absorbing non-function operands as implicit
// multiplication: "sin 2x cos 3y" is sin(2x) times cos(3y) because
// absorption stops at the next function operand.
func (p *parser) parseCall(ts *tokens) *Node {
	fnTok := ts.next()
	target := fnTok.node
	if ts.current().kind == tokenOver {
		over := ts.next()
		exp := over.node
		if exp.Kind != NodeNumber || exp.Value != -1 {
			p.diag.AmbiguousExponent(&ExponentError{Span: over.span, Func: target.Name})
			return nil
		}
		target = &Node{
			Kind: NodeUnary,
			Op:   OpInverse,
			List: []*Node{target},
			Span: Span{fnTok.span.Start, over.span.End},
		}
	}
	var args *Node
	if cur := ts.current(); cur.kind == tokenOperand && cur.node.Kind == NodeTuple {
		ts.next()
		args = cur.node
	} else {
		arg := p.parseExpr(ts, precMul)
		if arg == nil {
			return nil
		}
		for ts.current().kind == tokenOperand && !ts.current().fn {
			t := ts.next()
			arg = join(OpMul, arg, t.node)
		}
		args = &Node{Kind: NodeTuple, List: []*Node{arg}, Span: arg.Span}
	}
	return &Node{
		Kind:   NodeCall,
		Target: target,
		Args:   args,
		Span:   Span{target.Span.Start, args.Span.End},
	}
}

// parseTuple parses a parenthesized container as a comma-separated list of
// full expressions. Any failed element, or trailing input after the list,
// makes the whole tuple a NodeError. full is the parenthesized element's
// span, one anchor beyond the contents on each side.
func (p *parser) parseTuple(c *Container, base int, full Span) *Node {
	ts := p.tokenize(c, base)
	tup := &Node{Kind: NodeTuple, Span: full}
	for {
		el := p.parseExpr(ts, precLowest)
		if el == nil {
			return &Node{Kind: NodeError, Span: full}
		}
		tup.List = append(tup.List, el)
		if !ts.eat(',') {
			break
		}
	}
	if ts.more() {
		p.unexpected(ts)
		return &Node{Kind: NodeError, Span: full}
	}
	return tup
}

// negate folds the negation of a literal into the literal itself, keeping
// one node; anything else is wrapped in a negate unary with the minus glyph
// as its operator range. Either way the result spans from the minus sign
// through the operand.
func negate(n *Node, minus Span) *Node {
	sp := Span{minus.Start, n.Span.End}
	if n.Kind == NodeNumber {
		return &Node{Kind: NodeNumber, Value: -n.Value, Span: sp}
	}
	return &Node{Kind: NodeUnary, Op: OpNegate, List: []*Node{n}, Span: sp, OpSpan: minus}
}

// join combines two operands under a flattening operator (OpAdd or OpMul):
// an existing node of the same operator on the left grows in place, and a
// same-operator right side splices its children instead of nesting, so
// "2xy" is one multiplication of three terms.
func join(op Op, left, right *Node) *Node {
	sp := Span{left.Span.Start, right.Span.End}
	if left.Kind == NodeBinary && left.Op == op {
		if right.Kind == NodeBinary && right.Op == op {
			left.List = append(left.List, right.List...)
		} else {
			left.List = append(left.List, right)
		}
		left.Span = sp
		return left
	}
	if right.Kind == NodeBinary && right.Op == op {
		right.List = append([]*Node{left}, right.List...)
		right.Span = sp
		return right
	}
	return &Node{Kind: NodeBinary, Op: op, List: []*Node{left, right}, Span: sp}
}

// unexpected reports the token under the cursor to the diagnostic sink.
func (p *parser) unexpected(ts *tokens) {
	t := ts.current()
	desc := "token"
	switch t.kind {
	case tokenEOF:
		desc = "end of input"
	case tokenCodePoint:
		desc = "'" + string(t.r) + "'"
	case tokenOperand:
		desc = "operand"
	case tokenOver:
		desc = "superscript"
	case tokenUnder:
		desc = "subscript"
	}
	p.diag.UnexpectedToken(&TokenError{Span: t.span, Token: desc})
}
