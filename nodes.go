package notation

import (
	"strconv"
	"strings"
)

// Span is a half-open anchor interval [Start, End) over the layout that an
// AST node or token was derived from. Anchors count characters plus the
// delimiter glyphs of bracketed constructs.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return "[" + strconv.Itoa(s.Start) + "," + strconv.Itoa(s.End) + ")"
}

// Node is a node in the abstract syntax tree of an expression. Which fields
// are meaningful depends on Kind; see the kind constants. Every node handed
// out by the parser carries a Span covering the layout region it came from.
type Node struct {
	Kind NodeKind

	// Op is set for NodeUnary and NodeBinary.
	Op Op
	// Value is the literal value of a NodeNumber.
	Value float64
	// Name is the identifier of a NodeSymbol.
	Name string

	// Target is the callee of a NodeCall, a symbol or an inverse unary.
	Target *Node
	// Args is the argument tuple of a NodeCall.
	Args *Node
	// List holds a NodeTuple's children, a NodeBinary's operands (two of
	// them except for OpAdd and OpMul, which flatten), and a NodeUnary's
	// single operand.
	List []*Node

	Span Span
	// OpSpan marks the operator glyph itself for binary, relational, and
	// negation nodes so diagnostics can point at the operator instead of
	// the whole expression.
	OpSpan Span
}

// NodeKind discriminates the Node variant.
type NodeKind int8

const (
	NodeInvalid NodeKind = iota

	NodeNumber // literal; Value
	NodeSymbol // identifier; Name
	NodeUnary  // Op one of OpNegate, OpFactorial, OpInverse; operand in List[0]
	NodeBinary // Op; operands in List
	NodeCall   // Target applied to Args
	NodeTuple  // ordered children in List
	NodeError  // parse failure placeholder; only Span is meaningful
)

func (k NodeKind) String() string {
	switch k {
	case NodeInvalid:
		return "invalid"
	case NodeNumber:
		return "number"
	case NodeSymbol:
		return "symbol"
	case NodeUnary:
		return "unary"
	case NodeBinary:
		return "binary"
	case NodeCall:
		return "call"
	case NodeTuple:
		return "tuple"
	case NodeError:
		return "error"
	default:
		return "NodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Op is a unary or binary operator tag. There is no subtraction: "a-b"
// parses as the sum of a and the negation of b.
type Op int8

const (
	OpNone Op = iota

	OpNegate
	OpFactorial
	OpInverse

	OpAdd
	OpMul
	OpDiv
	OpPow
	OpEqual
	OpLess
	OpGreater
	OpLessEq
	OpGreaterEq
)

func (o Op) String() string {
	switch o {
	case OpNone:
		return "none"
	case OpNegate:
		return "negate"
	case OpFactorial:
		return "factorial"
	case OpInverse:
		return "inverse"
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	case OpEqual:
		return "="
	case OpLess:
		return "<"
	case OpGreater:
		return ">"
	case OpLessEq:
		return "≤"
	case OpGreaterEq:
		return "≥"
	default:
		return "Op(" + strconv.Itoa(int(o)) + ")"
	}
}

// String creates a string representation of the node, with alternating round
// and square brackets grouping each term.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.Kind {
	case NodeNumber:
		b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	case NodeSymbol:
		b.WriteString(n.Name)
	case NodeUnary:
		switch n.Op {
		case OpNegate:
			b.WriteByte('-')
			n.List[0].fmt(b, !square)
		case OpFactorial:
			n.List[0].fmt(b, !square)
			b.WriteByte('!')
		case OpInverse:
			n.List[0].fmt(b, !square)
			b.WriteString("^-1")
		default:
			panic("notation: invalid unary op " + n.Op.String())
		}
	case NodeBinary:
		for i, c := range n.List {
			if i > 0 {
				b.WriteByte(' ')
				b.WriteString(n.Op.String())
				b.WriteByte(' ')
			}
			c.fmt(b, !square)
		}
	case NodeCall:
		if n.Target.Kind == NodeSymbol {
			b.WriteString(n.Target.Name)
		} else {
			n.Target.fmt(b, !square)
		}
		n.Args.fmtargs(b, !square)
	case NodeTuple:
		for i, c := range n.List {
			if i > 0 {
				b.WriteString(", ")
			}
			c.fmt(b, !square)
		}
	case NodeError:
		b.WriteString("<error>")
	default:
		panic("notation: invalid node kind " + n.Kind.String() + " after writing " + b.String())
	}
}

// fmtargs writes a call's argument tuple without the tuple's own node
// brackets, so calls read as name[(a), (b)].
func (n *Node) fmtargs(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	if n.Kind != NodeTuple {
		b.WriteString("<error>")
		return
	}
	for i, c := range n.List {
		if i > 0 {
			b.WriteString(", ")
		}
		c.fmt(b, !square)
	}
}

// checkSpan asserts that a node carries an assigned range before it is
// handed between parsing steps. A missing range is a construction bug, not
// bad input.
func checkSpan(n *Node) {
	if n.Span.Start == 0 && n.Span.End == 0 {
		panic("notation: " + n.Kind.String() + " node has no source range")
	}
}
