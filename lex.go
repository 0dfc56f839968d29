package notation

import (
	"strconv"
	"strings"
)

// token is one element of the flat stream the grammar consumes. Specials
// are resolved into already-parsed operands during tokenization, so the
// parser itself only ever sees code points, operands, scripts, and EOF.
type token struct {
	kind tokenKind
	span Span
	// r is the code point of a tokenCodePoint.
	r rune
	// node is the parsed subexpression of a tokenOperand, tokenOver, or
	// tokenUnder.
	node *Node
	// fn marks an operand whose symbol matched a canonical function name.
	fn bool
}

func (t token) String() string {
	switch t.kind {
	case tokenCodePoint:
		return t.kind.String() + ":" + strconv.QuoteRune(t.r) + "@" + t.span.String()
	case tokenOperand, tokenOver, tokenUnder:
		return t.kind.String() + ":" + t.node.String() + "@" + t.span.String()
	default:
		return t.kind.String() + "@" + t.span.String()
	}
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenCodePoint is a single unmerged character.
	tokenCodePoint
	// tokenEOF terminates every stream.
	tokenEOF
	// tokenOperand carries a finished subexpression.
	tokenOperand
	// tokenOver carries a parsed superscript.
	tokenOver
	// tokenUnder carries a parsed subscript.
	tokenUnder
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "none"
	case tokenCodePoint:
		return "codepoint"
	case tokenEOF:
		return "eof"
	case tokenOperand:
		return "operand"
	case tokenOver:
		return "over"
	case tokenUnder:
		return "under"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// tokens is the cursor over one finished token stream. The cursor clamps at
// the EOF token; it never wraps or runs past it. The grammar needs no
// backtracking beyond this single index.
type tokens struct {
	list []token
	pos  int
}

// current returns the token under the cursor without consuming it.
func (ts *tokens) current() token {
	return ts.list[ts.pos]
}

// next returns the current token and advances, clamped at EOF.
func (ts *tokens) next() token {
	t := ts.list[ts.pos]
	if ts.pos < len(ts.list)-1 {
		ts.pos++
	}
	return t
}

// peek reports whether the current token is the code point r.
func (ts *tokens) peek(r rune) bool {
	t := ts.current()
	return t.kind == tokenCodePoint && t.r == r
}

// eat consumes the current token if it is the code point r.
func (ts *tokens) eat(r rune) bool {
	if !ts.peek(r) {
		return false
	}
	ts.next()
	return true
}

// more reports whether the cursor has reached EOF.
func (ts *tokens) more() bool {
	return ts.current().kind != tokenEOF
}

// tokenize walks a container's elements left to right and produces its flat
// token stream. Nested containers are parsed depth-first into operand
// tokens, then word and number runs are merged, and an EOF token is
// appended at the running end index.
func (p *parser) tokenize(c *Container, base int) *tokens {
	idx := base
	list := make([]token, 0, len(c.Elems)+1)
	for _, el := range c.Elems {
		w := el.width()
		span := Span{idx, idx + w}
		switch el.Special {
		case SpecialNone:
			list = append(list, token{kind: tokenCodePoint, span: span, r: el.R})
		case SpecialFraction:
			nw := el.Kids[0].width()
			num := p.parseContainer(el.Kids[0], idx)
			den := p.parseContainer(el.Kids[1], idx+nw+1)
			n := &Node{
				Kind:   NodeBinary,
				Op:     OpDiv,
				List:   []*Node{num, den},
				Span:   span,
				OpSpan: Span{idx + nw, idx + nw + 1},
			}
			list = append(list, token{kind: tokenOperand, span: span, node: n})
		case SpecialParens:
			n := p.parseTuple(el.Kids[0], idx+1, span)
			list = append(list, token{kind: tokenOperand, span: span, node: n})
		case SpecialBrackets:
			n := p.parseContainer(el.Kids[0], idx+1)
			list = append(list, token{kind: tokenOperand, span: span, node: n})
		case SpecialSqrt:
			list = append(list, p.wrapCall(el, "sqrt", idx+1, span))
		case SpecialAbs:
			list = append(list, p.wrapCall(el, "abs", idx+1, span))
		case SpecialCeil:
			list = append(list, p.wrapCall(el, "ceil", idx+1, span))
		case SpecialFloor:
			list = append(list, p.wrapCall(el, "floor", idx+1, span))
		case SpecialOver:
			n := p.parseContainer(el.Kids[0], idx)
			list = append(list, token{kind: tokenOver, span: span, node: n})
		case SpecialUnder:
			n := p.parseContainer(el.Kids[0], idx)
			list = append(list, token{kind: tokenUnder, span: span, node: n})
		default:
			panic("notation: unknown special kind " + el.Special.String())
		}
		idx += w
	}
	list = p.mergeWords(list)
	list = p.mergeNumbers(list)
	list = append(list, token{kind: tokenEOF, span: Span{idx, idx}})
	return &tokens{list: list}
}

// wrapCall parses a delimited special's single container and wraps it as a
// call of the named builtin, e.g. absolute value bars become abs(inner).
func (p *parser) wrapCall(el Element, name string, base int, span Span) token {
	arg := p.parseContainer(el.Kids[0], base)
	n := &Node{
		Kind:   NodeCall,
		Target: &Node{Kind: NodeSymbol, Name: name, Span: span},
		Args:   &Node{Kind: NodeTuple, List: []*Node{arg}, Span: span},
		Span:   span,
	}
	return token{kind: tokenOperand, span: span, node: n}
}

// Greek letter ranges merged alongside ASCII letters in word runs.
const (
	greekUpperLo, greekUpperHi = 'Α', 'Ω'
	greekLowerLo, greekLowerHi = 'α', 'ω'
)

func isWordRune(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		return true
	case greekUpperLo <= r && r <= greekUpperHi:
		return true
	case greekLowerLo <= r && r <= greekLowerHi:
		return true
	}
	return false
}

func isDigitRune(r rune) bool {
	return '0' <= r && r <= '9'
}

// mergeWords replaces runs of word code points with symbol operands. The
// candidate grows one character at a time, querying the function table at
// each length; the longest canonical hit wins and flags the operand as a
// function. With no canonical hit only the first character is consumed, as
// a plain one-letter symbol, so "xy" stays a product of two symbols.
func (p *parser) mergeWords(list []token) []token {
	out := list[:0]
	i := 0
	for i < len(list) {
		t := list[i]
		if t.kind != tokenCodePoint || !isWordRune(t.r) {
			out = append(out, t)
			i++
			continue
		}
		var sb strings.Builder
		best, name, fn := 1, string(t.r), false
		for j := i; j < len(list) && list[j].kind == tokenCodePoint && isWordRune(list[j].r); j++ {
			sb.WriteRune(list[j].r)
			if canon, ok := p.funcs.Canonical(sb.String()); ok {
				best, name, fn = j-i+1, canon, true
			}
		}
		span := Span{list[i].span.Start, list[i+best-1].span.End}
		n := &Node{Kind: NodeSymbol, Name: name, Span: span}
		out = append(out, token{kind: tokenOperand, span: span, node: n, fn: fn})
		i += best
	}
	return out
}

// mergeNumbers replaces runs of digits and at most one decimal point with
// number operands. A second dot ends the run before it; a lone dot that
// matched no digits is left as a code point so it is not mistaken for a
// number.
func (p *parser) mergeNumbers(list []token) []token {
	out := list[:0]
	i := 0
	for i < len(list) {
		t := list[i]
		if t.kind != tokenCodePoint || !(isDigitRune(t.r) || t.r == '.') {
			out = append(out, t)
			i++
			continue
		}
		var sb strings.Builder
		dot := false
		j := i
		for ; j < len(list) && list[j].kind == tokenCodePoint; j++ {
			r := list[j].r
			if r == '.' {
				if dot {
					break
				}
				dot = true
			} else if !isDigitRune(r) {
				break
			}
			sb.WriteRune(r)
		}
		text := sb.String()
		if text == "." {
			out = append(out, t)
			i++
			continue
		}
		span := Span{list[i].span.Start, list[j-1].span.End}
		n := &Node{Kind: NodeNumber, Value: p.num(text), Span: span}
		out = append(out, token{kind: tokenOperand, span: span, node: n})
		i = j
	}
	return out
}
