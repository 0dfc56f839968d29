package notation

import (
	"testing"
)

// tokdesc describes a token for comparison without chasing node pointers.
type tokdesc struct {
	kind tokenKind
	span Span
	r    rune
	fn   bool
	// node is the rendered subexpression, "" for code points.
	node string
}

func describe(t token) tokdesc {
	d := tokdesc{kind: t.kind, span: t.span, r: t.r, fn: t.fn}
	if t.node != nil {
		d.node = t.node.String()
	}
	return d
}

func tokenizeString(t *testing.T, src string) *tokens {
	t.Helper()
	c, err := ParseLayout(src)
	if err != nil {
		t.Fatalf("building layout %q: %v", src, err)
	}
	p := parser{funcs: globalfuncs, num: parseNumber, diag: discard{}}
	return p.tokenize(c, 0)
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		src    string
		tokens []tokdesc
	}{
		// numbers
		{"0", []tokdesc{
			{kind: tokenOperand, span: Span{0, 1}, node: "(0)"},
			{kind: tokenEOF, span: Span{1, 1}},
		}},
		{"123", []tokdesc{
			{kind: tokenOperand, span: Span{0, 3}, node: "(123)"},
			{kind: tokenEOF, span: Span{3, 3}},
		}},
		{"1.5", []tokdesc{
			{kind: tokenOperand, span: Span{0, 3}, node: "(1.5)"},
			{kind: tokenEOF, span: Span{3, 3}},
		}},
		{".5", []tokdesc{
			{kind: tokenOperand, span: Span{0, 2}, node: "(0.5)"},
			{kind: tokenEOF, span: Span{2, 2}},
		}},
		{"5.", []tokdesc{
			{kind: tokenOperand, span: Span{0, 2}, node: "(5)"},
			{kind: tokenEOF, span: Span{2, 2}},
		}},
		// a second dot ends the run before it; the rest starts a new number
		{"1.2.3", []tokdesc{
			{kind: tokenOperand, span: Span{0, 3}, node: "(1.2)"},
			{kind: tokenOperand, span: Span{3, 5}, node: "(0.3)"},
			{kind: tokenEOF, span: Span{5, 5}},
		}},
		// a lone dot is not a number
		{".", []tokdesc{
			{kind: tokenCodePoint, span: Span{0, 1}, r: '.'},
			{kind: tokenEOF, span: Span{1, 1}},
		}},
		{"..", []tokdesc{
			{kind: tokenCodePoint, span: Span{0, 1}, r: '.'},
			{kind: tokenCodePoint, span: Span{1, 2}, r: '.'},
			{kind: tokenEOF, span: Span{2, 2}},
		}},
		// words: unknown runs split into single-letter symbols
		{"x", []tokdesc{
			{kind: tokenOperand, span: Span{0, 1}, node: "(x)"},
			{kind: tokenEOF, span: Span{1, 1}},
		}},
		{"xy", []tokdesc{
			{kind: tokenOperand, span: Span{0, 1}, node: "(x)"},
			{kind: tokenOperand, span: Span{1, 2}, node: "(y)"},
			{kind: tokenEOF, span: Span{2, 2}},
		}},
		// canonical names claim the longest hit and set the function flag
		{"sin", []tokdesc{
			{kind: tokenOperand, span: Span{0, 3}, fn: true, node: "(sin)"},
			{kind: tokenEOF, span: Span{3, 3}},
		}},
		{"sinh", []tokdesc{
			{kind: tokenOperand, span: Span{0, 4}, fn: true, node: "(sinh)"},
			{kind: tokenEOF, span: Span{4, 4}},
		}},
		{"sins", []tokdesc{
			{kind: tokenOperand, span: Span{0, 3}, fn: true, node: "(sin)"},
			{kind: tokenOperand, span: Span{3, 4}, node: "(s)"},
			{kind: tokenEOF, span: Span{4, 4}},
		}},
		// aliases resolve to the canonical name
		{"arcsin", []tokdesc{
			{kind: tokenOperand, span: Span{0, 6}, fn: true, node: "(asin)"},
			{kind: tokenEOF, span: Span{6, 6}},
		}},
		// greek letters are word runes
		{"π", []tokdesc{
			{kind: tokenOperand, span: Span{0, 1}, node: "(π)"},
			{kind: tokenEOF, span: Span{1, 1}},
		}},
		// operators stay code points
		{"a+1", []tokdesc{
			{kind: tokenOperand, span: Span{0, 1}, node: "(a)"},
			{kind: tokenCodePoint, span: Span{1, 2}, r: '+'},
			{kind: tokenOperand, span: Span{2, 3}, node: "(1)"},
			{kind: tokenEOF, span: Span{3, 3}},
		}},
		// specials resolve to operands; parens always carry a tuple
		{"(a,b)", []tokdesc{
			{kind: tokenOperand, span: Span{0, 5}, node: "([a], [b])"},
			{kind: tokenEOF, span: Span{5, 5}},
		}},
		{"[x]", []tokdesc{
			{kind: tokenOperand, span: Span{0, 3}, node: "(x)"},
			{kind: tokenEOF, span: Span{3, 3}},
		}},
		{"|x|", []tokdesc{
			{kind: tokenOperand, span: Span{0, 3}, node: "(abs[(x)])"},
			{kind: tokenEOF, span: Span{3, 3}},
		}},
		{`\sqrt{2}`, []tokdesc{
			{kind: tokenOperand, span: Span{0, 2}, node: "(sqrt[(2)])"},
			{kind: tokenEOF, span: Span{2, 2}},
		}},
		{`\frac{1}{2}`, []tokdesc{
			{kind: tokenOperand, span: Span{0, 3}, node: "([1] / [2])"},
			{kind: tokenEOF, span: Span{3, 3}},
		}},
		// scripts carry their parsed body
		{"x^2", []tokdesc{
			{kind: tokenOperand, span: Span{0, 1}, node: "(x)"},
			{kind: tokenOver, span: Span{1, 2}, node: "(2)"},
			{kind: tokenEOF, span: Span{2, 2}},
		}},
		{"x_i", []tokdesc{
			{kind: tokenOperand, span: Span{0, 1}, node: "(x)"},
			{kind: tokenUnder, span: Span{1, 2}, node: "(i)"},
			{kind: tokenEOF, span: Span{2, 2}},
		}},
	}
	for _, c := range cases {
		ts := tokenizeString(t, c.src)
		if len(ts.list) != len(c.tokens) {
			t.Errorf("tokenizing %q: want %d tokens, got %d: %v", c.src, len(c.tokens), len(ts.list), ts.list)
			continue
		}
		for i, want := range c.tokens {
			if got := describe(ts.list[i]); got != want {
				t.Errorf("tokenizing %q: token %d: want %+v, got %+v", c.src, i, want, got)
			}
		}
	}
}

func TestCursorClamps(t *testing.T) {
	ts := tokenizeString(t, "x")
	if !ts.more() {
		t.Fatal("no tokens before EOF")
	}
	ts.next()
	if ts.more() {
		t.Fatal("cursor should be at EOF")
	}
	for i := 0; i < 3; i++ {
		if got := ts.next(); got.kind != tokenEOF {
			t.Errorf("next past EOF returned %v", got)
		}
	}
}

func TestCursorEat(t *testing.T) {
	ts := tokenizeString(t, "+-")
	if ts.eat('-') {
		t.Error("ate '-' when current is '+'")
	}
	if !ts.eat('+') {
		t.Error("did not eat '+'")
	}
	if !ts.peek('-') {
		t.Error("cursor did not advance to '-'")
	}
	if !ts.eat('-') {
		t.Error("did not eat '-'")
	}
	if ts.eat('-') {
		t.Error("ate past EOF")
	}
}
