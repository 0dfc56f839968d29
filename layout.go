package notation

import "strconv"

// Container is a node in the visual layout tree: an ordered sequence of
// elements produced by the editing surface. Containers are read-only to the
// parser.
type Container struct {
	Elems []Element
}

// Element is one entry in a container: either a single character or a
// special construct owning nested containers. A character element has
// Special == SpecialNone and R set; a special element has Special set and
// exactly Arity nested containers in Kids.
type Element struct {
	R       rune
	Special SpecialKind
	Kids    []*Container
}

// SpecialKind identifies a non-character layout construct.
type SpecialKind int8

const (
	SpecialNone SpecialKind = iota
	SpecialFraction
	SpecialSqrt
	SpecialAbs
	SpecialCeil
	SpecialFloor
	SpecialParens
	SpecialBrackets
	SpecialOver
	SpecialUnder
)

// Arity returns the number of nested containers a special of this kind owns.
func (k SpecialKind) Arity() int {
	if k == SpecialFraction {
		return 2
	}
	return 1
}

func (k SpecialKind) String() string {
	switch k {
	case SpecialNone:
		return "none"
	case SpecialFraction:
		return "fraction"
	case SpecialSqrt:
		return "sqrt"
	case SpecialAbs:
		return "abs"
	case SpecialCeil:
		return "ceil"
	case SpecialFloor:
		return "floor"
	case SpecialParens:
		return "parens"
	case SpecialBrackets:
		return "brackets"
	case SpecialOver:
		return "over"
	case SpecialUnder:
		return "under"
	default:
		return "SpecialKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Row builds a container from elements.
func Row(elems ...Element) *Container {
	return &Container{Elems: elems}
}

// Chars builds one character element per rune in s.
func Chars(s string) []Element {
	var v []Element
	for _, r := range s {
		v = append(v, Char(r))
	}
	return v
}

// Char builds a single character element.
func Char(r rune) Element {
	return Element{R: r}
}

// Frac builds a fraction element with numerator num and denominator den.
func Frac(num, den *Container) Element {
	return Element{Special: SpecialFraction, Kids: []*Container{num, den}}
}

// Sqrt builds a square root element.
func Sqrt(c *Container) Element {
	return Element{Special: SpecialSqrt, Kids: []*Container{c}}
}

// Abs builds an absolute value element.
func Abs(c *Container) Element {
	return Element{Special: SpecialAbs, Kids: []*Container{c}}
}

// Ceil builds a ceiling element.
func Ceil(c *Container) Element {
	return Element{Special: SpecialCeil, Kids: []*Container{c}}
}

// Floor builds a floor element.
func Floor(c *Container) Element {
	return Element{Special: SpecialFloor, Kids: []*Container{c}}
}

// Parens builds a parenthesized element. Parentheses group and also carry
// comma-separated lists, so their contents parse as a tuple.
func Parens(c *Container) Element {
	return Element{Special: SpecialParens, Kids: []*Container{c}}
}

// Brackets builds a square-bracketed element, pure grouping.
func Brackets(c *Container) Element {
	return Element{Special: SpecialBrackets, Kids: []*Container{c}}
}

// Over builds a superscript element.
func Over(c *Container) Element {
	return Element{Special: SpecialOver, Kids: []*Container{c}}
}

// Under builds a subscript element.
func Under(c *Container) Element {
	return Element{Special: SpecialUnder, Kids: []*Container{c}}
}

// width is the number of anchor indices a container occupies. Anchors are
// the coordinate system for source ranges: every character is one anchor,
// and delimited specials claim anchors for their delimiter glyphs. An empty
// container occupies one anchor, its placeholder box.
func (c *Container) width() int {
	if len(c.Elems) == 0 {
		return 1
	}
	w := 0
	for _, el := range c.Elems {
		w += el.width()
	}
	return w
}

func (e Element) width() int {
	switch e.Special {
	case SpecialNone:
		return 1
	case SpecialFraction:
		// The bar is one anchor between numerator and denominator.
		return e.Kids[0].width() + e.Kids[1].width() + 1
	case SpecialSqrt:
		// The radical glyph is one anchor.
		return e.Kids[0].width() + 1
	case SpecialAbs, SpecialCeil, SpecialFloor, SpecialParens, SpecialBrackets:
		// Two delimiter anchors.
		return e.Kids[0].width() + 2
	case SpecialOver, SpecialUnder:
		return e.Kids[0].width()
	default:
		panic("notation: unknown special kind " + e.Special.String())
	}
}
