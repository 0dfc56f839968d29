package notation

import (
	"fmt"
	"strings"
)

// ParseLayout builds a layout container tree from a compact linear syntax,
// for tests and command-line use where no visual editor produces the tree:
//
//	( … )            parentheses special
//	[ … ]            brackets special
//	| … |            absolute value special
//	^{ … } or ^c     superscript
//	_{ … } or _c     subscript
//	\frac{a}{b}      fraction
//	\sqrt{ … }       square root
//	\ceil{ … }       ceiling
//	\floor{ … }      floor
//	\abs{ … }        absolute value
//
// Spaces are dropped; every other rune becomes a character element.
func ParseLayout(s string) (*Container, error) {
	sc := &layoutScanner{src: []rune(s)}
	c, err := sc.container("")
	if err != nil {
		return nil, err
	}
	if sc.pos < len(sc.src) {
		return nil, sc.errorf("unexpected %q", sc.src[sc.pos])
	}
	return c, nil
}

type layoutScanner struct {
	src []rune
	pos int
}

// container scans elements until EOF or a rune in stops, which is left
// unconsumed.
func (sc *layoutScanner) container(stops string) (*Container, error) {
	c := &Container{}
	for sc.pos < len(sc.src) {
		r := sc.src[sc.pos]
		if strings.ContainsRune(stops, r) {
			return c, nil
		}
		sc.pos++
		switch r {
		case ' ', '\t':
			continue
		case '(':
			inner, err := sc.delimited(')')
			if err != nil {
				return nil, err
			}
			c.Elems = append(c.Elems, Parens(inner))
		case '[':
			inner, err := sc.delimited(']')
			if err != nil {
				return nil, err
			}
			c.Elems = append(c.Elems, Brackets(inner))
		case '|':
			inner, err := sc.delimited('|')
			if err != nil {
				return nil, err
			}
			c.Elems = append(c.Elems, Abs(inner))
		case '^':
			inner, err := sc.script()
			if err != nil {
				return nil, err
			}
			c.Elems = append(c.Elems, Over(inner))
		case '_':
			inner, err := sc.script()
			if err != nil {
				return nil, err
			}
			c.Elems = append(c.Elems, Under(inner))
		case '\\':
			el, err := sc.command()
			if err != nil {
				return nil, err
			}
			c.Elems = append(c.Elems, el)
		case ')', ']', '}':
			return nil, sc.errorf("unmatched %q", r)
		default:
			c.Elems = append(c.Elems, Char(r))
		}
	}
	if stops != "" {
		return nil, sc.errorf("missing closing %q", stops)
	}
	return c, nil
}

// delimited scans a nested container up to the closing rune and consumes it.
func (sc *layoutScanner) delimited(close rune) (*Container, error) {
	inner, err := sc.container(string(close))
	if err != nil {
		return nil, err
	}
	if sc.pos >= len(sc.src) || sc.src[sc.pos] != close {
		return nil, sc.errorf("missing closing %q", close)
	}
	sc.pos++
	return inner, nil
}

// script scans a superscript or subscript body: a braced group or a single
// rune.
func (sc *layoutScanner) script() (*Container, error) {
	if sc.pos < len(sc.src) && sc.src[sc.pos] == '{' {
		sc.pos++
		return sc.delimited('}')
	}
	if sc.pos >= len(sc.src) {
		return nil, sc.errorf("missing script body")
	}
	r := sc.src[sc.pos]
	sc.pos++
	return Row(Char(r)), nil
}

// command scans a backslash command and its braced containers.
func (sc *layoutScanner) command() (Element, error) {
	start := sc.pos
	for sc.pos < len(sc.src) && 'a' <= sc.src[sc.pos] && sc.src[sc.pos] <= 'z' {
		sc.pos++
	}
	name := string(sc.src[start:sc.pos])
	group := func() (*Container, error) {
		if sc.pos >= len(sc.src) || sc.src[sc.pos] != '{' {
			return nil, sc.errorf(`\%s: missing '{'`, name)
		}
		sc.pos++
		return sc.delimited('}')
	}
	switch name {
	case "frac":
		num, err := group()
		if err != nil {
			return Element{}, err
		}
		den, err := group()
		if err != nil {
			return Element{}, err
		}
		return Frac(num, den), nil
	case "sqrt", "ceil", "floor", "abs":
		inner, err := group()
		if err != nil {
			return Element{}, err
		}
		switch name {
		case "sqrt":
			return Sqrt(inner), nil
		case "ceil":
			return Ceil(inner), nil
		case "floor":
			return Floor(inner), nil
		default:
			return Abs(inner), nil
		}
	default:
		return Element{}, sc.errorf(`unknown command \%s`, name)
	}
}

func (sc *layoutScanner) errorf(format string, args ...any) error {
	return fmt.Errorf("layout:%d: %s", sc.pos, fmt.Sprintf(format, args...))
}
