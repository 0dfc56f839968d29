package notation_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glyphmath/notation"
)

func TestDefaultFuncs(t *testing.T) {
	table := notation.DefaultFuncs()
	cases := []struct {
		text, canon string
		ok          bool
	}{
		{"sin", "sin", true},
		{"sinh", "sinh", true},
		{"arcsin", "asin", true},
		{"sqrt", "sqrt", true},
		{"floor", "floor", true},
		{"si", "", false},
		{"x", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		canon, ok := table.Canonical(c.text)
		if ok != c.ok || canon != c.canon {
			t.Errorf("Canonical(%q) = %q, %v; want %q, %v", c.text, canon, ok, c.canon, c.ok)
		}
	}
}

func TestLoadFuncs(t *testing.T) {
	doc := `
sin:
arcsin: asin
gamma:
lg: log
`
	table, err := notation.LoadFuncs(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		text, canon string
		ok          bool
	}{
		{"sin", "sin", true},
		{"arcsin", "asin", true},
		{"gamma", "gamma", true},
		{"lg", "log", true},
		{"cos", "", false},
	}
	for _, c := range cases {
		canon, ok := table.Canonical(c.text)
		if ok != c.ok || canon != c.canon {
			t.Errorf("Canonical(%q) = %q, %v; want %q, %v", c.text, canon, ok, c.canon, c.ok)
		}
	}
}

func TestLoadFuncsBadDoc(t *testing.T) {
	if _, err := notation.LoadFuncs(strings.NewReader("- a\n- b\n")); err == nil {
		t.Error("sequence document loaded without error")
	}
}

func ExampleParse() {
	c, _ := notation.ParseLayout(`\frac{1}{2} + sin x`)
	n := notation.Parse(c)
	fmt.Println(n)

	// Output:
	// ([(1) / (2)] + [sin([x])])
}
