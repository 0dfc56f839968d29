package notation_test

import (
	"testing"

	"github.com/glyphmath/notation"
)

func FuzzParse(f *testing.F) {
	f.Add("x+y")
	f.Add("2xy")
	f.Add(`\frac{1}{2}`)
	f.Add("sin^{-1}x")
	f.Add("(a,b)")
	f.Add(`\sqrt{|x_i|}`)
	f.Add("a<b<c!")
	f.Fuzz(func(t *testing.T, s string) {
		c, err := notation.ParseLayout(s)
		if err != nil {
			t.Skip()
		}
		if n := notation.Parse(c); n == nil {
			t.Errorf("parsing %q returned no node", s)
		}
	})
}
