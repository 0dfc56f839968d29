package notation

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// FuncTable resolves runs of word characters to canonical function names.
// The tokenizer queries it at every prefix length of a word run and keeps
// the longest hit, so a table may map both "sin" and "sinh".
type FuncTable interface {
	// Canonical returns the canonical name for text and whether text names
	// a function at all. It must be pure and total over all strings.
	Canonical(text string) (string, bool)
}

type nameTable map[string]string

func (t nameTable) Canonical(text string) (string, bool) {
	name, ok := t[text]
	return name, ok
}

var globalfuncs = nameTable{
	"exp":  "exp",
	"ln":   "ln",
	"log":  "log",
	"sqrt": "sqrt",

	"cos":   "cos",
	"sin":   "sin",
	"tan":   "tan",
	"acos":  "acos",
	"asin":  "asin",
	"atan":  "atan",
	"cosh":  "cosh",
	"sinh":  "sinh",
	"tanh":  "tanh",
	"acosh": "acosh",
	"asinh": "asinh",
	"atanh": "atanh",

	// alternate spellings
	"arccos": "acos",
	"arcsin": "asin",
	"arctan": "atan",

	"abs":   "abs",
	"ceil":  "ceil",
	"floor": "floor",
}

// DefaultFuncs returns the default canonical-function-name table.
func DefaultFuncs() FuncTable {
	return globalfuncs
}

// FuncNames builds a function table from an alias → canonical name mapping.
// The mapping is copied.
func FuncNames(names map[string]string) FuncTable {
	t := make(nameTable, len(names))
	for k, v := range names {
		t[k] = v
	}
	return t
}

// LoadFuncs reads a function table from YAML. The document is a mapping from
// alias to canonical name; an empty value means the alias is its own
// canonical name:
//
//	sin:
//	arcsin: asin
//	gamma:
func LoadFuncs(r io.Reader) (FuncTable, error) {
	var doc map[string]string
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("notation: decoding function table: %w", err)
	}
	t := make(nameTable, len(doc))
	for k, v := range doc {
		if v == "" {
			v = k
		}
		t[k] = v
	}
	return t, nil
}
