// Package notation parses two-dimensional math notation layouts into
// expression trees.
//
// The input is not text but a layout tree: containers of glyphs and special
// constructs like fractions, radicals, absolute values, parentheses, and
// superscripts, the shape an equation editor produces. Nested containers are
// resolved bottom-up during tokenization, so the grammar itself only ever
// sees a flat token stream and ordinary precedence climbing applies.
//
// The grammar matches handwritten math: "2xy" is a multiplication of three
// terms, "sin 2x" calls sin on 2x, "sin^-1 x" is the inverse function, and
// "a-b" is the sum of a and the negation of b. Parse always returns a node;
// malformed input yields an Error node whose range tells the caller what
// region of the layout to highlight, with details reported to a Reporter.
package notation
