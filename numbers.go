package notation

import (
	"math"
	"strconv"
)

// NumberFunc converts the text of a merged numeric-literal run into its
// value. The tokenizer only passes text matching [0-9]*.?[0-9]* with at
// least one digit or a digit-adjacent dot, never a lone ".".
type NumberFunc func(text string) float64

// parseNumber is the default NumberFunc.
func parseNumber(text string) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
