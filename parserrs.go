package notation

import "strconv"

// Diagnostic is a syntax problem with range information. Every diagnostic
// the parser reports implements it.
type Diagnostic interface {
	error
	// Range returns the anchor span of the layout region that caused the
	// diagnostic.
	Range() Span
}

// Reporter is the sink syntax diagnostics are delivered to. Reports are
// fire-and-forget; the parser never consumes a return value. A failed parse
// reports once and aborts that branch rather than batching errors.
type Reporter interface {
	UnexpectedToken(err *TokenError)
	AmbiguousExponent(err *ExponentError)
}

// TokenError indicates a token the grammar has no rule for at its position.
type TokenError struct {
	// Span is the offending token's range.
	Span Span
	// Token describes the token, e.g. `'*'` or "end of input".
	Token string
}

func (err *TokenError) Error() string {
	return errspan(err.Span, "unexpected "+err.Token)
}

func (err *TokenError) Range() Span {
	return err.Span
}

// ExponentError indicates a function symbol carrying a superscript other
// than exactly -1, which has no single conventional reading.
type ExponentError struct {
	// Span is the superscript's range.
	Span Span
	// Func is the function name the exponent was attached to.
	Func string
}

func (err *ExponentError) Error() string {
	return errspan(err.Span, "ambiguous exponent on function "+err.Func)
}

func (err *ExponentError) Range() Span {
	return err.Span
}

// errspan is a shortcut to create an error message with a position.
func errspan(s Span, msg string) string {
	return strconv.Itoa(s.Start) + ": " + msg
}

var (
	_ Diagnostic = (*TokenError)(nil)
	_ Diagnostic = (*ExponentError)(nil)
)

// Recorder is a Reporter that collects every diagnostic it receives, in
// report order.
type Recorder struct {
	Diags []Diagnostic
}

func (r *Recorder) UnexpectedToken(err *TokenError) {
	r.Diags = append(r.Diags, err)
}

func (r *Recorder) AmbiguousExponent(err *ExponentError) {
	r.Diags = append(r.Diags, err)
}

// discard is the default Reporter.
type discard struct{}

func (discard) UnexpectedToken(*TokenError)      {}
func (discard) AmbiguousExponent(*ExponentError) {}
