package notation

// ParseOption is an option for parsing.
type ParseOption interface {
	apply(p *parser)
}

type (
	funcsopt struct{ t FuncTable }
	numopt   struct{ f NumberFunc }
	diagopt  struct{ r Reporter }
)

// ParseFuncs sets the canonical-function-name table consulted while merging
// word runs. Pass nil to parse every identifier as a plain symbol.
func ParseFuncs(t FuncTable) ParseOption {
	return &funcsopt{t}
}

func (o *funcsopt) apply(p *parser) {
	if o.t == nil {
		p.funcs = FuncNames(nil)
		return
	}
	p.funcs = o.t
}

// ParseNumbers sets the numeric-literal converter applied to merged digit
// runs.
func ParseNumbers(f NumberFunc) ParseOption {
	return &numopt{f}
}

func (o *numopt) apply(p *parser) {
	p.num = o.f
}

// ReportTo sets the sink that receives syntax diagnostics. Without it,
// diagnostics are dropped and failures only show up as Error nodes.
func ReportTo(r Reporter) ParseOption {
	return &diagopt{r}
}

func (o *diagopt) apply(p *parser) {
	p.diag = o.r
}

// ParsingPreset bundles options so that one resolved configuration can be
// reused across many calls to Parse.
func ParsingPreset(opts ...ParseOption) ParseOption {
	p := &parser{}
	for _, opt := range opts {
		opt.apply(p)
	}
	return (*presetopt)(p)
}

type presetopt parser

func (o *presetopt) apply(p *parser) {
	if o.funcs != nil {
		p.funcs = o.funcs
	}
	if o.num != nil {
		p.num = o.num
	}
	if o.diag != nil {
		p.diag = o.diag
	}
}
