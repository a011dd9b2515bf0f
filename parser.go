package template

// Visitor receives exactly one parse event per call to Next. R is the
// type the caller's handling of that event produces; Next returns it
// verbatim. This is the Go shape of the "callback over parse events"
// pattern: a free generic function (Next) rather than a generic method,
// since a method cannot introduce a type parameter the receiver doesn't
// have.
type Visitor[R any] interface {
	Literal(text string) R
	Constant(definition, value string) R
	Reference(definition, name string) R
	None() R
}

type fragmentKind int

const (
	fragmentNone fragmentKind = iota
	fragmentLiteral
	fragmentConstant
	fragmentReference
)

type fragment struct {
	kind       fragmentKind
	text       string
	definition string
	value      string
}

// scanState caches the most recently located symbol so repeated calls to
// Next don't re-scan the same input region.
type scanState struct {
	valid   bool
	found   bool
	token   Token[Symbol]
	open    int
	donePos int
}

// TemplateParser is a stateful cursor over one input string, emitting
// literal, constant, and reference fragments in order.
type TemplateParser struct {
	input    string
	scanner  TokenScanner
	position int
	done     bool
	state    scanState
}

func newTemplateParser(input string, scanner TokenScanner) *TemplateParser {
	return &TemplateParser{input: input, scanner: scanner}
}

// Done reports whether the parser is exhausted. It turns true on the call
// to Next that dispatches None (for an empty input: on the call that
// emits its single empty literal); every later call dispatches None.
func (p *TemplateParser) Done() bool { return p.done }

// Position returns the cursor's current byte offset into Input().
func (p *TemplateParser) Position() int { return p.position }

// Input returns the string being parsed.
func (p *TemplateParser) Input() string { return p.input }

// advance consumes and returns the next fragment: exhaustion check,
// symbol lookup (reusing a cached scan when the cursor hasn't moved past
// it), constant/reference emission at the symbol's start, or else a
// literal run up to it.
func (p *TemplateParser) advance() fragment {
	if p.done {
		return fragment{kind: fragmentNone}
	}
	if p.position == len(p.input) {
		p.done = true
		if len(p.input) == 0 {
			return fragment{kind: fragmentLiteral, text: ""}
		}
		return fragment{kind: fragmentNone}
	}
	if !p.state.valid || p.position == p.state.donePos {
		tok, ok := p.scanner.Find(p.input, p.position)
		if ok {
			p.state = scanState{valid: true, found: true, token: tok, open: tok.From, donePos: tok.To}
		} else {
			p.state = scanState{valid: true, found: false, open: len(p.input), donePos: len(p.input)}
		}
	}
	if p.state.found && p.position == p.state.open {
		sym := p.state.token.Value
		p.position = p.state.donePos
		if sym.IsConstant {
			return fragment{kind: fragmentConstant, definition: sym.Definition, value: sym.Value}
		}
		return fragment{kind: fragmentReference, definition: sym.Definition, value: sym.Value}
	}
	text := p.input[p.position:p.state.open]
	p.position = p.state.open
	return fragment{kind: fragmentLiteral, text: text}
}

// Next consumes the next fragment and dispatches it to exactly one
// method of v, returning v's result verbatim.
func Next[R any](p *TemplateParser, v Visitor[R]) R {
	f := p.advance()
	switch f.kind {
	case fragmentLiteral:
		return v.Literal(f.text)
	case fragmentConstant:
		return v.Constant(f.definition, f.value)
	case fragmentReference:
		return v.Reference(f.definition, f.value)
	default:
		return v.None()
	}
}
