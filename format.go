package template

import "strings"

// Format is an immutable interpolation configuration: the opening,
// closing (or closing predicate), and escaping sequences that a
// TokenScanner uses to recognize placeholders. It owns the TokenScanner
// and produces parsers, parsed templates, and "constant-escape" output.
type Format struct {
	opening    string
	closing    string
	predicate  func(rune) bool
	escaping   string
	scanner    TokenScanner
	validate   func(Template) error
}

// Standard returns the conventional "${name}" format, escaped by
// doubling the leading "$".
func Standard() Format {
	f, err := New("${", "}", "$")
	if err != nil {
		panic(err) // unreachable: literal arguments are always valid
	}
	return f
}

// Reduced returns the brace-less "$name" format: references run for as
// long as the name is alphanumeric/underscore, escaped by doubling "$".
func Reduced() Format {
	f, err := NewPredicate("$", isNameRune, "$")
	if err != nil {
		panic(err) // unreachable
	}
	return f
}

func isNameRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// New builds a bracketed Format: opening and closing are non-empty
// delimiter strings. escaping may be empty (no escaping is supported);
// otherwise it must equal opening or must not contain opening.
func New(opening, closing, escaping string) (Format, error) {
	if opening == "" {
		return Format{}, newConfigError("opening sequence must not be empty")
	}
	if closing == "" {
		return Format{}, newConfigError("closing sequence must not be empty")
	}
	if err := validateEscaping(opening, escaping); err != nil {
		return Format{}, err
	}
	return Format{
		opening:  opening,
		closing:  closing,
		escaping: escaping,
		scanner:  newBracketScanner(opening, closing, escaping),
	}, nil
}

// NewPredicate builds a predicate-closed Format: a reference runs from
// opening for as long as predicate accepts the current rune. escaping
// may be empty; otherwise it must equal opening or must not contain
// opening.
func NewPredicate(opening string, predicate func(rune) bool, escaping string) (Format, error) {
	if opening == "" {
		return Format{}, newConfigError("opening sequence must not be empty")
	}
	if predicate == nil {
		return Format{}, newConfigError("closing predicate must not be nil")
	}
	if err := validateEscaping(opening, escaping); err != nil {
		return Format{}, err
	}
	return Format{
		opening:   opening,
		predicate: predicate,
		escaping:  escaping,
		scanner:   newPredicateScanner(opening, predicate, escaping),
	}, nil
}

func validateEscaping(opening, escaping string) error {
	if escaping == "" || escaping == opening {
		return nil
	}
	if strings.Contains(escaping, opening) {
		return newConfigError("escaping sequence must not contain the opening sequence unless equal to it")
	}
	return nil
}

// WithValidation returns a copy of f that additionally runs check against
// every Template parsed by Parse; a non-nil error from check surfaces as
// a *SyntaxError from Parse. The bundled scanner is itself total (it
// never fails), so this hook is the only way a Format-level parse can
// fail — it exists for callers imposing additional constraints on
// parsed templates.
func (f Format) WithValidation(check func(Template) error) Format {
	f.validate = check
	return f
}

// Parser constructs a stateful cursor over input.
func (f Format) Parser(input string) *TemplateParser {
	return newTemplateParser(input, f.scanner)
}

type collectVisitor struct {
	fragments *[]Template
}

func (c collectVisitor) Literal(text string) bool {
	*c.fragments = append(*c.fragments, Literal(text))
	return true
}

func (c collectVisitor) Constant(definition, value string) bool {
	*c.fragments = append(*c.fragments, Constant(definition, value))
	return true
}

func (c collectVisitor) Reference(definition, name string) bool {
	*c.fragments = append(*c.fragments, Reference(definition, name))
	return true
}

func (c collectVisitor) None() bool { return false }

// Parse drives the parser to completion, collecting fragments into the
// canonical Sequence (or a single fragment / empty literal). It returns
// a *SyntaxError only when f carries a validation hook (WithValidation)
// that rejects the result.
func (f Format) Parse(input string) (Template, error) {
	p := f.Parser(input)
	var frags []Template
	v := collectVisitor{fragments: &frags}
	for Next[bool](p, v) {
	}
	t := Sequence(frags)
	if f.validate != nil {
		if err := f.validate(t); err != nil {
			return nil, &SyntaxError{Input: input, Cause: err}
		}
	}
	return t, nil
}

type resolveVisitor struct {
	b        *strings.Builder
	resolver Resolver
}

func (r resolveVisitor) Literal(text string) bool {
	r.b.WriteString(text)
	return true
}

func (r resolveVisitor) Constant(definition, value string) bool {
	r.b.WriteString(value)
	return true
}

func (r resolveVisitor) Reference(definition, name string) bool {
	if v, ok := r.resolver(name); ok {
		r.b.WriteString(v)
	} else {
		r.b.WriteString(definition)
	}
	return true
}

func (r resolveVisitor) None() bool { return false }

// Resolve is a streaming shortcut equivalent to f.Parse(input).Apply(resolver)
// that avoids building an intermediate Template tree. It does not run a
// WithValidation hook, so it never fails.
func (f Format) Resolve(input string, resolver Resolver) string {
	p := f.Parser(input)
	var b strings.Builder
	v := resolveVisitor{b: &b, resolver: resolver}
	for Next[bool](p, v) {
	}
	return b.String()
}

// Constant produces a string that, when parsed by f, yields a Template
// whose Apply equals s for any resolver. It fails with
// *UnsupportedOperationError when f has no escaping sequence.
func (f Format) Constant(s string) (string, error) {
	if f.escaping == "" {
		return "", &UnsupportedOperationError{Op: "constant", Reason: "format has no escaping sequence"}
	}
	return strings.ReplaceAll(s, f.opening, f.escaping+f.opening), nil
}

// Reproduction returns Constant(s) wrapped as an Optional: absent when f
// has no escaping sequence.
func (f Format) Reproduction(s string) Optional[string] {
	c, err := f.Constant(s)
	if err != nil {
		return None[string]()
	}
	return Some(c)
}

// Opening returns the configured opening sequence.
func (f Format) Opening() string { return f.opening }

// Escaping returns the configured escaping sequence (empty means no
// escaping is supported).
func (f Format) Escaping() string { return f.escaping }
