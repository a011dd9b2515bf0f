package template

import "strings"

// Resolver maps a placeholder name to its replacement value. ok=false
// means "leave the placeholder unresolved".
type Resolver func(name string) (value string, ok bool)

// Template is the parsed form of a string template: a tree of literal,
// constant, and reference fragments, or a sequence of them. It is a
// closed sum type; the only implementations live in this package.
type Template interface {
	// Apply substitutes every reference using resolver and returns the
	// resulting string.
	Apply(resolver Resolver) string

	// Definition reconstructs the source text that, parsed by the same
	// format, yields a structurally equivalent template.
	Definition() string

	// Equal reports structural equality with another Template.
	Equal(other Template) bool

	template() // unexported marker: closes the sum type to this package.
}

// literalTemplate is a fragment whose source form equals its resolved
// value.
type literalTemplate struct {
	text string
}

// Literal builds a Template whose Apply and Definition both equal text.
func Literal(text string) Template {
	return literalTemplate{text: text}
}

func (l literalTemplate) Apply(Resolver) string { return l.text }
func (l literalTemplate) Definition() string     { return l.text }
func (l literalTemplate) template()              {}

func (l literalTemplate) Equal(other Template) bool {
	o, ok := other.(literalTemplate)
	return ok && o.text == l.text
}

// constantTemplate models an escaped symbol: its source form (definition)
// differs from its resolved value.
type constantTemplate struct {
	definition string
	value      string
}

// Constant builds a Template for an escaped symbol.
func Constant(definition, value string) Template {
	return constantTemplate{definition: definition, value: value}
}

func (c constantTemplate) Apply(Resolver) string { return c.value }
func (c constantTemplate) Definition() string     { return c.definition }
func (c constantTemplate) template()              {}

func (c constantTemplate) Equal(other Template) bool {
	o, ok := other.(constantTemplate)
	return ok && o.definition == c.definition && o.value == c.value
}

// referenceTemplate models an unresolved placeholder.
type referenceTemplate struct {
	definition string
	name       string
}

// Reference builds a Template for a placeholder. Apply substitutes name
// via resolver, falling back to definition when the resolver leaves it
// unresolved.
func Reference(definition, name string) Template {
	return referenceTemplate{definition: definition, name: name}
}

func (r referenceTemplate) Apply(resolver Resolver) string {
	if v, ok := resolver(r.name); ok {
		return v
	}
	return r.definition
}

func (r referenceTemplate) Definition() string { return r.definition }
func (r referenceTemplate) template()          {}

func (r referenceTemplate) Equal(other Template) bool {
	o, ok := other.(referenceTemplate)
	return ok && o.definition == r.definition && o.name == r.name
}

// Name returns the placeholder name this reference resolves.
func (r referenceTemplate) Name() string { return r.name }

// ReferenceName extracts the placeholder name from a Template built by
// Reference, if it is one.
func ReferenceName(t Template) (string, bool) {
	r, ok := t.(referenceTemplate)
	if !ok {
		return "", false
	}
	return r.name, true
}

// sequenceTemplate concatenates a run of fragments. It never contains a
// nested sequenceTemplate; Sequence flattens and canonicalizes.
type sequenceTemplate struct {
	fragments []Template
}

// Sequence builds a Template from fragments in canonical form: zero
// fragments collapse to an empty literal, one fragment is returned as-is,
// and any nested sequences are flattened.
func Sequence(fragments []Template) Template {
	flat := make([]Template, 0, len(fragments))
	for _, f := range fragments {
		if seq, ok := f.(sequenceTemplate); ok {
			flat = append(flat, seq.fragments...)
			continue
		}
		flat = append(flat, f)
	}
	switch len(flat) {
	case 0:
		return literalTemplate{text: ""}
	case 1:
		return flat[0]
	default:
		return sequenceTemplate{fragments: flat}
	}
}

func (s sequenceTemplate) Apply(resolver Resolver) string {
	var b strings.Builder
	for _, f := range s.fragments {
		b.WriteString(f.Apply(resolver))
	}
	return b.String()
}

func (s sequenceTemplate) Definition() string {
	var b strings.Builder
	for _, f := range s.fragments {
		b.WriteString(f.Definition())
	}
	return b.String()
}

func (s sequenceTemplate) template() {}

func (s sequenceTemplate) Equal(other Template) bool {
	o, ok := other.(sequenceTemplate)
	if !ok || len(o.fragments) != len(s.fragments) {
		return false
	}
	for i, f := range s.fragments {
		if !f.Equal(o.fragments[i]) {
			return false
		}
	}
	return true
}

// Fragments returns the parts of a Template built by Sequence, or a
// single-element slice for any other (non-sequence) Template. This is a
// read-only view used by callers that want to walk the fragment tree
// without a type switch on the unexported concrete types.
func Fragments(t Template) []Template {
	if s, ok := t.(sequenceTemplate); ok {
		return append([]Template(nil), s.fragments...)
	}
	return []Template{t}
}
