package template

import "sync"

// TemplateLiteral is an equality wrapper around a Literal fragment, for
// callers that just want a comparable "this is a fixed string" value
// without reaching into the Template interface. It is a thin collaborator
// over Literal, not a new core behavior.
type TemplateLiteral struct {
	Text string
}

// Template returns the underlying Literal Template.
func (l TemplateLiteral) Template() Template { return Literal(l.Text) }

// TemplateConstant is the equality-wrapper counterpart of TemplateLiteral
// for escaped symbols.
type TemplateConstant struct {
	Definition string
	Value      string
}

// Template returns the underlying Constant Template.
func (c TemplateConstant) Template() Template { return Constant(c.Definition, c.Value) }

// TemplateDefinition wraps a raw definition string and parses it lazily,
// on first access, caching the parsed Template for subsequent calls: a
// definition you might never need to resolve shouldn't pay parsing cost
// up front.
type TemplateDefinition struct {
	format     Format
	definition string

	once   sync.Once
	parsed Template
	err    error
}

// NewTemplateDefinition returns a TemplateDefinition that will parse
// definition with format the first time Template is called.
func NewTemplateDefinition(format Format, definition string) *TemplateDefinition {
	return &TemplateDefinition{format: format, definition: definition}
}

// Definition returns the raw, unparsed source text.
func (d *TemplateDefinition) Definition() string { return d.definition }

// Template parses the definition on first call and returns the cached
// result on every subsequent call.
func (d *TemplateDefinition) Template() (Template, error) {
	d.once.Do(func() {
		d.parsed, d.err = d.format.Parse(d.definition)
	})
	return d.parsed, d.err
}
