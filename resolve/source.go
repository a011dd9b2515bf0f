package resolve

import tmpl "github.com/yetamine-go/template"

// ConstantsFunc, TemplatesFunc, and FallbackFunc each map a reference to
// a possible raw string; they are the three layers a Source composes
// into a single Lookup.
type ConstantsFunc[T any] func(reference T) (string, bool)
type TemplatesFunc[T any] func(reference T) (string, bool)
type FallbackFunc[T any] func(reference T) (string, bool)

// ParsingFailureHandler is consulted when Templates(reference) yields a
// string that fails a Format's validation hook. Returning ok=true
// substitutes its own literal replacement; ok=false falls through to
// Fallback.
type ParsingFailureHandler[T any] func(reference T, definition string, cause error) (replacement string, ok bool)

// Source composes constants, templates, and fallback lookups (tried in
// that order) into a single Lookup, parsing any matched template string
// with Format.
type Source[T any] struct {
	Constants        ConstantsFunc[T]
	Templates        TemplatesFunc[T]
	Fallback         FallbackFunc[T]
	Format           tmpl.Format
	OnParsingFailure ParsingFailureHandler[T]
}

// Lookup implements the Lookup[T] contract by composing the Source's
// three layers in order:
//  1. Constants(r) present: a literal Binding.
//  2. Templates(r) present: parse it; on success a parsed Binding; on
//     failure, ask OnParsingFailure for a literal replacement, else fall
//     through.
//  3. Fallback(r) present: a literal Binding.
//  4. None of the above: not found.
func (s Source[T]) Lookup(reference T) (Binding[T], bool, error) {
	if s.Constants != nil {
		if c, ok := s.Constants(reference); ok {
			return Binding[T]{Template: tmpl.Literal(c), Context: reference}, true, nil
		}
	}
	if s.Templates != nil {
		if raw, ok := s.Templates(reference); ok {
			parsed, err := s.Format.Parse(raw)
			if err == nil {
				return Binding[T]{Template: parsed, Context: reference}, true, nil
			}
			if s.OnParsingFailure != nil {
				if repl, ok := s.OnParsingFailure(reference, raw, err); ok {
					return Binding[T]{Template: tmpl.Literal(repl), Context: reference}, true, nil
				}
			}
			// Fall through to Fallback.
		}
	}
	if s.Fallback != nil {
		if f, ok := s.Fallback(reference); ok {
			return Binding[T]{Template: tmpl.Literal(f), Context: reference}, true, nil
		}
	}
	return Binding[T]{}, false, nil
}

// AsLookup adapts s to the Lookup[T] function type expected by New.
func (s Source[T]) AsLookup() Lookup[T] {
	return s.Lookup
}
