// Package resolve implements recursive resolution over templates whose
// placeholders may themselves resolve to further templates: it builds a
// dependency graph, resolves it topologically, isolates cycles behind a
// caller-supplied failure handler, and optionally caches results.
package resolve

import tmpl "github.com/yetamine-go/template"

// Binding is a parsed template together with the context it was looked
// up in. It is the vertex payload of the resolver's dependency graph.
type Binding[T any] struct {
	Template tmpl.Template
	Context  T
}

// Lookup fetches the template or constant bound to reference. found=false
// means "no binding exists"; the placeholder that led here stays
// unresolved.
type Lookup[T any] func(reference T) (binding Binding[T], found bool, err error)

// Linking maps a placeholder name, plus the context of the template it
// was found in, to an absolute reference Lookup understands. found=false
// leaves the placeholder unresolved rather than routing it through
// Lookup.
type Linking[T any] func(placeholder string, context tmpl.Optional[T]) (reference T, found bool, err error)

// FailureHandler supplies a replacement for a reference that lies on a
// dependency cycle. resolved looks up the already-known resolution of
// any other reference (typically another member of the same cycle);
// ok=false there means "not yet known". Returning ok=false from the
// handler itself leaves the reference unresolved, the same as an
// ordinary lookup miss.
type FailureHandler[T any] func(reference T, binding Binding[T], resolved func(T) (string, bool)) (value string, ok bool, err error)

// defaultFailureHandler leaves every cyclic reference unresolved.
func defaultFailureHandler[T any](T, Binding[T], func(T) (string, bool)) (string, bool, error) {
	return "", false, nil
}
