package resolve

// RecursiveResolver resolves a reference whose bound template may itself
// contain placeholders that resolve to further templates, transitively.
// It detects cycles, resolves every non-cyclic dependency even when
// cycles exist elsewhere in the graph, and optionally caches results.
//
// A RecursiveResolver may be invoked concurrently from multiple
// goroutines if linking, lookup, and the failure handler are themselves
// safe for concurrent use and return stable results for equal inputs;
// the per-call resolution graph is never shared across goroutines.
type RecursiveResolver[T comparable] struct {
	linking   Linking[T]
	lookup    Lookup[T]
	onFailure FailureHandler[T]
	cache     *Cache[T]
}

// Option configures a RecursiveResolver at construction time.
type Option[T comparable] func(*RecursiveResolver[T])

// WithFailureHandler overrides the default failure handler (which leaves
// every cyclic reference unresolved).
func WithFailureHandler[T comparable](h FailureHandler[T]) Option[T] {
	return func(r *RecursiveResolver[T]) { r.onFailure = h }
}

// WithCaching enables the thread-safe, negative-caching result cache.
func WithCaching[T comparable]() Option[T] {
	return func(r *RecursiveResolver[T]) { r.cache = newCache[T]() }
}

// New builds a RecursiveResolver from lookup and linking, applying opts.
func New[T comparable](lookup Lookup[T], linking Linking[T], opts ...Option[T]) *RecursiveResolver[T] {
	r := &RecursiveResolver[T]{
		lookup:    lookup,
		linking:   linking,
		onFailure: defaultFailureHandler[T],
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Cache returns the resolver's cache, or nil when caching is disabled.
func (r *RecursiveResolver[T]) Cache() *Cache[T] { return r.cache }

// Resolve resolves reference, recursively substituting any nested
// placeholders. ok=false means the placeholder stayed unresolved (no
// binding was found for it, or it was cut from a cycle by a failure
// handler that declined to supply a value) — never an error.
func (r *RecursiveResolver[T]) Resolve(reference T) (value string, ok bool, err error) {
	if r.cache != nil {
		if e, found := r.cache.Load(reference); found {
			return e.Value, e.OK, nil
		}
	}

	binding, found, err := r.lookup(reference)
	if err != nil {
		return "", false, err
	}
	if !found {
		if r.cache != nil {
			r.cache.Store(map[T]Result{reference: {OK: false}})
		}
		return "", false, nil
	}

	res := newResolution[T](r.linking, r.lookup, r.onFailure)
	if err := res.addBinding(reference, binding); err != nil {
		return "", false, err
	}
	if err := res.solve(); err != nil {
		return "", false, err
	}

	if r.cache != nil {
		r.cache.Store(res.resolved)
	}

	e := res.resolved[reference]
	return e.Value, e.OK, nil
}
