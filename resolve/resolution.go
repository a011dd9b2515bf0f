package resolve

import (
	"golang.org/x/xerrors"

	tmpl "github.com/yetamine-go/template"
)

// Result is a tri-state resolution outcome: it must distinguish "resolved
// to a value" from "resolved to unresolved" so the cache can hold
// negative entries.
type Result struct {
	OK    bool
	Value string
}

// linkResult memoizes one placeholder's Linking outcome, computed once
// during graph construction (phase A) and reused during substitution
// (phase B) so Template.Apply's error-free Resolver signature never
// needs to re-invoke a caller function that can fail.
type linkResult[T any] struct {
	target T
	found  bool
}

// vertex is one node of the dependency graph: a binding plus its
// adjacency sets. incoming holds the references this vertex still
// depends on (must resolve first); outgoing holds the references that
// depend on this one.
type vertex[T comparable] struct {
	binding  Binding[T]
	links    map[string]linkResult[T]
	incoming map[T]struct{}
	outgoing map[T]struct{}
}

// resolution is the per-call graph-build-and-solve instance: it exists
// only for the duration of one top-level Resolve call.
type resolution[T comparable] struct {
	linking   Linking[T]
	lookup    Lookup[T]
	onFailure FailureHandler[T]

	vertices map[T]*vertex[T]
	resolved map[T]Result
}

func newResolution[T comparable](linking Linking[T], lookup Lookup[T], onFailure FailureHandler[T]) *resolution[T] {
	return &resolution[T]{
		linking:   linking,
		lookup:    lookup,
		onFailure: onFailure,
		vertices:  make(map[T]*vertex[T]),
		resolved:  make(map[T]Result),
	}
}

// decompose applies t with a resolver that records every placeholder
// name it is asked about (in first-seen order) and always answers "not
// found". The returned projection is the string t.Apply would produce
// for a resolver that resolves nothing — which, when no placeholders
// were recorded, is exactly t's final resolution.
func decompose(t tmpl.Template) (projection string, names []string) {
	seen := make(map[string]bool)
	recorder := func(name string) (string, bool) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		return "", false
	}
	return t.Apply(recorder), names
}

// addBinding inserts a newly-discovered vertex for ref (or records it as
// an immediately-resolved terminal when its template has no
// placeholders), memoizing so each distinct reference is decomposed at
// most once per resolution.
func (r *resolution[T]) addBinding(ref T, binding Binding[T]) error {
	if _, ok := r.vertices[ref]; ok {
		return nil
	}
	if _, ok := r.resolved[ref]; ok {
		return nil
	}

	projection, names := decompose(binding.Template)
	if len(names) == 0 {
		r.resolved[ref] = Result{OK: true, Value: projection}
		return nil
	}

	v := &vertex[T]{
		binding:  binding,
		links:    make(map[string]linkResult[T], len(names)),
		incoming: make(map[T]struct{}),
		outgoing: make(map[T]struct{}),
	}
	r.vertices[ref] = v

	for _, p := range names {
		target, found, err := r.linking(p, tmpl.Some(binding.Context))
		if err != nil {
			return err
		}
		v.links[p] = linkResult[T]{target: target, found: found}
		if !found {
			continue
		}
		if err := r.ensure(target); err != nil {
			return err
		}
		if tv, isVertex := r.vertices[target]; isVertex {
			v.incoming[target] = struct{}{}
			tv.outgoing[ref] = struct{}{}
		}
	}
	return nil
}

// ensure guarantees ref has been looked up and, if found, decomposed
// into the graph (or recorded as resolved) before returning.
func (r *resolution[T]) ensure(ref T) error {
	if _, ok := r.vertices[ref]; ok {
		return nil
	}
	if _, ok := r.resolved[ref]; ok {
		return nil
	}
	binding, found, err := r.lookup(ref)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	return r.addBinding(ref, binding)
}

// valueFor substitutes v's template using only already-resolved
// dependencies, per the ordinary (non-cycle) phase B rule.
func (r *resolution[T]) valueFor(v *vertex[T]) string {
	resolver := func(placeholder string) (string, bool) {
		lr, ok := v.links[placeholder]
		if !ok || !lr.found {
			return "", false
		}
		e, ok := r.resolved[lr.target]
		if !ok || !e.OK {
			return "", false
		}
		return e.Value, true
	}
	return v.binding.Template.Apply(resolver)
}

// cutVertex removes ref from the graph and, for every vertex that
// depended on it, removes ref from that vertex's incoming set.
func (r *resolution[T]) cutVertex(ref T, v *vertex[T]) {
	for dependent := range v.outgoing {
		if dv, ok := r.vertices[dependent]; ok {
			delete(dv.incoming, ref)
		}
	}
	delete(r.vertices, ref)
}

// drain repeatedly resolves every vertex with an empty incoming set
// until a full pass makes no progress.
func (r *resolution[T]) drain() {
	for {
		progressed := false
		for ref, v := range r.vertices {
			if len(v.incoming) != 0 {
				continue
			}
			r.resolved[ref] = Result{OK: true, Value: r.valueFor(v)}
			r.cutVertex(ref, v)
			progressed = true
		}
		if !progressed {
			return
		}
	}
}

// findCycles returns the set of vertices that lie ON some cycle (not
// merely depending on one), via a white/gray/black DFS over the
// remaining incoming edges: a vertex revisited while still gray (on the
// current path) marks every vertex from its first occurrence onward as
// cyclic.
func (r *resolution[T]) findCycles() []T {
	const (
		white = iota
		gray
		black
	)
	state := make(map[T]int, len(r.vertices))
	depth := make(map[T]int, len(r.vertices))
	onCycle := make(map[T]struct{})
	var order []T
	var path []T

	var visit func(v T)
	visit = func(v T) {
		switch state[v] {
		case black:
			return
		case gray:
			start := depth[v]
			for _, w := range path[start:] {
				if _, marked := onCycle[w]; !marked {
					onCycle[w] = struct{}{}
					order = append(order, w)
				}
			}
			return
		}
		state[v] = gray
		depth[v] = len(path)
		path = append(path, v)
		if vx, ok := r.vertices[v]; ok {
			for dep := range vx.incoming {
				visit(dep)
			}
		}
		path = path[:len(path)-1]
		state[v] = black
	}

	for ref := range r.vertices {
		visit(ref)
	}
	return order
}

// solve runs phase B, then (if a non-empty graph remains) isolates
// cycles via phase C and resumes phase B until the graph is empty.
func (r *resolution[T]) solve() error {
	r.drain()
	if len(r.vertices) == 0 {
		return nil
	}

	for _, ref := range r.findCycles() {
		v, ok := r.vertices[ref]
		if !ok {
			continue // already cut by an earlier handler call this pass
		}
		resolved := func(t T) (string, bool) {
			e, ok := r.resolved[t]
			if !ok || !e.OK {
				return "", false
			}
			return e.Value, true
		}
		value, ok, err := r.onFailure(ref, v.binding, resolved)
		if err != nil {
			return err
		}
		r.resolved[ref] = Result{OK: ok, Value: value}
		r.cutVertex(ref, v)
	}

	r.drain()
	if len(r.vertices) != 0 {
		return xerrors.New("resolve: dependency graph failed to converge after cycle handling")
	}
	return nil
}
