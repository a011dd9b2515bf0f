package resolve

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tmpl "github.com/yetamine-go/template"
)

// buildResolution parses every raw template in bindings and feeds it
// through addBinding, the way RecursiveResolver.Resolve does internally,
// without going through the public package at all.
func buildResolution(t *testing.T, bindings map[string]string, refs ...string) *resolution[string] {
	t.Helper()
	identity := func(placeholder string, _ tmpl.Optional[string]) (string, bool, error) {
		return placeholder, true, nil
	}
	lookup := func(ref string) (Binding[string], bool, error) {
		raw, ok := bindings[ref]
		if !ok {
			return Binding[string]{}, false, nil
		}
		parsed, err := tmpl.Standard().Parse(raw)
		if err != nil {
			return Binding[string]{}, false, err
		}
		return Binding[string]{Template: parsed, Context: ref}, true, nil
	}

	res := newResolution[string](identity, lookup, defaultFailureHandler[string])
	for _, ref := range refs {
		binding, found, err := lookup(ref)
		require.NoError(t, err)
		require.True(t, found, "reference %q must be bound", ref)
		require.NoError(t, res.addBinding(ref, binding))
	}
	return res
}

func TestFindCyclesOnSelfLoop(t *testing.T) {
	res := buildResolution(t, map[string]string{"A": "${A}"}, "A")
	cyclic := res.findCycles()
	assert.ElementsMatch(t, []string{"A"}, cyclic)
}

func TestFindCyclesMarksOnlyVerticesOnTheCycle(t *testing.T) {
	// tail depends on the A/B cycle but doesn't lie on it.
	res := buildResolution(t, map[string]string{
		"A":    "${B}",
		"B":    "${A}",
		"tail": "${A}",
	}, "A", "B", "tail")

	cyclic := res.findCycles()
	sort.Strings(cyclic)
	assert.Equal(t, []string{"A", "B"}, cyclic)
}

func TestDrainResolvesAcyclicGraphToCompletion(t *testing.T) {
	res := buildResolution(t, map[string]string{
		"protocol": "https",
		"host":     "localhost",
		"url":      "${protocol}://${host}",
	}, "protocol", "host", "url")

	res.drain()
	assert.Empty(t, res.vertices, "a fully acyclic graph must drain completely")

	got, ok := res.resolved["url"]
	require.True(t, ok)
	assert.True(t, got.OK)
	assert.Equal(t, "https://localhost", got.Value)
}

func TestSolveIsolatesCycleAndResolvesDependents(t *testing.T) {
	res := buildResolution(t, map[string]string{
		"A": "${B}",
		"B": "${A}",
		"C": "${A} and ${D}",
		"D": "done",
	}, "A", "B", "C", "D")

	require.NoError(t, res.solve())
	assert.Empty(t, res.vertices)

	c, ok := res.resolved["C"]
	require.True(t, ok)
	assert.True(t, c.OK)
	assert.Equal(t, "${A} and done", c.Value)

	a, ok := res.resolved["A"]
	require.True(t, ok)
	assert.False(t, a.OK, "a cyclic vertex left unresolved by the default handler must not carry its own definition forward")
}
