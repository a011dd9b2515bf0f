package template

import "testing"

func identityResolver(string) (string, bool) { return "", false }

func TestLiteralApplyAndDefinition(t *testing.T) {
	l := Literal("hello")
	if l.Apply(identityResolver) != "hello" {
		t.Fatalf("unexpected apply result")
	}
	if l.Definition() != "hello" {
		t.Fatalf("unexpected definition")
	}
}

func TestConstantAppliesValueNotDefinition(t *testing.T) {
	c := Constant("$${x}", "${x}")
	if c.Apply(identityResolver) != "${x}" {
		t.Fatalf("constant should apply to its value")
	}
	if c.Definition() != "$${x}" {
		t.Fatalf("constant definition should be the escaped source")
	}
}

func TestReferenceFallsBackToDefinitionWhenUnresolved(t *testing.T) {
	r := Reference("${meal}", "meal")
	if r.Apply(identityResolver) != "${meal}" {
		t.Fatalf("unresolved reference should keep its definition")
	}
	resolved := func(name string) (string, bool) {
		if name == "meal" {
			return "pizza", true
		}
		return "", false
	}
	if r.Apply(resolved) != "pizza" {
		t.Fatalf("resolved reference should use the resolver's value")
	}
}

func TestSequenceCanonicalizesZeroAndOneElement(t *testing.T) {
	empty := Sequence(nil)
	if _, ok := empty.(literalTemplate); !ok || empty.Definition() != "" {
		t.Fatalf("empty sequence must canonicalize to an empty literal")
	}
	single := Sequence([]Template{Literal("x")})
	if single.Definition() != "x" {
		t.Fatalf("single-element sequence must canonicalize to that element")
	}
}

func TestSequenceFlattensNestedSequences(t *testing.T) {
	inner := Sequence([]Template{Literal("a"), Literal("b")})
	outer := Sequence([]Template{inner, Literal("c")})
	frags := Fragments(outer)
	if len(frags) != 3 {
		t.Fatalf("expected flattening, got %d fragments: %+v", len(frags), frags)
	}
}

func TestSequenceApplyAndDefinition(t *testing.T) {
	seq := Sequence([]Template{
		Literal("Hello "),
		Reference("${name}", "name"),
		Literal("!"),
	})
	resolver := func(name string) (string, bool) {
		if name == "name" {
			return "Kitty", true
		}
		return "", false
	}
	if got := seq.Apply(resolver); got != "Hello Kitty!" {
		t.Fatalf("unexpected apply result: %q", got)
	}
	if got := seq.Definition(); got != "Hello ${name}!" {
		t.Fatalf("unexpected definition: %q", got)
	}
}

func TestTemplateEqual(t *testing.T) {
	a := Sequence([]Template{Literal("x"), Reference("${y}", "y")})
	b := Sequence([]Template{Literal("x"), Reference("${y}", "y")})
	c := Sequence([]Template{Literal("x"), Reference("${z}", "z")})
	if !a.Equal(b) {
		t.Fatalf("structurally equal templates should compare equal")
	}
	if a.Equal(c) {
		t.Fatalf("structurally different templates should not compare equal")
	}
}
