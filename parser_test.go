package template

import (
	"reflect"
	"testing"
)

type recordedEvent struct {
	kind       fragmentKind
	text       string
	definition string
	value      string
}

type recordingVisitor struct {
	events *[]recordedEvent
}

func (r recordingVisitor) Literal(text string) bool {
	*r.events = append(*r.events, recordedEvent{kind: fragmentLiteral, text: text})
	return true
}

func (r recordingVisitor) Constant(definition, value string) bool {
	*r.events = append(*r.events, recordedEvent{kind: fragmentConstant, definition: definition, value: value})
	return true
}

func (r recordingVisitor) Reference(definition, name string) bool {
	*r.events = append(*r.events, recordedEvent{kind: fragmentReference, definition: definition, value: name})
	return true
}

func (r recordingVisitor) None() bool { return false }

func drive(input string, scanner TokenScanner) []recordedEvent {
	p := newTemplateParser(input, scanner)
	var events []recordedEvent
	v := recordingVisitor{events: &events}
	for Next[bool](p, v) {
	}
	return events
}

func TestTemplateParserEmptyInput(t *testing.T) {
	s := newBracketScanner("${", "}", "$")
	p := newTemplateParser("", s)
	var events []recordedEvent
	v := recordingVisitor{events: &events}

	if !Next[bool](p, v) {
		t.Fatalf("expected the first call to dispatch literal(\"\")")
	}
	if len(events) != 1 || events[0].kind != fragmentLiteral || events[0].text != "" {
		t.Fatalf("unexpected events: %+v", events)
	}
	if !p.Done() {
		t.Fatalf("expected parser to be done")
	}
	if Next[bool](p, v) {
		t.Fatalf("expected none() forever after done")
	}
	if len(events) != 1 {
		t.Fatalf("none() must not emit a fragment: %+v", events)
	}
}

func TestTemplateParserPartitionsInput(t *testing.T) {
	s := newBracketScanner("${", "}", "$")
	got := drive("Hello ${name}! Do you like ${color}?", s)
	want := []recordedEvent{
		{kind: fragmentLiteral, text: "Hello "},
		{kind: fragmentReference, definition: "${name}", value: "name"},
		{kind: fragmentLiteral, text: "! Do you like "},
		{kind: fragmentReference, definition: "${color}", value: "color"},
		{kind: fragmentLiteral, text: "?"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestTemplateParserLeadingAndTrailingSymbols(t *testing.T) {
	s := newBracketScanner("${", "}", "$")
	got := drive("${a}${b}", s)
	want := []recordedEvent{
		{kind: fragmentReference, definition: "${a}", value: "a"},
		{kind: fragmentReference, definition: "${b}", value: "b"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestTemplateParserPureLiteral(t *testing.T) {
	s := newBracketScanner("${", "}", "$")
	got := drive("no placeholders", s)
	want := []recordedEvent{{kind: fragmentLiteral, text: "no placeholders"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestTemplateParserEscapeAndDanglingOpen(t *testing.T) {
	s := newBracketScanner("${", "}", "$")
	got := drive(`a $${b} c ${oops`, s)
	want := []recordedEvent{
		{kind: fragmentLiteral, text: "a "},
		{kind: fragmentConstant, definition: "$${", value: "${"},
		{kind: fragmentLiteral, text: "b} c "},
		{kind: fragmentConstant, definition: "${", value: "${"},
		{kind: fragmentLiteral, text: "oops"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
