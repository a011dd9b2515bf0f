package template

import (
	"strings"
	"unicode/utf8"
)

// TokenScanner finds the next symbol in an input string starting at an
// offset. Implementations must be deterministic and pure over
// (input, offset): no state may be carried between calls.
type TokenScanner interface {
	// Find returns the next token at or after offset, or ok=false when no
	// symbol occurs in input[offset:].
	Find(input string, offset int) (token Token[Symbol], ok bool)
}

// closingMode distinguishes the two ways a SymbolScanner may recognize the
// end of a reference.
type closingMode int

const (
	closingBracket closingMode = iota
	closingPredicate
)

// symbolScanner is the TokenScanner backing InterpolationFormat. It
// implements the escape/bracket/predicate tie-break rules of the
// specification.
type symbolScanner struct {
	opening   string
	closing   string // closingBracket mode only
	predicate func(rune) bool
	escaping  string
	mode      closingMode
}

func newBracketScanner(opening, closing, escaping string) *symbolScanner {
	return &symbolScanner{opening: opening, closing: closing, escaping: escaping, mode: closingBracket}
}

func newPredicateScanner(opening string, predicate func(rune) bool, escaping string) *symbolScanner {
	return &symbolScanner{opening: opening, predicate: predicate, escaping: escaping, mode: closingPredicate}
}

// Find locates the next escape, bracketed reference, or predicate-closed
// reference at or after offset, applying the tie-break rules above.
func (s *symbolScanner) Find(input string, offset int) (Token[Symbol], bool) {
	rest := input[offset:]
	idx := strings.Index(rest, s.opening)
	if idx < 0 {
		return Token[Symbol]{}, false
	}
	p := offset + idx
	openEnd := p + len(s.opening)

	// Escape check: forward when escaping == opening, backward otherwise.
	if s.escaping != "" {
		if s.escaping == s.opening {
			if strings.HasPrefix(input[openEnd:], s.opening) {
				to := openEnd + len(s.opening)
				return NewToken(p, to, Symbol{Definition: input[p:to], Value: s.opening, IsConstant: true}), true
			}
		} else {
			escStart := p - len(s.escaping)
			if escStart >= offset && input[escStart:p] == s.escaping {
				return NewToken(escStart, openEnd, Symbol{Definition: input[escStart:openEnd], Value: s.opening, IsConstant: true}), true
			}
		}
	}

	switch s.mode {
	case closingBracket:
		return s.findBracketed(input, p, openEnd)
	default:
		return s.findPredicated(input, p, openEnd)
	}
}

func (s *symbolScanner) findBracketed(input string, p, openEnd int) (Token[Symbol], bool) {
	rel := strings.Index(input[openEnd:], s.closing)
	if rel < 0 {
		// Dangling open: no closing sequence found.
		return NewToken(p, openEnd, Symbol{Definition: input[p:openEnd], Value: s.opening, IsConstant: true}), true
	}
	q := openEnd + rel
	to := q + len(s.closing)
	return NewToken(p, to, Symbol{
		Definition: input[p:to],
		Value:      input[openEnd:q],
		IsConstant: false,
	}), true
}

func (s *symbolScanner) findPredicated(input string, p, openEnd int) (Token[Symbol], bool) {
	pos := openEnd
	for pos < len(input) {
		if strings.HasPrefix(input[pos:], s.opening) {
			break
		}
		if s.escaping != "" && strings.HasPrefix(input[pos:], s.escaping+s.opening) {
			break
		}
		r, width := utf8.DecodeRuneInString(input[pos:])
		if !s.predicate(r) {
			break
		}
		pos += width
	}
	return NewToken(p, pos, Symbol{
		Definition: input[p:pos],
		Value:      input[openEnd:pos],
		IsConstant: false,
	}), true
}
