// Package template parses and resolves string templates: character
// strings containing embedded placeholders which, when resolved, are
// replaced with values computed by a caller-supplied function.
//
// A Format configures the opening/closing/escaping sequences (or a
// closing predicate) a TokenScanner recognizes. Format.Parse produces a
// Template, a tree of literal, constant, and reference fragments that
// can be applied against a Resolver. Recursive resolution, where a
// placeholder's value is itself a template, lives in the resolve
// subpackage.
package template
