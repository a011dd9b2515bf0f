package template

import (
	"fmt"

	"golang.org/x/xerrors"
)

// SyntaxError is raised by a Format's validation hook (WithValidation)
// when a parsed Template fails a caller-imposed constraint. The bundled
// scanner is total and never produces one on its own.
type SyntaxError struct {
	Input string
	Cause error
}

func (e *SyntaxError) Error() string {
	return xerrors.Errorf("template: invalid syntax in %q: %w", e.Input, e.Cause).Error()
}

func (e *SyntaxError) Unwrap() error { return e.Cause }

// UnsupportedOperationError is returned by Format.Constant when the
// format has no escaping sequence configured.
type UnsupportedOperationError struct {
	Op     string
	Reason string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("template: unsupported operation %q: %s", e.Op, e.Reason)
}

// configError reports a Format construction failure (empty opening,
// empty closing, or an illegal escaping sequence). Format constructors
// never return a half-built Format alongside one of these.
type configError struct {
	msg string
}

func newConfigError(msg string) error {
	return &configError{msg: msg}
}

func (e *configError) Error() string {
	return "template: invalid format configuration: " + e.msg
}
