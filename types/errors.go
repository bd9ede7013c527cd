package types

import (
	"errors"
	"fmt"
)

type Kind int

const (
	ParseError Kind = iota + 1
	UnboundSymbol
	TypeMismatch
	ArityMismatch
	MalformedSpecialForm
)

func (k Kind) String() string {
	switch k {
	case ParseError:
		return "parse error"
	case UnboundSymbol:
		return "unbound symbol"
	case TypeMismatch:
		return "type mismatch"
	case ArityMismatch:
		return "arity mismatch"
	case MalformedSpecialForm:
		return "malformed special form"
	default:
		return "error"
	}
}

// Error is the failure value returned by every stage of the interpreter.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Is matches any *Error of the same Kind, so the sentinels below can be used
// with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

var (
	ErrParse     = &Error{Kind: ParseError}
	ErrUnbound   = &Error{Kind: UnboundSymbol}
	ErrType      = &Error{Kind: TypeMismatch}
	ErrArity     = &Error{Kind: ArityMismatch}
	ErrMalformed = &Error{Kind: MalformedSpecialForm}
)

func Errorf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of err, or 0 if err is not an interpreter error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
