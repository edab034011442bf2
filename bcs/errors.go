package bcs

import "fmt"

// ErrorKind classifies the ways a BCS encode operation can fail.
type ErrorKind int

const (
	// ErrNotSupported indicates an attempt to encode a value BCS cannot
	// represent, such as a float or a char.
	ErrNotSupported ErrorKind = iota
	// ErrExceededMaxLen indicates a sequence, string, or byte vector longer
	// than MaxSequenceLength, or a U128/U256 value too large for its width.
	ErrExceededMaxLen
	// ErrExceededContainerDepthLimit indicates the named-container nesting
	// budget (the Serializer's depth limit, DefaultDepthLimit unless set
	// lower) was exhausted.
	ErrExceededContainerDepthLimit
	// ErrMissingLen classifies a sequence whose length is not known when it
	// begins. BeginSeq always takes an explicit length and EndSeq performs no
	// check, so no Serializer method in this package produces it.
	ErrMissingLen
	// ErrExpectedMapKey indicates Value was called on a MapEncoder before
	// a matching Key call.
	ErrExpectedMapKey
	// ErrExpectedMapValue indicates End or Key was called on a MapEncoder
	// while a Key call is still awaiting its Value.
	ErrExpectedMapValue
	// ErrIO wraps a failure from the underlying sink's Write.
	ErrIO
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNotSupported:
		return "not supported"
	case ErrExceededMaxLen:
		return "exceeded max length"
	case ErrExceededContainerDepthLimit:
		return "exceeded container depth limit"
	case ErrMissingLen:
		return "missing length"
	case ErrExpectedMapKey:
		return "expected map key"
	case ErrExpectedMapValue:
		return "expected map value"
	case ErrIO:
		return "io error"
	default:
		return "unknown"
	}
}

// Error is the error type returned by all bcs encode failures. Once a
// Serializer holds one, every subsequent method on it becomes a no-op.
type Error struct {
	Kind ErrorKind
	Msg  string
	err  error // wrapped cause, for ErrIO
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("bcs: %s: %v", e.Kind, e.err)
	}
	if e.Msg != "" {
		return fmt.Sprintf("bcs: %s: %s", e.Kind, e.Msg)
	}
	return "bcs: " + e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.err
}

// Is implements errors.Is by matching on Kind, so callers can write
// errors.Is(err, bcs.ErrExceededContainerDepthLimit) style checks against
// the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func newIOError(err error) *Error {
	return &Error{Kind: ErrIO, err: err}
}

// Sentinel errors usable with errors.Is against any *Error of the same Kind.
var (
	SentinelNotSupported       = &Error{Kind: ErrNotSupported}
	SentinelExceededMaxLen     = &Error{Kind: ErrExceededMaxLen}
	SentinelExceededDepthLimit = &Error{Kind: ErrExceededContainerDepthLimit}
	SentinelMissingLen         = &Error{Kind: ErrMissingLen}
	SentinelExpectedMapKey     = &Error{Kind: ErrExpectedMapKey}
	SentinelExpectedMapValue   = &Error{Kind: ErrExpectedMapValue}
)

// IsNotSupported reports whether err is a not-supported BCS encode error.
func IsNotSupported(err error) bool { return kindIs(err, ErrNotSupported) }

// IsExceededMaxLen reports whether err is a max-length BCS encode error.
func IsExceededMaxLen(err error) bool { return kindIs(err, ErrExceededMaxLen) }

// IsExceededDepthLimit reports whether err is a container-depth BCS encode error.
func IsExceededDepthLimit(err error) bool { return kindIs(err, ErrExceededContainerDepthLimit) }

func kindIs(err error, kind ErrorKind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
