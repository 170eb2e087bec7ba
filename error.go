package bmime

import (
	"errors"
)

// Kind classifies the failures the builder can produce itself. Everything
// else, notably read and write errors from part streams, propagates to the
// caller unchanged.
type Kind int

const (
	// KindUnknown is returned by [KindOf] for errors that did not originate here.
	KindUnknown Kind = iota

	// KindUnsupportedSource means a part's source argument is neither a
	// recognized raw form nor a [ByteStream]. AddPart fails eagerly with
	// this kind, before any builder state is mutated.
	KindUnsupportedSource

	// KindFactoryResolution means no usable [StreamFactory] could be
	// located and none was supplied. Raised at construction time.
	KindFactoryResolution

	// KindConfiguration means the memory-limit configuration string could
	// not be parsed while auto-estimating the buffer threshold. Raised at
	// build time.
	KindConfiguration
)

// String names the kind for error messages.
func (k Kind) String() string {
	switch k {
	case KindUnsupportedSource:
		return "unsupported source"
	case KindFactoryResolution:
		return "factory resolution"
	case KindConfiguration:
		return "configuration"
	default:
		return "unknown"
	}
}

// Error describes a builder error.
type Error struct {
	kind Kind
	err  error
}

// NewError inits a new error given the error kind.
func NewError(k Kind, underlying error) *Error {
	return &Error{k, underlying}
}

func (e *Error) Kind() Kind { return e.kind }
func (e *Error) Error() string {
	return e.kind.String() + ": " + e.err.Error()
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.err }

// KindOf returns the error's kind if it is or wraps an [*Error] and
// [KindUnknown] otherwise.
func KindOf(err error) Kind {
	if builderErr, ok := asError(err); ok {
		return builderErr.Kind()
	}
	return KindUnknown
}

// asError uses errors.As to unwrap any error and look for a bmime *Error.
func asError(err error) (*Error, bool) {
	var builderErr *Error
	ok := errors.As(err, &builderErr)
	return builderErr, ok
}
