package calculator

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is.
var (
	ErrUnknownMaterial            = errors.New("unknown material")
	ErrInvalidTemperatureOrdering = errors.New("invalid temperature ordering")
	ErrInvalidGeometry            = errors.New("invalid geometry")
)

// Error wraps one of the kinds above with the failing operation and detail.
type Error struct {
	Op     string
	Kind   error
	Detail string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %v", e.Op, e.Kind)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}

// KindName names the kind of err for logs, "" when err is not a calculator error.
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrUnknownMaterial):
		return "UnknownMaterial"
	case errors.Is(err, ErrInvalidTemperatureOrdering):
		return "InvalidTemperatureOrdering"
	case errors.Is(err, ErrInvalidGeometry):
		return "InvalidGeometry"
	}
	return ""
}

func newError(op string, kind error, format string, args ...interface{}) *Error {
	return &Error{Op: op, Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
