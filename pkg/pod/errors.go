package pod

import "fmt"

// TypeError reports that an extraction or decode step expected one tag and
// found another. Expected is a tag name such as "integer" or
// "float or integer".
type TypeError struct {
	Expected string
	Actual   Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// DecodeError reports that the target type's shape could not be satisfied
// by the Pod's structure: wrong arity, ambiguous enum representation, a
// multi-character string where a single character was required, and so on.
type DecodeError struct {
	Msg string
}

func (e *DecodeError) Error() string {
	return "decode: " + e.Msg
}

func decodeErrorf(format string, args ...any) *DecodeError {
	return &DecodeError{Msg: fmt.Sprintf(format, args...)}
}
