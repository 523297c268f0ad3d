package orchestrator

import "errors"

// Kind classifies generation failures.
type Kind int

const (
	// KindEmptyInput marks input that is empty or whitespace only.
	KindEmptyInput Kind = iota + 1
	// KindParse marks input that is not valid JSON.
	KindParse
	// KindShape marks valid JSON whose root is not an object.
	KindShape
)

func (k Kind) String() string {
	switch k {
	case KindEmptyInput:
		return "empty_input"
	case KindParse:
		return "parse"
	case KindShape:
		return "shape"
	default:
		return "unknown"
	}
}

const (
	msgEmptyInput = "Invalid JSON: empty input"
	msgParse      = "Invalid JSON: "
	msgShape      = "Data must be an object (not an array, string, number, or null)"
)

// Error is returned by Generate for input it cannot turn into schemas. Its
// message is the text shown to users.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindEmptyInput:
		return msgEmptyInput
	case KindParse:
		if e.Err == nil {
			return msgParse + "unknown error"
		}
		return msgParse + e.Err.Error()
	case KindShape:
		return msgShape
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "orchestrator: generation failed"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var target *Error
	return errors.As(err, &target) && target.Kind == kind
}
