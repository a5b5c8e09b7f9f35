package resolve

import "fmt"

// Kind classifies a fatal resolution error.
type Kind int

const (
	// KindMissingKey covers a mandatory keyword that is absent or of the
	// wrong type.
	KindMissingKey Kind = iota + 1
	// KindInvalidEnum covers an output-verbosity value outside {all, last, none}.
	KindInvalidEnum
	// KindCrossField covers a broken multi-field invariant.
	KindCrossField
	// KindUnsupportedValue covers a value outside its supported set, such as
	// a numeric-precision byte width other than 4 or 8.
	KindUnsupportedValue
)

func (k Kind) String() string {
	switch k {
	case KindMissingKey:
		return "missing or malformed key"
	case KindInvalidEnum:
		return "invalid enum value"
	case KindCrossField:
		return "cross-field violation"
	case KindUnsupportedValue:
		return "unsupported value"
	}
	return "unknown"
}

// Phase names for error labels.
const (
	PhaseInitial = "initial"
	PhaseFinal   = "final-iteration"
)

// Error is a fatal resolution failure. It labels the resolution phase, the
// offending field, and the error kind; resolution stops at the first one and
// the whole run aborts.
type Error struct {
	Phase string
	Field string
	Kind  Kind
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s resolution: %s: %s: %s", e.Phase, e.Kind, e.Field, e.Msg)
}

func errMissing(phase, field string, err error) *Error {
	return &Error{Phase: phase, Field: field, Kind: KindMissingKey, Msg: err.Error()}
}

func errEnum(phase, field string, err error) *Error {
	return &Error{Phase: phase, Field: field, Kind: KindInvalidEnum, Msg: err.Error()}
}

func errCross(phase, field, msg string) *Error {
	return &Error{Phase: phase, Field: field, Kind: KindCrossField, Msg: msg}
}

func errUnsupported(phase, field string, err error) *Error {
	return &Error{Phase: phase, Field: field, Kind: KindUnsupportedValue, Msg: err.Error()}
}
