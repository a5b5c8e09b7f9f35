// Package exitcode defines named exit codes for the rtprep CLI.
//
// Each code maps one resolution-failure class to a numeric value recognized
// by shell scripts and batch schedulers.
package exitcode

import (
	"errors"

	"github.com/photonforge/rtprep/internal/resolve"
)

// Exit code constants.
const (
	Success          = 0 // Configuration resolved and validated
	Error            = 1 // Invalid args, unreadable document, misconfiguration
	MissingKey       = 2 // Mandatory keyword absent or of the wrong type
	InvalidEnum      = 3 // Output-verbosity value outside {all, last, none}
	CrossField       = 4 // Multi-field invariant broken
	UnsupportedValue = 5 // Value outside its supported set
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case MissingKey:
		return "MissingKey"
	case InvalidEnum:
		return "InvalidEnum"
	case CrossField:
		return "CrossField"
	case UnsupportedValue:
		return "UnsupportedValue"
	default:
		return "unknown"
	}
}

// FromError maps a resolution error to its exit code. Errors that are not
// resolution errors map to the generic Error code.
func FromError(err error) int {
	if err == nil {
		return Success
	}
	var rerr *resolve.Error
	if !errors.As(err, &rerr) {
		return Error
	}
	switch rerr.Kind {
	case resolve.KindMissingKey:
		return MissingKey
	case resolve.KindInvalidEnum:
		return InvalidEnum
	case resolve.KindCrossField:
		return CrossField
	case resolve.KindUnsupportedValue:
		return UnsupportedValue
	}
	return Error
}
