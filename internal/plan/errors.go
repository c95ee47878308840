package plan

import "errors"

// Domain errors for plan payload validation. These never surface to the
// transport layer; they trigger the empty-plan fallback instead.
var (
	ErrInvalidType   = errors.New("block type must be deep, meeting, break, workout, reading, or custom")
	ErrInvalidTime   = errors.New("block time must be HH:MM")
	ErrOutsideWindow = errors.New("block time outside working window")
	ErrTaskCoverage  = errors.New("plan does not cover every task")
)
