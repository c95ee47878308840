package council

import "errors"

// Domain errors for council payload validation. These never surface to the
// transport layer; they trigger the empty fallback instead.
var (
	ErrInvalidVote     = errors.New("vote must be GO, EXPERIMENT, PIVOT, or KILL")
	ErrInvalidPersonas = errors.New("invalid persona roster")
	ErrInvalidRadar    = errors.New("invalid bias radar")
)
