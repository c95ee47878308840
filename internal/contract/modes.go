package contract

import "slices"

// Mode identifies a structured operation mode with a declared contract.
// The chat passthrough carries no contract and has no Mode.
type Mode string

// Valid contract modes.
const (
	ModeClassify Mode = "classify"
	ModePlan     Mode = "plan"
	ModeCouncil  Mode = "council"
)

var modes = []Mode{
	ModeClassify,
	ModePlan,
	ModeCouncil,
}

// Modes returns the list of valid contract modes.
func Modes() []Mode {
	return modes
}

// ParseMode validates a string as a known contract mode.
// Returns ErrInvalidMode if the value is not recognized.
func ParseMode(s string) (Mode, error) {
	v := Mode(s)
	if !slices.Contains(modes, v) {
		return "", ErrInvalidMode
	}
	return v, nil
}
