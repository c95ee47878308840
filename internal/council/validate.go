package council

import (
	"fmt"
	"slices"
)

// Normalize applies the boundary validation contract to a model-returned
// debate: exactly five personas in the fixed roster order with non-empty
// analyses and a valid vote, and exactly five bias radar entries matching the
// fixed axis set in order, with values clamped to [0,10]. A returned error
// means the payload is
// structurally invalid; the caller substitutes the empty fallback — never
// partial or malformed records.
func (r *Result) Normalize() error {
	if len(r.Personas) != len(personaNames) {
		return fmt.Errorf("%w: got %d personas, want %d", ErrInvalidPersonas, len(r.Personas), len(personaNames))
	}
	for i, persona := range r.Personas {
		if persona.Name != personaNames[i] {
			return fmt.Errorf("%w: position %d is %q, want %q", ErrInvalidPersonas, i, persona.Name, personaNames[i])
		}
		if persona.Analysis == "" {
			return fmt.Errorf("%w: %s has empty analysis", ErrInvalidPersonas, persona.Name)
		}
		// A missing vote key bypasses Vote.UnmarshalJSON, so the zero value
		// has to be caught here.
		if !slices.Contains(votes, persona.Vote) {
			return fmt.Errorf("%w: %s cast %q", ErrInvalidVote, persona.Name, persona.Vote)
		}
	}

	if len(r.BiasRadar) != len(axes) {
		return fmt.Errorf("%w: got %d axes, want %d", ErrInvalidRadar, len(r.BiasRadar), len(axes))
	}
	for i := range r.BiasRadar {
		if r.BiasRadar[i].Axis != axes[i] {
			return fmt.Errorf("%w: position %d is %q, want %q", ErrInvalidRadar, i, r.BiasRadar[i].Axis, axes[i])
		}
		if r.BiasRadar[i].Value < 0 {
			r.BiasRadar[i].Value = 0
		}
		if r.BiasRadar[i].Value > 10 {
			r.BiasRadar[i].Value = 10
		}
	}

	return nil
}

// Fallback returns the documented safe result substituted when the model
// returns no usable structured payload: empty persona and radar arrays.
func Fallback() *Result {
	return &Result{
		Personas:  []Persona{},
		BiasRadar: []AxisScore{},
	}
}
