// Package council implements the debate simulator domain: the five fixed
// personas, the vote enumeration, the bias radar axes, and the boundary
// validation applied to every model payload.
package council

import (
	"encoding/json"
	"slices"
)

// Vote is one persona's verdict on the debated idea.
type Vote string

// Valid votes.
const (
	VoteGo         Vote = "GO"
	VoteExperiment Vote = "EXPERIMENT"
	VotePivot      Vote = "PIVOT"
	VoteKill       Vote = "KILL"
)

var votes = []Vote{VoteGo, VoteExperiment, VotePivot, VoteKill}

// VoteWeights is the aggregation convention callers apply when tallying a
// council verdict. The service never computes a tally itself.
var VoteWeights = map[Vote]int{
	VoteGo:         2,
	VoteExperiment: 1,
	VotePivot:      0,
	VoteKill:       -2,
}

// UnmarshalJSON validates that the decoded string is a known vote value.
func (v *Vote) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	value := Vote(raw)
	if !slices.Contains(votes, value) {
		return ErrInvalidVote
	}
	*v = value
	return nil
}

// personaNames is the fixed persona roster in its fixed order.
var personaNames = []string{
	"Strategist",
	"Operator",
	"Skeptic",
	"User Advocate",
	"Growth Architect",
}

// PersonaNames returns the fixed persona roster in order.
func PersonaNames() []string {
	return slices.Clone(personaNames)
}

// axes is the fixed bias radar axis set in its fixed order.
var axes = []string{
	"Overconfidence",
	"Market Fit",
	"Execution Risk",
	"User Appeal",
	"Growth Potential",
}

// Axes returns the fixed bias radar axes in order.
func Axes() []string {
	return slices.Clone(axes)
}

// Persona is one argumentative viewpoint's analysis and verdict.
type Persona struct {
	Name     string `json:"name"`
	Analysis string `json:"analysis"`
	Vote     Vote   `json:"vote"`
}

// AxisScore is one bias radar axis scored 0-10.
type AxisScore struct {
	Axis  string  `json:"axis"`
	Value float64 `json:"value"`
}

// Result is a full council debate outcome. Entities are constructed per
// request and never mutated after return.
type Result struct {
	Personas  []Persona   `json:"personas"`
	BiasRadar []AxisScore `json:"bias_radar"`
}
