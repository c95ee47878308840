package council_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/JaimeStill/flux/internal/council"
)

func validResult() *council.Result {
	names := council.PersonaNames()
	personas := make([]council.Persona, 0, len(names))
	for _, name := range names {
		personas = append(personas, council.Persona{
			Name:     name,
			Analysis: "A considered take from " + name + ".",
			Vote:     council.VoteExperiment,
		})
	}

	axes := council.Axes()
	radar := make([]council.AxisScore, 0, len(axes))
	for _, axis := range axes {
		radar = append(radar, council.AxisScore{Axis: axis, Value: 5})
	}

	return &council.Result{Personas: personas, BiasRadar: radar}
}

func TestVoteUnmarshalRejectsUnknown(t *testing.T) {
	var v council.Vote
	err := json.Unmarshal([]byte(`"MAYBE"`), &v)
	if !errors.Is(err, council.ErrInvalidVote) {
		t.Errorf("error = %v, want ErrInvalidVote", err)
	}
}

func TestVoteWeights(t *testing.T) {
	tests := []struct {
		vote council.Vote
		want int
	}{
		{council.VoteGo, 2},
		{council.VoteExperiment, 1},
		{council.VotePivot, 0},
		{council.VoteKill, -2},
	}

	for _, tt := range tests {
		t.Run(string(tt.vote), func(t *testing.T) {
			if got := council.VoteWeights[tt.vote]; got != tt.want {
				t.Errorf("weight: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNormalizeValid(t *testing.T) {
	r := validResult()
	if err := r.Normalize(); err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
}

func TestNormalizeWrongPersonaCount(t *testing.T) {
	r := validResult()
	r.Personas = r.Personas[:4]

	if err := r.Normalize(); !errors.Is(err, council.ErrInvalidPersonas) {
		t.Errorf("error = %v, want ErrInvalidPersonas", err)
	}
}

func TestNormalizeWrongPersonaOrder(t *testing.T) {
	r := validResult()
	r.Personas[0], r.Personas[1] = r.Personas[1], r.Personas[0]

	if err := r.Normalize(); !errors.Is(err, council.ErrInvalidPersonas) {
		t.Errorf("error = %v, want ErrInvalidPersonas", err)
	}
}

func TestNormalizeEmptyAnalysis(t *testing.T) {
	r := validResult()
	r.Personas[2].Analysis = ""

	if err := r.Normalize(); !errors.Is(err, council.ErrInvalidPersonas) {
		t.Errorf("error = %v, want ErrInvalidPersonas", err)
	}
}

func TestNormalizeMissingVote(t *testing.T) {
	r := validResult()
	r.Personas[0].Vote = ""

	if err := r.Normalize(); !errors.Is(err, council.ErrInvalidVote) {
		t.Errorf("error = %v, want ErrInvalidVote", err)
	}
}

func TestNormalizeAbsentVoteKey(t *testing.T) {
	// Vote.UnmarshalJSON never fires when the key is absent, so the zero
	// value must be caught by Normalize.
	raw := `{
		"personas": [
			{"name": "Strategist", "analysis": "Positioning looks sound."},
			{"name": "Operator", "analysis": "Scope is deliverable.", "vote": "GO"},
			{"name": "Skeptic", "analysis": "Churn risk is unproven.", "vote": "PIVOT"},
			{"name": "User Advocate", "analysis": "Users asked for this.", "vote": "GO"},
			{"name": "Growth Architect", "analysis": "Expands the funnel.", "vote": "EXPERIMENT"}
		],
		"bias_radar": [
			{"axis": "Overconfidence", "value": 6},
			{"axis": "Market Fit", "value": 7},
			{"axis": "Execution Risk", "value": 5},
			{"axis": "User Appeal", "value": 8},
			{"axis": "Growth Potential", "value": 7}
		]
	}`

	var r council.Result
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := r.Normalize(); !errors.Is(err, council.ErrInvalidVote) {
		t.Errorf("error = %v, want ErrInvalidVote", err)
	}
}

func TestNormalizeWrongAxisOrder(t *testing.T) {
	r := validResult()
	r.BiasRadar[0], r.BiasRadar[4] = r.BiasRadar[4], r.BiasRadar[0]

	if err := r.Normalize(); !errors.Is(err, council.ErrInvalidRadar) {
		t.Errorf("error = %v, want ErrInvalidRadar", err)
	}
}

func TestNormalizeMissingAxis(t *testing.T) {
	r := validResult()
	r.BiasRadar = r.BiasRadar[:3]

	if err := r.Normalize(); !errors.Is(err, council.ErrInvalidRadar) {
		t.Errorf("error = %v, want ErrInvalidRadar", err)
	}
}

func TestNormalizeClampsRadarValues(t *testing.T) {
	r := validResult()
	r.BiasRadar[0].Value = 14
	r.BiasRadar[1].Value = -3

	if err := r.Normalize(); err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if r.BiasRadar[0].Value != 10 {
		t.Errorf("clamped high: got %v, want 10", r.BiasRadar[0].Value)
	}
	if r.BiasRadar[1].Value != 0 {
		t.Errorf("clamped low: got %v, want 0", r.BiasRadar[1].Value)
	}
}

func TestFallback(t *testing.T) {
	r := council.Fallback()

	if r.Personas == nil || len(r.Personas) != 0 {
		t.Errorf("personas: got %v, want empty slice", r.Personas)
	}
	if r.BiasRadar == nil || len(r.BiasRadar) != 0 {
		t.Errorf("bias radar: got %v, want empty slice", r.BiasRadar)
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"personas":[],"bias_radar":[]}` {
		t.Errorf("fallback JSON: got %s", data)
	}
}

func TestPersonaRoster(t *testing.T) {
	want := []string{"Strategist", "Operator", "Skeptic", "User Advocate", "Growth Architect"}
	got := council.PersonaNames()

	if len(got) != len(want) {
		t.Fatalf("roster size: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("roster[%d]: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestAxisSet(t *testing.T) {
	want := []string{"Overconfidence", "Market Fit", "Execution Risk", "User Appeal", "Growth Potential"}
	got := council.Axes()

	if len(got) != len(want) {
		t.Fatalf("axis count: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("axes[%d]: got %s, want %s", i, got[i], want[i])
		}
	}
}
