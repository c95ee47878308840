package intent_test

import (
	"testing"

	"github.com/JaimeStill/flux/internal/intent"
	"github.com/JaimeStill/flux/pkg/provider"
)

func TestLatestUserContent(t *testing.T) {
	tests := []struct {
		name     string
		messages []provider.Message
		want     string
	}{
		{
			"latest user turn",
			[]provider.Message{
				{Role: "user", Content: "first"},
				{Role: "assistant", Content: "reply"},
				{Role: "user", Content: "second"},
			},
			"second",
		},
		{
			"skips trailing assistant turn",
			[]provider.Message{
				{Role: "user", Content: "the idea"},
				{Role: "assistant", Content: "noted"},
			},
			"the idea",
		},
		{
			"no user turn falls back to last message",
			[]provider.Message{
				{Role: "system", Content: "setup"},
				{Role: "assistant", Content: "only assistant"},
			},
			"only assistant",
		},
		{
			"empty conversation",
			nil,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := intent.Envelope{Messages: tt.messages}
			if got := env.LatestUserContent(); got != tt.want {
				t.Errorf("LatestUserContent = %q, want %q", got, tt.want)
			}
		})
	}
}
