// Package intent implements the request dispatcher: a single endpoint that
// routes a typed envelope to the classify, plan, or council contract modes, or
// falls through to the streaming chat relay.
package intent

import (
	"github.com/JaimeStill/flux/internal/classify"
	"github.com/JaimeStill/flux/internal/plan"
	"github.com/JaimeStill/flux/pkg/provider"
)

// Envelope is the request body accepted by the dispatch endpoint. Type routes
// to a contract mode; unrecognized or absent types fall through to chat.
// Context accompanies classify requests; Tasks and Goals accompany plan
// requests. All fields are caller-owned and nothing is retained between
// requests.
type Envelope struct {
	Type     string             `json:"type,omitempty"`
	Messages []provider.Message `json:"messages"`
	Context  *classify.Context  `json:"context,omitempty"`
	Tasks    []plan.Item        `json:"tasks,omitempty"`
	Goals    []plan.Item        `json:"goals,omitempty"`
}

// LatestUserContent returns the content of the most recent user turn, falling
// back to the last message of any role.
func (e *Envelope) LatestUserContent() string {
	for i := len(e.Messages) - 1; i >= 0; i-- {
		if e.Messages[i].Role == "user" {
			return e.Messages[i].Content
		}
	}
	if len(e.Messages) > 0 {
		return e.Messages[len(e.Messages)-1].Content
	}
	return ""
}
