package intent

import (
	"context"

	"github.com/JaimeStill/flux/internal/classify"
	"github.com/JaimeStill/flux/internal/council"
	"github.com/JaimeStill/flux/internal/plan"
	"github.com/JaimeStill/flux/pkg/provider"
)

// System defines the public contract for dispatcher operations. Every
// operation is stateless: one upstream round trip per call, no cross-request
// state, no retries.
type System interface {
	Handler(maxRequestSize int64) *Handler

	Configured() bool
	Classify(ctx context.Context, messages []provider.Message, snapshot *classify.Context) (*classify.Result, error)
	Plan(ctx context.Context, tasks, goals []plan.Item) (*plan.Plan, error)
	Council(ctx context.Context, idea string) (*council.Result, error)
	Chat(ctx context.Context, messages []provider.Message) (*provider.StreamResponse, error)
}
