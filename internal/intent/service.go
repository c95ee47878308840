package intent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/flux/internal/classify"
	"github.com/JaimeStill/flux/internal/contract"
	"github.com/JaimeStill/flux/internal/council"
	"github.com/JaimeStill/flux/internal/plan"
	"github.com/JaimeStill/flux/pkg/formatting"
	"github.com/JaimeStill/flux/pkg/metrics"
	"github.com/JaimeStill/flux/pkg/provider"
)

// Service implements System against the configured model provider.
type Service struct {
	agent   *provider.Client
	logger  *slog.Logger
	metrics *metrics.System
}

// New creates a Service with the given provider client, logger, and metrics.
func New(agent *provider.Client, logger *slog.Logger, m *metrics.System) *Service {
	return &Service{
		agent:   agent,
		logger:  logger.With("system", "intent"),
		metrics: m,
	}
}

// Handler returns the HTTP handler for the dispatch endpoint.
func (s *Service) Handler(maxRequestSize int64) *Handler {
	return NewHandler(s, s.logger, maxRequestSize)
}

// Configured reports whether the upstream credential is present.
func (s *Service) Configured() bool {
	return s.agent.Configured()
}

// Classify derives one structured classification from the conversation and
// workspace snapshot. A missing or invalid tool payload yields the documented
// note fallback, never an error.
func (s *Service) Classify(ctx context.Context, messages []provider.Message, snapshot *classify.Context) (*classify.Result, error) {
	args, err := s.invoke(ctx, contract.ModeClassify, classifyMessages(messages, snapshot))
	if err != nil {
		return nil, err
	}
	if args == "" {
		return classify.Fallback(), nil
	}

	result, err := formatting.Parse[classify.Result](args)
	if err != nil {
		s.logger.Warn("classify payload unparsable", "error", err)
		return classify.Fallback(), nil
	}

	if err := result.Normalize(); err != nil {
		s.logger.Warn("classify payload rejected", "error", err)
		return classify.Fallback(), nil
	}

	return &result, nil
}

// Plan arranges the caller's tasks and goals into a daily schedule. A missing
// or invalid tool payload yields the empty plan, never an error.
func (s *Service) Plan(ctx context.Context, tasks, goals []plan.Item) (*plan.Plan, error) {
	args, err := s.invoke(ctx, contract.ModePlan, planMessages(tasks, goals))
	if err != nil {
		return nil, err
	}
	if args == "" {
		return plan.Empty(), nil
	}

	parsed, err := formatting.Parse[plan.Plan](args)
	if err != nil {
		s.logger.Warn("plan payload unparsable", "error", err)
		return plan.Empty(), nil
	}

	blocks, err := plan.Normalize(parsed.Blocks, tasks)
	if err != nil {
		s.logger.Warn("plan payload rejected", "error", err)
		return plan.Empty(), nil
	}

	return &plan.Plan{Blocks: blocks}, nil
}

// Council produces the five-persona debate for one idea. A missing or invalid
// tool payload yields empty persona and radar arrays, never partial records.
func (s *Service) Council(ctx context.Context, idea string) (*council.Result, error) {
	args, err := s.invoke(ctx, contract.ModeCouncil, councilMessages(idea))
	if err != nil {
		return nil, err
	}
	if args == "" {
		return council.Fallback(), nil
	}

	result, err := formatting.Parse[council.Result](args)
	if err != nil {
		s.logger.Warn("council payload unparsable", "error", err)
		return council.Fallback(), nil
	}

	if err := result.Normalize(); err != nil {
		s.logger.Warn("council payload rejected", "error", err)
		return council.Fallback(), nil
	}

	return &result, nil
}

// Chat opens a streaming passthrough for the conversation. The returned
// stream body is forwarded verbatim; no structural parsing is applied.
func (s *Service) Chat(ctx context.Context, messages []provider.Message) (*provider.StreamResponse, error) {
	stream, err := s.agent.Stream(ctx, &provider.ChatRequest{Messages: messages})
	s.metrics.RecordUpstream("chat", outcome(err))
	if err != nil {
		return nil, err
	}
	return stream, nil
}

// invoke performs one contract-mode round trip and returns the raw tool-call
// arguments, or empty when the model returned no structured payload.
func (s *Service) invoke(ctx context.Context, mode contract.Mode, messages []provider.Message) (string, error) {
	c, err := contract.For(mode)
	if err != nil {
		return "", err
	}

	req := &provider.ChatRequest{
		Messages:   messages,
		Tools:      []provider.Tool{c.Tool},
		ToolChoice: provider.ForceTool(c.Tool.Function.Name),
	}

	resp, err := s.agent.Complete(ctx, req)
	s.metrics.RecordUpstream(string(mode), outcome(err))
	if err != nil {
		return "", err
	}

	call, ok := resp.FirstToolCall()
	if !ok {
		s.logger.Warn("no tool call in response", "mode", mode, "contract", c.Version)
		return "", nil
	}

	return call.Function.Arguments, nil
}

func classifyMessages(messages []provider.Message, snapshot *classify.Context) []provider.Message {
	instructions, _ := contract.Instructions(contract.ModeClassify)

	msgs := make([]provider.Message, 0, len(messages)+2)
	msgs = append(msgs, provider.Message{Role: "system", Content: instructions})

	if snapshot != nil {
		if encoded, err := json.Marshal(snapshot); err == nil {
			msgs = append(msgs, provider.Message{
				Role:    "system",
				Content: "Workspace context snapshot:\n" + string(encoded),
			})
		}
	}

	return append(msgs, messages...)
}

func planMessages(tasks, goals []plan.Item) []provider.Message {
	instructions, _ := contract.Instructions(contract.ModePlan)

	encodedTasks, _ := json.Marshal(tasks)
	encodedGoals, _ := json.Marshal(goals)

	return []provider.Message{
		{Role: "system", Content: instructions},
		{
			Role:    "user",
			Content: fmt.Sprintf("Tasks:\n%s\n\nGoals:\n%s", encodedTasks, encodedGoals),
		},
	}
}

func councilMessages(idea string) []provider.Message {
	instructions, _ := contract.Instructions(contract.ModeCouncil)

	return []provider.Message{
		{Role: "system", Content: instructions},
		{Role: "user", Content: idea},
	}
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}

	var se *provider.StatusError
	if errors.As(err, &se) {
		switch se.Code {
		case provider.CodeRateLimited:
			return "rate_limited"
		case provider.CodeCreditsExhausted:
			return "credits_exhausted"
		}
	}
	return "error"
}
