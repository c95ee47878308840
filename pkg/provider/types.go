package provider

import (
	"io"

	"github.com/JaimeStill/flux/pkg/openapi"
)

// Message is one conversation turn in a chat-completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ToolFunction declares a callable function with a JSON-schema parameter contract.
type ToolFunction struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  *openapi.Schema `json:"parameters"`
}

// Tool wraps a function declaration in the provider tool envelope.
type Tool struct {
	Type     string       `json:"type"`
	Function ToolFunction `json:"function"`
}

// ToolChoiceFunction names the function a forced tool choice targets.
type ToolChoiceFunction struct {
	Name string `json:"name"`
}

// ToolChoice forces the model to call a specific declared tool.
type ToolChoice struct {
	Type     string             `json:"type"`
	Function ToolChoiceFunction `json:"function"`
}

// ForceTool returns a ToolChoice requiring the named function.
func ForceTool(name string) *ToolChoice {
	return &ToolChoice{
		Type:     "function",
		Function: ToolChoiceFunction{Name: name},
	}
}

// ChatRequest is an OpenAI-style chat-completion request body.
type ChatRequest struct {
	Model      string      `json:"model"`
	Messages   []Message   `json:"messages"`
	Tools      []Tool      `json:"tools,omitempty"`
	ToolChoice *ToolChoice `json:"tool_choice,omitempty"`
	Stream     bool        `json:"stream,omitempty"`
}

// FunctionCall carries a returned tool invocation with JSON-encoded arguments.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ToolCall is one structured payload returned by the model.
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

// ResponseMessage is the assistant message within a completion choice.
type ResponseMessage struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// Choice is one completion candidate.
type Choice struct {
	Index        int             `json:"index"`
	Message      ResponseMessage `json:"message"`
	FinishReason string          `json:"finish_reason"`
}

// ChatResponse is a non-streaming chat-completion response body.
type ChatResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
}

// Content returns the first choice's text content, or empty when absent.
func (r *ChatResponse) Content() string {
	if len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

// FirstToolCall returns the first tool call of the first choice. The second
// return value is false when the model returned no structured payload.
func (r *ChatResponse) FirstToolCall() (*ToolCall, bool) {
	if len(r.Choices) == 0 || len(r.Choices[0].Message.ToolCalls) == 0 {
		return nil, false
	}
	return &r.Choices[0].Message.ToolCalls[0], true
}

// StreamResponse hands the raw upstream response body to the caller for
// incremental forwarding. The caller owns Body and must close it.
type StreamResponse struct {
	Body        io.ReadCloser
	ContentType string
}
