// Package contract defines the versioned instruction contracts the service
// sends to the model provider. Each mode pairs instruction text with a
// machine-checkable tool schema; the text and schema together are the contract
// the model is asked to honor and the boundary validators enforce.
package contract

import "github.com/JaimeStill/flux/pkg/provider"

// Version identifies the current contract revision across all modes.
const Version = "2026-08"

// Contract binds a mode's instruction text to its declared tool.
type Contract struct {
	Mode         Mode
	Version      string
	Instructions string
	Tool         provider.Tool
}

// toolNames maps each mode to the function name declared to the provider.
var toolNames = map[Mode]string{
	ModeClassify: "create_structured_output",
	ModePlan:     "generate_daily_plan",
	ModeCouncil:  "run_council_debate",
}

// For returns the contract for a mode.
// Returns ErrInvalidMode if the mode is not recognized.
func For(mode Mode) (*Contract, error) {
	instructions, err := Instructions(mode)
	if err != nil {
		return nil, err
	}

	tool, err := Tool(mode)
	if err != nil {
		return nil, err
	}

	return &Contract{
		Mode:         mode,
		Version:      Version,
		Instructions: instructions,
		Tool:         tool,
	}, nil
}

// Instructions returns the instruction text for a mode.
// Returns ErrInvalidMode if the mode is not recognized.
func Instructions(mode Mode) (string, error) {
	text, ok := instructions[mode]
	if !ok {
		return "", ErrInvalidMode
	}
	return text, nil
}

// Tool returns the declared tool for a mode, with its JSON-schema parameter
// contract attached.
// Returns ErrInvalidMode if the mode is not recognized.
func Tool(mode Mode) (provider.Tool, error) {
	schema, ok := schemas[mode]
	if !ok {
		return provider.Tool{}, ErrInvalidMode
	}

	return provider.Tool{
		Type: "function",
		Function: provider.ToolFunction{
			Name:        toolNames[mode],
			Description: descriptions[mode],
			Parameters:  schema,
		},
	}, nil
}

// ToolName returns the function name declared for a mode.
// Returns ErrInvalidMode if the mode is not recognized.
func ToolName(mode Mode) (string, error) {
	name, ok := toolNames[mode]
	if !ok {
		return "", ErrInvalidMode
	}
	return name, nil
}
