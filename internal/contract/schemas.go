package contract

import "github.com/JaimeStill/flux/pkg/openapi"

func f64(v float64) *float64 { return &v }
func i(v int) *int           { return &v }

func enum(values ...string) []any {
	out := make([]any, len(values))
	for idx, v := range values {
		out[idx] = v
	}
	return out
}

var classifySchema = &openapi.Schema{
	Type: "object",
	Properties: map[string]*openapi.Schema{
		"category": {
			Type: "string",
			Enum: enum("savings_goal", "budget", "fitness", "project", "note", "question"),
		},
		"output_type": {
			Type: "string",
			Enum: enum("dashboard", "table", "tracker", "board", "note", "chat"),
		},
		"title": {
			Type:        "string",
			Description: "At most 5 words.",
		},
		"folder_type": {
			Type: "string",
			Enum: enum("finance", "fitness", "project", "notes"),
		},
		"confidence_score": {
			Type:    "number",
			Minimum: f64(0),
			Maximum: f64(100),
		},
		"use_current_folder": {Type: "boolean"},
		"budget_items": {
			Type: "array",
			Items: &openapi.Schema{
				Type: "object",
				Properties: map[string]*openapi.Schema{
					"item":     {Type: "string"},
					"cost":     {Type: "number"},
					"category": {Type: "string"},
				},
				Required: []string{"item", "cost"},
			},
		},
		"target_amount": {Type: "number"},
		"currency":      {Type: "string"},
		"deadline":      {Type: "string"},
		"tasks": {
			Type:        "array",
			Description: "Required for fitness and project categories.",
			Items:       &openapi.Schema{Type: "string"},
		},
	},
	Required: []string{"category", "output_type", "title", "folder_type", "confidence_score", "use_current_folder"},
}

var planSchema = &openapi.Schema{
	Type: "object",
	Properties: map[string]*openapi.Schema{
		"blocks": {
			Type: "array",
			Items: &openapi.Schema{
				Type: "object",
				Properties: map[string]*openapi.Schema{
					"time": {
						Type:        "string",
						Pattern:     `^([01]\d|2[0-3]):[0-5]\d$`,
						Description: "HH:MM between 08:00 and 17:00.",
					},
					"title": {Type: "string"},
					"duration": {
						Type:        "string",
						Description: "Duration with unit suffix, e.g. 45m.",
					},
					"type": {
						Type: "string",
						Enum: enum("deep", "meeting", "break", "workout", "reading", "custom"),
					},
					"task_id": {
						Type:        "string",
						Description: "Id of the input task this block schedules.",
					},
				},
				Required: []string{"time", "title", "duration", "type"},
			},
		},
	},
	Required: []string{"blocks"},
}

var councilSchema = &openapi.Schema{
	Type: "object",
	Properties: map[string]*openapi.Schema{
		"personas": {
			Type:     "array",
			MinItems: i(5),
			MaxItems: i(5),
			Items: &openapi.Schema{
				Type: "object",
				Properties: map[string]*openapi.Schema{
					"name": {
						Type: "string",
						Enum: enum("Strategist", "Operator", "Skeptic", "User Advocate", "Growth Architect"),
					},
					"analysis": {
						Type:        "string",
						Description: "80-150 words, engaging another named advisor's argument.",
					},
					"vote": {
						Type: "string",
						Enum: enum("GO", "EXPERIMENT", "PIVOT", "KILL"),
					},
				},
				Required: []string{"name", "analysis", "vote"},
			},
		},
		"bias_radar": {
			Type:     "array",
			MinItems: i(5),
			MaxItems: i(5),
			Items: &openapi.Schema{
				Type: "object",
				Properties: map[string]*openapi.Schema{
					"axis": {
						Type: "string",
						Enum: enum("Overconfidence", "Market Fit", "Execution Risk", "User Appeal", "Growth Potential"),
					},
					"value": {
						Type:    "number",
						Minimum: f64(0),
						Maximum: f64(10),
					},
				},
				Required: []string{"axis", "value"},
			},
		},
	},
	Required: []string{"personas", "bias_radar"},
}

var schemas = map[Mode]*openapi.Schema{
	ModeClassify: classifySchema,
	ModePlan:     planSchema,
	ModeCouncil:  councilSchema,
}
