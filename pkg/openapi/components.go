package openapi

import "maps"

// ErrorEnvelope is the shared schema for every failure response body.
func ErrorEnvelope() *Schema {
	return &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"error": {Type: "string", Description: "Error message"},
		},
		Required: []string{"error"},
	}
}

// NewComponents creates Components with the shared error responses produced by
// the service's failure taxonomy.
func NewComponents() *Components {
	errorContent := map[string]*MediaType{
		"application/json": {Schema: ErrorEnvelope()},
	}

	return &Components{
		Schemas: map[string]*Schema{
			"Error": ErrorEnvelope(),
		},
		Responses: map[string]*Response{
			"BadRequest": {
				Description: "Invalid request envelope",
				Content:     errorContent,
			},
			"RateLimited": {
				Description: "Upstream provider rate limit exceeded",
				Content:     errorContent,
			},
			"CreditsExhausted": {
				Description: "Upstream provider credits exhausted",
				Content:     errorContent,
			},
			"ServerError": {
				Description: "Configuration or upstream failure",
				Content:     errorContent,
			},
		},
	}
}

// AddSchemas merges the given schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

// AddResponses merges the given responses into the component responses.
func (c *Components) AddResponses(responses map[string]*Response) {
	maps.Copy(c.Responses, responses)
}
