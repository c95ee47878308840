package api

import (
	"net/http"

	"github.com/JaimeStill/flux/internal/config"
	"github.com/JaimeStill/flux/internal/contract"
	"github.com/JaimeStill/flux/pkg/openapi"
)

// specDocument builds the serialized OpenAPI document for the service. The
// mode result schemas come straight from the contract tool declarations, so
// the document and the model contracts can never drift apart.
func specDocument(cfg *config.Config) ([]byte, error) {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	for _, mode := range contract.Modes() {
		tool, err := contract.Tool(mode)
		if err != nil {
			return nil, err
		}
		spec.Components.AddSchemas(map[string]*openapi.Schema{
			string(mode): tool.Function.Parameters,
		})
	}

	spec.Paths["/intent"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Dispatch an intent request",
			Description: "Routes the envelope by type: classify, plan, and council return structured JSON; any other type streams a chat completion.",
			Tags:        []string{"intent"},
			RequestBody: &openapi.RequestBody{
				Required: true,
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: envelopeSchema()},
				},
			},
			Responses: map[int]*openapi.Response{
				200: {
					Description: "Mode result or event stream",
					Content: map[string]*openapi.MediaType{
						"application/json": {Schema: &openapi.Schema{
							Description: "classify, plan, or council result per the request type",
						}},
						"text/event-stream": {Schema: &openapi.Schema{
							Type:        "string",
							Description: "Upstream completion stream, relayed verbatim",
						}},
					},
				},
				400: {Ref: "#/components/responses/BadRequest"},
				402: {Ref: "#/components/responses/CreditsExhausted"},
				429: {Ref: "#/components/responses/RateLimited"},
				500: {Ref: "#/components/responses/ServerError"},
			},
		},
	}

	return openapi.MarshalJSON(spec)
}

func envelopeSchema() *openapi.Schema {
	item := &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":      {Type: "string"},
			"title":   {Type: "string"},
			"content": {Type: "string"},
		},
		Required: []string{"id", "title"},
	}

	return &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"type": {
				Type:        "string",
				Description: "classify, plan, or council; anything else falls through to chat",
			},
			"messages": {
				Type: "array",
				Items: &openapi.Schema{
					Type: "object",
					Properties: map[string]*openapi.Schema{
						"role":    {Type: "string"},
						"content": {Type: "string"},
					},
					Required: []string{"role", "content"},
				},
			},
			"context": {
				Type:        "object",
				Description: "Workspace snapshot for classify requests",
				Properties: map[string]*openapi.Schema{
					"current_page":     {Type: "string"},
					"current_folder":   folderSchema(),
					"existing_folders": {Type: "array", Items: folderSchema()},
				},
			},
			"tasks": {Type: "array", Items: item},
			"goals": {Type: "array", Items: item},
		},
		Required: []string{"messages"},
	}
}

func folderSchema() *openapi.Schema {
	return &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":    {Type: "string"},
			"title": {Type: "string"},
			"type":  {Type: "string"},
		},
	}
}

func registerSpec(mux *http.ServeMux, doc []byte) {
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(doc))
}
