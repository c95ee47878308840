package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/flux/pkg/openapi"
)

func TestNewSpec(t *testing.T) {
	spec := openapi.NewSpec("Flux Intent API", "0.1.0")

	if spec.OpenAPI != "3.1.0" {
		t.Errorf("openapi version: got %s, want 3.1.0", spec.OpenAPI)
	}
	if spec.Info.Title != "Flux Intent API" {
		t.Errorf("title: got %s", spec.Info.Title)
	}
	if spec.Info.Version != "0.1.0" {
		t.Errorf("version: got %s", spec.Info.Version)
	}
	if spec.Components == nil {
		t.Fatal("components should be initialized")
	}
	if spec.Paths == nil {
		t.Fatal("paths should be initialized")
	}
}

func TestDefaultComponents(t *testing.T) {
	c := openapi.NewComponents()

	for _, name := range []string{"BadRequest", "RateLimited", "CreditsExhausted", "ServerError"} {
		if _, ok := c.Responses[name]; !ok {
			t.Errorf("missing default response %s", name)
		}
	}

	errSchema, ok := c.Schemas["Error"]
	if !ok {
		t.Fatal("missing Error schema")
	}
	if errSchema.Properties["error"] == nil {
		t.Error("Error schema should declare the error property")
	}
}

func TestAddSchemas(t *testing.T) {
	c := openapi.NewComponents()
	c.AddSchemas(map[string]*openapi.Schema{
		"classify": {Type: "object"},
	})

	if _, ok := c.Schemas["classify"]; !ok {
		t.Error("added schema not present")
	}
	if _, ok := c.Schemas["Error"]; !ok {
		t.Error("existing schema should be preserved")
	}
}

func TestAddServerAndDescription(t *testing.T) {
	spec := openapi.NewSpec("Flux Intent API", "0.1.0")
	spec.AddServer("/api")
	spec.SetDescription("LLM orchestration service")

	if len(spec.Servers) != 1 || spec.Servers[0].URL != "/api" {
		t.Errorf("servers: got %+v", spec.Servers)
	}
	if spec.Info.Description != "LLM orchestration service" {
		t.Errorf("description: got %s", spec.Info.Description)
	}
}

func TestMarshalJSON(t *testing.T) {
	spec := openapi.NewSpec("Flux Intent API", "0.1.0")
	spec.Paths["/intent"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary: "Dispatch an intent request",
			Responses: map[int]*openapi.Response{
				200: {Description: "ok"},
			},
		},
	}

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !strings.Contains(string(data), `"/intent"`) {
		t.Error("marshalled spec missing /intent path")
	}
}

func TestSchemaOmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(&openapi.Schema{Type: "string"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(data), "minimum") || strings.Contains(string(data), "enum") {
		t.Errorf("empty constraint fields should be omitted: %s", data)
	}
}

func TestSchemaConstraints(t *testing.T) {
	minimum := 0.0
	maximum := 100.0
	schema := &openapi.Schema{
		Type:    "number",
		Minimum: &minimum,
		Maximum: &maximum,
	}

	data, err := json.Marshal(schema)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"minimum":0`) || !strings.Contains(string(data), `"maximum":100`) {
		t.Errorf("constraints missing: %s", data)
	}
}

func TestServeSpec(t *testing.T) {
	spec := openapi.NewSpec("Flux Intent API", "0.1.0")
	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/openapi.json", nil)
	openapi.ServeSpec(data)(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "application/json") {
		t.Errorf("content-type: got %s", got)
	}
	if rec.Body.Len() == 0 {
		t.Error("body should contain the serialized spec")
	}
}
