package routes_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/agent-registry/pkg/openapi"
	"github.com/JaimeStill/agent-registry/pkg/routes"
)

func write(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func TestGroup_AddToSpec(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")

	group := routes.Group{
		Prefix: "/users",
		Tags:   []string{"Users"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{$}", Handler: write("list"), OpenAPI: &openapi.Operation{Summary: "List users"}},
			{Method: "POST", Pattern: "/create", Handler: write("create"), OpenAPI: &openapi.Operation{Summary: "Create user"}},
			{Method: "GET", Pattern: "/hidden", Handler: write("hidden")},
		},
		Schemas: map[string]*openapi.Schema{
			"User": {Type: "object"},
		},
	}

	group.AddToSpec("/api", spec)

	list := spec.Paths["/api/users/"]
	if list == nil || list.Get == nil {
		t.Fatal("GET /api/users/ not added to spec")
	}

	if list.Get.Summary != "List users" {
		t.Errorf("GET summary = %q, want %q", list.Get.Summary, "List users")
	}

	if len(list.Get.Tags) != 1 || list.Get.Tags[0] != "Users" {
		t.Errorf("Tags = %v, want [Users]", list.Get.Tags)
	}

	if spec.Paths["/api/users/create"] == nil || spec.Paths["/api/users/create"].Post == nil {
		t.Error("POST /api/users/create not added to spec")
	}

	if spec.Paths["/api/users/hidden"] != nil {
		t.Error("path should not be added for route without OpenAPI")
	}

	if spec.Components.Schemas["User"] == nil {
		t.Error("schema not added to spec")
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	spec := openapi.NewSpec("Test API", "1.0.0")

	group := routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: write("root"), OpenAPI: &openapi.Operation{Summary: "Root"}},
			{Method: "GET", Pattern: "/mock/create", Handler: write("mock")},
			{Method: "GET", Pattern: "/{id}", Handler: write("detail"), OpenAPI: &openapi.Operation{Summary: "Detail"}},
		},
		Children: []routes.Group{
			{
				Prefix: "/nested",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "/leaf", Handler: write("leaf"), OpenAPI: &openapi.Operation{Summary: "Leaf"}},
				},
			},
		},
	}

	routes.Register(mux, "/agents", spec, group)

	tests := []struct {
		path string
		want string
	}{
		{"/", "root"},
		{"/mock/create", "mock"},
		{"/123", "detail"},
		{"/nested/leaf", "leaf"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			body, _ := io.ReadAll(w.Result().Body)
			if string(body) != tt.want {
				t.Errorf("body = %q, want %q", string(body), tt.want)
			}
		})
	}

	for _, path := range []string{"/agents", "/agents/{id}", "/agents/nested/leaf"} {
		if spec.Paths[path] == nil {
			t.Errorf("spec path %s not added", path)
		}
	}
}
