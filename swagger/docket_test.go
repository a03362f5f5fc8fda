package swagger

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/docket/handler"
	"github.com/vitalvas/docket/selector"
)

type testStatus string

func (testStatus) EnumValues() []string {
	return []string{"available", "pending", "sold"}
}

type testCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

type testPet struct {
	ID        int64         `json:"id" openapi:"position=1,readOnly"`
	Name      string        `json:"name" openapi:"position=2,example=doggie" validate:"required"`
	Category  *testCategory `json:"category,omitempty" openapi:"position=3"`
	PhotoURLs []string      `json:"photoUrls" openapi:"position=4"`
	Status    testStatus    `json:"status,omitempty" openapi:"position=5,description=pet status in the store"`
	OnChange  func()        `json:"onChange,omitempty"`
}

type testPage[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

var jsonMedia = []string{"application/json"}

type testPetController struct{}

func (*testPetController) Annotations() []any {
	return []any{handler.Api{Tags: []string{"pet"}, Description: "Everything about your Pets"}}
}

func (*testPetController) Mappings() []handler.Mapping {
	return []handler.Mapping{
		{
			Method:     "GetPet",
			Patterns:   []string{"/pet/{petId:int}"},
			Methods:    []string{http.MethodGet},
			Produces:   jsonMedia,
			Parameters: []handler.ParameterSpec{{Name: "petId"}},
			Annotations: []any{
				handler.ApiOperation{Value: "Find pet by ID", Notes: "Returns a single pet"},
				handler.ApiResponses{{Code: http.StatusNotFound, Message: "Pet not found"}},
			},
		},
		{
			Method:   "FindByStatus",
			Patterns: []string{"/pet/findByStatus"},
			Methods:  []string{http.MethodGet},
			Parameters: []handler.ParameterSpec{{
				Name:        "status",
				Required:    true,
				Annotations: []any{handler.ApiParam{Value: "Status values", AllowableValues: "available,pending"}},
			}},
		},
		{
			Method:      "AddPet",
			Patterns:    []string{"/pet"},
			Methods:     []string{http.MethodPost},
			Consumes:    jsonMedia,
			Parameters:  []handler.ParameterSpec{{Name: "body"}},
			Annotations: []any{handler.ApiOperation{Value: "Add a new pet", Nickname: "addPet"}},
		},
		{
			Method:      "UpdatePet",
			Patterns:    []string{"/pet"},
			Methods:     []string{http.MethodPut},
			Parameters:  []handler.ParameterSpec{{Name: "body", In: handler.InBody}},
			Annotations: []any{handler.Deprecated{}},
		},
		{
			Method:   "DeletePet",
			Patterns: []string{"/pet/{petId}"},
			Methods:  []string{http.MethodDelete},
			Headers:  []string{"api_key"},
			Parameters: []handler.ParameterSpec{
				{Name: "petId"},
				{Name: "api_key", In: handler.InHeader},
			},
		},
		{
			Method:     "UploadImage",
			Patterns:   []string{"/pet/{petId}/uploadImage"},
			Methods:    []string{http.MethodPost},
			Parameters: []handler.ParameterSpec{{Name: "petId"}, {Name: "file"}},
		},
		{
			Method:     "ListPets",
			Patterns:   []string{"/pet/page"},
			Methods:    []string{http.MethodGet},
			Parameters: []handler.ParameterSpec{{Name: "limit", Default: "20", Annotations: []any{handler.ApiParam{AllowableValues: "range[1, 100]"}}}},
		},
		{
			Method:      "Internal",
			Patterns:    []string{"/pet/internal"},
			Methods:     []string{http.MethodGet},
			Annotations: []any{handler.ApiIgnore{}},
		},
		{
			Method:      "Secret",
			Patterns:    []string{"/pet/secret"},
			Methods:     []string{http.MethodGet},
			Annotations: []any{handler.ApiOperation{Hidden: true}},
		},
	}
}

func (*testPetController) GetPet(_ context.Context, _ int64) (*testPet, error) { return nil, nil }
func (*testPetController) FindByStatus(_ []testStatus) ([]testPet, error)      { return nil, nil }
func (*testPetController) AddPet(_ testPet) error                              { return nil }
func (*testPetController) UpdatePet(_ *testPet) (*testPet, error)              { return nil, nil }
func (*testPetController) DeletePet(_ int64, _ string) error                   { return nil }
func (*testPetController) Internal()                                           {}
func (*testPetController) Secret()                                             {}

func (*testPetController) ListPets(_ int32) (testPage[testPet], error) {
	return testPage[testPet]{}, nil
}

func (*testPetController) UploadImage(_ int64, _ *multipart.FileHeader) (map[string]string, error) {
	return nil, nil
}

type testStoreController struct{}

func (*testStoreController) Mappings() []handler.Mapping {
	return []handler.Mapping{
		{Method: "Inventory", Patterns: []string{"/store/inventory"}, Produces: jsonMedia},
	}
}

func (*testStoreController) Inventory() map[string]int32 { return nil }

type testAdminController struct{}

func (*testAdminController) Annotations() []any {
	return []any{handler.ApiIgnore{}}
}

func (*testAdminController) Mappings() []handler.Mapping {
	return []handler.Mapping{
		{Method: "Reset", Patterns: []string{"/admin/reset"}, Methods: []string{http.MethodPost}},
	}
}

func (*testAdminController) Reset() error { return nil }

func scanTestHandlers(t *testing.T) []handler.RequestHandler {
	t.Helper()
	handlers, err := handler.NewScanner(nil).Scan(
		&testPetController{},
		&testStoreController{},
		&testAdminController{},
	)
	require.NoError(t, err)
	return handlers
}

func findParameter(t *testing.T, op *Operation, name string) *Parameter {
	t.Helper()
	for _, p := range op.Parameters {
		if p.Name == name {
			return p
		}
	}
	require.Failf(t, "parameter not found", "%q", name)
	return nil
}

func TestDocketBuild(t *testing.T) {
	doc := NewDocket(Info{Title: "Petstore", Version: "1.0.0"}).
		Host("petstore.example").
		BasePath("/v2").
		Schemes("https").
		Build(scanTestHandlers(t))

	require.NotNil(t, doc)
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "Petstore", doc.Info.Title)
	assert.Equal(t, "petstore.example", doc.Host)
	assert.Equal(t, "/v2", doc.BasePath)
	assert.Equal(t, []string{"https"}, doc.Schemes)

	paths := make([]string, 0, len(doc.Paths))
	for p := range doc.Paths {
		paths = append(paths, p)
	}
	assert.ElementsMatch(t, []string{
		"/pet",
		"/pet/findByStatus",
		"/pet/page",
		"/pet/{petId}",
		"/pet/{petId}/uploadImage",
		"/store/inventory",
	}, paths)

	t.Run("get pet", func(t *testing.T) {
		op := doc.Paths["/pet/{petId}"].Get
		require.NotNil(t, op)
		assert.Equal(t, "GetPetUsingGET", op.OperationID)
		assert.Equal(t, "Find pet by ID", op.Summary)
		assert.Equal(t, "Returns a single pet", op.Description)
		assert.Equal(t, []string{"pet"}, op.Tags)
		assert.Equal(t, jsonMedia, op.Produces)
		assert.False(t, op.Deprecated)

		require.Len(t, op.Parameters, 1)
		p := op.Parameters[0]
		assert.Equal(t, "petId", p.Name)
		assert.Equal(t, "path", p.In)
		assert.True(t, p.Required)
		assert.Equal(t, "integer", p.Type)
		assert.Equal(t, "int64", p.Format)

		require.Len(t, op.Responses, 4)
		require.NotNil(t, op.Responses["200"].Schema)
		assert.Equal(t, "#/definitions/testPet", op.Responses["200"].Schema.Ref)
		assert.Equal(t, "Pet not found", op.Responses["404"].Description)
		assert.Equal(t, "Unauthorized", op.Responses["401"].Description)
		assert.Equal(t, "Forbidden", op.Responses["403"].Description)
	})

	t.Run("find by status", func(t *testing.T) {
		op := doc.Paths["/pet/findByStatus"].Get
		require.NotNil(t, op)
		assert.Equal(t, "FindByStatusUsingGET", op.OperationID)

		p := findParameter(t, op, "status")
		assert.Equal(t, "query", p.In)
		assert.True(t, p.Required)
		assert.Equal(t, "Status values", p.Description)
		assert.Equal(t, "array", p.Type)
		assert.Equal(t, "multi", p.CollectionFormat)
		require.NotNil(t, p.Items)
		assert.Equal(t, "string", p.Items.Type)
		assert.Equal(t, []string{"available", "pending"}, p.Items.Enum)

		schema := op.Responses["200"].Schema
		require.NotNil(t, schema)
		assert.Equal(t, "array", schema.Type)
		require.NotNil(t, schema.Items)
		assert.Equal(t, "#/definitions/testPet", schema.Items.Ref)
	})

	t.Run("add pet", func(t *testing.T) {
		op := doc.Paths["/pet"].Post
		require.NotNil(t, op)
		assert.Equal(t, "addPetUsingPOST", op.OperationID)
		assert.Equal(t, jsonMedia, op.Consumes)

		p := findParameter(t, op, "body")
		assert.Equal(t, "body", p.In)
		assert.False(t, p.Required)
		require.NotNil(t, p.Schema)
		assert.Equal(t, "#/definitions/testPet", p.Schema.Ref)
		assert.Empty(t, p.Type)

		assert.Nil(t, op.Responses["200"].Schema)
		assert.Contains(t, op.Responses, "201")
		assert.Equal(t, "Created", op.Responses["201"].Description)
	})

	t.Run("update pet", func(t *testing.T) {
		op := doc.Paths["/pet"].Put
		require.NotNil(t, op)
		assert.Equal(t, "UpdatePetUsingPUT", op.OperationID)
		assert.True(t, op.Deprecated)
		assert.Equal(t, "body", findParameter(t, op, "body").In)
	})

	t.Run("delete pet", func(t *testing.T) {
		op := doc.Paths["/pet/{petId}"].Delete
		require.NotNil(t, op)
		assert.Equal(t, "DeletePetUsingDELETE", op.OperationID)

		require.Len(t, op.Parameters, 2)
		assert.Equal(t, "petId", op.Parameters[0].Name)
		assert.Equal(t, "integer", op.Parameters[0].Type)
		assert.Equal(t, "api_key", op.Parameters[1].Name)
		assert.Equal(t, "header", op.Parameters[1].In)
		assert.Equal(t, "string", op.Parameters[1].Type)

		assert.Contains(t, op.Responses, "204")
		assert.NotContains(t, op.Responses, "404")
	})

	t.Run("upload image", func(t *testing.T) {
		op := doc.Paths["/pet/{petId}/uploadImage"].Post
		require.NotNil(t, op)

		file := findParameter(t, op, "file")
		assert.Equal(t, "formData", file.In)
		assert.Equal(t, "file", file.Type)

		schema := op.Responses["200"].Schema
		require.NotNil(t, schema)
		assert.Equal(t, "object", schema.Type)
		require.NotNil(t, schema.AdditionalProperties)
		assert.Equal(t, "string", schema.AdditionalProperties.Type)
	})

	t.Run("range and default on query parameter", func(t *testing.T) {
		op := doc.Paths["/pet/page"].Get
		require.NotNil(t, op)

		p := findParameter(t, op, "limit")
		assert.Equal(t, "query", p.In)
		assert.Equal(t, "integer", p.Type)
		assert.Equal(t, "int32", p.Format)
		assert.Equal(t, "20", p.Default)
		require.NotNil(t, p.Minimum)
		require.NotNil(t, p.Maximum)
		assert.Equal(t, 1.0, *p.Minimum)
		assert.Equal(t, 100.0, *p.Maximum)

		require.NotNil(t, op.Responses["200"].Schema)
		assert.Equal(t, "#/definitions/testPage«testPet»", op.Responses["200"].Schema.Ref)
	})

	t.Run("unrestricted methods", func(t *testing.T) {
		item := doc.Paths["/store/inventory"]
		require.NotNil(t, item)
		for _, op := range []*Operation{item.Get, item.Head, item.Post, item.Put, item.Patch, item.Delete, item.Options} {
			require.NotNil(t, op)
			assert.Equal(t, []string{"test-store-controller"}, op.Tags)
		}
		assert.Equal(t, "InventoryUsingGET", item.Get.OperationID)
		assert.Equal(t, "InventoryUsingOPTIONS", item.Options.OperationID)
	})

	t.Run("definitions", func(t *testing.T) {
		require.Contains(t, doc.Definitions, "testPet")
		require.Contains(t, doc.Definitions, "testCategory")
		require.Contains(t, doc.Definitions, "testPage«testPet»")

		pet := doc.Definitions["testPet"]
		assert.Equal(t, "object", pet.Type)
		assert.Equal(t, []string{"id", "name", "category", "photoUrls", "status"}, pet.PropertyNames())
		assert.Equal(t, []string{"id", "name", "photoUrls"}, pet.Required)

		id, _ := pet.Property("id")
		assert.True(t, id.ReadOnly)

		name, _ := pet.Property("name")
		assert.Equal(t, "doggie", name.Example)

		category, _ := pet.Property("category")
		assert.Equal(t, "#/definitions/testCategory", category.Ref)

		status, _ := pet.Property("status")
		assert.Equal(t, "pet status in the store", status.Description)
		assert.Equal(t, []string{"available", "pending", "sold"}, status.Enum)

		photos, _ := pet.Property("photoUrls")
		assert.Equal(t, "array", photos.Type)

		assert.Equal(t, []string{"id"}, doc.Definitions["testCategory"].Required)
	})

	t.Run("tags", func(t *testing.T) {
		assert.Equal(t, []Tag{
			{Name: "pet", Description: "Everything about your Pets"},
			{Name: "test-store-controller"},
		}, doc.Tags)
	})

	t.Run("serializes", func(t *testing.T) {
		data, err := json.Marshal(doc)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "2.0", decoded["swagger"])
		assert.Contains(t, decoded, "definitions")
	})
}

func TestDocketSelection(t *testing.T) {
	handlers := scanTestHandlers(t)

	t.Run("path predicate", func(t *testing.T) {
		doc := NewDocket(Info{}).Paths(selector.PathPrefix("/store")).Build(handlers)
		assert.Len(t, doc.Paths, 1)
		assert.Contains(t, doc.Paths, "/store/inventory")
		assert.NotContains(t, doc.Definitions, "testPet")
	})

	t.Run("handler predicate", func(t *testing.T) {
		doc := NewDocket(Info{}).Select(selector.WithMethodAnnotation(handler.KindOf[handler.Deprecated]())).Build(handlers)
		require.Len(t, doc.Paths, 1)
		require.NotNil(t, doc.Paths["/pet"].Put)
		assert.Nil(t, doc.Paths["/pet"].Post)
	})

	t.Run("none", func(t *testing.T) {
		doc := NewDocket(Info{}).Select(selector.None()).Build(handlers)
		assert.NotNil(t, doc.Paths)
		assert.Empty(t, doc.Paths)
		assert.Nil(t, doc.Definitions)
		assert.Empty(t, doc.Tags)
	})

	t.Run("nil predicates select everything", func(t *testing.T) {
		doc := NewDocket(Info{}).Select(nil).Paths(nil).Build(handlers)
		assert.Len(t, doc.Paths, 6)
	})

	t.Run("ignored controller", func(t *testing.T) {
		doc := NewDocket(Info{}).Build(handlers)
		assert.NotContains(t, doc.Paths, "/admin/reset")
		assert.NotContains(t, doc.Paths, "/pet/internal")
		assert.NotContains(t, doc.Paths, "/pet/secret")
	})
}

func TestDocketOperationIDCollisions(t *testing.T) {
	handlers := []handler.RequestHandler{
		handler.NewMethod(handler.MethodInfo{Mapping: handler.Mapping{
			Name:     "find",
			Patterns: []string{"/a", "/b"},
			Methods:  []string{http.MethodGet},
		}}),
		handler.NewMethod(handler.MethodInfo{Mapping: handler.Mapping{
			Name:     "find",
			Patterns: []string{"/c"},
			Methods:  []string{http.MethodGet},
		}}),
	}

	doc := NewDocket(Info{}).Build(handlers)

	ids := []string{
		doc.Paths["/a"].Get.OperationID,
		doc.Paths["/b"].Get.OperationID,
		doc.Paths["/c"].Get.OperationID,
	}
	assert.Equal(t, []string{"findUsingGET", "findUsingGET_1", "findUsingGET_2"}, ids)
	assert.Nil(t, doc.Paths["/c"].Get.Tags)
}

type testRouteController struct{}

func (*testRouteController) Mappings() []handler.Mapping {
	return []handler.Mapping{
		{
			Method:      "GetPet",
			Patterns:    []string{"/pets/{id}"},
			Methods:     []string{http.MethodGet},
			Parameters:  []handler.ParameterSpec{{Name: "id"}},
			Annotations: []any{handler.ApiOperation{Value: "Find pet by ID"}},
		},
		{
			Method:     "DeletePet",
			Patterns:   []string{"/pets/{id:int}"},
			Methods:    []string{http.MethodDelete},
			Parameters: []handler.ParameterSpec{{Name: "id"}},
		},
	}
}

func (*testRouteController) GetPet(_ int64) (*testPet, error) { return nil, nil }
func (*testRouteController) DeletePet(_ int64) error          { return nil }

func TestDocketSameRouteDifferentMethods(t *testing.T) {
	handlers, err := handler.NewScanner(nil).Scan(&testRouteController{})
	require.NoError(t, err)
	require.Len(t, handlers, 2)

	doc := NewDocket(Info{}).Build(handlers)
	item := doc.Paths["/pets/{id}"]
	require.NotNil(t, item)

	require.NotNil(t, item.Get)
	assert.Equal(t, "GetPetUsingGET", item.Get.OperationID)
	assert.Equal(t, "Find pet by ID", item.Get.Summary)
	require.NotNil(t, item.Get.Responses["200"].Schema)
	assert.Equal(t, "#/definitions/testPet", item.Get.Responses["200"].Schema.Ref)

	require.NotNil(t, item.Delete)
	assert.Equal(t, "DeletePetUsingDELETE", item.Delete.OperationID)
	assert.Empty(t, item.Delete.Summary)
	assert.Nil(t, item.Delete.Responses["200"].Schema)
}

type testTree []testTree

type testNode struct {
	Name     string   `json:"name"`
	Children testTree `json:"children"`
}

type testTreeController struct{}

func (*testTreeController) Mappings() []handler.Mapping {
	return []handler.Mapping{{Method: "Root", Patterns: []string{"/tree"}, Methods: []string{http.MethodGet}}}
}

func (*testTreeController) Root() testNode { return testNode{} }

func collectRefs(s *Schema, refs map[string]bool) {
	if s == nil {
		return
	}
	if s.Ref != "" {
		refs[s.Ref] = true
	}
	collectRefs(s.Items, refs)
	collectRefs(s.AdditionalProperties, refs)
	for _, name := range s.PropertyNames() {
		p, _ := s.Property(name)
		collectRefs(p, refs)
	}
}

func TestDocketRecursiveContainerRefs(t *testing.T) {
	handlers, err := handler.NewScanner(nil).Scan(&testTreeController{})
	require.NoError(t, err)

	doc := NewDocket(Info{}).Build(handlers)
	require.Contains(t, doc.Definitions, "testNode")

	refs := make(map[string]bool)
	collectRefs(doc.Paths["/tree"].Get.Responses["200"].Schema, refs)
	for _, def := range doc.Definitions {
		collectRefs(def, refs)
	}
	require.NotEmpty(t, refs)
	for ref := range refs {
		name := strings.TrimPrefix(ref, "#/definitions/")
		assert.Contains(t, doc.Definitions, name, ref)
	}

	children, ok := doc.Definitions["testNode"].Property("children")
	require.True(t, ok)
	assert.Equal(t, "array", children.Type)
	require.NotNil(t, children.Items)
	assert.Equal(t, "object", children.Items.Type)
}

func TestDocketOptions(t *testing.T) {
	handlers := scanTestHandlers(t)

	t.Run("default responses disabled", func(t *testing.T) {
		doc := NewDocket(Info{}).UseDefaultResponseMessages(false).Build(handlers)
		op := doc.Paths["/pet/{petId}"].Get
		require.NotNil(t, op)
		assert.Len(t, op.Responses, 2)
		assert.Contains(t, op.Responses, "200")
		assert.Equal(t, "Pet not found", op.Responses["404"].Description)
	})

	t.Run("code generation naming", func(t *testing.T) {
		doc := NewDocket(Info{}).ForCodeGeneration(true).Build(handlers)
		assert.Contains(t, doc.Definitions, "testPageOfTestPet")
		assert.Equal(t, "#/definitions/testPageOfTestPet", doc.Paths["/pet/page"].Get.Responses["200"].Schema.Ref)
	})

	t.Run("user tags win", func(t *testing.T) {
		doc := NewDocket(Info{}).
			AddTag(Tag{Name: "pet", Description: "Pets"}).
			AddTag(Tag{Name: "unused", Description: "Declared only"}).
			Build(handlers)

		names := make([]string, len(doc.Tags))
		for i, tag := range doc.Tags {
			names[i] = tag.Name
		}
		assert.True(t, slices.IsSorted(names))
		assert.Contains(t, doc.Tags, Tag{Name: "pet", Description: "Pets"})
		assert.Contains(t, doc.Tags, Tag{Name: "unused", Description: "Declared only"})
	})

	t.Run("security", func(t *testing.T) {
		doc := NewDocket(Info{}).
			SecuritySchemes(
				APIKey{Name: "api_key", KeyName: "api_key", PassAs: "header"},
				OAuth{Name: "petstore_auth", GrantTypes: []GrantType{ImplicitGrant{LoginEndpoint: "https://petstore.example/oauth/dialog"}}},
			).
			Security(SecurityRequirement{"api_key": {}}).
			Build(handlers)

		require.Len(t, doc.SecurityDefinitions, 2)
		assert.Equal(t, "apiKey", doc.SecurityDefinitions["api_key"].Type)
		assert.Equal(t, "implicit", doc.SecurityDefinitions["petstore_auth"].Flow)
		assert.Equal(t, []SecurityRequirement{{"api_key": {}}}, doc.Security)
	})

	t.Run("unsupported scheme panics", func(t *testing.T) {
		d := NewDocket(Info{}).SecuritySchemes(testScheme{})
		assert.Panics(t, func() { d.Build(handlers) })
	})

	t.Run("group name", func(t *testing.T) {
		assert.Equal(t, DefaultGroup, NewDocket(Info{}).Group())
		assert.Equal(t, "admin", NewDocket(Info{}).GroupName("admin").Group())
		assert.Equal(t, DefaultGroup, NewDocket(Info{}).GroupName("").Group())
	})

	t.Run("enabled", func(t *testing.T) {
		assert.True(t, NewDocket(Info{}).Enabled())
		assert.False(t, NewDocket(Info{}).Enable(false).Enabled())
	})

	t.Run("builds are independent", func(t *testing.T) {
		d := NewDocket(Info{})
		first := d.Build(handlers)
		second := d.Build(handlers)
		assert.Equal(t, first.Paths["/pet"].Post.OperationID, second.Paths["/pet"].Post.OperationID)
	})
}

func TestMergeTags(t *testing.T) {
	d := NewDocket(Info{}).AddTag(Tag{Name: "b", Description: "user"})
	paths := map[string]*PathItem{
		"/x": {Get: &Operation{Tags: []string{"c", "b"}}},
		"/y": {Post: &Operation{Tags: []string{"a"}}},
	}

	got := d.mergeTags(paths, map[string]string{"a": "from controller", "b": "ignored"})
	assert.Equal(t, []Tag{
		{Name: "a", Description: "from controller"},
		{Name: "b", Description: "user"},
		{Name: "c"},
	}, got)
}

func TestMergeParameters(t *testing.T) {
	auto := []*Parameter{
		{Name: "id", In: "path", Type: "string"},
		{Name: "slug", In: "path", Type: "string"},
	}
	custom := []*Parameter{
		{Name: "id", In: "path", Type: "integer"},
		{Name: "q", In: "query", Type: "string"},
	}

	got := mergeParameters(auto, custom)
	require.Len(t, got, 3)
	assert.Equal(t, "integer", got[0].Type)
	assert.Equal(t, "slug", got[1].Name)
	assert.Equal(t, "q", got[2].Name)

	assert.Equal(t, auto, mergeParameters(auto, nil))
}

func TestPathParameters(t *testing.T) {
	vars, err := handler.ParsePattern("/pets/{id:uuid}/photos/{name}/{n:int}")
	require.NoError(t, err)

	params := pathParameters(vars)
	require.Len(t, params, 3)

	assert.Equal(t, Parameter{Name: "id", In: "path", Required: true, Type: "string", Format: "uuid"}, *params[0])
	assert.Equal(t, Parameter{Name: "name", In: "path", Required: true, Type: "string"}, *params[1])
	assert.Equal(t, Parameter{Name: "n", In: "path", Required: true, Type: "integer", Format: "int64"}, *params[2])
}

func TestAssignOperation(t *testing.T) {
	item := &PathItem{}
	op := &Operation{}

	assert.True(t, assignOperation(item, http.MethodGet, op))
	assert.Same(t, op, item.Get)
	assert.False(t, assignOperation(item, http.MethodGet, &Operation{}))
	assert.Same(t, op, item.Get)
	assert.False(t, assignOperation(item, http.MethodTrace, op))
}
