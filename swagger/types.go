package swagger

// Version is the Swagger specification version emitted by Build.
const Version = "2.0"

// Document represents the root of a Swagger 2.0 document.
//
// See: https://swagger.io/specification/v2/#swagger-object
type Document struct {
	Swagger             string                         `json:"swagger" yaml:"swagger"`
	Info                Info                           `json:"info" yaml:"info"`
	Host                string                         `json:"host,omitempty" yaml:"host,omitempty"`
	BasePath            string                         `json:"basePath,omitempty" yaml:"basePath,omitempty"`
	Schemes             []string                       `json:"schemes,omitempty" yaml:"schemes,omitempty"`
	Consumes            []string                       `json:"consumes,omitempty" yaml:"consumes,omitempty"`
	Produces            []string                       `json:"produces,omitempty" yaml:"produces,omitempty"`
	Tags                []Tag                          `json:"tags,omitempty" yaml:"tags,omitempty"`
	Paths               map[string]*PathItem           `json:"paths" yaml:"paths"`
	SecurityDefinitions map[string]*SecurityDefinition `json:"securityDefinitions,omitempty" yaml:"securityDefinitions,omitempty"`
	Security            []SecurityRequirement          `json:"security,omitempty" yaml:"security,omitempty"`
	Definitions         map[string]*Schema             `json:"definitions,omitempty" yaml:"definitions,omitempty"`
	ExternalDocs        *ExternalDocs                  `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`
}

// Info provides metadata about the API.
//
// See: https://swagger.io/specification/v2/#info-object
type Info struct {
	Title          string   `json:"title" yaml:"title"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
	TermsOfService string   `json:"termsOfService,omitempty" yaml:"termsOfService,omitempty"`
	Contact        *Contact `json:"contact,omitempty" yaml:"contact,omitempty"`
	License        *License `json:"license,omitempty" yaml:"license,omitempty"`
	Version        string   `json:"version" yaml:"version"`
}

// Contact represents contact information for the API.
//
// See: https://swagger.io/specification/v2/#contact-object
type Contact struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// License represents license information for the API.
//
// See: https://swagger.io/specification/v2/#license-object
type License struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

// PathItem describes the operations available on a single path.
//
// See: https://swagger.io/specification/v2/#path-item-object
type PathItem struct {
	Get        *Operation   `json:"get,omitempty" yaml:"get,omitempty"`
	Put        *Operation   `json:"put,omitempty" yaml:"put,omitempty"`
	Post       *Operation   `json:"post,omitempty" yaml:"post,omitempty"`
	Delete     *Operation   `json:"delete,omitempty" yaml:"delete,omitempty"`
	Options    *Operation   `json:"options,omitempty" yaml:"options,omitempty"`
	Head       *Operation   `json:"head,omitempty" yaml:"head,omitempty"`
	Patch      *Operation   `json:"patch,omitempty" yaml:"patch,omitempty"`
	Parameters []*Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Operation describes a single API operation on a path.
//
// See: https://swagger.io/specification/v2/#operation-object
type Operation struct {
	Tags         []string              `json:"tags,omitempty" yaml:"tags,omitempty"`
	Summary      string                `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description  string                `json:"description,omitempty" yaml:"description,omitempty"`
	ExternalDocs *ExternalDocs         `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`
	OperationID  string                `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Consumes     []string              `json:"consumes,omitempty" yaml:"consumes,omitempty"`
	Produces     []string              `json:"produces,omitempty" yaml:"produces,omitempty"`
	Parameters   []*Parameter          `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Responses    map[string]*Response  `json:"responses" yaml:"responses"`
	Deprecated   bool                  `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Security     []SecurityRequirement `json:"security,omitempty" yaml:"security,omitempty"`
}

// Parameter describes a single operation parameter. Body parameters carry
// a Schema; every other location describes its value inline.
//
// See: https://swagger.io/specification/v2/#parameter-object
type Parameter struct {
	Name             string   `json:"name" yaml:"name"`
	In               string   `json:"in" yaml:"in"`
	Description      string   `json:"description,omitempty" yaml:"description,omitempty"`
	Required         bool     `json:"required" yaml:"required"`
	Schema           *Schema  `json:"schema,omitempty" yaml:"schema,omitempty"`
	Type             string   `json:"type,omitempty" yaml:"type,omitempty"`
	Format           string   `json:"format,omitempty" yaml:"format,omitempty"`
	Items            *Schema  `json:"items,omitempty" yaml:"items,omitempty"`
	CollectionFormat string   `json:"collectionFormat,omitempty" yaml:"collectionFormat,omitempty"`
	Default          string   `json:"default,omitempty" yaml:"default,omitempty"`
	Enum             []string `json:"enum,omitempty" yaml:"enum,omitempty"`
	Minimum          *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	ExclusiveMinimum bool     `json:"exclusiveMinimum,omitempty" yaml:"exclusiveMinimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	ExclusiveMaximum bool     `json:"exclusiveMaximum,omitempty" yaml:"exclusiveMaximum,omitempty"`
	MinLength        *int64   `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength        *int64   `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	MinItems         *int64   `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems         *int64   `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
	Pattern          string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Example          string   `json:"x-example,omitempty" yaml:"x-example,omitempty"`
}

// Response describes a single response from an API operation.
//
// See: https://swagger.io/specification/v2/#response-object
type Response struct {
	Description string             `json:"description" yaml:"description"`
	Schema      *Schema            `json:"schema,omitempty" yaml:"schema,omitempty"`
	Headers     map[string]*Header `json:"headers,omitempty" yaml:"headers,omitempty"`
	Examples    map[string]any     `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// Header describes a response header.
//
// See: https://swagger.io/specification/v2/#header-object
type Header struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Type        string `json:"type" yaml:"type"`
	Format      string `json:"format,omitempty" yaml:"format,omitempty"`
}

// Tag adds metadata to a tag used by operations.
//
// See: https://swagger.io/specification/v2/#tag-object
type Tag struct {
	Name         string        `json:"name" yaml:"name"`
	Description  string        `json:"description,omitempty" yaml:"description,omitempty"`
	ExternalDocs *ExternalDocs `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`
}

// ExternalDocs references external documentation.
//
// See: https://swagger.io/specification/v2/#external-documentation-object
type ExternalDocs struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string `json:"url" yaml:"url"`
}

// SecurityDefinition describes a security scheme usable by operations.
//
// See: https://swagger.io/specification/v2/#security-scheme-object
type SecurityDefinition struct {
	Type             string            `json:"type" yaml:"type"`
	Description      string            `json:"description,omitempty" yaml:"description,omitempty"`
	Name             string            `json:"name,omitempty" yaml:"name,omitempty"`
	In               string            `json:"in,omitempty" yaml:"in,omitempty"`
	Flow             string            `json:"flow,omitempty" yaml:"flow,omitempty"`
	AuthorizationURL string            `json:"authorizationUrl,omitempty" yaml:"authorizationUrl,omitempty"`
	TokenURL         string            `json:"tokenUrl,omitempty" yaml:"tokenUrl,omitempty"`
	Scopes           map[string]string `json:"scopes,omitempty" yaml:"scopes,omitempty"`
}

// SecurityRequirement lists the required security schemes and scopes.
//
// See: https://swagger.io/specification/v2/#security-requirement-object
type SecurityRequirement map[string][]string
