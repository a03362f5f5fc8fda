package swagger

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"

	_ "github.com/swaggo/files"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/vitalvas/docket/internal/logenc"
)

// Registrar registers request handlers by path. *http.ServeMux
// satisfies it.
type Registrar interface {
	HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request))
}

// DocsUI selects the interactive documentation UI.
type DocsUI int

const (
	// DocsEmbedded serves the Swagger UI bundled into the binary.
	DocsEmbedded DocsUI = iota
	// DocsUnpkg serves a page loading the Swagger UI from unpkg.com.
	DocsUnpkg
)

// Resource describes one documentation group for the UI group picker.
type Resource struct {
	Name           string `json:"name"`
	URL            string `json:"url"`
	SwaggerVersion string `json:"swaggerVersion"`
	Location       string `json:"location"`
}

// UIConfiguration is served to the Swagger UI.
//
// See: https://swagger.io/docs/open-source-tools/swagger-ui/usage/configuration/
type UIConfiguration struct {
	DeepLinking              bool     `json:"deepLinking"`
	DisplayOperationID       bool     `json:"displayOperationId"`
	DefaultModelsExpandDepth int      `json:"defaultModelsExpandDepth"`
	DefaultModelExpandDepth  int      `json:"defaultModelExpandDepth"`
	DefaultModelRendering    string   `json:"defaultModelRendering"`
	DisplayRequestDuration   bool     `json:"displayRequestDuration"`
	DocExpansion             string   `json:"docExpansion"`
	Filter                   bool     `json:"filter"`
	OperationsSorter         string   `json:"operationsSorter"`
	ShowExtensions           bool     `json:"showExtensions"`
	TagsSorter               string   `json:"tagsSorter"`
	ValidatorURL             string   `json:"validatorUrl"`
	SupportedSubmitMethods   []string `json:"supportedSubmitMethods"`
}

// DefaultUIConfiguration returns the configuration served when none is set.
func DefaultUIConfiguration() UIConfiguration {
	return UIConfiguration{
		DeepLinking:              true,
		DefaultModelsExpandDepth: 1,
		DefaultModelExpandDepth:  1,
		DefaultModelRendering:    "example",
		DocExpansion:             "none",
		OperationsSorter:         "alpha",
		TagsSorter:               "alpha",
		SupportedSubmitMethods:   []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"},
	}
}

// SecurityConfiguration configures the OAuth2 dialog of the Swagger UI.
type SecurityConfiguration struct {
	ClientID                                  string         `json:"clientId,omitempty"`
	ClientSecret                              string         `json:"clientSecret,omitempty"`
	Realm                                     string         `json:"realm,omitempty"`
	AppName                                   string         `json:"appName,omitempty"`
	ScopeSeparator                            string         `json:"scopeSeparator,omitempty"`
	AdditionalQueryStringParams               map[string]any `json:"additionalQueryStringParams,omitempty"`
	UseBasicAuthenticationWithAccessCodeGrant bool           `json:"useBasicAuthenticationWithAccessCodeGrant"`
}

// DefaultSecurityConfiguration returns the configuration served when none
// is set.
func DefaultSecurityConfiguration() SecurityConfiguration {
	return SecurityConfiguration{ScopeSeparator: ","}
}

// HandleConfig configures the endpoints registered by Handle.
type HandleConfig struct {
	// UI selects the interactive docs UI (default: DocsEmbedded).
	UI DocsUI

	// Title overrides the HTML page title of the DocsUnpkg page
	// (default: the default group's info title).
	Title string

	// DocsPath is the path of the docs UI (default: "swagger-ui"). Set to
	// "-" to disable. Relative paths are joined with the base path:
	//
	//	"swagger-ui"  -> <basePath>/swagger-ui
	//	"/docs"       -> /docs
	DocsPath string

	// SwaggerUIConfig provides additional SwaggerUIBundle options for the
	// DocsUnpkg page, for example {"docExpansion": "none"}.
	SwaggerUIConfig map[string]any

	UIConfiguration       *UIConfiguration
	SecurityConfiguration *SecurityConfiguration

	// Logger receives request failures. Nil discards them.
	Logger *slog.Logger
}

func (cfg *HandleConfig) docsPath() string {
	if cfg.DocsPath == "" {
		return "swagger-ui"
	}
	return cfg.DocsPath
}

func (cfg *HandleConfig) logger() *slog.Logger {
	if cfg.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return cfg.Logger
}

func (cfg *HandleConfig) uiConfiguration() UIConfiguration {
	if cfg.UIConfiguration == nil {
		return DefaultUIConfiguration()
	}
	return *cfg.UIConfiguration
}

func (cfg *HandleConfig) securityConfiguration() SecurityConfiguration {
	if cfg.SecurityConfiguration == nil {
		return DefaultSecurityConfiguration()
	}
	return *cfg.SecurityConfiguration
}

// resolvePath returns the full route path for a filename. Absolute
// filenames are returned as-is; relative ones are joined under basePath.
func resolvePath(basePath, filename string) string {
	if strings.HasPrefix(filename, "/") {
		return filename
	}
	return basePath + "/" + filename
}

// Handle registers the documentation endpoints under basePath:
//
//	<basePath>/v2/api-docs                               - group document as JSON (?group=<name>)
//	<basePath>/v2/api-docs.yaml                          - group document as YAML (?group=<name>)
//	<basePath>/swagger-resources                         - list of groups
//	<basePath>/swagger-resources/configuration/ui        - UI configuration
//	<basePath>/swagger-resources/configuration/security  - UI OAuth2 configuration
//	<DocsPath>                                           - interactive docs (unless "-")
//
// Requests without a group use DefaultGroup; unknown groups answer 404.
// The config parameter is optional; pass nil for defaults.
func (c *Cache) Handle(r Registrar, basePath string, cfg *HandleConfig) {
	if cfg == nil {
		cfg = &HandleConfig{}
	}
	basePath = strings.TrimRight(basePath, "/")
	logger := cfg.logger()

	docsURL := basePath + "/v2/api-docs"

	r.HandleFunc(docsURL, instrument(logger, c.serveDocument(logger, "application/json; charset=utf-8", c.JSON)))
	r.HandleFunc(docsURL+".yaml", instrument(logger, c.serveDocument(logger, "application/x-yaml", c.YAML)))
	r.HandleFunc(basePath+"/swagger-resources", instrument(logger, c.serveResources(logger, docsURL)))
	r.HandleFunc(basePath+"/swagger-resources/configuration/ui", instrument(logger, serveJSON(logger, cfg.uiConfiguration())))
	r.HandleFunc(basePath+"/swagger-resources/configuration/security", instrument(logger, serveJSON(logger, cfg.securityConfiguration())))

	if docsPath := cfg.docsPath(); docsPath != "-" {
		c.registerDocs(r, strings.TrimRight(resolvePath(basePath, docsPath), "/"), cfg, docsURL)
	}
}

func requestGroup(r *http.Request) string {
	if group := r.URL.Query().Get("group"); group != "" {
		return group
	}
	return DefaultGroup
}

func (c *Cache) serveDocument(logger *slog.Logger, contentType string, encode func(string) ([]byte, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		group := requestGroup(r)
		data, err := encode(group)
		if errors.Is(err, ErrGroupNotFound) {
			logger.Warn("documentation group not found",
				"group", logenc.URLEncode(group),
				"request_id", RequestIDFromContext(r.Context()),
			)
			http.Error(w, "documentation group not found", http.StatusNotFound)
			return
		}
		if err != nil {
			logger.Error("failed to serialize documentation",
				"group", logenc.URLEncode(group),
				"request_id", RequestIDFromContext(r.Context()),
				"error", err,
			)
			http.Error(w, "failed to serialize documentation", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

// Resources lists the cached groups as UI resources. Query values other
// than group are appended to every resource URL after the group.
func (c *Cache) Resources(docsURL string, query url.Values) []Resource {
	var extra string
	if len(query) > 0 {
		propagated := make(url.Values, len(query))
		for k, v := range query {
			if k != "group" {
				propagated[k] = v
			}
		}
		if encoded := propagated.Encode(); encoded != "" {
			extra = "&" + encoded
		}
	}

	groups := c.Groups()
	resources := make([]Resource, 0, len(groups))
	for _, g := range groups {
		location := docsURL + "?group=" + url.QueryEscape(g) + extra
		resources = append(resources, Resource{
			Name:           g,
			URL:            location,
			SwaggerVersion: Version,
			Location:       location,
		})
	}
	return resources
}

func (c *Cache) serveResources(logger *slog.Logger, docsURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveJSON(logger, c.Resources(docsURL, r.URL.Query()))(w, r)
	}
}

func serveJSON(logger *slog.Logger, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := json.Marshal(v)
		if err != nil {
			logger.Error("failed to encode response",
				"request_id", RequestIDFromContext(r.Context()),
				"error", err,
			)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

// registerDocs registers the interactive documentation UI at docsPath.
func (c *Cache) registerDocs(r Registrar, docsPath string, cfg *HandleConfig, docsURL string) {
	logger := cfg.logger()

	if cfg.UI == DocsUnpkg {
		page := func(w http.ResponseWriter, _ *http.Request) {
			title := cfg.Title
			if title == "" {
				if doc, ok := c.Get(DefaultGroup); ok {
					title = doc.Info.Title
				}
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(swaggerUITemplate(title, docsURL, cfg.SwaggerUIConfig)))
		}
		if docsPath == "" {
			r.HandleFunc("/", instrument(logger, page))
			return
		}
		r.HandleFunc(docsPath, instrument(logger, page))
		r.HandleFunc(docsPath+"/", instrument(logger, page))
		return
	}

	ui := cfg.uiConfiguration()
	embedded := httpSwagger.Handler(
		httpSwagger.URL(docsURL),
		httpSwagger.DeepLinking(ui.DeepLinking),
	)
	r.HandleFunc(docsPath+"/", instrument(logger, embedded))
	if docsPath != "" {
		r.HandleFunc(docsPath, instrument(logger, func(w http.ResponseWriter, req *http.Request) {
			http.Redirect(w, req, docsPath+"/index.html", http.StatusFound)
		}))
	}
}

func swaggerUITemplate(title, specPath string, config map[string]any) string {
	var extra string
	if len(config) > 0 {
		keys := make([]string, 0, len(config))
		for k := range config {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var buf strings.Builder
		for _, k := range keys {
			v, err := json.Marshal(config[k])
			if err != nil {
				continue
			}
			fmt.Fprintf(&buf, ", %s: %s", k, v)
		}
		extra = buf.String()
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@3/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@3/swagger-ui-bundle.js"></script>
<script>
SwaggerUIBundle({url: %q, dom_id: "#swagger-ui"%s});
</script>
</body>
</html>`, html.EscapeString(title), specPath, extra)
}
