package swagger

import (
	"log/slog"
	"slices"
	"sort"
	"strconv"

	"github.com/vitalvas/docket/handler"
	"github.com/vitalvas/docket/internal/logenc"
	"github.com/vitalvas/docket/schema"
	"github.com/vitalvas/docket/selector"
)

// DefaultGroup is the group name of a Docket without an explicit one.
const DefaultGroup = "default"

// Docket configures one documentation group and builds its Document from
// discovered handlers.
//
//	d := swagger.NewDocket(swagger.Info{Title: "Petstore", Version: "1.0.0"}).
//	    Select(selector.BasePackage("github.com/acme/petstore")).
//	    Paths(selector.PathPrefix("/pet"))
//	doc := d.Build(handlers)
type Docket struct {
	group            string
	info             Info
	host             string
	basePath         string
	schemes          []string
	consumes         []string
	produces         []string
	externalDocs     *ExternalDocs
	selector         selector.Predicate
	paths            selector.PathPredicate
	tags             []Tag
	securitySchemes  []SecurityScheme
	security         []SecurityRequirement
	defaultResponses bool
	enabled          bool
	resolver         *schema.Resolver
	mapper           *PropertyMapper
	logger           *slog.Logger
}

// NewDocket creates a Docket in the default group that documents every
// handler not marked with handler.ApiIgnore.
func NewDocket(info Info) *Docket {
	return &Docket{
		group:            DefaultGroup,
		info:             info,
		selector:         selector.Any(),
		paths:            selector.PathAny(),
		defaultResponses: true,
		enabled:          true,
		resolver:         schema.NewResolver(nil, nil),
		mapper:           NewPropertyMapper(DefaultFactories()),
		logger:           slog.New(slog.DiscardHandler),
	}
}

// GroupName sets the group the Docket is served under.
func (d *Docket) GroupName(name string) *Docket {
	if name == "" {
		name = DefaultGroup
	}
	d.group = name
	return d
}

// Group returns the group name.
func (d *Docket) Group() string {
	return d.group
}

// Info returns the API metadata.
func (d *Docket) Info() Info {
	return d.info
}

// Host sets the host (name or ip) serving the API, without scheme.
func (d *Docket) Host(host string) *Docket {
	d.host = host
	return d
}

// BasePath sets the path prefix all operation paths are relative to.
func (d *Docket) BasePath(basePath string) *Docket {
	d.basePath = basePath
	return d
}

// Schemes appends transfer protocols such as "https".
func (d *Docket) Schemes(schemes ...string) *Docket {
	d.schemes = append(d.schemes, schemes...)
	return d
}

// Consumes sets the document-level request media types.
func (d *Docket) Consumes(mediaTypes ...string) *Docket {
	d.consumes = append(d.consumes, mediaTypes...)
	return d
}

// Produces sets the document-level response media types.
func (d *Docket) Produces(mediaTypes ...string) *Docket {
	d.produces = append(d.produces, mediaTypes...)
	return d
}

// ExternalDocs links additional documentation for the whole API.
func (d *Docket) ExternalDocs(url, description string) *Docket {
	d.externalDocs = &ExternalDocs{URL: url, Description: description}
	return d
}

// Select restricts the documented handlers. Handlers marked with
// handler.ApiIgnore on the method or the controller are always excluded.
func (d *Docket) Select(p selector.Predicate) *Docket {
	if p == nil {
		p = selector.Any()
	}
	d.selector = p
	return d
}

// Paths restricts the documented path patterns.
func (d *Docket) Paths(p selector.PathPredicate) *Docket {
	if p == nil {
		p = selector.PathAny()
	}
	d.paths = p
	return d
}

// AddTag adds a tag definition. User tags win over tags collected from
// operations.
func (d *Docket) AddTag(tag Tag) *Docket {
	d.tags = append(d.tags, tag)
	return d
}

// SecuritySchemes adds security definitions. Mapping an unsupported
// scheme panics during Build.
func (d *Docket) SecuritySchemes(schemes ...SecurityScheme) *Docket {
	d.securitySchemes = append(d.securitySchemes, schemes...)
	return d
}

// Security sets the document-level security requirements.
func (d *Docket) Security(reqs ...SecurityRequirement) *Docket {
	d.security = append(d.security, reqs...)
	return d
}

// UseDefaultResponseMessages toggles the per-method default responses
// (401, 403, 404 and friends).
func (d *Docket) UseDefaultResponseMessages(enabled bool) *Docket {
	d.defaultResponses = enabled
	return d
}

// Enable toggles whether the group is served.
func (d *Docket) Enable(enabled bool) *Docket {
	d.enabled = enabled
	return d
}

// Enabled reports whether the docket produces a document.
func (d *Docket) Enabled() bool {
	return d.enabled
}

// ForCodeGeneration switches generic definition names to identifier-safe
// ones: Page«Pet» becomes PageOfPet.
func (d *Docket) ForCodeGeneration(enabled bool) *Docket {
	naming := schema.DefaultGenericNaming
	if enabled {
		naming = schema.CodeGenGenericNaming
	}
	d.resolver = schema.NewResolver(nil, schema.NewTypeNameExtractor(naming)).WithNaming(naming)
	return d
}

// Resolver replaces the type resolver.
func (d *Docket) Resolver(r *schema.Resolver) *Docket {
	if r != nil {
		d.resolver = r
	}
	return d
}

// PropertyMapper replaces the property mapper.
func (d *Docket) PropertyMapper(m *PropertyMapper) *Docket {
	if m != nil {
		d.mapper = m
	}
	return d
}

// Logger sets the logger used while building.
func (d *Docket) Logger(l *slog.Logger) *Docket {
	if l != nil {
		d.logger = l
	}
	return d
}

func (d *Docket) predicate() selector.Predicate {
	ignore := handler.KindOf[handler.ApiIgnore]()
	return selector.And(
		selector.Not(selector.WithMethodAnnotation(ignore)),
		selector.Not(selector.WithClassAnnotation(ignore)),
		d.selector,
	)
}

// Build selects, merges and documents handlers. Every (pattern, method)
// pair of a merged handler becomes one operation; handlers without
// methods are documented for every method Swagger 2.0 describes.
func (d *Docket) Build(handlers []handler.RequestHandler) *Document {
	b := &build{
		docket:   d,
		provider: schema.NewModelProvider(d.resolver, nil),
		ids:      make(map[string]int),
		tagDocs:  make(map[string]string),
	}

	doc := &Document{
		Swagger:      Version,
		Info:         d.info,
		Host:         d.host,
		BasePath:     d.basePath,
		Schemes:      slices.Clone(d.schemes),
		Consumes:     slices.Clone(d.consumes),
		Produces:     slices.Clone(d.produces),
		Paths:        make(map[string]*PathItem),
		Security:     slices.Clone(d.security),
		ExternalDocs: d.externalDocs,
	}

	predicate := d.predicate()
	var selected []handler.RequestHandler
	for _, h := range handlers {
		if h != nil && predicate(h) {
			selected = append(selected, h)
		}
	}

	for _, h := range handler.Merge(selected) {
		b.document(doc, h)
	}

	if models := b.provider.Definitions().Models(); len(models) > 0 {
		doc.Definitions = make(map[string]*Schema, len(models))
		for _, m := range models {
			doc.Definitions[m.Name] = d.mapper.ModelToSchema(m)
		}
	}

	if len(d.securitySchemes) > 0 {
		doc.SecurityDefinitions = make(map[string]*SecurityDefinition, len(d.securitySchemes))
		for _, s := range d.securitySchemes {
			doc.SecurityDefinitions[s.SchemeName()] = MapScheme(s)
		}
	}

	doc.Tags = d.mergeTags(doc.Paths, b.tagDocs)

	d.logger.Debug("built documentation",
		"group", logenc.URLEncode(d.group),
		"handlers", len(selected),
		"paths", len(doc.Paths),
		"definitions", len(doc.Definitions),
	)
	return doc
}

// build holds the state of one Build call.
type build struct {
	docket   *Docket
	provider *schema.ModelProvider
	ids      map[string]int
	tagDocs  map[string]string
}

func (b *build) document(doc *Document, h handler.RequestHandler) {
	d := b.docket
	ann, _ := handler.Find[handler.ApiOperation](h)
	if ann.Hidden {
		return
	}

	methods := h.SupportedMethods()
	if len(methods) == 0 {
		methods = allMethods
	}

	for _, pattern := range h.Patterns() {
		path := handler.NormalizePattern(pattern)
		if !d.paths(path) {
			continue
		}
		vars, err := handler.ParsePattern(pattern)
		if err != nil {
			d.logger.Warn("skipping invalid pattern", "pattern", logenc.URLEncode(pattern), "error", err)
			continue
		}

		for _, method := range methods {
			op := b.operation(h, ann, vars, method)

			item, ok := doc.Paths[path]
			if !ok {
				item = &PathItem{}
			}
			if !assignOperation(item, method, op) {
				d.logger.Debug("skipping operation",
					"path", logenc.URLEncode(path),
					"method", logenc.URLEncode(method),
					"handler", h.Name(),
				)
				continue
			}
			doc.Paths[path] = item
			op.OperationID = b.operationID(ann, h, method)
		}
	}
}

// operationID returns "<name>Using<METHOD>", suffixed with _1, _2, ...
// when the id is already taken.
func (b *build) operationID(ann handler.ApiOperation, h handler.RequestHandler, method string) string {
	name := ann.Nickname
	if name == "" {
		name = h.Name()
	}
	id := name + "Using" + method
	n := b.ids[id]
	b.ids[id] = n + 1
	if n == 0 {
		return id
	}
	return id + "_" + strconv.Itoa(n)
}

func (b *build) operation(h handler.RequestHandler, ann handler.ApiOperation, vars []handler.PathVar, method string) *Operation {
	op := &Operation{
		Tags:        b.tags(h, ann),
		Summary:     ann.Value,
		Description: ann.Notes,
		Consumes:    h.Consumes(),
		Produces:    h.Produces(),
		Deprecated:  h.IsAnnotatedWith(handler.KindOf[handler.Deprecated]()),
		Responses:   make(map[string]*Response),
	}
	op.Parameters = mergeParameters(pathParameters(vars), b.parameters(h, vars))
	b.responses(op, h, method)
	return op
}

// tags picks the operation tags: its own, then the controller's, then
// the handler group.
func (b *build) tags(h handler.RequestHandler, ann handler.ApiOperation) []string {
	if len(ann.Tags) > 0 {
		return slices.Clone(ann.Tags)
	}
	if api, ok := handler.FindController[handler.Api](h); ok && len(api.Tags) > 0 {
		if api.Description != "" {
			for _, t := range api.Tags {
				if _, seen := b.tagDocs[t]; !seen {
					b.tagDocs[t] = api.Description
				}
			}
		}
		return slices.Clone(api.Tags)
	}
	if g := h.GroupName(); g != "" {
		return []string{g}
	}
	return nil
}

func (b *build) parameters(h handler.RequestHandler, vars []handler.PathVar) []*Parameter {
	mapper := b.docket.mapper

	var params []*Parameter
	for _, p := range h.Parameters() {
		ann, _ := handler.Find[handler.ApiParam](p)
		if ann.Hidden || isVoidType(p.Type) {
			continue
		}

		name := p.Name
		if ann.Name != "" {
			name = ann.Name
		}

		ref := b.provider.Collect(p.Type)
		node := mapper.FromModelRef(ref)
		if node == nil {
			continue
		}

		in := p.In
		if in == handler.InAuto {
			in = inferLocation(name, ref, node, vars)
		}
		if values := schema.ParseAllowableValues(ann.AllowableValues); values != nil {
			applyFieldValues(node, values)
		}

		param := &Parameter{
			Name:        name,
			In:          string(in),
			Description: ann.Value,
			Required:    p.Required || ann.Required || in == handler.InPath,
			Default:     p.DefaultValue,
			Example:     ann.Example,
		}
		if in == handler.InBody {
			param.Schema = node
		} else {
			inlineParameter(param, node)
		}
		params = append(params, param)
	}
	return params
}

func (b *build) responses(op *Operation, h handler.RequestHandler, method string) {
	ret := h.ReturnParameter()
	success := &Response{Description: responseDescription(200)}
	if !isVoidType(ret.Type) {
		success.Schema = b.docket.mapper.FromModelRef(b.provider.Collect(ret.Type))
	}
	op.Responses[statusKey(200)] = success

	if b.docket.defaultResponses {
		for _, code := range defaultResponseCodes[method] {
			if _, exists := op.Responses[statusKey(code)]; !exists {
				op.Responses[statusKey(code)] = &Response{Description: responseDescription(code)}
			}
		}
	}

	declared, _ := handler.Find[handler.ApiResponses](h)
	if single, found := handler.Find[handler.ApiResponse](h); found {
		declared = append(slices.Clone(declared), single)
	}
	for _, r := range declared {
		desc := r.Message
		if desc == "" {
			desc = responseDescription(r.Code)
		}
		if existing, exists := op.Responses[statusKey(r.Code)]; exists {
			existing.Description = desc
			continue
		}
		op.Responses[statusKey(r.Code)] = &Response{Description: desc}
	}
}

// mergeTags combines tags collected from operations with user-defined
// tags. User-defined tags keep their description and external docs; tags
// only known from controllers take the controller description. The result
// is sorted by name.
func (d *Docket) mergeTags(paths map[string]*PathItem, described map[string]string) []Tag {
	userTags := make(map[string]Tag, len(d.tags))
	for _, tag := range d.tags {
		userTags[tag.Name] = tag
	}

	seen := make(map[string]bool)
	var tags []Tag
	for _, item := range paths {
		for _, op := range []*Operation{
			item.Get, item.Post, item.Put, item.Delete,
			item.Patch, item.Head, item.Options,
		} {
			if op == nil {
				continue
			}
			for _, name := range op.Tags {
				if seen[name] {
					continue
				}
				seen[name] = true
				if userTag, ok := userTags[name]; ok {
					tags = append(tags, userTag)
				} else {
					tags = append(tags, Tag{Name: name, Description: described[name]})
				}
			}
		}
	}

	for _, tag := range d.tags {
		if !seen[tag.Name] {
			seen[tag.Name] = true
			tags = append(tags, tag)
		}
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})
	return tags
}
