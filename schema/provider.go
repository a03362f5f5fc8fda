package schema

import (
	"reflect"
)

// Exampler can be implemented by model types to provide an example value
// for the generated definition.
//
//	func (p Pet) SwaggerExample() any {
//	    return Pet{ID: 1, Name: "doggie"}
//	}
//
// See: https://swagger.io/specification/v2/#schema-object (example)
type Exampler interface {
	SwaggerExample() any
}

// Describer can be implemented by model types to describe the definition.
type Describer interface {
	SwaggerDescription() string
}

// ModelProvider collects struct models reachable from resolved types into
// a Definitions table.
//
// Fields follow encoding/json naming: unexported fields and `json:"-"` are
// skipped, embedded structs without a json name are inlined and omitempty
// fields are optional. The `openapi` and `validate` tags add positions,
// descriptions, examples and constraints.
type ModelProvider struct {
	resolver *Resolver
	defs     *Definitions
}

// NewModelProvider creates a provider writing into defs.
func NewModelProvider(resolver *Resolver, defs *Definitions) *ModelProvider {
	if resolver == nil {
		resolver = NewResolver(nil, nil)
	}
	if defs == nil {
		defs = NewDefinitions()
	}
	return &ModelProvider{resolver: resolver, defs: defs}
}

// Resolver returns the resolver used by the provider.
func (p *ModelProvider) Resolver() *Resolver {
	return p.resolver
}

// Definitions returns the table models are collected into.
func (p *ModelProvider) Definitions() *Definitions {
	return p.defs
}

// Collect resolves t and registers every struct model reachable from it.
func (p *ModelProvider) Collect(t reflect.Type) ModelRef {
	ref := p.resolver.Resolve(t)
	p.collect(t, make(map[reflect.Type]bool))
	return ref
}

func (p *ModelProvider) collect(t reflect.Type, visited map[reflect.Type]bool) {
	info := p.resolver.Inspect(t)
	switch info.Kind {
	case KindArray, KindContainer, KindMap:
		if visited[info.Type] {
			return
		}
		visited[info.Type] = true
		p.collect(info.Elem, visited)

	case KindReference:
		if info.Type.Kind() != reflect.Struct || visited[info.Type] {
			return
		}
		visited[info.Type] = true

		ref := p.resolver.Resolve(info.Type)
		if p.defs.Contains(ref) {
			return
		}

		model := Model{
			Name:          ref.Type(),
			QualifiedType: info.Signature,
			Type:          info.Type,
			Properties:    make(map[string]ModelProperty),
		}
		p.collectFields(info.Type, &model, false, visited)

		instance := reflect.New(info.Type).Interface()
		if ex, ok := instance.(Exampler); ok {
			model.Example = ex.SwaggerExample()
		}
		if d, ok := instance.(Describer); ok {
			model.Description = d.SwaggerDescription()
		}

		p.defs.Add(ref, model)
	}
}

// collectFields collects struct fields into the model. When allOptional is
// true every field is optional; pointer-embedded structs can be nil and
// omit all their fields.
func (p *ModelProvider) collectFields(t reflect.Type, model *Model, allOptional bool, visited map[reflect.Type]bool) {
	for i := range t.NumField() {
		field := t.Field(i)

		// Embedded structs are inlined when the field has no explicit json
		// name. encoding/json also inlines unexported embedded structs but
		// ignores pointers to them.
		if field.Anonymous {
			jsonName, _ := parseJSONTag(field.Tag.Get("json"))
			if jsonName == "" {
				ft := field.Type
				isPtr := ft.Kind() == reflect.Pointer
				if isPtr {
					ft = ft.Elem()
				}
				if ft.Kind() == reflect.Struct {
					if isPtr && !field.IsExported() {
						continue
					}
					p.collectFields(ft, model, allOptional || isPtr, visited)
					continue
				}
			}
		}

		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		name, opts := parseJSONTag(jsonTag)
		if name == "" {
			name = field.Name
		}

		tag := parseOpenAPITag(field.Tag.Get("openapi"))
		if tag.hidden {
			continue
		}
		rules := parseValidateTag(field.Tag.Get("validate"))

		ref := p.resolver.Resolve(field.Type)
		p.collect(field.Type, visited)

		prop := ModelProperty{
			Name:        name,
			Position:    tag.position,
			Type:        field.Type,
			Ref:         ref,
			Required:    (!opts.omitempty && !allOptional) || rules.required || tag.required,
			Description: tag.description,
			ReadOnly:    tag.readOnly,
			Pattern:     tag.pattern,
		}

		prop.AllowableValues = rules.allowable
		if tag.allowable != nil {
			prop.AllowableValues = tag.allowable
		}

		if tag.hasExample {
			typ := ref.Type()
			if item, ok := ref.ItemType(); ok {
				typ = item
			}
			prop.Example = parseExampleValue(typ, tag.example)
		}

		model.Properties[name] = prop
	}
}
