package swagger

import (
	"net/http"
	"reflect"
	"strconv"

	"github.com/vitalvas/docket/handler"
	"github.com/vitalvas/docket/schema"
)

// allMethods is used for handlers that do not restrict the HTTP method.
var allMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// macroTypeMap maps path variable macros to Swagger type and format.
var macroTypeMap = map[string][2]string{
	"uuid":     {"string", "uuid"},
	"int":      {"integer", "int64"},
	"float":    {"number", "double"},
	"slug":     {"string", ""},
	"alpha":    {"string", ""},
	"alphanum": {"string", ""},
	"date":     {"string", "date"},
	"hex":      {"string", ""},
	"domain":   {"string", "hostname"},
}

// defaultResponseCodes are documented for every operation of a method
// when default response messages are enabled.
var defaultResponseCodes = map[string][]int{
	http.MethodGet:     {http.StatusOK, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound},
	http.MethodPost:    {http.StatusOK, http.StatusCreated, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound},
	http.MethodPut:     {http.StatusOK, http.StatusCreated, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound},
	http.MethodPatch:   {http.StatusOK, http.StatusNoContent, http.StatusUnauthorized, http.StatusForbidden},
	http.MethodDelete:  {http.StatusOK, http.StatusNoContent, http.StatusUnauthorized, http.StatusForbidden},
	http.MethodHead:    {http.StatusOK, http.StatusNoContent, http.StatusUnauthorized, http.StatusForbidden},
	http.MethodOptions: {http.StatusOK, http.StatusNoContent, http.StatusUnauthorized, http.StatusForbidden},
}

// responseDescription returns the standard HTTP status text for a code,
// or a generic "Response" description.
func responseDescription(code int) string {
	if text := http.StatusText(code); text != "" {
		return text
	}
	return "Response"
}

// assignOperation assigns an operation to the HTTP method field of the
// path item. It reports false for methods Swagger 2.0 cannot describe.
func assignOperation(item *PathItem, method string, op *Operation) bool {
	var slot **Operation
	switch method {
	case http.MethodGet:
		slot = &item.Get
	case http.MethodPost:
		slot = &item.Post
	case http.MethodPut:
		slot = &item.Put
	case http.MethodDelete:
		slot = &item.Delete
	case http.MethodPatch:
		slot = &item.Patch
	case http.MethodHead:
		slot = &item.Head
	case http.MethodOptions:
		slot = &item.Options
	default:
		return false
	}
	if *slot != nil {
		return false
	}
	*slot = op
	return true
}

// pathParameters generates the parameters of a pattern's variables.
func pathParameters(vars []handler.PathVar) []*Parameter {
	params := make([]*Parameter, 0, len(vars))
	for _, v := range vars {
		p := &Parameter{Name: v.Name, In: string(handler.InPath), Required: true, Type: "string"}
		if typeInfo, ok := macroTypeMap[v.Macro]; ok {
			p.Type = typeInfo[0]
			p.Format = typeInfo[1]
		}
		params = append(params, p)
	}
	return params
}

// mergeParameters combines auto-generated parameters with explicit ones.
// Explicit parameters override auto-generated ones that share the same
// name and location; the rest keep their order.
func mergeParameters(auto, custom []*Parameter) []*Parameter {
	if len(custom) == 0 {
		return auto
	}

	overrides := make(map[[2]string]*Parameter, len(custom))
	for _, p := range custom {
		overrides[[2]string{p.Name, p.In}] = p
	}

	result := make([]*Parameter, 0, len(auto)+len(custom))
	used := make(map[[2]string]bool, len(custom))
	for _, p := range auto {
		key := [2]string{p.Name, p.In}
		if override, ok := overrides[key]; ok {
			result = append(result, override)
			used[key] = true
			continue
		}
		result = append(result, p)
	}
	for _, p := range custom {
		if !used[[2]string{p.Name, p.In}] {
			result = append(result, p)
		}
	}
	return result
}

// inferLocation picks where an argument without an explicit location is
// read from: path variables by name, files from the form, scalars and
// collections of scalars from the query and everything else from the body.
func inferLocation(name string, ref schema.ModelRef, node *Schema, vars []handler.PathVar) handler.Location {
	for _, v := range vars {
		if v.Name == name {
			return handler.InPath
		}
	}
	if node == nil {
		return handler.InBody
	}
	switch node.Kind {
	case KindFile:
		return handler.InFormData
	case KindPrimitive, KindByteArray:
		return handler.InQuery
	case KindArray:
		if node.Items != nil && node.Items.Kind == KindPrimitive && !ref.IsMap() {
			return handler.InQuery
		}
	}
	return handler.InBody
}

// inlineParameter copies a simple property node into a non-body parameter.
func inlineParameter(p *Parameter, node *Schema) {
	if node == nil {
		p.Type = "string"
		return
	}
	switch node.Kind {
	case KindPrimitive, KindByteArray, KindFile, KindArray:
		p.Type = node.Type
		p.Format = node.Format
	default:
		p.Type = "string"
	}
	if node.Kind == KindArray {
		p.Items = node.Items
		p.CollectionFormat = "multi"
	}
	p.Enum = node.Enum
	p.Minimum, p.Maximum = node.Minimum, node.Maximum
	p.ExclusiveMinimum, p.ExclusiveMaximum = node.ExclusiveMinimum, node.ExclusiveMaximum
	p.MinLength, p.MaxLength = node.MinLength, node.MaxLength
	p.MinItems, p.MaxItems = node.MinItems, node.MaxItems
}

func statusKey(code int) string {
	return strconv.Itoa(code)
}

func isVoidType(t reflect.Type) bool {
	return t == nil || t == schema.VoidType
}
