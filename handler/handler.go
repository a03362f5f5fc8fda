package handler

import (
	"reflect"
	"sort"
	"strings"
)

// RequestHandler describes one documented HTTP operation.
type RequestHandler interface {
	AnnotationSource

	// DeclaringType is the controller type, or nil for synthetic handlers.
	DeclaringType() reflect.Type
	IsAnnotatedWith(kind reflect.Type) bool
	Patterns() []string
	GroupName() string
	Name() string
	SupportedMethods() []string
	Produces() []string
	Consumes() []string
	Headers() []NameValue
	Params() []NameValue
	FindControllerAnnotation(kind reflect.Type) (any, bool)
	Key() Key
	Parameters() []Parameter
	ReturnParameter() Parameter
	HandlerMethod() reflect.Method
	RequestMapping() Mapping
	Combine(other RequestHandler) RequestHandler
}

// Location is where a parameter is read from.
//
// See: https://swagger.io/specification/v2/#parameter-object (in)
type Location string

const (
	InAuto     Location = ""
	InPath     Location = "path"
	InQuery    Location = "query"
	InHeader   Location = "header"
	InBody     Location = "body"
	InFormData Location = "formData"
)

// Parameter is one documented argument of a handler method.
type Parameter struct {
	Index        int
	Name         string
	Type         reflect.Type
	In           Location
	Required     bool
	DefaultValue string
	Annotations  []any
}

// FindAnnotation looks up a parameter-level annotation.
func (p Parameter) FindAnnotation(kind reflect.Type) (any, bool) {
	return findIn(p.Annotations, kind)
}

// NameValue is a header or query-parameter condition of a mapping:
// "X-Version=2", "X-Debug" (present) or "!X-Debug" (absent).
type NameValue struct {
	Name    string
	Value   string
	Negated bool
}

// ParseNameValue parses a mapping condition expression.
func ParseNameValue(expr string) NameValue {
	expr = strings.TrimSpace(expr)
	if name, value, ok := strings.Cut(expr, "!="); ok {
		return NameValue{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value), Negated: true}
	}
	if name, value, ok := strings.Cut(expr, "="); ok {
		return NameValue{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)}
	}
	if name, ok := strings.CutPrefix(expr, "!"); ok {
		return NameValue{Name: strings.TrimSpace(name), Negated: true}
	}
	return NameValue{Name: expr}
}

func (nv NameValue) String() string {
	switch {
	case nv.Negated && nv.Value != "":
		return nv.Name + "!=" + nv.Value
	case nv.Negated:
		return "!" + nv.Name
	case nv.Value != "":
		return nv.Name + "=" + nv.Value
	}
	return nv.Name
}

// Key identifies a handler by its patterns, methods and media types.
// Keys are comparable and independent of set order.
type Key struct {
	Patterns string
	Methods  string
	Consumes string
	Produces string
}

// NewKey builds a key from the given sets.
func NewKey(patterns, methods, consumes, produces []string) Key {
	return Key{
		Patterns: canonicalSet(patterns),
		Methods:  canonicalSet(methods),
		Consumes: canonicalSet(consumes),
		Produces: canonicalSet(produces),
	}
}

func (k Key) String() string {
	return "{" + k.Patterns + "} {" + k.Methods + "} consumes {" + k.Consumes + "} produces {" + k.Produces + "}"
}

func canonicalSet(values []string) string {
	set := union(nil, values)
	sort.Strings(set)
	return strings.Join(set, ",")
}

// union appends the values of b missing from a, keeping first-seen order
// and dropping duplicates within either side.
func union(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, side := range [][]string{a, b} {
		for _, v := range side {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
