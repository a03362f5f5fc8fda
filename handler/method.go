package handler

import (
	"reflect"
	"strings"
	"unicode"
)

// MethodInfo carries everything a leaf handler reflects.
type MethodInfo struct {
	DeclaringType reflect.Type
	Method        reflect.Method
	Mapping       Mapping
	Parameters    []Parameter
	ReturnType    reflect.Type
}

// Method is a leaf RequestHandler reflecting one controller method.
type Method struct {
	info     MethodInfo
	patterns []string
	methods  []string
	consumes []string
	produces []string
	headers  []NameValue
	params   []NameValue
	key      Key
}

// NewMethod creates a leaf handler. Sets are de-duplicated in declaration
// order and HTTP methods are upper-cased.
func NewMethod(info MethodInfo) *Method {
	methods := make([]string, len(info.Mapping.Methods))
	for i, m := range info.Mapping.Methods {
		methods[i] = strings.ToUpper(strings.TrimSpace(m))
	}

	m := &Method{
		info:     info,
		patterns: union(nil, info.Mapping.Patterns),
		methods:  union(nil, methods),
		consumes: union(nil, info.Mapping.Consumes),
		produces: union(nil, info.Mapping.Produces),
		headers:  parseNameValues(info.Mapping.Headers),
		params:   parseNameValues(info.Mapping.Params),
	}
	m.key = NewKey(m.patterns, m.methods, m.consumes, m.produces)
	return m
}

func parseNameValues(exprs []string) []NameValue {
	if len(exprs) == 0 {
		return nil
	}
	out := make([]NameValue, len(exprs))
	for i, e := range exprs {
		out[i] = ParseNameValue(e)
	}
	return out
}

// DeclaringType returns the controller type the method belongs to.
func (m *Method) DeclaringType() reflect.Type {
	return m.info.DeclaringType
}

// IsAnnotatedWith reports whether the method itself carries the annotation.
func (m *Method) IsAnnotatedWith(kind reflect.Type) bool {
	_, ok := findIn(m.info.Mapping.Annotations, kind)
	return ok
}

// Patterns returns a copy of the mapped path patterns.
func (m *Method) Patterns() []string {
	return clone(m.patterns)
}

// GroupName returns the mapping group, defaulting to the controller name
// in kebab case ("PetController" -> "pet-controller").
func (m *Method) GroupName() string {
	if m.info.Mapping.Group != "" {
		return m.info.Mapping.Group
	}
	if m.info.DeclaringType == nil {
		return ""
	}
	return kebab(m.info.DeclaringType.Name())
}

// Name returns the mapping name, defaulting to the Go method name.
func (m *Method) Name() string {
	if m.info.Mapping.Name != "" {
		return m.info.Mapping.Name
	}
	if m.info.Method.Name != "" {
		return m.info.Method.Name
	}
	return m.info.Mapping.Method
}

// SupportedMethods returns the upper-cased HTTP methods. An empty set
// means every method.
func (m *Method) SupportedMethods() []string {
	return clone(m.methods)
}

// Produces returns the response media types.
func (m *Method) Produces() []string {
	return clone(m.produces)
}

// Consumes returns the request media types.
func (m *Method) Consumes() []string {
	return clone(m.consumes)
}

// Headers returns the header conditions of the mapping.
func (m *Method) Headers() []NameValue {
	return m.headers
}

// Params returns the query-parameter conditions of the mapping.
func (m *Method) Params() []NameValue {
	return m.params
}

// FindAnnotation looks up a method-level annotation.
func (m *Method) FindAnnotation(kind reflect.Type) (any, bool) {
	return findIn(m.info.Mapping.Annotations, kind)
}

// FindControllerAnnotation looks up an annotation of the declaring type.
func (m *Method) FindControllerAnnotation(kind reflect.Type) (any, bool) {
	return findIn(ClassAnnotations(m.info.DeclaringType), kind)
}

// Key returns the identity of the handler.
func (m *Method) Key() Key {
	return m.key
}

// Parameters returns the documented arguments in declaration order.
func (m *Method) Parameters() []Parameter {
	return m.info.Parameters
}

// ReturnParameter describes the method result. A method without a
// documented result returns a parameter of the void type.
func (m *Method) ReturnParameter() Parameter {
	return Parameter{Index: -1, Type: m.info.ReturnType}
}

// HandlerMethod returns the reflected controller method.
func (m *Method) HandlerMethod() reflect.Method {
	return m.info.Method
}

// RequestMapping returns the mapping the handler was scanned from.
func (m *Method) RequestMapping() Mapping {
	return m.info.Mapping
}

// Combine merges other into a combined handler with m first.
func (m *Method) Combine(other RequestHandler) RequestHandler {
	return Combine(m, other)
}

func (m *Method) String() string {
	return m.Name() + " " + m.key.String()
}

func clone(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// kebab converts a Go identifier to kebab case.
func kebab(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
