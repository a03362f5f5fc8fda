package handler

import (
	"reflect"
)

// combined is the union of two handlers believed to represent the same
// logical route. Set-valued attributes are unioned; single-valued
// attributes come from first, except HandlerMethod which comes from second.
type combined struct {
	first  RequestHandler
	second RequestHandler
	key    Key
}

// Combine merges two handlers. Repeated combination accumulates the union:
// Combine(Combine(a, b), c) reports the patterns, methods and media types
// of all three, while metadata resolution prefers the leftmost handler.
func Combine(first, second RequestHandler) RequestHandler {
	c := &combined{first: first, second: second}
	c.key = NewKey(c.Patterns(), c.SupportedMethods(), c.Consumes(), c.Produces())
	return c
}

func (c *combined) DeclaringType() reflect.Type {
	return c.first.DeclaringType()
}

func (c *combined) IsAnnotatedWith(kind reflect.Type) bool {
	return c.first.IsAnnotatedWith(kind) || c.second.IsAnnotatedWith(kind)
}

func (c *combined) Patterns() []string {
	return union(c.first.Patterns(), c.second.Patterns())
}

func (c *combined) GroupName() string {
	return c.first.GroupName()
}

func (c *combined) Name() string {
	return c.first.Name()
}

func (c *combined) SupportedMethods() []string {
	return union(c.first.SupportedMethods(), c.second.SupportedMethods())
}

func (c *combined) Produces() []string {
	return union(c.first.Produces(), c.second.Produces())
}

func (c *combined) Consumes() []string {
	return union(c.first.Consumes(), c.second.Consumes())
}

func (c *combined) Headers() []NameValue {
	return c.first.Headers()
}

func (c *combined) Params() []NameValue {
	return c.first.Params()
}

func (c *combined) FindAnnotation(kind reflect.Type) (any, bool) {
	if v, ok := c.first.FindAnnotation(kind); ok {
		return v, true
	}
	return c.second.FindAnnotation(kind)
}

func (c *combined) FindControllerAnnotation(kind reflect.Type) (any, bool) {
	if v, ok := c.first.FindControllerAnnotation(kind); ok {
		return v, true
	}
	return c.second.FindControllerAnnotation(kind)
}

func (c *combined) Key() Key {
	return c.key
}

func (c *combined) Parameters() []Parameter {
	return c.first.Parameters()
}

func (c *combined) ReturnParameter() Parameter {
	return c.first.ReturnParameter()
}

// HandlerMethod comes from second: first supplies identity and metadata,
// second the method reference when the two diverge.
func (c *combined) HandlerMethod() reflect.Method {
	return c.second.HandlerMethod()
}

func (c *combined) RequestMapping() Mapping {
	return c.first.RequestMapping()
}

func (c *combined) Combine(other RequestHandler) RequestHandler {
	return Combine(c, other)
}

func (c *combined) String() string {
	return c.Name() + " " + c.key.String()
}
