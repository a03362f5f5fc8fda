package handler

import (
	"reflect"
)

// AnnotationSource looks up annotation values by kind. An annotation is any
// Go value attached to a mapping, a parameter or a controller type; its
// kind is its reflect.Type.
type AnnotationSource interface {
	FindAnnotation(kind reflect.Type) (any, bool)
}

// Annotated is implemented by controllers carrying class-level annotations.
// The method is called on a zero value of the controller type, so it must
// not depend on controller state.
//
//	func (*PetController) Annotations() []any {
//	    return []any{handler.Api{Tags: []string{"pet"}}}
//	}
type Annotated interface {
	Annotations() []any
}

// KindOf returns the annotation kind of T.
func KindOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Find looks up the annotation of type T in src.
func Find[T any](src AnnotationSource) (T, bool) {
	if src == nil {
		var zero T
		return zero, false
	}
	return as[T](src.FindAnnotation(KindOf[T]()))
}

// FindController looks up the controller-level annotation of type T.
func FindController[T any](h RequestHandler) (T, bool) {
	if h == nil {
		var zero T
		return zero, false
	}
	return as[T](h.FindControllerAnnotation(KindOf[T]()))
}

func as[T any](v any, ok bool) (T, bool) {
	var zero T
	if !ok {
		return zero, false
	}
	switch a := v.(type) {
	case T:
		return a, true
	case *T:
		if a != nil {
			return *a, true
		}
	}
	return zero, false
}

// findIn returns the first annotation of the given kind. Pointers to the
// kind match as well.
func findIn(annotations []any, kind reflect.Type) (any, bool) {
	if kind == nil {
		return nil, false
	}
	for _, a := range annotations {
		if a == nil {
			continue
		}
		t := reflect.TypeOf(a)
		if t == kind || (t.Kind() == reflect.Pointer && t.Elem() == kind) {
			return a, true
		}
	}
	return nil, false
}

// ClassAnnotations returns the annotations declared by a controller type,
// or nil when the type does not implement Annotated.
func ClassAnnotations(t reflect.Type) []any {
	if t == nil {
		return nil
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if a, ok := reflect.New(t).Interface().(Annotated); ok {
		return a.Annotations()
	}
	return nil
}

// ApiOperation describes an operation.
//
// See: https://swagger.io/specification/v2/#operation-object
type ApiOperation struct {
	// Value is the operation summary.
	Value    string
	Notes    string
	Tags     []string
	Nickname string
	Hidden   bool
}

// Api describes a controller. Its tags apply to every operation of the
// controller that does not declare its own.
type Api struct {
	Tags        []string
	Description string
}

// ApiIgnore excludes a handler or a whole controller from documentation.
type ApiIgnore struct{}

// Deprecated marks an operation as deprecated.
type Deprecated struct{}

// ApiParam describes an operation parameter. AllowableValues uses the
// ParseAllowableValues syntax, e.g. "available,pending" or "range[1, 10]".
type ApiParam struct {
	Name            string
	Value           string
	Required        bool
	AllowableValues string
	Example         string
	Hidden          bool
}

// ApiResponse documents a response code.
type ApiResponse struct {
	Code    int
	Message string
}

// ApiResponses groups the documented responses of an operation.
type ApiResponses []ApiResponse
