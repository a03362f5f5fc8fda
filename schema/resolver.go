package schema

import (
	"reflect"
)

// Enumer can be implemented by enumerated types to advertise their
// accepted values. The values become an AllowableList on every reference
// resolved from the type, including collections of it.
//
//	func (s Status) EnumValues() []string {
//	    return []string{"available", "pending", "sold"}
//	}
type Enumer interface {
	EnumValues() []string
}

// Resolver turns reflected types into ModelRef trees.
//
// Resolution never fails for a well-formed type: shapes that cannot be
// classified degrade to a reference by fully qualified name. Resolving the
// same type twice yields Equal references.
type Resolver struct {
	introspector TypeIntrospector
	names        TypeNameExtractor
	naming       GenericNaming
}

// NewResolver creates a resolver. Nil collaborators are replaced by the
// reflect-based introspector and a DefaultTypeNameExtractor using
// DefaultGenericNaming.
func NewResolver(introspector TypeIntrospector, names TypeNameExtractor) *Resolver {
	if introspector == nil {
		introspector = NewIntrospector()
	}
	if names == nil {
		names = NewTypeNameExtractor(DefaultGenericNaming)
	}
	return &Resolver{
		introspector: introspector,
		names:        names,
		naming:       DefaultGenericNaming,
	}
}

// WithNaming sets the generic naming used for map reference names.
func (r *Resolver) WithNaming(naming GenericNaming) *Resolver {
	r.naming = naming
	return r
}

// Inspect exposes the introspector classification of t.
func (r *Resolver) Inspect(t reflect.Type) TypeInfo {
	return r.introspector.Inspect(t)
}

// TypeName returns the definition name the extractor assigns to t.
func (r *Resolver) TypeName(t reflect.Type) string {
	return r.names.TypeName(t)
}

// SimpleQualifiedTypeName returns the canonical name of t: the scalar name
// for scalars, the element name for fixed arrays and the fully qualified
// identifier otherwise.
func (r *Resolver) SimpleQualifiedTypeName(t reflect.Type) string {
	info := r.introspector.Inspect(t)
	switch info.Kind {
	case KindVoid:
		return TypeVoid
	case KindScalar:
		return info.Name
	case KindArray:
		return r.SimpleQualifiedTypeName(info.Elem)
	}
	return info.Signature
}

// AllowableValuesFor returns the constraints advertised by t. For arrays
// and containers the element type is consulted instead, so a []Status
// reports the values of Status.
func (r *Resolver) AllowableValuesFor(t reflect.Type) AllowableValues {
	info := r.introspector.Inspect(t)
	seen := make(map[reflect.Type]bool)
	for info.Kind == KindArray || info.Kind == KindContainer {
		if seen[info.Type] {
			return nil
		}
		seen[info.Type] = true
		info = r.introspector.Inspect(info.Elem)
	}
	if info.Kind == KindVoid || info.Kind == KindMap || info.Type == nil {
		return nil
	}
	if en, ok := reflect.New(info.Type).Interface().(Enumer); ok {
		if values := en.EnumValues(); len(values) > 0 {
			return AllowableList{Values: values, ValueType: "LIST"}
		}
	}
	return nil
}

// Resolve builds the ModelRef for t.
func (r *Resolver) Resolve(t reflect.Type) ModelRef {
	return r.resolve(t, make(map[reflect.Type]bool))
}

func (r *Resolver) resolve(t reflect.Type, visiting map[reflect.Type]bool) ModelRef {
	info := r.introspector.Inspect(t)

	switch info.Kind {
	case KindVoid:
		return NewModelRef(TypeVoid)

	case KindScalar:
		return NewModelRefWithValues(info.Name, r.AllowableValuesFor(info.Type))

	case KindArray, KindContainer, KindMap:
		// A recursive container such as `type Tree []Tree` has no
		// definition of its own, so its second visit is a free-form object.
		if visiting[info.Type] {
			return NewModelRef(TypeObject)
		}
		visiting[info.Type] = true
		defer delete(visiting, info.Type)

		item := r.resolve(info.Elem, visiting)
		switch info.Kind {
		case KindArray:
			return NewCollectionRef("Array", item, r.AllowableValuesFor(info.Elem))
		case KindContainer:
			return NewCollectionRef("List", item, r.AllowableValuesFor(info.Elem))
		default:
			name := r.naming.Format("Map", r.displayName(info.Key), r.displayName(info.Elem))
			return NewMapRef(name, item)
		}

	case KindReference:
		return NewModelRef(r.names.TypeName(info.Type))
	}

	return NewModelRef(info.Signature)
}

// displayName is the short name used inside composite names.
func (r *Resolver) displayName(t reflect.Type) string {
	info := r.introspector.Inspect(t)
	switch info.Kind {
	case KindVoid:
		return TypeVoid
	case KindScalar:
		return info.Name
	case KindArray, KindContainer, KindMap:
		if info.Type.Name() != "" {
			return r.names.TypeName(info.Type)
		}
		if info.Kind == KindMap {
			return r.naming.Format("Map", r.displayName(info.Key), r.displayName(info.Elem))
		}
		return r.naming.Format("List", r.displayName(info.Elem))
	}
	return r.names.TypeName(info.Type)
}
