package schema

import (
	"encoding/json"
	"math/big"
	"mime/multipart"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a reflected type for resolution.
type Kind int

const (
	KindVoid Kind = iota
	KindScalar
	KindArray
	KindContainer
	KindMap
	KindReference
)

func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindScalar:
		return "scalar"
	case KindArray:
		return "array"
	case KindContainer:
		return "container"
	case KindMap:
		return "map"
	case KindReference:
		return "reference"
	}
	return "unknown"
}

// Canonical scalar names shared with the property mapper.
const (
	TypeVoid       = "void"
	TypeInt        = "int"
	TypeLong       = "long"
	TypeFloat      = "float"
	TypeDouble     = "double"
	TypeString     = "string"
	TypeBoolean    = "boolean"
	TypeByte       = "byte"
	TypeDate       = "date"
	TypeDateTime   = "date-time"
	TypeBigDecimal = "bigdecimal"
	TypeBigInteger = "biginteger"
	TypeUUID       = "uuid"
	TypeObject     = "object"
	TypeFile       = "__file"
)

// Void marks a parameter, result or field that carries no value.
type Void struct{}

// VoidType is the reflected type of Void.
var VoidType = reflect.TypeFor[Void]()

// TypeInfo is the classification of one reflected type. Type is the
// dereferenced type; Elem is the element of an array or container and the
// value of a map.
type TypeInfo struct {
	Kind      Kind
	Type      reflect.Type
	Name      string
	Elem      reflect.Type
	Key       reflect.Type
	Signature string
}

// TypeIntrospector classifies reflected types. The resolver performs no
// reflection of its own beyond what an introspector reports.
type TypeIntrospector interface {
	Inspect(t reflect.Type) TypeInfo
}

// ReflectIntrospector is the default TypeIntrospector built on package reflect.
// Register custom scalars before the introspector is shared between goroutines.
type ReflectIntrospector struct {
	mu      sync.RWMutex
	scalars map[reflect.Type]string
}

var defaultScalars = map[reflect.Type]string{
	reflect.TypeFor[time.Time]():            TypeDateTime,
	reflect.TypeFor[big.Int]():              TypeBigInteger,
	reflect.TypeFor[big.Float]():            TypeBigDecimal,
	reflect.TypeFor[big.Rat]():              TypeBigDecimal,
	reflect.TypeFor[uuid.UUID]():            TypeUUID,
	reflect.TypeFor[json.RawMessage]():      TypeObject,
	reflect.TypeFor[json.Number]():          TypeDouble,
	reflect.TypeFor[multipart.FileHeader](): TypeFile,
	VoidType:                                TypeVoid,
	reflect.TypeFor[struct{}]():             TypeVoid,
}

// kindNames maps builtin kinds to canonical scalar names.
var kindNames = map[reflect.Kind]string{
	reflect.Bool:      TypeBoolean,
	reflect.Int8:      TypeInt,
	reflect.Int16:     TypeInt,
	reflect.Int32:     TypeInt,
	reflect.Uint16:    TypeInt,
	reflect.Int:       TypeLong,
	reflect.Int64:     TypeLong,
	reflect.Uint:      TypeLong,
	reflect.Uint32:    TypeLong,
	reflect.Uint64:    TypeLong,
	reflect.Uintptr:   TypeLong,
	reflect.Uint8:     TypeByte,
	reflect.Float32:   TypeFloat,
	reflect.Float64:   TypeDouble,
	reflect.String:    TypeString,
	reflect.Interface: TypeObject,
}

// NewIntrospector creates an introspector with the builtin scalar table.
func NewIntrospector() *ReflectIntrospector {
	scalars := make(map[reflect.Type]string, len(defaultScalars))
	for t, name := range defaultScalars {
		scalars[t] = name
	}
	return &ReflectIntrospector{scalars: scalars}
}

// RegisterScalar maps a named type to a canonical scalar name, e.g. a
// civil date type to "date".
func (in *ReflectIntrospector) RegisterScalar(t reflect.Type, name string) *ReflectIntrospector {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.scalars[deref(t)] = name
	return in
}

// Inspect classifies t. A nil type is void.
func (in *ReflectIntrospector) Inspect(t reflect.Type) TypeInfo {
	if t == nil {
		return TypeInfo{Kind: KindVoid, Name: TypeVoid, Signature: TypeVoid}
	}
	t = deref(t)
	info := TypeInfo{Type: t, Signature: qualifiedName(t)}

	in.mu.RLock()
	name, ok := in.scalars[t]
	in.mu.RUnlock()
	if ok {
		info.Name = name
		if name == TypeVoid {
			info.Kind = KindVoid
		} else {
			info.Kind = KindScalar
		}
		return info
	}

	switch t.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		info.Kind = KindVoid
		info.Name = TypeVoid
	case reflect.Array:
		info.Kind = KindArray
		info.Elem = t.Elem()
	case reflect.Slice:
		info.Kind = KindContainer
		info.Elem = t.Elem()
	case reflect.Map:
		info.Kind = KindMap
		info.Key = t.Key()
		info.Elem = t.Elem()
	default:
		if name, ok := kindNames[t.Kind()]; ok {
			info.Kind = KindScalar
			info.Name = name
			return info
		}
		info.Kind = KindReference
	}
	return info
}

func deref(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// qualifiedName returns "pkgpath.Name" for named types and the type
// literal otherwise.
func qualifiedName(t reflect.Type) string {
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}
