package schema

import (
	"reflect"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GenericNaming renders instantiated generic types as definition names,
// keeping Page[User] and Page[Order] apart.
type GenericNaming struct {
	Open      string
	Close     string
	Delimiter string

	// Transform is applied to each argument name when set.
	Transform func(string) string
}

var (
	// DefaultGenericNaming renders Page[User] as "Page«User»".
	DefaultGenericNaming = GenericNaming{Open: "«", Close: "»", Delimiter: ","}

	// CodeGenGenericNaming renders Page[User] as "PageOfUser" and
	// Pair[string,int] as "PairOfStringAndLong", safe for code generators.
	CodeGenGenericNaming = GenericNaming{Open: "Of", Delimiter: "And", Transform: titleCase}

	// UnderscoreGenericNaming renders Page[User] as "Page_User".
	UnderscoreGenericNaming = GenericNaming{Open: "_", Delimiter: "_"}
)

// Format joins a base name with its argument names.
func (n GenericNaming) Format(base string, args ...string) string {
	if len(args) == 0 {
		return base
	}
	if n.Transform != nil {
		transformed := make([]string, len(args))
		for i, a := range args {
			transformed[i] = n.Transform(a)
		}
		args = transformed
	}
	return base + n.Open + strings.Join(args, n.Delimiter) + n.Close
}

// titleCase upper-cases the first letter of each word. A Caser is stateful,
// so one is created per call.
func titleCase(s string) string {
	return cases.Title(language.English, cases.NoLower).String(s)
}

// TypeNameExtractor names reference types for the definitions table.
type TypeNameExtractor interface {
	TypeName(t reflect.Type) string
}

// DefaultTypeNameExtractor names types by their simple name, renders
// generic instantiations with a GenericNaming and resolves collisions
// between same-named types from different packages. It is safe for
// concurrent use.
type DefaultTypeNameExtractor struct {
	naming GenericNaming

	mu        sync.Mutex
	typeNames map[reflect.Type]string // type -> chosen name
	nameTypes map[string]reflect.Type // name -> type that claimed it
}

// NewTypeNameExtractor creates an extractor using the given naming.
func NewTypeNameExtractor(naming GenericNaming) *DefaultTypeNameExtractor {
	return &DefaultTypeNameExtractor{
		naming:    naming,
		typeNames: make(map[reflect.Type]string),
		nameTypes: make(map[string]reflect.Type),
	}
}

// TypeName returns a unique name for t. If two types from different
// packages share a simple name (models.User and api.User), the second gets
// its package's last path segment as a prefix ("ApiUser"). When the prefixed
// name still collides, a numeric suffix is appended ("ApiUser2"). Anonymous
// types fall back to their type literal.
func (e *DefaultTypeNameExtractor) TypeName(t reflect.Type) string {
	t = deref(t)
	if t == nil {
		return TypeVoid
	}
	if t.Name() == "" {
		return t.String()
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if name, ok := e.typeNames[t]; ok {
		return name
	}

	simple := e.genericName(t.Name())
	name := simple
	if existing, ok := e.nameTypes[name]; ok && existing != t {
		name = pkgPrefix(t.PkgPath()) + simple
		if existing, ok := e.nameTypes[name]; ok && existing != t {
			base := name
			for i := 2; ; i++ {
				candidate := base + strconv.Itoa(i)
				if _, ok := e.nameTypes[candidate]; !ok {
					name = candidate
					break
				}
			}
		}
	}

	e.typeNames[t] = name
	e.nameTypes[name] = t
	return name
}

// genericName renders a reflected type name such as
// "Page[github.com/acme/models.User]" with the configured naming.
func (e *DefaultTypeNameExtractor) genericName(name string) string {
	idx := strings.IndexByte(name, '[')
	if idx < 0 || !strings.HasSuffix(name, "]") {
		return name
	}
	args := splitTypeArgs(name[idx+1 : len(name)-1])
	named := make([]string, len(args))
	for i, a := range args {
		named[i] = e.argName(a)
	}
	return e.naming.Format(name[:idx], named...)
}

// argName names one type argument as printed by the reflect package.
func (e *DefaultTypeNameExtractor) argName(arg string) string {
	switch {
	case strings.HasPrefix(arg, "*"):
		return e.argName(arg[1:])
	case strings.HasPrefix(arg, "[]"):
		return e.naming.Format("List", e.argName(arg[2:]))
	case strings.HasPrefix(arg, "map["):
		end := matchingBracket(arg, len("map"))
		if end < 0 {
			return arg
		}
		return e.naming.Format("Map", e.argName(arg[len("map["):end]), e.argName(arg[end+1:]))
	case strings.HasPrefix(arg, "["):
		// fixed-size array: [4]T
		if end := strings.IndexByte(arg, ']'); end > 0 {
			return e.naming.Format("Array", e.argName(arg[end+1:]))
		}
		return arg
	case arg == "interface {}", arg == "any":
		return TypeObject
	}

	if idx := strings.IndexByte(arg, '['); idx >= 0 {
		return e.genericName(stripPackage(arg[:idx]) + arg[idx:])
	}

	simple := stripPackage(arg)
	if builtin, ok := builtinNames[simple]; ok && simple == arg {
		return builtin
	}
	return simple
}

// builtinNames maps predeclared Go type names to canonical scalar names.
var builtinNames = map[string]string{
	"bool":    TypeBoolean,
	"string":  TypeString,
	"int":     TypeLong,
	"int8":    TypeInt,
	"int16":   TypeInt,
	"int32":   TypeInt,
	"int64":   TypeLong,
	"uint":    TypeLong,
	"uint8":   TypeByte,
	"uint16":  TypeInt,
	"uint32":  TypeLong,
	"uint64":  TypeLong,
	"float32": TypeFloat,
	"float64": TypeDouble,
}

// splitTypeArgs splits on top-level commas, honouring nested brackets.
func splitTypeArgs(s string) []string {
	var (
		args    []string
		current strings.Builder
		depth   int
	)
	for _, r := range s {
		switch r {
		case '[':
			depth++
			current.WriteRune(r)
		case ']':
			depth--
			current.WriteRune(r)
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(current.String()))
				current.Reset()
			} else {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, strings.TrimSpace(current.String()))
	}
	return args
}

// matchingBracket returns the index of the ']' closing the '[' at open.
func matchingBracket(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// stripPackage turns "github.com/acme/models.User" into "User".
func stripPackage(s string) string {
	if idx := strings.LastIndexByte(s, '/'); idx >= 0 {
		s = s[idx+1:]
	}
	if idx := strings.LastIndexByte(s, '.'); idx >= 0 {
		s = s[idx+1:]
	}
	return s
}

// pkgPrefix extracts the last segment of a package path and capitalizes
// it for use as a name prefix (e.g., "net/http" -> "Http").
func pkgPrefix(pkgPath string) string {
	if idx := strings.LastIndexByte(pkgPath, '/'); idx >= 0 {
		pkgPath = pkgPath[idx+1:]
	}
	if len(pkgPath) == 0 {
		return ""
	}
	pkgPath = strings.ReplaceAll(pkgPath, "-", "_")
	pkgPath = strings.ReplaceAll(pkgPath, ".", "_")
	return strings.ToUpper(pkgPath[:1]) + pkgPath[1:]
}
