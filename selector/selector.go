package selector

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/vitalvas/docket/handler"
)

// Predicate reports whether a handler should be documented.
type Predicate func(handler.RequestHandler) bool

// And returns a predicate matching when both p and other match.
func (p Predicate) And(other Predicate) Predicate {
	return And(p, other)
}

// Or returns a predicate matching when p or other matches.
func (p Predicate) Or(other Predicate) Predicate {
	return Or(p, other)
}

// Negate returns a predicate matching when p does not.
func (p Predicate) Negate() Predicate {
	return Not(p)
}

// Any matches every handler.
func Any() Predicate {
	return func(handler.RequestHandler) bool { return true }
}

// None matches no handler.
func None() Predicate {
	return func(handler.RequestHandler) bool { return false }
}

// WithMethodAnnotation matches handlers whose method carries an
// annotation of the given kind.
func WithMethodAnnotation(kind reflect.Type) Predicate {
	return func(h handler.RequestHandler) bool {
		return h.IsAnnotatedWith(kind)
	}
}

// WithClassAnnotation matches handlers whose declaring type carries an
// annotation of the given kind. Handlers without a declaring type never
// match.
func WithClassAnnotation(kind reflect.Type) Predicate {
	return func(h handler.RequestHandler) bool {
		declaring := h.DeclaringType()
		if declaring == nil {
			return false
		}
		for _, a := range handler.ClassAnnotations(declaring) {
			if a == nil {
				continue
			}
			t := reflect.TypeOf(a)
			if t == kind || (t.Kind() == reflect.Pointer && t.Elem() == kind) {
				return true
			}
		}
		return false
	}
}

// BasePackage matches handlers declared in a package whose import path
// starts with prefix. Handlers without a declaring type always match.
func BasePackage(prefix string) Predicate {
	return func(h handler.RequestHandler) bool {
		declaring := h.DeclaringType()
		if declaring == nil {
			return true
		}
		for declaring.Kind() == reflect.Pointer {
			declaring = declaring.Elem()
		}
		return strings.HasPrefix(declaring.PkgPath(), prefix)
	}
}

// And matches when every predicate matches. No predicates match all.
func And(predicates ...Predicate) Predicate {
	return func(h handler.RequestHandler) bool {
		for _, p := range predicates {
			if !p(h) {
				return false
			}
		}
		return true
	}
}

// Or matches when any predicate matches. No predicates match none.
func Or(predicates ...Predicate) Predicate {
	return func(h handler.RequestHandler) bool {
		for _, p := range predicates {
			if p(h) {
				return true
			}
		}
		return false
	}
}

// Not inverts p.
func Not(p Predicate) Predicate {
	return func(h handler.RequestHandler) bool {
		return !p(h)
	}
}

// PathPredicate reports whether a path pattern should be documented.
type PathPredicate func(string) bool

// PathAny matches every path.
func PathAny() PathPredicate {
	return func(string) bool { return true }
}

// PathNone matches no path.
func PathNone() PathPredicate {
	return func(string) bool { return false }
}

// PathRegex matches paths against expr. It panics if expr does not compile.
func PathRegex(expr string) PathPredicate {
	re := regexp.MustCompile(expr)
	return re.MatchString
}

// PathPrefix matches paths starting with prefix.
func PathPrefix(prefix string) PathPredicate {
	return func(path string) bool {
		return strings.HasPrefix(path, prefix)
	}
}

// Or matches when p or other matches.
func (p PathPredicate) Or(other PathPredicate) PathPredicate {
	return func(path string) bool {
		return p(path) || other(path)
	}
}

// And matches when both p and other match.
func (p PathPredicate) And(other PathPredicate) PathPredicate {
	return func(path string) bool {
		return p(path) && other(path)
	}
}

// Negate returns a path predicate matching when p does not.
func (p PathPredicate) Negate() PathPredicate {
	return func(path string) bool {
		return !p(path)
	}
}
