// Package selector provides predicates that choose which request handlers
// and paths are documented.
//
// Handler predicates compose with And, Or and Not:
//
//	sel := selector.And(
//	    selector.BasePackage("github.com/acme/petstore"),
//	    selector.Not(selector.WithMethodAnnotation(handler.KindOf[handler.Deprecated]())),
//	)
//
// Path predicates match normalized patterns such as "/pet/{petId}".
package selector
