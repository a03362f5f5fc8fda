// Package handler describes HTTP-reachable controller methods and merges
// descriptors discovered more than once into a single logical endpoint.
//
// # Controllers
//
// A controller declares how its methods are reached through Mappings.
// Optional class-level annotations come from Annotations:
//
//	type PetController struct{}
//
//	func (*PetController) Annotations() []any {
//	    return []any{handler.Api{Tags: []string{"pet"}}}
//	}
//
//	func (*PetController) Mappings() []handler.Mapping {
//	    return []handler.Mapping{{
//	        Method:     "GetPet",
//	        Patterns:   []string{"/pet/{petId:int}"},
//	        Methods:    []string{http.MethodGet},
//	        Parameters: []handler.ParameterSpec{{Name: "petId"}},
//	    }}
//	}
//
//	func (*PetController) GetPet(ctx context.Context, id int64) (*Pet, error)
//
// Scanner reflects every mapping into a Method. context.Context,
// http.ResponseWriter and *http.Request arguments are not documented, and
// the first non-error result is the return parameter.
//
// # Combining
//
// Combine unions the patterns, methods and media types of two handlers
// while metadata comes from the first one. Merge groups handlers with
// equal normalized patterns, intersecting HTTP methods, equal header and
// param conditions and identical parameter types:
//
//	GET  /pets/{id}          GetPet(int64)
//	HEAD /pets/{id:[0-9]+}   GetPet(int64)    -> merged
//	DELETE /pets/{id}        DeletePet(int64) -> separate
package handler
