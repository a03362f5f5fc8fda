// Package schema resolves Go types into model references and collects the
// struct models they reach.
//
// Resolver classifies a type and returns a ModelRef: scalars by canonical
// name ("int", "long", "string", "date-time"), slices and arrays as
// collections, maps as map references and named structs as references to
// a definition. Recursive containers such as `type Tree []Tree` resolve
// their inner occurrence to "object".
//
// Generic types are named with a GenericNaming:
//
//	Page[Pet]  -> Page«Pet»    DefaultGenericNaming
//	Page[Pet]  -> PageOfPet    CodeGenGenericNaming
//	Page[Pet]  -> Page_Pet     UnderscoreGenericNaming
//
// ModelProvider walks struct fields the way encoding/json does and fills
// a Definitions table. The openapi and validate struct tags add metadata:
//
//	type Pet struct {
//	    ID   int64  `json:"id" openapi:"position=1,readOnly"`
//	    Name string `json:"name" openapi:"position=2,example=doggie" validate:"required,max=64"`
//	}
package schema
