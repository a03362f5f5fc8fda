// Package swagger builds Swagger 2.0 documents from discovered request
// handlers and serves them over HTTP.
//
// See: https://swagger.io/specification/v2/
//
// # Docket
//
// A Docket is one documentation group. It selects handlers, merges
// handlers describing the same route and emits one operation per pattern
// and HTTP method:
//
//	handlers, err := handler.NewScanner(logger).Scan(&PetController{}, &StoreController{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	docket := swagger.NewDocket(swagger.Info{Title: "Petstore", Version: "1.0.0"}).
//	    Select(selector.BasePackage("github.com/acme/petstore")).
//	    Paths(selector.PathRegex(`^/(pet|store)`)).
//	    SecuritySchemes(swagger.APIKey{Name: "api_key", KeyName: "api_key", PassAs: "header"})
//
//	doc := docket.Build(handlers)
//
// Handlers annotated with handler.ApiIgnore, on the method or on the
// controller, are never documented.
//
// # Operations
//
// Operation ids are "<name>Using<METHOD>" where name is the
// handler.ApiOperation nickname or the handler name. Colliding ids get a
// numeric suffix: "findUsingGET", "findUsingGET_1".
//
// Arguments without an explicit location are placed by shape: arguments
// named after a path variable go to the path, files to the form, scalars
// and collections of scalars to the query and everything else to the body.
// Path variables without a matching argument are documented as strings,
// or typed by their macro:
//
//	/pets/{id:int}   -> id: integer/int64
//	/pets/{id:uuid}  -> id: string/uuid
//
// The first non-error result of the handler method is the 200 response.
// With default response messages enabled, the usual 401, 403 and 404
// style responses are added per HTTP method, and handler.ApiResponses
// overrides their descriptions.
//
// # Properties
//
// PropertyMapper turns schema.ModelRef trees into schema nodes using an
// injected FactoryTable:
//
//	int        -> integer/int32
//	long       -> integer/int64
//	double     -> number/double
//	date-time  -> string/date-time
//	byte       -> string/byte
//	[]byte     -> string/byte (one node, not an array)
//	__file     -> file
//	void       -> no node
//	Pet        -> {"$ref": "#/definitions/Pet"}
//
// Allowable values of a collection describe its items. Model properties
// are ordered by their openapi position, then by name, and void
// properties are dropped.
//
// # Serving
//
// Cache stores one document per group. Handle registers the JSON and YAML
// endpoints, the resources the Swagger UI uses to list groups and the UI
// itself:
//
//	cache := swagger.NewCache()
//	cache.Build(handlers, publicDocket, adminDocket)
//
//	mux := http.NewServeMux()
//	cache.Handle(mux, "", &swagger.HandleConfig{Logger: logger})
//	// /v2/api-docs?group=admin
//	// /swagger-resources?x=1 -> urls carry "&x=1" after the group
//	// /swagger-ui/index.html
package swagger
