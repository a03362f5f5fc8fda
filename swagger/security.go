package swagger

import (
	"fmt"
)

// SecurityScheme is a security scheme declared on a Docket.
type SecurityScheme interface {
	SchemeName() string
}

// GrantType is an OAuth2 grant accepted by an OAuth scheme.
type GrantType interface {
	GrantTypeName() string
}

// AuthorizationScope is one OAuth2 scope.
type AuthorizationScope struct {
	Scope       string
	Description string
}

// BasicAuth declares HTTP basic authentication.
type BasicAuth struct {
	Name string
}

func (b BasicAuth) SchemeName() string { return b.Name }

// APIKey declares an API key passed in a header or a query parameter.
type APIKey struct {
	Name    string
	KeyName string
	// PassAs is "header" or "query".
	PassAs string
}

func (k APIKey) SchemeName() string { return k.Name }

// OAuth declares an OAuth2 scheme. Swagger 2.0 allows one flow per
// definition, so the first grant type defines it.
type OAuth struct {
	Name       string
	Scopes     []AuthorizationScope
	GrantTypes []GrantType
}

func (o OAuth) SchemeName() string { return o.Name }

// ImplicitGrant is the "implicit" flow.
type ImplicitGrant struct {
	LoginEndpoint string
	TokenName     string
}

func (ImplicitGrant) GrantTypeName() string { return "implicit" }

// AuthorizationCodeGrant is the "accessCode" flow.
type AuthorizationCodeGrant struct {
	TokenRequestEndpoint string
	TokenEndpoint        string
}

func (AuthorizationCodeGrant) GrantTypeName() string { return "authorization_code" }

// ResourceOwnerPasswordGrant is the "password" flow.
type ResourceOwnerPasswordGrant struct {
	TokenURL string
}

func (ResourceOwnerPasswordGrant) GrantTypeName() string { return "password" }

// ClientCredentialsGrant is the "application" flow.
type ClientCredentialsGrant struct {
	TokenURL string
}

func (ClientCredentialsGrant) GrantTypeName() string { return "client_credentials" }

// MapScheme converts a scheme to its security definition. It panics on a
// scheme or grant type it has no mapping for.
//
// See: https://swagger.io/specification/v2/#security-scheme-object
func MapScheme(scheme SecurityScheme) *SecurityDefinition {
	switch s := scheme.(type) {
	case BasicAuth:
		return &SecurityDefinition{Type: "basic"}
	case *BasicAuth:
		return MapScheme(*s)

	case APIKey:
		in := s.PassAs
		if in == "" {
			in = "header"
		}
		return &SecurityDefinition{Type: "apiKey", Name: s.KeyName, In: in}
	case *APIKey:
		return MapScheme(*s)

	case OAuth:
		def := &SecurityDefinition{Type: "oauth2"}
		if len(s.Scopes) > 0 {
			def.Scopes = make(map[string]string, len(s.Scopes))
			for _, scope := range s.Scopes {
				def.Scopes[scope.Scope] = scope.Description
			}
		}
		for i, grant := range s.GrantTypes {
			flow := mapGrant(grant)
			if i == 0 {
				def.Flow = flow.Flow
				def.AuthorizationURL = flow.AuthorizationURL
				def.TokenURL = flow.TokenURL
			}
		}
		return def
	case *OAuth:
		return MapScheme(*s)
	}
	panic(fmt.Sprintf("swagger: unsupported security scheme %T", scheme))
}

func mapGrant(grant GrantType) SecurityDefinition {
	switch g := grant.(type) {
	case ImplicitGrant:
		return SecurityDefinition{Flow: "implicit", AuthorizationURL: g.LoginEndpoint}
	case AuthorizationCodeGrant:
		return SecurityDefinition{Flow: "accessCode", AuthorizationURL: g.TokenRequestEndpoint, TokenURL: g.TokenEndpoint}
	case ResourceOwnerPasswordGrant:
		return SecurityDefinition{Flow: "password", TokenURL: g.TokenURL}
	case ClientCredentialsGrant:
		return SecurityDefinition{Flow: "application", TokenURL: g.TokenURL}
	case *ImplicitGrant:
		return mapGrant(*g)
	case *AuthorizationCodeGrant:
		return mapGrant(*g)
	case *ResourceOwnerPasswordGrant:
		return mapGrant(*g)
	case *ClientCredentialsGrant:
		return mapGrant(*g)
	}
	panic(fmt.Sprintf("swagger: unsupported grant type %T", grant))
}
