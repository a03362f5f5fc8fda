package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/vitalvas/docket/internal/logenc"
	"github.com/vitalvas/docket/schema"
)

var (
	ErrNoPatterns        = errors.New("handler: mapping declares no patterns")
	ErrInvalidPattern    = errors.New("handler: invalid path pattern")
	ErrInvalidMethod     = errors.New("handler: invalid HTTP method")
	ErrInvalidHeader     = errors.New("handler: invalid header condition")
	ErrMethodNotFound    = errors.New("handler: method not found")
	ErrParameterMismatch = errors.New("handler: more parameter specs than arguments")
	ErrNilController     = errors.New("handler: nil controller")
)

// Controller is implemented by types whose methods serve HTTP requests.
// Mappings declares how each method is reached.
type Controller interface {
	Mappings() []Mapping
}

// Mapping declares how one controller method is reached.
//
//	handler.Mapping{
//	    Method:   "FindByStatus",
//	    Patterns: []string{"/pet/findByStatus"},
//	    Methods:  []string{http.MethodGet},
//	    Produces: []string{"application/json"},
//	    Parameters: []handler.ParameterSpec{
//	        {Name: "status", In: handler.InQuery, Required: true},
//	    },
//	    Annotations: []any{handler.ApiOperation{Value: "Finds pets by status"}},
//	}
type Mapping struct {
	// Method is the Go method name on the controller.
	Method string

	// Name overrides the handler name used for operation ids.
	Name string

	Patterns []string
	Methods  []string
	Consumes []string
	Produces []string

	// Headers and Params are conditions such as "X-Version=2" or "!debug".
	Headers []string
	Params  []string

	Group string

	// Parameters describe the documented arguments, in order. Arguments of
	// type context.Context, http.ResponseWriter and *http.Request are not
	// documented and take no spec.
	Parameters []ParameterSpec

	Annotations []any
}

// ParameterSpec names and locates one documented method argument.
type ParameterSpec struct {
	Name        string
	In          Location
	Required    bool
	Default     string
	Annotations []any
}

var ignorableTypes = []reflect.Type{
	reflect.TypeFor[context.Context](),
	reflect.TypeFor[http.ResponseWriter](),
	reflect.TypeFor[*http.Request](),
	reflect.TypeFor[io.Reader](),
}

var errorType = reflect.TypeFor[error]()

// Scanner discovers request handlers from controllers.
type Scanner struct {
	logger  *slog.Logger
	ignored []reflect.Type
}

// NewScanner creates a scanner. A nil logger discards output.
func NewScanner(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ignored := make([]reflect.Type, len(ignorableTypes))
	copy(ignored, ignorableTypes)
	return &Scanner{logger: logger, ignored: ignored}
}

// IgnoreParameterType excludes arguments of type t from documentation.
func (s *Scanner) IgnoreParameterType(t reflect.Type) *Scanner {
	s.ignored = append(s.ignored, t)
	return s
}

// Scan discovers the handlers of all controllers, in order.
func (s *Scanner) Scan(controllers ...Controller) ([]RequestHandler, error) {
	var handlers []RequestHandler
	for _, c := range controllers {
		found, err := s.ScanController(c)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, found...)
	}
	return handlers, nil
}

// ScanController discovers the handlers of one controller.
func (s *Scanner) ScanController(c Controller) ([]RequestHandler, error) {
	if c == nil {
		return nil, ErrNilController
	}
	ct := reflect.TypeOf(c)
	if v := reflect.ValueOf(c); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, fmt.Errorf("%w: %s", ErrNilController, ct)
	}
	declaring := ct
	for declaring.Kind() == reflect.Pointer {
		declaring = declaring.Elem()
	}

	mappings := c.Mappings()
	handlers := make([]RequestHandler, 0, len(mappings))
	for _, m := range mappings {
		h, err := s.scanMapping(ct, declaring, m)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", declaring.Name(), m.Method, err)
		}
		s.logger.Debug("mapped handler",
			"controller", declaring.String(),
			"method", m.Method,
			"patterns", logenc.URLEncode(strings.Join(h.Patterns(), ",")),
			"methods", strings.Join(h.SupportedMethods(), ","),
		)
		handlers = append(handlers, h)
	}
	return handlers, nil
}

func (s *Scanner) scanMapping(ct, declaring reflect.Type, m Mapping) (*Method, error) {
	if err := validateMapping(m); err != nil {
		return nil, err
	}

	method, ok := ct.MethodByName(m.Method)
	if !ok || m.Method == "" {
		return nil, fmt.Errorf("%w: %q on %s", ErrMethodNotFound, m.Method, ct)
	}

	params, err := s.parameters(method.Type, m.Parameters)
	if err != nil {
		return nil, err
	}

	return NewMethod(MethodInfo{
		DeclaringType: declaring,
		Method:        method,
		Mapping:       m,
		Parameters:    params,
		ReturnType:    returnType(method.Type),
	}), nil
}

func validateMapping(m Mapping) error {
	if len(m.Patterns) == 0 {
		return ErrNoPatterns
	}
	for _, p := range m.Patterns {
		if _, err := ParsePattern(p); err != nil {
			return err
		}
	}
	for _, method := range m.Methods {
		if !validToken(method) {
			return fmt.Errorf("%w: %q", ErrInvalidMethod, method)
		}
	}
	for _, h := range m.Headers {
		nv := ParseNameValue(h)
		if !httpguts.ValidHeaderFieldName(nv.Name) {
			return fmt.Errorf("%w: %q", ErrInvalidHeader, h)
		}
		if nv.Value != "" && !httpguts.ValidHeaderFieldValue(nv.Value) {
			return fmt.Errorf("%w: %q", ErrInvalidHeader, h)
		}
	}
	return nil
}

func validToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !httpguts.IsTokenRune(r) {
			return false
		}
	}
	return true
}

// parameters pairs documented arguments of fn (receiver first) with specs.
// Arguments without a spec are named after their position.
func (s *Scanner) parameters(fn reflect.Type, specs []ParameterSpec) ([]Parameter, error) {
	var params []Parameter
	next := 0
	for i := 1; i < fn.NumIn(); i++ {
		at := fn.In(i)
		if s.ignorable(at) {
			continue
		}

		p := Parameter{Index: len(params), Type: at, Name: fmt.Sprintf("arg%d", len(params))}
		if next < len(specs) {
			spec := specs[next]
			if spec.Name != "" {
				p.Name = spec.Name
			}
			p.In = spec.In
			p.Required = spec.Required
			p.DefaultValue = spec.Default
			p.Annotations = spec.Annotations
		}
		next++
		params = append(params, p)
	}

	if next < len(specs) {
		return nil, fmt.Errorf("%w: %d specs for %d arguments", ErrParameterMismatch, len(specs), next)
	}
	return params, nil
}

func (s *Scanner) ignorable(t reflect.Type) bool {
	for _, ig := range s.ignored {
		if t == ig {
			return true
		}
	}
	return false
}

// returnType is the first result that is not an error, or the void type.
func returnType(fn reflect.Type) reflect.Type {
	for i := range fn.NumOut() {
		if out := fn.Out(i); out != errorType {
			return out
		}
	}
	return schema.VoidType
}
