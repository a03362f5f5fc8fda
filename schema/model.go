package schema

import (
	"reflect"
	"sort"
	"sync"
)

// ModelProperty is one field of a model.
type ModelProperty struct {
	Name     string
	Position int
	Type     reflect.Type
	Ref      ModelRef
	Required bool

	// AllowableValues holds constraints declared on the field itself
	// (tags); constraints advertised by the field type live on Ref.
	AllowableValues AllowableValues

	Description string
	Example     any
	ReadOnly    bool
	Pattern     string
}

// Model is a named object shape collected from a struct type.
type Model struct {
	ID            string
	Name          string
	QualifiedType string
	Type          reflect.Type
	Description   string
	Properties    map[string]ModelProperty
	Example       any
}

// Definitions is the deduplicated table of collected models, keyed by the
// structural key of the ModelRef each model was collected for. Inserts are
// serialized, so concurrent collectors never register two unequal entries
// under one key.
type Definitions struct {
	mu     sync.RWMutex
	models map[string]Model
	names  map[string]string // model name -> key
}

// NewDefinitions creates an empty table.
func NewDefinitions() *Definitions {
	return &Definitions{
		models: make(map[string]Model),
		names:  make(map[string]string),
	}
}

// Add registers m under ref unless the key is already taken. It returns
// the registered model and whether m was inserted.
func (d *Definitions) Add(ref ModelRef, m Model) (Model, bool) {
	key := ref.Key()

	d.mu.Lock()
	defer d.mu.Unlock()

	if existing, ok := d.models[key]; ok {
		return existing, false
	}
	m.ID = key
	d.models[key] = m
	d.names[m.Name] = key
	return m, true
}

// Contains reports whether a model is registered for ref.
func (d *Definitions) Contains(ref ModelRef) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.models[ref.Key()]
	return ok
}

// Get returns the model registered for ref.
func (d *Definitions) Get(ref ModelRef) (Model, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	m, ok := d.models[ref.Key()]
	return m, ok
}

// Lookup returns the model registered under a definition name.
func (d *Definitions) Lookup(name string) (Model, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	key, ok := d.names[name]
	if !ok {
		return Model{}, false
	}
	m, ok := d.models[key]
	return m, ok
}

// Len returns the number of registered models.
func (d *Definitions) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.models)
}

// Models returns all models sorted by name.
func (d *Definitions) Models() []Model {
	d.mu.RLock()
	models := make([]Model, 0, len(d.models))
	for _, m := range d.models {
		models = append(models, m)
	}
	d.mu.RUnlock()

	sort.Slice(models, func(i, j int) bool {
		return models[i].Name < models[j].Name
	})
	return models
}
