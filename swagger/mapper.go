package swagger

import (
	"maps"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/vitalvas/docket/schema"
)

// PropertyFactory creates a fresh property node.
type PropertyFactory func() *Schema

// FactoryTable maps canonical scalar names to property factories. A table
// is immutable once created; With returns a modified copy.
type FactoryTable struct {
	factories map[string]PropertyFactory
}

// NewFactoryTable creates a table from a copy of factories.
func NewFactoryTable(factories map[string]PropertyFactory) FactoryTable {
	return FactoryTable{factories: maps.Clone(factories)}
}

func primitive(typ, format string) PropertyFactory {
	return func() *Schema {
		return &Schema{Kind: KindPrimitive, Type: typ, Format: format}
	}
}

var defaultFactories = sync.OnceValue(func() FactoryTable {
	return NewFactoryTable(map[string]PropertyFactory{
		schema.TypeInt:        primitive("integer", "int32"),
		schema.TypeLong:       primitive("integer", "int64"),
		schema.TypeFloat:      primitive("number", "float"),
		schema.TypeDouble:     primitive("number", "double"),
		schema.TypeString:     primitive("string", ""),
		schema.TypeBoolean:    primitive("boolean", ""),
		schema.TypeDate:       primitive("string", "date"),
		schema.TypeDateTime:   primitive("string", "date-time"),
		schema.TypeBigDecimal: primitive("number", ""),
		schema.TypeBigInteger: primitive("integer", ""),
		schema.TypeUUID:       primitive("string", "uuid"),
		schema.TypeObject:     primitive("object", ""),
		schema.TypeByte:       primitive("string", "byte"),
		schema.TypeFile: func() *Schema {
			return &Schema{Kind: KindFile, Type: "file"}
		},
	})
})

// DefaultFactories returns the process-wide default table. It is built
// once and shared read-only.
func DefaultFactories() FactoryTable {
	return defaultFactories()
}

// Lookup returns the factory registered for a canonical name.
func (t FactoryTable) Lookup(name string) (PropertyFactory, bool) {
	f, ok := t.factories[name]
	return f, ok
}

// With returns a copy of t with name mapped to f.
func (t FactoryTable) With(name string, f PropertyFactory) FactoryTable {
	next := maps.Clone(t.factories)
	if next == nil {
		next = make(map[string]PropertyFactory, 1)
	}
	next[name] = f
	return FactoryTable{factories: next}
}

// Names returns the registered names, sorted.
func (t FactoryTable) Names() []string {
	return slices.Sorted(maps.Keys(t.factories))
}

// Len returns the number of registered names.
func (t FactoryTable) Len() int {
	return len(t.factories)
}

// PropertyMapper converts ModelRef trees into property nodes.
type PropertyMapper struct {
	factories FactoryTable
}

// NewPropertyMapper creates a mapper over table. An empty table selects
// DefaultFactories.
func NewPropertyMapper(table FactoryTable) *PropertyMapper {
	if table.Len() == 0 {
		table = DefaultFactories()
	}
	return &PropertyMapper{factories: table}
}

// FromTypeName maps a canonical type name. Known scalars use their
// factory, "void" in any case yields nil and any other name becomes a
// reference to the definition of that name.
func (m *PropertyMapper) FromTypeName(name string) *Schema {
	if strings.EqualFold(name, schema.TypeVoid) {
		return nil
	}
	if f, ok := m.factories.Lookup(name); ok {
		return f()
	}
	return RefSchema(name)
}

// FromModelRef maps a resolved reference. Maps wrap the mapped-to value,
// collections of "byte" become a single byte-array node and other
// collections wrap their item with the allowable values attached to the
// item node.
func (m *PropertyMapper) FromModelRef(ref schema.ModelRef) *Schema {
	switch {
	case ref.IsMap():
		item, _ := ref.ItemModel()
		return &Schema{
			Kind:                 KindMap,
			Type:                 "object",
			AdditionalProperties: m.FromModelRef(item),
		}

	case ref.IsCollection():
		if itemType, _ := ref.ItemType(); itemType == schema.TypeByte {
			return &Schema{Kind: KindByteArray, Type: "string", Format: "byte"}
		}
		item, _ := ref.ItemModel()
		items := m.FromModelRef(item)
		ApplyAllowableValues(items, ref.AllowableValues())
		return &Schema{Kind: KindArray, Type: "array", Items: items}
	}

	s := m.FromTypeName(ref.Type())
	ApplyAllowableValues(s, ref.AllowableValues())
	return s
}

// ApplyAllowableValues attaches constraints to s. Lists become an enum;
// ranges bound string lengths, numeric values or array sizes depending on
// the node type. References and nil nodes are left alone.
func ApplyAllowableValues(s *Schema, values schema.AllowableValues) {
	if s == nil || values == nil || s.Kind == KindRef {
		return
	}

	switch v := values.(type) {
	case schema.AllowableList:
		if len(v.Values) > 0 {
			s.Enum = slices.Clone(v.Values)
		}

	case schema.AllowableRange:
		switch s.Type {
		case "string":
			s.MinLength = parseLimit(v.Min)
			s.MaxLength = parseLimit(v.Max)
		case "array":
			s.MinItems = parseLimit(v.Min)
			s.MaxItems = parseLimit(v.Max)
		case "integer", "number":
			s.Minimum = parseBound(v.Min)
			s.Maximum = parseBound(v.Max)
			s.ExclusiveMinimum = v.ExclusiveMin && s.Minimum != nil
			s.ExclusiveMaximum = v.ExclusiveMax && s.Maximum != nil
		}
	}
}

func parseLimit(s string) *int64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return nil
	}
	n := int64(f)
	return &n
}

func parseBound(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &f
}

// OrderedPropertyNames returns property names by position ascending, then
// by name.
func OrderedPropertyNames(props map[string]schema.ModelProperty) []string {
	names := slices.Collect(maps.Keys(props))
	sort.Slice(names, func(i, j int) bool {
		pi, pj := props[names[i]], props[names[j]]
		if pi.Position != pj.Position {
			return pi.Position < pj.Position
		}
		return names[i] < names[j]
	})
	return names
}

// IsVoidProperty reports whether a property carries no value: its type is
// void or it is a collection or map of void.
func IsVoidProperty(p schema.ModelProperty) bool {
	ref := p.Ref
	if strings.EqualFold(ref.Type(), schema.TypeVoid) {
		return true
	}
	if item, ok := ref.ItemType(); ok && strings.EqualFold(item, schema.TypeVoid) {
		return true
	}
	return false
}

// ModelToSchema emits the object schema of a model. Void properties are
// dropped and the remaining ones keep OrderedPropertyNames order.
func (m *PropertyMapper) ModelToSchema(model schema.Model) *Schema {
	s := &Schema{
		Kind:        KindObject,
		Type:        "object",
		Title:       model.Name,
		Description: model.Description,
		Example:     model.Example,
	}

	for _, name := range OrderedPropertyNames(model.Properties) {
		p := model.Properties[name]
		if IsVoidProperty(p) {
			continue
		}
		ps := m.FromModelRef(p.Ref)
		if ps == nil {
			continue
		}

		ps.Description = p.Description
		ps.ReadOnly = p.ReadOnly
		if p.Example != nil {
			ps.Example = p.Example
		}
		if p.Pattern != "" {
			ps.Pattern = p.Pattern
		}
		applyFieldValues(ps, p.AllowableValues)

		s.Properties = append(s.Properties, NamedSchema{Name: name, Schema: ps})
		if p.Required {
			s.Required = append(s.Required, name)
		}
	}
	return s
}

// applyFieldValues attaches field-level constraints. Enumerations on a
// collection field describe its items; ranges bound the collection.
func applyFieldValues(s *Schema, values schema.AllowableValues) {
	if _, ok := values.(schema.AllowableList); ok && s.Kind == KindArray {
		ApplyAllowableValues(s.Items, values)
		return
	}
	ApplyAllowableValues(s, values)
}
