package swagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/docket/schema"
)

func TestFromTypeName(t *testing.T) {
	m := NewPropertyMapper(DefaultFactories())

	tests := []struct {
		name   string
		kind   PropertyKind
		typ    string
		format string
		ref    string
	}{
		{name: "int", kind: KindPrimitive, typ: "integer", format: "int32"},
		{name: "long", kind: KindPrimitive, typ: "integer", format: "int64"},
		{name: "float", kind: KindPrimitive, typ: "number", format: "float"},
		{name: "double", kind: KindPrimitive, typ: "number", format: "double"},
		{name: "string", kind: KindPrimitive, typ: "string"},
		{name: "boolean", kind: KindPrimitive, typ: "boolean"},
		{name: "date", kind: KindPrimitive, typ: "string", format: "date"},
		{name: "date-time", kind: KindPrimitive, typ: "string", format: "date-time"},
		{name: "bigdecimal", kind: KindPrimitive, typ: "number"},
		{name: "biginteger", kind: KindPrimitive, typ: "integer"},
		{name: "uuid", kind: KindPrimitive, typ: "string", format: "uuid"},
		{name: "object", kind: KindPrimitive, typ: "object"},
		{name: "byte", kind: KindPrimitive, typ: "string", format: "byte"},
		{name: "__file", kind: KindFile, typ: "file"},
		{name: "Pet", kind: KindRef, ref: "#/definitions/Pet"},
		{name: "String", kind: KindRef, ref: "#/definitions/String"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := m.FromTypeName(tt.name)
			require.NotNil(t, s)
			assert.Equal(t, tt.kind, s.Kind)
			assert.Equal(t, tt.typ, s.Type)
			assert.Equal(t, tt.format, s.Format)
			assert.Equal(t, tt.ref, s.Ref)
		})
	}

	t.Run("void in any case", func(t *testing.T) {
		for _, name := range []string{schema.TypeVoid, "Void", "VOID"} {
			assert.Nil(t, m.FromTypeName(name), name)
		}
	})

	t.Run("fresh node per call", func(t *testing.T) {
		a := m.FromTypeName("long")
		b := m.FromTypeName("long")
		assert.NotSame(t, a, b)
	})
}

func TestFromModelRef(t *testing.T) {
	m := NewPropertyMapper(DefaultFactories())
	status := schema.AllowableList{Values: []string{"available", "sold"}, ValueType: "LIST"}

	t.Run("byte collection", func(t *testing.T) {
		s := m.FromModelRef(schema.NewCollectionRef("List", schema.NewModelRef("byte"), nil))
		require.NotNil(t, s)
		assert.Equal(t, KindByteArray, s.Kind)
		assert.Equal(t, "string", s.Type)
		assert.Equal(t, "byte", s.Format)
		assert.Nil(t, s.Items)
	})

	t.Run("collection values apply to items", func(t *testing.T) {
		s := m.FromModelRef(schema.NewCollectionRef("List", schema.NewModelRef("string"), status))
		require.NotNil(t, s)
		assert.Equal(t, KindArray, s.Kind)
		assert.Equal(t, "array", s.Type)
		assert.Empty(t, s.Enum)
		require.NotNil(t, s.Items)
		assert.Equal(t, []string{"available", "sold"}, s.Items.Enum)
	})

	t.Run("collection of references", func(t *testing.T) {
		s := m.FromModelRef(schema.NewCollectionRef("Array", schema.NewModelRef("Pet"), nil))
		require.NotNil(t, s)
		require.NotNil(t, s.Items)
		assert.Equal(t, "#/definitions/Pet", s.Items.Ref)
	})

	t.Run("map", func(t *testing.T) {
		s := m.FromModelRef(schema.NewMapRef("Map«string,long»", schema.NewModelRef("long")))
		require.NotNil(t, s)
		assert.Equal(t, KindMap, s.Kind)
		assert.Equal(t, "object", s.Type)
		require.NotNil(t, s.AdditionalProperties)
		assert.Equal(t, "int64", s.AdditionalProperties.Format)
	})

	t.Run("scalar enum", func(t *testing.T) {
		s := m.FromModelRef(schema.NewModelRefWithValues("string", status))
		require.NotNil(t, s)
		assert.Equal(t, []string{"available", "sold"}, s.Enum)
	})

	t.Run("reference ignores values", func(t *testing.T) {
		s := m.FromModelRef(schema.NewModelRefWithValues("Pet", status))
		require.NotNil(t, s)
		assert.Equal(t, KindRef, s.Kind)
		assert.Empty(t, s.Enum)
	})

	t.Run("void", func(t *testing.T) {
		assert.Nil(t, m.FromModelRef(schema.NewModelRef("void")))
	})
}

func TestApplyAllowableValues(t *testing.T) {
	tests := []struct {
		name   string
		node   *Schema
		values schema.AllowableValues
		check  func(t *testing.T, s *Schema)
	}{
		{
			name:   "string length",
			node:   &Schema{Type: "string"},
			values: schema.AllowableRange{Min: "1", Max: "64"},
			check: func(t *testing.T, s *Schema) {
				require.NotNil(t, s.MinLength)
				require.NotNil(t, s.MaxLength)
				assert.Equal(t, int64(1), *s.MinLength)
				assert.Equal(t, int64(64), *s.MaxLength)
				assert.Nil(t, s.Minimum)
			},
		},
		{
			name:   "array size",
			node:   &Schema{Kind: KindArray, Type: "array"},
			values: schema.AllowableRange{Max: "10"},
			check: func(t *testing.T, s *Schema) {
				assert.Nil(t, s.MinItems)
				require.NotNil(t, s.MaxItems)
				assert.Equal(t, int64(10), *s.MaxItems)
			},
		},
		{
			name:   "exclusive numeric bounds",
			node:   &Schema{Type: "number"},
			values: schema.AllowableRange{Min: "0", Max: "1.5", ExclusiveMin: true},
			check: func(t *testing.T, s *Schema) {
				require.NotNil(t, s.Minimum)
				require.NotNil(t, s.Maximum)
				assert.Equal(t, 0.0, *s.Minimum)
				assert.Equal(t, 1.5, *s.Maximum)
				assert.True(t, s.ExclusiveMinimum)
				assert.False(t, s.ExclusiveMaximum)
			},
		},
		{
			name:   "exclusive flag needs a bound",
			node:   &Schema{Type: "integer"},
			values: schema.AllowableRange{Max: "5", ExclusiveMin: true},
			check: func(t *testing.T, s *Schema) {
				assert.Nil(t, s.Minimum)
				assert.False(t, s.ExclusiveMinimum)
			},
		},
		{
			name:   "negative length ignored",
			node:   &Schema{Type: "string"},
			values: schema.AllowableRange{Min: "-1"},
			check: func(t *testing.T, s *Schema) {
				assert.Nil(t, s.MinLength)
			},
		},
		{
			name:   "list",
			node:   &Schema{Type: "string"},
			values: schema.AllowableList{Values: []string{"a", "b"}},
			check: func(t *testing.T, s *Schema) {
				assert.Equal(t, []string{"a", "b"}, s.Enum)
			},
		},
		{
			name:   "nil values",
			node:   &Schema{Type: "string"},
			values: nil,
			check: func(t *testing.T, s *Schema) {
				assert.Empty(t, s.Enum)
				assert.Nil(t, s.MinLength)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ApplyAllowableValues(tt.node, tt.values)
			tt.check(t, tt.node)
		})
	}

	t.Run("nil node", func(t *testing.T) {
		assert.NotPanics(t, func() {
			ApplyAllowableValues(nil, schema.AllowableList{Values: []string{"a"}})
		})
	})
}

func TestFactoryTable(t *testing.T) {
	t.Run("injected table", func(t *testing.T) {
		table := DefaultFactories().With("long", func() *Schema {
			return &Schema{Kind: KindPrimitive, Type: "string", Format: "int64"}
		})
		m := NewPropertyMapper(table)

		s := m.FromTypeName("long")
		require.NotNil(t, s)
		assert.Equal(t, "string", s.Type)

		def := NewPropertyMapper(DefaultFactories()).FromTypeName("long")
		assert.Equal(t, "integer", def.Type)
	})

	t.Run("source map is copied", func(t *testing.T) {
		src := map[string]PropertyFactory{"money": primitive("number", "decimal")}
		table := NewFactoryTable(src)
		delete(src, "money")

		_, ok := table.Lookup("money")
		assert.True(t, ok)
		assert.Equal(t, []string{"money"}, table.Names())
	})

	t.Run("empty table selects defaults", func(t *testing.T) {
		m := NewPropertyMapper(FactoryTable{})
		s := m.FromTypeName("int")
		require.NotNil(t, s)
		assert.Equal(t, "int32", s.Format)
	})

	t.Run("lookup is exact", func(t *testing.T) {
		_, ok := DefaultFactories().Lookup("Long")
		assert.False(t, ok)
	})

	t.Run("with on zero table", func(t *testing.T) {
		table := FactoryTable{}.With("int", primitive("integer", "int32"))
		assert.Equal(t, 1, table.Len())
	})
}

func TestOrderedPropertyNames(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]schema.ModelProperty
		want  []string
	}{
		{
			name: "by position",
			props: map[string]schema.ModelProperty{
				"a": {Position: 2},
				"b": {Position: 0},
				"c": {Position: 1},
			},
			want: []string{"b", "c", "a"},
		},
		{
			name: "ties by name",
			props: map[string]schema.ModelProperty{
				"zeta":  {},
				"alpha": {},
				"mid":   {Position: -1},
			},
			want: []string{"mid", "alpha", "zeta"},
		},
		{
			name:  "empty",
			props: map[string]schema.ModelProperty{},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OrderedPropertyNames(tt.props)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsVoidProperty(t *testing.T) {
	tests := []struct {
		name string
		ref  schema.ModelRef
		want bool
	}{
		{"void", schema.NewModelRef("void"), true},
		{"capitalized void", schema.NewModelRef("Void"), true},
		{"list of void", schema.NewCollectionRef("List", schema.NewModelRef("void"), nil), true},
		{"map of void", schema.NewMapRef("Map«string,void»", schema.NewModelRef("void")), true},
		{"string", schema.NewModelRef("string"), false},
		{"list of string", schema.NewCollectionRef("List", schema.NewModelRef("string"), nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsVoidProperty(schema.ModelProperty{Ref: tt.ref}))
		})
	}
}

func TestModelToSchema(t *testing.T) {
	m := NewPropertyMapper(DefaultFactories())
	model := schema.Model{
		Name:        "Pet",
		Description: "A pet for sale",
		Properties: map[string]schema.ModelProperty{
			"name": {
				Name:     "name",
				Position: 1,
				Ref:      schema.NewModelRef("string"),
				Required: true,
				Example:  "doggie",
				Pattern:  "^[a-z]+$",
			},
			"id": {
				Name:     "id",
				Ref:      schema.NewModelRef("long"),
				Required: true,
				ReadOnly: true,
			},
			"tags": {
				Name:            "tags",
				Position:        2,
				Ref:             schema.NewCollectionRef("List", schema.NewModelRef("string"), nil),
				AllowableValues: schema.AllowableList{Values: []string{"new", "old"}},
			},
			"photos": {
				Name:            "photos",
				Position:        3,
				Ref:             schema.NewCollectionRef("List", schema.NewModelRef("string"), nil),
				AllowableValues: schema.AllowableRange{Min: "1", Max: "5"},
			},
			"callback": {
				Name:     "callback",
				Ref:      schema.NewModelRef("void"),
				Required: true,
			},
		},
	}

	s := m.ModelToSchema(model)
	require.NotNil(t, s)

	assert.Equal(t, KindObject, s.Kind)
	assert.Equal(t, "object", s.Type)
	assert.Equal(t, "Pet", s.Title)
	assert.Equal(t, "A pet for sale", s.Description)
	assert.Equal(t, []string{"id", "name", "tags", "photos"}, s.PropertyNames())
	assert.Equal(t, []string{"id", "name"}, s.Required)

	id, ok := s.Property("id")
	require.True(t, ok)
	assert.True(t, id.ReadOnly)

	name, ok := s.Property("name")
	require.True(t, ok)
	assert.Equal(t, "doggie", name.Example)
	assert.Equal(t, "^[a-z]+$", name.Pattern)

	tags, ok := s.Property("tags")
	require.True(t, ok)
	assert.Empty(t, tags.Enum)
	require.NotNil(t, tags.Items)
	assert.Equal(t, []string{"new", "old"}, tags.Items.Enum)

	photos, ok := s.Property("photos")
	require.True(t, ok)
	require.NotNil(t, photos.MinItems)
	assert.Equal(t, int64(1), *photos.MinItems)

	_, ok = s.Property("callback")
	assert.False(t, ok)
}
