package schema

import (
	"strconv"
	"strings"
)

// ModelRef describes the shape of a resolved type: a scalar or reference
// name, or a collection/map wrapping a nested item reference, with optional
// allowable value constraints. ModelRef values are immutable; two refs built
// independently from the same type compare Equal and share a Key.
//
// See: https://swagger.io/specification/v2/#schema-object
type ModelRef struct {
	typ       string
	isMap     bool
	itemModel *ModelRef
	allowable AllowableValues
}

// NewModelRef creates a scalar or by-name reference.
func NewModelRef(typ string) ModelRef {
	return ModelRef{typ: typ}
}

// NewModelRefWithValues creates a scalar reference carrying constraints.
func NewModelRefWithValues(typ string, values AllowableValues) ModelRef {
	return ModelRef{typ: typ, allowable: values}
}

// NewCollectionRef creates a collection reference. The allowable values
// describe the collection items, not the collection itself.
func NewCollectionRef(typ string, item ModelRef, values AllowableValues) ModelRef {
	return ModelRef{typ: typ, itemModel: &item, allowable: values}
}

// NewMapRef creates a map reference whose item is the mapped-to value.
func NewMapRef(typ string, value ModelRef) ModelRef {
	return ModelRef{typ: typ, isMap: true, itemModel: &value}
}

// Type returns the canonical type name.
func (r ModelRef) Type() string {
	return r.typ
}

// IsCollection reports whether the reference wraps an item and is not a map.
func (r ModelRef) IsCollection() bool {
	return r.itemModel != nil && !r.isMap
}

// IsMap reports whether the reference wraps a mapped-to value.
func (r ModelRef) IsMap() bool {
	return r.itemModel != nil && r.isMap
}

// ItemType returns the canonical type name of the nested item.
func (r ModelRef) ItemType() (string, bool) {
	if r.itemModel == nil {
		return "", false
	}
	return r.itemModel.typ, true
}

// ItemModel returns the nested item reference.
func (r ModelRef) ItemModel() (ModelRef, bool) {
	if r.itemModel == nil {
		return ModelRef{}, false
	}
	return *r.itemModel, true
}

// AllowableValues returns the attached constraints, or nil.
func (r ModelRef) AllowableValues() AllowableValues {
	return r.allowable
}

// IsZero reports whether the reference was never resolved.
func (r ModelRef) IsZero() bool {
	return r.typ == "" && r.itemModel == nil && r.allowable == nil
}

// Equal compares all four fields structurally.
func (r ModelRef) Equal(other ModelRef) bool {
	if r.typ != other.typ || r.isMap != other.isMap {
		return false
	}
	if (r.itemModel == nil) != (other.itemModel == nil) {
		return false
	}
	if r.itemModel != nil && !r.itemModel.Equal(*other.itemModel) {
		return false
	}
	return EqualValues(r.allowable, other.allowable)
}

// Key returns a canonical string for the reference. Two refs share a key
// if and only if they are Equal, so the key can index deduplication tables.
func (r ModelRef) Key() string {
	var b strings.Builder
	r.writeKey(&b)
	return b.String()
}

func (r ModelRef) writeKey(b *strings.Builder) {
	b.WriteString(strconv.Quote(r.typ))
	switch {
	case r.IsMap():
		b.WriteString(" map(")
		r.itemModel.writeKey(b)
		b.WriteByte(')')
	case r.IsCollection():
		b.WriteString(" of(")
		r.itemModel.writeKey(b)
		b.WriteByte(')')
	}
	if r.allowable != nil {
		b.WriteString(" values(")
		b.WriteString(r.allowable.allowableKey())
		b.WriteByte(')')
	}
}

// String renders the reference for diagnostics.
func (r ModelRef) String() string {
	switch {
	case r.IsMap():
		return r.typ + "{" + r.itemModel.String() + "}"
	case r.IsCollection():
		return r.typ + "[" + r.itemModel.String() + "]"
	default:
		return r.typ
	}
}
