package schema

import (
	"strconv"
	"strings"
)

type jsonTagOpts struct {
	omitempty bool
}

func parseJSONTag(tag string) (string, jsonTagOpts) {
	if tag == "" {
		return "", jsonTagOpts{}
	}
	name, rest, _ := strings.Cut(tag, ",")
	return name, jsonTagOpts{
		omitempty: strings.Contains(rest, "omitempty") || strings.Contains(rest, "omitzero"),
	}
}

// fieldTag is the parsed `openapi` struct tag.
type fieldTag struct {
	position    int
	description string
	example     string
	hasExample  bool
	pattern     string
	readOnly    bool
	required    bool
	hidden      bool
	allowable   AllowableValues
}

// parseOpenAPITag parses `openapi:"key=value,..."`. Enum values are
// separated by "|":
//
//	Status string `openapi:"position=2,description=Pet status,enum=available|sold"`
//	Name   string `openapi:"minLength=1,maxLength=64,example=doggie"`
func parseOpenAPITag(tag string) fieldTag {
	var ft fieldTag
	if tag == "" {
		return ft
	}

	var rng AllowableRange
	var hasRange bool

	for part := range strings.SplitSeq(tag, ",") {
		key, value, hasValue := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if hasValue {
			value = strings.TrimSpace(value)
		}

		switch key {
		case "position":
			if v, err := strconv.Atoi(value); err == nil {
				ft.position = v
			}
		case "description":
			ft.description = value
		case "example":
			ft.example = value
			ft.hasExample = true
		case "pattern":
			ft.pattern = value
		case "readOnly":
			ft.readOnly = true
		case "required":
			ft.required = true
		case "hidden":
			ft.hidden = true
		case "enum":
			ft.allowable = AllowableList{Values: strings.Split(value, "|"), ValueType: "LIST"}
		case "minimum", "minLength", "minItems":
			rng.Min = value
			hasRange = true
		case "maximum", "maxLength", "maxItems":
			rng.Max = value
			hasRange = true
		case "exclusiveMinimum":
			rng.Min = value
			rng.ExclusiveMin = true
			hasRange = true
		case "exclusiveMaximum":
			rng.Max = value
			rng.ExclusiveMax = true
			hasRange = true
		}
	}

	if ft.allowable == nil && hasRange {
		ft.allowable = rng
	}
	return ft
}

// validateTag is the subset of `validate` struct tag rules that carry
// documentation meaning.
type validateTag struct {
	required  bool
	allowable AllowableValues
}

// parseValidateTag reads validator-style rules:
//
//	`validate:"required,min=1,max=64"`  -> required, range [1, 64]
//	`validate:"len=3"`                  -> range [3, 3]
//	`validate:"oneof=red green blue"`   -> list
func parseValidateTag(tag string) validateTag {
	var vt validateTag
	if tag == "" {
		return vt
	}

	var rng AllowableRange
	var hasRange bool

	for part := range strings.SplitSeq(tag, ",") {
		key, value, _ := strings.Cut(strings.TrimSpace(part), "=")
		switch key {
		case "required":
			vt.required = true
		case "min", "gte":
			rng.Min = value
			hasRange = true
		case "max", "lte":
			rng.Max = value
			hasRange = true
		case "gt":
			rng.Min = value
			rng.ExclusiveMin = true
			hasRange = true
		case "lt":
			rng.Max = value
			rng.ExclusiveMax = true
			hasRange = true
		case "len":
			rng.Min, rng.Max = value, value
			hasRange = true
		case "oneof":
			vt.allowable = AllowableList{Values: strings.Fields(value), ValueType: "LIST"}
		}
	}

	if vt.allowable == nil && hasRange {
		vt.allowable = rng
	}
	return vt
}

// parseExampleValue converts a tag value to a Go value matching the
// canonical scalar type.
func parseExampleValue(typ, value string) any {
	switch typ {
	case TypeInt, TypeLong, TypeBigInteger:
		if v, err := strconv.ParseInt(value, 10, 64); err == nil {
			return v
		}
	case TypeFloat, TypeDouble, TypeBigDecimal:
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
	case TypeBoolean:
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return value
}
