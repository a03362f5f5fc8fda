package schema

import (
	"strconv"
	"strings"
)

// AllowableValues constrains the values a property or parameter accepts.
// Implementations are AllowableList and AllowableRange; both are compared
// by value.
type AllowableValues interface {
	allowableKey() string
}

// AllowableList enumerates the accepted literals.
//
// See: https://swagger.io/specification/v2/#parameter-object (enum)
type AllowableList struct {
	Values    []string
	ValueType string
}

func (l AllowableList) allowableKey() string {
	parts := make([]string, len(l.Values))
	for i, v := range l.Values {
		parts[i] = strconv.Quote(v)
	}
	return "list " + l.ValueType + " [" + strings.Join(parts, ",") + "]"
}

// AllowableRange bounds a numeric value, a string length or an item count.
// An empty Min or Max leaves that side unbounded.
//
// See: https://swagger.io/specification/v2/#parameter-object (minimum, maxLength)
type AllowableRange struct {
	Min          string
	Max          string
	ExclusiveMin bool
	ExclusiveMax bool
}

func (r AllowableRange) allowableKey() string {
	open, closing := "[", "]"
	if r.ExclusiveMin {
		open = "("
	}
	if r.ExclusiveMax {
		closing = ")"
	}
	return "range " + open + strconv.Quote(r.Min) + "," + strconv.Quote(r.Max) + closing
}

// EqualValues compares two optional constraints by value.
func EqualValues(a, b AllowableValues) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.allowableKey() == b.allowableKey()
}

// ParseAllowableValues parses the textual constraint syntax used by
// parameter annotations:
//
//	"available,pending,sold"   -> AllowableList
//	"range[1, 5]"              -> AllowableRange, both inclusive
//	"range(0, infinity)"       -> AllowableRange, exclusive minimum, no maximum
//	"range[-infinity, 100]"    -> AllowableRange, no minimum
//
// An empty or malformed input yields nil.
func ParseAllowableValues(s string) AllowableValues {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "range") {
		var values []string
		for part := range strings.SplitSeq(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				values = append(values, part)
			}
		}
		if len(values) == 0 {
			return nil
		}
		return AllowableList{Values: values, ValueType: "LIST"}
	}

	body := strings.TrimSpace(s[len("range"):])
	if len(body) < 2 {
		return nil
	}
	open, closing := body[0], body[len(body)-1]
	if (open != '[' && open != '(') || (closing != ']' && closing != ')') {
		return nil
	}

	low, high, ok := strings.Cut(body[1:len(body)-1], ",")
	if !ok {
		return nil
	}

	r := AllowableRange{
		Min:          rangeBound(low),
		Max:          rangeBound(high),
		ExclusiveMin: open == '(',
		ExclusiveMax: closing == ')',
	}
	if r.Min == "" {
		r.ExclusiveMin = false
	}
	if r.Max == "" {
		r.ExclusiveMax = false
	}
	return r
}

func rangeBound(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(strings.TrimLeft(s, "+-")) {
	case "infinity", "inf", "":
		return ""
	}
	return s
}
