package handler

import (
	"slices"
	"sort"
)

// Merge combines handlers that document the same logical endpoint. Two
// handlers are equivalent when their normalized pattern sets are equal,
// their HTTP methods intersect, their header and param conditions match
// and their documented parameter types are identical. Groups keep
// discovery order and each group folds left with Combine.
func Merge(handlers []RequestHandler) []RequestHandler {
	var (
		leaders []RequestHandler
		groups  []RequestHandler
	)
	for _, h := range handlers {
		if h == nil {
			continue
		}
		idx := slices.IndexFunc(leaders, func(l RequestHandler) bool { return equivalent(l, h) })
		if idx >= 0 {
			groups[idx] = groups[idx].Combine(h)
			continue
		}
		leaders = append(leaders, h)
		groups = append(groups, h)
	}
	return groups
}

func equivalent(a, b RequestHandler) bool {
	return slices.Equal(normalizedPatterns(a), normalizedPatterns(b)) &&
		intersects(a.SupportedMethods(), b.SupportedMethods()) &&
		sameConditions(a.Headers(), b.Headers()) &&
		sameConditions(a.Params(), b.Params()) &&
		sameParameterTypes(a.Parameters(), b.Parameters())
}

func normalizedPatterns(h RequestHandler) []string {
	patterns := h.Patterns()
	for i, p := range patterns {
		patterns[i] = NormalizePattern(p)
	}
	sort.Strings(patterns)
	return slices.Compact(patterns)
}

// intersects treats an empty method set as every method.
func intersects(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return true
	}
	return slices.ContainsFunc(a, func(m string) bool { return slices.Contains(b, m) })
}

func sameConditions(a, b []NameValue) bool {
	if len(a) != len(b) {
		return false
	}
	as := make([]string, len(a))
	bs := make([]string, len(b))
	for i := range a {
		as[i] = a[i].String()
		bs[i] = b[i].String()
	}
	sort.Strings(as)
	sort.Strings(bs)
	return slices.Equal(as, bs)
}

// sameParameterTypes compares reflect.Type identity, so equally named
// types from different packages never match.
func sameParameterTypes(a, b []Parameter) bool {
	return slices.EqualFunc(a, b, func(p, q Parameter) bool { return p.Type == q.Type })
}
