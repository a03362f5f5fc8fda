package handler

import (
	"fmt"
	"strings"
)

// PathVar is a variable of a path pattern: "{id}" or "{id:uuid}".
type PathVar struct {
	Name  string
	Macro string
}

// ParsePattern validates a path pattern and returns its variables in order.
// Patterns must start with "/", braces must balance and variable names must
// be present and unique.
func ParsePattern(pattern string) ([]PathVar, error) {
	if !strings.HasPrefix(pattern, "/") {
		return nil, fmt.Errorf("%w: %q must start with a slash", ErrInvalidPattern, pattern)
	}

	idxs, err := braceIndices(pattern)
	if err != nil {
		return nil, err
	}

	vars := make([]PathVar, 0, len(idxs)/2)
	seen := make(map[string]bool, len(idxs)/2)
	for i := 0; i < len(idxs); i += 2 {
		inner := pattern[idxs[i]+1 : idxs[i+1]-1]
		name, macro, _ := strings.Cut(inner, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: missing name in %q from %q", ErrInvalidPattern, pattern[idxs[i]:idxs[i+1]], pattern)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicated variable %q in %q", ErrInvalidPattern, name, pattern)
		}
		seen[name] = true
		vars = append(vars, PathVar{Name: name, Macro: strings.TrimSpace(macro)})
	}
	return vars, nil
}

// NormalizePattern strips variable macros: "/pets/{id:int}" -> "/pets/{id}".
func NormalizePattern(pattern string) string {
	idxs, err := braceIndices(pattern)
	if err != nil || len(idxs) == 0 {
		return pattern
	}

	var b strings.Builder
	end := 0
	for i := 0; i < len(idxs); i += 2 {
		b.WriteString(pattern[end:idxs[i]])
		name, _, _ := strings.Cut(pattern[idxs[i]+1:idxs[i+1]-1], ":")
		b.WriteString("{" + strings.TrimSpace(name) + "}")
		end = idxs[i+1]
	}
	b.WriteString(pattern[end:])
	return b.String()
}

// braceIndices returns the first and last indices of each top-level
// variable in s.
func braceIndices(s string) ([]int, error) {
	var (
		idxs  []int
		level int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			if level++; level == 1 {
				idxs = append(idxs, i)
			}
		case '}':
			if level--; level == 0 {
				idxs = append(idxs, i+1)
			} else if level < 0 {
				return nil, fmt.Errorf("%w: unbalanced braces in %q", ErrInvalidPattern, s)
			}
		}
	}
	if level != 0 {
		return nil, fmt.Errorf("%w: unbalanced braces in %q", ErrInvalidPattern, s)
	}
	return idxs, nil
}
