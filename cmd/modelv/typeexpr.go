package main

import (
	"fmt"
	"strings"

	modelv "github.com/modelv-go/modelv"
)

// ParseTypeExpr parses the schema-file type grammar into a type expression:
//
//	any | bool | string | int | float | time
//	optional[T] | union[T1,...] | list[T] | set[T] | map[K,V]
func ParseTypeExpr(s string) (modelv.TypeExpr, error) {
	s = strings.TrimSpace(s)
	head, args, err := splitHead(s)
	if err != nil {
		return modelv.TypeExpr{}, err
	}

	if args == nil {
		switch head {
		case "any":
			return modelv.Any(), nil
		case "bool":
			return modelv.Bool(), nil
		case "string":
			return modelv.String(), nil
		case "int":
			return modelv.Int(), nil
		case "float":
			return modelv.Float(), nil
		case "time":
			return modelv.Time(), nil
		}
		return modelv.TypeExpr{}, fmt.Errorf("unknown type %q", s)
	}

	parts, err := splitArgs(*args)
	if err != nil {
		return modelv.TypeExpr{}, err
	}
	elems := make([]modelv.TypeExpr, 0, len(parts))
	for _, p := range parts {
		e, err := ParseTypeExpr(p)
		if err != nil {
			return modelv.TypeExpr{}, err
		}
		elems = append(elems, e)
	}

	switch head {
	case "optional":
		if len(elems) != 1 {
			return modelv.TypeExpr{}, fmt.Errorf("optional takes one type, got %d", len(elems))
		}
		return modelv.Optional(elems[0]), nil
	case "union":
		if len(elems) == 0 {
			return modelv.TypeExpr{}, fmt.Errorf("union needs at least one branch")
		}
		return modelv.Union(elems...), nil
	case "list":
		if len(elems) != 1 {
			return modelv.TypeExpr{}, fmt.Errorf("list takes one element type, got %d", len(elems))
		}
		return modelv.List(elems[0]), nil
	case "set":
		if len(elems) != 1 {
			return modelv.TypeExpr{}, fmt.Errorf("set takes one element type, got %d", len(elems))
		}
		return modelv.Set(elems[0]), nil
	case "map":
		if len(elems) != 2 {
			return modelv.TypeExpr{}, fmt.Errorf("map takes key and value types, got %d", len(elems))
		}
		return modelv.Map(elems[0], elems[1]), nil
	}
	return modelv.TypeExpr{}, fmt.Errorf("unknown composite type %q", head)
}

// splitHead separates "list[int]" into head "list" and args "int". A nil args
// pointer means there was no bracket at all.
func splitHead(s string) (string, *string, error) {
	open := strings.IndexByte(s, '[')
	if open < 0 {
		if strings.ContainsAny(s, "],") {
			return "", nil, fmt.Errorf("malformed type %q", s)
		}
		return s, nil, nil
	}
	if !strings.HasSuffix(s, "]") {
		return "", nil, fmt.Errorf("missing closing bracket in %q", s)
	}
	args := s[open+1 : len(s)-1]
	return s[:open], &args, nil
}

// splitArgs splits on top-level commas only; nested brackets stay intact.
func splitArgs(s string) ([]string, error) {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced brackets in %q", s)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced brackets in %q", s)
	}
	parts = append(parts, strings.TrimSpace(s[start:]))
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("empty type argument in %q", s)
		}
	}
	return parts, nil
}
