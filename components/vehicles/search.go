package vehicles

import (
	"sort"
	"strings"
)

// SearchMakes returns makes containing query, ignoring case. Prefix matches
// come first; table order is kept within each group.
func SearchMakes(t *Table, query string, limit int, opts Options) []string {
	return search(t.Makes(), query, limit, opts)
}

// SearchModels is SearchMakes over the models of makeName.
func SearchModels(t *Table, makeName, query string, limit int, opts Options) []string {
	return search(t.Models(makeName), query, limit, opts)
}

// SearchOptions searches models when makeName is set and makes otherwise.
func SearchOptions(t *Table, makeName, query string, limit int, opts Options) []Option {
	var results []string
	if strings.TrimSpace(makeName) != "" {
		results = SearchModels(t, makeName, query, limit, opts)
	} else {
		results = SearchMakes(t, query, limit, opts)
	}
	if len(results) == 0 {
		return nil
	}

	out := make([]Option, 0, len(results))
	for _, name := range results {
		out = append(out, Option{Value: name, Label: name})
	}
	return out
}

func search(names []string, query string, limit int, opts Options) []string {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchTop {
			if len(names) > limit {
				names = names[:limit]
			}
			return append([]string{}, names...)
		}
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedName, 0, 16)
	for _, name := range names {
		lower := strings.ToLower(name)
		if !strings.Contains(lower, q) {
			continue
		}
		matches = append(matches, matchedName{
			name:     name,
			isPrefix: strings.HasPrefix(lower, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].isPrefix && !matches[j].isPrefix
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.name)
	}
	return out
}

type matchedName struct {
	name     string
	isPrefix bool
}
