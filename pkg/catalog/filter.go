package catalog

import "strings"

// MaxSearchResults bounds the search result list shown in the picker.
const MaxSearchResults = 8

// FilterBySearch returns products whose name or code contains query,
// ignoring case, skipping any code listed in exclude. Results keep catalog
// order and are capped at MaxSearchResults. A blank or whitespace-only query
// matches nothing; any other query is matched as typed, spaces included.
func FilterBySearch(query string, c *Catalog, exclude []string) []Product {
	if strings.TrimSpace(query) == "" || c.Len() == 0 {
		return nil
	}
	q := strings.ToLower(query)

	skip := codeSet(exclude)
	out := make([]Product, 0, MaxSearchResults)
	for _, product := range c.products {
		if _, excluded := skip[product.Code]; excluded {
			continue
		}
		haystack := strings.ToLower(product.Name + product.Code)
		if !strings.Contains(haystack, q) {
			continue
		}
		out = append(out, product)
		if len(out) == MaxSearchResults {
			break
		}
	}
	return out
}

// FilterByCategory returns every product in category not listed in exclude.
// Featured products come first; relative order inside each group follows the
// catalog.
func FilterByCategory(category Category, c *Catalog, exclude []string) []Product {
	if c.Len() == 0 {
		return nil
	}

	skip := codeSet(exclude)
	var featured, rest []Product
	for _, product := range c.products {
		if product.Category != category {
			continue
		}
		if _, excluded := skip[product.Code]; excluded {
			continue
		}
		if product.Featured {
			featured = append(featured, product)
		} else {
			rest = append(rest, product)
		}
	}
	if len(featured) == 0 && len(rest) == 0 {
		return nil
	}
	return append(featured, rest...)
}

func codeSet(codes []string) map[string]struct{} {
	if len(codes) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return set
}
