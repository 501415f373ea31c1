package catalog

// AddProduct appends the product identified by code to selected. Unknown
// codes and codes already present leave the selection unchanged. The input
// slice is never modified.
func AddProduct(code string, c *Catalog, selected []Product) []Product {
	product, ok := c.Lookup(code)
	if !ok || indexOf(selected, code) >= 0 {
		return selected
	}
	out := make([]Product, 0, len(selected)+1)
	out = append(out, selected...)
	return append(out, product)
}

// RemoveProduct drops the entry with the matching code, if any. The input
// slice is never modified.
func RemoveProduct(code string, selected []Product) []Product {
	idx := indexOf(selected, code)
	if idx < 0 {
		return selected
	}
	out := make([]Product, 0, len(selected)-1)
	out = append(out, selected[:idx]...)
	return append(out, selected[idx+1:]...)
}

// Codes returns the product codes of selected in order.
func Codes(selected []Product) []string {
	if len(selected) == 0 {
		return []string{}
	}
	out := make([]string, len(selected))
	for i, product := range selected {
		out[i] = product.Code
	}
	return out
}

// Contains reports whether code is in selected.
func Contains(selected []Product, code string) bool {
	return indexOf(selected, code) >= 0
}

func indexOf(selected []Product, code string) int {
	for i, product := range selected {
		if product.Code == code {
			return i
		}
	}
	return -1
}
