package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Category tags the picker section a product is listed under.
type Category string

const (
	CategoryDashCams        Category = "dash_cams"
	CategoryParkingSensors  Category = "parking_sensors"
	CategoryTowBars         Category = "tow_bars"
	CategoryWindowTint      Category = "window_tint"
	CategoryPaintProtection Category = "paint_protection"
	CategoryFloorMats       Category = "floor_mats"
)

var categories = []Category{
	CategoryDashCams,
	CategoryParkingSensors,
	CategoryTowBars,
	CategoryWindowTint,
	CategoryPaintProtection,
	CategoryFloorMats,
}

var categoryLabels = map[Category]string{
	CategoryDashCams:        "Dash Cams",
	CategoryParkingSensors:  "Parking Sensors",
	CategoryTowBars:         "Tow Bars",
	CategoryWindowTint:      "Window Tint",
	CategoryPaintProtection: "Paint Protection",
	CategoryFloorMats:       "Floor Mats",
}

// Categories returns the fixed category list in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the display name of the category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Product is a single catalog entry.
type Product struct {
	Code        string   `json:"code" yaml:"code"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Category    Category `json:"category" yaml:"category"`
	Icon        string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Featured    bool     `json:"featured,omitempty" yaml:"featured,omitempty"`
	// SupplyOnly products ship without a fitting service.
	SupplyOnly bool `json:"supplyOnly,omitempty" yaml:"supplyOnly,omitempty"`
}

// Catalog is a read-only product list with code lookup. The zero value and a
// nil pointer behave as an empty catalog.
type Catalog struct {
	products []Product
	byCode   map[string]int
}

var errEmptyCode = errors.New("catalog: product code is required")

// New validates products and builds a catalog preserving their order.
func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byCode:   make(map[string]int, len(products)),
	}
	for idx, product := range products {
		product.Code = strings.TrimSpace(product.Code)
		product.Name = strings.TrimSpace(product.Name)
		if product.Code == "" {
			return nil, fmt.Errorf("%w (entry %d)", errEmptyCode, idx)
		}
		if _, exists := c.byCode[product.Code]; exists {
			return nil, fmt.Errorf("catalog: duplicate product code %q", product.Code)
		}
		if !product.Category.Valid() {
			return nil, fmt.Errorf("catalog: product %q has unknown category %q", product.Code, product.Category)
		}
		c.byCode[product.Code] = len(c.products)
		c.products = append(c.products, product)
	}
	return c, nil
}

// Products returns a copy of the catalog entries in catalog order.
func (c *Catalog) Products() []Product {
	if c == nil {
		return nil
	}
	return append([]Product(nil), c.products...)
}

// Len reports the number of products.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// Lookup finds a product by its exact code.
func (c *Catalog) Lookup(code string) (Product, bool) {
	if c == nil {
		return Product{}, false
	}
	idx, ok := c.byCode[code]
	if !ok {
		return Product{}, false
	}
	return c.products[idx], true
}
