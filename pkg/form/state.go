// Package form models the booking form as an immutable State value and a
// reducer that applies user events to it.
package form

import (
	"github.com/goliatone/go-bookingform/pkg/catalog"
	"github.com/goliatone/go-bookingform/pkg/validation"
)

// Browsing is the product picker position: either choosing a category or
// viewing one.
type Browsing interface {
	browsing()
}

// ChoosingCategory is the picker's initial view listing the categories.
type ChoosingCategory struct{}

// ViewingCategory lists the products of a single category.
type ViewingCategory struct {
	Category catalog.Category
}

func (ChoosingCategory) browsing() {}
func (ViewingCategory) browsing()  {}

// State is a snapshot of the form. Every accessor returns copies, and the
// reducer always builds a new State, so a value held by a caller never
// changes underneath it.
type State struct {
	values   validation.Values
	selected []catalog.Product
	browsing Browsing
	search   string
	errors   map[string]string
	catalog  *catalog.Catalog
}

// New returns the initial state for c, seeded with prefill values.
func New(c *catalog.Catalog, prefill validation.Values) State {
	return State{
		values:   cloneValues(prefill),
		browsing: ChoosingCategory{},
		errors:   map[string]string{},
		catalog:  c,
	}
}

// Catalog returns the catalog products are picked from.
func (s State) Catalog() *catalog.Catalog { return s.catalog }

// Values returns a copy of the raw field values.
func (s State) Values() validation.Values { return cloneValues(s.values) }

// Value returns a single raw field value.
func (s State) Value(field string) (any, bool) {
	v, ok := s.values[field]
	return v, ok
}

// Selected returns the selected products in selection order.
func (s State) Selected() []catalog.Product {
	return append([]catalog.Product(nil), s.selected...)
}

// Browsing returns the picker position.
func (s State) Browsing() Browsing {
	if s.browsing == nil {
		return ChoosingCategory{}
	}
	return s.browsing
}

// Search returns the current search query.
func (s State) Search() string { return s.search }

// Errors returns a copy of the last validation errors.
func (s State) Errors() map[string]string { return cloneErrors(s.errors) }

// ErrorFor returns the last validation message for field, if any.
func (s State) ErrorFor(field string) string { return s.errors[field] }

// SelectedCodes returns the selected product codes in selection order.
func (s State) SelectedCodes() []string { return catalog.Codes(s.selected) }

// SearchResults lists products matching the search query that are not yet
// selected.
func (s State) SearchResults() []catalog.Product {
	return catalog.FilterBySearch(s.search, s.catalog, s.SelectedCodes())
}

// CategoryResults lists the unselected products of the category being
// viewed. It is empty while choosing a category.
func (s State) CategoryResults() []catalog.Product {
	view, ok := s.Browsing().(ViewingCategory)
	if !ok {
		return nil
	}
	return catalog.FilterByCategory(view.Category, s.catalog, s.SelectedCodes())
}

func (s State) clone() State {
	return State{
		values:   cloneValues(s.values),
		selected: append([]catalog.Product(nil), s.selected...),
		browsing: s.Browsing(),
		search:   s.search,
		errors:   cloneErrors(s.errors),
		catalog:  s.catalog,
	}
}

func cloneValues(src validation.Values) validation.Values {
	if len(src) == 0 {
		return validation.Values{}
	}
	return src.Clone()
}

func cloneErrors(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
