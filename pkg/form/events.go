package form

import (
	"strings"

	"github.com/goliatone/go-bookingform/pkg/catalog"
	"github.com/goliatone/go-bookingform/pkg/validation"
)

// Event is a user interaction applied to a State.
type Event interface {
	apply(State) State
}

// SetValue stores a raw field value and clears that field's error.
type SetValue struct {
	Field string
	Value any
}

// Search replaces the picker search query.
type Search struct {
	Query string
}

// AddProduct selects a product by code. Unknown or already selected codes
// leave the selection unchanged.
type AddProduct struct {
	Code string
}

// RemoveProduct drops a product from the selection.
type RemoveProduct struct {
	Code string
}

// ChooseCategory moves the picker into a category. Unknown categories are
// ignored.
type ChooseCategory struct {
	Category catalog.Category
}

// Back returns the picker from a category to the category list.
type Back struct{}

// ClosePicker resets the picker to the category list and clears the search.
type ClosePicker struct{}

// SetErrors replaces the validation errors, typically after a failed submit.
type SetErrors struct {
	Errors map[string]string
}

// Prefill merges remembered values into fields that are still empty.
type Prefill struct {
	Values validation.Values
}

// Apply returns the state that results from applying event to s. s itself
// is left untouched.
func Apply(event Event, s State) State {
	if event == nil {
		return s
	}
	return event.apply(s)
}

// ApplyAll folds events over s in order.
func ApplyAll(s State, events ...Event) State {
	for _, event := range events {
		s = Apply(event, s)
	}
	return s
}

func (e SetValue) apply(s State) State {
	next := s.clone()
	next.values[e.Field] = e.Value
	delete(next.errors, e.Field)
	return next
}

func (e Search) apply(s State) State {
	next := s.clone()
	next.search = e.Query
	return next
}

func (e AddProduct) apply(s State) State {
	next := s.clone()
	next.selected = catalog.AddProduct(e.Code, s.catalog, next.selected)
	return next
}

func (e RemoveProduct) apply(s State) State {
	next := s.clone()
	next.selected = catalog.RemoveProduct(e.Code, next.selected)
	return next
}

func (e ChooseCategory) apply(s State) State {
	if !e.Category.Valid() {
		return s
	}
	next := s.clone()
	next.browsing = ViewingCategory{Category: e.Category}
	return next
}

func (Back) apply(s State) State {
	next := s.clone()
	next.browsing = ChoosingCategory{}
	return next
}

func (ClosePicker) apply(s State) State {
	next := s.clone()
	next.browsing = ChoosingCategory{}
	next.search = ""
	return next
}

func (e SetErrors) apply(s State) State {
	next := s.clone()
	next.errors = cloneErrors(e.Errors)
	return next
}

func (e Prefill) apply(s State) State {
	next := s.clone()
	for field, value := range e.Values {
		if current, ok := next.values[field]; ok && !blank(current) {
			continue
		}
		next.values[field] = value
	}
	return next
}

func blank(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	default:
		return false
	}
}
