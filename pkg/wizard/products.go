package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-bookingform/pkg/catalog"
	"github.com/goliatone/go-bookingform/pkg/form"
)

const (
	productSearch = "Search products"
	productBrowse = "Browse categories"
	productRemove = "Remove a product"
	productDone   = "Done"
	choiceBack    = "Back"
)

func (w *Wizard) productsStep(ctx context.Context, s form.State) (form.State, error) {
	for {
		if err := w.info(ctx, selectionSummary(s.Selected())); err != nil {
			return s, err
		}

		options := []string{productSearch, productBrowse}
		if len(s.Selected()) > 0 {
			options = append(options, productRemove)
		}
		options = append(options, productDone)

		idx, err := w.driver.Select(ctx, SelectConfig{
			Message: "Products",
			Options: options,
		})
		if err != nil {
			return s, err
		}
		if idx < 0 || idx >= len(options) {
			continue
		}

		switch options[idx] {
		case productSearch:
			s, err = w.searchProducts(ctx, s)
		case productBrowse:
			s, err = w.browseProducts(ctx, s)
		case productRemove:
			s, err = w.removeProduct(ctx, s)
		case productDone:
			return form.Apply(form.ClosePicker{}, s), nil
		}
		if err != nil {
			return s, err
		}
	}
}

func (w *Wizard) searchProducts(ctx context.Context, s form.State) (form.State, error) {
	query, err := w.driver.Input(ctx, InputConfig{
		Message: "Search by name or code",
		Default: s.Search(),
	})
	if err != nil {
		return s, err
	}
	s = form.Apply(form.Search{Query: query}, s)

	results := s.SearchResults()
	if len(results) == 0 {
		if err := w.info(ctx, fmt.Sprintf("No products match %q.", strings.TrimSpace(query))); err != nil {
			return s, err
		}
		return form.Apply(form.ClosePicker{}, s), nil
	}

	code, err := w.pickProduct(ctx, "Add which product?", results)
	if err != nil {
		return s, err
	}
	if code != "" {
		s = form.Apply(form.AddProduct{Code: code}, s)
	}
	return form.Apply(form.ClosePicker{}, s), nil
}

func (w *Wizard) browseProducts(ctx context.Context, s form.State) (form.State, error) {
	categories := catalog.Categories()
	for {
		switch view := s.Browsing().(type) {
		case form.ChoosingCategory:
			options := make([]string, 0, len(categories)+1)
			for _, category := range categories {
				options = append(options, category.Label())
			}
			options = append(options, choiceBack)

			idx, err := w.driver.Select(ctx, SelectConfig{
				Message: "Choose a category",
				Options: options,
			})
			if err != nil {
				return s, err
			}
			if idx < 0 || idx >= len(categories) {
				return form.Apply(form.ClosePicker{}, s), nil
			}
			s = form.Apply(form.ChooseCategory{Category: categories[idx]}, s)

		case form.ViewingCategory:
			results := s.CategoryResults()
			if len(results) == 0 {
				if err := w.info(ctx, fmt.Sprintf("Everything in %s is already selected.", view.Category.Label())); err != nil {
					return s, err
				}
				s = form.Apply(form.Back{}, s)
				continue
			}

			code, err := w.pickProduct(ctx, view.Category.Label(), results)
			if err != nil {
				return s, err
			}
			if code == "" {
				s = form.Apply(form.Back{}, s)
				continue
			}
			s = form.Apply(form.AddProduct{Code: code}, s)
		}
	}
}

func (w *Wizard) removeProduct(ctx context.Context, s form.State) (form.State, error) {
	code, err := w.pickProduct(ctx, "Remove which product?", s.Selected())
	if err != nil {
		return s, err
	}
	if code == "" {
		return s, nil
	}
	return form.Apply(form.RemoveProduct{Code: code}, s), nil
}

// pickProduct returns the chosen product code, or "" when the user backs
// out.
func (w *Wizard) pickProduct(ctx context.Context, message string, products []catalog.Product) (string, error) {
	options := make([]string, 0, len(products)+1)
	for _, product := range products {
		options = append(options, productLabel(product))
	}
	options = append(options, choiceBack)

	idx, err := w.driver.Select(ctx, SelectConfig{
		Message:  message,
		Options:  options,
		PageSize: catalog.MaxSearchResults + 1,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(products) {
		return "", nil
	}
	return products[idx].Code, nil
}

func productLabel(p catalog.Product) string {
	label := p.Code + "  " + p.Name
	if p.Featured {
		label += " *"
	}
	if p.SupplyOnly {
		label += " (supply only)"
	}
	return label
}

func selectionSummary(selected []catalog.Product) string {
	if len(selected) == 0 {
		return "No products selected yet."
	}
	parts := make([]string, 0, len(selected))
	for _, p := range selected {
		parts = append(parts, p.Code)
	}
	return "Selected: " + strings.Join(parts, ", ")
}
