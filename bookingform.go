// Package bookingform is the top-level entry point for the dealer accessory
// booking form: validation, product selection, contact caching and the
// simulated submission, re-exported from the packages under pkg/.
package bookingform

import (
	"context"
	"net/http"

	"github.com/goliatone/go-bookingform/components/vehicles"
	"github.com/goliatone/go-bookingform/pkg/booking"
	"github.com/goliatone/go-bookingform/pkg/catalog"
	"github.com/goliatone/go-bookingform/pkg/form"
	"github.com/goliatone/go-bookingform/pkg/validation"
)

// BookingFormData aliases the validated booking record.
type BookingFormData = booking.BookingFormData

// Payload is the structure handed to a Submitter.
type Payload = booking.Payload

// Outcome reports the result of a submit.
type Outcome = booking.Outcome

// Values is a flat record of raw form values.
type Values = validation.Values

// Product is a catalog entry.
type Product = catalog.Product

// State is the immutable form state driven by form.Apply.
type State = form.State

// NewForm exposes the booking form constructor from the top-level module.
func NewForm(options ...booking.Option) *booking.Form {
	return booking.NewForm(options...)
}

// Validate checks raw values against the booking schema.
func Validate(values Values) booking.Result {
	return booking.Validate(values)
}

// DefaultCatalog returns the embedded product catalog.
func DefaultCatalog() (*catalog.Catalog, error) {
	return catalog.Default()
}

// NewState returns the initial state for a session: empty except for the
// contact fields f remembers from the last successful booking.
func NewState(ctx context.Context, f *booking.Form, c *catalog.Catalog) (State, error) {
	return form.Load(ctx, f, form.New(c, nil))
}

// Submit validates and submits s through f, recording any field errors on
// the returned state.
func Submit(ctx context.Context, f *booking.Form, s State) (State, Outcome, error) {
	return form.Submit(ctx, f, s)
}

// VehiclesHandler returns the make/model options endpoint with the embedded
// reference table.
func VehiclesHandler(fns ...vehicles.OptionFn) http.Handler {
	return vehicles.NewHandler(fns...)
}

// OpenAPISpec returns the OpenAPI document describing booking submissions.
func OpenAPISpec() []byte {
	return booking.OpenAPISpec()
}
