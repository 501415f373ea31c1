package form

import (
	"context"

	"github.com/goliatone/go-bookingform/pkg/booking"
)

// Submit hands the state's values and selection to f. When validation fails
// the returned state carries the field errors; on success the errors are
// cleared.
func Submit(ctx context.Context, f *booking.Form, s State) (State, booking.Outcome, error) {
	outcome, err := f.HandleSubmit(ctx, s.values, s.selected)
	if err != nil {
		return s, outcome, err
	}
	return Apply(SetErrors{Errors: outcome.Errors}, s), outcome, nil
}

// Load fills empty fields of s from the form's contact cache.
func Load(ctx context.Context, f *booking.Form, s State) (State, error) {
	values, err := f.Prefill(ctx)
	if err != nil {
		return s, err
	}
	return Apply(Prefill{Values: values}, s), nil
}
