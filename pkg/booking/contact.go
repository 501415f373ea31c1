package booking

import (
	"context"
	"fmt"

	"github.com/goliatone/go-bookingform/pkg/storage"
	"github.com/goliatone/go-bookingform/pkg/validation"
)

// ContactFields are remembered between sessions so a returning dealer does
// not retype them.
var ContactFields = []string{
	FieldDealershipName,
	FieldDealershipNumber,
	FieldStreet,
	FieldSuburb,
	FieldState,
	FieldPostcode,
}

// RememberContact writes the contact fields of data to store, keyed by field
// name.
func RememberContact(ctx context.Context, store storage.Store, data BookingFormData) error {
	values := data.Values()
	for _, field := range ContactFields {
		if err := store.Set(ctx, field, values.String(field)); err != nil {
			return fmt.Errorf("booking: remember %s: %w", field, err)
		}
	}
	return nil
}

// RecallContact reads the remembered contact fields. Keys that were never
// written are left out.
func RecallContact(ctx context.Context, store storage.Store) (validation.Values, error) {
	values := make(validation.Values, len(ContactFields))
	for _, field := range ContactFields {
		value, ok, err := store.Get(ctx, field)
		if err != nil {
			return nil, fmt.Errorf("booking: recall %s: %w", field, err)
		}
		if ok {
			values[field] = value
		}
	}
	return values, nil
}
