package booking

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-bookingform/pkg/catalog"
	"github.com/goliatone/go-bookingform/pkg/storage"
	"github.com/goliatone/go-bookingform/pkg/validation"
)

// Form wires validation, submission and the contact cache together.
type Form struct {
	store        storage.Store
	submitter    Submitter
	logger       *zap.Logger
	checkPayload bool
}

// Option configures a Form.
type Option func(*Form)

// WithStore sets the contact cache backend. Defaults to an in-memory store.
func WithStore(store storage.Store) Option {
	return func(f *Form) {
		if store != nil {
			f.store = store
		}
	}
}

// WithSubmitter sets the booking collaborator. Defaults to a LogSubmitter
// using the form logger.
func WithSubmitter(submitter Submitter) Option {
	return func(f *Form) {
		if submitter != nil {
			f.submitter = submitter
		}
	}
}

// WithLogger sets the logger used for form events.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Form) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithPayloadCheck toggles verifying payloads against the OpenAPI document
// before submission. Enabled by default.
func WithPayloadCheck(enabled bool) Option {
	return func(f *Form) {
		f.checkPayload = enabled
	}
}

// NewForm constructs a Form with defaults plus any overrides.
func NewForm(options ...Option) *Form {
	f := &Form{
		logger:       zap.NewNop(),
		checkPayload: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	if f.store == nil {
		f.store = storage.NewMemory(nil)
	}
	if f.submitter == nil {
		f.submitter = NewLogSubmitter(f.logger)
	}
	return f
}

// Outcome reports what HandleSubmit did. Submitted is false when validation
// failed, in which case Errors holds a message per failing field and nothing
// was sent or stored.
type Outcome struct {
	Submitted bool              `json:"submitted"`
	Payload   Payload           `json:"payload"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// HandleSubmit validates values, and when they pass assembles the payload,
// hands it to the submitter and remembers the contact fields. Validation
// failures are returned in the Outcome; the error is reserved for submitter
// and storage failures.
func (f *Form) HandleSubmit(ctx context.Context, values validation.Values, selected []catalog.Product) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	result := Validate(values)
	if !result.Valid {
		f.logger.Debug("booking rejected", zap.Int("errors", len(result.Errors)))
		return Outcome{Errors: result.Errors}, nil
	}

	payload := NewPayload(result.Data, selected)
	if f.checkPayload {
		if err := CheckPayload(ctx, payload); err != nil {
			return Outcome{}, err
		}
	}

	if err := f.submitter.Submit(ctx, payload); err != nil {
		return Outcome{}, fmt.Errorf("booking: submit: %w", err)
	}
	if err := RememberContact(ctx, f.store, payload.Data); err != nil {
		return Outcome{Submitted: true, Payload: payload}, err
	}

	f.logger.Debug("booking accepted",
		zap.String("dealership", payload.Data.DealershipName),
		zap.Int("products", len(payload.Products)),
	)
	return Outcome{Submitted: true, Payload: payload}, nil
}

// Prefill returns the remembered contact fields for a new session.
func (f *Form) Prefill(ctx context.Context) (validation.Values, error) {
	return RecallContact(ctx, f.store)
}
