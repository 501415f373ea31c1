package booking

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi/booking.yaml
var openAPISpec []byte

const payloadSchemaName = "BookingPayload"

var (
	openAPIOnce sync.Once
	openAPIDoc  *openapi3.T
	openAPIErr  error
)

// OpenAPISpec returns the raw OpenAPI document describing the booking
// submission endpoint.
func OpenAPISpec() []byte {
	return append([]byte(nil), openAPISpec...)
}

// OpenAPIDocument parses and validates the embedded document once.
func OpenAPIDocument(ctx context.Context) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	openAPIOnce.Do(func() {
		loadCtx := context.Background()
		loader := &openapi3.Loader{Context: loadCtx}
		doc, err := loader.LoadFromData(openAPISpec)
		if err != nil {
			openAPIErr = fmt.Errorf("booking openapi: load document: %w", err)
			return
		}
		if err := doc.Validate(loadCtx); err != nil {
			openAPIErr = fmt.Errorf("booking openapi: validate: %w", err)
			return
		}
		openAPIDoc = doc
	})
	return openAPIDoc, openAPIErr
}

// CheckPayload verifies payload against the BookingPayload schema.
func CheckPayload(ctx context.Context, payload Payload) error {
	doc, err := OpenAPIDocument(ctx)
	if err != nil {
		return err
	}
	ref, ok := doc.Components.Schemas[payloadSchemaName]
	if !ok || ref == nil || ref.Value == nil {
		return errors.New("booking openapi: payload schema missing")
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("booking openapi: encode payload: %w", err)
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("booking openapi: decode payload: %w", err)
	}
	if err := ref.Value.VisitJSON(value); err != nil {
		return fmt.Errorf("booking openapi: payload does not conform: %w", err)
	}
	return nil
}
