package booking

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submitter receives assembled booking payloads. In production this is a
// network call; the implementations here only record the payload.
type Submitter interface {
	Submit(ctx context.Context, payload Payload) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, payload Payload) error

func (fn SubmitterFunc) Submit(ctx context.Context, payload Payload) error {
	return fn(ctx, payload)
}

// LogSubmitter writes each payload to a zap logger under a fresh submission
// id.
type LogSubmitter struct {
	logger *zap.Logger
	newID  func() string
}

// NewLogSubmitter returns a LogSubmitter; a nil logger discards output.
func NewLogSubmitter(logger *zap.Logger) *LogSubmitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSubmitter{logger: logger, newID: uuid.NewString}
}

func (s *LogSubmitter) Submit(ctx context.Context, payload Payload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Info("booking submitted",
		zap.String("submission_id", s.newID()),
		zap.String("dealership", payload.Data.DealershipName),
		zap.Strings("products", payload.Products),
		zap.Any("payload", payload),
	)
	return nil
}

// RecordingSubmitter keeps every payload in memory.
type RecordingSubmitter struct {
	mu       sync.Mutex
	payloads []Payload
}

func (s *RecordingSubmitter) Submit(ctx context.Context, payload Payload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, payload)
	return nil
}

// Payloads returns the recorded payloads in submission order.
func (s *RecordingSubmitter) Payloads() []Payload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Payload(nil), s.payloads...)
}
