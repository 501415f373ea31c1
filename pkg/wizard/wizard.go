// Package wizard walks a dealer through the booking form in a terminal. It
// drives the pure form reducer, re-prompting each field until it passes the
// booking schema, and hands the final state back for submission.
package wizard

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-bookingform/components/vehicles"
	"github.com/goliatone/go-bookingform/pkg/booking"
	"github.com/goliatone/go-bookingform/pkg/form"
	"github.com/goliatone/go-bookingform/pkg/validation"
)

// Wizard runs the booking steps against a PromptDriver.
type Wizard struct {
	driver   PromptDriver
	vehicles *vehicles.Table
	theme    Theme
	logger   *zap.Logger
	schema   *validation.Schema
}

type step struct {
	name  string
	title string
	run   func(w *Wizard, ctx context.Context, s form.State) (form.State, error)
}

var steps = []step{
	{name: "dealership", title: "Dealership", run: (*Wizard).dealershipStep},
	{name: "address", title: "Booking address", run: (*Wizard).addressStep},
	{name: "vehicle", title: "Vehicle", run: (*Wizard).vehicleStep},
	{name: "products", title: "Products", run: (*Wizard).productsStep},
	{name: "scheduling", title: "Scheduling", run: (*Wizard).schedulingStep},
}

// Steps lists the step names in order, ending with the review.
func Steps() []string {
	out := make([]string, 0, len(steps)+1)
	for _, st := range steps {
		out = append(out, st.name)
	}
	return append(out, "review")
}

// New constructs a wizard with defaults (survey driver, default theme) plus
// any overrides.
func New(options ...Option) *Wizard {
	w := &Wizard{
		theme:  DefaultTheme(),
		logger: zap.NewNop(),
		schema: booking.Schema(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	if w.driver == nil {
		w.driver = NewSurveyDriver(nil)
	}
	return w
}

// Run prompts every step and then the review. It returns the final state
// once the user confirms, ErrCancelled when they decline, or ErrAborted when
// they interrupt the prompt.
func (w *Wizard) Run(ctx context.Context, s form.State) (form.State, error) {
	if ctx == nil {
		return s, errors.New("wizard: context is required")
	}
	for i, st := range steps {
		var err error
		s, err = w.runStep(ctx, i, st, s)
		if err != nil {
			return s, err
		}
	}
	return w.review(ctx, s)
}

// Fix re-prompts the fields that carry errors in s, in schema order. It is
// used after a submit was rejected.
func (w *Wizard) Fix(ctx context.Context, s form.State) (form.State, error) {
	errs := s.Errors()
	if len(errs) == 0 {
		return s, nil
	}
	for _, field := range w.schema.Fields() {
		msg, ok := errs[field.Name]
		if !ok {
			continue
		}
		if err := w.warn(ctx, msg); err != nil {
			return s, err
		}
		var err error
		s, err = w.promptField(ctx, s, field.Name)
		if err != nil {
			return s, err
		}
	}
	return s, nil
}

func (w *Wizard) runStep(ctx context.Context, idx int, st step, s form.State) (form.State, error) {
	if err := ctx.Err(); err != nil {
		return s, err
	}
	w.logger.Debug("wizard step", zap.String("step", st.name))
	header := fmt.Sprintf("%s Step %d of %d: %s", w.theme.StepPrefix, idx+1, len(steps)+1, st.title)
	if err := w.driver.Info(ctx, header); err != nil {
		return s, err
	}
	return st.run(w, ctx, s)
}

func (w *Wizard) review(ctx context.Context, s form.State) (form.State, error) {
	const (
		choiceSubmit = "Submit booking"
		choiceCancel = "Cancel"
	)

	for {
		header := fmt.Sprintf("%s Step %d of %d: Review", w.theme.StepPrefix, len(steps)+1, len(steps)+1)
		if err := w.driver.Info(ctx, header); err != nil {
			return s, err
		}

		result := booking.Validate(s.Values())
		s = form.Apply(form.SetErrors{Errors: result.Errors}, s)
		if !result.Valid {
			var err error
			if s, err = w.Fix(ctx, s); err != nil {
				return s, err
			}
			continue
		}

		summary, err := booking.RenderSummary(booking.NewPayload(result.Data, s.Selected()), s.Catalog())
		if err != nil {
			return s, err
		}
		if err := w.info(ctx, summary); err != nil {
			return s, err
		}

		options := []string{choiceSubmit}
		for _, st := range steps {
			options = append(options, "Edit "+st.title)
		}
		options = append(options, choiceCancel)

		idx, err := w.driver.Select(ctx, SelectConfig{
			Message: "Ready to submit?",
			Options: options,
		})
		if err != nil {
			return s, err
		}
		switch {
		case idx == 0:
			return s, nil
		case idx >= 1 && idx <= len(steps):
			if s, err = w.runStep(ctx, idx-1, steps[idx-1], s); err != nil {
				return s, err
			}
		case idx == len(options)-1:
			return s, ErrCancelled
		}
	}
}

func (w *Wizard) info(ctx context.Context, msg string) error {
	if w.theme.InfoPrefix != "" {
		msg = w.theme.InfoPrefix + " " + msg
	}
	return w.driver.Info(ctx, msg)
}

func (w *Wizard) warn(ctx context.Context, msg string) error {
	if w.theme.ErrorPrefix != "" {
		msg = w.theme.ErrorPrefix + " " + msg
	}
	return w.driver.Info(ctx, msg)
}
