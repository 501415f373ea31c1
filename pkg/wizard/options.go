package wizard

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-bookingform/components/vehicles"
)

// Theme captures optional prefixes the wizard puts in front of messages.
type Theme struct {
	StepPrefix  string
	InfoPrefix  string
	ErrorPrefix string
}

// DefaultTheme returns the prefixes used when no theme is configured.
func DefaultTheme() Theme {
	return Theme{
		StepPrefix:  "==",
		InfoPrefix:  "",
		ErrorPrefix: "!",
	}
}

// Option configures the wizard.
type Option func(*Wizard)

// WithPromptDriver overrides the prompt driver used by the wizard.
func WithPromptDriver(driver PromptDriver) Option {
	return func(w *Wizard) {
		if driver != nil {
			w.driver = driver
		}
	}
}

// WithVehicles offers make and model choices from table. Without it the
// wizard asks for free text.
func WithVehicles(table *vehicles.Table) Option {
	return func(w *Wizard) {
		w.vehicles = table
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(w *Wizard) {
		w.theme = theme
	}
}

// WithLogger sets the logger used for step transitions.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Wizard) {
		if logger != nil {
			w.logger = logger
		}
	}
}
