package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-bookingform/pkg/booking"
	"github.com/goliatone/go-bookingform/pkg/form"
)

type fieldPrompt struct {
	label string
	help  string
}

var fieldPrompts = map[string]fieldPrompt{
	booking.FieldDealershipName:      {label: "Dealership name"},
	booking.FieldDealershipNumber:    {label: "Dealership contact number", help: "Numbers and spaces only, at least 8 characters."},
	booking.FieldContactName:         {label: "Contact person"},
	booking.FieldDealershipType:      {label: "Where is the vehicle?"},
	booking.FieldDealershipTypeOther: {label: "Describe where the vehicle is"},
	booking.FieldStreet:              {label: "Street address"},
	booking.FieldSuburb:              {label: "Suburb"},
	booking.FieldState:               {label: "State"},
	booking.FieldPostcode:            {label: "Postcode"},
	booking.FieldVehicleMake:         {label: "Vehicle make"},
	booking.FieldVehicleModel:        {label: "Vehicle model"},
	booking.FieldVehicleYear:         {label: "Year"},
	booking.FieldStockRego:           {label: "Stock number, rego or VIN"},
	booking.FieldVehicleColor:        {label: "Colour (optional)"},
	booking.FieldPurchaseOrder:       {label: "Purchase order number"},
	booking.FieldASAP:                {label: "Fit as soon as possible?"},
	booking.FieldPreferredDate:       {label: "Preferred date (optional)", help: "Format YYYY-MM-DD."},
	booking.FieldPreferredTime:       {label: "Preferred time"},
	booking.FieldHasCanopy:           {label: "Does the vehicle have a canopy?"},
	booking.FieldIsHybrid:            {label: "Is the vehicle a hybrid or EV?"},
	booking.FieldNotes:               {label: "Notes for the fitter (optional)"},
}

const otherVehicleChoice = "Other (type it in)"

func (w *Wizard) dealershipStep(ctx context.Context, s form.State) (form.State, error) {
	return w.promptFields(ctx, s,
		booking.FieldDealershipName,
		booking.FieldDealershipNumber,
		booking.FieldContactName,
		booking.FieldDealershipType,
		booking.FieldDealershipTypeOther,
	)
}

func (w *Wizard) addressStep(ctx context.Context, s form.State) (form.State, error) {
	return w.promptFields(ctx, s,
		booking.FieldStreet,
		booking.FieldSuburb,
		booking.FieldState,
		booking.FieldPostcode,
	)
}

func (w *Wizard) vehicleStep(ctx context.Context, s form.State) (form.State, error) {
	return w.promptFields(ctx, s,
		booking.FieldVehicleMake,
		booking.FieldVehicleModel,
		booking.FieldVehicleYear,
		booking.FieldStockRego,
		booking.FieldVehicleColor,
		booking.FieldPurchaseOrder,
	)
}

func (w *Wizard) schedulingStep(ctx context.Context, s form.State) (form.State, error) {
	return w.promptFields(ctx, s,
		booking.FieldASAP,
		booking.FieldPreferredDate,
		booking.FieldPreferredTime,
		booking.FieldHasCanopy,
		booking.FieldIsHybrid,
		booking.FieldNotes,
	)
}

func (w *Wizard) promptFields(ctx context.Context, s form.State, fields ...string) (form.State, error) {
	for _, field := range fields {
		var err error
		s, err = w.promptField(ctx, s, field)
		if err != nil {
			return s, err
		}
	}
	return s, nil
}

// promptField asks for a single field until it passes the schema. Fields
// that are inactive for the current values are skipped, and an urgent
// booking clears its preferred date.
func (w *Wizard) promptField(ctx context.Context, s form.State, field string) (form.State, error) {
	if def, ok := w.schema.Field(field); ok && !def.Active(s.Values()) {
		return s, nil
	}
	if field == booking.FieldPreferredDate && s.Values().Bool(booking.FieldASAP) {
		return form.Apply(form.SetValue{Field: field, Value: ""}, s), nil
	}

	for {
		value, err := w.ask(ctx, s, field)
		if err != nil {
			return s, err
		}
		next := form.Apply(form.SetValue{Field: field, Value: value}, s)
		if msg, ok := w.schema.ValidateField(field, next.Values()); !ok {
			if err := w.warn(ctx, msg); err != nil {
				return s, err
			}
			s = next
			continue
		}
		return next, nil
	}
}

func (w *Wizard) ask(ctx context.Context, s form.State, field string) (any, error) {
	prompt := fieldPrompts[field]
	if prompt.label == "" {
		prompt.label = field
	}
	current := s.Values()

	switch field {
	case booking.FieldDealershipType:
		return w.askOption(ctx, prompt, booking.LocationOptions(), current.String(field))
	case booking.FieldState:
		return w.askOption(ctx, prompt, booking.StateOptions(), current.String(field))
	case booking.FieldPreferredTime:
		return w.askOption(ctx, prompt, booking.TimeOptions(), current.String(field))
	case booking.FieldASAP, booking.FieldHasCanopy, booking.FieldIsHybrid:
		return w.driver.Confirm(ctx, ConfirmConfig{
			Message: prompt.label,
			Default: current.Bool(field),
			Help:    prompt.help,
		})
	case booking.FieldNotes:
		return w.driver.TextArea(ctx, TextAreaConfig{
			Message: prompt.label,
			Default: current.String(field),
			Help:    prompt.help,
		})
	case booking.FieldVehicleMake:
		if w.vehicles != nil {
			return w.askFromList(ctx, prompt, w.vehicles.Makes(), current.String(field))
		}
	case booking.FieldVehicleModel:
		if w.vehicles != nil {
			models := w.vehicles.Models(current.String(booking.FieldVehicleMake))
			if len(models) > 0 {
				return w.askFromList(ctx, prompt, models, current.String(field))
			}
		}
	}

	return w.driver.Input(ctx, InputConfig{
		Message: prompt.label,
		Default: current.String(field),
		Help:    prompt.help,
	})
}

func (w *Wizard) askOption(ctx context.Context, prompt fieldPrompt, opts []booking.Choice, current string) (string, error) {
	labels := make([]string, len(opts))
	defaultIdx := -1
	for i, opt := range opts {
		labels[i] = opt.Label
		if opt.Value == current {
			defaultIdx = i
		}
	}

	for {
		idx, err := w.driver.Select(ctx, SelectConfig{
			Message:      prompt.label,
			Options:      labels,
			DefaultIndex: defaultIdx,
			Help:         prompt.help,
		})
		if err != nil {
			return "", err
		}
		if idx >= 0 && idx < len(opts) {
			return opts[idx].Value, nil
		}
		if err := w.warn(ctx, fmt.Sprintf("Invalid %s selection", strings.ToLower(prompt.label))); err != nil {
			return "", err
		}
	}
}

// askFromList offers names plus a free text escape hatch for vehicles
// missing from the reference table.
func (w *Wizard) askFromList(ctx context.Context, prompt fieldPrompt, names []string, current string) (string, error) {
	options := append(append([]string{}, names...), otherVehicleChoice)
	defaultIdx := -1
	for i, name := range names {
		if strings.EqualFold(name, current) {
			defaultIdx = i
		}
	}
	if defaultIdx < 0 && current != "" {
		defaultIdx = len(options) - 1
	}

	idx, err := w.driver.Select(ctx, SelectConfig{
		Message:      prompt.label,
		Options:      options,
		DefaultIndex: defaultIdx,
		Help:         prompt.help,
		PageSize:     12,
	})
	if err != nil {
		return "", err
	}
	if idx >= 0 && idx < len(names) {
		return names[idx], nil
	}
	return w.driver.Input(ctx, InputConfig{
		Message: prompt.label,
		Default: current,
		Help:    prompt.help,
	})
}
