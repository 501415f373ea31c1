package wizard

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bookingform/components/vehicles"
	"github.com/goliatone/go-bookingform/pkg/booking"
	"github.com/goliatone/go-bookingform/pkg/form"
	"github.com/goliatone/go-bookingform/pkg/testsupport"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	textAreas    []string
	infoMessages []string
	selectMsgs   []string
	inputPos     int
	selectPos    int
	confirmPos   int
	textPos      int
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	s.selectMsgs = append(s.selectMsgs, cfg.Message)
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func (s *stubDriver) sawInfo(substr string) bool {
	for _, msg := range s.infoMessages {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

func TestRun_FullBooking(t *testing.T) {
	driver := &stubDriver{
		inputs: []string{
			"", "Southside Toyota",
			"12ab", "03 9000 1234",
			"Sam Lee",
			"Yard 4",
			"12 Smith Street", "Fitzroy",
			"300", "3065",
			"Toyota", "Hilux", "2024", "ST1", "", "PO-1",
			"tow",
			"2026-11-02",
		},
		selectIdx: []int{
			2,    // dealership type: other
			6,    // state: VIC
			0, 0, // search, pick TB1
			1, 0, 1, 1, 6, // browse dash cams, add DC200, back, back
			3, // done
			0, // morning
			0, // submit
		},
		confirm:   []bool{false, true, false},
		textAreas: []string{""},
	}
	w := New(WithPromptDriver(driver))

	s, err := w.Run(context.Background(), form.New(testsupport.Catalog(t), nil))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if diff := cmp.Diff([]string{"TB1", "DC200"}, s.SelectedCodes()); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
	if _, ok := s.Browsing().(form.ChoosingCategory); !ok || s.Search() != "" {
		t.Fatalf("expected picker closed, got %#v %q", s.Browsing(), s.Search())
	}

	result := booking.Validate(s.Values())
	if !result.Valid {
		t.Fatalf("expected valid values, got %#v", result.Errors)
	}
	if result.Data.DealershipType != booking.LocationOther || result.Data.DealershipTypeOther != "Yard 4" {
		t.Fatalf("unexpected location: %#v", result.Data)
	}
	if result.Data.State != "VIC" || result.Data.Postcode != "3065" || !result.Data.HasCanopy {
		t.Fatalf("unexpected data: %#v", result.Data)
	}

	for _, want := range []string{
		"! Please enter the name of your dealership.",
		"! Please enter only numbers and/or spaces.",
		"! Please enter a 4 digit postcode.",
		"== Step 1 of 6: Dealership",
		"== Step 6 of 6: Review",
		"Booking for Southside Toyota",
	} {
		if !driver.sawInfo(want) {
			t.Fatalf("expected message %q, got %#v", want, driver.infoMessages)
		}
	}
	if driver.inputPos != len(driver.inputs) || driver.selectPos != len(driver.selectIdx) {
		t.Fatalf("unused script: inputs %d/%d selects %d/%d", driver.inputPos, len(driver.inputs), driver.selectPos, len(driver.selectIdx))
	}
}

func TestVehicleStep_UsesTable(t *testing.T) {
	table, err := vehicles.LoadTable(strings.NewReader("Toyota|HiLux\nToyota|Prado\nFord|Ranger\n"))
	if err != nil {
		t.Fatalf("load table: %v", err)
	}
	driver := &stubDriver{
		inputs:    []string{"2023", "ST9", "Blue", "PO-9"},
		selectIdx: []int{1, 0}, // Ford, Ranger
	}
	w := New(WithPromptDriver(driver), WithVehicles(table))

	s, err := w.vehicleStep(context.Background(), form.New(testsupport.Catalog(t), nil))
	if err != nil {
		t.Fatalf("vehicleStep: %v", err)
	}
	values := s.Values()
	if values.String(booking.FieldVehicleMake) != "Ford" || values.String(booking.FieldVehicleModel) != "Ranger" {
		t.Fatalf("unexpected vehicle: %#v", values)
	}
}

func TestVehicleStep_OtherFallsBackToInput(t *testing.T) {
	table, err := vehicles.LoadTable(strings.NewReader("Toyota|HiLux\n"))
	if err != nil {
		t.Fatalf("load table: %v", err)
	}
	driver := &stubDriver{
		inputs:    []string{"Holden", "Colorado", "2019", "ST9", "", "PO-9"},
		selectIdx: []int{1}, // other
	}
	w := New(WithPromptDriver(driver), WithVehicles(table))

	s, err := w.vehicleStep(context.Background(), form.New(testsupport.Catalog(t), nil))
	if err != nil {
		t.Fatalf("vehicleStep: %v", err)
	}
	values := s.Values()
	if values.String(booking.FieldVehicleMake) != "Holden" || values.String(booking.FieldVehicleModel) != "Colorado" {
		t.Fatalf("unexpected vehicle: %#v", values)
	}
}

func TestSchedulingStep_ASAPSkipsDate(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{2},
		confirm:   []bool{true, false, true},
		textAreas: []string{"Ring <b>ahead</b>"},
	}
	w := New(WithPromptDriver(driver))

	s, err := w.schedulingStep(context.Background(), form.New(testsupport.Catalog(t), nil))
	if err != nil {
		t.Fatalf("schedulingStep: %v", err)
	}
	if driver.inputPos != 0 {
		t.Fatalf("expected no date prompt, got %d inputs", driver.inputPos)
	}
	values := s.Values()
	if !values.Bool(booking.FieldASAP) || !values.Bool(booking.FieldIsHybrid) {
		t.Fatalf("unexpected flags: %#v", values)
	}
	if values.String(booking.FieldPreferredTime) != "afternoon" {
		t.Fatalf("unexpected time: %#v", values)
	}
}

func TestFix_RepromptsFieldsWithErrors(t *testing.T) {
	driver := &stubDriver{inputs: []string{"3000"}}
	w := New(WithPromptDriver(driver))

	s := form.New(testsupport.Catalog(t), testsupport.ValidBookingValues())
	s = form.Apply(form.SetErrors{Errors: map[string]string{booking.FieldPostcode: "Please enter a 4 digit postcode."}}, s)

	s, err := w.Fix(context.Background(), s)
	if err != nil {
		t.Fatalf("Fix: %v", err)
	}
	if got, _ := s.Value(booking.FieldPostcode); got != "3000" {
		t.Fatalf("expected fixed postcode, got %v", got)
	}
	if len(s.Errors()) != 0 {
		t.Fatalf("expected errors cleared, got %#v", s.Errors())
	}
	if !driver.sawInfo("Please enter a 4 digit postcode.") {
		t.Fatalf("expected the error to be shown, got %#v", driver.infoMessages)
	}
}

func TestReview_CancelAndEdit(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Northside Toyota", "03 9000 1234", "Alex Kim"},
		selectIdx: []int{1, 0, 6}, // edit dealership, showroom, cancel
	}
	w := New(WithPromptDriver(driver))
	s := form.New(testsupport.Catalog(t), testsupport.ValidBookingValues())

	s, err := w.review(context.Background(), s)
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	if got, _ := s.Value(booking.FieldDealershipName); got != "Northside Toyota" {
		t.Fatalf("expected edited dealership, got %v", got)
	}
	if !driver.sawInfo("Booking for Northside Toyota") {
		t.Fatalf("expected refreshed summary, got %#v", driver.infoMessages)
	}
}

func TestRun_PropagatesDriverErrors(t *testing.T) {
	w := New(WithPromptDriver(&stubDriver{}))

	_, err := w.Run(context.Background(), form.New(testsupport.Catalog(t), nil))
	if err == nil || !strings.Contains(err.Error(), "no input scripted") {
		t.Fatalf("expected driver error, got %v", err)
	}
}

func TestSteps(t *testing.T) {
	want := []string{"dealership", "address", "vehicle", "products", "scheduling", "review"}
	if diff := cmp.Diff(want, Steps()); diff != "" {
		t.Fatalf("steps mismatch (-want +got):\n%s", diff)
	}
}
