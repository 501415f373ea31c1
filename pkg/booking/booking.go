package booking

import (
	"github.com/goliatone/go-bookingform/pkg/catalog"
	"github.com/goliatone/go-bookingform/pkg/validation"
)

// LocationType is where the vehicle sits for fitment.
type LocationType string

const (
	LocationShowroom    LocationType = "showroom"
	LocationPredelivery LocationType = "predelivery"
	LocationOther       LocationType = "other"
)

var locationLabels = []Choice{
	{Value: string(LocationShowroom), Label: "Showroom floor"},
	{Value: string(LocationPredelivery), Label: "Pre-delivery bay"},
	{Value: string(LocationOther), Label: "Somewhere else"},
}

// State is an Australian state or territory code.
type State string

var stateLabels = []Choice{
	{Value: "ACT", Label: "Australian Capital Territory"},
	{Value: "NSW", Label: "New South Wales"},
	{Value: "NT", Label: "Northern Territory"},
	{Value: "QLD", Label: "Queensland"},
	{Value: "SA", Label: "South Australia"},
	{Value: "TAS", Label: "Tasmania"},
	{Value: "VIC", Label: "Victoria"},
	{Value: "WA", Label: "Western Australia"},
}

// TimeOfDay is the preferred fitting window.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeMidday    TimeOfDay = "midday"
	TimeAfternoon TimeOfDay = "afternoon"
)

var timeLabels = []Choice{
	{Value: string(TimeMorning), Label: "Morning"},
	{Value: string(TimeMidday), Label: "Midday"},
	{Value: string(TimeAfternoon), Label: "Afternoon"},
}

// Choice is a value/label pair for enum fields.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// LocationOptions lists the dealership location choices.
func LocationOptions() []Choice { return append([]Choice(nil), locationLabels...) }

// StateOptions lists the state choices.
func StateOptions() []Choice { return append([]Choice(nil), stateLabels...) }

// TimeOptions lists the preferred time choices.
func TimeOptions() []Choice { return append([]Choice(nil), timeLabels...) }

func locationValues() []string { return optionValues(locationLabels) }
func stateValues() []string    { return optionValues(stateLabels) }
func timeValues() []string     { return optionValues(timeLabels) }

func optionValues(opts []Choice) []string {
	out := make([]string, len(opts))
	for i, opt := range opts {
		out[i] = opt.Value
	}
	return out
}

// BookingFormData is the typed record produced by a successful validation.
// JSON names match the raw field names.
type BookingFormData struct {
	DealershipName      string       `json:"dealershipName"`
	DealershipNumber    string       `json:"dealershipNumber"`
	ContactName         string       `json:"contactName"`
	DealershipType      LocationType `json:"dealershipType"`
	DealershipTypeOther string       `json:"dealershipTypeOther,omitempty"`

	Street   string `json:"street"`
	Suburb   string `json:"suburb"`
	State    State  `json:"state"`
	Postcode string `json:"postcode"`

	VehicleMake  string `json:"vehicleMake"`
	VehicleModel string `json:"vehicleModel"`
	VehicleYear  string `json:"vehicleYear"`
	StockRego    string `json:"stockRego"`
	VehicleColor string `json:"vehicleColor,omitempty"`

	PurchaseOrder string `json:"purchaseOrder"`

	ASAP          bool      `json:"asap"`
	PreferredDate string    `json:"preferredDate,omitempty"`
	PreferredTime TimeOfDay `json:"preferredTime"`

	HasCanopy bool   `json:"hasCanopy"`
	IsHybrid  bool   `json:"isHybrid"`
	Notes     string `json:"notes,omitempty"`
}

// Values flattens the record back into raw form values.
func (d BookingFormData) Values() validation.Values {
	values := validation.Values{
		FieldDealershipName:   d.DealershipName,
		FieldDealershipNumber: d.DealershipNumber,
		FieldContactName:      d.ContactName,
		FieldDealershipType:   string(d.DealershipType),
		FieldStreet:           d.Street,
		FieldSuburb:           d.Suburb,
		FieldState:            string(d.State),
		FieldPostcode:         d.Postcode,
		FieldVehicleMake:      d.VehicleMake,
		FieldVehicleModel:     d.VehicleModel,
		FieldVehicleYear:      d.VehicleYear,
		FieldStockRego:        d.StockRego,
		FieldVehicleColor:     d.VehicleColor,
		FieldPurchaseOrder:    d.PurchaseOrder,
		FieldASAP:             d.ASAP,
		FieldPreferredDate:    d.PreferredDate,
		FieldPreferredTime:    string(d.PreferredTime),
		FieldHasCanopy:        d.HasCanopy,
		FieldIsHybrid:         d.IsHybrid,
		FieldNotes:            d.Notes,
	}
	if d.DealershipType == LocationOther {
		values[FieldDealershipTypeOther] = d.DealershipTypeOther
	}
	return values
}

func dataFromValues(v validation.Values) BookingFormData {
	return BookingFormData{
		DealershipName:      v.String(FieldDealershipName),
		DealershipNumber:    v.String(FieldDealershipNumber),
		ContactName:         v.String(FieldContactName),
		DealershipType:      LocationType(v.String(FieldDealershipType)),
		DealershipTypeOther: v.String(FieldDealershipTypeOther),
		Street:              v.String(FieldStreet),
		Suburb:              v.String(FieldSuburb),
		State:               State(v.String(FieldState)),
		Postcode:            v.String(FieldPostcode),
		VehicleMake:         v.String(FieldVehicleMake),
		VehicleModel:        v.String(FieldVehicleModel),
		VehicleYear:         v.String(FieldVehicleYear),
		StockRego:           v.String(FieldStockRego),
		VehicleColor:        v.String(FieldVehicleColor),
		PurchaseOrder:       v.String(FieldPurchaseOrder),
		ASAP:                v.Bool(FieldASAP),
		PreferredDate:       v.String(FieldPreferredDate),
		PreferredTime:       TimeOfDay(v.String(FieldPreferredTime)),
		HasCanopy:           v.Bool(FieldHasCanopy),
		IsHybrid:            v.Bool(FieldIsHybrid),
		Notes:               v.String(FieldNotes),
	}
}

// Result is either a valid typed record or a field → message map.
type Result struct {
	Valid  bool              `json:"valid"`
	Data   BookingFormData   `json:"data"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Validate checks raw values against the booking schema.
func Validate(values validation.Values) Result {
	res := bookingSchema.Validate(values)
	if !res.Valid {
		return Result{Valid: false, Errors: res.Errors}
	}
	return Result{Valid: true, Data: dataFromValues(res.Data)}
}

// Payload is what gets handed to a Submitter.
type Payload struct {
	Data     BookingFormData `json:"data"`
	Products []string        `json:"products"`
}

// NewPayload pairs validated data with the selected product codes in
// selection order.
func NewPayload(data BookingFormData, selected []catalog.Product) Payload {
	return Payload{
		Data:     data,
		Products: catalog.Codes(selected),
	}
}
