package booking

import (
	"github.com/goliatone/go-bookingform/pkg/validation"
)

// Field names used as keys in raw values, error maps and the contact cache.
const (
	FieldDealershipName      = "dealershipName"
	FieldDealershipNumber    = "dealershipNumber"
	FieldContactName         = "contactName"
	FieldDealershipType      = "dealershipType"
	FieldDealershipTypeOther = "dealershipTypeOther"
	FieldStreet              = "street"
	FieldSuburb              = "suburb"
	FieldState               = "state"
	FieldPostcode            = "postcode"
	FieldVehicleMake         = "vehicleMake"
	FieldVehicleModel        = "vehicleModel"
	FieldVehicleYear         = "vehicleYear"
	FieldStockRego           = "stockRego"
	FieldVehicleColor        = "vehicleColor"
	FieldPurchaseOrder       = "purchaseOrder"
	FieldASAP                = "asap"
	FieldPreferredDate       = "preferredDate"
	FieldPreferredTime       = "preferredTime"
	FieldHasCanopy           = "hasCanopy"
	FieldIsHybrid            = "isHybrid"
	FieldNotes               = "notes"
)

const (
	numbersOnly       = `^[0-9]*$`
	numbersAndSpaces  = `^[0-9 ]*$`
	isoDate           = `^[0-9]{4}-[0-9]{2}-[0-9]{2}$`
	dateLayout        = "2006-01-02"
	minContactNumber  = 8
	maxContactNumber  = 20
	minLocationDetail = 3
	maxNotes          = 500
)

var bookingSchema = validation.MustSchema(
	validation.Field{
		Name:  FieldDealershipName,
		Trim:  true,
		Rules: []validation.Rule{validation.Required("Please enter the name of your dealership.")},
	},
	validation.Field{
		Name: FieldDealershipNumber,
		Trim: true,
		Rules: []validation.Rule{
			validation.Pattern(numbersAndSpaces, "Please enter only numbers and/or spaces."),
			validation.MinLength(minContactNumber, "Please enter a contact number for the booking."),
			validation.MaxLength(maxContactNumber, "That contact number is too long."),
		},
	},
	validation.Field{
		Name:  FieldContactName,
		Trim:  true,
		Rules: []validation.Rule{validation.Required("Please enter the name of the contact person.")},
	},
	validation.Field{
		Name:  FieldDealershipType,
		Rules: []validation.Rule{validation.OneOf(locationValues(), "Please choose where the vehicle is located.")},
	},
	validation.Field{
		Name:      FieldDealershipTypeOther,
		Trim:      true,
		Normalize: sanitizeText,
		When: func(v validation.Values) bool {
			return LocationType(v.String(FieldDealershipType)) == LocationOther
		},
		Rules: []validation.Rule{
			validation.MinLength(minLocationDetail, "Please describe where the vehicle is located."),
		},
	},
	validation.Field{
		Name:  FieldStreet,
		Trim:  true,
		Rules: []validation.Rule{validation.Required("Please enter the street address.")},
	},
	validation.Field{
		Name:  FieldSuburb,
		Trim:  true,
		Rules: []validation.Rule{validation.Required("Please enter the suburb.")},
	},
	validation.Field{
		Name:  FieldState,
		Trim:  true,
		Rules: []validation.Rule{validation.OneOf(stateValues(), "Please select a state.")},
	},
	validation.Field{
		Name: FieldPostcode,
		Trim: true,
		Rules: []validation.Rule{
			validation.Pattern(numbersOnly, "Postcodes contain numbers only."),
			validation.ExactLength(4, "Please enter a 4 digit postcode."),
		},
	},
	validation.Field{
		Name:  FieldVehicleMake,
		Trim:  true,
		Rules: []validation.Rule{validation.Required("Please enter the vehicle make.")},
	},
	validation.Field{
		Name:  FieldVehicleModel,
		Trim:  true,
		Rules: []validation.Rule{validation.Required("Please enter the vehicle model.")},
	},
	validation.Field{
		Name: FieldVehicleYear,
		Trim: true,
		Rules: []validation.Rule{
			validation.Pattern(numbersOnly, "Please enter a 4 digit year."),
			validation.ExactLength(4, "Please enter a 4 digit year."),
		},
	},
	validation.Field{
		Name:  FieldStockRego,
		Trim:  true,
		Rules: []validation.Rule{validation.Required("Please enter the stock number, rego or VIN.")},
	},
	validation.Field{
		Name:     FieldVehicleColor,
		Trim:     true,
		Optional: true,
	},
	validation.Field{
		Name:  FieldPurchaseOrder,
		Trim:  true,
		Rules: []validation.Rule{validation.Required("Please enter the purchase order number.")},
	},
	validation.Field{
		Name:        FieldASAP,
		Kind:        validation.KindBoolean,
		TypeMessage: "Please tell us if the booking is urgent.",
	},
	validation.Field{
		Name:     FieldPreferredDate,
		Trim:     true,
		Optional: true,
		Rules: []validation.Rule{
			validation.Pattern(isoDate, "Please pick a valid date."),
			validation.Date(dateLayout, "Please pick a valid date."),
		},
	},
	validation.Field{
		Name:  FieldPreferredTime,
		Rules: []validation.Rule{validation.OneOf(timeValues(), "Please choose a preferred time.")},
	},
	validation.Field{
		Name:        FieldHasCanopy,
		Kind:        validation.KindBoolean,
		TypeMessage: "Please tell us if the vehicle has a canopy.",
	},
	validation.Field{
		Name:        FieldIsHybrid,
		Kind:        validation.KindBoolean,
		TypeMessage: "Please tell us if the vehicle is a hybrid or EV.",
	},
	validation.Field{
		Name:      FieldNotes,
		Trim:      true,
		Normalize: sanitizeText,
		Optional:  true,
		Rules:     []validation.Rule{validation.MaxLength(maxNotes, "Please keep notes under 500 characters.")},
	},
)

// Schema returns the booking form validation schema.
func Schema() *validation.Schema {
	return bookingSchema
}
