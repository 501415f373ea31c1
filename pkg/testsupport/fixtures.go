// Package testsupport holds fixtures shared by package tests.
package testsupport

import (
	"testing"

	"github.com/goliatone/go-bookingform/pkg/catalog"
	"github.com/goliatone/go-bookingform/pkg/validation"
)

// ValidBookingValues returns raw form values that pass the booking schema.
// Callers may mutate the returned map.
func ValidBookingValues() validation.Values {
	return validation.Values{
		"dealershipName":   "Southside Toyota",
		"dealershipNumber": "03 9000 1234",
		"contactName":      "Sam Lee",
		"dealershipType":   "showroom",
		"street":           "12 Smith Street",
		"suburb":           "Fitzroy",
		"state":            "VIC",
		"postcode":         "3065",
		"vehicleMake":      "Toyota",
		"vehicleModel":     "Hilux",
		"vehicleYear":      "2024",
		"stockRego":        "ST12345",
		"vehicleColor":     "",
		"purchaseOrder":    "PO-7781",
		"asap":             false,
		"preferredDate":    "2026-11-02",
		"preferredTime":    "morning",
		"hasCanopy":        true,
		"isHybrid":         "off",
		"notes":            "",
	}
}

// Products is a small catalog used across tests.
func Products() []catalog.Product {
	return []catalog.Product{
		{Code: "DC100", Name: "Front Dash Cam", Category: catalog.CategoryDashCams, Featured: true},
		{Code: "DC200", Name: "Front and Rear Dash Cam", Category: catalog.CategoryDashCams},
		{Code: "PS400", Name: "Rear Parking Sensors", Category: catalog.CategoryParkingSensors},
		{Code: "TB1", Name: "Heavy Duty Tow Bar", Category: catalog.CategoryTowBars, Featured: true},
		{Code: "TB2", Name: "Standard Tow Bar", Category: catalog.CategoryTowBars},
		{Code: "FM1", Name: "Rubber Floor Mats", Category: catalog.CategoryFloorMats, SupplyOnly: true},
	}
}

// Catalog builds a catalog from Products, failing the test on error.
func Catalog(t testing.TB) *catalog.Catalog {
	t.Helper()

	c, err := catalog.New(Products())
	if err != nil {
		t.Fatalf("testsupport: build catalog: %v", err)
	}
	return c
}

// MustCatalog builds a catalog from Products and panics on error, for
// callers without a testing.TB such as examples.
func MustCatalog() *catalog.Catalog {
	c, err := catalog.New(Products())
	if err != nil {
		panic(err)
	}
	return c
}
