package booking

import (
	"fmt"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-bookingform/pkg/catalog"
)

const summaryTemplate = `{% autoescape off %}Booking for {{ data.DealershipName }}
Contact: {{ data.ContactName }} ({{ data.DealershipNumber }})
Location: {{ location }}
Address: {{ data.Street }}, {{ data.Suburb }} {{ data.State }} {{ data.Postcode }}
Vehicle: {{ data.VehicleYear }} {{ data.VehicleMake }} {{ data.VehicleModel }}{% if data.VehicleColor %} ({{ data.VehicleColor }}){% endif %}, stock/rego {{ data.StockRego }}
Purchase order: {{ data.PurchaseOrder }}
When: {% if data.ASAP %}as soon as possible{% elif data.PreferredDate %}{{ data.PreferredDate }}{% else %}no date preference{% endif %}, {{ timeLabel }}
{% if data.HasCanopy %}Vehicle has a canopy.
{% endif %}{% if data.IsHybrid %}Vehicle is a hybrid or EV.
{% endif %}{% if fitted %}Fitted products:
{% for item in fitted %}  - {{ item.Code }} {{ item.Name }}
{% endfor %}{% endif %}{% if supply %}Supply only:
{% for item in supply %}  - {{ item.Code }} {{ item.Name }}
{% endfor %}{% endif %}{% if not fitted and not supply %}No products selected.
{% endif %}{% if data.Notes %}Notes: {{ data.Notes }}
{% endif %}{% endautoescape %}`

var (
	summaryOnce sync.Once
	summaryTpl  *pongo2.Template
	summaryErr  error
)

// RenderSummary renders a plain text confirmation for payload. Products are
// split into fitted and supply-only items using c; codes missing from the
// catalog are listed as fitted with their code only.
func RenderSummary(payload Payload, c *catalog.Catalog) (string, error) {
	summaryOnce.Do(func() {
		summaryTpl, summaryErr = pongo2.FromString(summaryTemplate)
	})
	if summaryErr != nil {
		return "", fmt.Errorf("booking summary: compile: %w", summaryErr)
	}

	var fitted, supply []catalog.Product
	for _, code := range payload.Products {
		product, ok := c.Lookup(code)
		if !ok {
			product = catalog.Product{Code: code}
		}
		if product.SupplyOnly {
			supply = append(supply, product)
		} else {
			fitted = append(fitted, product)
		}
	}

	out, err := summaryTpl.Execute(pongo2.Context{
		"data":      payload.Data,
		"location":  locationSummary(payload.Data),
		"timeLabel": strings.ToLower(labelFor(timeLabels, string(payload.Data.PreferredTime))),
		"fitted":    fitted,
		"supply":    supply,
	})
	if err != nil {
		return "", fmt.Errorf("booking summary: render: %w", err)
	}
	return out, nil
}

func locationSummary(data BookingFormData) string {
	if data.DealershipType == LocationOther && data.DealershipTypeOther != "" {
		return data.DealershipTypeOther
	}
	return labelFor(locationLabels, string(data.DealershipType))
}

func labelFor(opts []Choice, value string) string {
	for _, opt := range opts {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}
