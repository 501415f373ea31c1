package catalog

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New([]Product{
		{Code: "DC100", Name: "Front Dash Cam", Category: CategoryDashCams},
		{Code: "DC200", Name: "Dual Dash Cam", Category: CategoryDashCams, Featured: true},
		{Code: "RCAM1", Name: "Reverse Camera", Category: CategoryParkingSensors},
		{Code: "DC300", Name: "Cloud Dash Cam", Category: CategoryDashCams},
		{Code: "DC400", Name: "Fleet Dash Cam", Category: CategoryDashCams, Featured: true},
		{Code: "TB1", Name: "Tow Bar", Category: CategoryTowBars},
		{Code: "CAM1", Name: "Side Mirror Unit", Category: CategoryParkingSensors},
		{Code: "CAM2", Name: "Roof Unit", Category: CategoryParkingSensors},
		{Code: "CAM3", Name: "Boot Unit", Category: CategoryParkingSensors},
		{Code: "CAM4", Name: "Cargo Unit", Category: CategoryParkingSensors},
		{Code: "CAM5", Name: "Tray Unit", Category: CategoryParkingSensors},
	})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	return c
}

func codesOf(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Code)
	}
	return out
}

func TestNew_RejectsInvalidEntries(t *testing.T) {
	cases := map[string][]Product{
		"duplicate": {
			{Code: "A", Name: "a", Category: CategoryTowBars},
			{Code: "A", Name: "b", Category: CategoryTowBars},
		},
		"empty code": {{Code: " ", Name: "x", Category: CategoryTowBars}},
		"category":   {{Code: "A", Name: "x", Category: "spoilers"}},
	}
	for name, products := range cases {
		if _, err := New(products); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestFilterBySearch_CaseInsensitiveCappedAndExcluding(t *testing.T) {
	c := testCatalog(t)

	got := codesOf(FilterBySearch("cam", c, nil))
	want := []string{"DC100", "DC200", "RCAM1", "DC300", "DC400", "CAM1", "CAM2", "CAM3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("search mismatch (-want +got):\n%s", diff)
	}

	got = codesOf(FilterBySearch("CAM", c, []string{"DC100", "CAM2"}))
	want = []string{"DC200", "RCAM1", "DC300", "DC400", "CAM1", "CAM3", "CAM4", "CAM5"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("search with exclusions mismatch (-want +got):\n%s", diff)
	}

	for _, p := range FilterBySearch("cam", c, nil) {
		if !strings.Contains(strings.ToLower(p.Name+p.Code), "cam") {
			t.Fatalf("unexpected match %#v", p)
		}
	}
}

func TestFilterBySearch_KeepsSpacesInQuery(t *testing.T) {
	c := testCatalog(t)

	got := codesOf(FilterBySearch(" cam", c, nil))
	want := []string{"DC100", "DC200", "RCAM1", "DC300", "DC400"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("search mismatch (-want +got):\n%s", diff)
	}

	if got := FilterBySearch("CAM ", c, nil); len(got) != 0 {
		t.Fatalf("expected trailing space to be matched literally, got %#v", codesOf(got))
	}
}

func TestFilterBySearch_MatchesAcrossNameAndCode(t *testing.T) {
	c := testCatalog(t)

	// "bartb1" spans the end of the name and the start of the code.
	got := codesOf(FilterBySearch("barTB1", c, nil))
	if diff := cmp.Diff([]string{"TB1"}, got); diff != "" {
		t.Fatalf("search mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterBySearch_BlankQueryReturnsNothing(t *testing.T) {
	c := testCatalog(t)
	if got := FilterBySearch("   ", c, nil); len(got) != 0 {
		t.Fatalf("expected no results, got %#v", got)
	}
	if got := FilterBySearch("cam", nil, nil); len(got) != 0 {
		t.Fatalf("expected no results for nil catalog, got %#v", got)
	}
}

func TestFilterByCategory_FeaturedFirstStable(t *testing.T) {
	c := testCatalog(t)

	got := codesOf(FilterByCategory(CategoryDashCams, c, nil))
	want := []string{"DC200", "DC400", "DC100", "DC300"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("category mismatch (-want +got):\n%s", diff)
	}

	got = codesOf(FilterByCategory(CategoryDashCams, c, []string{"DC400", "DC100"}))
	want = []string{"DC200", "DC300"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("category with exclusions mismatch (-want +got):\n%s", diff)
	}

	if got := FilterByCategory(CategoryFloorMats, c, nil); len(got) != 0 {
		t.Fatalf("expected empty category, got %#v", got)
	}
}

func TestAddProduct_IdempotentAndSilentOnUnknown(t *testing.T) {
	c := testCatalog(t)

	var selected []Product
	selected = AddProduct("DC100", c, selected)
	selected = AddProduct("DC100", c, selected)
	selected = AddProduct("NOPE", c, selected)
	selected = AddProduct("TB1", c, selected)

	if diff := cmp.Diff([]string{"DC100", "TB1"}, Codes(selected)); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
}

func TestAddProduct_DoesNotMutateInput(t *testing.T) {
	c := testCatalog(t)

	base := AddProduct("DC100", c, nil)
	base = base[:1:1]
	next := AddProduct("TB1", c, base)
	if len(base) != 1 || len(next) != 2 {
		t.Fatalf("unexpected lengths base=%d next=%d", len(base), len(next))
	}
}

func TestRemoveProduct(t *testing.T) {
	c := testCatalog(t)
	selected := AddProduct("TB1", c, AddProduct("DC100", c, nil))

	unchanged := RemoveProduct("NOPE", selected)
	if diff := cmp.Diff(selected, unchanged); diff != "" {
		t.Fatalf("remove of absent code changed selection (-want +got):\n%s", diff)
	}

	after := RemoveProduct("DC100", selected)
	if diff := cmp.Diff([]string{"TB1"}, Codes(after)); diff != "" {
		t.Fatalf("remove mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"DC100", "TB1"}, Codes(selected)); diff != "" {
		t.Fatalf("input selection mutated (-want +got):\n%s", diff)
	}
}

func TestLoad_JSONAndYAML(t *testing.T) {
	jsonDoc := `{"products":[{"code":"A1","name":"Alpha","category":"tow_bars","featured":true}]}`
	c, err := Load(strings.NewReader(jsonDoc))
	if err != nil {
		t.Fatalf("load json: %v", err)
	}
	if p, ok := c.Lookup("A1"); !ok || !p.Featured {
		t.Fatalf("unexpected json product %#v", p)
	}

	yamlDoc := "products:\n  - code: B1\n    name: Beta\n    category: floor_mats\n    supplyOnly: true\n"
	c, err = Load(strings.NewReader(yamlDoc))
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	if p, ok := c.Lookup("B1"); !ok || !p.SupplyOnly {
		t.Fatalf("unexpected yaml product %#v", p)
	}

	if _, err := Load(strings.NewReader("  ")); err == nil {
		t.Fatalf("expected error for empty document")
	}
}

func TestDefault_EmbeddedCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	if _, ok := c.Lookup("DC100"); !ok {
		t.Fatalf("expected DC100 in default catalog")
	}
	for _, category := range Categories() {
		if len(FilterByCategory(category, c, nil)) == 0 {
			t.Fatalf("expected products in category %s", category)
		}
	}
}
