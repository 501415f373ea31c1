package vehicles

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMountPath_JoinsBasePath(t *testing.T) {
	if got := MountPath("/booking"); got != "/booking/api/vehicles" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("booking/", WithRoutePath("cars")); got != "/booking/cars" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath(""); got != "/api/vehicles" {
		t.Fatalf("unexpected mount path: %q", got)
	}
}

func TestComponent_RegisterRoutes(t *testing.T) {
	mux := http.NewServeMux()
	component := New(WithTable(loadSample(t)))

	pattern, err := component.RegisterRoutes(mux, "/booking")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pattern != "/booking/api/vehicles" {
		t.Fatalf("unexpected registered pattern: %q", pattern)
	}

	req := httptest.NewRequest(http.MethodGet, pattern+"?make=mazda", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if _, err := RegisterRoutes(nil, "/"); err == nil {
		t.Fatalf("expected error for nil mux")
	}
}

func TestMountPath_CleansSlashes(t *testing.T) {
	if got := MountPath("//booking//", WithRoutePath("/api//vehicles/")); got != "/booking/api/vehicles" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath(" / "); got != "/api/vehicles" {
		t.Fatalf("unexpected mount path: %q", got)
	}
}

func TestRegisterRoutes_ServesEmbeddedTable(t *testing.T) {
	mux := http.NewServeMux()
	route, err := RegisterRoutes(mux, "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, route+"?q=toy", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Toyota") {
		t.Fatalf("expected Toyota in response, got %s", rec.Body.String())
	}
}
