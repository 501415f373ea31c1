package vehicles

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
)

// Mux mounts a handler on a pattern; *http.ServeMux satisfies it.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

var errNilMux = errors.New("vehicles: missing mux")

// MountPath is the path vehicle lookups are served from under basePath.
func MountPath(basePath string, fns ...OptionFn) string {
	return joinRoute(basePath, NewOptions(fns...).RoutePath)
}

// RegisterRoutes mounts the vehicle lookup endpoint under basePath.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

// RegisterRoutesWithOptions mounts the endpoint using opts. The vehicle table
// is resolved here, so a broken data file fails at startup rather than on the
// first booking request.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (string, error) {
	if mux == nil {
		return "", errNilMux
	}
	opts = NewOptions(func(o *Options) { *o = opts })
	if opts.Table == nil {
		table, err := DefaultTable()
		if err != nil {
			return "", fmt.Errorf("vehicles: load table: %w", err)
		}
		opts.Table = table
	}

	route := joinRoute(basePath, opts.RoutePath)
	mux.Handle(route, HandlerWithOptions(opts))
	return route, nil
}

// joinRoute always yields a rooted, cleaned path: stray or doubled slashes
// in configuration collapse.
func joinRoute(basePath, routePath string) string {
	return path.Join("/", strings.TrimSpace(basePath), strings.TrimSpace(routePath))
}
