package vehicles

import "net/http"

// Component is a configured vehicle lookup endpoint ready to mount.
type Component struct {
	opts Options
}

// New returns a component using the embedded table unless WithTable is set.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Table is the make/model table the component serves.
func (c *Component) Table() (*Table, error) {
	if c != nil && c.opts.Table != nil {
		return c.opts.Table, nil
	}
	return DefaultTable()
}

// Handler answers make and model queries.
func (c *Component) Handler() http.Handler {
	return HandlerWithOptions(c.Options())
}

// RegisterRoutes mounts the component under basePath and reports the route.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, c.Options())
}
