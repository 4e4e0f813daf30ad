package module

import "net/http"

// Router dispatches requests to mounted modules and native handlers.
type Router struct {
	mux     *http.ServeMux
	modules []*Module
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{
		mux: http.NewServeMux(),
	}
}

// HandleNative registers a handler directly on the root mux.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// Mount serves m at its prefix and everything beneath it.
func (r *Router) Mount(m *Module) {
	r.modules = append(r.modules, m)

	h := m.Handler()
	r.mux.Handle(m.Prefix(), h)
	r.mux.Handle(m.Prefix()+"/", h)
}

// Modules returns the mounted modules in mount order.
func (r *Router) Modules() []*Module {
	return r.modules
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
