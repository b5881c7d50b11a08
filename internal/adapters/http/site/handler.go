// Package site serves the HTML dashboard: five views over the loaded dataset.
package site

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/okian/ipldash/internal/domain/model"
	"github.com/okian/ipldash/pkg/logger"
	"github.com/okian/ipldash/pkg/metrics"
)

// Error constants
var (
	ErrServe = errors.New("dashboard serve failed")
)

// Page render outcomes recorded as metrics.
const (
	outcomeOK          = "ok"
	outcomeUnavailable = "unavailable"
	outcomeNotFound    = "not_found"
)

// DatasetSource provides the loaded dataset or the reason it is missing.
type DatasetSource interface {
	Dataset() (*model.Dataset, error)
}

// Handler dispatches page requests to views.
type Handler struct {
	src    DatasetSource
	limits Limits
	logger logger.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLimits sets the range and default of the top-N sliders.
func WithLimits(l Limits) Option {
	return func(h *Handler) {
		if l.Min > 0 && l.Min <= l.Max {
			l.Default = min(max(l.Default, l.Min), l.Max)
			h.limits = l
		}
	}
}

// WithLogger sets a custom logger for the handler.
func WithLogger(l logger.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewHandler creates a page handler reading from src.
func NewHandler(src DatasetSource, opts ...Option) *Handler {
	h := &Handler{src: src, limits: DefaultLimits}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = logger.Get().Named("site")
	}
	return h
}

// Register attaches the dashboard pages and stylesheet to mux. Every GET
// not claimed by a more specific route ends up here.
func (h *Handler) Register(mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(FS())))
	mux.Handle("GET /", h)
}

// ServeHTTP renders the view at r.URL.Path.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := ParseQuery(r.URL.Query(), h.limits)

	v, ok := Lookup(r.URL.Path)
	if !ok {
		metrics.RecordPageRender("unknown", outcomeNotFound)
		h.serve(w, r, http.StatusNotFound, layout("Page not found", noView, q, notFound(r.URL.Path)))
		return
	}

	ds, err := h.src.Dataset()
	if err != nil {
		metrics.RecordPageRender(v.String(), outcomeUnavailable)
		h.logger.Warn(r.Context(), "dashboard unavailable",
			logger.String("view", v.String()), logger.Error(err))
		h.serve(w, r, http.StatusServiceUnavailable, layout(v.Label(), v, q, unavailable(err)))
		return
	}

	page := v.Render(ds, q)
	metrics.RecordPageRender(v.String(), outcomeOK)
	h.serve(w, r, http.StatusOK, layout(v.Label(), v, q, pageBody(page)))
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	templ.Handler(c,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			h.logger.Error(r.Context(), "page render failed", logger.Error(errors.Join(ErrServe, err)))
			return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}
