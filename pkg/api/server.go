// Package api serves a read-only HTTP catalog of a built style registry.
//
// Routes:
//
//	GET /names                        registered names in order
//	GET /groups                       all (prefix, suffix) groups
//	GET /groups/{prefix}?suffix=m     name → descriptor of one group
//	GET /styles/{key}                 one descriptor, e.g. /styles/lsA1m
//	GET /styles/{key}/gradient?n=5&mode=lighter
//
// Errors are returned as {"code": ..., "message": ...} with status 400 for
// invalid input and 404 for unknown groups and styles.
//
// The registry must not be modified once it is served.
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/plotstyles/pkg/color"
	"github.com/matzehuels/plotstyles/pkg/errors"
	"github.com/matzehuels/plotstyles/pkg/styles"
)

// Gradient modes accepted by the gradient route.
const (
	ModeLighter = "lighter"
	ModeDarker  = "darker"
	ModeBoth    = "both"
)

const (
	// DefaultGradientSize is used when the gradient route has no n parameter.
	DefaultGradientSize = 5

	// MaxGradientSize bounds n on the gradient route.
	MaxGradientSize = 256
)

// Server exposes a registry over HTTP.
type Server struct {
	reg      *styles.Registry
	adjuster color.Adjuster
	logger   *log.Logger
	router   chi.Router
}

// Option configures a [Server].
type Option func(*Server)

// WithAdjuster sets the colour adjuster for gradients. The default is [color.Blender].
func WithAdjuster(a color.Adjuster) Option {
	return func(s *Server) {
		if a != nil {
			s.adjuster = a
		}
	}
}

// WithLogger sets the request logger. By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a Server for reg.
func New(reg *styles.Registry, opts ...Option) *Server {
	s := &Server{
		reg:      reg,
		adjuster: color.Blender{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Get("/names", s.handleNames)
	r.Get("/groups", s.handleGroups)
	r.Get("/groups/{prefix}", s.handleGroup)
	r.Get("/styles/{key}", s.handleStyle)
	r.Get("/styles/{key}/gradient", s.handleGradient)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, errors.New(errors.ErrCodeNotFound, "no route for %s", r.URL.Path))
	})
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path,
			"status", ww.Status(), "duration", time.Since(start).Round(time.Microsecond))
	})
}

// =============================================================================
// Handlers
// =============================================================================

type groupInfo struct {
	Prefix string   `json:"prefix"`
	Suffix string   `json:"suffix"`
	Name   string   `json:"name"`
	Styles []string `json:"styles"`
}

func (s *Server) handleNames(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.reg.Names())
}

func (s *Server) handleGroups(w http.ResponseWriter, _ *http.Request) {
	out := []groupInfo{}
	for _, gk := range s.reg.Groups() {
		out = append(out, groupInfo{
			Prefix: gk.Prefix,
			Suffix: gk.Suffix,
			Name:   gk.String(),
			Styles: s.reg.GroupNames(gk.Prefix, gk.Suffix),
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGroup(w http.ResponseWriter, r *http.Request) {
	prefix := chi.URLParam(r, "prefix")
	suffix := r.URL.Query().Get("suffix")
	g, ok := s.reg.Group(prefix, suffix)
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeNotFound, "no group %q", prefix+suffix))
		return
	}
	s.writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleStyle(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	d, ok := s.reg.Style(key)
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeNotFound, "no style %q", key))
		return
	}
	s.writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleGradient(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	d, ok := s.reg.Style(key)
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeNotFound, "no style %q", key))
		return
	}

	n := DefaultGradientSize
	if v := r.URL.Query().Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid n %q", v))
			return
		}
		if parsed > MaxGradientSize {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "n must be at most %d", MaxGradientSize))
			return
		}
		n = parsed
	}

	var fn func(color.Adjuster, styles.Descriptor, int) ([]styles.Descriptor, error)
	switch mode := r.URL.Query().Get("mode"); mode {
	case "", ModeLighter:
		fn = styles.LighterStyles
	case ModeDarker:
		fn = styles.DarkerStyles
	case ModeBoth:
		fn = styles.LighterDarkerStyles
	default:
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "unknown mode %q", mode))
		return
	}

	out, err := fn(s.adjuster, d, n)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, out)
}

// =============================================================================
// Responses
// =============================================================================

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInternal, "":
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	s.writeJSON(w, status, errorBody{Code: code, Message: errors.UserMessage(err)})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response", "err", err)
	}
}
