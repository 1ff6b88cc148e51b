package server

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"PlanetDashboard/internal/dashboard"
	"PlanetDashboard/internal/dataset"
	"PlanetDashboard/internal/domain"
	"PlanetDashboard/internal/features"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// Server exposes the dashboard over HTTP. It only reads the snapshot.
type Server struct {
	snapshot *dataset.Snapshot
	builder  *dashboard.Builder
	logger   *slog.Logger
	router   chi.Router
}

// New wires routes for the given snapshot.
func New(snap *dataset.Snapshot, builder *dashboard.Builder, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{snapshot: snap, builder: builder, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/", s.handleIndex)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/meta", s.handleMeta)
		r.Get("/dashboard", s.handleDashboard)
	})

	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

type indexData struct {
	RadiusMin   float64
	RadiusMax   float64
	StarSizes   []string
	Fields      []dashboard.Field
	Count       int
	SourceLink  string
	SourceLabel string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	lo, hi := s.snapshot.RadiusBounds()
	data := indexData{
		RadiusMin:   lo,
		RadiusMax:   hi,
		StarSizes:   features.Labels().StarSizes,
		Fields:      dashboard.Fields,
		Count:       s.snapshot.Len(),
		SourceLink:  dashboard.SourceLink,
		SourceLabel: dashboard.SourceLabel,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		s.logger.Error("render index", "error", err)
	}
}

type metaResponse struct {
	SnapshotID   string              `json:"snapshotId"`
	Source       string              `json:"source"`
	FetchedAt    time.Time           `json:"fetchedAt"`
	Records      int                 `json:"records"`
	RadiusMin    float64             `json:"radiusMin"`
	RadiusMax    float64             `json:"radiusMax"`
	Categories   features.Categories `json:"categories"`
	StatusColors map[string]string   `json:"statusColors"`
	Fields       []dashboard.Field   `json:"fields"`
}

func (s *Server) handleMeta(w http.ResponseWriter, _ *http.Request) {
	lo, hi := s.snapshot.RadiusBounds()
	colors := make(map[string]string, len(dashboard.StatusColors))
	for status, color := range dashboard.StatusColors {
		colors[status.String()] = color
	}

	writeJSON(w, http.StatusOK, metaResponse{
		SnapshotID:   s.snapshot.ID().String(),
		Source:       s.snapshot.Source(),
		FetchedAt:    s.snapshot.FetchedAt(),
		Records:      s.snapshot.Len(),
		RadiusMin:    lo,
		RadiusMax:    hi,
		Categories:   features.Labels(),
		StatusColors: colors,
		Fields:       dashboard.Fields,
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	q, page, err := parseQuery(r, s.snapshot.DefaultQuery())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	view := s.builder.Build(s.snapshot.Filter(q), page)
	w.Header().Set("X-Snapshot-ID", s.snapshot.ID().String())
	writeJSON(w, http.StatusOK, view)
}

// parseQuery reads rmin, rmax, star (repeated or comma separated) and page.
func parseQuery(r *http.Request, defaults dataset.Query) (dataset.Query, int, error) {
	values := r.URL.Query()
	q := dataset.Query{RadiusMin: defaults.RadiusMin, RadiusMax: defaults.RadiusMax}

	var err error
	if v := values.Get("rmin"); v != "" {
		if q.RadiusMin, err = parseBound("rmin", v); err != nil {
			return dataset.Query{}, 0, err
		}
	}
	if v := values.Get("rmax"); v != "" {
		if q.RadiusMax, err = parseBound("rmax", v); err != nil {
			return dataset.Query{}, 0, err
		}
	}

	for _, raw := range values["star"] {
		for _, label := range strings.Split(raw, ",") {
			label = strings.TrimSpace(label)
			if label == "" {
				continue
			}
			size, err := domain.ParseStarSize(label)
			if err != nil {
				return dataset.Query{}, 0, err
			}
			q.StarSizes = append(q.StarSizes, size)
		}
	}

	page := 1
	if v := values.Get("page"); v != "" {
		page, err = strconv.Atoi(v)
		if err != nil {
			return dataset.Query{}, 0, fmt.Errorf("invalid page %q", v)
		}
	}

	return q, page, nil
}

func parseBound(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"elapsed", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
