package photoserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/five82/gallery/internal/photos"
)

// Server answers the photo API from fixtures.
type Server struct {
	cfg    Config
	list   []photos.PhotoDTO
	byID   map[int]photos.PhotoDTO
	router chi.Router
	logger zerolog.Logger
}

// New builds a Server over fx. The fixtures are not modified afterwards.
func New(cfg Config, fx Fixtures, logger zerolog.Logger) *Server {
	list := make([]photos.PhotoDTO, len(fx.Photos))
	copy(list, fx.Photos)
	byID := make(map[int]photos.PhotoDTO, len(list))
	for _, p := range list {
		byID[p.ID] = p
	}

	s := &Server{
		cfg:    cfg,
		list:   list,
		byID:   byID,
		router: chi.NewRouter(),
		logger: logger,
	}
	s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(s.logger))
	if s.cfg.Latency > 0 {
		r.Use(delay(s.cfg.Latency))
	}
	if s.cfg.FailStatus != 0 {
		r.Use(forceStatus(s.cfg.FailStatus))
	}

	r.Get("/photos", s.handleListPhotos)
	r.Get("/photos/{id}", s.handleGetPhoto)
}

func (s *Server) handleListPhotos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.list)
}

func (s *Server) handleGetPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be an integer")
		return
	}
	photo, ok := s.byID[id]
	if !ok {
		writeError(w, http.StatusNotFound, "photo not found")
		return
	}
	writeJSON(w, http.StatusOK, photo)
}

func delay(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			timer := time.NewTimer(d)
			defer timer.Stop()
			select {
			case <-timer.C:
				next.ServeHTTP(w, r)
			case <-r.Context().Done():
			}
		})
	}
}

func forceStatus(status int) func(http.Handler) http.Handler {
	return func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, status, http.StatusText(status))
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
