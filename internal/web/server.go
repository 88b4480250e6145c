package web

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Belphemur/ShowCatalog/internal/config"
	"github.com/Belphemur/ShowCatalog/internal/services"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Server serves the catalog web page and its JSON API.
type Server struct {
	router  chi.Router
	handler http.Handler
	browser services.ShowBrowser
}

// NewServer wires the routes of the web UI around browser.
func NewServer(browser services.ShowBrowser) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		browser: browser,
	}
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger)
	s.router.Use(middleware.Recoverer)
	s.routes()

	// Sentry is a no-op until sentry.Init has been called with a DSN
	s.handler = sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle(s.router)
	return s
}

func (s *Server) routes() {
	s.router.Get("/", s.handleIndex)
	s.router.Get("/search", s.handleSearchPage)
	s.router.Get("/shows/{id}/episodes", s.handleEpisodesPage)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/search", s.handleSearchAPI)
		r.Get("/shows/{id}/episodes", s.handleEpisodesAPI)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// NewHTTPServer wraps the web UI in an http.Server listening on addr.
func NewHTTPServer(addr string, browser services.ShowBrowser) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           NewServer(browser),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func showIDParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		logger := config.GetLogger()
		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
