package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"

	"github.com/Belphemur/ShowCatalog/internal/apperrors"
	"github.com/Belphemur/ShowCatalog/internal/config"
	"github.com/Belphemur/ShowCatalog/internal/metrics"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	view := &pageView{w: w}
	if err := view.render("index", http.StatusOK, pageData{}); err != nil {
		s.fail(w, r, "index", err, false)
	}
}

func (s *Server) handleSearchPage(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if err := s.browser.SubmitSearch(r.Context(), term, &pageView{w: w, term: term}); err != nil {
		s.fail(w, r, "shows", err, false)
	}
}

func (s *Server) handleEpisodesPage(w http.ResponseWriter, r *http.Request) {
	showID, ok := showIDParam(r)
	if !ok {
		s.badRequest(w, r, "episodes", false)
		return
	}
	view := &pageView{w: w, term: r.URL.Query().Get("q")}
	if err := s.browser.RequestEpisodes(r.Context(), showID, view); err != nil {
		s.fail(w, r, "episodes", err, false)
	}
}

func (s *Server) handleSearchAPI(w http.ResponseWriter, r *http.Request) {
	if err := s.browser.SubmitSearch(r.Context(), r.URL.Query().Get("q"), &jsonView{w: w}); err != nil {
		s.fail(w, r, "api_shows", err, true)
	}
}

func (s *Server) handleEpisodesAPI(w http.ResponseWriter, r *http.Request) {
	showID, ok := showIDParam(r)
	if !ok {
		s.badRequest(w, r, "api_episodes", true)
		return
	}
	if err := s.browser.RequestEpisodes(r.Context(), showID, &jsonView{w: w}); err != nil {
		s.fail(w, r, "api_episodes", err, true)
	}
}

// statusForError maps catalog failures to the status shown to the user.
func statusForError(err error) int {
	var upstream *apperrors.ErrUpstream
	switch {
	case errors.As(err, &upstream) && upstream.NotFound():
		return http.StatusNotFound
	case errors.Is(err, &apperrors.ErrUpstream{}), errors.Is(err, &apperrors.ErrNetworkFailure{}):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// userMessage is the error text shown on the page; internal details stay in the logs.
func userMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return "The catalog does not know this show."
	case http.StatusBadGateway:
		return "The show catalog is unavailable right now. Please try again."
	case http.StatusBadRequest:
		return "Invalid show identifier."
	default:
		return "Something went wrong while reading the show catalog."
	}
}

// fail renders the error state of a view and reports server-side failures to Sentry.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, view string, err error, asJSON bool) {
	status := statusForError(err)

	logger := config.GetLogger()
	logger.Error().Err(err).Str("view", view).Int("status", status).Msg("Failed to render view")

	if status >= http.StatusInternalServerError {
		if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
			hub.CaptureException(err)
		}
	}

	s.writeError(w, view, status, asJSON)
}

func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, view string, asJSON bool) {
	logger := config.GetLogger()
	logger.Warn().Str("id", r.URL.Path).Str("view", view).Msg("Invalid show identifier")
	s.writeError(w, view, http.StatusBadRequest, asJSON)
}

func (s *Server) writeError(w http.ResponseWriter, view string, status int, asJSON bool) {
	metrics.WebRendersTotal.WithLabelValues(view, http.StatusText(status)).Inc()

	if asJSON {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": userMessage(status)})
		return
	}

	// Written directly: a render metric for this view was already counted above
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, pageData{Error: userMessage(status)}); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Msg("Failed to render error page")
	}
}
