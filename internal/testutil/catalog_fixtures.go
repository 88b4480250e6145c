package testutil

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/Belphemur/ShowCatalog/internal/models"
)

// StringPtr is a helper for creating *string values in tests
func StringPtr(v string) *string {
	return &v
}

// ShowFixture describes one match of the catalog search endpoint.
type ShowFixture struct {
	ID      int
	Name    string
	Summary *string // nil renders "summary": null
	Medium  *string // nil renders "image": null
	Score   float64
}

// GenerateSearchJSON renders a search response the way TVmaze does: an array of
// {score, show} envelopes with extra fields the client is expected to ignore.
func GenerateSearchJSON(shows []ShowFixture) string {
	envelopes := make([]map[string]any, 0, len(shows))
	for _, s := range shows {
		show := map[string]any{
			"id":       s.ID,
			"url":      "https://www.tvmaze.com/shows/" + strconv.Itoa(s.ID),
			"name":     s.Name,
			"type":     "Scripted",
			"language": "English",
			"genres":   []string{"Drama"},
			"status":   "Ended",
			"summary":  nil,
			"image":    nil,
		}
		if s.Summary != nil {
			show["summary"] = *s.Summary
		}
		if s.Medium != nil {
			show["image"] = map[string]string{
				"medium":   *s.Medium,
				"original": strings.Replace(*s.Medium, "medium", "original", 1),
			}
		}
		envelopes = append(envelopes, map[string]any{"score": s.Score, "show": show})
	}
	return mustJSON(envelopes)
}

// GenerateEpisodesJSON renders an episodes response with the extra fields TVmaze sends.
func GenerateEpisodesJSON(episodes []models.Episode) string {
	records := make([]map[string]any, 0, len(episodes))
	for _, e := range episodes {
		records = append(records, map[string]any{
			"id":      e.ID,
			"url":     "https://www.tvmaze.com/episodes/" + strconv.Itoa(e.ID),
			"name":    e.Name,
			"season":  e.Season,
			"number":  e.Number,
			"type":    "regular",
			"airdate": "2012-04-15",
			"runtime": 30,
			"summary": "<p>An episode.</p>",
		})
	}
	return mustJSON(records)
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}

// FakeCatalog is an http.Handler serving canned search and episode responses.
// Unknown terms answer an empty array, unknown shows answer 404 like TVmaze.
type FakeCatalog struct {
	Searches map[string]string // term -> response body
	Episodes map[int]string    // show id -> response body
	Status   int               // when non-zero, every request answers this status

	mu       sync.Mutex
	requests []string
}

func (f *FakeCatalog) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.URL.RequestURI())
	f.mu.Unlock()

	if f.Status != 0 {
		w.WriteHeader(f.Status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")

	if r.URL.Path == "/search/shows" {
		body, ok := f.Searches[r.URL.Query().Get("q")]
		if !ok {
			body = "[]"
		}
		_, _ = w.Write([]byte(body))
		return
	}

	if rest, ok := strings.CutPrefix(r.URL.Path, "/shows/"); ok {
		if idText, ok := strings.CutSuffix(rest, "/episodes"); ok {
			id, err := strconv.Atoi(idText)
			if body, found := f.Episodes[id]; err == nil && found {
				_, _ = w.Write([]byte(body))
				return
			}
		}
	}

	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(`{"name":"Not Found","message":"","code":0,"status":404}`))
}

// Requests returns the request URIs received so far.
func (f *FakeCatalog) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}
