package web

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/Belphemur/ShowCatalog/internal/metrics"
	"github.com/Belphemur/ShowCatalog/internal/models"
	"github.com/Belphemur/ShowCatalog/internal/parser"
)

// showItem is a Show prepared for the page: the summary is reduced to its text.
type showItem struct {
	ID      int
	Name    string
	Summary string
	Image   string
}

type pageData struct {
	Term         string
	Shows        []showItem
	ShowID       int
	Episodes     []models.Episode
	ShowEpisodes bool
	Error        string
}

// pageView renders the HTML page into an http.ResponseWriter.
// It implements services.ShowsView and services.EpisodesView.
type pageView struct {
	w    http.ResponseWriter
	term string
}

func (v *pageView) RenderShows(term string, shows []models.Show) error {
	items := make([]showItem, 0, len(shows))
	for _, s := range shows {
		items = append(items, showItem{
			ID:      s.ID,
			Name:    s.Name,
			Summary: parser.SummaryText(s.Summary),
			Image:   s.Image,
		})
	}
	// The episodes area stays hidden after a search
	return v.render("shows", http.StatusOK, pageData{Term: term, Shows: items})
}

func (v *pageView) RenderEpisodes(showID int, episodes []models.Episode) error {
	return v.render("episodes", http.StatusOK, pageData{
		Term:         v.term,
		ShowID:       showID,
		Episodes:     episodes,
		ShowEpisodes: true,
	})
}

func (v *pageView) render(view string, status int, data pageData) error {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return err
	}
	v.w.Header().Set("Content-Type", "text/html; charset=utf-8")
	v.w.WriteHeader(status)
	_, err := v.w.Write(buf.Bytes())
	metrics.WebRendersTotal.WithLabelValues(view, http.StatusText(status)).Inc()
	return err
}

// jsonView writes the records as a JSON array.
type jsonView struct {
	w http.ResponseWriter
}

func (v *jsonView) RenderShows(_ string, shows []models.Show) error {
	return v.write("api_shows", shows)
}

func (v *jsonView) RenderEpisodes(_ int, episodes []models.Episode) error {
	return v.write("api_episodes", episodes)
}

func (v *jsonView) write(view string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	v.w.Header().Set("Content-Type", "application/json")
	v.w.WriteHeader(http.StatusOK)
	_, err = v.w.Write(data)
	metrics.WebRendersTotal.WithLabelValues(view, http.StatusText(http.StatusOK)).Inc()
	return err
}
