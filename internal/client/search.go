package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Belphemur/ShowCatalog/internal/apperrors"
	"github.com/Belphemur/ShowCatalog/internal/config"
	"github.com/Belphemur/ShowCatalog/internal/models"
)

const searchPath = "/search/shows"

// rawSearchResult is one match of the search endpoint. Unlike episodes, each
// match is wrapped in a "show" envelope next to its relevance score.
type rawSearchResult struct {
	Score float64  `json:"score"`
	Show  *rawShow `json:"show"`
}

type rawShow struct {
	ID      *int      `json:"id"`
	Name    *string   `json:"name"`
	Summary *string   `json:"summary"`
	Image   *rawImage `json:"image"` // null when the catalog has no artwork
}

type rawImage struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// medium returns the medium-sized image URL, if the catalog provided one.
func (i *rawImage) medium() (string, bool) {
	if i == nil || i.Medium == "" {
		return "", false
	}
	return i.Medium, true
}

// SearchShows queries the catalog for shows matching term.
func (c *client) SearchShows(ctx context.Context, term string) ([]models.Show, error) {
	logger := config.GetLogger()
	logger.Info().Str("term", term).Msg("Searching shows")

	var results *[]rawSearchResult
	query := url.Values{"q": []string{term}}
	if err := c.fetchJSON(ctx, endpointSearch, searchPath, query, &results); err != nil {
		return nil, err
	}
	if results == nil {
		return nil, apperrors.NewShapeMismatch(searchPath, "expected a JSON array, got null", nil)
	}

	shows, err := toShows(*results)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("term", term).Int("count", len(shows)).Msg("Search completed")
	return shows, nil
}

// toShows unwraps each envelope into a Show, keeping catalog order.
func toShows(results []rawSearchResult) ([]models.Show, error) {
	shows := make([]models.Show, 0, len(results))
	for i, r := range results {
		show, err := toShow(r)
		if err != nil {
			return nil, apperrors.NewShapeMismatch(searchPath, fmt.Sprintf("entry %d: %s", i, err), nil)
		}
		shows = append(shows, show)
	}
	return shows, nil
}

func toShow(r rawSearchResult) (models.Show, error) {
	if r.Show == nil {
		return models.Show{}, fmt.Errorf("missing show envelope")
	}
	raw := r.Show
	if raw.ID == nil {
		return models.Show{}, fmt.Errorf("missing show id")
	}
	if raw.Name == nil {
		return models.Show{}, fmt.Errorf("show %d: missing name", *raw.ID)
	}

	show := models.Show{
		ID:    *raw.ID,
		Name:  *raw.Name,
		Image: models.PlaceholderImageURL,
	}
	if raw.Summary != nil {
		show.Summary = *raw.Summary
	}
	if medium, ok := raw.Image.medium(); ok {
		show.Image = medium
	}
	return show, nil
}
