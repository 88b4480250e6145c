package services

import (
	"context"

	"github.com/Belphemur/ShowCatalog/internal/config"
	"github.com/Belphemur/ShowCatalog/internal/models"
)

// Catalog is the subset of the catalog client the browser needs.
type Catalog interface {
	SearchShows(ctx context.Context, term string) ([]models.Show, error)
	ListEpisodes(ctx context.Context, showID int) ([]models.Episode, error)
}

// DefaultShowBrowser implements ShowBrowser on top of a Catalog.
// It keeps no state between calls: concurrent or superseded requests each
// render their own result.
type DefaultShowBrowser struct {
	catalog Catalog
}

// NewShowBrowser creates a ShowBrowser backed by catalog
func NewShowBrowser(catalog Catalog) ShowBrowser {
	return &DefaultShowBrowser{catalog: catalog}
}

// SubmitSearch runs the search and renders the shows. Catalog errors are
// returned unchanged and the view is left untouched.
func (b *DefaultShowBrowser) SubmitSearch(ctx context.Context, term string, view ShowsView) error {
	shows, err := b.catalog.SearchShows(ctx, term)
	if err != nil {
		return err
	}

	logger := config.GetLogger()
	logger.Debug().Str("term", term).Int("count", len(shows)).Msg("Rendering shows")

	return view.RenderShows(term, shows)
}

// RequestEpisodes lists the episodes and renders them. Catalog errors are
// returned unchanged and the view is left untouched.
func (b *DefaultShowBrowser) RequestEpisodes(ctx context.Context, showID int, view EpisodesView) error {
	episodes, err := b.catalog.ListEpisodes(ctx, showID)
	if err != nil {
		return err
	}

	logger := config.GetLogger()
	logger.Debug().Int("showID", showID).Int("count", len(episodes)).Msg("Rendering episodes")

	return view.RenderEpisodes(showID, episodes)
}
