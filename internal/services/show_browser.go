package services

import (
	"context"

	"github.com/Belphemur/ShowCatalog/internal/models"
)

// ShowsView renders the result of a search. Implementations hide any
// previously displayed episode list.
type ShowsView interface {
	RenderShows(term string, shows []models.Show) error
}

// EpisodesView renders the episode list of the show the user selected.
type EpisodesView interface {
	RenderEpisodes(showID int, episodes []models.Episode) error
}

// ShowBrowser handles the two navigation events of the catalog UI: a submitted
// search and a request to view the episodes of a show.
type ShowBrowser interface {
	// SubmitSearch looks up term and hands the matching shows to view.
	SubmitSearch(ctx context.Context, term string, view ShowsView) error

	// RequestEpisodes lists the episodes of showID and hands them to view.
	RequestEpisodes(ctx context.Context, showID int, view EpisodesView) error
}
