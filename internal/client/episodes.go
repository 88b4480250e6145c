package client

import (
	"context"
	"fmt"

	"github.com/Belphemur/ShowCatalog/internal/apperrors"
	"github.com/Belphemur/ShowCatalog/internal/config"
	"github.com/Belphemur/ShowCatalog/internal/models"
)

// rawEpisode is a flat record of the episodes endpoint.
type rawEpisode struct {
	ID     *int    `json:"id"`
	Name   *string `json:"name"`
	Season *int    `json:"season"`
	Number *int    `json:"number"`
}

func episodesPath(showID int) string {
	return fmt.Sprintf("/shows/%d/episodes", showID)
}

// ListEpisodes fetches the episode list of a show. An unknown show yields
// whatever the catalog answers: an empty list or an ErrUpstream carrying 404.
func (c *client) ListEpisodes(ctx context.Context, showID int) ([]models.Episode, error) {
	logger := config.GetLogger()
	logger.Info().Int("showID", showID).Msg("Listing episodes")

	path := episodesPath(showID)

	var results *[]rawEpisode
	if err := c.fetchJSON(ctx, endpointEpisodes, path, nil, &results); err != nil {
		return nil, err
	}
	if results == nil {
		return nil, apperrors.NewShapeMismatch(path, "expected a JSON array, got null", nil)
	}

	episodes := make([]models.Episode, 0, len(*results))
	for i, raw := range *results {
		episode, err := toEpisode(raw)
		if err != nil {
			return nil, apperrors.NewShapeMismatch(path, fmt.Sprintf("entry %d: %s", i, err), nil)
		}
		episodes = append(episodes, episode)
	}

	logger.Debug().Int("showID", showID).Int("count", len(episodes)).Msg("Episode listing completed")
	return episodes, nil
}

func toEpisode(raw rawEpisode) (models.Episode, error) {
	switch {
	case raw.ID == nil:
		return models.Episode{}, fmt.Errorf("missing episode id")
	case raw.Name == nil:
		return models.Episode{}, fmt.Errorf("episode %d: missing name", *raw.ID)
	case raw.Season == nil:
		return models.Episode{}, fmt.Errorf("episode %d: missing season", *raw.ID)
	case raw.Number == nil:
		return models.Episode{}, fmt.Errorf("episode %d: missing number", *raw.ID)
	}
	return models.Episode{
		ID:     *raw.ID,
		Name:   *raw.Name,
		Season: *raw.Season,
		Number: *raw.Number,
	}, nil
}
