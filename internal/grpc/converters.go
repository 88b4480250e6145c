package grpc

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Belphemur/ShowCatalog/internal/models"
	"github.com/Belphemur/ShowCatalog/internal/parser"
)

// convertShowToProto converts a models.Show to a struct value.
// summary_text carries the summary without markup.
func convertShowToProto(show models.Show) *structpb.Value {
	return structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
		"id":           structpb.NewNumberValue(float64(show.ID)),
		"name":         structpb.NewStringValue(show.Name),
		"summary":      structpb.NewStringValue(show.Summary),
		"summary_text": structpb.NewStringValue(parser.SummaryText(show.Summary)),
		"image":        structpb.NewStringValue(show.Image),
	}})
}

// convertEpisodeToProto converts a models.Episode to a struct value
func convertEpisodeToProto(episode models.Episode) *structpb.Value {
	return structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
		"id":     structpb.NewNumberValue(float64(episode.ID)),
		"name":   structpb.NewStringValue(episode.Name),
		"season": structpb.NewNumberValue(float64(episode.Season)),
		"number": structpb.NewNumberValue(float64(episode.Number)),
	}})
}

// ShowsFromProto decodes a Search response back into shows.
func ShowsFromProto(list *structpb.ListValue) ([]models.Show, error) {
	shows := make([]models.Show, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		fields := v.GetStructValue().GetFields()
		if fields == nil {
			return nil, fmt.Errorf("show %d: not a struct", i)
		}
		shows = append(shows, models.Show{
			ID:      int(fields["id"].GetNumberValue()),
			Name:    fields["name"].GetStringValue(),
			Summary: fields["summary"].GetStringValue(),
			Image:   fields["image"].GetStringValue(),
		})
	}
	return shows, nil
}

// EpisodesFromProto decodes a ListEpisodes response back into episodes.
func EpisodesFromProto(list *structpb.ListValue) ([]models.Episode, error) {
	episodes := make([]models.Episode, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		fields := v.GetStructValue().GetFields()
		if fields == nil {
			return nil, fmt.Errorf("episode %d: not a struct", i)
		}
		episodes = append(episodes, models.Episode{
			ID:     int(fields["id"].GetNumberValue()),
			Name:   fields["name"].GetStringValue(),
			Season: int(fields["season"].GetNumberValue()),
			Number: int(fields["number"].GetNumberValue()),
		})
	}
	return episodes, nil
}
