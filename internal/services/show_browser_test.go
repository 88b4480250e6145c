package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/Belphemur/ShowCatalog/internal/apperrors"
	"github.com/Belphemur/ShowCatalog/internal/client"
	"github.com/Belphemur/ShowCatalog/internal/config"
	"github.com/Belphemur/ShowCatalog/internal/models"
	"github.com/Belphemur/ShowCatalog/internal/testutil"
)

type recordingView struct {
	term     string
	shows    []models.Show
	showID   int
	episodes []models.Episode
	calls    int
	err      error
}

func (v *recordingView) RenderShows(term string, shows []models.Show) error {
	v.calls++
	v.term = term
	v.shows = shows
	return v.err
}

func (v *recordingView) RenderEpisodes(showID int, episodes []models.Episode) error {
	v.calls++
	v.showID = showID
	v.episodes = episodes
	return v.err
}

func newBrowser(t *testing.T, fake *testutil.FakeCatalog) ShowBrowser {
	t.Helper()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	c := client.NewClient(&config.Config{CatalogBaseURL: server.URL, ClientTimeout: "10s"})
	t.Cleanup(func() { _ = c.Close() })
	return NewShowBrowser(c)
}

func TestShowBrowser_SearchThenEpisodes(t *testing.T) {
	browser := newBrowser(t, &testutil.FakeCatalog{
		Searches: map[string]string{
			"girls": testutil.GenerateSearchJSON([]testutil.ShowFixture{
				{ID: 139, Name: "Girls", Summary: testutil.StringPtr("<p>Comedy.</p>"), Medium: testutil.StringPtr("http://x/img.jpg")},
			}),
		},
		Episodes: map[int]string{
			139: testutil.GenerateEpisodesJSON([]models.Episode{{ID: 1, Name: "Pilot", Season: 1, Number: 1}}),
		},
	})
	ctx := context.Background()

	showsView := &recordingView{}
	if err := browser.SubmitSearch(ctx, "girls", showsView); err != nil {
		t.Fatalf("SubmitSearch failed: %v", err)
	}
	if showsView.calls != 1 || showsView.term != "girls" || len(showsView.shows) != 1 {
		t.Fatalf("Unexpected shows view state: %+v", showsView)
	}

	// Selecting the rendered show drives the episode listing with its id
	episodesView := &recordingView{}
	if err := browser.RequestEpisodes(ctx, showsView.shows[0].ID, episodesView); err != nil {
		t.Fatalf("RequestEpisodes failed: %v", err)
	}
	want := []models.Episode{{ID: 1, Name: "Pilot", Season: 1, Number: 1}}
	if episodesView.showID != 139 || !reflect.DeepEqual(episodesView.episodes, want) {
		t.Errorf("Unexpected episodes view state: %+v", episodesView)
	}
}

func TestShowBrowser_SearchErrorSkipsView(t *testing.T) {
	browser := newBrowser(t, &testutil.FakeCatalog{Status: http.StatusInternalServerError})

	view := &recordingView{}
	err := browser.SubmitSearch(context.Background(), "girls", view)
	if !errors.Is(err, &apperrors.ErrUpstream{}) {
		t.Fatalf("Expected ErrUpstream, got: %v", err)
	}
	if view.calls != 0 {
		t.Errorf("Expected view not to be rendered, got %d calls", view.calls)
	}
}

func TestShowBrowser_EpisodesErrorSkipsView(t *testing.T) {
	browser := newBrowser(t, &testutil.FakeCatalog{})

	view := &recordingView{}
	err := browser.RequestEpisodes(context.Background(), 42, view)
	var upstream *apperrors.ErrUpstream
	if !errors.As(err, &upstream) || !upstream.NotFound() {
		t.Fatalf("Expected 404 ErrUpstream, got: %v", err)
	}
	if view.calls != 0 {
		t.Errorf("Expected view not to be rendered, got %d calls", view.calls)
	}
}

func TestShowBrowser_ViewErrorPropagates(t *testing.T) {
	browser := newBrowser(t, &testutil.FakeCatalog{})

	renderErr := errors.New("template broke")
	err := browser.SubmitSearch(context.Background(), "nothing", &recordingView{err: renderErr})
	if !errors.Is(err, renderErr) {
		t.Fatalf("Expected render error, got: %v", err)
	}
}
