package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/Belphemur/ShowCatalog/internal/client"
	"github.com/Belphemur/ShowCatalog/internal/config"
	"github.com/Belphemur/ShowCatalog/internal/models"
	"github.com/Belphemur/ShowCatalog/internal/services"
	"github.com/Belphemur/ShowCatalog/internal/testutil"
)

func newGirlsCatalog() *testutil.FakeCatalog {
	return &testutil.FakeCatalog{
		Searches: map[string]string{
			"girls": testutil.GenerateSearchJSON([]testutil.ShowFixture{
				{ID: 139, Name: "Girls", Summary: testutil.StringPtr("<p><b>Girls</b> is a comedy.</p>"), Medium: testutil.StringPtr("http://x/img.jpg")},
				{ID: 41734, Name: "Girls5eva"},
			}),
			"xss": testutil.GenerateSearchJSON([]testutil.ShowFixture{
				{ID: 1, Name: "<i>Bold</i>", Summary: testutil.StringPtr(`<p>Safe</p><img src=x onerror="alert(1)">`)},
			}),
			"broken": `[{"score":1}]`,
		},
		Episodes: map[int]string{
			139: testutil.GenerateEpisodesJSON([]models.Episode{
				{ID: 1, Name: "Pilot", Season: 1, Number: 1},
				{ID: 2, Name: "Vagina Panic", Season: 1, Number: 2},
			}),
		},
	}
}

func newTestServer(t *testing.T, fake *testutil.FakeCatalog) *Server {
	t.Helper()
	catalog := httptest.NewServer(fake)
	t.Cleanup(catalog.Close)

	c := client.NewClient(&config.Config{CatalogBaseURL: catalog.URL, ClientTimeout: "10s"})
	t.Cleanup(func() { _ = c.Close() })
	return NewServer(services.NewShowBrowser(c))
}

func get(t *testing.T, srv http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func parseDoc(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}
	return doc
}

func TestServer_Index(t *testing.T) {
	srv := newTestServer(t, newGirlsCatalog())

	rec := get(t, srv, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	doc := parseDoc(t, rec)
	if doc.Find("form#searchForm input#searchForm-term").Length() != 1 {
		t.Error("Expected the search form to be rendered")
	}
	if doc.Find("#showsList .Show").Length() != 0 {
		t.Error("Expected no shows on the index page")
	}
}

func TestServer_SearchPage(t *testing.T) {
	srv := newTestServer(t, newGirlsCatalog())

	rec := get(t, srv, "/search?q=girls")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected HTML content type, got %q", ct)
	}

	doc := parseDoc(t, rec)
	shows := doc.Find("#showsList .Show")
	if shows.Length() != 2 {
		t.Fatalf("Expected 2 shows, got %d", shows.Length())
	}

	first := shows.First()
	if id, _ := first.Attr("data-show-id"); id != "139" {
		t.Errorf("Expected data-show-id 139, got %q", id)
	}
	if src, _ := first.Find("img").Attr("src"); src != "http://x/img.jpg" {
		t.Errorf("Expected image src http://x/img.jpg, got %q", src)
	}
	if got := strings.TrimSpace(first.Find("small").Text()); got != "Girls is a comedy." {
		t.Errorf("Expected summary text without markup, got %q", got)
	}
	if href, _ := first.Find("a.Show-getEpisodes").Attr("href"); href != "/shows/139/episodes?q=girls" {
		t.Errorf("Unexpected episodes link %q", href)
	}

	second := shows.Eq(1)
	if src, _ := second.Find("img").Attr("src"); src != models.PlaceholderImageURL {
		t.Errorf("Expected placeholder image, got %q", src)
	}

	if doc.Find("#episodesArea").Length() != 0 {
		t.Error("Expected episodes area to be hidden after a search")
	}
	if val, _ := doc.Find("#searchForm-term").Attr("value"); val != "girls" {
		t.Errorf("Expected search term to be kept in the form, got %q", val)
	}
}

func TestServer_SearchPage_EscapesCatalogMarkup(t *testing.T) {
	srv := newTestServer(t, newGirlsCatalog())

	rec := get(t, srv, "/search?q=xss")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	doc := parseDoc(t, rec)
	show := doc.Find("#showsList .Show")
	if show.Find("i").Length() != 0 || show.Find("img[onerror]").Length() != 0 {
		t.Error("Expected catalog markup to be rendered as text")
	}
	if got := show.Find("h5").Text(); got != "<i>Bold</i>" {
		t.Errorf("Expected escaped name, got %q", got)
	}
}

func TestServer_EpisodesPage(t *testing.T) {
	srv := newTestServer(t, newGirlsCatalog())

	rec := get(t, srv, "/shows/139/episodes?q=girls")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	doc := parseDoc(t, rec)
	area := doc.Find("#episodesArea")
	if area.Length() != 1 {
		t.Fatal("Expected episodes area to be shown")
	}
	if id, _ := area.Attr("data-show-id"); id != "139" {
		t.Errorf("Expected episodes area for show 139, got %q", id)
	}

	var items []string
	doc.Find("#episodesList li").Each(func(_ int, s *goquery.Selection) {
		items = append(items, strings.TrimSpace(s.Text()))
	})
	want := []string{"Pilot (season 1, number 1)", "Vagina Panic (season 1, number 2)"}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Expected %v, got %v", want, items)
	}
	if href, _ := doc.Find("#backToResults").Attr("href"); href != "/search?q=girls" {
		t.Errorf("Unexpected back link %q", href)
	}
}

func TestServer_ErrorStates(t *testing.T) {
	tests := []struct {
		name   string
		fake   *testutil.FakeCatalog
		target string
		status int
	}{
		{"upstream 500", &testutil.FakeCatalog{Status: http.StatusInternalServerError}, "/search?q=girls", http.StatusBadGateway},
		{"unknown show", newGirlsCatalog(), "/shows/424242/episodes", http.StatusNotFound},
		{"shape mismatch", newGirlsCatalog(), "/search?q=broken", http.StatusInternalServerError},
		{"invalid id", newGirlsCatalog(), "/shows/abc/episodes", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.fake)

			rec := get(t, srv, tt.target)
			if rec.Code != tt.status {
				t.Fatalf("Expected %d, got %d", tt.status, rec.Code)
			}
			doc := parseDoc(t, rec)
			if doc.Find("#error").Length() != 1 {
				t.Error("Expected the error state to be rendered")
			}
			if doc.Find("#showsList .Show").Length() != 0 {
				t.Error("Expected no shows in the error state")
			}
		})
	}
}

func TestServer_SearchAPI(t *testing.T) {
	srv := newTestServer(t, newGirlsCatalog())

	rec := get(t, srv, "/api/search?q=girls")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var shows []models.Show
	if err := json.Unmarshal(rec.Body.Bytes(), &shows); err != nil {
		t.Fatalf("Failed to decode JSON: %v", err)
	}
	want := []models.Show{
		{ID: 139, Name: "Girls", Summary: "<p><b>Girls</b> is a comedy.</p>", Image: "http://x/img.jpg"},
		{ID: 41734, Name: "Girls5eva", Image: models.PlaceholderImageURL},
	}
	if !reflect.DeepEqual(shows, want) {
		t.Errorf("Expected %+v, got %+v", want, shows)
	}
}

func TestServer_SearchAPI_EmptyResult(t *testing.T) {
	srv := newTestServer(t, newGirlsCatalog())

	rec := get(t, srv, "/api/search?q=nothing")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("Expected empty JSON array, got %q", body)
	}
}

func TestServer_EpisodesAPI(t *testing.T) {
	srv := newTestServer(t, newGirlsCatalog())

	rec := get(t, srv, "/api/shows/139/episodes")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); !strings.HasPrefix(body, `[{"id":1,"name":"Pilot","season":1,"number":1}`) {
		t.Errorf("Unexpected body %s", body)
	}
}

func TestServer_API_Errors(t *testing.T) {
	srv := newTestServer(t, &testutil.FakeCatalog{Status: http.StatusServiceUnavailable})

	rec := get(t, srv, "/api/shows/139/episodes")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("Expected 502, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode JSON error: %v", err)
	}
	if body["error"] == "" {
		t.Error("Expected an error message")
	}

	rec = get(t, srv, "/api/shows/x/episodes")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid id, got %d", rec.Code)
	}
}
