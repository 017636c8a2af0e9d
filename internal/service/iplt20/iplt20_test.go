package iplt20

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"StockPulse/pkg/config"
	xlogger "StockPulse/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const photosPage = `<html><body>
<img src="https://img.example.com/match-1.jpg" alt="Toss">
<img src="https://img.example.com/team-logo.png" alt="Logo">
<img src="http://img.example.com/plain.jpg">
<img data-src="https://img.example.com/lazy.jpg">
<img src="https://img.example.com/share-icon.svg">
<img src="/relative.jpg">
</body></html>`

const newsPage = `<html><body>
<a href="/news/4001/final-preview"><span class="tag">Preview</span><h3>  Final   preview </h3><p>The two sides meet at Chepauk.</p></a>
<a href="/news/4002/injury-update"><h3>Injury update</h3></a>
<a href="/news/4001/final-preview"><h3>Duplicate</h3></a>
<a href="/teams/csk">Not news</a>
<a href="/news/4003/auction"><h3>Auction</h3></a>
</body></html>`

func testConfig(srv *httptest.Server) config.ScraperConfig {
	return config.ScraperConfig{
		PhotosURL: srv.URL + "/photos",
		NewsURL:   srv.URL + "/news",
		Timeout:   2 * time.Second,
		UserAgent: "stockpulse-test",
	}
}

func newPageServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "stockpulse-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		switch r.URL.Path {
		case "/photos":
			_, _ = w.Write([]byte(photosPage))
		case "/news":
			_, _ = w.Write([]byte(newsPage))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPhotoScraperFilters(t *testing.T) {
	srv := newPageServer(t, http.StatusOK)
	s := NewPhotoScraper(testConfig(srv), xlogger.Nop())

	photos, err := s.Photos(context.Background())
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, "https://img.example.com/match-1.jpg", photos[0].Src)
	assert.Equal(t, "Toss", photos[0].Alt)
	assert.Equal(t, "https://img.example.com/lazy.jpg", photos[1].Src)
	assert.Equal(t, "IPL Photo", photos[1].Alt)
}

func TestPhotoScraperStatusError(t *testing.T) {
	srv := newPageServer(t, http.StatusServiceUnavailable)
	s := NewPhotoScraper(testConfig(srv), xlogger.Nop())

	_, err := s.Photos(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewsScraperCards(t *testing.T) {
	srv := newPageServer(t, http.StatusOK)
	s := NewNewsScraper(testConfig(srv), xlogger.Nop())

	cards, err := s.Cards(context.Background(), 6)
	require.NoError(t, err)
	require.Len(t, cards, 3)

	assert.Equal(t, "Final preview", cards[0].Title)
	assert.Equal(t, "Preview", cards[0].Tag)
	assert.Equal(t, "The two sides meet at Chepauk.", cards[0].Desc)
	assert.Equal(t, srv.URL+"/news/4001/final-preview", cards[0].Link)
	assert.Equal(t, Palette[0], cards[0].Color)

	assert.Equal(t, "Injury update", cards[1].Title)
	assert.Equal(t, "News", cards[1].Tag)
	assert.Empty(t, cards[1].Desc)
	assert.Equal(t, Palette[1], cards[1].Color)

	assert.True(t, strings.HasSuffix(cards[2].Link, "/news/4003/auction"))
}

func TestNewsScraperLimit(t *testing.T) {
	srv := newPageServer(t, http.StatusOK)
	s := NewNewsScraper(testConfig(srv), xlogger.Nop())

	cards, err := s.Cards(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, cards, 1)
}

func TestNewsScraperStatusError(t *testing.T) {
	srv := newPageServer(t, http.StatusInternalServerError)
	s := NewNewsScraper(testConfig(srv), xlogger.Nop())

	_, err := s.Cards(context.Background(), 6)
	assert.Error(t, err)
}
