package usecase

import (
	"context"
	"fmt"
	"testing"

	"StockPulse/internal/domain/models"
	xlogger "StockPulse/pkg/logger"

	"github.com/stretchr/testify/assert"
)

type fakePhotos struct {
	photos []models.Photo
	err    error
}

func (f *fakePhotos) Photos(context.Context) ([]models.Photo, error) { return f.photos, f.err }

type fakeCards struct {
	cards []models.NewsCard
	err   error
	limit int
}

func (f *fakeCards) Cards(_ context.Context, limit int) ([]models.NewsCard, error) {
	f.limit = limit
	return f.cards, f.err
}

func TestPhotosShuffledAndCapped(t *testing.T) {
	var photos []models.Photo
	for i := 0; i < 20; i++ {
		photos = append(photos, models.Photo{Src: fmt.Sprintf("https://img/%d.jpg", i), Alt: "IPL Photo"})
	}
	uc := NewMediaUseCase(&fakePhotos{photos: photos}, &fakeCards{}, 12, 6, xlogger.Nop())
	shuffled := false
	uc.shuffle = func(p []models.Photo) {
		shuffled = true
		p[0], p[len(p)-1] = p[len(p)-1], p[0]
	}

	got := uc.Photos(context.Background())
	assert.True(t, shuffled)
	assert.Len(t, got, 12)
	assert.Equal(t, "https://img/19.jpg", got[0].Src)
}

func TestPhotosFallback(t *testing.T) {
	uc := NewMediaUseCase(&fakePhotos{err: errUpstream}, &fakeCards{}, 12, 6, xlogger.Nop())
	assert.Equal(t, []models.Photo{FallbackPhoto}, uc.Photos(context.Background()))

	uc = NewMediaUseCase(&fakePhotos{}, &fakeCards{}, 12, 6, xlogger.Nop())
	got := uc.Photos(context.Background())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNewsEmptyOnFailure(t *testing.T) {
	cards := &fakeCards{err: errUpstream}
	uc := NewMediaUseCase(&fakePhotos{}, cards, 12, 6, xlogger.Nop())
	got := uc.News(context.Background())
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, 6, cards.limit)

	cards.err = nil
	cards.cards = []models.NewsCard{{Title: "Final tonight", Tag: "News"}}
	assert.Len(t, uc.News(context.Background()), 1)
}
