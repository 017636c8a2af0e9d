package usecase

import (
	"context"
	"math/rand/v2"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/domain/service"
	xlogger "StockPulse/pkg/logger"
)

// FallbackPhoto is served when the gallery cannot be scraped.
var FallbackPhoto = models.Photo{
	Src: "https://www.iplt20.com/assets/images/ipl-og-image-new.jpg",
	Alt: "IPL Logo",
}

type MediaUseCase struct {
	photos    service.PhotoSource
	news      service.NewsSource
	maxPhotos int
	maxNews   int
	shuffle   func([]models.Photo)
	logger    *xlogger.Logger
}

func NewMediaUseCase(photos service.PhotoSource, news service.NewsSource, maxPhotos, maxNews int, logger *xlogger.Logger) *MediaUseCase {
	return &MediaUseCase{
		photos:    photos,
		news:      news,
		maxPhotos: maxPhotos,
		maxNews:   maxNews,
		shuffle: func(p []models.Photo) {
			rand.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
		},
		logger: logger,
	}
}

// Photos returns up to maxPhotos gallery images in random order.
func (uc *MediaUseCase) Photos(ctx context.Context) []models.Photo {
	photos, err := uc.photos.Photos(ctx)
	if err != nil {
		uc.logger.Warn("photo scrape failed", xlogger.Error(err))
		return []models.Photo{FallbackPhoto}
	}
	if len(photos) == 0 {
		return []models.Photo{}
	}
	uc.shuffle(photos)
	if uc.maxPhotos > 0 && len(photos) > uc.maxPhotos {
		photos = photos[:uc.maxPhotos]
	}
	return photos
}

// News never fails; a scrape error yields an empty list.
func (uc *MediaUseCase) News(ctx context.Context) []models.NewsCard {
	cards, err := uc.news.Cards(ctx, uc.maxNews)
	if err != nil {
		uc.logger.Warn("news scrape failed", xlogger.Error(err))
		return []models.NewsCard{}
	}
	if cards == nil {
		cards = []models.NewsCard{}
	}
	return cards
}
