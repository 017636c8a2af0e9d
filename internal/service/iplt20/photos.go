// Package iplt20 pulls gallery images and news cards from the IPL site.
package iplt20

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"StockPulse/internal/domain/models"
	"StockPulse/pkg/config"
	xlogger "StockPulse/pkg/logger"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

const defaultAlt = "IPL Photo"

// PhotoScraper implements service.PhotoSource.
type PhotoScraper struct {
	client *resty.Client
	url    string
	logger *xlogger.Logger
}

func NewPhotoScraper(cfg config.ScraperConfig, logger *xlogger.Logger) *PhotoScraper {
	client := resty.New()
	client.SetTimeout(cfg.Timeout)
	client.SetHeader("User-Agent", cfg.UserAgent)
	return &PhotoScraper{client: client, url: cfg.PhotosURL, logger: logger}
}

// Photos returns every usable image on the page in document order.
func (s *PhotoScraper) Photos(ctx context.Context) ([]models.Photo, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("fetch photos page: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("fetch photos page: status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return nil, fmt.Errorf("parse photos page: %w", err)
	}

	photos := ExtractPhotos(doc)
	s.logger.Debug("scraped photos",
		xlogger.String("url", s.url),
		xlogger.Int("count", len(photos)),
	)
	return photos, nil
}

// ExtractPhotos keeps https images that are not logos or icons.
func ExtractPhotos(doc *goquery.Document) []models.Photo {
	photos := []models.Photo{}
	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		if src == "" {
			src, _ = img.Attr("data-src")
		}
		if !usablePhoto(src) {
			return
		}
		alt := strings.TrimSpace(img.AttrOr("alt", ""))
		if alt == "" {
			alt = defaultAlt
		}
		photos = append(photos, models.Photo{Src: src, Alt: alt})
	})
	return photos
}

func usablePhoto(src string) bool {
	if !strings.HasPrefix(src, "https") {
		return false
	}
	return !strings.Contains(src, "logo") && !strings.Contains(src, "icon")
}
