package iplt20

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"StockPulse/internal/domain/models"
	"StockPulse/pkg/config"
	xlogger "StockPulse/pkg/logger"
	"StockPulse/pkg/util"

	"github.com/gocolly/colly/v2"
)

const (
	defaultTag = "News"
	descLimit  = 140
)

// Palette is cycled over the returned cards in order.
var Palette = []string{
	"bg-blue-600",
	"bg-orange-500",
	"bg-purple-700",
	"bg-yellow-500",
	"bg-red-600",
	"bg-green-600",
}

// CardSelectors are the CSS selectors for one news card.
type CardSelectors struct {
	Container string
	Title     string
	Desc      string
	Tag       string
}

var DefaultCardSelectors = CardSelectors{
	Container: "a[href*='/news/']",
	Title:     "h2, h3, h4, .title",
	Desc:      "p, .description",
	Tag:       ".tag, .category, .label",
}

// NewsScraper implements service.NewsSource.
type NewsScraper struct {
	url       string
	userAgent string
	timeout   time.Duration
	selectors CardSelectors
	logger    *xlogger.Logger
}

func NewNewsScraper(cfg config.ScraperConfig, logger *xlogger.Logger) *NewsScraper {
	return &NewsScraper{
		url:       cfg.NewsURL,
		userAgent: cfg.UserAgent,
		timeout:   cfg.Timeout,
		selectors: DefaultCardSelectors,
		logger:    logger,
	}
}

// Cards visits the news page once and returns up to limit cards.
// A limit of zero or less means no cap.
func (s *NewsScraper) Cards(ctx context.Context, limit int) ([]models.NewsCard, error) {
	u, err := url.Parse(s.url)
	if err != nil {
		return nil, fmt.Errorf("parse news url: %w", err)
	}

	c := colly.NewCollector(
		colly.AllowedDomains(u.Hostname()),
		colly.MaxDepth(1),
		colly.Async(false),
		colly.StdlibContext(ctx),
	)
	if s.timeout > 0 {
		c.SetRequestTimeout(s.timeout)
	}

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", s.userAgent)
	})

	cards := []models.NewsCard{}
	seen := map[string]bool{}
	c.OnHTML(s.selectors.Container, func(e *colly.HTMLElement) {
		if limit > 0 && len(cards) >= limit {
			return
		}
		title := util.CollapseSpace(e.ChildText(s.selectors.Title))
		if title == "" {
			title = util.CollapseSpace(e.Text)
		}
		link := e.Request.AbsoluteURL(e.Attr("href"))
		if title == "" || link == "" || seen[link] {
			return
		}
		seen[link] = true

		tag := util.CollapseSpace(e.ChildText(s.selectors.Tag))
		if tag == "" {
			tag = defaultTag
		}
		cards = append(cards, models.NewsCard{
			Title: title,
			Desc:  util.Truncate(util.CollapseSpace(e.ChildText(s.selectors.Desc)), descLimit),
			Link:  link,
			Tag:   tag,
			Color: Palette[len(cards)%len(Palette)],
		})
	})

	var visitErr error
	c.OnError(func(r *colly.Response, err error) {
		visitErr = fmt.Errorf("scrape %s: status %d: %w", r.Request.URL, r.StatusCode, err)
	})

	if err := c.Visit(s.url); err != nil {
		return nil, fmt.Errorf("visit %s: %w", s.url, err)
	}
	c.Wait()
	if visitErr != nil {
		return nil, visitErr
	}

	s.logger.Debug("scraped news cards",
		xlogger.String("url", s.url),
		xlogger.Int("count", len(cards)),
	)
	return cards, nil
}
