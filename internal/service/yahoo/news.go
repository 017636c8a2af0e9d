package yahoo

import (
	"context"
	"strconv"
	"time"

	"StockPulse/internal/domain/models"
)

type searchResponse struct {
	News []struct {
		Title               string `json:"title"`
		Publisher           string `json:"publisher"`
		Link                string `json:"link"`
		ProviderPublishTime int64  `json:"providerPublishTime"`
	} `json:"news"`
}

// News returns recent headlines in provider order.
func (c *Client) News(ctx context.Context, ticker string) ([]models.NewsItem, error) {
	var resp searchResponse
	err := c.get(ctx, "/v1/finance/search", map[string][]string{
		"q":           {ticker},
		"newsCount":   {strconv.Itoa(c.newsCount)},
		"quotesCount": {"0"},
	}, &resp)
	if err != nil {
		return nil, err
	}

	items := make([]models.NewsItem, 0, len(resp.News))
	for _, n := range resp.News {
		item := models.NewsItem{Title: n.Title, Publisher: n.Publisher, Link: n.Link}
		if n.ProviderPublishTime > 0 {
			item.PublishedAt = time.Unix(n.ProviderPublishTime, 0).UTC()
		}
		items = append(items, item)
	}
	return items, nil
}
