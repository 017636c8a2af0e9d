package usecase

import (
	"context"
	"strings"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/domain/repository"
)

const maxHeadlines = 3

type SentimentSummarizer struct {
	news   repository.NewsProvider
	scorer repository.PolarityScorer
	cfg    DecisionConfig
}

func NewSentimentSummarizer(news repository.NewsProvider, scorer repository.PolarityScorer, cfg DecisionConfig) *SentimentSummarizer {
	return &SentimentSummarizer{news: news, scorer: scorer, cfg: cfg}
}

// Analyze averages headline polarity over the titles that have text.
func (s *SentimentSummarizer) Analyze(ctx context.Context, ticker string) models.Result[models.SentimentSummary] {
	items, err := s.news.News(ctx, ticker)
	if err != nil {
		return models.Fail[models.SentimentSummary](&models.ProviderError{Op: "news", Err: err})
	}

	out := models.NeutralSentiment()
	if len(items) == 0 {
		return models.Ok(out)
	}

	total := 0.0
	for _, item := range items {
		if item.Title == "" {
			continue
		}
		p, err := s.scorer.Polarity(ctx, strings.TrimSpace(item.Title))
		if err != nil {
			return models.Fail[models.SentimentSummary](&models.ProviderError{Op: "polarity", Err: err})
		}
		total += p
		out.NewsCount++
		if len(out.Headlines) < maxHeadlines {
			out.Headlines = append(out.Headlines, item.Title)
		}
	}

	if out.NewsCount > 0 {
		out.Score = total / float64(out.NewsCount)
	}
	out.Label = ClassifyPolarity(out.Score, s.cfg.PositivePolarity, s.cfg.NegativePolarity)
	return models.Ok(out)
}

func ClassifyPolarity(avg, positive, negative float64) models.SentimentLabel {
	switch {
	case avg > positive:
		return models.SentimentPositive
	case avg < negative:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}
