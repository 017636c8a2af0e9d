package usecase

import (
	"context"
	"strings"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/domain/repository"
)

type FundamentalSummarizer struct {
	info repository.InfoProvider
}

func NewFundamentalSummarizer(info repository.InfoProvider) *FundamentalSummarizer {
	return &FundamentalSummarizer{info: info}
}

func (s *FundamentalSummarizer) Analyze(ctx context.Context, ticker string) models.Result[models.FundamentalSummary] {
	info, err := s.info.Info(ctx, ticker)
	if err != nil {
		return models.Fail[models.FundamentalSummary](&models.ProviderError{Op: "info", Err: err})
	}
	if info == nil {
		info = &models.CompanyInfo{}
	}
	return models.Ok(ProjectFundamentals(ticker, info))
}

// ProjectFundamentals renames provider fields and normalizes the recommendation.
func ProjectFundamentals(ticker string, info *models.CompanyInfo) models.FundamentalSummary {
	name := info.LongName
	if name == "" {
		name = ticker
	}
	rec := strings.ToUpper(strings.TrimSpace(info.RecommendationKey))
	if rec == "" {
		rec = models.RecommendationNone
	}
	return models.FundamentalSummary{
		CompanyName:    name,
		MarketCap:      info.MarketCap,
		PERatio:        info.TrailingPE,
		ForwardPE:      info.ForwardPE,
		PEGRatio:       info.PEGRatio,
		PriceToBook:    info.PriceToBook,
		ProfitMargins:  info.ProfitMargins,
		RevenueGrowth:  info.RevenueGrowth,
		Sector:         info.Sector,
		Industry:       info.Industry,
		Recommendation: rec,
	}
}
