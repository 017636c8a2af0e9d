package yahoo

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"StockPulse/internal/domain/models"
	xhttp "StockPulse/pkg/http"
)

var summaryModules = []string{"price", "summaryDetail", "defaultKeyStatistics", "financialData", "assetProfile"}

type summaryResponse struct {
	QuoteSummary struct {
		Result []summaryResult `json:"result"`
		Error  *apiError       `json:"error"`
	} `json:"quoteSummary"`
}

type summaryResult struct {
	Price *struct {
		LongName  string `json:"longName"`
		ShortName string `json:"shortName"`
		MarketCap *YFRaw `json:"marketCap"`
	} `json:"price"`
	SummaryDetail *struct {
		TrailingPE *YFRaw `json:"trailingPE"`
		ForwardPE  *YFRaw `json:"forwardPE"`
		MarketCap  *YFRaw `json:"marketCap"`
	} `json:"summaryDetail"`
	DefaultKeyStatistics *struct {
		PegRatio    *YFRaw `json:"pegRatio"`
		PriceToBook *YFRaw `json:"priceToBook"`
		ForwardPE   *YFRaw `json:"forwardPE"`
	} `json:"defaultKeyStatistics"`
	FinancialData *struct {
		ProfitMargins     *YFRaw `json:"profitMargins"`
		RevenueGrowth     *YFRaw `json:"revenueGrowth"`
		RecommendationKey string `json:"recommendationKey"`
	} `json:"financialData"`
	AssetProfile *struct {
		Sector   string `json:"sector"`
		Industry string `json:"industry"`
	} `json:"assetProfile"`
}

// Info returns fundamentals. Missing modules leave the matching fields nil.
func (c *Client) Info(ctx context.Context, ticker string) (*models.CompanyInfo, error) {
	var resp summaryResponse
	err := c.get(ctx, symbolPath("/v10/finance/quoteSummary", ticker), map[string][]string{
		"modules": {strings.Join(summaryModules, ",")},
	}, &resp)
	if err != nil {
		var se *xhttp.StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return &models.CompanyInfo{Symbol: ticker}, nil
		}
		return nil, err
	}
	if resp.QuoteSummary.Error.notFound() {
		return &models.CompanyInfo{Symbol: ticker}, nil
	}
	if resp.QuoteSummary.Error != nil {
		return nil, resp.QuoteSummary.Error
	}

	info := &models.CompanyInfo{Symbol: ticker}
	if len(resp.QuoteSummary.Result) == 0 {
		return info, nil
	}
	r := resp.QuoteSummary.Result[0]

	if p := r.Price; p != nil {
		info.LongName = p.LongName
		if info.LongName == "" {
			info.LongName = p.ShortName
		}
		info.MarketCap = p.MarketCap.value()
	}
	if sd := r.SummaryDetail; sd != nil {
		info.TrailingPE = sd.TrailingPE.value()
		info.ForwardPE = sd.ForwardPE.value()
		if info.MarketCap == nil {
			info.MarketCap = sd.MarketCap.value()
		}
	}
	if ks := r.DefaultKeyStatistics; ks != nil {
		info.PEGRatio = ks.PegRatio.value()
		info.PriceToBook = ks.PriceToBook.value()
		if info.ForwardPE == nil {
			info.ForwardPE = ks.ForwardPE.value()
		}
	}
	if fd := r.FinancialData; fd != nil {
		info.ProfitMargins = fd.ProfitMargins.value()
		info.RevenueGrowth = fd.RevenueGrowth.value()
		info.RecommendationKey = fd.RecommendationKey
	}
	if ap := r.AssetProfile; ap != nil {
		info.Sector = optional(ap.Sector)
		info.Industry = optional(ap.Industry)
	}
	return info, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
