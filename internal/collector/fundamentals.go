package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"

	"StockAnalyzer/internal/model"
)

const quoteSummaryModules = "summaryDetail,defaultKeyStatistics,financialData,incomeStatementHistory"

type rawValue struct {
	Raw *float64 `json:"raw"`
}

type quoteSummary struct {
	QuoteSummary struct {
		Result []struct {
			SummaryDetail struct {
				TrailingPE rawValue `json:"trailingPE"`
				ForwardPE  rawValue `json:"forwardPE"`
			} `json:"summaryDetail"`
			DefaultKeyStatistics struct {
				TrailingEps       rawValue `json:"trailingEps"`
				ForwardEps        rawValue `json:"forwardEps"`
				PriceToBook       rawValue `json:"priceToBook"`
				NetIncomeToCommon rawValue `json:"netIncomeToCommon"`
			} `json:"defaultKeyStatistics"`
			FinancialData struct {
				OperatingCashflow rawValue `json:"operatingCashflow"`
			} `json:"financialData"`
			IncomeStatementHistory struct {
				IncomeStatementHistory []struct {
					Ebit            rawValue `json:"ebit"`
					InterestExpense rawValue `json:"interestExpense"`
				} `json:"incomeStatementHistory"`
			} `json:"incomeStatementHistory"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"quoteSummary"`
}

// FetchFundamentals reads valuation ratios from the quoteSummary endpoint.
// CFO/PAT is operating cash flow over net income; interest coverage is the
// latest annual EBIT over interest expense.
func (f *YahooFetcher) FetchFundamentals(ctx context.Context, symbol string) (*model.Fundamentals, error) {
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s",
		f.BaseURL, url.PathEscape(f.yahooSymbol(symbol)), url.QueryEscape(quoteSummaryModules))

	body, err := f.Client.Get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("yahoo quote summary %s: %w", symbol, err)
	}
	var qs quoteSummary
	if err := json.Unmarshal(body, &qs); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if qs.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", qs.QuoteSummary.Error.Description)
	}
	if len(qs.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no fundamentals for %s", symbol)
	}

	r := qs.QuoteSummary.Result[0]
	out := &model.Fundamentals{
		PE:          r.SummaryDetail.TrailingPE.Raw,
		ForwardPE:   r.SummaryDetail.ForwardPE.Raw,
		EPS:         r.DefaultKeyStatistics.TrailingEps.Raw,
		ForwardEPS:  r.DefaultKeyStatistics.ForwardEps.Raw,
		PriceToBook: r.DefaultKeyStatistics.PriceToBook.Raw,
		CFOPAT:      ratio(r.FinancialData.OperatingCashflow.Raw, r.DefaultKeyStatistics.NetIncomeToCommon.Raw),
	}
	if hist := r.IncomeStatementHistory.IncomeStatementHistory; len(hist) > 0 {
		if ie := hist[0].InterestExpense.Raw; ie != nil {
			abs := math.Abs(*ie)
			out.InterestCoverage = ratio(hist[0].Ebit.Raw, &abs)
		}
	}
	return out, nil
}

func ratio(num, den *float64) *float64 {
	if num == nil || den == nil || *den == 0 {
		return nil
	}
	v := *num / *den
	return &v
}
