package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"StockAnalyzer/internal/model"
)

const yahooNewsCount = 5

type yahooSearch struct {
	News []struct {
		Title     string `json:"title"`
		Publisher string `json:"publisher"`
		Link      string `json:"link"`
	} `json:"news"`
}

// yahooNews is the last resort source. Bare symbols are looked up on NSE.
func (s *Service) yahooNews(ctx context.Context, symbol string) ([]model.NewsItem, error) {
	if !strings.Contains(symbol, ".") && !strings.HasPrefix(symbol, "^") {
		symbol += ".NS"
	}
	q := url.Values{}
	q.Set("q", symbol)
	q.Set("newsCount", fmt.Sprint(yahooNewsCount))
	q.Set("quotesCount", "0")

	body, err := s.client.Get(ctx, s.cfg.YahooURL+"/v1/finance/search?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("yahoo news %s: %w", symbol, err)
	}
	var resp yahooSearch
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("yahoo news decode: %w", err)
	}

	var items []model.NewsItem
	for i, n := range resp.News {
		if i >= yahooNewsCount {
			break
		}
		if n.Title == "" {
			continue
		}
		items = append(items, s.scored(n.Title, n.Link, n.Publisher, TypeYahoo))
	}
	return items, nil
}
