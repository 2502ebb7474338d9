package news

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"StockAnalyzer/internal/model"
)

const (
	defaultGoogleURL = "https://www.google.com/search"
	googleUserAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	googleResultLimit = 15 // result containers inspected
	googleKeep        = 8  // reliable headlines kept
)

// googleNews scrapes the news tab for the company and keeps headlines from
// reliable publishers.
func (s *Service) googleNews(ctx context.Context, company string) ([]model.NewsItem, error) {
	var items []model.NewsItem
	seen := 0

	c := colly.NewCollector(
		colly.UserAgent(googleUserAgent),
		colly.MaxDepth(1),
	)
	c.SetRequestTimeout(15 * time.Second)

	c.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
		}
	})

	c.OnHTML("div.SoaBEf", func(e *colly.HTMLElement) {
		if seen >= googleResultLimit {
			return
		}
		seen++
		title, link, publisher, ok := parseGoogleResult(e.DOM)
		if !ok || !s.reliable(link) {
			return
		}
		items = append(items, s.scored(title, link, publisher, TypeNews))
	})

	var scrapeErr error
	c.OnError(func(r *colly.Response, err error) {
		scrapeErr = fmt.Errorf("google news status %d: %w", r.StatusCode, err)
	})

	q := url.Values{}
	q.Set("q", fmt.Sprintf("%q stock news", company))
	q.Set("tbm", "nws")
	if err := c.Visit(s.cfg.GoogleURL + "?" + q.Encode()); err != nil {
		return nil, fmt.Errorf("visit google news: %w", err)
	}
	c.Wait()
	if scrapeErr != nil {
		return nil, scrapeErr
	}

	if len(items) > googleKeep {
		items = items[:googleKeep]
	}
	return items, nil
}

// parseGoogleResult extracts the headline, link and publisher of one result
// card. ok is false when any of them is missing.
func parseGoogleResult(sel *goquery.Selection) (title, link, publisher string, ok bool) {
	a := sel.Find("a").First()
	heading := sel.Find("div[role=heading]").First()
	span := sel.Find("span").First()
	if a.Length() == 0 || heading.Length() == 0 || span.Length() == 0 {
		return "", "", "", false
	}
	link, _ = a.Attr("href")
	return strings.TrimSpace(heading.Text()), link, strings.TrimSpace(span.Text()), true
}
