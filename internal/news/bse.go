package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"StockAnalyzer/internal/model"
)

const (
	defaultBSEURL     = "https://api.bseindia.com/BseIndiaAPI/api/AnnSubCategoryGetData/w"
	bseAttachmentBase = "https://www.bseindia.com/xml-data/corpfiling/AttachHis/"
	bsePublisher      = "BSE Announcement"

	bseLookbackDays = 30
	bseInspect      = 10
)

type bseResponse struct {
	Table []struct {
		Headline       string `json:"HEADLINE"`
		AttachmentName string `json:"ATTACHMENTNAME"`
	} `json:"Table"`
}

// bseAnnouncements returns recent corporate filings for the symbol, minus
// routine ones. Symbols without a known scrip code yield nothing.
func (s *Service) bseAnnouncements(ctx context.Context, symbol string) ([]model.NewsItem, error) {
	code, ok := s.scripCode(symbol)
	if !ok {
		s.logger.Debug().Str("symbol", symbol).Msg("no BSE scrip code")
		return nil, nil
	}

	to := time.Now()
	from := to.AddDate(0, 0, -bseLookbackDays)
	q := url.Values{}
	q.Set("pageno", "1")
	q.Set("strCat", "-1")
	q.Set("strPrevDate", from.Format("20060102"))
	q.Set("strToDate", to.Format("20060102"))
	q.Set("strScrip", code)
	q.Set("strSearch", "P")
	q.Set("strType", "C")

	body, err := s.client.Get(ctx, s.cfg.BSEURL+"?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("bse announcements %s: %w", code, err)
	}
	var resp bseResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("bse decode: %w", err)
	}

	table := resp.Table
	if len(table) > bseInspect {
		table = table[:bseInspect]
	}
	var items []model.NewsItem
	for _, ann := range table {
		if s.irrelevant(ann.Headline) {
			continue
		}
		items = append(items, s.scored(ann.Headline, bseAttachmentBase+ann.AttachmentName, bsePublisher, TypeAnnouncement))
	}
	return items, nil
}

// scripCode resolves a BSE scrip code from the configured map, or from the
// symbol itself when it is already numeric (500325 or 500325.BO).
func (s *Service) scripCode(symbol string) (string, bool) {
	base := strings.ToUpper(symbol)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	if code, ok := s.cfg.ScripCodes[base]; ok {
		return code, true
	}
	if code, ok := s.cfg.ScripCodes[strings.ToUpper(symbol)]; ok {
		return code, true
	}
	if base != "" && strings.Trim(base, "0123456789") == "" {
		return base, true
	}
	return "", false
}
