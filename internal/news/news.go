// Package news gathers headlines and exchange announcements for a company
// and scores their sentiment.
package news

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"StockAnalyzer/internal/collector"
	"StockAnalyzer/internal/model"
)

// Item types.
const (
	TypeNews         = "News"
	TypeAnnouncement = "Announcement"
	TypeYahoo        = "News (YFinance)"
)

// DefaultReliableSources are the publishers whose links are kept from search results.
var DefaultReliableSources = []string{
	"moneycontrol.com",
	"economictimes.indiatimes.com",
	"livemint.com",
	"business-standard.com",
	"reuters.com",
	"ndtv.com/business",
	"businesstoday.in",
	"thehindubusinessline.com",
	"marketsmojo.com",
}

// DefaultIrrelevantKeywords drop routine exchange filings.
var DefaultIrrelevantKeywords = []string{
	"investor presentation",
	"analyst meet",
	"conference call",
	"postal ballot",
	"voting results",
	"agm",
	"e-voting",
	"intimation of schedule",
	"loss of share certificate",
	"transcript",
	"compliance certificate",
}

// Config controls the sources and filters.
type Config struct {
	ReliableSources    []string
	IrrelevantKeywords []string
	ScripCodes         map[string]string // exchange symbol -> BSE scrip code
	MaxItems           int
	GoogleURL          string
	BSEURL             string
	YahooURL           string
}

// Service implements collector.NewsFetcher.
type Service struct {
	cfg    Config
	client *collector.HTTPClient
	scorer Scorer
	logger zerolog.Logger
}

// NewService fills unset config fields with defaults. A nil scorer uses the
// lexicon scorer.
func NewService(cfg Config, client *collector.HTTPClient, scorer Scorer) *Service {
	if len(cfg.ReliableSources) == 0 {
		cfg.ReliableSources = DefaultReliableSources
	}
	if len(cfg.IrrelevantKeywords) == 0 {
		cfg.IrrelevantKeywords = DefaultIrrelevantKeywords
	}
	if cfg.GoogleURL == "" {
		cfg.GoogleURL = defaultGoogleURL
	}
	if cfg.BSEURL == "" {
		cfg.BSEURL = defaultBSEURL
	}
	if cfg.YahooURL == "" {
		cfg.YahooURL = collector.DefaultYahooBaseURL
	}
	if scorer == nil {
		scorer = NewLexiconScorer()
	}
	return &Service{
		cfg:    cfg,
		client: client,
		scorer: scorer,
		logger: log.With().Str("component", "news").Logger(),
	}
}

// FetchNews combines search headlines and BSE announcements, falling back to
// Yahoo news when both are empty. Items are sorted by sentiment confidence,
// highest first. Source failures are logged and skipped.
func (s *Service) FetchNews(ctx context.Context, symbol, company string) []model.NewsItem {
	if company == "" {
		return []model.NewsItem{}
	}

	var (
		wg                    sync.WaitGroup
		headlines, announceds []model.NewsItem
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		items, err := s.googleNews(ctx, company)
		if err != nil {
			s.logger.Warn().Err(err).Str("company", company).Msg("google news failed")
		}
		headlines = items
	}()
	go func() {
		defer wg.Done()
		items, err := s.bseAnnouncements(ctx, symbol)
		if err != nil {
			s.logger.Warn().Err(err).Str("symbol", symbol).Msg("bse announcements failed")
		}
		announceds = items
	}()
	wg.Wait()

	combined := append(headlines, announceds...)
	if len(combined) == 0 {
		s.logger.Info().Str("symbol", symbol).Msg("primary sources empty, falling back to yahoo news")
		items, err := s.yahooNews(ctx, symbol)
		if err != nil {
			s.logger.Warn().Err(err).Str("symbol", symbol).Msg("yahoo news fallback failed")
		}
		combined = items
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].SentimentScore > combined[j].SentimentScore
	})
	if s.cfg.MaxItems > 0 && len(combined) > s.cfg.MaxItems {
		combined = combined[:s.cfg.MaxItems]
	}
	if combined == nil {
		combined = []model.NewsItem{}
	}
	return combined
}

// scored builds an item with its sentiment filled in.
func (s *Service) scored(title, link, publisher, typ string) model.NewsItem {
	item := model.NewsItem{Title: title, Link: link, Publisher: publisher, Type: typ}
	if strings.TrimSpace(title) == "" {
		item.Sentiment, item.Interpretation = LabelNeutral, "Analysis not available."
		return item
	}
	label, score, err := s.scorer.Score(title)
	if err != nil {
		s.logger.Debug().Err(err).Str("title", title).Msg("sentiment failed")
		item.Sentiment, item.Interpretation = LabelNeutral, "Error during analysis."
		return item
	}
	item.Sentiment = strings.ToLower(label)
	item.SentimentScore = score
	item.Interpretation = Interpret(label, score)
	return item
}

func (s *Service) reliable(link string) bool {
	for _, src := range s.cfg.ReliableSources {
		if strings.Contains(link, src) {
			return true
		}
	}
	return false
}

func (s *Service) irrelevant(headline string) bool {
	h := strings.ToLower(headline)
	for _, kw := range s.cfg.IrrelevantKeywords {
		if strings.Contains(h, kw) {
			return true
		}
	}
	return false
}
