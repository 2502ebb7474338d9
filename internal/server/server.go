package server

import (
	"context"
	"net/http"

	"github.com/go-fuego/fuego"

	"StockAnalyzer/internal/metrics"
	"StockAnalyzer/internal/model"
)

// Analyzer runs one analysis; *collector.Collector implements it.
type Analyzer interface {
	Analyze(ctx context.Context, symbol, company string, tf model.Timeframe) (*model.AnalysisResult, error)
}

// NewsSource returns scored news for a symbol; *news.Service implements it.
type NewsSource interface {
	FetchNews(ctx context.Context, symbol, company string) []model.NewsItem
}

// Options configures the HTTP server.
type Options struct {
	Addr       string
	CORSOrigin string
	Metrics    *metrics.Metrics
}

// New builds the API server. news may be nil, which leaves /news unrouted.
func New(opts Options, analyzer Analyzer, news NewsSource) *fuego.Server {
	s := fuego.NewServer(fuego.WithAddr(opts.Addr))

	fuego.Use(s, cors(opts.CORSOrigin))

	fuego.Get(s, "/healthz", health)
	if opts.Metrics != nil {
		fuego.GetStd(s, "/metrics", opts.Metrics.Handler().ServeHTTP)
	}

	AnalysisResources{Analyzer: analyzer}.Routes(s)
	if news != nil {
		NewsResources{News: news}.Routes(s)
	}
	return s
}

func health(c fuego.ContextNoBody) (map[string]string, error) {
	return map[string]string{"status": "ok"}, nil
}

func cors(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			next.ServeHTTP(w, r)
		})
	}
}
