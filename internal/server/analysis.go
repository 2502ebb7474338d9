package server

import (
	"net/http"

	"github.com/go-fuego/fuego"
	"github.com/go-fuego/fuego/option"

	"StockAnalyzer/internal/logger"
	"StockAnalyzer/internal/model"
)

// genericFailure hides upstream details from API clients.
const genericFailure = "An error occurred while processing the request. The ticker might be invalid or delisted."

// AnalysisResources groups the analysis handlers.
type AnalysisResources struct {
	Analyzer Analyzer
}

// Analyze serves GET /analyze/{ticker}/{timeframe}. An unknown timeframe
// falls back to daily.
func (rs AnalysisResources) Analyze(c fuego.ContextNoBody) (*model.AnalysisResult, error) {
	log := logger.Component("server")
	ticker := c.PathParam("ticker")
	raw := c.PathParam("timeframe")
	tf, err := model.ParseTimeframe(raw)
	if err != nil {
		log.Warn().Str("timeframe", raw).Msg("unknown timeframe, using daily")
		tf = model.TimeframeDaily
	}

	res, err := rs.Analyzer.Analyze(c.Context(), ticker, c.QueryParam("company"), tf)
	if err != nil {
		log.Error().Err(err).Str("ticker", ticker).Str("timeframe", string(tf)).Msg("analysis failed")
		if model.IsNoData(err) {
			return nil, fuego.HTTPError{Title: "No data", Detail: err.Error(), Status: http.StatusNotFound}
		}
		return nil, fuego.HTTPError{Title: "Analysis failed", Detail: genericFailure, Status: http.StatusInternalServerError}
	}
	return res, nil
}

// Routes registers the analysis routes.
func (rs AnalysisResources) Routes(s *fuego.Server) {
	fuego.Get(s, "/analyze/{ticker}/{timeframe}", rs.Analyze,
		option.Description("Technical analysis with a Buy/Sell/Hold recommendation"),
		option.Query("company", "Company name used for the news lookup"),
	)
}
