package server

import (
	"github.com/go-fuego/fuego"
	"github.com/go-fuego/fuego/option"

	"StockAnalyzer/internal/model"
)

// NewsResources groups the news handlers.
type NewsResources struct {
	News NewsSource
}

// GetNews serves GET /news/{ticker}.
func (rs NewsResources) GetNews(c fuego.ContextNoBody) ([]model.NewsItem, error) {
	return rs.News.FetchNews(c.Context(), c.PathParam("ticker"), c.QueryParam("company")), nil
}

// Routes registers the news routes.
func (rs NewsResources) Routes(s *fuego.Server) {
	fuego.Get(s, "/news/{ticker}", rs.GetNews,
		option.Description("Scored news and exchange announcements"),
		option.Query("company", "Company name for the Google News search"),
	)
}
