package notifier

import (
	"fmt"
	"html"
	"strings"

	"StockAnalyzer/internal/model"
)

var actionIcon = map[model.Action]string{
	model.ActionBuy:  "🟢",
	model.ActionSell: "🔴",
	model.ActionHold: "⚪",
}

// FormatAnalysis renders an analysis result as a Telegram HTML message.
func FormatAnalysis(res *model.AnalysisResult) string {
	var b strings.Builder
	rec := res.Recommendation

	b.WriteString(fmt.Sprintf("%s <b>%s</b> | %s | <b>%s</b>\n\n",
		actionIcon[rec.Action], html.EscapeString(res.Symbol), res.Timeframe, rec.Action))
	b.WriteString(html.EscapeString(rec.Reason) + "\n\n")

	b.WriteString(fmt.Sprintf("Price: %.2f\n", res.CurrentPrice))
	b.WriteString(fmt.Sprintf("VStop: %.2f (%s)\n", res.VStop, stopSide(res)))
	b.WriteString(fmt.Sprintf("52W: %.2f / %.2f\n", res.High52w, res.Low52w))
	b.WriteString(fmt.Sprintf("EMA50: %.2f | SMA50: %.2f\n", res.EMA50, res.SMA50))
	b.WriteString(fmt.Sprintf("EMA200: %.2f | SMA200: %.2f\n", res.EMA200, res.SMA200))
	b.WriteString(fmt.Sprintf("RSI: %.1f | ADX: %.1f\n", res.RSI, res.ADX))
	b.WriteString(fmt.Sprintf("RS vs benchmark: %.3f\n", res.RelativeStrength))
	b.WriteString(fmt.Sprintf("Pattern: %s\n", html.EscapeString(res.ChartPattern)))

	if res.PE != 0 || res.EPS != 0 {
		b.WriteString(fmt.Sprintf("\nP/E: %.1f | EPS: %.2f | P/B: %.2f\n", res.PE, res.EPS, res.PriceToBook))
	}

	if len(res.News) > 0 {
		b.WriteString("\n📰 <b>News</b>\n")
		for i, item := range res.News {
			if i == 3 {
				break
			}
			b.WriteString(fmt.Sprintf("• <a href=\"%s\">%s</a> (%s)\n",
				html.EscapeString(item.Link), html.EscapeString(item.Title), item.Sentiment))
		}
	}
	return b.String()
}

func stopSide(res *model.AnalysisResult) string {
	if res.CurrentPrice > res.VStop {
		return "price above"
	}
	return "price below"
}

// FormatFailure renders a failed analysis for symbol.
func FormatFailure(symbol string, err error) string {
	return fmt.Sprintf("❌ <b>%s</b>: %s", html.EscapeString(symbol), html.EscapeString(err.Error()))
}

// FormatWatchlistSummary renders one line per analysed symbol.
func FormatWatchlistSummary(results []*model.AnalysisResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>Watchlist</b> | %d symbols\n\n", len(results)))
	for _, res := range results {
		b.WriteString(fmt.Sprintf("%s %s: <b>%s</b> @ %.2f\n",
			actionIcon[res.Recommendation.Action], html.EscapeString(res.Symbol), res.Recommendation.Action, res.CurrentPrice))
	}
	return b.String()
}

// FormatHelp lists the bot commands.
func FormatHelp() string {
	var b strings.Builder
	b.WriteString("<b>Commands</b>\n")
	b.WriteString("/analyze TICKER [daily|weekly|monthly]\n")
	b.WriteString("/watchlist - analyse every watched symbol\n")
	b.WriteString("/help\n")
	return b.String()
}
