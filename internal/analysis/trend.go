package analysis

import (
	"stock-chart-analyzer/internal/indicators"
	"stock-chart-analyzer/internal/market"
)

// Trend classifications per horizon
const (
	TrendStrongBullish = "strong_bullish"
	TrendBullish       = "bullish"
	TrendNeutral       = "neutral"
	TrendBearish       = "bearish"
	TrendStrongBearish = "strong_bearish"
)

// HorizonTrend is the percent move and classification over one lookback
type HorizonTrend struct {
	Trend         string  `json:"trend"`
	ChangePercent float64 `json:"change_percent"`
}

// TrendReport classifies the trend over three horizons plus the moving
// average posture.
type TrendReport struct {
	ShortTerm          HorizonTrend `json:"short_term"`  // 5 bars
	MediumTerm         HorizonTrend `json:"medium_term"` // 20 bars
	LongTerm           HorizonTrend `json:"long_term"`   // 50 bars
	MovingAverageTrend string       `json:"moving_average_trend"`
	CurrentPrice       float64      `json:"current_price"`
}

// AnalyzeTrend classifies price change over the short, medium and long
// lookbacks, falling back to the full history when a lookback exceeds it.
// Returns nil for an empty sequence.
func AnalyzeTrend(bars []market.Bar) *TrendReport {
	if len(bars) == 0 {
		return nil
	}

	current := market.LastClose(bars)
	report := &TrendReport{
		ShortTerm:          horizonTrend(bars, 5, current),
		MediumTerm:         horizonTrend(bars, 20, current),
		LongTerm:           horizonTrend(bars, 50, current),
		MovingAverageTrend: TrendNeutral,
		CurrentPrice:       current,
	}

	sma20 := indicators.CalculateSMA(bars, 20)
	sma50 := indicators.CalculateSMA(bars, 50)
	if sma20 > 0 && sma50 > 0 {
		if current > sma20 && sma20 > sma50 {
			report.MovingAverageTrend = TrendBullish
		} else if current < sma20 && sma20 < sma50 {
			report.MovingAverageTrend = TrendBearish
		}
	}

	return report
}

func horizonTrend(bars []market.Bar, lookback int, current float64) HorizonTrend {
	start := bars[0].Close
	if len(bars) >= lookback {
		start = bars[len(bars)-lookback].Close
	}
	change := (current - start) / start * 100
	return HorizonTrend{Trend: classifyChange(change), ChangePercent: change}
}

func classifyChange(changePercent float64) string {
	switch {
	case changePercent > 5:
		return TrendStrongBullish
	case changePercent > 2:
		return TrendBullish
	case changePercent > -2:
		return TrendNeutral
	case changePercent > -5:
		return TrendBearish
	default:
		return TrendStrongBearish
	}
}
