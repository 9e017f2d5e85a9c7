package indicators

import "stock-chart-analyzer/internal/market"

// Sizing windows for derived-chart auto-calibration.
const (
	atrPeriod      = 14
	minSizingBars  = 20
	fallbackOfMean = 0.01 // 1% of mean close when history is thin
)

// BrickSizeEstimate derives a Renko brick / P&F box size from recent
// volatility: the 14-period ATR when at least 20 bars are available,
// otherwise 1% of the mean close price.
func BrickSizeEstimate(bars []market.Bar) float64 {
	if len(bars) < minSizingBars {
		return market.MeanClose(bars) * fallbackOfMean
	}
	if atr := CalculateATR(bars, atrPeriod); atr > 0 {
		return atr
	}
	return market.MeanClose(bars) * fallbackOfMean
}

// KagiReversalEstimate derives a Kagi reversal fraction from recent
// volatility: 0.3 x the 20-period close standard deviation, expressed as a
// fraction of the latest close. Returns 0 when no estimate is possible.
func KagiReversalEstimate(bars []market.Bar) float64 {
	last := market.LastClose(bars)
	if last <= 0 {
		return 0
	}
	period := minSizingBars
	if len(bars) < period {
		period = len(bars)
	}
	sd := CalculateStdDev(bars, period)
	if sd <= 0 {
		return 0
	}
	return 0.3 * sd / last
}
