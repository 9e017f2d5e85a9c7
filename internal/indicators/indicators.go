package indicators

import (
	"math"

	"stock-chart-analyzer/internal/market"
)

// CalculateSMA calculates the Simple Moving Average of closes over the
// trailing period. Returns 0 when there are not enough bars.
func CalculateSMA(bars []market.Bar, period int) float64 {
	if period <= 0 || len(bars) < period {
		return 0
	}
	sum := 0.0
	for i := len(bars) - period; i < len(bars); i++ {
		sum += bars[i].Close
	}
	return sum / float64(period)
}

// CalculateStdDev calculates the standard deviation of closes over the
// trailing period. Returns 0 when there are not enough bars.
func CalculateStdDev(bars []market.Bar, period int) float64 {
	if period <= 1 || len(bars) < period {
		return 0
	}
	mean := CalculateSMA(bars, period)
	sumSq := 0.0
	for i := len(bars) - period; i < len(bars); i++ {
		d := bars[i].Close - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(period))
}

// CalculateATR calculates the Average True Range over the trailing period.
// True range uses the previous close to capture gaps. Returns 0 when there
// are not enough bars (period+1: each range needs the prior bar).
func CalculateATR(bars []market.Bar, period int) float64 {
	if period <= 0 || len(bars) < period+1 {
		return 0
	}
	sum := 0.0
	for i := len(bars) - period; i < len(bars); i++ {
		sum += trueRange(bars[i], bars[i-1])
	}
	return sum / float64(period)
}

func trueRange(cur, prev market.Bar) float64 {
	tr := cur.High - cur.Low
	if hc := math.Abs(cur.High - prev.Close); hc > tr {
		tr = hc
	}
	if lc := math.Abs(cur.Low - prev.Close); lc > tr {
		tr = lc
	}
	return tr
}

// CalculateAverageVolume calculates the average volume over the trailing
// period, shrinking the window when fewer bars are available.
func CalculateAverageVolume(bars []market.Bar, period int) float64 {
	if len(bars) == 0 || period <= 0 {
		return 0
	}
	if len(bars) < period {
		period = len(bars)
	}
	sum := 0.0
	for i := len(bars) - period; i < len(bars); i++ {
		sum += bars[i].Volume
	}
	return sum / float64(period)
}
