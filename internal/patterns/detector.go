// Package patterns detects candlestick reversal patterns in raw bar data.
package patterns

import (
	"math"

	"stock-chart-analyzer/internal/market"
)

// PatternType names a candlestick pattern
type PatternType string

const (
	Doji             PatternType = "doji"
	Hammer           PatternType = "hammer"
	ShootingStar     PatternType = "shooting_star"
	BullishEngulfing PatternType = "bullish_engulfing"
	BearishEngulfing PatternType = "bearish_engulfing"
	MorningStar      PatternType = "morning_star"
	EveningStar      PatternType = "evening_star"
)

// DetectedPattern is one pattern occurrence in a bar sequence
type DetectedPattern struct {
	Type       PatternType `json:"type"`
	BarIndex   int         `json:"bar_index"`
	Direction  string      `json:"direction"` // bullish, bearish or neutral
	Confidence float64     `json:"confidence"`
}

// Summary aggregates the detected patterns into one directional call
type Summary struct {
	Patterns       []DetectedPattern `json:"patterns"`
	BullishSignals int               `json:"bullish_signals"`
	BearishSignals int               `json:"bearish_signals"`
	OverallSignal  string            `json:"overall_signal"`
}

// Detector detects candlestick patterns
type Detector struct {
	dojiBodyRatio float64 // max body as fraction of the candle range
}

// NewDetector creates a pattern detector. A non-positive dojiBodyRatio gets
// the 0.1 default.
func NewDetector(dojiBodyRatio float64) *Detector {
	if dojiBodyRatio <= 0 {
		dojiBodyRatio = 0.1
	}
	return &Detector{dojiBodyRatio: dojiBodyRatio}
}

// Detect scans the bar sequence for all supported patterns.
func (d *Detector) Detect(bars []market.Bar) []DetectedPattern {
	var found []DetectedPattern

	for i := range bars {
		if d.isDoji(bars[i]) {
			found = append(found, DetectedPattern{Type: Doji, BarIndex: i, Direction: "neutral", Confidence: 0.5})
		}
		if d.isHammer(bars[i]) {
			found = append(found, DetectedPattern{Type: Hammer, BarIndex: i, Direction: "bullish", Confidence: 0.65})
		}
		if d.isShootingStar(bars[i]) {
			found = append(found, DetectedPattern{Type: ShootingStar, BarIndex: i, Direction: "bearish", Confidence: 0.65})
		}
		if i >= 1 {
			if d.isBullishEngulfing(bars[i-1], bars[i]) {
				found = append(found, DetectedPattern{Type: BullishEngulfing, BarIndex: i, Direction: "bullish", Confidence: 0.8})
			}
			if d.isBearishEngulfing(bars[i-1], bars[i]) {
				found = append(found, DetectedPattern{Type: BearishEngulfing, BarIndex: i, Direction: "bearish", Confidence: 0.8})
			}
		}
		if i >= 2 {
			if d.isMorningStar(bars[i-2], bars[i-1], bars[i]) {
				found = append(found, DetectedPattern{Type: MorningStar, BarIndex: i, Direction: "bullish", Confidence: 0.85})
			}
			if d.isEveningStar(bars[i-2], bars[i-1], bars[i]) {
				found = append(found, DetectedPattern{Type: EveningStar, BarIndex: i, Direction: "bearish", Confidence: 0.85})
			}
		}
	}

	return found
}

// Summarize runs Detect and tallies the directional balance.
func (d *Detector) Summarize(bars []market.Bar) Summary {
	sum := Summary{Patterns: d.Detect(bars), OverallSignal: "neutral"}
	for _, p := range sum.Patterns {
		switch p.Direction {
		case "bullish":
			sum.BullishSignals++
		case "bearish":
			sum.BearishSignals++
		}
	}
	if sum.BullishSignals > sum.BearishSignals {
		sum.OverallSignal = "bullish"
	} else if sum.BearishSignals > sum.BullishSignals {
		sum.OverallSignal = "bearish"
	}
	return sum
}

func (d *Detector) isDoji(b market.Bar) bool {
	rng := b.High - b.Low
	if rng <= 0 {
		return false
	}
	return math.Abs(b.Close-b.Open) < rng*d.dojiBodyRatio
}

// isHammer: long lower shadow, small body, minimal upper shadow
func (d *Detector) isHammer(b market.Bar) bool {
	body := math.Abs(b.Close - b.Open)
	lower := math.Min(b.Open, b.Close) - b.Low
	upper := b.High - math.Max(b.Open, b.Close)
	return body > 0 && lower > body*2 && upper < body*0.5
}

// isShootingStar: mirror of the hammer, long upper shadow
func (d *Detector) isShootingStar(b market.Bar) bool {
	body := math.Abs(b.Close - b.Open)
	lower := math.Min(b.Open, b.Close) - b.Low
	upper := b.High - math.Max(b.Open, b.Close)
	return body > 0 && upper > body*2 && lower < body*0.5
}

func (d *Detector) isBullishEngulfing(prev, cur market.Bar) bool {
	return prev.Close < prev.Open && // previous bearish
		cur.Close > cur.Open && // current bullish
		cur.Open < prev.Close &&
		cur.Close > prev.Open
}

func (d *Detector) isBearishEngulfing(prev, cur market.Bar) bool {
	return prev.Close > prev.Open &&
		cur.Close < cur.Open &&
		cur.Open > prev.Close &&
		cur.Close < prev.Open
}

// isMorningStar: bearish candle, small-bodied pause, bullish candle closing
// above the first candle's midpoint
func (d *Detector) isMorningStar(c1, c2, c3 market.Bar) bool {
	body1 := math.Abs(c1.Close - c1.Open)
	body2 := math.Abs(c2.Close - c2.Open)
	return c1.Close < c1.Open &&
		body2 < body1*0.5 &&
		c3.Close > c3.Open &&
		c3.Close > (c1.Open+c1.Close)/2
}

func (d *Detector) isEveningStar(c1, c2, c3 market.Bar) bool {
	body1 := math.Abs(c1.Close - c1.Open)
	body2 := math.Abs(c2.Close - c2.Open)
	return c1.Close > c1.Open &&
		body2 < body1*0.5 &&
		c3.Close < c3.Open &&
		c3.Close < (c1.Open+c1.Close)/2
}
