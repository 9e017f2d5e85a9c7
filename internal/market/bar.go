package market

import "time"

// Bar represents one trading period's OHLCV record
type Bar struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"`
}

// Closes extracts the close prices from a bar sequence
func Closes(bars []Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}

// MeanClose returns the average close price, 0 for an empty sequence
func MeanClose(bars []Bar) float64 {
	if len(bars) == 0 {
		return 0
	}
	sum := 0.0
	for _, b := range bars {
		sum += b.Close
	}
	return sum / float64(len(bars))
}

// LastClose returns the final close price, 0 for an empty sequence
func LastClose(bars []Bar) float64 {
	if len(bars) == 0 {
		return 0
	}
	return bars[len(bars)-1].Close
}
