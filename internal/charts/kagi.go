package charts

import (
	"math"

	"stock-chart-analyzer/internal/market"
)

// Segment is one Kagi line. A segment is only created on the first observed
// move or on a confirmed reversal; directional extensions widen the segment
// in place.
type Segment struct {
	Start    float64    `json:"start"`
	End      float64    `json:"end"`
	Weight   LineWeight `json:"weight"`
	Reversal bool       `json:"reversal"`
}

// KagiSeries is the full Kagi reconstruction of a bar sequence
type KagiSeries struct {
	Segments       []Segment `json:"segments"`
	ReversalAmount float64   `json:"reversal_amount"`
}

// BuildKagi reconstructs closes into Kagi lines. reversalAmount is a
// fraction of price (0.05 = 5%): an opposing move smaller than
// reversalAmount x lastExtreme is ignored entirely, a larger one flips the
// direction and starts a new line from the extreme.
//
// Line weight follows the Yang/Yin rule: the line turns thick when it rises
// above the most recent prior peak and thin when it falls below the most
// recent prior trough; between crossings the weight carries over. Both
// extremes start at the first close, so the opening leg is thick when it
// moves up and thin when it moves down. Fewer than 2 bars yields an empty
// series.
func BuildKagi(bars []market.Bar, reversalAmount float64) (*KagiSeries, error) {
	if reversalAmount <= 0 {
		return nil, &ConfigError{Param: "reversal amount", Value: reversalAmount, Reason: "must be positive"}
	}

	series := &KagiSeries{Segments: []Segment{}, ReversalAmount: reversalAmount}
	if len(bars) < 2 {
		return series, nil
	}

	var (
		direction   Direction
		weight      LineWeight
		lastExtreme = bars[0].Close
		// extremes of completed legs, checked by the Yang/Yin rule
		priorPeak   = bars[0].Close
		priorTrough = bars[0].Close
	)

	for _, bar := range bars[1:] {
		p := bar.Close

		if direction == "" {
			if p == lastExtreme {
				continue
			}
			if p > lastExtreme {
				direction = DirectionUp
			} else {
				direction = DirectionDown
			}
			weight = crossingWeight(direction, p, priorPeak, priorTrough, weight)
			series.Segments = append(series.Segments, Segment{
				Start:  lastExtreme,
				End:    p,
				Weight: weight,
			})
			lastExtreme = p
			continue
		}

		extending := (direction == DirectionUp && p > lastExtreme) ||
			(direction == DirectionDown && p < lastExtreme)
		if extending {
			weight = crossingWeight(direction, p, priorPeak, priorTrough, weight)
			cur := &series.Segments[len(series.Segments)-1]
			cur.End = p
			cur.Weight = weight
			lastExtreme = p
			continue
		}

		// opposing move: reverse only past the threshold, ignore wobble
		if math.Abs(lastExtreme-p)/lastExtreme < reversalAmount {
			continue
		}

		if direction == DirectionUp {
			priorPeak = lastExtreme
			direction = DirectionDown
		} else {
			priorTrough = lastExtreme
			direction = DirectionUp
		}
		weight = crossingWeight(direction, p, priorPeak, priorTrough, weight)
		series.Segments = append(series.Segments, Segment{
			Start:    lastExtreme,
			End:      p,
			Weight:   weight,
			Reversal: true,
		})
		lastExtreme = p
	}

	return series, nil
}

// crossingWeight applies the Yang/Yin rule: breaking above the prior peak
// turns the line thick, breaking below the prior trough turns it thin, and
// anything in between keeps the current weight.
func crossingWeight(direction Direction, p, priorPeak, priorTrough float64, current LineWeight) LineWeight {
	if direction == DirectionUp && p > priorPeak {
		return WeightThick
	}
	if direction == DirectionDown && p < priorTrough {
		return WeightThin
	}
	return current
}
