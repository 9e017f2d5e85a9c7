package charts

import (
	"math"

	"stock-chart-analyzer/internal/market"
)

// Brick is one Renko brick. Close - Open always spans exactly one brick
// size in the brick's direction.
type Brick struct {
	Open      float64   `json:"open"`
	Close     float64   `json:"close"`
	Direction Direction `json:"direction"`
	Size      float64   `json:"size"`
	Index     int       `json:"index"`
}

// RenkoSeries is the full brick reconstruction of a bar sequence
type RenkoSeries struct {
	Bricks    []Brick `json:"bricks"`
	BrickSize float64 `json:"brick_size"`
}

// BuildRenko reconstructs closes into Renko bricks using the standard
// two-brick reversal confirmation: an opposing move must span at least
// 2 x brickSize before the direction flips, and an opposing move of exactly
// one brick is absorbed without emission. Fewer than 2 bars yields an empty
// series.
func BuildRenko(bars []market.Bar, brickSize float64) (*RenkoSeries, error) {
	return buildRenko(bars, brickSize, false)
}

// BuildRenkoImmediate reconstructs closes into Renko bricks with the lenient
// single-brick reversal rule: any opposing move of at least one full brick
// flips the direction. Kept for compatibility with charts produced under the
// older rule; BuildRenko is the canonical builder.
func BuildRenkoImmediate(bars []market.Bar, brickSize float64) (*RenkoSeries, error) {
	return buildRenko(bars, brickSize, true)
}

func buildRenko(bars []market.Bar, brickSize float64, immediateReversal bool) (*RenkoSeries, error) {
	if brickSize <= 0 {
		return nil, &ConfigError{Param: "brick size", Value: brickSize, Reason: "must be positive"}
	}

	series := &RenkoSeries{Bricks: []Brick{}, BrickSize: brickSize}
	if len(bars) < 2 {
		return series, nil
	}

	currentPrice := bars[0].Close
	var direction Direction // zero value means no direction yet

	for _, bar := range bars[1:] {
		diff := bar.Close - currentPrice
		if math.Abs(diff) < brickSize {
			continue
		}

		moveDir := DirectionUp
		if diff < 0 {
			moveDir = DirectionDown
		}

		switch {
		case direction == "":
			direction = moveDir
		case moveDir == direction:
			// continuation, emit below
		default:
			// An opposing move needs two full bricks before the trend
			// flips; a single opposing brick is absorbed and does not
			// move the anchor price.
			required := brickSize * 2
			if immediateReversal {
				required = brickSize
			}
			if math.Abs(diff) < required {
				continue
			}
			direction = moveDir
		}

		count := floorDiv(math.Abs(diff), brickSize)
		step := brickSize
		if direction == DirectionDown {
			step = -brickSize
		}
		for i := 0; i < count; i++ {
			series.Bricks = append(series.Bricks, Brick{
				Open:      currentPrice,
				Close:     currentPrice + step,
				Direction: direction,
				Size:      brickSize,
				Index:     len(series.Bricks),
			})
			// advance along the brick grid, not to the raw close
			currentPrice += step
		}
	}

	return series, nil
}
