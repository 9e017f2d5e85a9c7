package charts

// Trend labels shared by the per-chart summaries
const (
	TrendBullish = "bullish"
	TrendBearish = "bearish"
	TrendNeutral = "neutral"
)

// RenkoSummary condenses a brick series into a trend reading
type RenkoSummary struct {
	Trend            string  `json:"trend"`
	Strength         float64 `json:"strength"` // 0-100
	ConsecutiveRun   int     `json:"consecutive_run"`
	CurrentDirection string  `json:"current_direction,omitempty"`
	UpBricks         int     `json:"up_bricks"`
	DownBricks       int     `json:"down_bricks"`
	TotalBricks      int     `json:"total_bricks"`
	BrickSize        float64 `json:"brick_size"`
}

// SummarizeRenko reports the overall brick balance and the length of the
// latest unbroken run.
func SummarizeRenko(s *RenkoSeries) RenkoSummary {
	sum := RenkoSummary{BrickSize: s.BrickSize, TotalBricks: len(s.Bricks), Trend: TrendNeutral}
	if len(s.Bricks) == 0 {
		return sum
	}

	for _, b := range s.Bricks {
		if b.Direction == DirectionUp {
			sum.UpBricks++
		} else {
			sum.DownBricks++
		}
	}

	last := s.Bricks[len(s.Bricks)-1].Direction
	sum.CurrentDirection = string(last)
	sum.ConsecutiveRun = 1
	for i := len(s.Bricks) - 2; i >= 0 && s.Bricks[i].Direction == last; i-- {
		sum.ConsecutiveRun++
	}

	if sum.UpBricks > sum.DownBricks {
		sum.Trend = TrendBullish
	} else if sum.DownBricks > sum.UpBricks {
		sum.Trend = TrendBearish
	}
	sum.Strength = float64(abs(sum.UpBricks-sum.DownBricks)) / float64(sum.TotalBricks) * 100

	return sum
}

// RenkoSignal is a trade signal read off a brick series
type RenkoSignal struct {
	Type       string  `json:"type"` // buy, sell, strong_buy, strong_sell
	Strength   string  `json:"strength"`
	Reason     string  `json:"reason"`
	Price      float64 `json:"price"`
	BrickIndex int     `json:"brick_index"`
}

const strongRunLength = 5

// RenkoSignals scans a brick series for direction flips after a two-brick
// trend and for strong runs of five or more bricks.
func RenkoSignals(s *RenkoSeries) []RenkoSignal {
	var signals []RenkoSignal
	if len(s.Bricks) < 3 {
		return signals
	}

	for i := 2; i < len(s.Bricks); i++ {
		prev2, prev, cur := s.Bricks[i-2], s.Bricks[i-1], s.Bricks[i]
		if prev2.Direction == DirectionDown && prev.Direction == DirectionDown && cur.Direction == DirectionUp {
			signals = append(signals, RenkoSignal{
				Type:       "buy",
				Strength:   "medium",
				Reason:     "bullish reversal after downtrend",
				Price:      cur.Close,
				BrickIndex: i,
			})
		}
		if prev2.Direction == DirectionUp && prev.Direction == DirectionUp && cur.Direction == DirectionDown {
			signals = append(signals, RenkoSignal{
				Type:       "sell",
				Strength:   "medium",
				Reason:     "bearish reversal after uptrend",
				Price:      cur.Close,
				BrickIndex: i,
			})
		}
	}

	run := 1
	last := s.Bricks[len(s.Bricks)-1]
	for i := len(s.Bricks) - 2; i >= 0 && s.Bricks[i].Direction == last.Direction; i-- {
		run++
	}
	if run >= strongRunLength {
		sig := RenkoSignal{
			Strength:   "high",
			Price:      last.Close,
			BrickIndex: len(s.Bricks) - 1,
		}
		if last.Direction == DirectionUp {
			sig.Type = "strong_buy"
			sig.Reason = "strong uptrend of consecutive up bricks"
		} else {
			sig.Type = "strong_sell"
			sig.Reason = "strong downtrend of consecutive down bricks"
		}
		signals = append(signals, sig)
	}

	return signals
}

// KagiSummary condenses a Kagi series into a trend reading
type KagiSummary struct {
	Trend       string  `json:"trend"`
	Strength    float64 `json:"strength"` // 0-100
	CurrentLine string  `json:"current_line,omitempty"`
	YangLines   int     `json:"yang_lines"`
	YinLines    int     `json:"yin_lines"`
	TotalLines  int     `json:"total_lines"`
}

// SummarizeKagi reports the Yang/Yin balance of a Kagi series.
func SummarizeKagi(s *KagiSeries) KagiSummary {
	sum := KagiSummary{TotalLines: len(s.Segments), Trend: TrendNeutral}
	if len(s.Segments) == 0 {
		return sum
	}

	for _, seg := range s.Segments {
		if seg.Weight == WeightThick {
			sum.YangLines++
		} else {
			sum.YinLines++
		}
	}
	sum.CurrentLine = string(s.Segments[len(s.Segments)-1].Weight)

	if sum.YangLines > sum.YinLines {
		sum.Trend = TrendBullish
	} else if sum.YinLines > sum.YangLines {
		sum.Trend = TrendBearish
	}
	sum.Strength = float64(abs(sum.YangLines-sum.YinLines)) / float64(sum.TotalLines) * 100

	return sum
}

// PFSummary condenses a Point & Figure series into a trend reading
type PFSummary struct {
	Trend         string  `json:"trend"`
	Strength      float64 `json:"strength"` // 0-100
	CurrentColumn string  `json:"current_column,omitempty"`
	XBoxes        int     `json:"x_boxes"`
	OBoxes        int     `json:"o_boxes"`
	TotalColumns  int     `json:"total_columns"`
	BoxSize       float64 `json:"box_size"`
}

// SummarizePointFigure reports the X/O box balance of a P&F series.
func SummarizePointFigure(s *PFSeries) PFSummary {
	sum := PFSummary{TotalColumns: len(s.Columns), BoxSize: s.BoxSize, Trend: TrendNeutral}
	if len(s.Columns) == 0 {
		return sum
	}

	for _, col := range s.Columns {
		if col.Type == BoxX {
			sum.XBoxes += len(col.Boxes)
		} else {
			sum.OBoxes += len(col.Boxes)
		}
	}
	sum.CurrentColumn = string(s.Columns[len(s.Columns)-1].Type)

	total := sum.XBoxes + sum.OBoxes
	if sum.XBoxes > sum.OBoxes {
		sum.Trend = TrendBullish
	} else if sum.OBoxes > sum.XBoxes {
		sum.Trend = TrendBearish
	}
	if total > 0 {
		sum.Strength = float64(abs(sum.XBoxes-sum.OBoxes)) / float64(total) * 100
	}

	return sum
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
