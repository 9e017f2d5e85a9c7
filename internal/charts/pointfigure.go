package charts

import "stock-chart-analyzer/internal/market"

// Column is one Point & Figure column. All boxes in a column share its
// type, ordered in the direction the column was filled.
type Column struct {
	Index int       `json:"index"`
	Type  BoxType   `json:"type"`
	Boxes []float64 `json:"boxes"`
}

// PFSeries is the full Point & Figure reconstruction of a bar sequence
type PFSeries struct {
	Columns       []Column `json:"columns"`
	BoxSize       float64  `json:"box_size"`
	ReversalBoxes int      `json:"reversal_boxes"`
}

// BuildPointFigure reconstructs bars into X/O columns on a fixed box grid
// anchored at the first close. Each bar's high drives X fills and its low
// drives O fills. A column flips only when the opposing move completes at
// least reversalBoxes boxes; the new column then carries every box the move
// completed. Fewer than 2 bars yields an empty series.
//
// Box levels label box tops: an X box fills once the high reaches its
// level, an O box only once the low has traversed the whole box beneath it.
func BuildPointFigure(bars []market.Bar, boxSize float64, reversalBoxes int) (*PFSeries, error) {
	if boxSize <= 0 {
		return nil, &ConfigError{Param: "box size", Value: boxSize, Reason: "must be positive"}
	}
	if reversalBoxes < 1 {
		return nil, &ConfigError{Param: "reversal boxes", Value: float64(reversalBoxes), Reason: "must be at least 1"}
	}

	series := &PFSeries{Columns: []Column{}, BoxSize: boxSize, ReversalBoxes: reversalBoxes}
	if len(bars) < 2 {
		return series, nil
	}

	ref := bars[0].Close
	eps := boxSize * 1e-9
	var colType BoxType // zero value until the first column forms

	appendBoxes := func(t BoxType, count int, newColumn bool) {
		step := boxSize
		if t == BoxO {
			step = -boxSize
		}
		if newColumn || len(series.Columns) == 0 {
			series.Columns = append(series.Columns, Column{Index: len(series.Columns), Type: t})
		}
		col := &series.Columns[len(series.Columns)-1]
		for i := 0; i < count; i++ {
			ref += step
			col.Boxes = append(col.Boxes, ref)
		}
	}

	for _, bar := range bars[1:] {
		up := boxesUp(ref, bar.High, boxSize, eps)
		down := boxesDown(ref, bar.Low, boxSize, eps)

		switch colType {
		case "":
			if up >= 1 {
				colType = BoxX
				appendBoxes(BoxX, up, true)
			} else if down >= 1 {
				colType = BoxO
				appendBoxes(BoxO, down, true)
			}
		case BoxX:
			if up >= 1 {
				appendBoxes(BoxX, up, false)
			} else if down >= reversalBoxes {
				colType = BoxO
				appendBoxes(BoxO, down, true)
			}
		case BoxO:
			if down >= 1 {
				appendBoxes(BoxO, down, false)
			} else if up >= reversalBoxes {
				colType = BoxX
				appendBoxes(BoxX, up, true)
			}
		}
	}

	return series, nil
}

// boxesUp counts X boxes completed above ref: levels ref+box, ref+2*box, ...
// reached by the high.
func boxesUp(ref, high, box, eps float64) int {
	return floorDiv(high-ref+eps, box)
}

// boxesDown counts O boxes completed below ref: levels ref-box, ref-2*box,
// ... where the low has cleared the full box beneath the level.
func boxesDown(ref, low, box, eps float64) int {
	n := floorDiv(ref-low+eps, box) - 1
	if n < 0 {
		return 0
	}
	return n
}
