// Package analysis assembles the derived-chart builders, level detection
// and pattern scanning into one report over a validated bar sequence.
package analysis

import (
	"fmt"

	"stock-chart-analyzer/internal/charts"
	"stock-chart-analyzer/internal/indicators"
	"stock-chart-analyzer/internal/levels"
	"stock-chart-analyzer/internal/market"
	"stock-chart-analyzer/internal/patterns"
)

// Config carries every analysis knob. All sizing is per call; a zero value
// in an auto-sized field means "derive from volatility".
type Config struct {
	SizeMode      charts.SizeMode `json:"size_mode"`
	BrickSize     float64         `json:"brick_size"`     // explicit Renko brick size
	KagiReversal  float64         `json:"kagi_reversal"`  // fraction of price, 0 = auto
	BoxSize       float64         `json:"box_size"`       // explicit P&F box size
	BoxFraction   float64         `json:"box_fraction"`   // P&F box as fraction of brick estimate, default 0.5
	ReversalBoxes int             `json:"reversal_boxes"` // P&F reversal, default 3
	PivotWindow   int             `json:"pivot_window"`   // pivot half-window, 0 = default 5
	VolumeWindow  int             `json:"volume_window"`  // breakout volume lookback, 0 = default 5

	// LegacyRenkoReversal replays the old single-brick reversal rule
	// instead of the two-brick confirmation.
	LegacyRenkoReversal bool `json:"legacy_renko_reversal"`
}

// DefaultConfig returns the auto-sized configuration.
func DefaultConfig() Config {
	return Config{
		SizeMode:      charts.SizeModeAuto,
		BoxFraction:   0.5,
		ReversalBoxes: 3,
	}
}

// Report is the assembled analysis of one bar sequence. It is produced
// fresh per invocation and is fully determined by the inputs.
type Report struct {
	BarCount int `json:"bar_count"`

	Renko        *charts.RenkoSeries  `json:"renko"`
	RenkoSummary charts.RenkoSummary  `json:"renko_summary"`
	RenkoSignals []charts.RenkoSignal `json:"renko_signals,omitempty"`

	Kagi        *charts.KagiSeries `json:"kagi"`
	KagiSummary charts.KagiSummary `json:"kagi_summary"`

	PointFigure        *charts.PFSeries `json:"point_figure"`
	PointFigureSummary charts.PFSummary `json:"point_figure_summary"`

	Levels    *levels.LevelSet        `json:"levels"`
	Breakouts []levels.BreakoutSignal `json:"breakouts,omitempty"`

	Patterns patterns.Summary `json:"patterns"`
	Trend    *TrendReport     `json:"trend,omitempty"`
}

// Analyze validates the bars once and runs every builder and detector over
// them. Sequences too short for a given builder produce that builder's
// empty series rather than an error.
func Analyze(bars []market.Bar, cfg Config) (*Report, error) {
	if err := market.Validate(bars); err != nil {
		return nil, fmt.Errorf("analysis rejected input: %w", err)
	}
	if cfg.BoxFraction <= 0 {
		cfg.BoxFraction = 0.5
	}
	if cfg.ReversalBoxes < 1 {
		cfg.ReversalBoxes = 3
	}

	report := &Report{
		BarCount:    len(bars),
		Renko:       &charts.RenkoSeries{Bricks: []charts.Brick{}},
		Kagi:        &charts.KagiSeries{Segments: []charts.Segment{}},
		PointFigure: &charts.PFSeries{Columns: []charts.Column{}},
		Levels:      &levels.LevelSet{Support: []levels.Level{}, Resistance: []levels.Level{}},
	}

	if len(bars) >= 2 {
		brickSize, boxSize, kagiReversal := resolveSizes(bars, cfg)

		if brickSize > 0 {
			build := charts.BuildRenko
			if cfg.LegacyRenkoReversal {
				build = charts.BuildRenkoImmediate
			}
			renko, err := build(bars, brickSize)
			if err != nil {
				return nil, err
			}
			report.Renko = renko
			report.RenkoSignals = charts.RenkoSignals(renko)
		}

		if kagiReversal > 0 {
			kagi, err := charts.BuildKagi(bars, kagiReversal)
			if err != nil {
				return nil, err
			}
			report.Kagi = kagi
		}

		if boxSize > 0 {
			pf, err := charts.BuildPointFigure(bars, boxSize, cfg.ReversalBoxes)
			if err != nil {
				return nil, err
			}
			report.PointFigure = pf
		}
	}

	report.RenkoSummary = charts.SummarizeRenko(report.Renko)
	report.KagiSummary = charts.SummarizeKagi(report.Kagi)
	report.PointFigureSummary = charts.SummarizePointFigure(report.PointFigure)

	lvls, err := levels.DetectLevels(bars, cfg.PivotWindow)
	if err != nil {
		return nil, err
	}
	report.Levels = lvls

	breakouts, err := levels.DetectBreakouts(bars, lvls, cfg.VolumeWindow)
	if err != nil {
		return nil, err
	}
	report.Breakouts = breakouts

	report.Patterns = patterns.NewDetector(0).Summarize(bars)
	report.Trend = AnalyzeTrend(bars)

	return report, nil
}

// resolveSizes turns the config into concrete builder parameters,
// auto-calibrating from volatility where requested. A zero result means the
// history is too thin to size that builder; its series stays empty.
func resolveSizes(bars []market.Bar, cfg Config) (brickSize, boxSize, kagiReversal float64) {
	brickSize = cfg.BrickSize
	boxSize = cfg.BoxSize
	kagiReversal = cfg.KagiReversal

	if cfg.SizeMode != charts.SizeModeExplicit {
		estimate := indicators.BrickSizeEstimate(bars)
		if brickSize <= 0 {
			brickSize = estimate
		}
		if boxSize <= 0 {
			boxSize = estimate * cfg.BoxFraction
		}
	}
	if kagiReversal <= 0 {
		kagiReversal = indicators.KagiReversalEstimate(bars)
	}
	return brickSize, boxSize, kagiReversal
}
