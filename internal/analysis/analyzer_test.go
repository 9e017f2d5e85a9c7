package analysis

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"stock-chart-analyzer/internal/charts"
	"stock-chart-analyzer/internal/market"
)

func makeBars(closes ...float64) []market.Bar {
	bars := make([]market.Bar, len(closes))
	for i, c := range closes {
		bars[i] = market.Bar{
			Timestamp: time.Unix(int64(i)*86400, 0),
			Open:      c, High: c + 1, Low: c - 1, Close: c,
			Volume: 1000,
		}
	}
	return bars
}

func TestAnalyzeExplicitSizing(t *testing.T) {
	bars := makeBars(100, 103, 106, 104)
	cfg := Config{
		SizeMode:     charts.SizeModeExplicit,
		BrickSize:    2,
		KagiReversal: 0.05,
		BoxSize:      2,
	}

	report, err := Analyze(bars, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.BarCount != 4 {
		t.Errorf("bar count %d", report.BarCount)
	}
	if len(report.Renko.Bricks) != 3 {
		t.Errorf("expected 3 bricks, got %d", len(report.Renko.Bricks))
	}
	if report.RenkoSummary.Trend != charts.TrendBullish {
		t.Errorf("expected bullish brick summary, got %s", report.RenkoSummary.Trend)
	}
	if len(report.Kagi.Segments) != 1 {
		t.Errorf("expected 1 kagi segment, got %d", len(report.Kagi.Segments))
	}
	if len(report.PointFigure.Columns) == 0 {
		t.Error("expected point & figure columns")
	}
	if report.Trend == nil || report.Trend.CurrentPrice != 104 {
		t.Errorf("unexpected trend %+v", report.Trend)
	}
}

func TestAnalyzeAutoSizing(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i%5)
	}

	report, err := Analyze(makeBars(closes...), DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Renko.Bricks) == 0 {
		t.Error("auto sizing produced no bricks")
	}
	if report.PointFigure.BoxSize <= 0 || report.PointFigure.BoxSize >= report.Renko.BrickSize {
		t.Errorf("box size %v should be a fraction of brick size %v",
			report.PointFigure.BoxSize, report.Renko.BrickSize)
	}
}

func TestAnalyzeRejectsMalformedInput(t *testing.T) {
	bars := makeBars(100, 103)
	bars[1].Low = bars[1].High + 5

	_, err := Analyze(bars, DefaultConfig())
	var intErr *market.IntegrityError
	if !errors.As(err, &intErr) {
		t.Fatalf("expected IntegrityError, got %v", err)
	}
}

// Short or empty sequences yield an empty report, never an error.
func TestAnalyzeShortInput(t *testing.T) {
	for _, bars := range [][]market.Bar{nil, makeBars(100)} {
		report, err := Analyze(bars, DefaultConfig())
		if err != nil {
			t.Fatalf("%d bars: unexpected error: %v", len(bars), err)
		}
		if len(report.Renko.Bricks) != 0 || len(report.Kagi.Segments) != 0 || len(report.PointFigure.Columns) != 0 {
			t.Errorf("%d bars: expected empty series", len(bars))
		}
		if report.RenkoSummary.Trend != charts.TrendNeutral {
			t.Errorf("%d bars: expected neutral summary", len(bars))
		}
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100 + float64((i*7)%11)
	}
	bars := makeBars(closes...)

	a, err := Analyze(bars, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Analyze(bars, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different reports")
	}
}

func TestAnalyzeLegacyRenkoRule(t *testing.T) {
	bars := makeBars(100, 103, 99)
	cfg := Config{SizeMode: charts.SizeModeExplicit, BrickSize: 2, KagiReversal: 0.05, BoxSize: 2}

	canonical, err := Analyze(bars, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.LegacyRenkoReversal = true
	legacy, err := Analyze(bars, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(legacy.Renko.Bricks) <= len(canonical.Renko.Bricks) {
		t.Errorf("legacy rule should flip earlier: %d vs %d bricks",
			len(legacy.Renko.Bricks), len(canonical.Renko.Bricks))
	}
}

func TestAnalyzeTrendHorizons(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i)*0.5
	}

	trend := AnalyzeTrend(makeBars(closes...))
	if trend == nil {
		t.Fatal("expected trend report")
	}
	if trend.ShortTerm.Trend != TrendNeutral {
		t.Errorf("short term: %+v", trend.ShortTerm)
	}
	if trend.LongTerm.Trend != TrendStrongBullish {
		t.Errorf("long term: %+v", trend.LongTerm)
	}
	if trend.MovingAverageTrend != TrendBullish {
		t.Errorf("moving average trend: %s", trend.MovingAverageTrend)
	}

	if AnalyzeTrend(nil) != nil {
		t.Error("empty sequence should yield no trend report")
	}
}
