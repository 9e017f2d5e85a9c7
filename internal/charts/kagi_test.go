package charts

import (
	"errors"
	"testing"
)

func TestKagiReversalPastThreshold(t *testing.T) {
	series, err := BuildKagi(closeBars(100, 105, 103, 96), 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Segment{
		{Start: 100, End: 105, Weight: WeightThick},
		{Start: 105, End: 96, Weight: WeightThin, Reversal: true},
	}
	if len(series.Segments) != len(want) {
		t.Fatalf("expected %d segments, got %d", len(want), len(series.Segments))
	}
	for i, w := range want {
		if series.Segments[i] != w {
			t.Errorf("segment %d: got %+v, want %+v", i, series.Segments[i], w)
		}
	}
}

func TestKagiExtensionWidensInPlace(t *testing.T) {
	series, err := BuildKagi(closeBars(100, 105, 107), 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(series.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(series.Segments))
	}
	seg := series.Segments[0]
	if seg.Start != 100 || seg.End != 107 || seg.Weight != WeightThick || seg.Reversal {
		t.Errorf("unexpected segment %+v", seg)
	}
}

// A pullback below the reversal threshold must leave the series untouched.
func TestKagiWobbleIgnored(t *testing.T) {
	series, err := BuildKagi(closeBars(100, 105, 103, 104, 102), 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(series.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(series.Segments))
	}
	if series.Segments[0].End != 105 {
		t.Errorf("wobble moved the segment end to %v", series.Segments[0].End)
	}
}

// A reversed line keeps its weight until it actually crosses the prior
// trough (or peak, going the other way).
func TestKagiWeightCarriesOverBetweenCrossings(t *testing.T) {
	series, err := BuildKagi(closeBars(100, 110, 104.5, 108), 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(series.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(series.Segments))
	}
	second := series.Segments[1]
	if !second.Reversal || second.Weight != WeightThick {
		t.Errorf("down leg above prior trough should stay thick, got %+v", second)
	}
}

func TestKagiWeightFlipsOnCrossing(t *testing.T) {
	// falls through the prior trough
	series, err := BuildKagi(closeBars(100, 110, 95), 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := series.Segments[len(series.Segments)-1].Weight; got != WeightThin {
		t.Errorf("expected thin below prior trough, got %s", got)
	}

	// rises back above the prior peak
	series, err = BuildKagi(closeBars(100, 90, 101), 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []struct {
		weight   LineWeight
		reversal bool
	}{
		{WeightThin, false},
		{WeightThick, true},
	}
	if len(series.Segments) != len(want) {
		t.Fatalf("expected %d segments, got %d", len(want), len(series.Segments))
	}
	for i, w := range want {
		seg := series.Segments[i]
		if seg.Weight != w.weight || seg.Reversal != w.reversal {
			t.Errorf("segment %d: got %+v, want weight %s reversal %v", i, seg, w.weight, w.reversal)
		}
	}
}

func TestKagiShortInput(t *testing.T) {
	series, err := BuildKagi(closeBars(100), 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Segments) != 0 {
		t.Errorf("expected empty series, got %d segments", len(series.Segments))
	}
}

func TestKagiBadReversalAmount(t *testing.T) {
	_, err := BuildKagi(closeBars(100, 105), -0.02)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if cfgErr.Param != "reversal amount" {
		t.Errorf("unexpected param %q", cfgErr.Param)
	}
}
