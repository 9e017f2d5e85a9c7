package market

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func makeBar(day int, open, high, low, close, volume float64) Bar {
	return Bar{
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day),
		Open:      open, High: high, Low: low, Close: close,
		Volume: volume,
	}
}

func TestValidateAcceptsWellFormedBars(t *testing.T) {
	bars := []Bar{
		makeBar(0, 100, 105, 98, 103, 1000),
		makeBar(1, 103, 108, 102, 107, 1200),
	}
	if err := Validate(bars); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(nil); err != nil {
		t.Fatalf("empty sequence should pass: %v", err)
	}
}

func TestValidateRejectsMalformedBars(t *testing.T) {
	cases := []struct {
		name   string
		bars   []Bar
		index  int
		reason string
	}{
		{
			name:   "non-positive price",
			bars:   []Bar{makeBar(0, 100, 105, 98, 103, 1000), makeBar(1, 0, 105, 98, 103, 1000)},
			index:  1,
			reason: "non-positive price",
		},
		{
			name:   "high below low",
			bars:   []Bar{makeBar(0, 100, 98, 105, 100, 1000)},
			index:  0,
			reason: "below low",
		},
		{
			name:   "open outside range",
			bars:   []Bar{makeBar(0, 110, 105, 98, 103, 1000)},
			index:  0,
			reason: "outside",
		},
		{
			name:   "close outside range",
			bars:   []Bar{makeBar(0, 100, 105, 98, 96, 1000)},
			index:  0,
			reason: "outside",
		},
		{
			name:   "negative volume",
			bars:   []Bar{makeBar(0, 100, 105, 98, 103, -1)},
			index:  0,
			reason: "negative volume",
		},
		{
			name:   "duplicate timestamp",
			bars:   []Bar{makeBar(0, 100, 105, 98, 103, 1000), makeBar(0, 103, 108, 102, 107, 1200)},
			index:  1,
			reason: "timestamp",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.bars)
			var intErr *IntegrityError
			if !errors.As(err, &intErr) {
				t.Fatalf("expected IntegrityError, got %v", err)
			}
			if intErr.Index != tc.index {
				t.Errorf("index: got %d, want %d", intErr.Index, tc.index)
			}
			if !strings.Contains(intErr.Reason, tc.reason) {
				t.Errorf("reason %q does not mention %q", intErr.Reason, tc.reason)
			}
		})
	}
}

func TestBarHelpers(t *testing.T) {
	bars := []Bar{
		makeBar(0, 100, 105, 98, 102, 1000),
		makeBar(1, 102, 108, 101, 106, 1200),
	}

	closes := Closes(bars)
	if len(closes) != 2 || closes[0] != 102 || closes[1] != 106 {
		t.Errorf("unexpected closes %v", closes)
	}
	if got := MeanClose(bars); got != 104 {
		t.Errorf("mean close: got %v", got)
	}
	if got := LastClose(bars); got != 106 {
		t.Errorf("last close: got %v", got)
	}
	if MeanClose(nil) != 0 || LastClose(nil) != 0 {
		t.Error("empty helpers should return 0")
	}
}
