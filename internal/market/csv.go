package market

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ErrNoData is returned when a source contains no bars at all.
var ErrNoData = errors.New("no bar data available")

// ReadCSV loads bars from a CSV file with a header row of
// timestamp,open,high,low,close,volume. Timestamps are RFC 3339.
func ReadCSV(path string) ([]Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bar file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read bar file %s: %w", path, err)
	}
	if len(records) <= 1 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoData)
	}

	bars := make([]Bar, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) < 6 {
			return nil, fmt.Errorf("row %d: expected 6 columns, got %d", i+2, len(rec))
		}
		ts, err := time.Parse(time.RFC3339, rec[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad timestamp %q: %w", i+2, rec[0], err)
		}
		vals := make([]float64, 5)
		for j := 0; j < 5; j++ {
			v, err := strconv.ParseFloat(rec[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad value %q: %w", i+2, rec[j+1], err)
			}
			vals[j] = v
		}
		bars = append(bars, Bar{
			Timestamp: ts,
			Open:      vals[0],
			High:      vals[1],
			Low:       vals[2],
			Close:     vals[3],
			Volume:    vals[4],
		})
	}
	return bars, nil
}
