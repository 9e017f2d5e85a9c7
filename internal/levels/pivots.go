// Package levels finds support/resistance price levels from raw bars and
// emits volume-confirmed breakout signals against them.
package levels

import (
	"fmt"
	"sort"

	"stock-chart-analyzer/internal/market"
)

// LevelKind distinguishes support from resistance
type LevelKind string

const (
	KindSupport    LevelKind = "support"
	KindResistance LevelKind = "resistance"
)

// Level is a price level derived from pivot extrema in the raw bars
type Level struct {
	Price         float64   `json:"price"`
	Kind          LevelKind `json:"kind"`
	TouchCount    int       `json:"touch_count"`
	LastSeenIndex int       `json:"last_seen_index"`
}

// LevelSet holds the detected levels of both kinds
type LevelSet struct {
	Support    []Level `json:"support"`    // ascending by price
	Resistance []Level `json:"resistance"` // descending by price
}

// ConfigError reports an invalid detector parameter
type ConfigError struct {
	Param string
	Value int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %d: must be positive", e.Param, e.Value)
}

// DefaultHalfWindow is the pivot half-window used when the caller passes 0.
const DefaultHalfWindow = 5

const maxLevelsPerKind = 5

// DetectLevels finds pivot highs and lows: a bar's high is a resistance
// pivot when it is the maximum high within halfWindow bars on both sides,
// and symmetrically for lows. Levels are deduplicated by price, counting
// repeat touches, and only the 5 most extreme of each kind are kept.
// Sequences shorter than 2*halfWindow+1 return an empty set.
func DetectLevels(bars []market.Bar, halfWindow int) (*LevelSet, error) {
	if halfWindow == 0 {
		halfWindow = DefaultHalfWindow
	}
	if halfWindow < 0 {
		return nil, &ConfigError{Param: "half window", Value: halfWindow}
	}

	set := &LevelSet{Support: []Level{}, Resistance: []Level{}}
	if len(bars) < 2*halfWindow+1 {
		return set, nil
	}

	resistance := map[float64]*Level{}
	support := map[float64]*Level{}

	for i := halfWindow; i < len(bars)-halfWindow; i++ {
		if isWindowMax(bars, i, halfWindow) {
			touch(resistance, bars[i].High, KindResistance, i)
		}
		if isWindowMin(bars, i, halfWindow) {
			touch(support, bars[i].Low, KindSupport, i)
		}
	}

	for _, l := range resistance {
		set.Resistance = append(set.Resistance, *l)
	}
	for _, l := range support {
		set.Support = append(set.Support, *l)
	}

	// resistance: highest first; support: ascending, nearest last
	sort.Slice(set.Resistance, func(i, j int) bool { return set.Resistance[i].Price > set.Resistance[j].Price })
	sort.Slice(set.Support, func(i, j int) bool { return set.Support[i].Price < set.Support[j].Price })

	if len(set.Resistance) > maxLevelsPerKind {
		set.Resistance = set.Resistance[:maxLevelsPerKind]
	}
	if len(set.Support) > maxLevelsPerKind {
		set.Support = set.Support[len(set.Support)-maxLevelsPerKind:]
	}

	return set, nil
}

func isWindowMax(bars []market.Bar, i, halfWindow int) bool {
	for j := i - halfWindow; j <= i+halfWindow; j++ {
		if bars[j].High > bars[i].High {
			return false
		}
	}
	return true
}

func isWindowMin(bars []market.Bar, i, halfWindow int) bool {
	for j := i - halfWindow; j <= i+halfWindow; j++ {
		if bars[j].Low < bars[i].Low {
			return false
		}
	}
	return true
}

func touch(m map[float64]*Level, price float64, kind LevelKind, index int) {
	if l, ok := m[price]; ok {
		l.TouchCount++
		if index > l.LastSeenIndex {
			l.LastSeenIndex = index
		}
		return
	}
	m[price] = &Level{Price: price, Kind: kind, TouchCount: 1, LastSeenIndex: index}
}
