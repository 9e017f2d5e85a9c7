package levels

import (
	"stock-chart-analyzer/internal/indicators"
	"stock-chart-analyzer/internal/market"
)

// BreakoutDirection of a confirmed level break
type BreakoutDirection string

const (
	BreakoutUpward   BreakoutDirection = "upward"
	BreakoutDownward BreakoutDirection = "downward"
)

// BreakoutSignal is a volume-confirmed close beyond a detected level
type BreakoutSignal struct {
	AtIndex         int               `json:"at_index"`
	Direction       BreakoutDirection `json:"direction"`
	TriggerPrice    float64           `json:"trigger_price"`
	ReferenceLevel  Level             `json:"reference_level"`
	VolumeConfirmed bool              `json:"volume_confirmed"`
}

const (
	// DefaultVolumeLookback is the trailing volume window used when the
	// caller passes 0.
	DefaultVolumeLookback = 5
	longVolumeWindow      = 20
	breakoutEpsilon       = 0.001 // close must clear the level by 0.1%
	volumeSurgeRatio      = 1.5
)

// DetectBreakouts compares the latest close against the detected levels.
// A signal fires only when the close clears a level by more than 0.1% AND
// the trailing volume average runs above 1.5x the 20-bar average; a price
// break on flat volume emits nothing. At most one signal per side is
// returned, referencing the most extreme level broken.
func DetectBreakouts(bars []market.Bar, levels *LevelSet, volumeLookback int) ([]BreakoutSignal, error) {
	if volumeLookback == 0 {
		volumeLookback = DefaultVolumeLookback
	}
	if volumeLookback < 0 {
		return nil, &ConfigError{Param: "volume lookback", Value: volumeLookback}
	}

	var signals []BreakoutSignal
	if len(bars) == 0 || levels == nil {
		return signals, nil
	}

	recentVolume := indicators.CalculateAverageVolume(bars, volumeLookback)
	baseVolume := indicators.CalculateAverageVolume(bars, longVolumeWindow)
	surge := baseVolume > 0 && recentVolume > baseVolume*volumeSurgeRatio
	if !surge {
		return signals, nil
	}

	atIndex := len(bars) - 1
	close := bars[atIndex].Close

	// Resistance is sorted highest first: the first level cleared is the
	// most significant break.
	for _, lvl := range levels.Resistance {
		if close > lvl.Price*(1+breakoutEpsilon) {
			signals = append(signals, BreakoutSignal{
				AtIndex:         atIndex,
				Direction:       BreakoutUpward,
				TriggerPrice:    close,
				ReferenceLevel:  lvl,
				VolumeConfirmed: true,
			})
			break
		}
	}

	for _, lvl := range levels.Support {
		if close < lvl.Price*(1-breakoutEpsilon) {
			signals = append(signals, BreakoutSignal{
				AtIndex:         atIndex,
				Direction:       BreakoutDownward,
				TriggerPrice:    close,
				ReferenceLevel:  lvl,
				VolumeConfirmed: true,
			})
			break
		}
	}

	return signals, nil
}
