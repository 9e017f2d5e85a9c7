// Package charts reconstructs an ordered bar series into time-independent
// derived chart representations: Renko bricks, Kagi lines and Point & Figure
// columns. Builders are pure functions over their inputs; sizing and
// reversal parameters are always passed per call.
package charts

import "fmt"

// Direction of a price move
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// LineWeight of a Kagi line (Yang = thick, Yin = thin)
type LineWeight string

const (
	WeightThick LineWeight = "thick"
	WeightThin  LineWeight = "thin"
)

// BoxType of a Point & Figure column
type BoxType string

const (
	BoxX BoxType = "X"
	BoxO BoxType = "O"
)

// SizeMode selects between auto-calibrated and caller-supplied sizing
type SizeMode string

const (
	SizeModeAuto     SizeMode = "auto"
	SizeModeExplicit SizeMode = "explicit"
)

// ConfigError reports an invalid builder parameter. It is returned before
// any bar is processed.
type ConfigError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Param, e.Value, e.Reason)
}

// floorDiv returns how many whole steps of size fit in span, tolerating
// floating point drift just below a step boundary.
func floorDiv(span, size float64) int {
	if span <= 0 || size <= 0 {
		return 0
	}
	return int(span/size + 1e-9)
}
