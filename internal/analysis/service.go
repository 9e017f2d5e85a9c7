package analysis

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"stock-chart-analyzer/internal/market"
)

// Service wraps the pure Analyze call with structured logging. The core
// itself never logs; everything observable happens at this boundary.
type Service struct {
	logger zerolog.Logger
}

// NewService creates an analysis service logging through the given logger.
func NewService(logger zerolog.Logger) *Service {
	return &Service{logger: logger}
}

// Run analyzes the bars for one symbol, tagging every log line with a
// fresh run ID.
func (s *Service) Run(symbol string, bars []market.Bar, cfg Config) (*Report, error) {
	runID := uuid.NewString()
	log := s.logger.With().
		Str("run_id", runID).
		Str("symbol", symbol).
		Int("bars", len(bars)).
		Logger()

	start := time.Now()
	report, err := Analyze(bars, cfg)
	if err != nil {
		log.Error().Err(err).Msg("analysis failed")
		return nil, err
	}

	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("bricks", len(report.Renko.Bricks)).
		Int("kagi_lines", len(report.Kagi.Segments)).
		Int("pf_columns", len(report.PointFigure.Columns)).
		Int("support_levels", len(report.Levels.Support)).
		Int("resistance_levels", len(report.Levels.Resistance)).
		Int("breakouts", len(report.Breakouts)).
		Msg("analysis complete")

	return report, nil
}
