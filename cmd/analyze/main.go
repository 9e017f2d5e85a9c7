package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"stock-chart-analyzer/config"
	"stock-chart-analyzer/internal/analysis"
	"stock-chart-analyzer/internal/charts"
	"stock-chart-analyzer/internal/logging"
	"stock-chart-analyzer/internal/market"
)

func main() {
	godotenv.Load()

	var (
		barsPath   = flag.String("bars", "", "CSV file of bars (timestamp,open,high,low,close,volume)")
		configPath = flag.String("config", "", "YAML config file")
		symbol     = flag.String("symbol", "UNKNOWN", "symbol label for logging")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Pretty)

	if *barsPath == "" {
		fmt.Fprintln(os.Stderr, "usage: analyze -bars <file.csv> [-config <file.yaml>] [-symbol <name>]")
		os.Exit(2)
	}

	bars, err := market.ReadCSV(*barsPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *barsPath).Msg("failed to load bars")
	}

	svc := analysis.NewService(logger)
	report, err := svc.Run(*symbol, bars, analysisConfig(cfg.Chart))
	if err != nil {
		logger.Fatal().Err(err).Msg("analysis failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		logger.Fatal().Err(err).Msg("failed to write report")
	}
}

func analysisConfig(c config.ChartConfig) analysis.Config {
	cfg := analysis.Config{
		SizeMode:            charts.SizeMode(c.SizeMode),
		BrickSize:           c.BrickSize,
		KagiReversal:        c.KagiReversal,
		BoxSize:             c.BoxSize,
		BoxFraction:         c.BoxFraction,
		ReversalBoxes:       c.ReversalBoxes,
		PivotWindow:         c.PivotWindow,
		VolumeWindow:        c.VolumeWindow,
		LegacyRenkoReversal: c.LegacyRenko,
	}
	if cfg.SizeMode == "" {
		cfg.SizeMode = charts.SizeModeAuto
	}
	return cfg
}
