package main

import (
	"context"
	"delivery-estimate-service/internal/adapters/offers"
	"delivery-estimate-service/internal/adapters/textio"
	"delivery-estimate-service/internal/config"
	"delivery-estimate-service/internal/platform/obs"
	"delivery-estimate-service/internal/ports"
	"delivery-estimate-service/internal/services"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// main is the application composition root.
// It wires the JSON offer catalog behind its port, reads one request from
// INPUT_PATH (or stdin) and writes the estimates to OUTPUT_PATH (or stdout).
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	os.Exit(realMain(cfg, os.Stderr))
}

// realMain runs the estimator and returns the process exit code. Deferred
// cleanup always runs before main exits.
func realMain(cfg *config.Config, stderr io.Writer) int {
	logger := obs.NewLogger(stderr, cfg.LogFormat, cfg.LogLevel)
	ctx, runID := obs.WithRun(context.Background(), logger)
	log := zerolog.Ctx(ctx)
	log.Info().Str("offers", cfg.OffersPath).Msg("estimator starting")

	reg := prometheus.NewRegistry()
	obs.MustRegisterDeliveryMetrics("delivery_estimator", reg)

	catalog, err := offers.LoadFile(ctx, cfg.OffersPath)
	if err != nil {
		log.Error().Err(err).Msg("load offers")
		return 1
	}

	in, closeIn, err := openInput(cfg.InputPath)
	if err != nil {
		log.Error().Err(err).Msg("open input")
		return 1
	}
	defer closeIn()

	out, closeOut, err := openOutput(cfg.OutputPath)
	if err != nil {
		log.Error().Err(err).Msg("open output")
		return 1
	}

	runErr := run(ctx, cfg, catalog, in, out)
	if err := closeOut(); err != nil && runErr == nil {
		runErr = fmt.Errorf("close output: %w", err)
	}

	if cfg.MetricsTextfile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsTextfile, reg); err != nil {
			log.Error().Err(err).Str("path", cfg.MetricsTextfile).Msg("write metrics textfile")
		}
	}

	if runErr != nil {
		log.Error().Err(runErr).Str(obs.RunIDKey, runID).Msg("estimation failed")
		return 1
	}
	log.Info().Str(obs.RunIDKey, runID).Msg("estimator done")
	return 0
}

// run reads one request from in, estimates it and writes the result to out.
func run(ctx context.Context, cfg *config.Config, catalog ports.OfferCatalog, in io.Reader, out io.Writer) error {
	input, err := textio.Read(in)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	res, err := services.EstimateDeliveries(ctx, services.EstimateRequest{
		BaseCost: input.BaseCost,
		Packages: input.Packages,
		Rates:    services.CostRates{PerKilogram: cfg.WeightRate, PerKilometer: cfg.DistanceRate},
		Fleet:    input.Fleet,
	}, catalog)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	if res.Schedule != nil {
		zerolog.Ctx(ctx).Info().
			Int("packages", len(res.Packages)).
			Int("trips", len(res.Schedule.Trips)).
			Int("ineligible", len(res.Schedule.Ineligible)).
			Msg("deliveries scheduled")
	}

	if err := textio.Write(out, res.Packages, res.Schedule != nil); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("openInput: open %q: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("openOutput: create %q: %w", path, err)
	}
	return f, f.Close, nil
}
