// Command recover runs the recovery pipeline and its profile tools once
// from the command line and prints the JSON result.
//
//	recover [flags] recover      --pnr PNR --last-name NAME
//	recover [flags] eligibility  --last-name NAME --contact EMAIL_OR_PHONE
//	recover [flags] profile      --last-name NAME --contact EMAIL_OR_PHONE
//	recover [flags] complete     --last-name NAME --contact EMAIL_OR_PHONE
//	recover [flags] filter-seats --seat-file IN --out OUT
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"flight-recovery-service/internal/infrastructure/bootstrap"
	"flight-recovery-service/internal/infrastructure/config"
	repo "flight-recovery-service/internal/interface/repository"
	"flight-recovery-service/internal/usecase"
	"flight-recovery-service/pkg/logger"
	"flight-recovery-service/pkg/metrics"
	"flight-recovery-service/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	flag "github.com/spf13/pflag"
)

var errUsage = errors.New("usage error")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run executes one command. Every open resource is released before it returns.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("recover", flag.ContinueOnError)
	fs.SetOutput(stderr)
	pnr := fs.String("pnr", "", "passenger name record")
	lastName := fs.String("last-name", "", "passenger last name")
	contact := fs.String("contact", "", "email or phone number")
	seatFile := fs.String("seat-file", "", "seat map file to filter (defaults to SEAT_MAP_FILE)")
	outFile := fs.String("out", "available_seats.json", "output file for filter-seats")
	logLevel := fs.String("log-level", "warn", "log level")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: recover [flags] recover|eligibility|profile|complete|filter-seats\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("%w: expected exactly one command", errUsage)
	}
	command := fs.Arg(0)

	log := logger.NewLoggerWithLevel(*logLevel)
	defer log.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if command == "filter-seats" {
		if err := filterSeats(cfg, *seatFile, *outFile); err != nil {
			return fmt.Errorf("seat filtering failed: %w", err)
		}
		fmt.Fprintf(stderr, "Filtered seat data saved to: %s\n", *outFile)
		return nil
	}

	switch command {
	case "recover":
	case "eligibility", "profile", "complete":
		if *lastName == "" || *contact == "" {
			return fmt.Errorf("%w: both --last-name and --contact are required", errUsage)
		}
	default:
		fs.Usage()
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}

	ctx := context.Background()
	sources, err := bootstrap.OpenSources(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open data sources: %w", err)
	}
	defer func() {
		if err := sources.Close(ctx); err != nil {
			log.Error("Data source close error", "error", err)
		}
	}()

	matcher := utils.NewProfileMatcher(log)
	profiles := usecase.NewProfileService(sources.Profiles, matcher, log)

	var result interface{}
	switch command {
	case "recover":
		coordinator := usecase.NewRecoveryCoordinator(
			sources.Disruptions,
			sources.Profiles,
			sources.Inventory,
			matcher,
			utils.NewFlightExtractor(log),
			utils.NewSeatExtractor(log),
			metrics.NewMetrics(cfg.MetricsNamespace, prometheus.NewRegistry()),
			log,
		)
		result, err = coordinator.Recover(ctx, *pnr, *lastName)
	case "eligibility":
		result, err = profiles.CheckEligibility(ctx, *lastName, *contact)
	case "profile":
		result, err = profiles.FindProfile(ctx, *lastName, *contact)
	case "complete":
		result, err = profiles.CompleteInfo(ctx, *lastName, *contact)
	}
	if err != nil {
		return fmt.Errorf("%s failed: %w", command, err)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

func filterSeats(cfg *config.Config, in, out string) error {
	if in == "" {
		in = cfg.SeatMapFile
	}
	seatMap, err := repo.LoadSeatMapFile(in)
	if err != nil {
		return err
	}
	return repo.WriteJSONFile(out, utils.FilterAvailableSeats(seatMap))
}
