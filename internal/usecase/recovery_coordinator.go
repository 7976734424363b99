package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"flight-recovery-service/internal/domain/entity"
	"flight-recovery-service/internal/domain/repository"
	"flight-recovery-service/pkg/logger"
	"flight-recovery-service/pkg/metrics"
	"flight-recovery-service/pkg/utils"

	"github.com/google/uuid"
)

// RecoveryCoordinator resolves a PNR into the candidate facts for rebooking
type RecoveryCoordinator struct {
	disruptionRepo  repository.DisruptionRepository
	profileRepo     repository.ProfileRepository
	inventoryRepo   repository.InventoryRepository
	matcher         *utils.ProfileMatcher
	flightExtractor *utils.FlightExtractor
	seatExtractor   *utils.SeatExtractor
	metrics         *metrics.Metrics
	logger          logger.Logger
}

// NewRecoveryCoordinator creates a new recovery coordinator
func NewRecoveryCoordinator(
	disruptionRepo repository.DisruptionRepository,
	profileRepo repository.ProfileRepository,
	inventoryRepo repository.InventoryRepository,
	matcher *utils.ProfileMatcher,
	flightExtractor *utils.FlightExtractor,
	seatExtractor *utils.SeatExtractor,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *RecoveryCoordinator {
	return &RecoveryCoordinator{
		disruptionRepo:  disruptionRepo,
		profileRepo:     profileRepo,
		inventoryRepo:   inventoryRepo,
		matcher:         matcher,
		flightExtractor: flightExtractor,
		seatExtractor:   seatExtractor,
		metrics:         metrics,
		logger:          logger,
	}
}

// Recover runs one recovery request to a terminal envelope. Tagged outcomes
// (validation, not found, ineligible) come back as envelopes; the error is
// reserved for data sources that could not be read. Nothing is retried.
func (c *RecoveryCoordinator) Recover(ctx context.Context, pnr, lastName string) (*entity.RecoveryEnvelope, error) {
	start := time.Now()
	log := c.logger.With("requestId", uuid.NewString(), "pnr", pnr)
	log.Info("Recovery requested", "lastName", lastName)

	envelope, err := c.recover(ctx, log, pnr, lastName)

	c.metrics.ProcessingTime.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.ErrorsCount.WithLabelValues("recover").Inc()
		log.Error("Recovery failed", "error", err)
		return nil, err
	}

	c.metrics.RecoveriesTotal.WithLabelValues(string(envelope.Status)).Inc()
	log.Info("Recovery completed", "status", envelope.Status, "reason", envelope.Reason)
	return envelope, nil
}

func (c *RecoveryCoordinator) recover(ctx context.Context, log logger.Logger, pnr, lastName string) (*entity.RecoveryEnvelope, error) {
	if strings.TrimSpace(pnr) == "" || strings.TrimSpace(lastName) == "" {
		return entity.NewTerminalEnvelope(entity.RecoveryError, entity.ReasonPNRAndLastNameRequired, ""), nil
	}

	disruption, err := c.disruptionRepo.FindByPNR(ctx, pnr)
	if errors.Is(err, repository.ErrNotFound) {
		return entity.NewTerminalEnvelope(entity.RecoveryError, entity.ReasonPNRNotFound, ""), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read disruption feed: %w", err)
	}

	if !disruption.IsCancellation() {
		log.Info("Disruption is not a cancellation", "eventType", disruption.EventType)
		return entity.NewTerminalEnvelope(entity.RecoveryNotApplicable, entity.ReasonNoFlightDisruption, pnr), nil
	}

	profiles, err := c.profileRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile store: %w", err)
	}

	identifier := disruption.ContactIdentifier()
	eligibility := c.matcher.Match(lastName, identifier, profiles)
	switch eligibility.Status {
	case entity.EligibilityEligible:
	case entity.EligibilityError:
		return entity.NewTerminalEnvelope(entity.RecoveryError, entity.ReasonProfileStoreUnavailable, pnr), nil
	default:
		log.Info("Passenger not eligible", "eligibility", eligibility.Status)
		return entity.NewTerminalEnvelope(entity.RecoveryIneligible, entity.ReasonNotHighSpenderOrStudent, pnr), nil
	}

	history := c.matcher.Lookup(lastName, identifier, profiles)

	flightTree, err := c.inventoryRepo.SearchFlights(ctx, disruption)
	if err != nil {
		return nil, fmt.Errorf("failed to search flights: %w", err)
	}
	flights := c.flightExtractor.ExtractFlights(flightTree)

	seatTree, err := c.inventoryRepo.GetSeatMap(ctx, disruption)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seat map: %w", err)
	}
	seats := c.seatExtractor.ExtractSeats(seatTree)

	c.metrics.CandidateFlights.Observe(float64(len(flights)))
	c.metrics.CandidateSeats.Observe(float64(len(seats)))

	pastData := history.Data
	if pastData == nil {
		pastData = []entity.ProfileRecord{}
	}

	return &entity.RecoveryEnvelope{
		Final:  true,
		Status: entity.RecoverySuccess,
		PNR:    pnr,
		Passenger: &entity.PassengerInfo{
			LastName: lastName,
			Email:    disruption.UserInfo.Email.String(),
			Phone:    disruption.UserInfo.Mobile.String(),
			PastData: pastData,
		},
		OriginalFlight: disruption,
		Recovery: &entity.RecoveryCandidates{
			AvailableFlights: flights,
			AvailableSeats:   seats,
		},
	}, nil
}
