package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"flight-recovery-service/internal/domain/entity"
	"flight-recovery-service/internal/domain/repository"
	repo "flight-recovery-service/internal/interface/repository"
	"flight-recovery-service/pkg/logger"
	"flight-recovery-service/pkg/metrics"
	"flight-recovery-service/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDisruptionRepo struct {
	mock.Mock
}

func (m *mockDisruptionRepo) FindByPNR(ctx context.Context, pnr string) (*entity.DisruptionRecord, error) {
	args := m.Called(ctx, pnr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DisruptionRecord), args.Error(1)
}

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) LoadAll(ctx context.Context) ([]entity.ProfileRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ProfileRecord), args.Error(1)
}

type mockInventoryRepo struct {
	mock.Mock
}

func (m *mockInventoryRepo) SearchFlights(ctx context.Context, d *entity.DisruptionRecord) (*entity.FlightSearchResponse, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FlightSearchResponse), args.Error(1)
}

func (m *mockInventoryRepo) GetSeatMap(ctx context.Context, d *entity.DisruptionRecord) (*entity.SeatMapResponse, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SeatMapResponse), args.Error(1)
}

const testDisruptions = `[
  {"pnr": "ABC123", "event_type": "flight_cancelled", "origin": "DEL", "destination": "BOM",
   "scheduled_departure_time": "2025-03-01T04:30:00Z",
   "user_info": {"USR_FIRSTNAME": "Asha", "USR_LASTNAME": "Sharma", "USR_EMAIL": "asha@example.com", "USR_MOBILE": 9876543210}},
  {"pnr": "DLY456", "event_type": "flight_delayed", "origin": "BLR", "destination": "HYD",
   "user_info": {"USR_LASTNAME": "Kapoor", "USR_EMAIL": "kapoor@example.com"}},
  {"pnr": "LOW789", "event_type": "flight_cancelled", "origin": "DEL", "destination": "GOI",
   "user_info": {"USR_LASTNAME": "Nair", "USR_MOBILE": "9000000000"}}
]`

const testProfiles = `[
  {"user_info": {"USR_LASTNAME": "Sharma", "USR_EMAIL": "asha@example.com", "USR_MOBILE": "9876543210"},
   "booking_details": [{"HIGHSPENDERHIGHFREQ": 0, "HIGHSPENDERLOWFREQ": 1, "STUDENT": "0", "PNR": "OLD001"}]},
  {"user_info": {"USR_LASTNAME": "Nair", "USR_MOBILE": "9000000000"},
   "booking_details": [{"HIGHSPENDERHIGHFREQ": 0, "HIGHSPENDERLOWFREQ": 0, "STUDENT": 0}]}
]`

const testFlights = `{"data": {"trips": [{"journeysAvailable": [
  {"journeyKey": "J1", "stops": 0, "segments": [{"identifier": {"carrierCode": "6E", "identifier": "2134"},
    "designator": {"origin": "DEL", "destination": "BOM", "utcDeparture": "2025-03-01T10:00:00Z"}}],
   "passengerFares": [{"FareClass": "Economy", "totalFareAmount": 4500}]},
  {"journeyKey": "J1", "segments": [{"identifier": {"carrierCode": "6E", "identifier": "9999"},
    "designator": {"utcDeparture": "2025-03-01T11:00:00Z"}}]}
]}]}}`

const testSeats = `{"data": {"seatMaps": [{"seatMap": {"decks": {"1": {"compartments": {"Y": {"units": [
  {"designator": "1A", "travelClassCode": "Y", "assignable": true, "availability": 1, "properties": [{"code": "WINDOW"}]},
  {"designator": "1B", "travelClassCode": "Y", "assignable": false, "availability": 1}
]}}}}}}]}}`

func mustDecode[T any](t *testing.T, raw string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func newTestCoordinator(t *testing.T, d repository.DisruptionRepository, p repository.ProfileRepository, i repository.InventoryRepository) *RecoveryCoordinator {
	log := logger.NewNopLogger()
	return NewRecoveryCoordinator(
		d, p, i,
		utils.NewProfileMatcher(log),
		utils.NewFlightExtractor(log),
		utils.NewSeatExtractor(log),
		metrics.NewMetrics("test", prometheus.NewRegistry()),
		log,
	)
}

func newFileCoordinator(t *testing.T, profiles []entity.ProfileRecord) *RecoveryCoordinator {
	flights := mustDecode[entity.FlightSearchResponse](t, testFlights)
	seats := mustDecode[entity.SeatMapResponse](t, testSeats)
	ds := repo.NewFileDataSourceFromData(
		mustDecode[entity.Items[entity.DisruptionRecord]](t, testDisruptions),
		profiles,
		&flights,
		&seats,
		logger.NewNopLogger(),
	)
	return newTestCoordinator(t, ds, ds, ds)
}

func TestRecoveryCoordinator_TerminalOutcomes(t *testing.T) {
	c := newFileCoordinator(t, mustDecode[entity.Items[entity.ProfileRecord]](t, testProfiles))

	tests := []struct {
		name     string
		pnr      string
		lastName string
		status   entity.RecoveryStatus
		reason   entity.RecoveryReason
		wantPNR  string
	}{
		{"missing pnr", "", "Sharma", entity.RecoveryError, entity.ReasonPNRAndLastNameRequired, ""},
		{"missing last name", "ABC123", "", entity.RecoveryError, entity.ReasonPNRAndLastNameRequired, ""},
		{"blank last name", "ABC123", "   ", entity.RecoveryError, entity.ReasonPNRAndLastNameRequired, ""},
		{"unknown pnr", "PNR123", "Sharma", entity.RecoveryError, entity.ReasonPNRNotFound, ""},
		{"delayed flight", "DLY456", "Kapoor", entity.RecoveryNotApplicable, entity.ReasonNoFlightDisruption, "DLY456"},
		{"no qualifying flags", "LOW789", "Nair", entity.RecoveryIneligible, entity.ReasonNotHighSpenderOrStudent, "LOW789"},
		{"last name not in store", "ABC123", "Verma", entity.RecoveryIneligible, entity.ReasonNotHighSpenderOrStudent, "ABC123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope, err := c.Recover(context.Background(), tt.pnr, tt.lastName)
			require.NoError(t, err)

			assert.True(t, envelope.Final)
			assert.Equal(t, tt.status, envelope.Status)
			assert.Equal(t, tt.reason, envelope.Reason)
			assert.Equal(t, tt.wantPNR, envelope.PNR)
			assert.Nil(t, envelope.Passenger)
			assert.Nil(t, envelope.Recovery)
		})
	}
}

func TestRecoveryCoordinator_Success(t *testing.T) {
	c := newFileCoordinator(t, mustDecode[entity.Items[entity.ProfileRecord]](t, testProfiles))

	envelope, err := c.Recover(context.Background(), "ABC123", "sharma")
	require.NoError(t, err)

	assert.True(t, envelope.Final)
	assert.Equal(t, entity.RecoverySuccess, envelope.Status)
	assert.Empty(t, envelope.Reason)
	assert.Equal(t, "ABC123", envelope.PNR)

	require.NotNil(t, envelope.Passenger)
	assert.Equal(t, "sharma", envelope.Passenger.LastName)
	assert.Equal(t, "asha@example.com", envelope.Passenger.Email)
	assert.Equal(t, "9876543210", envelope.Passenger.Phone)
	require.Len(t, envelope.Passenger.PastData, 1)
	assert.Equal(t, "OLD001", envelope.Passenger.PastData[0].BookingDetails[0]["PNR"])

	require.NotNil(t, envelope.OriginalFlight)
	assert.Equal(t, "DEL", envelope.OriginalFlight.Origin)

	require.NotNil(t, envelope.Recovery)
	require.Len(t, envelope.Recovery.AvailableFlights, 1)
	assert.Equal(t, "6E2134", envelope.Recovery.AvailableFlights[0].FlightNumber)
	require.Len(t, envelope.Recovery.AvailableSeats, 1)
	assert.Equal(t, "1A", envelope.Recovery.AvailableSeats[0].SeatNumber)
	assert.Equal(t, []string{"WINDOW"}, envelope.Recovery.AvailableSeats[0].SeatType)
}

func TestRecoveryCoordinator_SuccessWithEmptyInventory(t *testing.T) {
	profiles := mustDecode[entity.Items[entity.ProfileRecord]](t, testProfiles)
	ds := repo.NewFileDataSourceFromData(
		mustDecode[entity.Items[entity.DisruptionRecord]](t, testDisruptions),
		profiles, nil, nil, logger.NewNopLogger(),
	)
	c := newTestCoordinator(t, ds, ds, ds)

	envelope, err := c.Recover(context.Background(), "ABC123", "Sharma")
	require.NoError(t, err)
	require.Equal(t, entity.RecoverySuccess, envelope.Status)

	out, err := json.Marshal(envelope.Recovery)
	require.NoError(t, err)
	assert.JSONEq(t, `{"available_flights": [], "available_seats": []}`, string(out))
}

func TestRecoveryCoordinator_EmptyProfileStore(t *testing.T) {
	c := newFileCoordinator(t, nil)

	envelope, err := c.Recover(context.Background(), "ABC123", "Sharma")
	require.NoError(t, err)

	assert.Equal(t, entity.RecoveryError, envelope.Status)
	assert.Equal(t, entity.ReasonProfileStoreUnavailable, envelope.Reason)
}

func TestRecoveryCoordinator_DataSourceErrors(t *testing.T) {
	ctx := context.Background()
	cancelled := &entity.DisruptionRecord{
		PNR:       "ABC123",
		EventType: entity.EventFlightCancelled,
		UserInfo:  entity.UserInfo{LastName: "Sharma", Email: "asha@example.com"},
	}
	profiles := []entity.ProfileRecord{{
		UserInfo:       entity.UserInfo{LastName: "Sharma", Email: "asha@example.com"},
		BookingDetails: []entity.BookingDetail{{entity.FlagStudent: 1}},
	}}
	boom := errors.New("connection refused")

	t.Run("disruption feed", func(t *testing.T) {
		d := new(mockDisruptionRepo)
		d.On("FindByPNR", ctx, "ABC123").Return(nil, boom)

		_, err := newTestCoordinator(t, d, new(mockProfileRepo), new(mockInventoryRepo)).Recover(ctx, "ABC123", "Sharma")
		assert.ErrorIs(t, err, boom)
		d.AssertExpectations(t)
	})

	t.Run("profile store", func(t *testing.T) {
		d := new(mockDisruptionRepo)
		d.On("FindByPNR", ctx, "ABC123").Return(cancelled, nil)
		p := new(mockProfileRepo)
		p.On("LoadAll", ctx).Return(nil, boom)

		_, err := newTestCoordinator(t, d, p, new(mockInventoryRepo)).Recover(ctx, "ABC123", "Sharma")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("flight search", func(t *testing.T) {
		d := new(mockDisruptionRepo)
		d.On("FindByPNR", ctx, "ABC123").Return(cancelled, nil)
		p := new(mockProfileRepo)
		p.On("LoadAll", ctx).Return(profiles, nil)
		i := new(mockInventoryRepo)
		i.On("SearchFlights", ctx, cancelled).Return(nil, boom)

		_, err := newTestCoordinator(t, d, p, i).Recover(ctx, "ABC123", "Sharma")
		assert.ErrorIs(t, err, boom)
		i.AssertNotCalled(t, "GetSeatMap", mock.Anything, mock.Anything)
	})

	t.Run("seat map", func(t *testing.T) {
		d := new(mockDisruptionRepo)
		d.On("FindByPNR", ctx, "ABC123").Return(cancelled, nil)
		p := new(mockProfileRepo)
		p.On("LoadAll", ctx).Return(profiles, nil)
		i := new(mockInventoryRepo)
		i.On("SearchFlights", ctx, cancelled).Return(&entity.FlightSearchResponse{}, nil)
		i.On("GetSeatMap", ctx, cancelled).Return(nil, boom)

		_, err := newTestCoordinator(t, d, p, i).Recover(ctx, "ABC123", "Sharma")
		assert.ErrorIs(t, err, boom)
	})
}

func TestRecoveryCoordinator_ShortCircuits(t *testing.T) {
	ctx := context.Background()
	d := new(mockDisruptionRepo)
	d.On("FindByPNR", ctx, "DLY456").Return(&entity.DisruptionRecord{PNR: "DLY456", EventType: "flight_delayed"}, nil)
	p := new(mockProfileRepo)
	i := new(mockInventoryRepo)

	envelope, err := newTestCoordinator(t, d, p, i).Recover(ctx, "DLY456", "Kapoor")
	require.NoError(t, err)
	assert.Equal(t, entity.RecoveryNotApplicable, envelope.Status)

	p.AssertNotCalled(t, "LoadAll", mock.Anything)
	i.AssertNotCalled(t, "SearchFlights", mock.Anything, mock.Anything)
}
