package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"flight-recovery-service/internal/domain/entity"
	"flight-recovery-service/internal/domain/repository"
	"flight-recovery-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const disruptionFeed = `[
  {"pnr": "ABC123", "event_type": "flight_cancelled", "origin": "DEL", "destination": "BOM",
   "scheduled_departure_time": "2025-03-01T04:30:00Z",
   "user_info": {"USR_LASTNAME": "Sharma", "USR_EMAIL": "asha@example.com", "USR_MOBILE": 9876543210}},
  {"pnr": 12345},
  {"pnr": "ABC123", "event_type": "flight_delayed"}
]`

const profileStore = `[
  {"user_info": {"USR_LASTNAME": "Sharma", "USR_EMAIL": "asha@example.com"},
   "booking_details": [{"HIGHSPENDERHIGHFREQ": 1, "STUDENT": 0, "PNR": "OLD001"}]},
  {"user_info": {"USR_LASTNAME": "Nair"}, "booking_details": null}
]`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewFileDataSource(t *testing.T) {
	dir := t.TempDir()
	paths := FilePaths{
		Disruptions:  writeFile(t, dir, "cancell_trigger.json", disruptionFeed),
		Profiles:     writeFile(t, dir, "cdp.json", profileStore),
		FlightSearch: writeFile(t, dir, "flights.json", `{"data": {"trips": []}}`),
		SeatMap:      filepath.Join(dir, "missing.json"),
	}

	ds, err := NewFileDataSource(paths, logger.NewNopLogger())
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("first matching PNR wins", func(t *testing.T) {
		record, err := ds.FindByPNR(ctx, "ABC123")
		require.NoError(t, err)
		assert.Equal(t, "flight_cancelled", record.EventType)
		assert.Equal(t, "9876543210", record.UserInfo.Mobile.String())
	})

	t.Run("PNR match is exact", func(t *testing.T) {
		_, err := ds.FindByPNR(ctx, "abc123")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("profiles in file order", func(t *testing.T) {
		profiles, err := ds.LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, profiles, 2)
		assert.Equal(t, "Sharma", profiles[0].UserInfo.LastName.String())
		assert.Equal(t, "OLD001", profiles[0].BookingDetails[0]["PNR"])
	})

	t.Run("missing seat map reads as nil", func(t *testing.T) {
		seatMap, err := ds.GetSeatMap(ctx, &entity.DisruptionRecord{})
		require.NoError(t, err)
		assert.Nil(t, seatMap)
	})

	t.Run("flight search snapshot", func(t *testing.T) {
		flights, err := ds.SearchFlights(ctx, &entity.DisruptionRecord{})
		require.NoError(t, err)
		require.NotNil(t, flights)
		assert.NotNil(t, flights.Data)
	})
}

func TestNewFileDataSource_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing disruption feed", func(t *testing.T) {
		_, err := NewFileDataSource(FilePaths{Disruptions: filepath.Join(dir, "nope.json")}, logger.NewNopLogger())
		assert.Error(t, err)
	})

	t.Run("malformed profile store", func(t *testing.T) {
		_, err := NewFileDataSource(FilePaths{Profiles: writeFile(t, dir, "bad.json", `{"broken"`)}, logger.NewNopLogger())
		assert.Error(t, err)
	})

	t.Run("no paths", func(t *testing.T) {
		ds, err := NewFileDataSource(FilePaths{}, logger.NewNopLogger())
		require.NoError(t, err)
		profiles, err := ds.LoadAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, profiles)
	})
}

func TestFileDataSource_LoadAllReturnsCopy(t *testing.T) {
	profiles := []entity.ProfileRecord{{UserInfo: entity.UserInfo{LastName: "Rao"}}}
	ds := NewFileDataSourceFromData(nil, profiles, nil, nil, logger.NewNopLogger())

	got, err := ds.LoadAll(context.Background())
	require.NoError(t, err)
	got[0].UserInfo.LastName = "Changed"

	again, _ := ds.LoadAll(context.Background())
	assert.Equal(t, "Rao", again[0].UserInfo.LastName.String())
}

func TestSeatMapFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "seats.json", `{"data": {"seatMaps": [{"seatMap": {"decks": {"2": {}, "1": {}}}}]}}`)

	seatMap, err := LoadSeatMapFile(in)
	require.NoError(t, err)

	out := filepath.Join(dir, "out.json")
	require.NoError(t, WriteJSONFile(out, seatMap))

	reloaded, err := LoadSeatMapFile(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, reloaded.Data.SeatMaps[0].SeatMap.Decks.Keys())
}
