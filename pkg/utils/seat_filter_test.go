package utils

import (
	"encoding/json"
	"testing"

	"flight-recovery-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterAvailableSeats(t *testing.T) {
	resp := decodeSeatMap(t, seatMapJSON)
	before, err := json.Marshal(resp)
	require.NoError(t, err)

	filtered := FilterAvailableSeats(resp)
	require.NotNil(t, filtered)
	require.NotNil(t, filtered.Data)
	require.Len(t, filtered.Data.SeatMaps, 2)

	seatMap := filtered.Data.SeatMaps[0].SeatMap
	require.NotNil(t, seatMap)
	assert.Equal(t, []string{"1"}, seatMap.Decks.Keys())

	deck, ok := seatMap.Decks.Get("1")
	require.True(t, ok)
	assert.Equal(t, []string{"Y", "A"}, deck.Compartments.Keys())

	y, _ := deck.Compartments.Get("Y")
	var designators []string
	for _, u := range y.Units {
		assert.True(t, u.IsAvailable())
		designators = append(designators, u.Designator.String())
	}
	assert.Equal(t, []string{"12A", "12F"}, designators)

	a, _ := deck.Compartments.Get("A")
	assert.Len(t, a.Units, 2)

	assert.Nil(t, filtered.Data.SeatMaps[1].SeatMap)

	after, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestFilterAvailableSeats_DoesNotShareState(t *testing.T) {
	resp := decodeSeatMap(t, seatMapJSON)
	filtered := FilterAvailableSeats(resp)

	deck, _ := filtered.Data.SeatMaps[0].SeatMap.Decks.Get("1")
	y, _ := deck.Compartments.Get("Y")
	*y.Units[0].Availability = 0
	y.Units[0].Properties[0].Code = "AISLE"

	origDeck, _ := resp.Data.SeatMaps[0].SeatMap.Decks.Get("1")
	origY, _ := origDeck.Compartments.Get("Y")
	assert.Equal(t, 5, *origY.Units[0].Availability)
	assert.Equal(t, "WINDOW", origY.Units[0].Properties[0].Code.String())
}

func TestFilterAvailableSeats_EmptyInputs(t *testing.T) {
	assert.Nil(t, FilterAvailableSeats(nil))

	out := FilterAvailableSeats(decodeSeatMap(t, `{}`))
	require.NotNil(t, out)
	assert.Nil(t, out.Data)
}

func TestFilterAvailableSeats_ExtractsSameSeats(t *testing.T) {
	e := NewSeatExtractor(logger.NewNopLogger())
	resp := decodeSeatMap(t, seatMapJSON)

	assert.Equal(t, e.ExtractSeats(resp), e.ExtractSeats(FilterAvailableSeats(resp)))
}
