package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"flight-recovery-service/internal/domain/entity"
	"flight-recovery-service/internal/domain/repository"
	"flight-recovery-service/pkg/logger"
)

// AirlineAPIConfig holds the airline inventory endpoints and credentials
type AirlineAPIConfig struct {
	FlightSearchURL string
	SeatMapURL      string
	UserKey         string
	AuthToken       string
	Timeout         time.Duration
}

// AirlineAPIRepository fetches live flight search and seat map trees
type AirlineAPIRepository struct {
	logger logger.Logger
	cfg    AirlineAPIConfig
	client *http.Client
}

// NewAirlineAPIRepository creates a new airline inventory client
func NewAirlineAPIRepository(cfg AirlineAPIConfig, logger logger.Logger) repository.InventoryRepository {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &AirlineAPIRepository{
		logger: logger,
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type searchCodes struct {
	Currency  string `json:"currency"`
	VaxDoseNo string `json:"vaxDoseNo"`
}

type searchStations struct {
	OriginStationCodes      []string `json:"originStationCodes"`
	DestinationStationCodes []string `json:"destinationStationCodes"`
}

type searchCriteria struct {
	Dates struct {
		BeginDate string `json:"beginDate"`
	} `json:"dates"`
	FlightFilters struct {
		Type string `json:"type"`
	} `json:"flightFilters"`
	Stations searchStations `json:"stations"`
}

type passengerType struct {
	Count        int    `json:"count"`
	DiscountCode string `json:"discountCode"`
	Type         string `json:"type"`
}

type flightSearchRequest struct {
	Codes      searchCodes      `json:"codes"`
	Criteria   []searchCriteria `json:"criteria"`
	Passengers struct {
		ResidentCountry string          `json:"residentCountry"`
		Types           []passengerType `json:"types"`
	} `json:"passengers"`
	InfantCount         int    `json:"infantCount"`
	TaxesAndFees        string `json:"taxesAndFees"`
	TotalPassengerCount int    `json:"totalPassengerCount"`
	SearchType          string `json:"searchType"`
	IsRedeemTransaction bool   `json:"isRedeemTransaction"`
}

// newFlightSearchRequest builds a one-way, single-adult search for the disrupted route
func newFlightSearchRequest(origin, destination, date string) flightSearchRequest {
	criteria := searchCriteria{
		Stations: searchStations{
			OriginStationCodes:      []string{origin},
			DestinationStationCodes: []string{destination},
		},
	}
	criteria.Dates.BeginDate = date
	criteria.FlightFilters.Type = "All"

	req := flightSearchRequest{
		Codes:               searchCodes{Currency: "INR"},
		Criteria:            []searchCriteria{criteria},
		TaxesAndFees:        "TaxesAndFees",
		TotalPassengerCount: 1,
		SearchType:          "OneWay",
	}
	req.Passengers.ResidentCountry = "IN"
	req.Passengers.Types = []passengerType{{Count: 1, Type: "ADT"}}
	return req
}

func (r *AirlineAPIRepository) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	// set directly: the gateway matches this key case-sensitively
	req.Header["user_key"] = []string{r.cfg.UserKey}
	req.Header.Set("Authorization", r.cfg.AuthToken)
	req.Header.Set("source", "android")
	req.Header.Set("version", "7.3.3")
	req.Header.Set("User-Agent", "IndiGoUAT/7.3.3.1")
}

// SearchFlights searches alternatives on the disrupted route and date.
// A non-200 answer yields an empty tree.
func (r *AirlineAPIRepository) SearchFlights(ctx context.Context, disruption *entity.DisruptionRecord) (*entity.FlightSearchResponse, error) {
	body := newFlightSearchRequest(disruption.Origin, disruption.Destination, disruption.DepartureDate())

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal flight search: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.FlightSearchURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create flight search request: %w", err)
	}
	r.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send flight search request: %w", err)
	}
	defer resp.Body.Close()

	r.logger.Info("Airline flight search responded",
		"status", resp.StatusCode,
		"origin", disruption.Origin,
		"destination", disruption.Destination,
		"date", disruption.DepartureDate())

	if resp.StatusCode != http.StatusOK {
		r.logger.Error("Airline flight search failed", "status", resp.StatusCode)
		return &entity.FlightSearchResponse{}, nil
	}

	var result entity.FlightSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode flight search response: %w", err)
	}
	return &result, nil
}

// GetSeatMap fetches the seat map. A non-200 or empty answer yields nil,
// which extracts to no seats.
func (r *AirlineAPIRepository) GetSeatMap(ctx context.Context, disruption *entity.DisruptionRecord) (*entity.SeatMapResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.SeatMapURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create seat map request: %w", err)
	}
	r.setHeaders(req)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send seat map request: %w", err)
	}
	defer resp.Body.Close()

	r.logger.Info("Airline seat map responded", "status", resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read seat map response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || len(bytes.TrimSpace(data)) == 0 {
		r.logger.Warn("Seat map returned empty or error response", "status", resp.StatusCode)
		return nil, nil
	}

	var result entity.SeatMapResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode seat map response: %w", err)
	}
	return &result, nil
}
