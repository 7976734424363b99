package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"flight-recovery-service/internal/domain/entity"
	"flight-recovery-service/internal/domain/repository"
	"flight-recovery-service/pkg/logger"
)

// FilePaths locates the static snapshot files
type FilePaths struct {
	Disruptions  string
	Profiles     string
	FlightSearch string
	SeatMap      string
}

// FileDataSource serves the disruption feed, profile store and inventory
// trees from static JSON snapshots read once at construction. The loaded
// data is never modified afterwards.
type FileDataSource struct {
	disruptions  []entity.DisruptionRecord
	profiles     []entity.ProfileRecord
	flightSearch *entity.FlightSearchResponse
	seatMap      *entity.SeatMapResponse
	logger       logger.Logger
}

// NewFileDataSource loads every snapshot with a non-empty path. A configured
// disruption feed must exist; the other files read as empty when absent.
func NewFileDataSource(paths FilePaths, logger logger.Logger) (*FileDataSource, error) {
	ds := &FileDataSource{logger: logger}

	if paths.Disruptions != "" {
		var disruptions entity.Items[entity.DisruptionRecord]
		if err := readJSON(paths.Disruptions, &disruptions); err != nil {
			return nil, fmt.Errorf("failed to load disruption feed: %w", err)
		}
		ds.disruptions = disruptions
	}

	var profiles entity.Items[entity.ProfileRecord]
	if err := ds.readOptional(paths.Profiles, "profile store", &profiles); err != nil {
		return nil, err
	}
	ds.profiles = profiles

	var flights entity.FlightSearchResponse
	if ok, err := ds.readOptionalOK(paths.FlightSearch, "flight search", &flights); err != nil {
		return nil, err
	} else if ok {
		ds.flightSearch = &flights
	}

	var seats entity.SeatMapResponse
	if ok, err := ds.readOptionalOK(paths.SeatMap, "seat map", &seats); err != nil {
		return nil, err
	} else if ok {
		ds.seatMap = &seats
	}

	logger.Info("Loaded static data snapshots",
		"disruptions", len(ds.disruptions),
		"profiles", len(ds.profiles),
		"flightSearch", ds.flightSearch != nil,
		"seatMap", ds.seatMap != nil)

	return ds, nil
}

// NewFileDataSourceFromData builds a data source over already-parsed trees
func NewFileDataSourceFromData(
	disruptions []entity.DisruptionRecord,
	profiles []entity.ProfileRecord,
	flightSearch *entity.FlightSearchResponse,
	seatMap *entity.SeatMapResponse,
	logger logger.Logger,
) *FileDataSource {
	return &FileDataSource{
		disruptions:  disruptions,
		profiles:     profiles,
		flightSearch: flightSearch,
		seatMap:      seatMap,
		logger:       logger,
	}
}

var (
	_ repository.DisruptionRepository = (*FileDataSource)(nil)
	_ repository.ProfileRepository    = (*FileDataSource)(nil)
	_ repository.InventoryRepository  = (*FileDataSource)(nil)
)

// FindByPNR returns the first disruption record with an exactly matching PNR
func (ds *FileDataSource) FindByPNR(ctx context.Context, pnr string) (*entity.DisruptionRecord, error) {
	for i := range ds.disruptions {
		if ds.disruptions[i].PNR == pnr {
			record := ds.disruptions[i]
			return &record, nil
		}
	}
	return nil, repository.ErrNotFound
}

// LoadAll returns the profile store in file order
func (ds *FileDataSource) LoadAll(ctx context.Context) ([]entity.ProfileRecord, error) {
	return slices.Clone(ds.profiles), nil
}

// SearchFlights returns the flight search snapshot regardless of the route
func (ds *FileDataSource) SearchFlights(ctx context.Context, disruption *entity.DisruptionRecord) (*entity.FlightSearchResponse, error) {
	return ds.flightSearch, nil
}

// GetSeatMap returns the seat map snapshot
func (ds *FileDataSource) GetSeatMap(ctx context.Context, disruption *entity.DisruptionRecord) (*entity.SeatMapResponse, error) {
	return ds.seatMap, nil
}

func (ds *FileDataSource) readOptional(path, name string, v interface{}) error {
	_, err := ds.readOptionalOK(path, name, v)
	return err
}

func (ds *FileDataSource) readOptionalOK(path, name string, v interface{}) (bool, error) {
	if path == "" {
		return false, nil
	}
	err := readJSON(path, v)
	if errors.Is(err, os.ErrNotExist) {
		ds.logger.Warn("Snapshot file not found", "source", name, "path", path)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", name, err)
	}
	return true, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// LoadSeatMapFile reads a seat-map tree from path
func LoadSeatMapFile(path string) (*entity.SeatMapResponse, error) {
	var resp entity.SeatMapResponse
	if err := readJSON(path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// WriteJSONFile writes v as indented JSON
func WriteJSONFile(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
