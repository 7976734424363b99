package bootstrap

import (
	"context"
	"fmt"

	"flight-recovery-service/internal/domain/repository"
	"flight-recovery-service/internal/infrastructure/config"
	"flight-recovery-service/internal/infrastructure/persistence"
	repo "flight-recovery-service/internal/interface/repository"
	"flight-recovery-service/pkg/logger"
)

// Sources bundles the data-source handles the recovery pipeline reads from
type Sources struct {
	Disruptions repository.DisruptionRepository
	Profiles    repository.ProfileRepository
	Inventory   repository.InventoryRepository

	closers []func(context.Context) error
}

// Close releases any open connections
func (s *Sources) Close(ctx context.Context) error {
	var firstErr error
	for _, c := range s.closers {
		if err := c(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// fail releases whatever was opened before err
func (s *Sources) fail(ctx context.Context, err error) (*Sources, error) {
	s.Close(ctx)
	return nil, err
}

// OpenSources builds the repositories selected by cfg
func OpenSources(ctx context.Context, cfg *config.Config, log logger.Logger) (*Sources, error) {
	s := &Sources{}

	// The file data source also backs file inventory, so load it whenever either needs it
	var files *repo.FileDataSource
	if cfg.DataSource == config.SourceFile || cfg.InventorySource == config.SourceFile {
		var paths repo.FilePaths
		if cfg.DataSource == config.SourceFile {
			paths.Disruptions = cfg.DisruptionFile
			paths.Profiles = cfg.ProfileFile
		}
		if cfg.InventorySource == config.SourceFile {
			paths.FlightSearch = cfg.FlightSearchFile
			paths.SeatMap = cfg.SeatMapFile
		}
		var err error
		files, err = repo.NewFileDataSource(paths, log)
		if err != nil {
			return nil, err
		}
	}

	switch cfg.DataSource {
	case config.SourceFile:
		s.Disruptions = files
		s.Profiles = files

	case config.SourceMongo:
		log.Info("Connecting to MongoDB")
		client, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		s.closers = append(s.closers, client.Disconnect)

		db := persistence.GetDatabase(client, cfg.MongoDB)
		s.Disruptions = repo.NewMongoDisruptionRepository(db)
		s.Profiles = repo.NewMongoProfileRepository(db)

	case config.SourcePostgres:
		log.Info("Connecting to PostgreSQL")
		gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func(context.Context) error {
			sqlDB, err := gormDB.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		})

		s.Disruptions = repo.NewGormDisruptionRepository(gormDB)
		s.Profiles = repo.NewGormProfileRepository(gormDB, log)

	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.DataSource)
	}

	switch cfg.InventorySource {
	case config.SourceFile:
		s.Inventory = files
	case config.SourceAPI:
		s.Inventory = repo.NewAirlineAPIRepository(repo.AirlineAPIConfig{
			FlightSearchURL: cfg.FlightSearchURL,
			SeatMapURL:      cfg.SeatMapURL,
			UserKey:         cfg.AirlineUserKey,
			AuthToken:       cfg.AirlineToken,
			Timeout:         cfg.AirlineTimeout,
		}, log)
	default:
		return s.fail(ctx, fmt.Errorf("unknown inventory source %q", cfg.InventorySource))
	}

	log.Info("Data sources ready", "dataSource", cfg.DataSource, "inventorySource", cfg.InventorySource)
	return s, nil
}
