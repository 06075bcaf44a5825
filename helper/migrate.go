package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"slices"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"

	"tourism/config"
	"tourism/infras/postgres"
	"tourism/migrations"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var (
	ErrUnknownService = errors.New("unknown service")
	ErrUnknownAction  = errors.New("unknown migration action")
)

// connectionString appends the migrations table of the service to the write DSN.
func connectionString(cfg *config.Config, service string) (string, error) {
	parsed, err := url.Parse(postgres.DSN(cfg, cfg.DB.Postgres.Write))
	if err != nil {
		return "", fmt.Errorf("invalid postgres dsn: %w", err)
	}

	query := parsed.Query()
	query.Set("x-migrations-table", fmt.Sprintf("%s_%s", cfg.DB.Postgres.MigrationTable, service))
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

func getConnection(cfg *config.Config, service string) (*migrate.Migrate, error) {
	if !slices.Contains(migrations.Services, service) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownService, service)
	}

	source, err := iofs.New(migrations.FS, migrations.Dir(service))
	if err != nil {
		return nil, fmt.Errorf("error opening migrations of %s: %w", service, err)
	}

	dsn, err := connectionString(cfg, service)
	if err != nil {
		return nil, err
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, dsn)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(cfg *config.Config, service, action string) error {
	mig, err := getConnection(cfg, service)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migrations (%s): %w", service, action, err)
	}

	log.Info().Str("service", service).Str("action", action).Msg("Database migrations completed successfully")

	return nil
}

func Up(cfg *config.Config, service string) error {
	return Runner(cfg, service, ActionUp)
}
