package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"tourism/config"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

var ErrConnectionFailed = errors.New("could not connect to postgres")

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) (*Connection, error) {
	write, err := connect("write", cfg, cfg.DB.Postgres.Write)
	if err != nil {
		return nil, err
	}

	// The read replica falls back to the primary when it is not configured.
	if cfg.DB.Postgres.Read.Host == "" {
		return &Connection{Read: write, Write: write}, nil
	}

	read, err := connect("read", cfg, cfg.DB.Postgres.Read)
	if err != nil {
		_ = write.Close()

		return nil, err
	}

	return &Connection{Read: read, Write: write}, nil
}

func (c *Connection) Close() error {
	if c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			return fmt.Errorf("failed to close read connection: %w", err)
		}
	}

	if err := c.Write.Close(); err != nil {
		return fmt.Errorf("failed to close write connection: %w", err)
	}

	return nil
}

// DatabaseName returns the database name with the configured prefix.
func DatabaseName(cfg *config.Config, baseName string) string {
	return cfg.DB.Postgres.Prefix + baseName
}

// DSN builds a lib/pq connection url for the given target.
func DSN(cfg *config.Config, target config.Postgres) string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(target.Username, target.Password),
		Host:   net.JoinHostPort(target.Host, target.Port),
		Path:   DatabaseName(cfg, target.Name),
	}

	query := dsn.Query()
	query.Set("sslmode", target.SSLMode)

	if target.Timezone != "" {
		query.Set("timezone", target.Timezone)
	}

	dsn.RawQuery = query.Encode()

	return dsn.String()
}

func connect(name string, cfg *config.Config, target config.Postgres) (*sqlx.DB, error) {
	descriptor := DSN(cfg, target)
	maxRetry := max(cfg.DB.Postgres.MaxRetry, 1)

	var lastErr error

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", target.Host).
				Str("port", target.Port).
				Str("dbName", DatabaseName(cfg, target.Name)).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB, nil
		}

		lastErr = err

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", target.Host).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second)
	}

	return nil, fmt.Errorf("%w (%s): %w", ErrConnectionFailed, name, lastErr)
}
