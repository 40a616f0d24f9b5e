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

	"impressions/config"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

// Connection splits reads and writes. Both may point at the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	write := CreatePostgresConnection("write", DSN(cfg.DB.Postgres.Write, cfg.DB.Postgres.Prefix), cfg.DB.Postgres.MaxRetry, cfg.DB.Postgres.RetryWaitTime)

	read := write
	if cfg.DB.Postgres.Read.Host != "" {
		read = CreatePostgresConnection("read", DSN(cfg.DB.Postgres.Read, cfg.DB.Postgres.Prefix), cfg.DB.Postgres.MaxRetry, cfg.DB.Postgres.RetryWaitTime)
	}

	if read == nil || write == nil {
		log.Fatal().Msg("Could not connect to Postgres")
	}

	return &Connection{Read: read, Write: write}
}

// NewFromDB wraps one handle for both reads and writes.
func NewFromDB(db *sqlx.DB) *Connection {
	return &Connection{Read: db, Write: db}
}

func (c *Connection) Close() error {
	errs := []error{c.Write.Close()}
	if c.Read != c.Write {
		errs = append(errs, c.Read.Close())
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("failed to close postgres: %w", err)
	}

	return nil
}

// DSN builds a lib/pq connection URL. Prefix is prepended to the database name.
func DSN(db config.Database, prefix string) string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(db.Username, db.Password),
		Host:   net.JoinHostPort(db.Host, db.Port),
		Path:   "/" + prefix + db.Name,
	}

	query := url.Values{}
	query.Set("sslmode", db.SSLMode)

	if db.Timezone != "" {
		query.Set("timezone", db.Timezone)
	}

	dsn.RawQuery = query.Encode()

	return dsn.String()
}

// CreatePostgresConnection connects with retries and returns nil when every attempt fails.
func CreatePostgresConnection(name, dsn string, maxRetry, waitTime int) *sqlx.DB {
	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			log.Info().Str("name", name).Msg("Connected to database")

			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB
		}

		log.Error().
			Err(err).
			Str("name", name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
