package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"net/url"
	"portfolio/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresMaxConnLifetime   = 30 * time.Minute
)

// Connection splits reads and writes so a replica can serve the listing queries.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type dsn struct {
	name     string
	username string
	password string
	host     string
	port     string
	dbName   string
	sslMode  string
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  CreatePostgresReadConn(*config),
		Write: CreatePostgresWriteConn(*config),
	}
}

// Close releases both pools. Read and Write may share one pool.
func (c *Connection) Close() error {
	if c.Write != nil {
		if err := c.Write.Close(); err != nil {
			return fmt.Errorf("closing write connection: %w", err)
		}
	}

	if c.Read != nil && c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			return fmt.Errorf("closing read connection: %w", err)
		}
	}

	return nil
}

func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	write := config.DB.Postgres.Write

	return CreatePostgresConnection(dsn{
		name:     "write",
		username: write.Username,
		password: write.Password,
		host:     write.Host,
		port:     write.Port,
		dbName:   getDBName(config, write.Name),
		sslMode:  write.SSLMode,
	}, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime)
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	read := config.DB.Postgres.Read

	return CreatePostgresConnection(dsn{
		name:     "read",
		username: read.Username,
		password: read.Password,
		host:     read.Host,
		port:     read.Port,
		dbName:   getDBName(config, read.Name),
		sslMode:  read.SSLMode,
	}, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime)
}

func (d dsn) String() string {
	sslMode := d.sslMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(d.username),
		url.QueryEscape(d.password),
		net.JoinHostPort(d.host, d.port),
		d.dbName,
		sslMode,
	)
}

// CreatePostgresConnection dials until it succeeds or maxRetry attempts are spent.
func CreatePostgresConnection(d dsn, maxRetry, waitTime int) *sqlx.DB {
	logger := log.With().
		Str("name", d.name).
		Str("host", d.host).
		Str("port", d.port).
		Str("dbName", d.dbName).
		Logger()

	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", d.String())
		if err == nil {
			logger.Info().Msg("Connected to database")

			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresMaxConnLifetime)

			return sqlDB
		}

		logger.Error().Err(err).Int("attempt", retry+1).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	logger.Fatal().Msg("Giving up connecting to database")

	return nil
}
