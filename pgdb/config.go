package pgdb

import (
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

// Config holds PostgreSQL connection settings.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// DefaultConfig returns the conventional local-instance settings:
// postgres@localhost:5432, database "postgres".
func DefaultConfig() Config {
	return Config{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Database: "postgres",
	}
}

// ConfigFromEnv builds a Config from the PGHOST, PGPORT, PGUSER,
// PGPASSWORD and PGDATABASE environment variables, falling back to
// DefaultConfig for unset ones. A .env file in the working directory
// is loaded first when present.
func ConfigFromEnv() Config {
	// Absence of a .env file is the normal case, not an error.
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if v := os.Getenv("PGHOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("PGPORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil && port > 0 {
			cfg.Port = port
		}
	}
	if v := os.Getenv("PGUSER"); v != "" {
		cfg.User = v
	}
	if v := os.Getenv("PGPASSWORD"); v != "" {
		cfg.Password = v
	}
	if v := os.Getenv("PGDATABASE"); v != "" {
		cfg.Database = v
	}
	return cfg
}

// URL renders the config as a postgres:// connection URL with
// credentials escaped.
func (c Config) URL() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   "/" + c.Database,
	}
	if c.User != "" {
		if c.Password != "" {
			u.User = url.UserPassword(c.User, c.Password)
		} else {
			u.User = url.User(c.User)
		}
	}
	return u.String()
}

// WithDatabase returns a copy of the config pointing at another
// database on the same server.
func (c Config) WithDatabase(name string) Config {
	c.Database = name
	return c
}
