package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/prompthub/prompthub/pkg/collection"
	"github.com/prompthub/prompthub/pkg/database"
)

const EnvStoreSeed = "PROMPTHUB_STORE_SEED"

var collectionEnv = &collection.ConfigEnv{
	Backend: "PROMPTHUB_STORE_BACKEND",
	Dir:     "PROMPTHUB_STORE_DIR",
	Azure: &collection.AzureEnv{
		ConnectionString: "PROMPTHUB_STORE_AZURE_CONNECTION_STRING",
		Container:        "PROMPTHUB_STORE_AZURE_CONTAINER",
	},
}

var databaseEnv = &database.Env{
	Host:            "PROMPTHUB_DB_HOST",
	Port:            "PROMPTHUB_DB_PORT",
	Name:            "PROMPTHUB_DB_NAME",
	User:            "PROMPTHUB_DB_USER",
	Password:        "PROMPTHUB_DB_PASSWORD",
	SSLMode:         "PROMPTHUB_DB_SSL_MODE",
	MaxOpenConns:    "PROMPTHUB_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "PROMPTHUB_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "PROMPTHUB_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "PROMPTHUB_DB_CONN_TIMEOUT",
}

// StoreConfig selects the persistence backend and controls seeding. The
// database section only applies when the postgres backend is selected.
type StoreConfig struct {
	Collection collection.Config `toml:"collection"`
	Database   database.Config   `toml:"database"`
	Seed       *bool             `toml:"seed"`
}

// SeedEnabled reports whether empty collections are populated with sample
// data. Defaults to true.
func (c *StoreConfig) SeedEnabled() bool {
	if c.Seed == nil {
		return true
	}
	return *c.Seed
}

// Finalize applies defaults, environment variable overrides, and validation
// across nested configs.
func (c *StoreConfig) Finalize() error {
	c.loadEnv()

	if err := c.Collection.Finalize(collectionEnv); err != nil {
		return fmt.Errorf("collection: %w", err)
	}
	if c.Collection.Backend == collection.BackendPostgres {
		if err := c.Database.Finalize(databaseEnv); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *StoreConfig) Merge(overlay *StoreConfig) {
	if overlay.Seed != nil {
		c.Seed = overlay.Seed
	}
	c.Collection.Merge(&overlay.Collection)
	c.Database.Merge(&overlay.Database)
}

func (c *StoreConfig) loadEnv() {
	if v := os.Getenv(EnvStoreSeed); v != "" {
		if seed, err := strconv.ParseBool(v); err == nil {
			c.Seed = &seed
		}
	}
}
