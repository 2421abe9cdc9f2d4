package collection

import (
	"fmt"
	"os"
	"slices"
)

// Backends selectable through configuration.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendAzure    = "azure"
)

var backends = []string{BackendMemory, BackendFile, BackendPostgres, BackendAzure}

// Config selects and parameterizes the persistence backend.
type Config struct {
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"`
	Azure   AzureConfig `toml:"azure"`
}

type ConfigEnv struct {
	Backend string
	Dir     string
	Azure   *AzureEnv
}

func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	c.loadEnv(env)

	var azureEnv *AzureEnv
	if env != nil {
		azureEnv = env.Azure
	}
	if err := c.Azure.Finalize(azureEnv); err != nil {
		return err
	}

	return c.validate()
}

func (c *Config) Merge(overlay *Config) {
	if overlay == nil {
		return
	}
	if overlay.Backend != "" {
		c.Backend = overlay.Backend
	}
	if overlay.Dir != "" {
		c.Dir = overlay.Dir
	}
	c.Azure.Merge(&overlay.Azure)
}

func (c *Config) loadDefaults() {
	if c.Backend == "" {
		c.Backend = BackendFile
	}
	if c.Dir == "" {
		c.Dir = "data"
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if env == nil {
		return
	}
	if v := os.Getenv(env.Backend); v != "" {
		c.Backend = v
	}
	if v := os.Getenv(env.Dir); v != "" {
		c.Dir = v
	}
}

func (c *Config) validate() error {
	if !slices.Contains(backends, c.Backend) {
		return fmt.Errorf("unknown storage backend %q", c.Backend)
	}
	if c.Backend == BackendAzure && c.Azure.ConnectionString == "" {
		return fmt.Errorf("azure backend requires a connection string")
	}
	return nil
}
