package collection

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/prompthub/prompthub/pkg/lifecycle"
)

// AzureBackend stores each collection as <key>.json in a blob container.
type AzureBackend struct {
	client    *azblob.Client
	container string
	logger    *slog.Logger
}

func NewAzureBackend(cfg *AzureConfig, logger *slog.Logger) (*AzureBackend, error) {
	client, err := azblob.NewClientFromConnectionString(cfg.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("create blob client: %w", err)
	}

	return &AzureBackend{
		client:    client,
		container: cfg.Container,
		logger:    logger.With("system", "storage"),
	}, nil
}

// Start ensures the container exists before the server accepts traffic.
func (b *AzureBackend) Start(lc *lifecycle.Coordinator) error {
	lc.OnStartup(func(ctx context.Context) {
		_, err := b.client.CreateContainer(ctx, b.container, nil)
		if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
			b.logger.Error("container creation failed", "container", b.container, "error", err)
			return
		}
		b.logger.Info("blob container ready", "container", b.container)
	})
	return nil
}

func (b *AzureBackend) Load(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	resp, err := b.client.DownloadStream(ctx, b.container, key+".json", nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return data, nil
}

func (b *AzureBackend) Save(ctx context.Context, key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if _, err := b.client.UploadBuffer(ctx, b.container, key+".json", data, nil); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// AzureConfig configures blob storage persistence.
type AzureConfig struct {
	ConnectionString string `toml:"connection_string"`
	Container        string `toml:"container"`
}

type AzureEnv struct {
	ConnectionString string
	Container        string
}

func (c *AzureConfig) Finalize(env *AzureEnv) error {
	c.loadDefaults()
	c.loadEnv(env)
	return nil
}

func (c *AzureConfig) Merge(overlay *AzureConfig) {
	if overlay == nil {
		return
	}
	if overlay.ConnectionString != "" {
		c.ConnectionString = overlay.ConnectionString
	}
	if overlay.Container != "" {
		c.Container = overlay.Container
	}
}

func (c *AzureConfig) loadDefaults() {
	if c.Container == "" {
		c.Container = "prompthub"
	}
}

func (c *AzureConfig) loadEnv(env *AzureEnv) {
	if env == nil {
		return
	}
	if v := os.Getenv(env.ConnectionString); v != "" {
		c.ConnectionString = v
	}
	if v := os.Getenv(env.Container); v != "" {
		c.Container = v
	}
}
