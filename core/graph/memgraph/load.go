package memgraph

import (
	"context"
	"fmt"
	"io"
	"os"

	"hearth-mirror/core/storage"

	"github.com/minio/minio-go/v7"
	"gopkg.in/yaml.v3"
)

// Decode reads a YAML or JSON dump.
func Decode(r io.Reader) (*Image, error) {
	img := NewImage()
	if err := yaml.NewDecoder(r).Decode(img); err != nil {
		if err == io.EOF {
			return img, nil
		}
		return nil, fmt.Errorf("failed to decode graph dump: %w", err)
	}
	return img, nil
}

// LoadFile reads a dump from the local filesystem.
func LoadFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open graph dump: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// LoadObject reads a dump from the storage bucket.
func LoadObject(ctx context.Context, client storage.Client, bucket, object string) (*Image, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s not found", bucket)
	}

	reader, err := client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch graph dump %s: %w", object, err)
	}
	defer reader.Close()

	return Decode(reader)
}

// Load reads a dump from the source selected by cfg.
func Load(ctx context.Context, cfg Config, client storage.Client, bucket string) (*Image, error) {
	switch cfg.Source {
	case SourceFile:
		return LoadFile(cfg.Path)
	case SourceBucket:
		if client == nil {
			return nil, fmt.Errorf("dump source %q requires a storage client", cfg.Source)
		}
		return LoadObject(ctx, client, bucket, cfg.Object)
	default:
		return nil, fmt.Errorf("unknown dump source %q", cfg.Source)
	}
}
