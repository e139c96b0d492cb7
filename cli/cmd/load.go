package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/novifinancial/serde-typegen/format"
	"github.com/novifinancial/serde-typegen/storage"
	"github.com/novifinancial/serde-typegen/util/log"
	"github.com/novifinancial/serde-typegen/util/sdl"
)

/*
Registry loading for the CLI. A location is either a local file path or an
s3://bucket/key URL; documents ending in .sdl are parsed as schema definition
text, everything else as a JSON registry document.
*/

////////////////////////////////////////////////////////////////////////////////

var (
	s3Endpoint string
	s3Secure   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(
		&s3Endpoint, "s3-endpoint", "localhost:9000", "S3-compatible endpoint for s3:// locations")
	rootCmd.PersistentFlags().BoolVar(
		&s3Secure, "s3-secure", false, "use TLS for s3:// locations")
}

func loadRegistry(ctx context.Context, location string) (*format.Registry, error) {
	ctx = log.AddTags(ctx, "location", location)
	data, err := fetchDocument(ctx, location)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(location, ".sdl") {
		registry, err := sdl.ParseSchema(data)
		if err != nil {
			return nil, err
		}
		log.Debugf(ctx, "parsed %d definitions", registry.Len())
		return registry, nil
	}
	registry, err := format.ParseRegistry(data)
	if err != nil {
		return nil, err
	}
	log.Debugf(ctx, "parsed %d definitions", registry.Len())
	return registry, nil
}

func fetchDocument(ctx context.Context, location string) ([]byte, error) {
	bucket, key, ok := strings.Cut(strings.TrimPrefix(location, "s3://"), "/")
	if !strings.HasPrefix(location, "s3://") {
		data, err := os.ReadFile(location)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", location, err)
		}
		return data, nil
	}
	if !ok || bucket == "" || key == "" {
		return nil, fmt.Errorf("invalid s3 location %q", location)
	}
	mc, err := minio.New(s3Endpoint, &minio.Options{
		Creds: credentials.NewStaticV4(
			os.Getenv("S3_ACCESS_KEY"), os.Getenv("S3_SECRET_KEY"), ""),
		Secure: s3Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build S3 client: %w", err)
	}
	provider := storage.NewS3Store(mc, bucket)
	data, err := provider.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", location, err)
	}
	return data, nil
}
