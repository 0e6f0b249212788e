// Package output implements the output manager (C8): the filesystem
// layout under an output root, per-document writes, case-root writes,
// and the caller-supplied overwrite policy.
package output

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Backend is anywhere a rendered file can be persisted. The local
// filesystem backend is always active; an S3Backend can be layered on
// top as an optional mirror (feature-toggled via internal/config's
// EnableS3Mirror), both implementing this same interface so the rest
// of the package is storage-agnostic.
type Backend interface {
	WriteFile(relPath string, data []byte) error
}

// LocalBackend writes under a root directory on the local filesystem.
type LocalBackend struct {
	Root string
}

// NewLocalBackend returns a Backend rooted at root.
func NewLocalBackend(root string) *LocalBackend {
	return &LocalBackend{Root: root}
}

// WriteFile writes data to <Root>/<relPath>, creating parent
// directories as needed.
func (b *LocalBackend) WriteFile(relPath string, data []byte) error {
	full := filepath.Join(b.Root, relPath)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("output: create directory for %s: %w", relPath, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("output: write %s: %w", relPath, err)
	}
	return nil
}

// S3Backend mirrors writes to an S3 bucket, keyed identically to the
// local layout's relative paths.
type S3Backend struct {
	client *s3.Client
	bucket string
}

// NewS3Backend builds an S3Backend for bucket in region using the
// default AWS credential chain.
func NewS3Backend(ctx context.Context, bucket, region string) (*S3Backend, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("output: load AWS config: %w", err)
	}
	return &S3Backend{client: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

// WriteFile uploads data to the bucket at relPath. Mirror failures are
// logged and swallowed by MirroredBackend rather than propagated —
// the local write is authoritative, the S3 copy is best-effort.
func (b *S3Backend) WriteFile(relPath string, data []byte) error {
	_, err := b.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(relPath),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("output: S3 PutObject %s: %w", relPath, err)
	}
	return nil
}

// MirroredBackend writes to a primary backend and best-effort mirrors
// the same write to a secondary one.
type MirroredBackend struct {
	Primary   Backend
	Secondary Backend
}

func (b *MirroredBackend) WriteFile(relPath string, data []byte) error {
	if err := b.Primary.WriteFile(relPath, data); err != nil {
		return err
	}
	if b.Secondary != nil {
		if err := b.Secondary.WriteFile(relPath, data); err != nil {
			log.Printf("[OUTPUT] ⚠️ mirror write failed for %s: %v", relPath, err)
		}
	}
	return nil
}
