// Package storage implementa el puerto ObjectStorage sobre un bucket de
// Google Cloud Storage. Los objetos subidos se hacen públicos y la URL
// devuelta es estable (storage.googleapis.com/<bucket>/<objeto>).
package storage

import (
	"context"
	"fmt"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/zapateria/bodega-api/internal/application/bodega"
	"github.com/zapateria/bodega-api/pkg/config"
)

var _ bodega.ObjectStorage = (*GCSBucket)(nil)

// GCSBucket adaptador del bucket de imágenes.
type GCSBucket struct {
	client *gcs.Client
	bucket *gcs.BucketHandle
	name   string
}

// NewGCSBucket construye el adaptador. Si CredentialsFile está vacío se usan
// las Application Default Credentials del entorno.
func NewGCSBucket(ctx context.Context, cfg config.StorageConfig) (*GCSBucket, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage: bucket no configurado")
	}
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage: crear cliente: %w", err)
	}
	return &GCSBucket{client: client, bucket: client.Bucket(cfg.Bucket), name: cfg.Bucket}, nil
}

// Upload sube el objeto, lo hace legible públicamente y devuelve su URL.
func (b *GCSBucket) Upload(ctx context.Context, name, contentType string, data []byte) (string, error) {
	obj := b.bucket.Object(name)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("storage: escribir objeto: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("storage: cerrar objeto: %w", err)
	}

	if err := obj.ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader); err != nil {
		return "", fmt.Errorf("storage: hacer público el objeto: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", b.name, name), nil
}

// Close libera el cliente subyacente.
func (b *GCSBucket) Close() error {
	return b.client.Close()
}
