package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectScheme is the location scheme served by ObjectSource.
const ObjectScheme = "s3"

// ObjectConfig holds the connection settings of an S3-compatible store.
type ObjectConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

// ObjectSource reads s3://bucket/key locations through minio-go.
type ObjectSource struct {
	client *minio.Client
}

// NewObjectSource builds a client for cfg. No request is made until a
// document is opened.
func NewObjectSource(cfg ObjectConfig) (*ObjectSource, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("object store endpoint is required")
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("creating object store client: %w", err)
	}
	return &ObjectSource{client: client}, nil
}

// ParseObjectLocation splits s3://bucket/key into its bucket and key.
func ParseObjectLocation(location string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(location, ObjectScheme+"://")
	if !ok {
		return "", "", fmt.Errorf("%w: %s is not an %s:// location", ErrInvalidLocation, location, ObjectScheme)
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %s needs a bucket and a key", ErrInvalidLocation, location)
	}
	return bucket, key, nil
}

// Open fetches the object. A missing bucket or key is ErrNotFound.
func (s *ObjectSource) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	bucket, key, err := ParseObjectLocation(location)
	if err != nil {
		return nil, err
	}
	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, objectError(location, err)
	}
	// GetObject is lazy; Stat issues the request and surfaces a missing key.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, objectError(location, err)
	}
	return obj, nil
}

func objectError(location string, err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return fmt.Errorf("%w: %s", ErrNotFound, location)
	}
	return fmt.Errorf("fetching %s: %w", location, err)
}
