package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"spoolq/core/uucp"

	"github.com/minio/minio-go/v7"
)

// Spool is a uucp.Spool over a bucket.
type Spool struct {
	client Client
	bucket string
	prefix string
}

var _ uucp.Spool = (*Spool)(nil)

// NewSpool creates a spool reading objects under prefix in bucket.
func NewSpool(client Client, bucket, prefix string) *Spool {
	return &Spool{client: client, bucket: bucket, prefix: prefix}
}

// key maps a spool path to its object key.
func (s *Spool) key(p string) string {
	return strings.TrimPrefix(path.Join(s.prefix, filepath.ToSlash(p)), "/")
}

// Exists reports whether p is an object or a non-empty key prefix.
func (s *Spool) Exists(ctx context.Context, p string) (bool, error) {
	key := s.key(p)

	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err == nil {
		return true, nil
	} else if code := minio.ToErrorResponse(err).Code; code != "NoSuchKey" && code != "NotFound" {
		return false, fmt.Errorf("failed to stat %s: %w", key, err)
	}

	opts := minio.ListObjectsOptions{
		Prefix:    key + "/",
		Recursive: false,
		MaxKeys:   1,
	}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return false, fmt.Errorf("failed to list %s: %w", opts.Prefix, obj.Err)
		}
		return true, nil
	}
	return false, nil
}

// List returns the objects directly under dir. Object stores drop a prefix
// together with its last object, so an empty listing is not an error;
// whether the directory exists is answered by Exists.
func (s *Spool) List(ctx context.Context, dir string) ([]uucp.FileInfo, error) {
	prefix := s.key(dir) + "/"
	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	}

	files := []uucp.FileInfo{}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
		}
		// Directory marker and nested prefixes.
		if obj.Key == prefix || strings.HasSuffix(obj.Key, "/") {
			continue
		}
		files = append(files, uucp.FileInfo{Name: path.Base(obj.Key), Size: obj.Size})
	}
	return files, nil
}

// Open streams the object behind p.
func (s *Spool) Open(ctx context.Context, p string) (io.ReadCloser, error) {
	return s.client.GetObject(ctx, s.bucket, s.key(p), minio.GetObjectOptions{})
}
