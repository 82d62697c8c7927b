package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"xwing-inventory/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrNotFound is wrapped by errors for documents that do not exist.
var ErrNotFound = errors.New("document not found")

// LoadError reports a document that could not be read or parsed.
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Reader opens named documents.
type Reader interface {
	// Open returns the content of the named document.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Exists reports whether the named document is present.
	Exists(ctx context.Context, name string) (bool, error)
}

// New creates the reader selected by cfg. client is only used by the bucket backend.
func New(cfg Config, client storage.Client, bucket string) (Reader, error) {
	switch cfg.Backend {
	case BackendLocal, "":
		return Dir{Root: cfg.Root}, nil
	case BackendBucket:
		if client == nil {
			return nil, fmt.Errorf("bucket backend requires a storage client")
		}
		return &Bucket{Client: client, Bucket: bucket, Prefix: cfg.Root}, nil
	default:
		return nil, fmt.Errorf("unknown source backend %q", cfg.Backend)
	}
}

// Load opens name and passes its content to decode. Every failure is returned as
// a *LoadError.
func Load(ctx context.Context, r Reader, name string, decode func(io.Reader) error) error {
	rc, err := r.Open(ctx, name)
	if err != nil {
		return &LoadError{Name: name, Err: err}
	}
	defer rc.Close()

	if err := decode(rc); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			err = fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return &LoadError{Name: name, Err: err}
	}
	return nil
}

// Dir reads documents from a local directory.
type Dir struct {
	Root string
}

func (d Dir) path(name string) string {
	return filepath.Join(d.Root, filepath.FromSlash(name))
}

// Open opens the file for name.
func (d Dir) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(d.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Exists reports whether the file for name exists.
func (d Dir) Exists(ctx context.Context, name string) (bool, error) {
	_, err := os.Stat(d.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

// Bucket reads documents from object storage under Prefix.
type Bucket struct {
	Client storage.Client
	Bucket string
	Prefix string
}

// Key returns the object key for name.
func (b *Bucket) Key(name string) string {
	prefix := strings.Trim(b.Prefix, "/")
	if prefix == "" || prefix == "." {
		return name
	}
	return path.Join(prefix, name)
}

// Open downloads the object for name.
func (b *Bucket) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return b.Client.GetObject(ctx, b.Bucket, b.Key(name), minio.GetObjectOptions{})
}

// Exists lists the object key for name.
func (b *Bucket) Exists(ctx context.Context, name string) (bool, error) {
	exists, err := b.Client.BucketExists(ctx, b.Bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return false, fmt.Errorf("bucket %s does not exist", b.Bucket)
	}

	key := b.Key(name)
	opts := minio.ListObjectsOptions{
		Prefix:    key,
		Recursive: false,
		MaxKeys:   1,
	}
	for obj := range b.Client.ListObjects(ctx, b.Bucket, opts) {
		if obj.Err != nil {
			return false, obj.Err
		}
		if obj.Key == key {
			return true, nil
		}
	}
	return false, nil
}

// Put uploads data under name.
func (b *Bucket) Put(ctx context.Context, name string, data []byte, contentType string) error {
	_, err := b.Client.PutObject(ctx, b.Bucket, b.Key(name), bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", name, err)
	}
	return nil
}
