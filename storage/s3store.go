package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

/*
Provider for S3-compatible object storage. We use the minio client library.
*/

////////////////////////////////////////////////////////////////////////////////

const (
	minioErrObjectNotExist = "The specified key does not exist."
)

type s3store struct {
	mc     *minio.Client
	bucket string
}

func NewS3Store(mc *minio.Client, bucket string) Provider {
	return &s3store{
		mc:     mc,
		bucket: bucket,
	}
}

// Put stores a document in the object store.
func (s *s3store) Put(ctx context.Context, id string, data []byte) error {
	n := int64(len(data))
	_, err := s.mc.PutObject(
		ctx,
		s.bucket,
		id,
		bytes.NewReader(data),
		n,
		minio.PutObjectOptions{},
	)
	if err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}
	return nil
}

// Get retrieves a document from the object store.
func (s *s3store) Get(ctx context.Context, id string) ([]byte, error) {
	obj, err := s.mc.GetObject(ctx, s.bucket, id, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		if err.Error() == minioErrObjectNotExist {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to read object: %w", err)
	}
	return data, nil
}

func (s *s3store) String() string {
	return fmt.Sprintf("s3(%s)", s.bucket)
}
