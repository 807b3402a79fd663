package snapshot

import (
	"context"
	"errors"
	"fmt"

	"frontdesk/infras/otel"
	"frontdesk/infras/s3"
	"frontdesk/shared/constant"
)

const snapshotContentType = "application/json"

type s3Store struct {
	client    s3.S3
	otel      otel.Otel
	bucket    string
	directory string
}

// NewS3Store writes one object per table at "<directory>/<key>.json".
func NewS3Store(client s3.S3, bucket, directory string, otl otel.Otel) Store {
	return &s3Store{client: client, otel: otl, bucket: bucket, directory: directory}
}

func (s *s3Store) Save(ctx context.Context, key string, data []byte) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSnapshotScopeName, constant.OtelSnapshotScopeName+".s3.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.client.UploadFileBytes(ctx, s.bucket, s.directory, key+".json", snapshotContentType, data); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}

	return nil
}

func (s *s3Store) Load(ctx context.Context, key string) ([]byte, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSnapshotScopeName, constant.OtelSnapshotScopeName+".s3.Load")
	defer scope.End()

	data, err := s.client.DownloadFileBytes(ctx, s.bucket, s.directory, key+".json")
	if err != nil {
		if errors.Is(err, s3.ErrObjectNotFound) {
			return nil, ErrNotFound
		}

		scope.TraceError(err)

		return nil, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}

	return data, nil
}
