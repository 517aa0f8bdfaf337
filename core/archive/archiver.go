package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// snapshotPrefix namespaces leaderboard snapshots inside the bucket.
const snapshotPrefix = "snapshots/"

// Archiver persists leaderboard snapshots to object storage. Archiving is
// best-effort bookkeeping: failures are logged by the caller and never block
// serving a leaderboard.
type Archiver struct {
	client Client
	bucket string
	logger *zap.Logger
	now    func() time.Time
}

// NewArchiver creates an archiver writing into the given bucket.
func NewArchiver(client Client, bucket string, logger *zap.Logger) *Archiver {
	return &Archiver{
		client: client,
		bucket: bucket,
		logger: logger,
		now:    time.Now,
	}
}

// StoreSnapshot writes one timestamped JSON snapshot of a ranked result.
// The bucket is created on first use.
func (a *Archiver) StoreSnapshot(ctx context.Context, snapshot any) (string, error) {
	if err := a.ensureBucket(ctx); err != nil {
		return "", err
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	objectName := snapshotPrefix + "leaderboard-" + a.now().UTC().Format("20060102T150405Z") + ".json"
	_, err = a.client.PutObject(ctx, a.bucket, objectName,
		bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", fmt.Errorf("failed to store snapshot %s: %w", objectName, err)
	}

	a.logger.Debug("Stored leaderboard snapshot", zap.String("object", objectName))
	return objectName, nil
}

// ListSnapshots returns the stored snapshot object names, newest last.
func (a *Archiver) ListSnapshots(ctx context.Context) ([]string, error) {
	names := []string{}
	for info := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    snapshotPrefix,
		Recursive: true,
	}) {
		if info.Err != nil {
			return nil, info.Err
		}
		if strings.HasSuffix(info.Key, ".json") {
			names = append(names, info.Key)
		}
	}
	// Timestamped names sort chronologically.
	sort.Strings(names)
	return names, nil
}

// ensureBucket creates the bucket if it does not exist yet.
func (a *Archiver) ensureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
	}
	return nil
}
