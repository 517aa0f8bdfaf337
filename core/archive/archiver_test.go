package archive

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"collector-stats/core/archive/mocks"
)

func fixedClock() time.Time {
	return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
}

func TestStoreSnapshot(t *testing.T) {
	mockClient := new(mocks.Client)
	archiver := NewArchiver(mockClient, "collector-stats", zap.NewNop())
	archiver.now = fixedClock

	mockClient.On("BucketExists", mock.Anything, "collector-stats").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "collector-stats",
		"snapshots/leaderboard-20250314T092653Z.json",
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	name, err := archiver.StoreSnapshot(context.Background(), map[string]any{"rank": 1})

	assert.NoError(t, err)
	assert.Equal(t, "snapshots/leaderboard-20250314T092653Z.json", name)
	mockClient.AssertExpectations(t)
}

func TestStoreSnapshotCreatesBucket(t *testing.T) {
	mockClient := new(mocks.Client)
	archiver := NewArchiver(mockClient, "collector-stats", zap.NewNop())
	archiver.now = fixedClock

	mockClient.On("BucketExists", mock.Anything, "collector-stats").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "collector-stats", mock.Anything).Return(nil)
	mockClient.On("PutObject", mock.Anything, "collector-stats",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	_, err := archiver.StoreSnapshot(context.Background(), []int{1, 2, 3})

	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestStoreSnapshotBucketCheckFails(t *testing.T) {
	mockClient := new(mocks.Client)
	archiver := NewArchiver(mockClient, "collector-stats", zap.NewNop())

	mockClient.On("BucketExists", mock.Anything, "collector-stats").
		Return(false, errors.New("connection refused"))

	_, err := archiver.StoreSnapshot(context.Background(), "anything")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to check bucket")
	mockClient.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStoreSnapshotUploadFails(t *testing.T) {
	mockClient := new(mocks.Client)
	archiver := NewArchiver(mockClient, "collector-stats", zap.NewNop())

	mockClient.On("BucketExists", mock.Anything, "collector-stats").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "collector-stats",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	_, err := archiver.StoreSnapshot(context.Background(), "anything")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store snapshot")
}

func TestListSnapshots(t *testing.T) {
	mockClient := new(mocks.Client)
	archiver := NewArchiver(mockClient, "collector-stats", zap.NewNop())

	ch := make(chan minio.ObjectInfo, 3)
	ch <- minio.ObjectInfo{Key: "snapshots/leaderboard-20250314T100000Z.json"}
	ch <- minio.ObjectInfo{Key: "snapshots/leaderboard-20250313T090000Z.json"}
	ch <- minio.ObjectInfo{Key: "snapshots/README.txt"}
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "collector-stats", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))

	names, err := archiver.ListSnapshots(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{
		"snapshots/leaderboard-20250313T090000Z.json",
		"snapshots/leaderboard-20250314T100000Z.json",
	}, names)
}

func TestListSnapshotsError(t *testing.T) {
	mockClient := new(mocks.Client)
	archiver := NewArchiver(mockClient, "collector-stats", zap.NewNop())

	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: errors.New("listing failed")}
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "collector-stats", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))

	_, err := archiver.ListSnapshots(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "listing failed")
}
