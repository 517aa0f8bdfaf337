package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DurableStore is the cross-session tier behind the orchestrator. It is an
// interface so tests can substitute an in-memory stub.
type DurableStore interface {
	// Get returns the entry for a key. Missing, unreadable, or corrupt
	// entries all report absent; Get never fails outward.
	Get(ctx context.Context, key string) (Entry, bool)
	// Set serializes and stores an entry, replacing any previous one.
	Set(ctx context.Context, key string, e Entry) error
	// Clear removes every key in this cache's namespace and nothing else.
	Clear(ctx context.Context) error
}

// DurableTableName is the table backing the durable tier. The dedicated
// table is the cache's namespace: clearing it cannot touch unrelated state.
const DurableTableName = "stats_cache"

// entryRow is the persisted shape of one cache entry.
type entryRow struct {
	CacheKey string    `gorm:"column:cache_key;primaryKey;size:512"`
	Value    []byte    `gorm:"column:value"`
	StoredAt time.Time `gorm:"column:stored_at"`
}

// TableName implements gorm's Tabler.
func (entryRow) TableName() string { return DurableTableName }

// DurableTier is the GORM-backed durable cache tier.
type DurableTier struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewDurableTier creates the durable tier and ensures its table exists.
func NewDurableTier(db *gorm.DB, logger *zap.Logger) (*DurableTier, error) {
	if err := db.AutoMigrate(&entryRow{}); err != nil {
		return nil, err
	}
	return &DurableTier{db: db, logger: logger}, nil
}

// Get implements DurableStore. Corrupt or unparseable entries are treated as
// absent rather than surfaced.
func (t *DurableTier) Get(ctx context.Context, key string) (Entry, bool) {
	var row entryRow
	if err := t.db.WithContext(ctx).First(&row, "cache_key = ?", key).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			t.logger.Warn("Durable cache read failed", zap.String("key", key), zap.Error(err))
		}
		return Entry{}, false
	}

	if !json.Valid(row.Value) {
		t.logger.Warn("Discarding corrupt durable cache entry", zap.String("key", key))
		return Entry{}, false
	}

	return Entry{Value: row.Value, StoredAt: row.StoredAt}, true
}

// Set implements DurableStore using an upsert on the cache key.
func (t *DurableTier) Set(ctx context.Context, key string, e Entry) error {
	row := entryRow{CacheKey: key, Value: e.Value, StoredAt: e.StoredAt}
	return t.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cache_key"}},
			UpdateAll: true,
		}).
		Create(&row).Error
}

// Clear implements DurableStore. Only rows of the cache table are removed.
func (t *DurableTier) Clear(ctx context.Context) error {
	return t.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&entryRow{}).Error
}
