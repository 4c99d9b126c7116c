package publish

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Manifest persists the digest of every published object.
type Manifest struct {
	db *gorm.DB
}

// NewManifest migrates the published_assets table and returns a Manifest.
func NewManifest(db *gorm.DB) (*Manifest, error) {
	if err := db.AutoMigrate(&PublishedAsset{}); err != nil {
		return nil, fmt.Errorf("failed to migrate manifest: %w", err)
	}
	return &Manifest{db: db}, nil
}

// Get returns the record for key. found is false when there is none.
func (m *Manifest) Get(ctx context.Context, key string) (rec PublishedAsset, found bool, err error) {
	err = m.db.WithContext(ctx).Where("object_key = ?", key).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PublishedAsset{}, false, nil
	}
	if err != nil {
		return PublishedAsset{}, false, fmt.Errorf("failed to read manifest entry %s: %w", key, err)
	}
	return rec, true, nil
}

// Record inserts or replaces the record for rec.ObjectKey.
func (m *Manifest) Record(ctx context.Context, rec PublishedAsset) error {
	err := m.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to record manifest entry %s: %w", rec.ObjectKey, err)
	}
	return nil
}

// Forget deletes the record for key, if any.
func (m *Manifest) Forget(ctx context.Context, key string) error {
	err := m.db.WithContext(ctx).Where("object_key = ?", key).Delete(&PublishedAsset{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete manifest entry %s: %w", key, err)
	}
	return nil
}

// List returns all records ordered by key.
func (m *Manifest) List(ctx context.Context) ([]PublishedAsset, error) {
	var recs []PublishedAsset
	if err := m.db.WithContext(ctx).Order("object_key").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list manifest: %w", err)
	}
	return recs, nil
}
