package publish

import "time"

// PublishedAsset records the last upload of one object.
type PublishedAsset struct {
	ObjectKey   string    `gorm:"column:object_key;primaryKey;size:512"`
	Digest      string    `gorm:"column:digest;size:64;not null"`
	Size        int64     `gorm:"column:size;not null"`
	MIME        string    `gorm:"column:mime;size:255"`
	PublishedAt time.Time `gorm:"column:published_at;not null"`
}

// TableName overrides the table name.
func (PublishedAsset) TableName() string {
	return "published_assets"
}
