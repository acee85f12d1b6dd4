package models

import (
	"time"

	dbtypes "github.com/davidalonso/gamevault-backend/pkg/db/types"
	"github.com/google/uuid"
)

// CatalogEntry is a denormalized snapshot of one external catalog item.
// Writes are upserts keyed on external_id; entries are never deleted.
type CatalogEntry struct {
	ID            uuid.UUID               `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ExternalID    int64                   `gorm:"column:external_id;not null;uniqueIndex:catalog_entries_external_id_key"`
	Title         string                  `gorm:"column:title;not null;index:catalog_entries_title_idx"`
	Platform      string                  `gorm:"column:platform;not null;index:catalog_entries_platform_idx"`
	Year          *int                    `gorm:"column:year"`
	Genre         *string                 `gorm:"column:genre"`
	CoverImageURL *string                 `gorm:"column:cover_image_url"`
	Rating        *float64                `gorm:"column:rating"`
	Metacritic    *int                    `gorm:"column:metacritic"`
	Description   *string                 `gorm:"column:description"`
	Metadata      dbtypes.CatalogMetadata `gorm:"column:metadata;type:jsonb"`
	CachedAt      time.Time               `gorm:"column:cached_at;not null;index:catalog_entries_cached_at_idx"`
	CreatedAt     time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}
