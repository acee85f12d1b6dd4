package search

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/davidalonso/gamevault-backend/pkg/db/models"
)

// CacheRepository persists catalog snapshots keyed by external id.
type CacheRepository struct {
	db *gorm.DB
}

// NewCacheRepository constructs a cache repo bound to the provided gorm DB.
func NewCacheRepository(db *gorm.DB) *CacheRepository {
	return &CacheRepository{db: db}
}

// FindMatches returns entries whose title or platform contains the query,
// case-insensitively. When a platform constraint is given the entry's
// platform must also contain the filter key or its display name.
func (r *CacheRepository) FindMatches(ctx context.Context, query string, platform *PlatformRef, limit int) ([]models.CatalogEntry, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"

	q := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(platform) LIKE ?", pattern, pattern)

	if platform != nil {
		namePattern := "%" + strings.ToLower(platform.DisplayName) + "%"
		q = q.Where("LOWER(platform) LIKE ?", namePattern)
	}

	var entries []models.CatalogEntry
	if err := q.Order("cached_at DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Upsert writes the entry, replacing any previous snapshot of the same
// external id. Last write wins; concurrent population converges.
func (r *CacheRepository) Upsert(ctx context.Context, entry *models.CatalogEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title",
				"platform",
				"year",
				"genre",
				"cover_image_url",
				"rating",
				"metacritic",
				"description",
				"metadata",
				"cached_at",
				"updated_at",
			}),
		}).
		Create(entry).Error
}
