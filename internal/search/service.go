package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"

	"github.com/davidalonso/gamevault-backend/pkg/db/models"
	dbtypes "github.com/davidalonso/gamevault-backend/pkg/db/types"
	pkgerrors "github.com/davidalonso/gamevault-backend/pkg/errors"
	"github.com/davidalonso/gamevault-backend/pkg/logger"
	"github.com/davidalonso/gamevault-backend/pkg/rawg"
)

const (
	cachePageSize     = 20
	notesExcerptLimit = 200
	unknownPlatform   = "Unknown"
)

// Service orchestrates catalog search: cache probe first, upstream call on a
// miss, and best-effort cache population after results are returned.
type Service interface {
	Search(ctx context.Context, query, platformFilter string) (*Result, error)
}

type cacheRepository interface {
	FindMatches(ctx context.Context, query string, platform *PlatformRef, limit int) ([]models.CatalogEntry, error)
	Upsert(ctx context.Context, entry *models.CatalogEntry) error
}

type catalogClient interface {
	SearchGames(ctx context.Context, query string, platformID int64) (*rawg.SearchResponse, error)
}

type service struct {
	cache   cacheRepository
	catalog catalogClient
	logg    *logger.Logger
}

// ServiceParams groups dependencies for the search service. Catalog may be
// nil when no API key is configured; searches then degrade to manual entry.
type ServiceParams struct {
	Cache   cacheRepository
	Catalog catalogClient
	Logger  *logger.Logger
}

// NewService builds a search service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Cache == nil {
		return nil, fmt.Errorf("cache repository is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{
		cache:   params.Cache,
		catalog: params.Catalog,
		logg:    params.Logger,
	}, nil
}

func (s *service) Search(ctx context.Context, query, platformFilter string) (*Result, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Query parameter 'q' is required")
	}

	var platform *PlatformRef
	if ref, ok := ResolvePlatform(platformFilter); ok {
		platform = &ref
	}

	cached, err := s.cache.FindMatches(ctx, q, platform, cachePageSize)
	if err != nil {
		s.logg.Error(ctx, "cache probe failed", err)
	} else if len(cached) > 0 {
		items := make([]NormalizedResult, 0, len(cached))
		for i := range cached {
			items = append(items, normalizeEntry(&cached[i]))
		}
		return &Result{Items: items, Cached: true}, nil
	}

	if s.catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeCatalogUnavailable, "External game search not configured")
	}

	var platformID int64
	if platform != nil {
		platformID = platform.UpstreamID
	}
	upstream, err := s.catalog.SearchGames(ctx, q, platformID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeCatalogError, err, "Failed to search games")
	}

	items := make([]NormalizedResult, 0, len(upstream.Results))
	for i := range upstream.Results {
		items = append(items, normalizeUpstream(&upstream.Results[i], platform))
	}

	// Population must not delay or fail the response.
	go s.populateCache(context.WithoutCancel(ctx), upstream.Results, platform)

	return &Result{Items: items, Cached: false}, nil
}

// populateCache upserts one snapshot per upstream item. Failures are
// isolated per item, collected, and logged.
func (s *service) populateCache(ctx context.Context, games []rawg.Game, platform *PlatformRef) {
	now := time.Now().UTC()
	var errs error
	for i := range games {
		entry := entryFromUpstream(&games[i], platform, now)
		if err := s.cache.Upsert(ctx, entry); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("external id %d: %w", entry.ExternalID, err))
		}
	}
	if errs != nil {
		s.logg.Error(ctx, "catalog cache population failed", errs)
	}
}

func normalizeEntry(entry *models.CatalogEntry) NormalizedResult {
	notes := ""
	if entry.Description != nil && strings.TrimSpace(*entry.Description) != "" {
		notes = excerpt(*entry.Description)
	} else if entry.Rating != nil {
		notes = ratingSummary(*entry.Rating)
	}

	return NormalizedResult{
		ExternalID:    entry.ExternalID,
		Title:         entry.Title,
		Platform:      entry.Platform,
		Year:          entry.Year,
		Genre:         entry.Genre,
		CoverImageURL: entry.CoverImageURL,
		Notes:         notes,
	}
}

func normalizeUpstream(game *rawg.Game, platform *PlatformRef) NormalizedResult {
	result := NormalizedResult{
		ExternalID: game.ID,
		Title:      game.Name,
		Platform:   resolveItemPlatform(game, platform),
		Year:       releaseYear(game.Released),
		Notes:      upstreamNotes(game),
	}
	if len(game.Genres) > 0 {
		genre := game.Genres[0].Name
		result.Genre = &genre
	}
	if game.BackgroundImage != "" {
		cover := game.BackgroundImage
		result.CoverImageURL = &cover
	}
	return result
}

// resolveItemPlatform prefers the platform matching the active filter, then
// the item's first listed platform, then a fixed placeholder.
func resolveItemPlatform(game *rawg.Game, platform *PlatformRef) string {
	if platform != nil {
		for _, p := range game.Platforms {
			if p.Platform.ID == platform.UpstreamID {
				return p.Platform.Name
			}
		}
	}
	if len(game.Platforms) > 0 {
		return game.Platforms[0].Platform.Name
	}
	return unknownPlatform
}

func entryFromUpstream(game *rawg.Game, platform *PlatformRef, cachedAt time.Time) *models.CatalogEntry {
	entry := &models.CatalogEntry{
		ExternalID: game.ID,
		Title:      game.Name,
		Platform:   resolveItemPlatform(game, platform),
		Year:       releaseYear(game.Released),
		Metacritic: game.Metacritic,
		CachedAt:   cachedAt,
	}

	rating := game.Rating
	entry.Rating = &rating

	if len(game.Genres) > 0 {
		genre := game.Genres[0].Name
		entry.Genre = &genre
	}
	if game.BackgroundImage != "" {
		cover := game.BackgroundImage
		entry.CoverImageURL = &cover
	}
	if strings.TrimSpace(game.DescriptionRaw) != "" {
		desc := game.DescriptionRaw
		entry.Description = &desc
	}

	meta := dbtypes.CatalogMetadata{
		Platforms: make([]string, 0, len(game.Platforms)),
		Genres:    make([]string, 0, len(game.Genres)),
	}
	for _, p := range game.Platforms {
		meta.Platforms = append(meta.Platforms, p.Platform.Name)
	}
	for _, g := range game.Genres {
		meta.Genres = append(meta.Genres, g.Name)
	}
	entry.Metadata = meta

	return entry
}

func upstreamNotes(game *rawg.Game) string {
	if strings.TrimSpace(game.DescriptionRaw) != "" {
		return excerpt(game.DescriptionRaw)
	}
	return ratingSummary(game.Rating)
}

func ratingSummary(rating float64) string {
	return fmt.Sprintf("Added from RAWG. Rating: %s/5", strconv.FormatFloat(rating, 'f', -1, 64))
}

func excerpt(text string) string {
	trimmed := strings.TrimSpace(text)
	runes := []rune(trimmed)
	if len(runes) <= notesExcerptLimit {
		return trimmed
	}
	return strings.TrimSpace(string(runes[:notesExcerptLimit])) + "..."
}

func releaseYear(released string) *int {
	if len(released) < 4 {
		return nil
	}
	year, err := strconv.Atoi(released[:4])
	if err != nil {
		return nil
	}
	return &year
}
