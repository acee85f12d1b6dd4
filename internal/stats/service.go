package stats

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/davidalonso/gamevault-backend/pkg/db/models"
	"github.com/davidalonso/gamevault-backend/pkg/enums"
	pkgerrors "github.com/davidalonso/gamevault-backend/pkg/errors"
)

// Stats is the derived summary over one user's collection. Nothing here is
// persisted; every call recomputes from the current records.
type Stats struct {
	TotalGames         int              `json:"totalGames"`
	OwnedCount         int              `json:"ownedCount"`
	WishlistCount      int              `json:"wishlistCount"`
	PlatformBreakdown  []BreakdownEntry `json:"platformBreakdown"`
	GenreBreakdown     []BreakdownEntry `json:"genreBreakdown"`
	ConditionBreakdown []BreakdownEntry `json:"conditionBreakdown"`
	StatusBreakdown    []BreakdownEntry `json:"statusBreakdown"`
	TotalValue         float64          `json:"totalValue"`
	AverageYear        *int             `json:"averageYear"`
}

// BreakdownEntry is one group-by bucket.
type BreakdownEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Service computes collection statistics on demand.
type Service interface {
	Compute(ctx context.Context, userID uuid.UUID) (*Stats, error)
}

type gameLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Game, error)
}

type service struct {
	games gameLister
}

// ServiceParams groups dependencies for the stats service.
type ServiceParams struct {
	Games gameLister
}

// NewService builds a stats service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Games == nil {
		return nil, fmt.Errorf("games lister is required")
	}
	return &service{games: params.Games}, nil
}

func (s *service) Compute(ctx context.Context, userID uuid.UUID) (*Stats, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing principal")
	}
	records, err := s.games.List(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list games for stats")
	}
	return computeFromRecords(records), nil
}

func computeFromRecords(records []models.Game) *Stats {
	stats := &Stats{TotalGames: len(records)}

	platforms := newCounter()
	genres := newCounter()
	conditions := newCounter()

	totalValue := decimal.Zero
	yearSum := 0
	yearCount := 0

	for i := range records {
		game := &records[i]
		switch game.Status {
		case enums.GameStatusOwned:
			stats.OwnedCount++
		case enums.GameStatusWishlist:
			stats.WishlistCount++
		}

		platforms.add(game.Platform)
		if game.Genre != nil && *game.Genre != "" {
			genres.add(*game.Genre)
		}
		if game.Status == enums.GameStatusOwned && game.Condition != nil {
			conditions.add(string(*game.Condition))
		}
		if game.PurchasePrice != nil {
			totalValue = totalValue.Add(*game.PurchasePrice)
		}
		if game.Year != nil {
			yearSum += *game.Year
			yearCount++
		}
	}

	stats.PlatformBreakdown = platforms.sorted()
	stats.GenreBreakdown = genres.sorted()
	stats.ConditionBreakdown = conditions.sorted()
	// Status is a closed set; clients always get both buckets, zero or not.
	stats.StatusBreakdown = []BreakdownEntry{
		{Name: "Owned", Count: stats.OwnedCount},
		{Name: "Wishlist", Count: stats.WishlistCount},
	}
	stats.TotalValue = totalValue.InexactFloat64()

	if yearCount > 0 {
		// Round half up, so an average of X.5 lands on X+1.
		avg := int(math.Floor(float64(yearSum)/float64(yearCount) + 0.5))
		stats.AverageYear = &avg
	}

	return stats
}

// counter tracks counts while remembering first-encounter order so equal
// counts sort deterministically.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(name string) {
	if _, seen := c.counts[name]; !seen {
		c.order = append(c.order, name)
	}
	c.counts[name]++
}

func (c *counter) sorted() []BreakdownEntry {
	entries := make([]BreakdownEntry, 0, len(c.order))
	for _, name := range c.order {
		entries = append(entries, BreakdownEntry{Name: name, Count: c.counts[name]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}
