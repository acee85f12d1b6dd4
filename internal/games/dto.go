package games

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/davidalonso/gamevault-backend/pkg/db/models"
	"github.com/davidalonso/gamevault-backend/pkg/enums"
)

// GameDTO is the transport shape for one collection entry.
type GameDTO struct {
	ID            uuid.UUID            `json:"id"`
	Title         string               `json:"title"`
	Platform      string               `json:"platform"`
	Year          *int                 `json:"year,omitempty"`
	Genre         *string              `json:"genre,omitempty"`
	Status        enums.GameStatus     `json:"status"`
	CoverImageURL *string              `json:"coverImageUrl,omitempty"`
	Notes         *string              `json:"notes,omitempty"`
	Rating        *float64             `json:"rating,omitempty"`
	Condition     *enums.GameCondition `json:"condition,omitempty"`
	PurchaseInfo  *PurchaseInfoDTO     `json:"purchaseInfo,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// PurchaseInfoDTO groups the optional purchase sub-record.
type PurchaseInfoDTO struct {
	Price    *float64   `json:"price,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
	Location *string    `json:"location,omitempty"`
}

// UpsertGameRequest is the payload accepted by create and update.
// Owner and UserID are accepted so older clients don't break, but they are
// never read; ownership always comes from the session.
type UpsertGameRequest struct {
	Title         string           `json:"title" validate:"required"`
	Platform      string           `json:"platform" validate:"required"`
	Year          *int             `json:"year,omitempty"`
	Genre         *string          `json:"genre,omitempty"`
	Status        string           `json:"status" validate:"required"`
	CoverImageURL *string          `json:"coverImageUrl,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	Rating        *float64         `json:"rating,omitempty"`
	Condition     *string          `json:"condition,omitempty"`
	PurchaseInfo  *PurchaseInfoDTO `json:"purchaseInfo,omitempty"`
	Owner         *string          `json:"owner,omitempty"`
	UserID        *string          `json:"userId,omitempty"`
}

// FromModel maps a persisted game onto the transport shape.
func FromModel(g *models.Game) *GameDTO {
	if g == nil {
		return nil
	}

	dto := &GameDTO{
		ID:            g.ID,
		Title:         g.Title,
		Platform:      g.Platform,
		Year:          g.Year,
		Genre:         g.Genre,
		Status:        g.Status,
		CoverImageURL: g.CoverImageURL,
		Notes:         g.Notes,
		Rating:        g.Rating,
		Condition:     g.Condition,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}

	if g.PurchasePrice != nil || g.PurchaseDate != nil || g.PurchaseLocation != nil {
		info := &PurchaseInfoDTO{
			Date:     g.PurchaseDate,
			Location: g.PurchaseLocation,
		}
		if g.PurchasePrice != nil {
			price := g.PurchasePrice.InexactFloat64()
			info.Price = &price
		}
		dto.PurchaseInfo = info
	}

	return dto
}

func applyRequest(g *models.Game, req UpsertGameRequest, status enums.GameStatus, condition *enums.GameCondition) {
	g.Title = req.Title
	g.Platform = req.Platform
	g.Year = req.Year
	g.Genre = req.Genre
	g.Status = status
	g.CoverImageURL = req.CoverImageURL
	g.Notes = req.Notes
	g.Rating = req.Rating
	g.Condition = condition

	g.PurchasePrice = nil
	g.PurchaseDate = nil
	g.PurchaseLocation = nil
	if req.PurchaseInfo != nil {
		if req.PurchaseInfo.Price != nil {
			price := decimal.NewFromFloat(*req.PurchaseInfo.Price)
			g.PurchasePrice = &price
		}
		g.PurchaseDate = req.PurchaseInfo.Date
		g.PurchaseLocation = req.PurchaseInfo.Location
	}
}
