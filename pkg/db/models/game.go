package models

import (
	"time"

	"github.com/davidalonso/gamevault-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Game is one collection entry. Every query against this table must filter
// by user_id as well as id; a record is invisible to anyone but its owner.
type Game struct {
	ID            uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID        uuid.UUID            `gorm:"column:user_id;type:uuid;not null;index:games_user_id_idx"`
	Title         string               `gorm:"column:title;not null"`
	Platform      string               `gorm:"column:platform;not null"`
	Year          *int                 `gorm:"column:year"`
	Genre         *string              `gorm:"column:genre"`
	Status        enums.GameStatus     `gorm:"column:status;type:text;not null;default:owned"`
	CoverImageURL *string              `gorm:"column:cover_image_url"`
	Notes         *string              `gorm:"column:notes"`
	Rating        *float64             `gorm:"column:rating"`
	Condition     *enums.GameCondition `gorm:"column:condition;type:text"`

	PurchasePrice    *decimal.Decimal `gorm:"column:purchase_price;type:numeric"`
	PurchaseDate     *time.Time       `gorm:"column:purchase_date"`
	PurchaseLocation *string          `gorm:"column:purchase_location"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
