package games

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/davidalonso/gamevault-backend/pkg/db/models"
)

// Repository encapsulates game persistence. Every lookup filters by owner;
// a record owned by someone else behaves exactly like a missing record.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a games repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all games owned by the user, newest first.
func (r *Repository) List(ctx context.Context, userID uuid.UUID) ([]models.Game, error) {
	var games []models.Game
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}

// Create inserts a new game and returns the persisted model.
func (r *Repository) Create(ctx context.Context, game *models.Game) (*models.Game, error) {
	if game.ID == uuid.Nil {
		game.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(game).Error; err != nil {
		return nil, err
	}
	return game, nil
}

// FindByID loads the game only when it belongs to the user.
func (r *Repository) FindByID(ctx context.Context, userID, gameID uuid.UUID) (*models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", gameID, userID).
		First(&game).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// Save persists the full state of an already-owned game.
func (r *Repository) Save(ctx context.Context, game *models.Game) (*models.Game, error) {
	if err := r.db.WithContext(ctx).Save(game).Error; err != nil {
		return nil, err
	}
	return game, nil
}

// Delete removes the game when owned by the user; ErrRecordNotFound otherwise.
func (r *Repository) Delete(ctx context.Context, userID, gameID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", gameID, userID).
		Delete(&models.Game{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
