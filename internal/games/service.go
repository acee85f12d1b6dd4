package games

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/davidalonso/gamevault-backend/pkg/db/models"
	"github.com/davidalonso/gamevault-backend/pkg/enums"
	pkgerrors "github.com/davidalonso/gamevault-backend/pkg/errors"
)

const (
	gameNotFoundMessage = "Game not found"
	minYear             = 1970
)

// Service exposes business rules for collection management. Every operation
// is scoped to the authenticated user passed in by the controller.
type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]GameDTO, error)
	Create(ctx context.Context, userID uuid.UUID, req UpsertGameRequest) (*GameDTO, error)
	Get(ctx context.Context, userID, gameID uuid.UUID) (*GameDTO, error)
	Update(ctx context.Context, userID, gameID uuid.UUID, req UpsertGameRequest) (*GameDTO, error)
	Delete(ctx context.Context, userID, gameID uuid.UUID) error
}

type gameRepository interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Game, error)
	Create(ctx context.Context, game *models.Game) (*models.Game, error)
	FindByID(ctx context.Context, userID, gameID uuid.UUID) (*models.Game, error)
	Save(ctx context.Context, game *models.Game) (*models.Game, error)
	Delete(ctx context.Context, userID, gameID uuid.UUID) error
}

type service struct {
	repo gameRepository
}

// ServiceParams groups dependencies for the games service.
type ServiceParams struct {
	Repo gameRepository
}

// NewService builds a games service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("games repository is required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]GameDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing principal")
	}
	records, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list games")
	}
	dtos := make([]GameDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, *FromModel(&records[i]))
	}
	return dtos, nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, req UpsertGameRequest) (*GameDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing principal")
	}
	status, condition, err := validateRequest(&req)
	if err != nil {
		return nil, err
	}

	game := &models.Game{UserID: userID}
	applyRequest(game, req, status, condition)

	created, err := s.repo.Create(ctx, game)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create game")
	}
	return FromModel(created), nil
}

func (s *service) Get(ctx context.Context, userID, gameID uuid.UUID) (*GameDTO, error) {
	game, err := s.loadOwned(ctx, userID, gameID)
	if err != nil {
		return nil, err
	}
	return FromModel(game), nil
}

func (s *service) Update(ctx context.Context, userID, gameID uuid.UUID, req UpsertGameRequest) (*GameDTO, error) {
	game, err := s.loadOwned(ctx, userID, gameID)
	if err != nil {
		return nil, err
	}
	status, condition, err := validateRequest(&req)
	if err != nil {
		return nil, err
	}

	applyRequest(game, req, status, condition)

	saved, err := s.repo.Save(ctx, game)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update game")
	}
	return FromModel(saved), nil
}

func (s *service) Delete(ctx context.Context, userID, gameID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "missing principal")
	}
	if gameID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeNotFound, gameNotFoundMessage)
	}
	if err := s.repo.Delete(ctx, userID, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, gameNotFoundMessage)
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete game")
	}
	return nil
}

func (s *service) loadOwned(ctx context.Context, userID, gameID uuid.UUID) (*models.Game, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing principal")
	}
	if gameID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, gameNotFoundMessage)
	}
	game, err := s.repo.FindByID(ctx, userID, gameID)
	if err != nil {
		// Foreign ownership collapses to the same not-found as absence.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, gameNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load game")
	}
	return game, nil
}

func validateRequest(req *UpsertGameRequest) (enums.GameStatus, *enums.GameCondition, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return "", nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}
	req.Platform = strings.TrimSpace(req.Platform)
	if req.Platform == "" {
		return "", nil, pkgerrors.New(pkgerrors.CodeValidation, "platform is required")
	}

	status, err := enums.ParseGameStatus(strings.TrimSpace(req.Status))
	if err != nil {
		return "", nil, pkgerrors.New(pkgerrors.CodeValidation, "status must be one of: owned, wishlist")
	}

	if req.Year != nil {
		maxYear := time.Now().Year() + 1
		if *req.Year < minYear || *req.Year > maxYear {
			return "", nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("year must be between %d and %d", minYear, maxYear))
		}
	}
	if req.Rating != nil && (*req.Rating < 0 || *req.Rating > 5) {
		return "", nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 0 and 5")
	}

	var condition *enums.GameCondition
	if req.Condition != nil && strings.TrimSpace(*req.Condition) != "" {
		parsed, err := enums.ParseGameCondition(strings.TrimSpace(*req.Condition))
		if err != nil {
			return "", nil, pkgerrors.New(pkgerrors.CodeValidation, "condition must be one of: mint, excellent, good, fair, poor")
		}
		condition = &parsed
	}

	if req.PurchaseInfo != nil && req.PurchaseInfo.Price != nil && *req.PurchaseInfo.Price < 0 {
		return "", nil, pkgerrors.New(pkgerrors.CodeValidation, "purchase price must not be negative")
	}

	return status, condition, nil
}
