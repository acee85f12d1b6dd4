package games

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/davidalonso/gamevault-backend/pkg/db/models"
	pkgerrors "github.com/davidalonso/gamevault-backend/pkg/errors"
)

type stubGameRepo struct {
	games map[uuid.UUID]*models.Game
}

func newStubGameRepo() *stubGameRepo {
	return &stubGameRepo{games: map[uuid.UUID]*models.Game{}}
}

func (s *stubGameRepo) List(ctx context.Context, userID uuid.UUID) ([]models.Game, error) {
	var out []models.Game
	for _, g := range s.games {
		if g.UserID == userID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (s *stubGameRepo) Create(ctx context.Context, game *models.Game) (*models.Game, error) {
	if game.ID == uuid.Nil {
		game.ID = uuid.New()
	}
	copied := *game
	s.games[game.ID] = &copied
	return game, nil
}

func (s *stubGameRepo) FindByID(ctx context.Context, userID, gameID uuid.UUID) (*models.Game, error) {
	g, ok := s.games[gameID]
	if !ok || g.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *g
	return &copied, nil
}

func (s *stubGameRepo) Save(ctx context.Context, game *models.Game) (*models.Game, error) {
	copied := *game
	s.games[game.ID] = &copied
	return game, nil
}

func (s *stubGameRepo) Delete(ctx context.Context, userID, gameID uuid.UUID) error {
	g, ok := s.games[gameID]
	if !ok || g.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(s.games, gameID)
	return nil
}

func newGamesService(t *testing.T) (Service, *stubGameRepo) {
	t.Helper()
	repo := newStubGameRepo()
	svc, err := NewService(ServiceParams{Repo: repo})
	if err != nil {
		t.Fatalf("new games service: %v", err)
	}
	return svc, repo
}

func validCreateRequest() UpsertGameRequest {
	return UpsertGameRequest{
		Title:    "Super Mario Bros.",
		Platform: "NES",
		Status:   "owned",
	}
}

func TestCreateSetsOwnerFromSession(t *testing.T) {
	svc, repo := newGamesService(t)
	owner := uuid.New()

	req := validCreateRequest()
	spoofed := uuid.New().String()
	req.UserID = &spoofed

	dto, err := svc.Create(context.Background(), owner, req)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored := repo.games[dto.ID]
	if stored == nil {
		t.Fatal("game not stored")
	}
	if stored.UserID != owner {
		t.Fatalf("expected owner %s, got %s", owner, stored.UserID)
	}
	if stored.UserID.String() == spoofed {
		t.Fatal("client-supplied owner must never win")
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newGamesService(t)
	owner := uuid.New()
	year3000 := 3000
	badRating := 5.5
	badCondition := "shredded"
	negativePrice := -1.0

	cases := []struct {
		name   string
		mutate func(*UpsertGameRequest)
	}{
		{"missing title", func(r *UpsertGameRequest) { r.Title = "  " }},
		{"missing platform", func(r *UpsertGameRequest) { r.Platform = "" }},
		{"bad status", func(r *UpsertGameRequest) { r.Status = "borrowed" }},
		{"year too late", func(r *UpsertGameRequest) { r.Year = &year3000 }},
		{"rating out of range", func(r *UpsertGameRequest) { r.Rating = &badRating }},
		{"unknown condition", func(r *UpsertGameRequest) { r.Condition = &badCondition }},
		{"negative price", func(r *UpsertGameRequest) {
			r.PurchaseInfo = &PurchaseInfoDTO{Price: &negativePrice}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)
			_, err := svc.Create(context.Background(), owner, req)
			appErr := pkgerrors.As(err)
			if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestGetForeignOwnerCollapsesToNotFound(t *testing.T) {
	svc, _ := newGamesService(t)
	owner := uuid.New()
	stranger := uuid.New()

	dto, err := svc.Create(context.Background(), owner, validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.Get(context.Background(), stranger, dto.ID)
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if appErr.Message() != "Game not found" {
		t.Fatalf("unexpected message %q", appErr.Message())
	}

	_, err = svc.Update(context.Background(), stranger, dto.ID, validCreateRequest())
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found on update, got %v", err)
	}

	err = svc.Delete(context.Background(), stranger, dto.ID)
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found on delete, got %v", err)
	}
}

func TestUpdateClearsOmittedOptionalFields(t *testing.T) {
	svc, repo := newGamesService(t)
	owner := uuid.New()

	year := 1985
	genre := "Platformer"
	req := validCreateRequest()
	req.Year = &year
	req.Genre = &genre
	price := 20.0
	req.PurchaseInfo = &PurchaseInfoDTO{Price: &price}

	dto, err := svc.Create(context.Background(), owner, req)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), owner, dto.ID, validCreateRequest())
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Year != nil || updated.Genre != nil || updated.PurchaseInfo != nil {
		t.Fatalf("expected optional fields cleared, got %+v", updated)
	}
	stored := repo.games[dto.ID]
	if stored.PurchasePrice != nil {
		t.Fatal("purchase price should be cleared in storage")
	}
}

func TestPurchaseInfoSurfacesAsNestedObject(t *testing.T) {
	svc, _ := newGamesService(t)
	owner := uuid.New()

	price := 45.50
	location := "Garage sale"
	req := validCreateRequest()
	req.PurchaseInfo = &PurchaseInfoDTO{Price: &price, Location: &location}

	dto, err := svc.Create(context.Background(), owner, req)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if dto.PurchaseInfo == nil || dto.PurchaseInfo.Price == nil {
		t.Fatalf("expected purchase info, got %+v", dto.PurchaseInfo)
	}
	if *dto.PurchaseInfo.Price != 45.50 {
		t.Fatalf("unexpected price %f", *dto.PurchaseInfo.Price)
	}
	if dto.PurchaseInfo.Location == nil || *dto.PurchaseInfo.Location != "Garage sale" {
		t.Fatalf("unexpected location %+v", dto.PurchaseInfo.Location)
	}
}
