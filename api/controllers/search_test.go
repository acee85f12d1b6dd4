package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davidalonso/gamevault-backend/internal/search"
	pkgerrors "github.com/davidalonso/gamevault-backend/pkg/errors"
)

type stubSearchService struct {
	result   *search.Result
	err      error
	query    string
	platform string
}

func (s *stubSearchService) Search(ctx context.Context, query, platformFilter string) (*search.Result, error) {
	s.query = query
	s.platform = platformFilter
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func TestGamesSearchSuccess(t *testing.T) {
	year := 1986
	svc := &stubSearchService{result: &search.Result{
		Items: []search.NormalizedResult{{ExternalID: 123, Title: "The Legend of Zelda", Platform: "NES", Year: &year}},
	}}
	handler := GamesSearch(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/games/search?q=zelda&platform=nes", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.query != "zelda" || svc.platform != "nes" {
		t.Fatalf("unexpected passthrough q=%q platform=%q", svc.query, svc.platform)
	}

	var payload struct {
		Success bool                      `json:"success"`
		Count   int                       `json:"count"`
		Data    []search.NormalizedResult `json:"data"`
		Cached  bool                      `json:"cached"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Count != 1 || len(payload.Data) != 1 {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if payload.Data[0].Title != "The Legend of Zelda" {
		t.Fatalf("unexpected item %+v", payload.Data[0])
	}
}

func TestGamesSearchCachedFlagSurfaces(t *testing.T) {
	svc := &stubSearchService{result: &search.Result{
		Items:  []search.NormalizedResult{{ExternalID: 1, Title: "Tetris", Platform: "Game Boy"}},
		Cached: true,
	}}
	handler := GamesSearch(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/games/search?q=tetris", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	var payload struct {
		Cached bool `json:"cached"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.Cached {
		t.Fatal("expected cached true")
	}
}

func TestGamesSearchMissingQuery(t *testing.T) {
	svc := &stubSearchService{err: pkgerrors.New(pkgerrors.CodeValidation, "Query parameter 'q' is required")}
	handler := GamesSearch(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/games/search", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error != "Query parameter 'q' is required" {
		t.Fatalf("unexpected message %q", payload.Error)
	}
}

func TestGamesSearchDegradedCarriesFallback(t *testing.T) {
	svc := &stubSearchService{err: pkgerrors.New(pkgerrors.CodeCatalogUnavailable, "External game search not configured")}
	handler := GamesSearch(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/games/search?q=zelda", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
	var payload struct {
		Error            string `json:"error"`
		FallbackToManual bool   `json:"fallbackToManual"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.FallbackToManual {
		t.Fatal("expected fallbackToManual true")
	}
}

func TestGamesSearchEmptyResultsStayArray(t *testing.T) {
	svc := &stubSearchService{result: &search.Result{}}
	handler := GamesSearch(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/games/search?q=obscure", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	body := resp.Body.String()
	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(payload["data"]) != "[]" {
		t.Fatalf("expected empty array data, got %s", payload["data"])
	}
}
