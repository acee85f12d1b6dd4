package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/davidalonso/gamevault-backend/internal/users"
	"github.com/davidalonso/gamevault-backend/pkg/config"
	pkgmodels "github.com/davidalonso/gamevault-backend/pkg/db/models"
	pkgerrors "github.com/davidalonso/gamevault-backend/pkg/errors"
	"github.com/davidalonso/gamevault-backend/pkg/security"
)

type stubTxRunner struct{}

func (s stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type stubUserRepository struct {
	data      map[string]*pkgmodels.User
	created   *pkgmodels.User
	createErr error
}

func newStubUserRepository() *stubUserRepository {
	return &stubUserRepository{data: map[string]*pkgmodels.User{}}
}

func (s *stubUserRepository) FindByEmail(ctx context.Context, email string) (*pkgmodels.User, error) {
	if user, ok := s.data[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepository) Create(ctx context.Context, dto users.CreateUserDTO) (*pkgmodels.User, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	user := &pkgmodels.User{
		ID:           uuid.New(),
		Email:        dto.Email,
		Name:         dto.Name,
		PasswordHash: dto.PasswordHash,
	}
	s.data[dto.Email] = user
	s.created = user
	return user, nil
}

type stubSessionManager struct {
	generated []string
	revoked   []string
}

func (s *stubSessionManager) Generate(ctx context.Context, accessID string) error {
	s.generated = append(s.generated, accessID)
	return nil
}

func (s *stubSessionManager) Revoke(ctx context.Context, accessID string) error {
	s.revoked = append(s.revoked, accessID)
	return nil
}

type authTestSetup struct {
	service  Service
	userRepo *stubUserRepository
	sessions *stubSessionManager
}

func newAuthTestSetup(t *testing.T) *authTestSetup {
	t.Helper()
	userRepo := newStubUserRepository()
	sessions := &stubSessionManager{}
	svc, err := NewService(ServiceParams{
		TxRunner: stubTxRunner{},
		UserRepoFactory: func(tx *gorm.DB) userRepository {
			return userRepo
		},
		SessionManager: sessions,
		JWTConfig: config.JWTConfig{
			Secret:            "test-secret",
			Issuer:            "gamevault",
			ExpirationMinutes: 30,
		},
		PasswordConfig: config.PasswordConfig{},
	})
	if err != nil {
		t.Fatalf("new auth service: %v", err)
	}
	return &authTestSetup{service: svc, userRepo: userRepo, sessions: sessions}
}

func seedUser(t *testing.T, setup *authTestSetup, email, password string) *pkgmodels.User {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &pkgmodels.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Seeded User",
		PasswordHash: hash,
	}
	setup.userRepo.data[email] = user
	return user
}

func TestSignupCreatesUser(t *testing.T) {
	setup := newAuthTestSetup(t)

	resp, err := setup.service.Signup(context.Background(), SignupRequest{
		Name:     "Alex Chen",
		Email:    "Alex@Example.com",
		Password: "retro123",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	if setup.userRepo.created == nil {
		t.Fatal("expected user to be created")
	}
	if setup.userRepo.created.Email != "alex@example.com" {
		t.Fatalf("expected lowercased email, got %q", setup.userRepo.created.Email)
	}
	if setup.userRepo.created.PasswordHash == "retro123" {
		t.Fatal("password stored in plaintext")
	}
	if resp.User == nil || resp.User.Email != "alex@example.com" {
		t.Fatalf("unexpected response user %+v", resp.User)
	}
}

func TestSignupRejectsShortPassword(t *testing.T) {
	setup := newAuthTestSetup(t)

	_, err := setup.service.Signup(context.Background(), SignupRequest{
		Name:     "Alex Chen",
		Email:    "alex@example.com",
		Password: "12345",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
	if appErr.Message() != "Password must be at least 6 characters" {
		t.Fatalf("unexpected message %q", appErr.Message())
	}
	if setup.userRepo.created != nil {
		t.Fatal("user should not be created")
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	setup := newAuthTestSetup(t)
	seedUser(t, setup, "taken@example.com", "retro123")

	_, err := setup.service.Signup(context.Background(), SignupRequest{
		Name:     "Alex Chen",
		Email:    "taken@example.com",
		Password: "retro123",
	})
	if err == nil {
		t.Fatal("expected conflict error")
	}
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict code, got %v", err)
	}
	if appErr.Message() != "User with this email already exists" {
		t.Fatalf("unexpected message %q", appErr.Message())
	}
}

func TestLoginReturnsTokenAndSession(t *testing.T) {
	setup := newAuthTestSetup(t)
	user := seedUser(t, setup, "alex@example.com", "retro123")

	resp, err := setup.service.Login(context.Background(), LoginRequest{
		Email:    "alex@example.com",
		Password: "retro123",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected bearer token")
	}
	if resp.User == nil || resp.User.ID != user.ID {
		t.Fatalf("unexpected user %+v", resp.User)
	}
	if len(setup.sessions.generated) != 1 {
		t.Fatalf("expected one session, got %d", len(setup.sessions.generated))
	}
}

func TestLoginUniformErrorForBadCredentials(t *testing.T) {
	setup := newAuthTestSetup(t)
	seedUser(t, setup, "alex@example.com", "retro123")

	cases := []struct {
		name  string
		email string
		pass  string
	}{
		{"unknown email", "nobody@example.com", "retro123"},
		{"wrong password", "alex@example.com", "wrong-pass"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := setup.service.Login(context.Background(), LoginRequest{Email: tc.email, Password: tc.pass})
			if err == nil {
				t.Fatal("expected unauthorized error")
			}
			appErr := pkgerrors.As(err)
			if appErr == nil || appErr.Code() != pkgerrors.CodeUnauthorized {
				t.Fatalf("expected unauthorized code, got %v", err)
			}
			if appErr.Message() != "Invalid email or password" {
				t.Fatalf("unexpected message %q", appErr.Message())
			}
		})
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	setup := newAuthTestSetup(t)

	if err := setup.service.Logout(context.Background(), "jti-1"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if len(setup.sessions.revoked) != 1 || setup.sessions.revoked[0] != "jti-1" {
		t.Fatalf("unexpected revoked sessions %+v", setup.sessions.revoked)
	}

	if err := setup.service.Logout(context.Background(), " "); err == nil {
		t.Fatal("expected error for blank access id")
	}
}
