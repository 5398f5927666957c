package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/babicastilho/todo-list-api/internal/domain/entities"
	"github.com/babicastilho/todo-list-api/internal/infrastructure/config"
	"github.com/babicastilho/todo-list-api/internal/infrastructure/logger"
	"github.com/babicastilho/todo-list-api/internal/ports"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entities.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:    "test-secret-not-for-production",
		ExpiresIn: time.Hour,
		Issuer:    "todo-list-api-test",
	}
}

func TestRegisterLoginVerifyRoundTrip(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testJWTConfig(), logger.NewNop())

	registered, err := svc.Register(context.Background(), ports.RegisterRequest{
		Email:    "ana@example.com",
		Username: "ana",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("Register error = %v", err)
	}
	if registered.Token == "" {
		t.Fatal("Register returned empty token")
	}
	if registered.User.PasswordHash != "" {
		t.Error("Register leaked password hash")
	}

	loggedIn, err := svc.Login(context.Background(), ports.LoginRequest{
		Email:    "ana@example.com",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("Login error = %v", err)
	}

	ownerID, err := svc.VerifyToken(loggedIn.Token)
	if err != nil {
		t.Fatalf("VerifyToken error = %v", err)
	}
	if ownerID != registered.User.ID {
		t.Errorf("VerifyToken owner = %v, want %v", ownerID, registered.User.ID)
	}
}

func TestRegisterConflicts(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testJWTConfig(), logger.NewNop())

	_, err := svc.Register(context.Background(), ports.RegisterRequest{
		Email: "ana@example.com", Username: "ana", Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("Register error = %v", err)
	}

	_, err = svc.Register(context.Background(), ports.RegisterRequest{
		Email: "ana@example.com", Username: "other", Password: "hunter2hunter2",
	})
	if !errors.Is(err, entities.ErrEmailTaken) {
		t.Errorf("duplicate email error = %v, want ErrEmailTaken", err)
	}

	_, err = svc.Register(context.Background(), ports.RegisterRequest{
		Email: "other@example.com", Username: "ana", Password: "hunter2hunter2",
	})
	if !errors.Is(err, entities.ErrUsernameTaken) {
		t.Errorf("duplicate username error = %v, want ErrUsernameTaken", err)
	}
}

// conflictOnCreateRepo simulates a duplicate registration that commits
// between the pre-insert lookups and the insert, so the conflict only
// surfaces from Create.
type conflictOnCreateRepo struct {
	*fakeUserRepo
	createErr error
}

func (r *conflictOnCreateRepo) Create(ctx context.Context, user *entities.User) error {
	return r.createErr
}

func TestRegisterSurfacesInsertTimeConflict(t *testing.T) {
	for _, tt := range []struct {
		name string
		err  error
	}{
		{"email", entities.ErrEmailTaken},
		{"username", entities.ErrUsernameTaken},
	} {
		t.Run(tt.name, func(t *testing.T) {
			repo := &conflictOnCreateRepo{fakeUserRepo: newFakeUserRepo(), createErr: tt.err}
			svc := NewAuthService(repo, testJWTConfig(), logger.NewNop())

			_, err := svc.Register(context.Background(), ports.RegisterRequest{
				Email: "ana@example.com", Username: "ana", Password: "hunter2hunter2",
			})
			if !errors.Is(err, tt.err) {
				t.Errorf("Register error = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testJWTConfig(), logger.NewNop())

	_, err := svc.Register(context.Background(), ports.RegisterRequest{
		Email: "ana@example.com", Username: "ana", Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("Register error = %v", err)
	}

	_, err = svc.Login(context.Background(), ports.LoginRequest{
		Email: "ana@example.com", Password: "wrong-password",
	})
	if !errors.Is(err, entities.ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login(context.Background(), ports.LoginRequest{
		Email: "ghost@example.com", Password: "whatever123",
	})
	if !errors.Is(err, entities.ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", err)
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testJWTConfig(), logger.NewNop())

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := svc.VerifyToken(token); err == nil {
			t.Errorf("VerifyToken(%q) error = nil, want error", token)
		}
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewAuthService(newFakeUserRepo(), testJWTConfig(), logger.NewNop())

	registered, err := issuer.Register(context.Background(), ports.RegisterRequest{
		Email: "ana@example.com", Username: "ana", Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("Register error = %v", err)
	}

	otherCfg := testJWTConfig()
	otherCfg.Secret = "some-other-secret"
	verifier := NewAuthService(newFakeUserRepo(), otherCfg, logger.NewNop())

	if _, err := verifier.VerifyToken(registered.Token); err == nil {
		t.Error("VerifyToken with wrong secret error = nil, want error")
	}
}
