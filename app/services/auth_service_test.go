package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stylehub/fashion-store/app/models"
	"github.com/stylehub/fashion-store/app/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	for i := range f.users {
		if f.users[i].Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

func newAuthService(users *fakeUserRepo) *AuthService {
	return NewAuthService(users, NewTokenService("access-secret", "refresh-secret"))
}

func TestRegister_HashesPasswordAndIssuesTokens(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	result, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Jordan",
		LastName:  "Lee",
		Email:     "  Jordan@Example.com ",
		Password:  "s3cretpass",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if result.User.Email != "jordan@example.com" {
		t.Errorf("email = %q, want normalized lowercase", result.User.Email)
	}
	if result.User.Password == "s3cretpass" {
		t.Error("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(result.User.Password), []byte("s3cretpass")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
	if result.User.Role != models.RoleUser {
		t.Errorf("role = %q, want %q", result.User.Role, models.RoleUser)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	input := RegisterInput{FirstName: "Jordan", LastName: "Lee", Email: "jordan@example.com", Password: "s3cretpass"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	if _, err := svc.Register(context.Background(), input); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLogin(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	if _, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Jordan", LastName: "Lee", Email: "jordan@example.com", Password: "s3cretpass",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	t.Run("correct password", func(t *testing.T) {
		result, err := svc.Login(context.Background(), "jordan@example.com", "s3cretpass")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if result.AccessToken == "" {
			t.Error("expected an access token")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		if _, err := svc.Login(context.Background(), "jordan@example.com", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		if _, err := svc.Login(context.Background(), "nobody@example.com", "s3cretpass"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestRefresh(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	registered, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Jordan", LastName: "Lee", Email: "jordan@example.com", Password: "s3cretpass",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	t.Run("valid refresh token", func(t *testing.T) {
		result, err := svc.Refresh(context.Background(), registered.RefreshToken)
		if err != nil {
			t.Fatalf("Refresh: %v", err)
		}
		if result.User.ID != registered.User.ID {
			t.Errorf("refreshed user %s, want %s", result.User.ID.Hex(), registered.User.ID.Hex())
		}
		if result.AccessToken == "" || result.RefreshToken == "" {
			t.Error("expected a fresh token pair")
		}
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		if _, err := svc.Refresh(context.Background(), registered.AccessToken); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("deleted user", func(t *testing.T) {
		users.users = nil
		if _, err := svc.Refresh(context.Background(), registered.RefreshToken); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})
}
