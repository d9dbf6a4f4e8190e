package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/festy23/teamboard/internal/auth"
	"github.com/festy23/teamboard/internal/config"
	"github.com/festy23/teamboard/internal/user/model"
	"github.com/festy23/teamboard/internal/user/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// Create tables
	type User struct {
		ID           string `gorm:"primaryKey;column:id"`
		Name         string `gorm:"column:name"`
		Email        string `gorm:"column:email;uniqueIndex"`
		PasswordHash string `gorm:"column:password_hash"`
		CreatedAt    time.Time
		UpdatedAt    time.Time
	}
	require.NoError(t, db.AutoMigrate(&User{}))

	return db
}

func newService(t *testing.T) Service {
	db := setupTestDB(t)
	tokens := auth.NewManager(config.AuthConfig{Secret: "test-secret", TokenTTL: time.Hour})
	return New(repository.New(db), tokens, zap.NewNop().Sugar())
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues a token", func(t *testing.T) {
		svc := newService(t)

		resp, err := svc.Register(ctx, &model.RegisterRequest{
			Name:     "Alice",
			Email:    "Alice@Example.com",
			Password: "secret123",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "Alice", resp.User.Name)
		assert.Equal(t, "alice@example.com", resp.User.Email)
		assert.NotEmpty(t, resp.User.ID)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc := newService(t)
		_, err := svc.Register(ctx, &model.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret123"})
		require.NoError(t, err)

		_, err = svc.Register(ctx, &model.RegisterRequest{Name: "Imposter", Email: "alice@example.com", Password: "secret456"})

		assert.ErrorIs(t, err, model.ErrEmailTaken)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.Register(ctx, &model.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "123"})

		assert.ErrorIs(t, err, model.ErrInvalidPassword)
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.Register(ctx, &model.RegisterRequest{Name: "Alice", Email: "not-an-email", Password: "secret123"})

		assert.ErrorIs(t, err, model.ErrInvalidEmail)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	register := func(t *testing.T, svc Service) {
		_, err := svc.Register(ctx, &model.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret123"})
		require.NoError(t, err)
	}

	t.Run("success with correct credentials", func(t *testing.T) {
		svc := newService(t)
		register(t, svc)

		resp, err := svc.Login(ctx, &model.LoginRequest{Email: "ALICE@example.com", Password: "secret123"})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "alice@example.com", resp.User.Email)
	})

	t.Run("wrong password is rejected without detail", func(t *testing.T) {
		svc := newService(t)
		register(t, svc)

		_, err := svc.Login(ctx, &model.LoginRequest{Email: "alice@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("unknown email is rejected without detail", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.Login(ctx, &model.LoginRequest{Email: "ghost@example.com", Password: "secret123"})

		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})
}

func TestService_Me(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored profile", func(t *testing.T) {
		svc := newService(t)
		registered, err := svc.Register(ctx, &model.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret123"})
		require.NoError(t, err)

		me, err := svc.Me(ctx, registered.User.ID)
		require.NoError(t, err)

		assert.Equal(t, registered.User, *me)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.Me(ctx, "missing")

		assert.ErrorIs(t, err, model.ErrUserNotFound)
	})
}
