// Package service provides business logic layer for user module.
package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/festy23/teamboard/internal/auth"
	"github.com/festy23/teamboard/internal/user/model"
	"github.com/festy23/teamboard/internal/user/repository"
)

// Service defines the interface for user business logic operations.
type Service interface {
	// Register creates an account and returns an access token.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)

	// Login authenticates by email and password and returns an access token.
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)

	// Me returns the profile of the authenticated user.
	Me(ctx context.Context, userID string) (*model.Summary, error)
}

type service struct {
	repo   repository.Repository
	tokens *auth.Manager
	logger *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, tokens *auth.Manager, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, tokens: tokens, logger: logger}
}

// Register creates an account and returns an access token.
func (s *service) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if name == "" {
		return nil, model.ErrInvalidName
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, model.ErrInvalidEmail
	}
	if len(req.Password) < 6 {
		return nil, model.ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("user registered", "user_id", user.ID)
	return &model.AuthResponse{Token: token, User: user.Summary()}, nil
}

// Login authenticates by email and password and returns an access token.
func (s *service) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, model.ErrInvalidCredentials
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{Token: token, User: user.Summary()}, nil
}

// Me returns the profile of the authenticated user.
func (s *service) Me(ctx context.Context, userID string) (*model.Summary, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := user.Summary()
	return &summary, nil
}
