// Package users contains the signup and login business logic.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dlevchenko/staffgraph/internal/auth"
	"github.com/dlevchenko/staffgraph/internal/common"
	"github.com/dlevchenko/staffgraph/internal/config"
	"github.com/dlevchenko/staffgraph/internal/models"
	usersrepo "github.com/dlevchenko/staffgraph/internal/repositories/users"
)

// LoginResult bundles the issued access token with the authenticated user.
// It is never persisted.
type LoginResult struct {
	Token string
	User  *models.User
}

type Service struct {
	repo                  usersrepo.Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo usersrepo.Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Signup hashes the password and stores a new user. The stored record keeps
// the hash; exposing shapes without it is the schema layer's job.
func (s *Service) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and mints an access token with the user id
// claim.
//
// An unknown email yields common.ErrorNotFound and a password mismatch yields
// common.ErrorUnauthorized. The caller surfaces them as distinct messages,
// which makes account enumeration possible; the distinction is kept for
// compatibility with existing clients.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID.Hex(), s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &LoginResult{Token: token, User: user}, nil
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}
