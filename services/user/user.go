package user

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"

	userRepo "quickwash/database/repository/user"
	"quickwash/models"
	"quickwash/utils"
)

// TokenTTL is how long an issued auth token (and its cache entry) lives.
const TokenTTL = 72 * time.Hour

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// UserService defines account and authentication operations.
type UserService interface {
	Register(email, password, name string) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetByID(id string) (*models.User, error)
}

// DefaultUserService is the production UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates an account and signs the user in.
func (s *DefaultUserService) Register(email, password, name string) (*AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check email", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewConflictError("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	return s.issueToken(u)
}

// Authenticate verifies credentials and issues a fresh token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, utils.NewUnauthorizedError("authentication failed, please try again")
	}
	if u == nil {
		return nil, utils.NewUnauthorizedError("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, utils.NewUnauthorizedError("invalid email or password")
	}
	return s.issueToken(u)
}

// GetByID fetches a user account.
func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, utils.NewNotFoundError("user not found")
	}
	return u, nil
}

// issueToken signs a JWT, persists its hash for cache-miss validation and
// primes the auth cache so the middleware can skip the DB on the hot path.
func (s *DefaultUserService) issueToken(u *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, TokenTTL)
	if err != nil {
		return nil, err
	}
	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(u.ID, tokenHash); err != nil {
		return nil, err
	}

	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + u.ID
	if err := authCache.Set(context.Background(), cacheKey, tokenHash, time.Hour).Err(); err != nil {
		// Cache priming is best effort; the middleware falls back to the DB.
		utils.GetLogger().Warn("issueToken: failed to prime auth cache", zap.Error(err))
	}

	out := *u
	out.PasswordHash = ""
	out.TokenHash = ""
	return &AuthResponse{User: out, Token: token}, nil
}
