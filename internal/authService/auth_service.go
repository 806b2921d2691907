// Package auth implements account registration, login and token-based
// identity for the marketplace.
package auth

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"stakex/internal/marketerrors"
	"stakex/internal/models"
	"stakex/internal/repository"
	"stakex/utils"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// RegisterInput carries the fields supplied on signup.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Age      int
	Address  string
}

// AuthService implements registration, login and identity lookup.
type AuthService struct {
	repo   repository.MarketDB
	tokens *TokenManager
	hasher *PasswordHasher
}

// NewAuthService creates a new AuthService instance
func NewAuthService(repo repository.MarketDB, tokens *TokenManager, hasher *PasswordHasher) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
		hasher: hasher,
	}
}

func validateRegister(in RegisterInput) error {
	name := strings.TrimSpace(in.Name)
	if len(name) < 2 || len(name) > 50 {
		return fmt.Errorf("service: %w - name must be between 2 and 50 characters", marketerrors.ErrValidation)
	}
	if !emailPattern.MatchString(in.Email) {
		return fmt.Errorf("service: %w - invalid email address", marketerrors.ErrValidation)
	}
	if len(in.Password) < 6 {
		return fmt.Errorf("service: %w - password must be at least 6 characters", marketerrors.ErrValidation)
	}
	if in.Age < 13 || in.Age > 120 {
		return fmt.Errorf("service: %w - age must be between 13 and 120", marketerrors.ErrValidation)
	}
	if len(in.Address) > 200 {
		return fmt.Errorf("service: %w - address must be at most 200 characters", marketerrors.ErrValidation)
	}
	return nil
}

// Register creates a new account and returns it with a signed token.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (models.User, string, error) {
	if err := validateRegister(in); err != nil {
		return models.User{}, "", err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return models.User{}, "", fmt.Errorf("service: failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	u := models.User{
		UserID:        utils.GenerateID(),
		Name:          strings.TrimSpace(in.Name),
		Email:         strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash:  hash,
		Age:           in.Age,
		Address:       strings.TrimSpace(in.Address),
		MemberSince:   now.Format("2006-01-02"),
		Cart:          []models.CartEntry{},
		HistoryOrders: []models.OrderEntry{},
		OngoingBids:   []models.OngoingBid{},
		ItemsToSell:   []models.SaleListing{},
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.InsertUser(ctx, &u); err != nil {
		return models.User{}, "", fmt.Errorf("service: failed to register user: %w", err)
	}

	token, err := s.tokens.Generate(u.UserID, u.Email)
	if err != nil {
		return models.User{}, "", fmt.Errorf("service: failed to sign token: %w", err)
	}

	utils.Info("user registered", map[string]any{
		"user_id": u.UserID,
		"email":   u.Email,
	})
	return u, token, nil
}

// Login checks credentials and returns the account with a signed token.
// The same error covers an unknown email and a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	u, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return models.User{}, "", fmt.Errorf("service: %w", marketerrors.ErrInvalidCredentials)
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return models.User{}, "", fmt.Errorf("service: %w", marketerrors.ErrInvalidCredentials)
	}
	if !u.IsActive {
		return models.User{}, "", fmt.Errorf("service: %w", marketerrors.ErrAccountInactive)
	}

	token, err := s.tokens.Generate(u.UserID, u.Email)
	if err != nil {
		return models.User{}, "", fmt.Errorf("service: failed to sign token: %w", err)
	}
	return u, token, nil
}

// Me returns the account behind a user id.
func (s *AuthService) Me(ctx context.Context, userID string) (models.User, error) {
	u, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	return u, nil
}

// Identify validates a bearer token and returns the claims.
func (s *AuthService) Identify(tokenString string) (*Claims, error) {
	return s.tokens.Validate(tokenString)
}
