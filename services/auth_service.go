package services

import (
	"context"
	"errors"
	"strings"

	"foodapp-api/auth"
	"foodapp-api/errs"
	"foodapp-api/models"
	"foodapp-api/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles login and registration
type AuthService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Country  models.Country
}

// Login checks credentials and returns a signed token for the user
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", nil, errs.Unauthorized("Invalid credentials")
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errs.Unauthorized("Invalid credentials")
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Register creates a MEMBER account in the given country and logs it in
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, *models.User, error) {
	if !in.Country.Valid() {
		return "", nil, errs.Validation("Invalid country. Must be: INDIA or AMERICA")
	}

	exists, err := s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return "", nil, err
	}
	if exists {
		return "", nil, errs.Conflict("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         models.RoleMember,
		Country:      in.Country,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
