package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"marblemanager/internal/domain"
	apperrors "marblemanager/internal/errors"
	"marblemanager/internal/validation"
)

type UserRepository interface {
	Insert(ctx context.Context, user domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

type AuthService struct {
	users UserRepository
	jwt   *JWTService
}

func NewAuthService(users UserRepository, jwt *JWTService) *AuthService {
	return &AuthService{
		users: users,
		jwt:   jwt,
	}
}

// Signup registers a new user and returns the user together with a
// session token. Profile fields follow the same rules as the checkout
// form; a duplicate email surfaces as a conflict.
func (s *AuthService) Signup(ctx context.Context, email, password, fullName, phone string) (*domain.User, string, error) {
	var details []apperrors.ValidationDetail
	if d := validation.Email(email); d != nil {
		details = append(details, *d)
	}
	if d := validation.Password(password); d != nil {
		details = append(details, *d)
	}
	if d := validation.FullName(fullName); d != nil {
		details = append(details, *d)
	}
	if d := validation.Phone(phone); d != nil {
		details = append(details, *d)
	}
	if len(details) > 0 {
		return nil, "", apperrors.NewValidationError("validation failed", details...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	user := domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Phone:        phone,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// Login authenticates by email and password. A missing user and a wrong
// password both surface as the same unauthorized error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, "", apperrors.NewUnauthorizedError("invalid email or password")
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.NewUnauthorizedError("invalid email or password")
	}

	token, err := s.jwt.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
