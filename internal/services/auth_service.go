package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jobsterhq/jobster-api/internal/apperrors"
	"github.com/jobsterhq/jobster-api/internal/auth"
	"github.com/jobsterhq/jobster-api/internal/dtos"
	"github.com/jobsterhq/jobster-api/internal/models"
)

type AuthService struct {
	DB     *gorm.DB
	Tokens *auth.TokenIssuer
}

func NewAuthService(db *gorm.DB, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{
		DB:     db,
		Tokens: tokens,
	}
}

func (s *AuthService) Register(ctx context.Context, req *dtos.RegisterRequest) (*dtos.UserPayload, error) {
	email := normalizeEmail(req.Email)

	var existing models.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, apperrors.BadRequest("Email already in use")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       uuid.New(),
		Name:     req.Name,
		LastName: "lastName",
		Email:    email,
		Password: string(hash),
		Location: "my city",
	}
	if err := s.DB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}

	return s.payloadFor(user)
}

func (s *AuthService) Login(ctx context.Context, req *dtos.LoginRequest) (*dtos.UserPayload, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.BadRequest("Please provide email and password")
	}

	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", normalizeEmail(req.Email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Unauthenticated("Invalid Credentials")
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, apperrors.Unauthenticated("Invalid Credentials")
	}

	return s.payloadFor(&user)
}

// UpdateUser persists the profile change and reissues the token, because
// the display name lives in the claims. The previous token stays valid
// until it expires; there is no revocation list.
func (s *AuthService) UpdateUser(ctx context.Context, userID uuid.UUID, req *dtos.UpdateUserRequest) (*dtos.UserPayload, error) {
	if req.Email == "" || req.Name == "" || req.LastName == "" || req.Location == "" {
		return nil, apperrors.BadRequest("Please provide all values")
	}

	var user models.User
	err := s.DB.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Unauthenticated("Invalid Credentials")
	}
	if err != nil {
		return nil, err
	}

	user.Email = normalizeEmail(req.Email)
	user.Name = req.Name
	user.LastName = req.LastName
	user.Location = req.Location

	if err := s.DB.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}

	return s.payloadFor(&user)
}

func (s *AuthService) payloadFor(user *models.User) (*dtos.UserPayload, error) {
	token, err := s.Tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &dtos.UserPayload{
		Email:    user.Email,
		LastName: user.LastName,
		Location: user.Location,
		Name:     user.Name,
		Token:    token,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
