package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/daontrade/exportdesk/internal/entity"
	"github.com/daontrade/exportdesk/internal/middleware"
	"github.com/daontrade/exportdesk/internal/repository"
)

type AuthService struct {
	users       *repository.UserRepository
	jwtSecret   string
	expireHours int
}

func NewAuthService(users *repository.UserRepository, jwtSecret string, expireHours int) *AuthService {
	if expireHours <= 0 {
		expireHours = 72
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, expireHours: expireHours}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *entity.User `json:"user"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, expiresAt, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResponse{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (s *AuthService) Register(req *RegisterRequest) (*entity.User, error) {
	if _, err := s.users.GetByEmail(req.Email); err == nil {
		return nil, fmt.Errorf("email already registered: %s", req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = entity.RoleOperator
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *AuthService) Me(userID string) (*entity.User, error) {
	return s.users.GetByID(userID)
}

func (s *AuthService) ChangePassword(userID, oldPassword, newPassword string) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return fmt.Errorf("current password does not match")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	return s.users.Update(user)
}

func (s *AuthService) issueToken(user *entity.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(s.expireHours) * time.Hour)
	claims := &middleware.JWTClaims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   user.ID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
