package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nestmate/backend/internal/models"
	"github.com/nestmate/backend/internal/types"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserExists         = errors.New("user already exists")
)

const tokenTTL = 24 * time.Hour

// AuthService issues and validates session tokens. Logged-out tokens are
// denylisted in Redis until they would have expired anyway.
type AuthService struct {
	users     *UserService
	redis     *redis.Client
	jwtSecret string
}

func NewAuthService(users *UserService, redisClient *redis.Client, jwtSecret string) *AuthService {
	return &AuthService{
		users:     users,
		redis:     redisClient,
		jwtSecret: jwtSecret,
	}
}

// Register creates the user and immediately issues a session token.
func (s *AuthService) Register(ctx context.Context, input CreateUserInput) (string, *models.User, error) {
	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return "", nil, ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, err
	}

	user, err := s.users.Create(ctx, input)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"jti":     uuid.New().String(),
		"iat":     now.Unix(),
		"exp":     now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken checks signature, expiry and the logout denylist.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := mapClaims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, _ := mapClaims["email"].(string)
	jti, _ := mapClaims["jti"].(string)
	exp, _ := mapClaims["exp"].(float64)

	claims := &types.TokenClaims{
		UserID:    uint(userID),
		Email:     email,
		TokenID:   jti,
		ExpiresAt: time.Unix(int64(exp), 0),
	}

	if s.redis != nil && jti != "" {
		revoked, err := s.redis.Exists(ctx, denylistKey(jti)).Result()
		if err == nil && revoked > 0 {
			return nil, ErrTokenRevoked
		}
	}

	return claims, nil
}

// Logout denylists the token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims *types.TokenClaims) error {
	if s.redis == nil || claims.TokenID == "" {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.redis.Set(ctx, denylistKey(claims.TokenID), "1", ttl).Err()
}

func denylistKey(jti string) string {
	return "session:denylist:" + jti
}
