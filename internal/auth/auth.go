// Package auth handles user registration, password verification, and JWT
// session tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/sevigo/approved/internal/core"
)

// ErrInvalidCredentials is returned when a username/password pair or a session
// token cannot be verified. The HTTP layer maps it to a 401.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service implements registration and token-based authentication on top of the
// user store.
type Service struct {
	users  core.UserStore
	secret []byte
	ttl    time.Duration
	logger *slog.Logger
}

// NewService creates an auth service signing tokens with the given HS256 secret.
func NewService(users core.UserStore, secret string, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger,
	}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, username, password string) (*core.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, username, string(hash))
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "username", username)
	return user, nil
}

// Authenticate verifies a username/password pair against the stored hash.
// Unknown users and wrong passwords both come back as ErrInvalidCredentials,
// so callers cannot probe which usernames exist.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*core.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// IssueToken creates a signed JWT whose subject is the username.
func (s *Service) IssueToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates a JWT and loads the user it names.
func (s *Service) VerifyToken(ctx context.Context, tokenString string) (*core.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetUserByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}
