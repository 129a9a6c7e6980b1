package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nurpe/contract-registry/internal/auth"
	"github.com/nurpe/contract-registry/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	users  *repository.UserRepository
	issuer *auth.Issuer
	audit  AuditSink
	log    zerolog.Logger
}

func NewAuthService(users *repository.UserRepository, issuer *auth.Issuer, audit AuditSink, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, issuer: issuer, audit: audit, log: log}
}

// Login checks the password against the stored bcrypt hash and issues
// an access token. Bad username and bad password are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.Username)
	if err != nil {
		return "", err
	}

	if err := s.audit.Append(ctx, user.Username, "logged in"); err != nil {
		s.log.Debug().Err(err).Str("actor", user.Username).Msg("audit write failed")
	}
	return token, nil
}
