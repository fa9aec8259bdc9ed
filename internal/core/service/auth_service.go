package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// Placeholder text the login form ships with; treated the same as empty input.
const (
	placeholderUsername = "Username"
	placeholderPassword = "Password"
)

// AuthService implements login, logout, and session resolution.
type AuthService struct {
	creds     ports.CredentialRepository
	sessions  ports.SessionRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(creds ports.CredentialRepository, sessions ports.SessionRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 8 * time.Hour
	}
	return &AuthService{
		creds:     creds,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Login validates a (username, secret) pair against the credential store and
// on success registers a new session bound to the stored role.
func (s *AuthService) Login(ctx context.Context, username, secret string) (*domain.Session, string, error) {
	username = strings.TrimSpace(username)
	secret = strings.TrimSpace(secret)

	if username == "" || username == placeholderUsername || secret == "" || secret == placeholderPassword {
		return nil, "", domain.ErrEmptyCredentials
	}

	cred, err := s.creds.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}

	// Plaintext exact-equality by design of the seed credential list.
	if cred.Secret != secret {
		s.log.Warn().Str("username", username).Msg("login rejected: wrong password")
		return nil, "", domain.ErrWrongPassword
	}

	session := domain.NewSession(uuid.NewString(), cred.Username, cred.Role)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, "", err
	}

	token, err := s.generateToken(session)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Str("username", username).Str("role", session.Role.String()).Msg("login succeeded")
	return session, token, nil
}

// Logout unconditionally ends the session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.log.Info().Str("session_id", sessionID).Msg("session ended")
	return nil
}

// Resolve returns the live session for an ID. A stale ID (logged out,
// expired process, never issued) fails with ErrSessionRevoked.
func (s *AuthService) Resolve(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.sessions.Find(ctx, sessionID)
}

func (s *AuthService) generateToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":      session.ID,
		"username": session.Username,
		"role":     session.Role.String(),
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
