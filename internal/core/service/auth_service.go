package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/insurance-system/internal/core/domain"
	"github.com/99minutos/insurance-system/internal/core/ports"
	"github.com/99minutos/insurance-system/internal/metrics"
	"github.com/99minutos/insurance-system/internal/pkg/validation"
)

// AuthService implements registration, login and session handling.
type AuthService struct {
	repo      ports.AuthRepository
	sessions  ports.SessionStore
	audit     ports.AuditLog
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

// NewAuthService wires an AuthService. A tokenTTL of zero issues sessions
// that never expire.
func NewAuthService(
	repo ports.AuthRepository,
	sessions ports.SessionStore,
	audit ports.AuditLog,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL < 0 {
		tokenTTL = 0
	}
	return &AuthService{
		repo:      repo,
		sessions:  sessions,
		audit:     audit,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func (s *AuthService) Register(ctx context.Context, email, password string, role domain.Role) (*domain.User, error) {
	email = normalizeEmail(email)
	if err := validation.Struct(credentials{Email: email, Password: password}); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}
	if !role.Valid() {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, string(role))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.RegistrationsTotal.WithLabelValues("exists").Inc()
		}
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	recordAudit(ctx, s.audit, s.log, email, domain.AuditRegister, "role="+role.String())
	s.log.Info().Str("email", email).Str("role", role.String()).Msg("user registered")
	return created, nil
}

// Login checks the credentials and opens a session. Failed attempts never
// touch the session store.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return domain.Session{}, domain.ErrInvalidCredentials
		}
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	token, err := s.generateToken(user, now)
	if err != nil {
		return domain.Session{}, err
	}

	session := domain.Session{Token: token, Email: user.Email, Role: user.Role, IssuedAt: now}
	if err := s.sessions.Put(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("login: store session: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.ActiveSessions.Inc()
	recordAudit(ctx, s.audit, s.log, user.Email, domain.AuditLogin, "")
	s.log.Info().Str("email", user.Email).Str("role", user.Role.String()).Msg("login succeeded")
	return session, nil
}

// Logout revokes the session behind token. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return nil
		}
		return fmt.Errorf("logout: %w", err)
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	metrics.ActiveSessions.Dec()
	recordAudit(ctx, s.audit, s.log, session.Email, domain.AuditLogout, "")
	s.log.Info().Str("email", session.Email).Msg("logged out")
	return nil
}

// Authenticate resolves a session token to the user that owns it.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrNotAuthenticated
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrNotAuthenticated
	}

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return nil, err
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	user, err := s.repo.FindByEmail(ctx, session.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrNotAuthenticated
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	return user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, email, current, next string) error {
	email = normalizeEmail(email)
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return domain.ErrInvalidCredentials
	}
	if err := validation.Var("password", next, "required,min=6"); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	recordAudit(ctx, s.audit, s.log, email, domain.AuditPasswordChange, "")
	return nil
}

func (s *AuthService) generateToken(user *domain.User, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.Email,
		"role": string(user.Role),
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
	}
	if s.tokenTTL > 0 {
		claims["exp"] = now.Add(s.tokenTTL).Unix()
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
