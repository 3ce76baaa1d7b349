package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/yaparim/marketplace/internal/core/domain"
	"github.com/yaparim/marketplace/internal/core/ports"
)

const (
	tokenIssuer     = "yaparim"
	defaultTokenTTL = 30 * time.Minute
	minPasswordLen  = 6
	maxPasswordLen  = 72 // bcrypt input limit, in bytes
)

// AuthService implements registration, login and bearer token handling.
type AuthService struct {
	repo      ports.UserRepository
	catalog   *domain.Catalog
	jwtSecret []byte
	tokenTTL  time.Duration
	log       zerolog.Logger
	now       func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuthService(repo ports.UserRepository, catalog *domain.Catalog, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		repo:      repo,
		catalog:   catalog,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		log:       log,
		now:       time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if err := s.validateRegistration(in); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	user := &domain.User{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		City:          in.City,
		PreferredRole: domain.Role(in.PreferredRole),
		PasswordHash:  string(hash),
		CreatedAt:     s.now().UTC(),
	}
	// The unique email index is the source of truth; a concurrent
	// registration that slipped past the lookup surfaces here.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	result, err := s.authResult(user)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", user.ID).Str("city", user.City).Msg("user registered")
	return result, nil
}

func (s *AuthService) validateRegistration(in ports.RegisterInput) error {
	if n := utf8.RuneCountInString(in.Name); n < 2 || n > 50 {
		return domain.ErrInvalidInput
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return domain.ErrInvalidInput
	}
	if len(in.Password) < minPasswordLen || len(in.Password) > maxPasswordLen {
		return domain.ErrInvalidInput
	}
	if n := utf8.RuneCountInString(in.Phone); n < 10 || n > 15 {
		return domain.ErrInvalidInput
	}
	if !s.catalog.HasCity(in.City) {
		return domain.ErrInvalidCity
	}
	if !domain.Role(in.PreferredRole).ValidPreferred() {
		return domain.ErrInvalidRole
	}
	return nil
}

// Login authenticates by email and password. Unknown emails and wrong
// passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		s.burnCompare(password)
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return s.authResult(user)
}

// burnCompare spends the same bcrypt work as a real comparison so response
// time does not reveal whether an email is registered.
func (s *AuthService) burnCompare(password string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
}

func (s *AuthService) authResult(user *domain.User) (*ports.AuthResult, error) {
	token, exp, err := s.IssueToken(user.ID, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, ExpiresAt: exp, User: user}, nil
}

// IssueToken signs an HS256 token whose subject is userID.
func (s *AuthService) IssueToken(userID string, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = s.tokenTTL
	}
	now := s.now()
	exp := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// VerifyToken checks signature, algorithm, issuer and expiry and returns the
// subject.
func (s *AuthService) VerifyToken(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}

func (s *AuthService) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.VerifyToken(token)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, userID)
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
