package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/yaparim/marketplace/internal/core/domain"
	"github.com/yaparim/marketplace/internal/core/ports"
)

const testSecret = "secret"

func newAuthSvc(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, domain.DefaultCatalog(), testSecret, time.Hour, discardLogger)
}

func registerInput(email string) ports.RegisterInput {
	return ports.RegisterInput{
		Name:          "Ayşe Yılmaz",
		Email:         email,
		Password:      "pass123",
		Phone:         "05551234567",
		City:          "Ankara",
		PreferredRole: "poster",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo)

	res, err := svc.Register(context.Background(), registerInput("  Alice@Example.com "))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	user := res.User
	if user.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Rating != 0 || user.TotalTasks != 0 {
		t.Fatalf("expected zero rating and task count, got %v / %d", user.Rating, user.TotalTasks)
	}
	if user.PreferredRole != domain.RolePoster {
		t.Fatalf("unexpected role: %s", user.PreferredRole)
	}

	subject, err := svc.VerifyToken(res.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if subject != user.ID {
		t.Fatalf("expected subject %q, got %q", user.ID, subject)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo())

	cases := []struct {
		name   string
		mutate func(*ports.RegisterInput)
		want   error
	}{
		{"unknown city", func(in *ports.RegisterInput) { in.City = "Paris" }, domain.ErrInvalidCity},
		{"bad role", func(in *ports.RegisterInput) { in.PreferredRole = "admin" }, domain.ErrInvalidRole},
		{"short password", func(in *ports.RegisterInput) { in.Password = "12345" }, domain.ErrInvalidInput},
		{"password over bcrypt limit", func(in *ports.RegisterInput) { in.Password = strings.Repeat("a", 80) }, domain.ErrInvalidInput},
		{"short name", func(in *ports.RegisterInput) { in.Name = "A" }, domain.ErrInvalidInput},
		{"bad email", func(in *ports.RegisterInput) { in.Email = "not-an-email" }, domain.ErrInvalidInput},
		{"short phone", func(in *ports.RegisterInput) { in.Phone = "123" }, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		in := registerInput("v@example.com")
		tc.mutate(&in)
		_, err := svc.Register(context.Background(), in)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("%s: expected a validation error, got %v", tc.name, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo)

	if _, err := svc.Register(context.Background(), registerInput("bob@example.com")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), registerInput("BOB@example.com")); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one stored user, got %d", len(repo.users))
	}
}

func TestAuthService_Register_StoreLevelConflict(t *testing.T) {
	repo := newStubUserRepo()
	repo.createErr = domain.ErrEmailTaken // lookup misses, unique index fires
	svc := newAuthSvc(repo)

	if _, err := svc.Register(context.Background(), registerInput("race@example.com")); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAuthService_Register_LookupError(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = errors.New("mongo unavailable")
	svc := newAuthSvc(repo)

	_, err := svc.Register(context.Background(), registerInput("x@example.com"))
	if err == nil || errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected infrastructure error, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo)

	reg, err := svc.Register(context.Background(), registerInput("carol@example.com"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	res, err := svc.Login(context.Background(), "Carol@example.com", "pass123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.User.ID != reg.User.ID {
		t.Fatalf("unexpected user: %+v", res.User)
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(res.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Subject != reg.User.ID {
		t.Fatalf("expected subject %s, got %s", reg.User.ID, claims.Subject)
	}
	if claims.ExpiresAt == nil {
		t.Fatalf("expected an expiry claim")
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo())

	_, _ = svc.Register(context.Background(), registerInput("dave@example.com"))
	if _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailLooksLikeBadPassword(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo())

	if _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_DefaultTTL(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), domain.DefaultCatalog(), testSecret, 0, discardLogger)
	fixed := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	_, exp, err := svc.IssueToken("user-1", 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !exp.Equal(fixed.Add(30 * time.Minute)) {
		t.Fatalf("expected 30 minute expiry, got %v", exp)
	}
}

func TestAuthService_VerifyToken_Expired(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo())
	issuedAt := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issuedAt }

	token, _, err := svc.IssueToken("user-1", time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.VerifyToken(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestAuthService_VerifyToken_Rejects(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo())
	valid, _, err := svc.IssueToken("user-1", time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	foreign := NewAuthService(newStubUserRepo(), domain.DefaultCatalog(), "other-secret", time.Hour, discardLogger)
	foreignToken, _, _ := foreign.IssueToken("user-1", time.Minute)

	hs512, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "user-1",
		Issuer:    tokenIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte(testSecret))

	noSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte(testSecret))

	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "user-1",
		Issuer:  tokenIssuer,
	}).SignedString([]byte(testSecret))

	cases := map[string]string{
		"tampered":     tamperSubject(valid),
		"wrong secret": foreignToken,
		"wrong alg":    hs512,
		"no subject":   noSubject,
		"no expiry":    noExpiry,
		"garbage":      "not-a-token",
		"empty":        "",
	}
	for name, token := range cases {
		if _, err := svc.VerifyToken(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}

// tamperSubject swaps the payload for one naming another subject while
// keeping the original signature.
func tamperSubject(token string) string {
	parts := strings.Split(token, ".")
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"someone-else","iss":"yaparim","exp":9999999999}`))
	return parts[0] + "." + payload + "." + parts[2]
}

func TestAuthService_ResolveToken(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo)

	reg, err := svc.Register(context.Background(), registerInput("erin@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := svc.ResolveToken(context.Background(), reg.Token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if user.ID != reg.User.ID || user.Name != reg.User.Name {
		t.Fatalf("resolved wrong user: %+v", user)
	}

	delete(repo.users, reg.User.ID)
	if _, err := svc.ResolveToken(context.Background(), reg.Token); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for vanished subject, got %v", err)
	}
}
