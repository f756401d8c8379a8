package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopfront/shopfront-backend/pkg/logger"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("expired session token")
)

// Manager resolves cookies to sessions and writes sessions back to the store.
// The cookie value is an HS256 JWT whose subject is the session ID, signed
// with the configured session secret, so a tampered cookie is rejected before
// the store is ever consulted.
type Manager struct {
	store      Store
	secret     []byte
	cookieName string
	ttl        time.Duration
}

func NewManager(store Store, secret, cookieName string, ttl time.Duration) *Manager {
	return &Manager{
		store:      store,
		secret:     []byte(secret),
		cookieName: cookieName,
		ttl:        ttl,
	}
}

func (m *Manager) CookieName() string {
	return m.cookieName
}

// TTL returns the session lifetime, which doubles as the cookie max age.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// New creates a fresh anonymous session with an empty payload.
func (m *Manager) New() *Session {
	return &Session{
		ID:    uuid.New().String(),
		fresh: true,
	}
}

// Load resolves a cookie value to its stored session. A missing, tampered, or
// expired cookie yields a fresh session rather than an error: visitors always
// get a usable session.
func (m *Manager) Load(ctx context.Context, cookieValue string) *Session {
	if cookieValue == "" {
		return m.New()
	}

	id, err := m.parseToken(cookieValue)
	if err != nil {
		logger.Debug("Rejected session cookie, issuing a new session", map[string]interface{}{
			"error": err.Error(),
		})
		return m.New()
	}

	data, err := m.store.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Error("Failed to load session from store", err, map[string]interface{}{
				"session_id": id,
			})
		}
		return m.New()
	}

	return &Session{ID: id, data: *data}
}

// Save persists the session payload under its ID with the configured TTL.
func (m *Manager) Save(ctx context.Context, s *Session) error {
	return m.store.Save(ctx, s.ID, &s.data, m.ttl)
}

// CookieValue signs the session ID into the cookie token.
func (m *Manager) CookieValue(s *Session) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   s.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) parseToken(value string) (string, error) {
	token, err := jwt.ParseWithClaims(value, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
