package web

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"

	"gostyles/component"
	"gostyles/config"
	"gostyles/web/api"
)

const (
	sessionIssuer = "gostyles"
	sessionTTL    = 7 * 24 * time.Hour
)

// SessionClaims is the payload of the session cookie.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// Sessions issues signed session cookies and ties them to component sessions.
type Sessions struct {
	secret   []byte
	cookie   string
	maxIdle  time.Duration
	registry *component.Registry
}

func NewSessions(cfg config.Session, registry *component.Registry) (*Sessions, error) {
	if len(cfg.Secret) < config.MinSecretLength {
		return nil, serr.New("session secret must be at least 32 characters")
	}
	return &Sessions{
		secret:   []byte(cfg.Secret),
		cookie:   cfg.Cookie,
		maxIdle:  cfg.MaxIdle,
		registry: registry,
	}, nil
}

// Issue creates a new session id and its signed token.
func (s *Sessions) Issue() (id, token string, err error) {
	id = uuid.NewString()
	now := time.Now()

	claims := SessionClaims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    sessionIssuer,
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
	}}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", "", serr.Wrap(err, "failed to sign session token")
	}
	return id, token, nil
}

// Parse validates token and returns the session id it carries.
func (s *Sessions) Parse(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, serr.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithIssuer(sessionIssuer))
	if err != nil {
		return "", serr.Wrap(err, "failed to parse session token")
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return "", serr.New("invalid session claims")
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", serr.Wrap(err, "invalid session id")
	}
	return claims.Subject, nil
}

// Middleware resolves the session cookie, issuing a fresh one when it is
// missing or does not verify, and stores the id under api.SessionKey.
func (s *Sessions) Middleware(c rweb.Context) error {
	if token, err := c.GetCookie(s.cookie); err == nil && token != "" {
		if id, err := s.Parse(token); err == nil {
			c.Set(api.SessionKey, id)
			return c.Next()
		}
	}

	id, token, err := s.Issue()
	if err != nil {
		logger.LogErr(err, "failed to issue session")
		return c.Next()
	}
	if err := c.SetCookie(s.cookie, token); err != nil {
		logger.LogErr(err, "failed to set session cookie")
	}
	c.Set(api.SessionKey, id)
	return c.Next()
}

// Sweep drops component sessions idle for longer than the configured limit
// until ctx is done.
func (s *Sessions) Sweep(ctx context.Context, every time.Duration) {
	if s.maxIdle <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.registry.Sweep(s.maxIdle); n > 0 {
				logger.Info("Swept idle sessions", "count", n, "remaining", s.registry.Len())
			}
		}
	}
}
