package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/xid"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

type sessionClaims struct {
	Role     string `json:"role"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTManager issues HS256 session tokens whose subject is the user id.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (m *JWTManager) Issue(user *domain.User) (string, *ports.SessionClaims, error) {
	now := m.now().UTC()
	claims := sessionClaims{
		Role:     string(user.Role),
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ID:        xid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, toSessionClaims(&claims), nil
}

func (m *JWTManager) Verify(token string) (*ports.SessionClaims, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	out := toSessionClaims(&claims)
	if out.UserID <= 0 {
		return nil, domain.ErrInvalidToken
	}
	return out, nil
}

func toSessionClaims(c *sessionClaims) *ports.SessionClaims {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		id = 0
	}
	out := &ports.SessionClaims{
		UserID:   id,
		Role:     domain.Role(c.Role),
		Username: c.Username,
		TokenID:  c.ID,
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out
}
