package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken — подпись не сходится, структура битая или срок истёк.
var ErrInvalidToken = errors.New("invalid token")

// Claims — стандартные утверждения плюс идентификатор пользователя.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"userId"`
}

// Manager выпускает и проверяет подписанные access-токены.
// Секрет задаётся один раз при старте процесса и дальше не меняется.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue создаёт подписанный HS256-токен с userId внутри.
func (m *Manager) Issue(userID int64) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
		},
		UserID: userID,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Validate проверяет подпись и срок. Хранилище не трогает:
// валидность доказывается только криптографией.
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
