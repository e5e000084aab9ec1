package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vendio/internal/domain/entity"
)

type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTClient mints and verifies the HS256 session tokens handed out by
// the mock login. Tokens carry identity only; the session registry is
// the source of truth for whether a session is still alive.
type JWTClient struct {
	secret []byte
	expiry time.Duration
}

func NewJWTClient(secret string, expirySeconds int64) *JWTClient {
	return &JWTClient{
		secret: []byte(secret),
		expiry: time.Duration(expirySeconds) * time.Second,
	}
}

func (c *JWTClient) CreateToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Name: user.Name,
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

func (c *JWTClient) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
