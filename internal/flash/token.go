package flash

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "task-list-web/flash"

// claims is the signed cookie payload
type claims struct {
	Messages []Message `json:"messages"`
	jwt.RegisteredClaims
}

func signMessages(secret []byte, messages []Message, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		Messages: messages,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(secret)
}

func parseMessages(secret []byte, tokenString string) ([]Message, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid flash token")
	}
	return c.Messages, nil
}
