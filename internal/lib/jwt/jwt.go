package jwt

import (
	"errors"
	"fmt"
	"time"

	"artiste_site/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidTokenClaims = errors.New("invalid token claims")
)

// Claims - данные пользователя из токена
type Claims struct {
	UserID uuid.UUID
	Email  string
}

func NewToken(user models.User, duration time.Duration, secret string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	now := time.Now()

	claims := token.Claims.(jwt.MapClaims)
	claims["uid"] = user.ID.String()
	claims["email"] = user.Email
	claims["jti"] = uuid.NewString()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(duration).Unix()

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Parse проверяет подпись и срок действия токена
func Parse(tokenString, secret string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return FromToken(token)
}

// FromToken extracts claims from a token already validated by the echo-jwt middleware.
func FromToken(token *jwt.Token) (Claims, error) {
	if token == nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidTokenClaims
	}

	uid, ok := claims["uid"].(string)
	if !ok {
		return Claims{}, ErrInvalidTokenClaims
	}

	id, err := uuid.Parse(uid)
	if err != nil {
		return Claims{}, ErrInvalidTokenClaims
	}

	email, _ := claims["email"].(string)

	return Claims{UserID: id, Email: email}, nil
}
