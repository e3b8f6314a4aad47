package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenIsInvalid = errors.New("токен недействителен")
	ErrTokenIsExpired = errors.New("токен истёк")
)

const tokenIssuer = "valerius-admin"

// JWTService выпускает и проверяет токены сессий админ-панели.
type JWTService struct {
	authSecretKey string
	ttl           time.Duration
}

func NewJWTService(authSecretKey string, ttl time.Duration) *JWTService {
	return &JWTService{authSecretKey: authSecretKey, ttl: ttl}
}

// TTL время жизни выпускаемых токенов.
func (j *JWTService) TTL() time.Duration {
	return j.ttl
}

// GenerateJWT подписывает токен HS256 с subject в поле sub.
func (j *JWTService) GenerateJWT(subject string) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
	})

	tokenString, err := token.SignedString([]byte(j.authSecretKey))
	if err != nil {
		return "", fmt.Errorf("error while generating token: %w", err)
	}

	return tokenString, nil
}

func (j *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	parsedToken, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(j.authSecretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenIsExpired
		}
		return nil, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}

	if !parsedToken.Valid {
		return nil, ErrTokenIsInvalid
	}

	return parsedToken, nil
}
