package security

import (
	"errors"
	"fmt"
	"time"

	"furniture_warehouse/internal/domain/entities"
	"furniture_warehouse/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedClaims = errors.New("token claims are malformed")

type tokenClaims struct {
	UserID   uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 tokens embedding the user identity and verifies them
// against the same secret. now is the clock used for both issuing and
// verification.
type JWTIssuer struct {
	secret  []byte
	expires time.Duration
	now     func() time.Time
}

var _ interfaces.ITokenIssuer = (*JWTIssuer)(nil)

func NewJWTIssuer(secret string, expires time.Duration) *JWTIssuer {
	return NewJWTIssuerWithClock(secret, expires, time.Now)
}

func NewJWTIssuerWithClock(secret string, expires time.Duration, now func() time.Time) *JWTIssuer {
	return &JWTIssuer{secret: []byte(secret), expires: expires, now: now}
}

func (j *JWTIssuer) Issue(c entities.TokenClaims) (string, error) {
	issuedAt := j.now()
	claims := tokenClaims{
		UserID:   c.UserID,
		Username: c.Username,
		Email:    c.Email,
		Role:     string(c.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(c.UserID),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(j.expires)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}

func (j *JWTIssuer) Verify(token string) (entities.TokenClaims, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return entities.TokenClaims{}, err
	}
	if claims.UserID == 0 {
		return entities.TokenClaims{}, ErrMalformedClaims
	}
	return entities.TokenClaims{
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     entities.Role(claims.Role),
	}, nil
}
