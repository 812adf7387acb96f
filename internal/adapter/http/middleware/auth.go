package middleware

import (
	"furniture_warehouse/internal/domain/entities"
	"furniture_warehouse/internal/usecase"
	"furniture_warehouse/pkg"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const claimsKey = "auth.claims"

var (
	errTokenRequired = pkg.NewDomainErrorSimple("TOKEN_REQUIRED", "access token required", http.StatusUnauthorized)
	errTokenInvalid  = pkg.NewDomainErrorSimple("TOKEN_INVALID", "invalid or expired token", http.StatusForbidden)
)

// TokenVerifier turns a bearer token into the identity it was issued for.
type TokenVerifier interface {
	VerifyToken(token string) (entities.TokenClaims, error)
}

// RequireAuth rejects requests without a valid bearer token. On success the
// claims are stored on the gin context and the username on the request
// context, where the use cases read it as the acting user.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errTokenRequired.HTTPStatus, errTokenRequired.ToHTTPError())
			return
		}

		claims, err := verifier.VerifyToken(token)
		if err != nil {
			log.Printf("[auth][middleware] token rejected path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errTokenInvalid.HTTPStatus, errTokenInvalid.ToHTTPError())
			return
		}

		c.Set(claimsKey, claims)
		c.Request = c.Request.WithContext(usecase.WithActor(c.Request.Context(), claims.Username))
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok || claims.Role != entities.RoleAdmin {
			appErr := pkg.FromError(usecase.ErrAdminRequired)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

// ClaimsFrom returns the identity stored by RequireAuth.
func ClaimsFrom(c *gin.Context) (entities.TokenClaims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return entities.TokenClaims{}, false
	}
	claims, ok := v.(entities.TokenClaims)
	return claims, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
