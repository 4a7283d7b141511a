package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims are the claims carried by access tokens issued at /oauth/token
type AccessClaims struct {
	Role  string `json:"role"`
	Scope string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// OAuth2Auth validates the bearer access token and stores the client id,
// role and scopes in the gin context as "clientID", "userRole" and "scopes".
func OAuth2Auth(jwtSecret []byte) gin.HandlerFunc {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{
			jwt.SigningMethodHS512.Alg(),
			jwt.SigningMethodHS384.Alg(),
			jwt.SigningMethodHS256.Alg(),
		}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	keyFunc := func(*jwt.Token) (interface{}, error) { return jwtSecret, nil }

	return func(c *gin.Context) {
		tokenString, errCode, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			respondWithOAuth2Error(c, errCode, err.Error())
			return
		}

		var claims AccessClaims
		if _, err := parser.ParseWithClaims(tokenString, &claims, keyFunc); err != nil {
			respondWithOAuth2Error(c, "invalid_token", describeTokenError(err))
			return
		}

		if err := claims.validate(); err != nil {
			respondWithOAuth2Error(c, "invalid_token", err.Error())
			return
		}

		c.Set("clientID", claims.Subject)
		c.Set("userRole", claims.Role)
		if claims.Scope != "" {
			c.Set("scopes", claims.Scope)
		}
		c.Next()
	}
}

// bearerToken extracts the token from an RFC 6750 Authorization header
func bearerToken(header string) (string, string, error) {
	if header == "" {
		return "", "authorization_required", errors.New("Missing Authorization header. A valid Bearer token is required.")
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return "", "invalid_request", errors.New("Authorization header must use Bearer scheme. Format: 'Bearer <token>'")
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", "invalid_token", errors.New("Bearer token is empty")
	}
	return token, "", nil
}

// validate checks the claims the API relies on; there are no defaults
func (c *AccessClaims) validate() error {
	if c.Subject == "" {
		return errors.New("token missing required 'sub' claim. This token is not valid for this API")
	}
	switch c.Role {
	case models.RoleAdmin, models.RoleUser:
		return nil
	case "":
		return errors.New("token missing required 'role' claim. Tokens must explicitly specify client roles")
	default:
		return fmt.Errorf("invalid role '%s'. Allowed roles: admin, user", c.Role)
	}
}

func describeTokenError(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token has expired"
	case errors.Is(err, jwt.ErrTokenUsedBeforeIssued), errors.Is(err, jwt.ErrTokenNotValidYet):
		return "token not yet valid"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "token signature is invalid"
	default:
		return fmt.Sprintf("token parsing failed: %v", err)
	}
}

// respondWithOAuth2Error responds with RFC 6750 compliant error format
func respondWithOAuth2Error(c *gin.Context, errorCode, description string) {
	c.Header("WWW-Authenticate", fmt.Sprintf(`Bearer error=%q, error_description=%q`, errorCode, description))
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":             errorCode,
		"error_description": description,
	})
}
