package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("middleware-test-secret")

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, claims jwt.MapClaims, secret []byte) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func validClaims(role string) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":  "dev-client",
		"aud":  "dev-client",
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	}
}

func protectedRouter(role string) *gin.Engine {
	r := gin.New()
	r.GET("/protected", OAuth2Auth(testSecret), RequireRole(role), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"client_id": c.GetString("clientID")})
	})
	return r
}

func doRequest(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOAuth2AuthAcceptsValidToken(t *testing.T) {
	token := signToken(t, validClaims(models.RoleAdmin), testSecret)

	w := doRequest(protectedRouter(models.RoleAdmin), "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "dev-client", body["client_id"])
}

func TestOAuth2AuthRejectsBadTokens(t *testing.T) {
	expired := validClaims(models.RoleAdmin)
	expired["exp"] = time.Now().Add(-time.Minute).Unix()

	noRole := validClaims(models.RoleAdmin)
	delete(noRole, "role")

	noSubject := validClaims(models.RoleAdmin)
	delete(noSubject, "sub")

	noExpiry := validClaims(models.RoleAdmin)
	delete(noExpiry, "exp")

	testCases := []struct {
		name   string
		header string
		code   string
	}{
		{name: "missing header", header: "", code: "authorization_required"},
		{name: "wrong scheme", header: "Basic abc", code: "invalid_request"},
		{name: "empty bearer", header: "Bearer ", code: "invalid_token"},
		{name: "garbage", header: "Bearer not-a-jwt", code: "invalid_token"},
		{name: "wrong secret", header: "Bearer " + signToken(t, validClaims(models.RoleAdmin), []byte("other")), code: "invalid_token"},
		{name: "expired", header: "Bearer " + signToken(t, expired, testSecret), code: "invalid_token"},
		{name: "missing role", header: "Bearer " + signToken(t, noRole, testSecret), code: "invalid_token"},
		{name: "missing subject", header: "Bearer " + signToken(t, noSubject, testSecret), code: "invalid_token"},
		{name: "missing expiry", header: "Bearer " + signToken(t, noExpiry, testSecret), code: "invalid_token"},
		{name: "unknown role", header: "Bearer " + signToken(t, validClaims("owner"), testSecret), code: "invalid_token"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(protectedRouter(models.RoleAdmin), tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Header().Get("WWW-Authenticate"), tt.code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body["error"])
		})
	}
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	token := signToken(t, validClaims(models.RoleUser), testSecret)

	w := doRequest(protectedRouter(models.RoleAdmin), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var body models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, models.ErrForbidden, body.Code)
	assert.Equal(t, models.RoleAdmin, body.Details["required_role"])
}

func TestRequireRoleWithoutAuthentication(t *testing.T) {
	r := gin.New()
	r.GET("/protected", RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	r := gin.New()
	r.Use(RequestLogger(logger))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString("requestID")})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	id := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, id, entry["request_id"])
	assert.Equal(t, "/health", entry["path"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:3000"}))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
