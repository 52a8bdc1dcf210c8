package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/infrastructure/auth"
	"github.com/wms/backend/internal/infrastructure/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthTestRouter(cfg AuthConfig, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	handlers := append([]gin.HandlerFunc{Auth(cfg)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		actor, _ := GetActor(c)
		c.JSON(http.StatusOK, gin.H{"user_id": actor.ID.String(), "role": actor.Role.String()})
	})
	router.GET("/protected", handlers...)
	return router
}

func newAuthJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                "unit-test-secret-key-0123456789abcdef",
		AccessTokenExpiration: 15 * time.Minute,
		Issuer:                "wms-backend",
	})
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Error.Code
}

func TestAuth_ValidToken(t *testing.T) {
	jwtService := newAuthJWTService()
	router := newAuthTestRouter(AuthConfig{JWTService: jwtService, Logger: zap.NewNop()})

	userID := uuid.New()
	token, _, err := jwtService.GenerateToken(userID, "Karim", shared.RoleWarehouseKeeper)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, userID.String(), resp["user_id"])
	assert.Equal(t, "warehouse_keeper", resp["role"])
}

func TestAuth_MissingHeader(t *testing.T) {
	router := newAuthTestRouter(AuthConfig{JWTService: newAuthJWTService()})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	router := newAuthTestRouter(AuthConfig{JWTService: newAuthJWTService()})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "ERR_TOKEN_INVALID", errorCode(t, w.Body.Bytes()))
}

func TestAuth_ExpiredToken(t *testing.T) {
	expired := auth.NewJWTService(config.JWTConfig{
		Secret:                "unit-test-secret-key-0123456789abcdef",
		AccessTokenExpiration: -time.Minute,
		Issuer:                "wms-backend",
	})
	router := newAuthTestRouter(AuthConfig{JWTService: newAuthJWTService()})

	token, _, err := expired.GenerateToken(uuid.New(), "Karim", shared.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "ERR_TOKEN_EXPIRED", errorCode(t, w.Body.Bytes()))
}

func TestAuth_RevokedToken(t *testing.T) {
	jwtService := newAuthJWTService()
	blacklist := auth.NewInMemoryTokenBlacklist()
	router := newAuthTestRouter(AuthConfig{JWTService: jwtService, TokenBlacklist: blacklist})

	token, _, err := jwtService.GenerateToken(uuid.New(), "Karim", shared.RoleUser)
	require.NoError(t, err)
	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	require.NoError(t, blacklist.Revoke(context.Background(), claims.ID, time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "ERR_TOKEN_REVOKED", errorCode(t, w.Body.Bytes()))
}

func TestRequireRole(t *testing.T) {
	jwtService := newAuthJWTService()
	router := newAuthTestRouter(
		AuthConfig{JWTService: jwtService},
		RequireRole(shared.RoleManager, shared.RoleWarehouseKeeper),
	)

	issue := func(role shared.Role) string {
		token, _, err := jwtService.GenerateToken(uuid.New(), "x", role)
		require.NoError(t, err)
		return token
	}

	t.Run("allowed role passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+issue(shared.RoleManager))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+issue(shared.RoleUser))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "ERR_FORBIDDEN", errorCode(t, w.Body.Bytes()))
	})
}
