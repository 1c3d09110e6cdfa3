package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/receitaria/backend/internal/service"
	"github.com/receitaria/backend/internal/testhelpers"
)

// setupTestRouter builds a router with the recipe, auth and profile routes
// over an in-memory database. Rate limiting and uploads stay unwired.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	authService := service.NewAuthService(db, "test-secret")
	recipeService := service.NewRecipeService(db)

	router := gin.New()
	router.Use(gin.Recovery())

	v1 := router.Group("/api/v1")
	NewAuthHandler(authService).RegisterRoutes(v1)
	NewRecipeHandler(recipeService, authService, nil, nil).RegisterRoutes(v1)
	NewProfileHandler(authService, recipeService).RegisterRoutes(v1)

	return router, db, authService
}

// registerTestUser registers a user through the auth service and returns the
// user id with a valid bearer token.
func registerTestUser(t *testing.T, authService *service.AuthService, name, email string) (string, string) {
	t.Helper()

	user, token, err := authService.Register(context.Background(), name, email, "senha123")
	require.NoError(t, err)
	return user.ID, token
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(data)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
