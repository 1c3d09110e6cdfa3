package api

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	router, _, authService := setupTestRouter(t)
	userID, token := registerTestUser(t, authService, "Maria", "maria@example.com")

	req := httptest.NewRequest("GET", "/api/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, userID, body["id"])
	assert.Equal(t, "maria@example.com", body["email"])
}

func TestUpdateProfile(t *testing.T) {
	router, _, authService := setupTestRouter(t)
	_, token := registerTestUser(t, authService, "Maria", "maria@example.com")

	payload := map[string]interface{}{"bio": "Apaixonada por doces"}
	req := httptest.NewRequest("PUT", "/api/v1/profile", jsonBody(t, payload))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Apaixonada por doces", body["bio"])
	assert.Equal(t, "Maria", body["name"])
}

func TestGetMyRecipes(t *testing.T) {
	router, _, authService := setupTestRouter(t)
	_, mariaToken := registerTestUser(t, authService, "Maria", "maria@example.com")
	_, joaoToken := registerTestUser(t, authService, "João", "joao@example.com")

	req := httptest.NewRequest("POST", "/api/v1/recipes", jsonBody(t, validRecipePayload()))
	req.Header.Set("Authorization", "Bearer "+mariaToken)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 201, w.Code)

	req = httptest.NewRequest("GET", "/api/v1/profile/recipes", nil)
	req.Header.Set("Authorization", "Bearer "+mariaToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)
	assert.Len(t, decodeBody(t, w)["recipes"], 1)

	req = httptest.NewRequest("GET", "/api/v1/profile/recipes", nil)
	req.Header.Set("Authorization", "Bearer "+joaoToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)
	assert.Len(t, decodeBody(t, w)["recipes"], 0)
}

func TestProfileRequiresAuth(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/api/v1/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
}
