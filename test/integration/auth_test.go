package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"civicfix_backend/internal/models"
	"civicfix_backend/test/helpers"
)

// TestAuth_RegisterAndLogin - E2E "золотой путь" регистрации жителя
func TestAuth_RegisterAndLogin(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	// 1. Регистрация
	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]string{
		"full_name": "Aizhan Serikova",
		"email":     "aizhan@example.com",
		"password":  "secret123",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)

	var registerResp struct {
		AccessToken string `json:"access_token"`
		User        struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	assert.NoError(t, json.Unmarshal([]byte(body), &registerResp))
	assert.NotEmpty(t, registerResp.AccessToken)
	assert.Equal(t, "resident", registerResp.User.Role, "Новый пользователь всегда resident")

	// 2. Повторная регистрация с тем же email - 409
	res, _ = ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]string{
		"full_name": "Another Person",
		"email":     "aizhan@example.com",
		"password":  "secret456",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	// 3. Логин с верным паролем
	res, body = ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]string{
		"email":    "aizhan@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	// 4. Логин с неверным паролем - 401
	res, _ = ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]string{
		"email":    "aizhan@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestAuth_WeakPassword(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]string{
		"full_name": "Short Password",
		"email":     "short@example.com",
		"password":  "123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestAuth_Me(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, user := helpers.CreateAndLoginUser(t, ts, "Resident One", "resident1@example.com", "secret123", models.UserRoleResident)

	res, body := ts.SendRequest(t, "GET", "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var me struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	assert.NoError(t, json.Unmarshal([]byte(body), &me))
	assert.Equal(t, user.ID, me.ID)
	assert.Equal(t, "resident1@example.com", me.Email)

	// Без токена - 401
	res, _ = ts.SendRequest(t, "GET", "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

// TestAuth_MalformedToken - битый токен возвращает 401 с доменным кодом
func TestAuth_MalformedToken(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, body := ts.SendRequest(t, "GET", "/api/v1/auth/me", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "INVALID_TOKEN")
}

// TestAuth_AdminRoutesForbiddenForResidents - житель не может в админку
func TestAuth_AdminRoutesForbiddenForResidents(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, "Resident Two", "resident2@example.com", "secret123", models.UserRoleResident)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/admin/requests", token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, "GET", "/api/v1/admin/settings", token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, "POST", "/api/v1/admin/polls", token, map[string]interface{}{
		"question": "Should residents create polls?",
		"options":  []string{"Yes", "No"},
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
