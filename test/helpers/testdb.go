package helpers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"civicfix_backend/internal/models"
)

// CreateUser создает пользователя напрямую в БД, хешируя пароль.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User, rawPassword string) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	require.NoError(t, err, "Не удалось хешировать пароль")
	user.PasswordHash = string(hashed)

	if user.Role == "" {
		user.Role = models.UserRoleResident
	}

	require.NoError(t, db.Create(user).Error, "Не удалось создать пользователя %s", user.Email)
}

// CreateAndLoginUser создает пользователя и логинит его через API.
// Возвращает токен и самого пользователя.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		FullName: name,
		Email:    email,
		Role:     role,
	}
	CreateUser(t, ts.DB, user, password)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Логин должен проходить: %s", body)

	var loginResp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResp))
	require.NotEmpty(t, loginResp.AccessToken)

	return loginResp.AccessToken, user
}

// EnablePublicAlerts включает гейт публичных оповещений напрямую в БД.
func EnablePublicAlerts(t *testing.T, db *gorm.DB, enabled bool) {
	setting := models.SystemSetting{ID: models.SystemSettingID, PublicAlertsEnabled: enabled}
	err := db.Save(&setting).Error
	require.NoError(t, err, "Не удалось обновить настройки")
}
