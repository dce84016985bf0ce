package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicfix_backend/internal/models"
	"civicfix_backend/test/helpers"
)

// TestRequest_Lifecycle - E2E жизненный цикл заявки: создание жителем,
// смена статусов админом, уведомления автору.
func TestRequest_Lifecycle(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	helpers.EnablePublicAlerts(t, ts.DB, true)

	residentToken, _ := helpers.CreateAndLoginUser(t, ts, "Resident", "res@example.com", "secret123", models.UserRoleResident)
	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "Admin", "admin@example.com", "secret123", models.UserRoleAdmin)

	// 1. Житель создает заявку, статус всегда Pending
	res, body := ts.SendRequest(t, "POST", "/api/v1/requests", residentToken, map[string]interface{}{
		"type":        "pothole",
		"description": "Deep pothole near the school",
		"latitude":    "43.238949",
		"longitude":   "76.889709",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, "Pending", created.Status)

	// 2. Заявка видна в списке жителя
	res, body = ts.SendRequest(t, "GET", "/api/v1/requests/my", residentToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, created.ID)

	// 3. Админ переводит в In Progress
	res, body = ts.SendRequest(t, "PATCH", "/api/v1/admin/requests/"+created.ID+"/status", adminToken, map[string]string{
		"status": "In Progress",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var transition struct {
		Request struct {
			Status string `json:"status"`
		} `json:"request"`
		Warning string `json:"warning"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &transition))
	assert.Equal(t, "In Progress", transition.Request.Status)
	assert.Empty(t, transition.Warning)

	// 4. Автору пришло уведомление с severity info
	res, body = ts.SendRequest(t, "GET", "/api/v1/notifications", residentToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var feed struct {
		Notifications []struct {
			Severity string `json:"severity"`
			IsRead   bool   `json:"is_read"`
		} `json:"notifications"`
		UnreadCount int64 `json:"unread_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &feed))
	require.Len(t, feed.Notifications, 1)
	assert.Equal(t, "info", feed.Notifications[0].Severity)
	assert.Equal(t, int64(1), feed.UnreadCount)

	// 5. Перевод в Resolved дает severity success
	res, _ = ts.SendRequest(t, "PATCH", "/api/v1/admin/requests/"+created.ID+"/status", adminToken, map[string]string{
		"status": "Resolved",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, "GET", "/api/v1/notifications", residentToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &feed))
	require.Len(t, feed.Notifications, 2)
	// Лента отсортирована от новых к старым
	assert.Equal(t, "success", feed.Notifications[0].Severity)
	assert.Equal(t, int64(2), feed.UnreadCount)

	// 6. Откат обратно в Pending разрешен: переходы не ограничены
	res, _ = ts.SendRequest(t, "PATCH", "/api/v1/admin/requests/"+created.ID+"/status", adminToken, map[string]string{
		"status": "Pending",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestRequest_InvalidStatus(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	adminToken, admin := helpers.CreateAndLoginUser(t, ts, "Admin", "admin2@example.com", "secret123", models.UserRoleAdmin)
	request := CreateTestRequest(t, ts.DB, admin.ID, "garbage", models.RequestStatusPending)

	res, body := ts.SendRequest(t, "PATCH", "/api/v1/admin/requests/"+request.ID+"/status", adminToken, map[string]string{
		"status": "Vanished",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "INVALID_STATUS")

	// Статус в БД не изменился
	var fresh models.Request
	assert.NoError(t, ts.DB.First(&fresh, "id = ?", request.ID).Error)
	assert.Equal(t, models.RequestStatusPending, fresh.Status)
}

func TestRequest_UpdateStatusNotFound(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "Admin", "admin3@example.com", "secret123", models.UserRoleAdmin)

	res, _ := ts.SendRequest(t, "PATCH", "/api/v1/admin/requests/00000000-0000-0000-0000-000000000000/status", adminToken, map[string]string{
		"status": "Resolved",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestRequest_ValidationFailure(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, "Resident", "res2@example.com", "secret123", models.UserRoleResident)

	// Пустые type и description отбрасываются валидатором
	res, body := ts.SendRequest(t, "POST", "/api/v1/requests", token, map[string]interface{}{
		"type":        "",
		"description": "",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "VALIDATION_FAILED")
}

// TestRequest_PublicMap - карта открыта без авторизации и отдает
// не больше 100 свежих заявок
func TestRequest_PublicMap(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, resident := helpers.CreateAndLoginUser(t, ts, "Resident", "res3@example.com", "secret123", models.UserRoleResident)
	CreateTestRequest(t, ts.DB, resident.ID, "pothole", models.RequestStatusPending)
	CreateTestRequest(t, ts.DB, resident.ID, "lighting", models.RequestStatusInProgress)

	res, body := ts.SendRequest(t, "GET", "/api/v1/requests/map", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var mapResp struct {
		Pins []struct {
			Type      string `json:"type"`
			Latitude  string `json:"latitude"`
			Longitude string `json:"longitude"`
		} `json:"pins"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &mapResp))
	assert.Len(t, mapResp.Pins, 2)
	assert.NotEmpty(t, mapResp.Pins[0].Latitude)
}

func TestRequest_AdminDelete(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	adminToken, admin := helpers.CreateAndLoginUser(t, ts, "Admin", "admin4@example.com", "secret123", models.UserRoleAdmin)
	request := CreateTestRequest(t, ts.DB, admin.ID, "garbage", models.RequestStatusRejected)

	res, _ := ts.SendRequest(t, "DELETE", "/api/v1/admin/requests/"+request.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var count int64
	ts.DB.Model(&models.Request{}).Where("id = ?", request.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	// Повторное удаление - 404
	res, _ = ts.SendRequest(t, "DELETE", "/api/v1/admin/requests/"+request.ID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
