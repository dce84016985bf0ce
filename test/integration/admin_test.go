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

// TestAdmin_Stats - сводные цифры дашборда
func TestAdmin_Stats(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	adminToken, admin := helpers.CreateAndLoginUser(t, ts, "Admin", "statadmin@example.com", "secret123", models.UserRoleAdmin)
	_, resident := helpers.CreateAndLoginUser(t, ts, "Resident", "statres@example.com", "secret123", models.UserRoleResident)

	CreateTestRequest(t, ts.DB, resident.ID, "pothole", models.RequestStatusPending)
	CreateTestRequest(t, ts.DB, resident.ID, "garbage", models.RequestStatusPending)
	CreateTestRequest(t, ts.DB, admin.ID, "lighting", models.RequestStatusResolved)

	res, body := ts.SendRequest(t, "GET", "/api/v1/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var stats struct {
		TotalUsers       int64 `json:"total_users"`
		TotalRequests    int64 `json:"total_requests"`
		PendingRequests  int64 `json:"pending_requests"`
		ResolvedRequests int64 `json:"resolved_requests"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &stats))
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(3), stats.TotalRequests)
	assert.Equal(t, int64(2), stats.PendingRequests)
	assert.Equal(t, int64(1), stats.ResolvedRequests)
}

func TestAdmin_RequestAnalytics(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	adminToken, admin := helpers.CreateAndLoginUser(t, ts, "Admin", "anadmin@example.com", "secret123", models.UserRoleAdmin)

	CreateTestRequest(t, ts.DB, admin.ID, "pothole", models.RequestStatusPending)
	CreateTestRequest(t, ts.DB, admin.ID, "pothole", models.RequestStatusResolved)
	CreateTestRequest(t, ts.DB, admin.ID, "garbage", models.RequestStatusPending)

	res, body := ts.SendRequest(t, "GET", "/api/v1/admin/analytics/requests", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var analytics struct {
		ByStatus map[string]int64 `json:"by_status"`
		ByType   map[string]int64 `json:"by_type"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &analytics))
	assert.Equal(t, int64(2), analytics.ByStatus["Pending"])
	assert.Equal(t, int64(1), analytics.ByStatus["Resolved"])
	assert.Equal(t, int64(2), analytics.ByType["pothole"])
	assert.Equal(t, int64(1), analytics.ByType["garbage"])
}

// TestAdmin_Markers - создание и удаление меток, публичный список
func TestAdmin_Markers(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "Admin", "markadmin@example.com", "secret123", models.UserRoleAdmin)

	res, body := ts.SendRequest(t, "POST", "/api/v1/admin/markers", adminToken, map[string]string{
		"title":     "Recycling point",
		"type":      "recycling",
		"latitude":  "43.25",
		"longitude": "76.95",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var marker struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &marker))

	// Список меток открыт всем
	res, body = ts.SendRequest(t, "GET", "/api/v1/markers", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Recycling point")

	res, _ = ts.SendRequest(t, "DELETE", "/api/v1/admin/markers/"+marker.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, "DELETE", "/api/v1/admin/markers/"+marker.ID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

// TestAdmin_Archive - архив отсортирован по имени жителя
func TestAdmin_Archive(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "Admin", "archadmin@example.com", "secret123", models.UserRoleAdmin)
	_, zhanar := helpers.CreateAndLoginUser(t, ts, "Zhanar", "zhanar@example.com", "secret123", models.UserRoleResident)
	_, aliya := helpers.CreateAndLoginUser(t, ts, "Aliya", "aliya@example.com", "secret123", models.UserRoleResident)

	CreateTestRequest(t, ts.DB, zhanar.ID, "pothole", models.RequestStatusResolved)
	CreateTestRequest(t, ts.DB, aliya.ID, "garbage", models.RequestStatusResolved)

	res, body := ts.SendRequest(t, "GET", "/api/v1/admin/requests/archive", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var archive struct {
		Requests []struct {
			AuthorName string `json:"author_name"`
		} `json:"requests"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &archive))
	require.Len(t, archive.Requests, 2)
	assert.Equal(t, "Aliya", archive.Requests[0].AuthorName)
	assert.Equal(t, "Zhanar", archive.Requests[1].AuthorName)
}
