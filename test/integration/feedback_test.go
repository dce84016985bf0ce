package integration_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicfix_backend/internal/models"
	"civicfix_backend/internal/repositories"
	"civicfix_backend/test/helpers"
)

type feedbackVoteResp struct {
	Status   string `json:"status"`
	Likes    int64  `json:"likes"`
	Dislikes int64  `json:"dislikes"`
}

// TestFeedback_VoteToggle - переключение реакции: added -> removed ->
// added -> updated.
func TestFeedback_VoteToggle(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, user := helpers.CreateAndLoginUser(t, ts, "Voter", "fbvoter@example.com", "secret123", models.UserRoleResident)
	item := CreateTestFeedback(t, ts.DB, user.ID, "Street cleaning improved a lot", 4)

	votePath := "/api/v1/feedback/" + item.ID + "/vote"
	castVote := func(voteType string) feedbackVoteResp {
		res, body := ts.SendRequest(t, "POST", votePath, token, map[string]string{"type": voteType})
		require.Equal(t, http.StatusOK, res.StatusCode, body)
		var resp feedbackVoteResp
		require.NoError(t, json.Unmarshal([]byte(body), &resp))
		return resp
	}

	// 1. Первый лайк добавляется
	resp := castVote("like")
	assert.Equal(t, "added", resp.Status)
	assert.Equal(t, int64(1), resp.Likes)
	assert.Equal(t, int64(0), resp.Dislikes)

	// 2. Повторный лайк снимает голос
	resp = castVote("like")
	assert.Equal(t, "removed", resp.Status)
	assert.Equal(t, int64(0), resp.Likes)

	// 3. Лайк снова добавляется
	resp = castVote("like")
	assert.Equal(t, "added", resp.Status)
	assert.Equal(t, int64(1), resp.Likes)

	// 4. Дизлайк перезаписывает лайк
	resp = castVote("dislike")
	assert.Equal(t, "updated", resp.Status)
	assert.Equal(t, int64(0), resp.Likes)
	assert.Equal(t, int64(1), resp.Dislikes)
}

// TestFeedback_DuplicateVoteRejectedByDatabase - уникальный индекс
// (feedback_id, user_id) отбивает вторую вставку голоса на уровне БД.
func TestFeedback_DuplicateVoteRejectedByDatabase(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, user := helpers.CreateAndLoginUser(t, ts, "Voter", "fbdupvoter@example.com", "secret123", models.UserRoleResident)
	item := CreateTestFeedback(t, ts.DB, user.ID, "Duplicate reactions", 3)

	repo := repositories.NewFeedbackRepository(ts.DB)

	err := repo.CreateVote(&models.FeedbackVote{FeedbackID: item.ID, UserID: user.ID, Type: models.FeedbackVoteLike})
	require.NoError(t, err)

	err = repo.CreateVote(&models.FeedbackVote{FeedbackID: item.ID, UserID: user.ID, Type: models.FeedbackVoteDislike})
	assert.ErrorIs(t, err, repositories.ErrDuplicateFeedbackVote)

	var votes int64
	ts.DB.Model(&models.FeedbackVote{}).Where("feedback_id = ? AND user_id = ?", item.ID, user.ID).Count(&votes)
	assert.Equal(t, int64(1), votes)
}

// TestFeedback_ConcurrentFirstVotes - параллельные первые лайки одного
// пользователя. Любая раскладка сводится к toggle-сценарию, поэтому
// все запросы отвечают 200, а в БД остается не больше одной строки.
func TestFeedback_ConcurrentFirstVotes(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, user := helpers.CreateAndLoginUser(t, ts, "Racer", "fbracer@example.com", "secret123", models.UserRoleResident)
	item := CreateTestFeedback(t, ts.DB, user.ID, "Race reactions", 4)

	const workers = 6
	statuses := make(chan int, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body := bytes.NewBufferString(`{"type": "like"}`)
			req, err := http.NewRequest("POST", ts.Server.URL+"/api/v1/feedback/"+item.ID+"/vote", body)
			if err != nil {
				statuses <- 0
				return
			}
			req.Header.Set("Authorization", "Bearer "+token)
			req.Header.Set("Content-Type", "application/json")

			res, err := ts.Server.Client().Do(req)
			if err != nil {
				statuses <- 0
				return
			}
			res.Body.Close()
			statuses <- res.StatusCode
		}()
	}
	wg.Wait()
	close(statuses)

	for status := range statuses {
		assert.Equal(t, http.StatusOK, status)
	}

	var votes int64
	ts.DB.Model(&models.FeedbackVote{}).Where("feedback_id = ? AND user_id = ?", item.ID, user.ID).Count(&votes)
	assert.LessOrEqual(t, votes, int64(1))
}

func TestFeedback_VoteValidation(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, user := helpers.CreateAndLoginUser(t, ts, "Voter", "fbvoter2@example.com", "secret123", models.UserRoleResident)
	item := CreateTestFeedback(t, ts.DB, user.ID, "Some feedback", 3)

	// Неизвестный тип голоса - 400
	res, _ := ts.SendRequest(t, "POST", "/api/v1/feedback/"+item.ID+"/vote", token, map[string]string{"type": "love"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Голос по несуществующему отзыву - 404
	res, _ = ts.SendRequest(t, "POST", "/api/v1/feedback/00000000-0000-0000-0000-000000000000/vote", token, map[string]string{"type": "like"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

// TestFeedback_SubmitAndList - подача отзыва и публичная стена
func TestFeedback_SubmitAndList(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, "Happy Resident", "happy@example.com", "secret123", models.UserRoleResident)

	res, body := ts.SendRequest(t, "POST", "/api/v1/feedback", token, map[string]interface{}{
		"content": "New park benches are great",
		"rating":  5,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	// Рейтинг вне диапазона 1..5 - 400
	res, _ = ts.SendRequest(t, "POST", "/api/v1/feedback", token, map[string]interface{}{
		"content": "Bad rating",
		"rating":  9,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Стена читается без токена
	res, body = ts.SendRequest(t, "GET", "/api/v1/feedback", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var wall struct {
		Feedback []struct {
			Content    string  `json:"content"`
			AuthorName string  `json:"author_name"`
			UserVote   *string `json:"user_vote"`
		} `json:"feedback"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &wall))
	require.Len(t, wall.Feedback, 1)
	assert.Equal(t, "Happy Resident", wall.Feedback[0].AuthorName)
	assert.Nil(t, wall.Feedback[0].UserVote)
}

// TestFeedback_AdminFlow - ответ админа и удаление вместе с голосами
func TestFeedback_AdminFlow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "Admin", "fbadmin@example.com", "secret123", models.UserRoleAdmin)
	token, user := helpers.CreateAndLoginUser(t, ts, "Resident", "fbres@example.com", "secret123", models.UserRoleResident)

	item := CreateTestFeedback(t, ts.DB, user.ID, "Please fix the fountain", 2)

	// Ответ админа
	res, body := ts.SendRequest(t, "PATCH", "/api/v1/admin/feedback/"+item.ID+"/response", adminToken, map[string]string{
		"response": "Scheduled for next week",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated struct {
		AdminResponse *string `json:"admin_response"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	require.NotNil(t, updated.AdminResponse)
	assert.Equal(t, "Scheduled for next week", *updated.AdminResponse)

	// Голос жителя, затем удаление отзыва админом
	res, _ = ts.SendRequest(t, "POST", "/api/v1/feedback/"+item.ID+"/vote", token, map[string]string{"type": "like"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, "DELETE", "/api/v1/admin/feedback/"+item.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var votes int64
	ts.DB.Model(&models.FeedbackVote{}).Where("feedback_id = ?", item.ID).Count(&votes)
	assert.Equal(t, int64(0), votes, "Голоса удаляются вместе с отзывом")
}
