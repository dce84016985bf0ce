package dto

import (
	"time"

	"civicfix_backend/internal/models"
)

type SubmitFeedbackRequest struct {
	Content string `json:"content" validate:"required"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
}

type CastFeedbackVoteRequest struct {
	Type string `json:"type" validate:"required,oneof=like dislike"`
}

// Status: "added" - новый голос, "updated" - смена like<->dislike,
// "removed" - повторный голос того же типа снял отметку
type FeedbackVoteResponse struct {
	Status   string `json:"status"`
	Likes    int64  `json:"likes"`
	Dislikes int64  `json:"dislikes"`
}

type AdminRespondRequest struct {
	Response string `json:"response" validate:"required"`
}

type FeedbackResponse struct {
	ID            string    `json:"id"`
	Content       string    `json:"content"`
	Rating        int       `json:"rating"`
	AdminResponse *string   `json:"admin_response,omitempty"`
	AuthorName    string    `json:"author_name,omitempty"`
	IsPublic      bool      `json:"is_public"`
	Likes         int64     `json:"likes"`
	Dislikes      int64     `json:"dislikes"`
	UserVote      *string   `json:"user_vote,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FeedbackResponseFromModel(f *models.FeedbackItem) FeedbackResponse {
	resp := FeedbackResponse{
		ID:            f.ID,
		Content:       f.Content,
		Rating:        f.Rating,
		AdminResponse: f.AdminResponse,
		IsPublic:      f.IsPublic,
		CreatedAt:     f.CreatedAt,
	}
	if f.User.ID != "" {
		resp.AuthorName = f.User.FullName
	}
	return resp
}
