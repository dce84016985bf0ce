package dto

import (
	"time"

	"civicfix_backend/internal/models"
)

type CreatePollRequest struct {
	Question string     `json:"question" validate:"required"`
	Options  []string   `json:"options" validate:"required,min=2,dive,required"`
	DueDate  *time.Time `json:"due_date"`
}

// OptionIndex - указатель, чтобы валидатор не отбрасывал нулевой индекс
type CastPollVoteRequest struct {
	OptionIndex *int `json:"option_index" validate:"required,gte=0"`
}

type PollResponse struct {
	ID        string     `json:"id"`
	Question  string     `json:"question"`
	Options   []string   `json:"options"`
	IsActive  bool       `json:"is_active"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`

	// Results спроецированы на options: results[i] - число голосов за options[i]
	Results    []int64 `json:"results"`
	TotalVotes int64   `json:"total_votes"`
	// UserVotedOption nil, если пользователь ещё не голосовал
	UserVotedOption *int `json:"user_voted_option,omitempty"`
}

func PollResponseFromModel(p *models.Poll) PollResponse {
	return PollResponse{
		ID:        p.ID,
		Question:  p.Question,
		Options:   p.Options,
		IsActive:  p.IsActive,
		DueDate:   p.DueDate,
		CreatedAt: p.CreatedAt,
		Results:   make([]int64, len(p.Options)),
	}
}
