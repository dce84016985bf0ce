package dto

import (
	"time"

	"civicfix_backend/internal/models"
)

type CreateRequestRequest struct {
	Type        string  `json:"type" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Latitude    string  `json:"latitude"`
	Longitude   string  `json:"longitude"`
	ImageURL    *string `json:"image_url"`
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type RequestResponse struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user_id"`
	Type        string               `json:"type"`
	Description string               `json:"description"`
	Status      models.RequestStatus `json:"status"`
	Latitude    string               `json:"latitude,omitempty"`
	Longitude   string               `json:"longitude,omitempty"`
	ImageURL    *string              `json:"image_url,omitempty"`
	AuthorName  string               `json:"author_name,omitempty"`
	AuthorEmail string               `json:"author_email,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// TransitionResponse возвращает обновлённую заявку. Поле warning заполняется,
// если смена статуса прошла, но уведомление отправить не удалось.
type TransitionResponse struct {
	Request RequestResponse `json:"request"`
	Warning string          `json:"warning,omitempty"`
}

func RequestResponseFromModel(r *models.Request) RequestResponse {
	resp := RequestResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		Type:        r.Type,
		Description: r.Description,
		Status:      r.Status,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		ImageURL:    r.ImageURL,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.User.ID != "" {
		resp.AuthorName = r.User.FullName
		resp.AuthorEmail = r.User.Email
	}
	return resp
}
