package dto

import (
	"time"

	"gorm.io/datatypes"

	"civicfix_backend/internal/models"
)

type NotificationResponse struct {
	ID        string                      `json:"id"`
	Title     string                      `json:"title"`
	Message   string                      `json:"message"`
	Severity  models.NotificationSeverity `json:"severity"`
	Data      datatypes.JSON              `json:"data,omitempty"`
	IsRead    bool                        `json:"is_read"`
	CreatedAt time.Time                   `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int64                  `json:"unread_count"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}

func NotificationResponseFromModel(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Severity:  n.Severity,
		Data:      n.Data,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
