package dto

import "time"

type CreateMarkerRequest struct {
	Type        string `json:"type"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Latitude    string `json:"latitude" validate:"required"`
	Longitude   string `json:"longitude" validate:"required"`
}

type MarkerResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Latitude    string    `json:"latitude"`
	Longitude   string    `json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
}

type AdminStatsResponse struct {
	TotalUsers       int64 `json:"total_users"`
	TotalRequests    int64 `json:"total_requests"`
	PendingRequests  int64 `json:"pending_requests"`
	ResolvedRequests int64 `json:"resolved_requests"`
}

// RequestAnalyticsResponse - агрегат по типам и статусам для дашборда
type RequestAnalyticsResponse struct {
	ByStatus map[string]int64 `json:"by_status"`
	ByType   map[string]int64 `json:"by_type"`
}
