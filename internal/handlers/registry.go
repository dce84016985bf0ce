package handlers

import (
	"civicfix_backend/internal/services"
	"civicfix_backend/internal/validator"
)

// AppHandlers содержит все HTTP-обработчики приложения.
type AppHandlers struct {
	Auth         *AuthHandler
	Request      *RequestHandler
	Notification *NotificationHandler
	Poll         *PollHandler
	Feedback     *FeedbackHandler
	Settings     *SettingsHandler
	Admin        *AdminHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:         NewAuthHandler(base, sc.AuthService),
		Request:      NewRequestHandler(base, sc.RequestService),
		Notification: NewNotificationHandler(base, sc.NotificationService),
		Poll:         NewPollHandler(base, sc.PollService),
		Feedback:     NewFeedbackHandler(base, sc.FeedbackService),
		Settings:     NewSettingsHandler(base, sc.SettingsService),
		Admin:        NewAdminHandler(base, sc.AnalyticsService, sc.MarkerService),
	}
}
