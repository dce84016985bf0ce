package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	RequestService      RequestService
	NotificationService NotificationService
	PollService         PollService
	FeedbackService     FeedbackService
	SettingsService     SettingsService
	MarkerService       MarkerService
	AnalyticsService    AnalyticsService
}
