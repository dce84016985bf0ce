package services

import (
	"encoding/json"

	"gorm.io/datatypes"

	"civicfix_backend/internal/logger"
	"civicfix_backend/internal/models"
	"civicfix_backend/internal/repositories"
	"civicfix_backend/internal/services/dto"
	"civicfix_backend/pkg/apperrors"
)

// Границы размера ленты уведомлений
const (
	DefaultFeedLimit = 20
	maxFeedLimit     = 100
)

// NotificationService - диспетчер внутрипортальных уведомлений.
// Все операции, кроме пометки прочитанным, проходят через гейт
// публичных оповещений: при выключенном флаге Dispatch молча
// пропускает запись, а лента возвращается пустой.
type NotificationService interface {
	Dispatch(userID, title, message string, severity models.NotificationSeverity, data map[string]interface{}) error
	ListRecent(userID string, limit int) (*dto.NotificationListResponse, error)
	MarkRead(userID, notificationID string) error
	MarkAllRead(userID string) error
	UnreadCount(userID string) (int64, error)
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	settingsService  SettingsService
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	settingsService SettingsService,
) NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		settingsService:  settingsService,
	}
}

func (s *NotificationServiceImpl) Dispatch(
	userID, title, message string,
	severity models.NotificationSeverity,
	data map[string]interface{},
) error {
	enabled, err := s.settingsService.IsPublicAlertsEnabled()
	if err != nil {
		return err
	}
	if !enabled {
		logger.Debug("public alerts disabled, notification skipped", "user_id", userID, "title", title)
		return nil
	}

	if !severity.IsValid() {
		severity = models.SeverityInfo
	}

	notification := &models.Notification{
		UserID:   userID,
		Title:    title,
		Message:  message,
		Severity: severity,
	}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return err
		}
		notification.Data = datatypes.JSON(raw)
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return err
	}

	logger.Info("notification dispatched",
		"user_id", userID, "severity", severity, "title", title)
	return nil
}

func (s *NotificationServiceImpl) ListRecent(userID string, limit int) (*dto.NotificationListResponse, error) {
	if limit <= 0 || limit > maxFeedLimit {
		limit = DefaultFeedLimit
	}

	enabled, err := s.settingsService.IsPublicAlertsEnabled()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	// При выключенных оповещениях лента пустая, даже если в базе
	// остались записи с тех времен, когда флаг был включен
	if !enabled {
		return &dto.NotificationListResponse{
			Notifications: []dto.NotificationResponse{},
		}, nil
	}

	notifications, err := s.notificationRepo.FindRecentByUser(userID, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	unread, err := s.notificationRepo.GetUnreadCount(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.NotificationListResponse{
		Notifications: make([]dto.NotificationResponse, 0, len(notifications)),
		UnreadCount:   unread,
	}
	for i := range notifications {
		resp.Notifications = append(resp.Notifications, dto.NotificationResponseFromModel(&notifications[i]))
	}
	return resp, nil
}

// MarkRead помечает одно уведомление прочитанным. Запрос ограничен
// userID: чужой или несуществующий идентификатор молча игнорируется.
func (s *NotificationServiceImpl) MarkRead(userID, notificationID string) error {
	if err := s.notificationRepo.MarkAsRead(userID, notificationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) MarkAllRead(userID string) error {
	if err := s.notificationRepo.MarkAllAsRead(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// UnreadCount подчиняется тому же гейту, что и лента: при выключенных
// оповещениях счетчик нулевой, иначе бейдж показывал бы уведомления,
// которых пользователь не увидит.
func (s *NotificationServiceImpl) UnreadCount(userID string) (int64, error) {
	enabled, err := s.settingsService.IsPublicAlertsEnabled()
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	if !enabled {
		return 0, nil
	}

	count, err := s.notificationRepo.GetUnreadCount(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}
