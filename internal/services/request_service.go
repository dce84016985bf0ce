package services

import (
	"errors"
	"fmt"

	"civicfix_backend/internal/logger"
	"civicfix_backend/internal/models"
	"civicfix_backend/internal/repositories"
	"civicfix_backend/internal/services/dto"
	"civicfix_backend/pkg/apperrors"
)

// Лимит точек для публичной карты заявок
const mapPinLimit = 100

type RequestService interface {
	Create(userID string, req dto.CreateRequestRequest) (*dto.RequestResponse, error)
	ListByOwner(userID string) ([]dto.RequestResponse, error)
	ListAll() ([]dto.RequestResponse, error)
	ListArchive() ([]dto.RequestResponse, error)
	MapPins() ([]repositories.MapPin, error)
	Transition(requestID string, newStatus string) (*dto.TransitionResponse, error)
	Delete(requestID string) error
}

type RequestServiceImpl struct {
	requestRepo         repositories.RequestRepository
	notificationService NotificationService
}

func NewRequestService(
	requestRepo repositories.RequestRepository,
	notificationService NotificationService,
) RequestService {
	return &RequestServiceImpl{
		requestRepo:         requestRepo,
		notificationService: notificationService,
	}
}

func (s *RequestServiceImpl) Create(userID string, req dto.CreateRequestRequest) (*dto.RequestResponse, error) {
	request := &models.Request{
		UserID:      userID,
		Type:        req.Type,
		Description: req.Description,
		Status:      models.RequestStatusPending,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ImageURL:    req.ImageURL,
	}

	if err := s.requestRepo.Create(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("service request created",
		"request_id", request.ID, "user_id", userID, "type", request.Type)

	resp := dto.RequestResponseFromModel(request)
	return &resp, nil
}

func (s *RequestServiceImpl) ListByOwner(userID string) ([]dto.RequestResponse, error) {
	requests, err := s.requestRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toRequestResponses(requests), nil
}

func (s *RequestServiceImpl) ListAll() ([]dto.RequestResponse, error) {
	requests, err := s.requestRepo.FindAllWithAuthors()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toRequestResponses(requests), nil
}

// ListArchive отдает заявки, сгруппированные по авторам: сортировка
// по имени жителя, внутри - свежие сверху.
func (s *RequestServiceImpl) ListArchive() ([]dto.RequestResponse, error) {
	requests, err := s.requestRepo.FindArchive()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toRequestResponses(requests), nil
}

func (s *RequestServiceImpl) MapPins() ([]repositories.MapPin, error) {
	pins, err := s.requestRepo.FindRecentForMap(mapPinLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pins, nil
}

// Transition переводит заявку в новый статус и уведомляет автора.
// Переходы намеренно не ограничены: валидна любая пара статусов из
// набора. Сбой отправки уведомления не откатывает смену статуса,
// а возвращается клиенту как warning.
func (s *RequestServiceImpl) Transition(requestID string, newStatus string) (*dto.TransitionResponse, error) {
	status := models.RequestStatus(newStatus)
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus("request",
			fmt.Sprintf("Unknown request status: %q", newStatus))
	}

	request, err := s.requestRepo.UpdateStatus(requestID, status)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("request status updated",
		"request_id", request.ID, "status", status)

	resp := &dto.TransitionResponse{Request: dto.RequestResponseFromModel(request)}

	severity := models.SeverityInfo
	if status.IsTerminalSuccess() {
		severity = models.SeveritySuccess
	}
	dispatchErr := s.notificationService.Dispatch(
		request.UserID,
		"Request status updated",
		fmt.Sprintf("Your %s request is now %s", request.Type, status),
		severity,
		map[string]interface{}{"request_id": request.ID},
	)
	if dispatchErr != nil {
		logger.WithError(dispatchErr).Warn("status updated but notification failed",
			"request_id", request.ID)
		resp.Warning = "status updated, but the notification could not be delivered"
	}

	return resp, nil
}

func (s *RequestServiceImpl) Delete(requestID string) error {
	if err := s.requestRepo.Delete(requestID); err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return apperrors.ErrRequestNotFound
		}
		return apperrors.InternalError(err)
	}
	logger.Info("service request deleted", "request_id", requestID)
	return nil
}

func toRequestResponses(requests []models.Request) []dto.RequestResponse {
	out := make([]dto.RequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, dto.RequestResponseFromModel(&requests[i]))
	}
	return out
}
