package services

import (
	"civicfix_backend/internal/models"
	"civicfix_backend/internal/repositories"
	"civicfix_backend/internal/services/dto"
	"civicfix_backend/pkg/apperrors"
)

// AnalyticsService собирает сводные цифры для админского дашборда
type AnalyticsService interface {
	Stats() (*dto.AdminStatsResponse, error)
	RequestAnalytics() (*dto.RequestAnalyticsResponse, error)
}

type AnalyticsServiceImpl struct {
	userRepo    repositories.UserRepository
	requestRepo repositories.RequestRepository
}

func NewAnalyticsService(
	userRepo repositories.UserRepository,
	requestRepo repositories.RequestRepository,
) AnalyticsService {
	return &AnalyticsServiceImpl{
		userRepo:    userRepo,
		requestRepo: requestRepo,
	}
}

func (s *AnalyticsServiceImpl) Stats() (*dto.AdminStatsResponse, error) {
	totalUsers, err := s.userRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	totalRequests, err := s.requestRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pending, err := s.requestRepo.CountByStatus(models.RequestStatusPending)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resolved, err := s.requestRepo.CountByStatus(models.RequestStatusResolved)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AdminStatsResponse{
		TotalUsers:       totalUsers,
		TotalRequests:    totalRequests,
		PendingRequests:  pending,
		ResolvedRequests: resolved,
	}, nil
}

func (s *AnalyticsServiceImpl) RequestAnalytics() (*dto.RequestAnalyticsResponse, error) {
	rows, err := s.requestRepo.FindAllForAnalytics()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.RequestAnalyticsResponse{
		ByStatus: make(map[string]int64),
		ByType:   make(map[string]int64),
	}
	for _, row := range rows {
		resp.ByStatus[string(row.Status)]++
		resp.ByType[row.Type]++
	}
	return resp, nil
}
