package services

import (
	"errors"

	"civicfix_backend/internal/logger"
	"civicfix_backend/internal/models"
	"civicfix_backend/internal/repositories"
	"civicfix_backend/internal/services/dto"
	"civicfix_backend/pkg/apperrors"
)

// MarkerService - админские метки на публичной карте (пункты сбора,
// места работ и т.п.), существуют отдельно от заявок.
type MarkerService interface {
	Create(req dto.CreateMarkerRequest) (*dto.MarkerResponse, error)
	List() ([]dto.MarkerResponse, error)
	Delete(markerID string) error
}

type MarkerServiceImpl struct {
	markerRepo repositories.MarkerRepository
}

func NewMarkerService(markerRepo repositories.MarkerRepository) MarkerService {
	return &MarkerServiceImpl{markerRepo: markerRepo}
}

func (s *MarkerServiceImpl) Create(req dto.CreateMarkerRequest) (*dto.MarkerResponse, error) {
	marker := &models.MapMarker{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	if marker.Type == "" {
		marker.Type = "custom"
	}

	if err := s.markerRepo.Create(marker); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("map marker created", "marker_id", marker.ID, "type", marker.Type)

	resp := markerResponseFromModel(marker)
	return &resp, nil
}

func (s *MarkerServiceImpl) List() ([]dto.MarkerResponse, error) {
	markers, err := s.markerRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.MarkerResponse, 0, len(markers))
	for i := range markers {
		out = append(out, markerResponseFromModel(&markers[i]))
	}
	return out, nil
}

func (s *MarkerServiceImpl) Delete(markerID string) error {
	if err := s.markerRepo.Delete(markerID); err != nil {
		if errors.Is(err, repositories.ErrMarkerNotFound) {
			return apperrors.ErrNotFound(err, "marker", "Map marker not found")
		}
		return apperrors.InternalError(err)
	}
	logger.Info("map marker deleted", "marker_id", markerID)
	return nil
}

func markerResponseFromModel(m *models.MapMarker) dto.MarkerResponse {
	return dto.MarkerResponse{
		ID:          m.ID,
		Type:        m.Type,
		Title:       m.Title,
		Description: m.Description,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		CreatedAt:   m.CreatedAt,
	}
}
