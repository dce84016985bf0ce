package repositories

import (
	"errors"

	"civicfix_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMarkerNotFound = errors.New("map marker not found")

type MarkerRepository interface {
	Create(marker *models.MapMarker) error
	FindAll() ([]models.MapMarker, error)
	Delete(id string) error
}

type MarkerRepositoryImpl struct {
	db *gorm.DB
}

func NewMarkerRepository(db *gorm.DB) MarkerRepository {
	return &MarkerRepositoryImpl{db: db}
}

func (r *MarkerRepositoryImpl) Create(marker *models.MapMarker) error {
	return r.db.Create(marker).Error
}

func (r *MarkerRepositoryImpl) FindAll() ([]models.MapMarker, error) {
	var markers []models.MapMarker
	err := r.db.Order("created_at DESC").Find(&markers).Error
	return markers, err
}

func (r *MarkerRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.MapMarker{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMarkerNotFound
	}
	return nil
}
