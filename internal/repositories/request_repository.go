package repositories

import (
	"errors"
	"time"

	"civicfix_backend/internal/models"

	"gorm.io/gorm"
)

var ErrRequestNotFound = errors.New("request not found")

// MapPin - минимальная проекция заявки для публичной карты
type MapPin struct {
	ID          string               `json:"id"`
	Type        string               `json:"type"`
	Status      models.RequestStatus `json:"status"`
	Description string               `json:"description"`
	Latitude    string               `json:"latitude"`
	Longitude   string               `json:"longitude"`
	CreatedAt   time.Time            `json:"created_at"`
}

// RequestAnalyticsRow - усеченная строка для админской аналитики
type RequestAnalyticsRow struct {
	ID        string               `json:"id"`
	Type      string               `json:"type"`
	Status    models.RequestStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

type RequestRepository interface {
	Create(request *models.Request) error
	FindByID(id string) (*models.Request, error)
	FindByUser(userID string) ([]models.Request, error)
	FindAllWithAuthors() ([]models.Request, error)
	FindArchive() ([]models.Request, error)
	FindRecentForMap(limit int) ([]MapPin, error)
	FindAllForAnalytics() ([]RequestAnalyticsRow, error)
	UpdateStatus(id string, status models.RequestStatus) (*models.Request, error)
	Delete(id string) error
	CountAll() (int64, error)
	CountByStatus(status models.RequestStatus) (int64, error)
}

type RequestRepositoryImpl struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &RequestRepositoryImpl{db: db}
}

func (r *RequestRepositoryImpl) Create(request *models.Request) error {
	return r.db.Create(request).Error
}

func (r *RequestRepositoryImpl) FindByID(id string) (*models.Request, error) {
	var request models.Request
	if err := r.db.First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *RequestRepositoryImpl) FindByUser(userID string) ([]models.Request, error) {
	var requests []models.Request
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *RequestRepositoryImpl) FindAllWithAuthors() ([]models.Request, error) {
	var requests []models.Request
	err := r.db.Preload("User").
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// FindArchive возвращает заявки, отсортированные по имени жителя,
// затем по дате (для архивного реестра администратора)
func (r *RequestRepositoryImpl) FindArchive() ([]models.Request, error) {
	var requests []models.Request
	err := r.db.Preload("User").
		Joins("JOIN users ON users.id = requests.user_id").
		Order("users.full_name ASC, requests.created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *RequestRepositoryImpl) FindRecentForMap(limit int) ([]MapPin, error) {
	var pins []MapPin
	err := r.db.Model(&models.Request{}).
		Select("id, type, status, description, latitude, longitude, created_at").
		Order("created_at DESC").
		Limit(limit).
		Scan(&pins).Error
	return pins, err
}

func (r *RequestRepositoryImpl) FindAllForAnalytics() ([]RequestAnalyticsRow, error) {
	var rows []RequestAnalyticsRow
	err := r.db.Model(&models.Request{}).
		Select("id, type, status, created_at").
		Order("created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// UpdateStatus меняет статус одной заявки и возвращает обновленную
// строку. updated_at обновляется тем же UPDATE, что и статус.
func (r *RequestRepositoryImpl) UpdateStatus(id string, status models.RequestStatus) (*models.Request, error) {
	result := r.db.Model(&models.Request{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRequestNotFound
	}
	return r.FindByID(id)
}

func (r *RequestRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Request{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Request{}).Count(&count).Error
	return count, err
}

func (r *RequestRepositoryImpl) CountByStatus(status models.RequestStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Request{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
