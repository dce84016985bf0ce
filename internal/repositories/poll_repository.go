package repositories

import (
	"errors"

	"civicfix_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPollNotFound     = errors.New("poll not found")
	ErrPollVoteNotFound = errors.New("poll vote not found")
	ErrDuplicateVote    = errors.New("duplicate poll vote")
)

// OptionCount - число голосов за один вариант
type OptionCount struct {
	OptionIndex int
	Count       int64
}

type PollRepository interface {
	Create(poll *models.Poll) error
	FindByID(id string) (*models.Poll, error)
	FindActive() ([]models.Poll, error)
	FindAll() ([]models.Poll, error)
	Delete(id string) error

	CreateVote(vote *models.PollVote) error
	FindVote(pollID, userID string) (*models.PollVote, error)
	CountVotesByOption(pollID string) ([]OptionCount, error)
}

type PollRepositoryImpl struct {
	db *gorm.DB
}

func NewPollRepository(db *gorm.DB) PollRepository {
	return &PollRepositoryImpl{db: db}
}

func (r *PollRepositoryImpl) Create(poll *models.Poll) error {
	return r.db.Create(poll).Error
}

func (r *PollRepositoryImpl) FindByID(id string) (*models.Poll, error) {
	var poll models.Poll
	if err := r.db.First(&poll, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPollNotFound
		}
		return nil, err
	}
	return &poll, nil
}

func (r *PollRepositoryImpl) FindActive() ([]models.Poll, error) {
	var polls []models.Poll
	err := r.db.Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&polls).Error
	return polls, err
}

func (r *PollRepositoryImpl) FindAll() ([]models.Poll, error) {
	var polls []models.Poll
	err := r.db.Order("created_at DESC").Find(&polls).Error
	return polls, err
}

// Delete удаляет опрос вместе с голосами. Голоса удаляем явно первыми,
// в одной транзакции - не полагаемся на каскад в схеме.
func (r *PollRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("poll_id = ?", id).Delete(&models.PollVote{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Poll{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPollNotFound
		}
		return nil
	})
}

// CreateVote - append-only вставка голоса. Нарушение уникального
// индекса (poll_id, user_id) транслируется в ErrDuplicateVote; это
// авторитетная защита от гонки двух одновременных голосов.
func (r *PollRepositoryImpl) CreateVote(vote *models.PollVote) error {
	if err := r.db.Create(vote).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateVote
		}
		return err
	}
	return nil
}

func (r *PollRepositoryImpl) FindVote(pollID, userID string) (*models.PollVote, error) {
	var vote models.PollVote
	err := r.db.Where("poll_id = ? AND user_id = ?", pollID, userID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPollVoteNotFound
		}
		return nil, err
	}
	return &vote, nil
}

func (r *PollRepositoryImpl) CountVotesByOption(pollID string) ([]OptionCount, error) {
	var counts []OptionCount
	err := r.db.Model(&models.PollVote{}).
		Select("option_index, count(*) as count").
		Where("poll_id = ?", pollID).
		Group("option_index").
		Scan(&counts).Error
	return counts, err
}
