package repositories

import (
	"errors"

	"civicfix_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrFeedbackNotFound      = errors.New("feedback not found")
	ErrFeedbackVoteNotFound  = errors.New("feedback vote not found")
	ErrDuplicateFeedbackVote = errors.New("duplicate feedback vote")
)

// VoteTally - итоги реакций по одному отзыву
type VoteTally struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

type FeedbackRepository interface {
	Create(item *models.FeedbackItem) error
	FindByID(id string) (*models.FeedbackItem, error)
	FindPublic() ([]models.FeedbackItem, error)
	FindAll() ([]models.FeedbackItem, error)
	UpdateAdminResponse(id, response string) error
	Delete(id string) error

	CreateVote(vote *models.FeedbackVote) error
	FindVote(feedbackID, userID string) (*models.FeedbackVote, error)
	UpdateVoteType(voteID string, voteType models.FeedbackVoteType) error
	DeleteVote(voteID string) error
	CountVotes(feedbackID string) (*VoteTally, error)
}

type FeedbackRepositoryImpl struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &FeedbackRepositoryImpl{db: db}
}

func (r *FeedbackRepositoryImpl) Create(item *models.FeedbackItem) error {
	return r.db.Create(item).Error
}

func (r *FeedbackRepositoryImpl) FindByID(id string) (*models.FeedbackItem, error) {
	var item models.FeedbackItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *FeedbackRepositoryImpl) FindPublic() ([]models.FeedbackItem, error) {
	var items []models.FeedbackItem
	err := r.db.Preload("User").
		Where("is_public = ?", true).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *FeedbackRepositoryImpl) FindAll() ([]models.FeedbackItem, error) {
	var items []models.FeedbackItem
	err := r.db.Preload("User").
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *FeedbackRepositoryImpl) UpdateAdminResponse(id, response string) error {
	result := r.db.Model(&models.FeedbackItem{}).
		Where("id = ?", id).
		Update("admin_response", response)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFeedbackNotFound
	}
	return nil
}

func (r *FeedbackRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("feedback_id = ?", id).Delete(&models.FeedbackVote{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.FeedbackItem{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrFeedbackNotFound
		}
		return nil
	})
}

// CreateVote вставляет реакцию. Конфликт по (feedback_id, user_id)
// отдаем наверх как ErrDuplicateFeedbackVote - сервис решает, что
// с ним делать (повторная попытка уже как update).
func (r *FeedbackRepositoryImpl) CreateVote(vote *models.FeedbackVote) error {
	if err := r.db.Create(vote).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateFeedbackVote
		}
		return err
	}
	return nil
}

func (r *FeedbackRepositoryImpl) FindVote(feedbackID, userID string) (*models.FeedbackVote, error) {
	var vote models.FeedbackVote
	err := r.db.Where("feedback_id = ? AND user_id = ?", feedbackID, userID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackVoteNotFound
		}
		return nil, err
	}
	return &vote, nil
}

func (r *FeedbackRepositoryImpl) UpdateVoteType(voteID string, voteType models.FeedbackVoteType) error {
	return r.db.Model(&models.FeedbackVote{}).
		Where("id = ?", voteID).
		Update("type", voteType).Error
}

func (r *FeedbackRepositoryImpl) DeleteVote(voteID string) error {
	return r.db.Delete(&models.FeedbackVote{}, "id = ?", voteID).Error
}

func (r *FeedbackRepositoryImpl) CountVotes(feedbackID string) (*VoteTally, error) {
	tally := &VoteTally{}

	err := r.db.Model(&models.FeedbackVote{}).
		Where("feedback_id = ? AND type = ?", feedbackID, models.FeedbackVoteLike).
		Count(&tally.Likes).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.FeedbackVote{}).
		Where("feedback_id = ? AND type = ?", feedbackID, models.FeedbackVoteDislike).
		Count(&tally.Dislikes).Error
	if err != nil {
		return nil, err
	}

	return tally, nil
}
