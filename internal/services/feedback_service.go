package services

import (
	"errors"

	"civicfix_backend/internal/logger"
	"civicfix_backend/internal/models"
	"civicfix_backend/internal/repositories"
	"civicfix_backend/internal/services/dto"
	"civicfix_backend/pkg/apperrors"
)

const (
	FeedbackVoteAdded   = "added"
	FeedbackVoteUpdated = "updated"
	FeedbackVoteRemoved = "removed"
)

type FeedbackService interface {
	Submit(userID string, req dto.SubmitFeedbackRequest) (*dto.FeedbackResponse, error)
	ListPublic(userID string) ([]dto.FeedbackResponse, error)
	ListAll() ([]dto.FeedbackResponse, error)
	CastVote(feedbackID, userID string, voteType models.FeedbackVoteType) (*dto.FeedbackVoteResponse, error)
	Respond(feedbackID, response string) (*dto.FeedbackResponse, error)
	Delete(feedbackID string) error
}

type FeedbackServiceImpl struct {
	feedbackRepo repositories.FeedbackRepository
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepository) FeedbackService {
	return &FeedbackServiceImpl{feedbackRepo: feedbackRepo}
}

func (s *FeedbackServiceImpl) Submit(userID string, req dto.SubmitFeedbackRequest) (*dto.FeedbackResponse, error) {
	item := &models.FeedbackItem{
		UserID:   userID,
		Content:  req.Content,
		Rating:   req.Rating,
		IsPublic: true,
	}

	if err := s.feedbackRepo.Create(item); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("feedback submitted", "feedback_id", item.ID, "user_id", userID, "rating", item.Rating)

	resp := dto.FeedbackResponseFromModel(item)
	return &resp, nil
}

func (s *FeedbackServiceImpl) ListPublic(userID string) ([]dto.FeedbackResponse, error) {
	items, err := s.feedbackRepo.FindPublic()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.withTallies(items, userID)
}

func (s *FeedbackServiceImpl) ListAll() ([]dto.FeedbackResponse, error) {
	items, err := s.feedbackRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.withTallies(items, "")
}

// CastVote переключает реакцию пользователя на отзыв:
//   - голоса не было: создается новый ("added")
//   - был противоположный: тип перезаписывается ("updated")
//   - был такой же: голос снимается ("removed")
//
// Гонку двух параллельных первых голосов разрешает уникальный индекс
// (feedback_id, user_id): проигравшая вставка получает дубль и
// повторяет ход уже по существующей строке.
func (s *FeedbackServiceImpl) CastVote(feedbackID, userID string, voteType models.FeedbackVoteType) (*dto.FeedbackVoteResponse, error) {
	if !voteType.IsValid() {
		return nil, apperrors.ValidationError(map[string]string{
			"type": "must be like or dislike",
		})
	}

	if _, err := s.feedbackRepo.FindByID(feedbackID); err != nil {
		if errors.Is(err, repositories.ErrFeedbackNotFound) {
			return nil, apperrors.ErrFeedbackNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	status, err := s.toggleVote(feedbackID, userID, voteType)
	if err != nil {
		return nil, err
	}

	tally, err := s.feedbackRepo.CountVotes(feedbackID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("feedback vote toggled",
		"feedback_id", feedbackID, "user_id", userID, "type", voteType, "status", status)

	return &dto.FeedbackVoteResponse{
		Status:   status,
		Likes:    tally.Likes,
		Dislikes: tally.Dislikes,
	}, nil
}

func (s *FeedbackServiceImpl) toggleVote(feedbackID, userID string, voteType models.FeedbackVoteType) (string, error) {
	existing, err := s.feedbackRepo.FindVote(feedbackID, userID)
	switch {
	case err == nil:
		if existing.Type == voteType {
			if err := s.feedbackRepo.DeleteVote(existing.ID); err != nil {
				return "", apperrors.InternalError(err)
			}
			return FeedbackVoteRemoved, nil
		}
		if err := s.feedbackRepo.UpdateVoteType(existing.ID, voteType); err != nil {
			return "", apperrors.InternalError(err)
		}
		return FeedbackVoteUpdated, nil

	case errors.Is(err, repositories.ErrFeedbackVoteNotFound):
		vote := &models.FeedbackVote{
			FeedbackID: feedbackID,
			UserID:     userID,
			Type:       voteType,
		}
		createErr := s.feedbackRepo.CreateVote(vote)
		if createErr == nil {
			return FeedbackVoteAdded, nil
		}
		// Параллельный запрос успел вставить строку первым:
		// перечитываем и действуем как при существующем голосе
		if errors.Is(createErr, repositories.ErrDuplicateFeedbackVote) {
			return s.toggleVote(feedbackID, userID, voteType)
		}
		return "", apperrors.InternalError(createErr)

	default:
		return "", apperrors.InternalError(err)
	}
}

func (s *FeedbackServiceImpl) Respond(feedbackID, response string) (*dto.FeedbackResponse, error) {
	if err := s.feedbackRepo.UpdateAdminResponse(feedbackID, response); err != nil {
		if errors.Is(err, repositories.ErrFeedbackNotFound) {
			return nil, apperrors.ErrFeedbackNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	item, err := s.feedbackRepo.FindByID(feedbackID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("feedback response saved", "feedback_id", feedbackID)

	resp := dto.FeedbackResponseFromModel(item)
	return &resp, nil
}

// Delete удаляет отзыв вместе с голосами.
func (s *FeedbackServiceImpl) Delete(feedbackID string) error {
	if err := s.feedbackRepo.Delete(feedbackID); err != nil {
		if errors.Is(err, repositories.ErrFeedbackNotFound) {
			return apperrors.ErrFeedbackNotFound
		}
		return apperrors.InternalError(err)
	}
	logger.Info("feedback deleted", "feedback_id", feedbackID)
	return nil
}

func (s *FeedbackServiceImpl) withTallies(items []models.FeedbackItem, userID string) ([]dto.FeedbackResponse, error) {
	out := make([]dto.FeedbackResponse, 0, len(items))
	for i := range items {
		resp := dto.FeedbackResponseFromModel(&items[i])

		tally, err := s.feedbackRepo.CountVotes(items[i].ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp.Likes = tally.Likes
		resp.Dislikes = tally.Dislikes

		if userID != "" {
			vote, err := s.feedbackRepo.FindVote(items[i].ID, userID)
			if err == nil {
				t := string(vote.Type)
				resp.UserVote = &t
			} else if !errors.Is(err, repositories.ErrFeedbackVoteNotFound) {
				return nil, apperrors.InternalError(err)
			}
		}

		out = append(out, resp)
	}
	return out, nil
}
