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

type PollService interface {
	Create(req dto.CreatePollRequest) (*dto.PollResponse, error)
	ListActive(userID string) ([]dto.PollResponse, error)
	ListAllWithResults() ([]dto.PollResponse, error)
	CastVote(pollID, userID string, optionIndex int) (*dto.PollResponse, error)
	Delete(pollID string) error
}

type PollServiceImpl struct {
	pollRepo repositories.PollRepository
}

func NewPollService(pollRepo repositories.PollRepository) PollService {
	return &PollServiceImpl{pollRepo: pollRepo}
}

func (s *PollServiceImpl) Create(req dto.CreatePollRequest) (*dto.PollResponse, error) {
	poll := &models.Poll{
		Question: req.Question,
		Options:  req.Options,
		IsActive: true,
		DueDate:  req.DueDate,
	}

	if err := s.pollRepo.Create(poll); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("poll created", "poll_id", poll.ID, "options", len(poll.Options))

	resp := dto.PollResponseFromModel(poll)
	return &resp, nil
}

func (s *PollServiceImpl) ListActive(userID string) ([]dto.PollResponse, error) {
	polls, err := s.pollRepo.FindActive()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.PollResponse, 0, len(polls))
	for i := range polls {
		resp, err := s.projectResults(&polls[i], userID)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *PollServiceImpl) ListAllWithResults() ([]dto.PollResponse, error) {
	polls, err := s.pollRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.PollResponse, 0, len(polls))
	for i := range polls {
		resp, err := s.projectResults(&polls[i], "")
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// CastVote записывает голос, один на пользователя на опрос. Гонку двух
// параллельных голосов решает уникальный индекс (poll_id, user_id):
// предварительная проверка FindVote лишь срезает заведомый дубль без
// попытки вставки.
func (s *PollServiceImpl) CastVote(pollID, userID string, optionIndex int) (*dto.PollResponse, error) {
	poll, err := s.pollRepo.FindByID(pollID)
	if err != nil {
		if errors.Is(err, repositories.ErrPollNotFound) {
			return nil, apperrors.ErrPollNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !poll.IsActive {
		return nil, apperrors.ErrPollNotActive
	}
	if optionIndex < 0 || optionIndex >= len(poll.Options) {
		return nil, apperrors.ValidationError(map[string]string{
			"option_index": fmt.Sprintf("must be between 0 and %d", len(poll.Options)-1),
		})
	}

	if _, err := s.pollRepo.FindVote(pollID, userID); err == nil {
		return nil, apperrors.ErrAlreadyVoted
	} else if !errors.Is(err, repositories.ErrPollVoteNotFound) {
		return nil, apperrors.InternalError(err)
	}

	vote := &models.PollVote{
		PollID:      pollID,
		UserID:      userID,
		OptionIndex: optionIndex,
	}
	if err := s.pollRepo.CreateVote(vote); err != nil {
		if errors.Is(err, repositories.ErrDuplicateVote) {
			return nil, apperrors.ErrAlreadyVoted
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("poll vote cast", "poll_id", pollID, "user_id", userID, "option", optionIndex)

	return s.projectResults(poll, userID)
}

// Delete удаляет опрос вместе со всеми голосами.
func (s *PollServiceImpl) Delete(pollID string) error {
	if err := s.pollRepo.Delete(pollID); err != nil {
		if errors.Is(err, repositories.ErrPollNotFound) {
			return apperrors.ErrPollNotFound
		}
		return apperrors.InternalError(err)
	}
	logger.Info("poll deleted", "poll_id", pollID)
	return nil
}

// projectResults раскладывает счетчики голосов по индексам опций.
// Опции без голосов получают нули, голоса за выпавшие из диапазона
// индексы (опрос могли пересоздать) в проекцию не попадают.
func (s *PollServiceImpl) projectResults(poll *models.Poll, userID string) (*dto.PollResponse, error) {
	counts, err := s.pollRepo.CountVotesByOption(poll.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.PollResponseFromModel(poll)
	for _, c := range counts {
		if c.OptionIndex >= 0 && c.OptionIndex < len(resp.Results) {
			resp.Results[c.OptionIndex] = c.Count
			resp.TotalVotes += c.Count
		}
	}

	if userID != "" {
		vote, err := s.pollRepo.FindVote(poll.ID, userID)
		if err == nil {
			idx := vote.OptionIndex
			resp.UserVotedOption = &idx
		} else if !errors.Is(err, repositories.ErrPollVoteNotFound) {
			return nil, apperrors.InternalError(err)
		}
	}

	return &resp, nil
}
