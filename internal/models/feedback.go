package models

// FeedbackVoteType - реакция на отзыв
type FeedbackVoteType string

const (
	FeedbackVoteLike    FeedbackVoteType = "like"
	FeedbackVoteDislike FeedbackVoteType = "dislike"
)

func (t FeedbackVoteType) IsValid() bool {
	return t == FeedbackVoteLike || t == FeedbackVoteDislike
}

// FeedbackItem - публичный отзыв жителя о качестве услуг
type FeedbackItem struct {
	BaseModel
	UserID        string  `gorm:"type:uuid;not null;index" json:"user_id"`
	Content       string  `gorm:"type:text;not null" json:"content"`
	Rating        int     `gorm:"check:rating >= 1 AND rating <= 5" json:"rating"`
	AdminResponse *string `gorm:"type:text" json:"admin_response"`
	IsPublic      bool    `gorm:"default:true" json:"is_public"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (FeedbackItem) TableName() string { return "feedback" }

// FeedbackVote - лайк/дизлайк отзыва. Пара (feedback_id, user_id)
// уникальна; повторный голос того же типа снимает его, противоположный
// перезаписывает.
type FeedbackVote struct {
	BaseModel
	FeedbackID string           `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_votes_feedback_user" json:"feedback_id"`
	UserID     string           `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_votes_feedback_user" json:"user_id"`
	Type       FeedbackVoteType `gorm:"type:varchar(10);not null" json:"type"`

	Feedback FeedbackItem `gorm:"foreignKey:FeedbackID;constraint:OnDelete:CASCADE" json:"-"`
}

func (FeedbackVote) TableName() string { return "feedback_votes" }
