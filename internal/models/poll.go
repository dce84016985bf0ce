package models

import (
	"time"

	"github.com/lib/pq"
)

// Poll - опрос, создаваемый администратором. Список вариантов
// фиксируется при создании и дальше не меняется: подсчет голосов
// опирается на стабильность индексов.
type Poll struct {
	BaseModel
	Question string         `gorm:"type:text;not null" json:"question"`
	Options  pq.StringArray `gorm:"type:text[];not null" json:"options"`
	IsActive bool           `gorm:"default:true" json:"is_active"`
	DueDate  *time.Time     `json:"due_date"`
}

func (Poll) TableName() string { return "polls" }

// PollVote - голос пользователя. Пара (poll_id, user_id) уникальна,
// индекс в БД - финальная защита от двойного голосования.
type PollVote struct {
	BaseModel
	PollID      string `gorm:"type:uuid;not null;uniqueIndex:idx_poll_votes_poll_user" json:"poll_id"`
	UserID      string `gorm:"type:uuid;not null;uniqueIndex:idx_poll_votes_poll_user" json:"user_id"`
	OptionIndex int    `gorm:"not null" json:"option_index"`

	Poll Poll `gorm:"foreignKey:PollID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PollVote) TableName() string { return "poll_votes" }
