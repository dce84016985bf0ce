package models

import "gorm.io/datatypes"

// NotificationSeverity задает окраску уведомления в ленте
type NotificationSeverity string

const (
	SeverityInfo    NotificationSeverity = "info"
	SeveritySuccess NotificationSeverity = "success"
	SeverityWarning NotificationSeverity = "warning"
	SeverityError   NotificationSeverity = "error"
)

func (s NotificationSeverity) IsValid() bool {
	switch s {
	case SeverityInfo, SeveritySuccess, SeverityWarning, SeverityError:
		return true
	default:
		return false
	}
}

type Notification struct {
	BaseModel
	UserID   string               `gorm:"type:uuid;not null;index" json:"user_id"`
	Title    string               `gorm:"not null" json:"title"`
	Message  string               `json:"message"`
	Severity NotificationSeverity `gorm:"type:varchar(20);not null;default:'info'" json:"severity"`
	Data     datatypes.JSON       `gorm:"type:jsonb" json:"data,omitempty"` // {"request_id": "..."}
	IsRead   bool                 `gorm:"default:false" json:"is_read"`
}

func (Notification) TableName() string { return "notifications" }
