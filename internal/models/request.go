package models

// RequestStatus - статус заявки жителя
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "Pending"
	RequestStatusInProgress RequestStatus = "In Progress"
	RequestStatusResolved   RequestStatus = "Resolved"
	RequestStatusCompleted  RequestStatus = "Completed"
	RequestStatusRejected   RequestStatus = "Rejected"
)

// IsValid проверяет принадлежность статуса фиксированному набору.
// Переходы между статусами намеренно не ограничены: админ может
// исправить любую заявку в любую сторону.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusInProgress,
		RequestStatusResolved, RequestStatusCompleted, RequestStatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminalSuccess - закрытые со знаком успеха статусы; уведомление
// о таком переходе получает severity "success"
func (s RequestStatus) IsTerminalSuccess() bool {
	return s == RequestStatusResolved || s == RequestStatusCompleted
}

// Request - заявка жителя на коммунальную услугу (яма, мусор и т.д.)
type Request struct {
	BaseModel
	UserID      string        `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        string        `gorm:"size:100;not null" json:"type"`
	Description string        `gorm:"type:text;not null" json:"description"`
	Status      RequestStatus `gorm:"type:varchar(50);not null;default:'Pending'" json:"status"`
	// Координаты храним строками, чтобы не терять точность на float
	Latitude  string  `gorm:"type:text;not null" json:"latitude"`
	Longitude string  `gorm:"type:text;not null" json:"longitude"`
	ImageURL  *string `json:"image_url"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Request) TableName() string { return "requests" }
