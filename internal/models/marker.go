package models

// MapMarker - точка на публичной карте, курируемая администратором
// (пункты сбора, укрытия и т.п.), независимая от заявок жителей
type MapMarker struct {
	BaseModel
	Type        string `gorm:"size:50;default:'custom'" json:"type"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Latitude    string `gorm:"type:text;not null" json:"latitude"`
	Longitude   string `gorm:"type:text;not null" json:"longitude"`
}

func (MapMarker) TableName() string { return "map_markers" }
