package models

import "time"

// SystemSetting - единственная строка глобальных настроек.
// Фиксированный PK гарантирует синглтон на уровне БД.
type SystemSetting struct {
	ID                  int       `gorm:"primaryKey" json:"id"`
	PublicAlertsEnabled bool      `gorm:"default:false" json:"public_alerts_enabled"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SystemSetting) TableName() string { return "system_settings" }

// SystemSettingID - единственный допустимый ID строки настроек
const SystemSettingID = 1
