package model

import "time"

// UserProfile 用户兴趣画像，interests 为 类目→权重(0~1) 映射
type UserProfile struct {
	ID         uint64             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint64             `gorm:"uniqueIndex;not null" json:"user_id"`
	Interests  map[string]float64 `gorm:"type:json;serializer:json" json:"interests"`
	ActiveDays int                `gorm:"default:0" json:"active_days"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
