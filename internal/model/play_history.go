package model

import "time"

// PlayHistory 播放/阅读历史，追加写
type PlayHistory struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uint64    `gorm:"index:idx_play_user_time;not null" json:"user_id"`
	ContentKind    string    `gorm:"type:varchar(20);index:idx_play_target;not null" json:"content_kind"`
	ObjectID       uint64    `gorm:"index:idx_play_target;not null" json:"object_id"`
	PlayDuration   int64     `gorm:"default:0" json:"play_duration"`  // 秒
	TotalDuration  int64     `gorm:"default:0" json:"total_duration"` // 秒
	CompletionRate float64   `gorm:"default:0" json:"completion_rate"`
	PlaySource     string    `gorm:"type:varchar(30)" json:"play_source"` // feed/search/recommend/profile...
	Device         string    `gorm:"type:varchar(50)" json:"device"`
	Network        string    `gorm:"type:varchar(20)" json:"network"`
	SessionID      string    `gorm:"type:varchar(64);index" json:"session_id"`
	CreatedAt      time.Time `gorm:"index:idx_play_user_time" json:"created_at"`
}

func (PlayHistory) TableName() string {
	return "play_histories"
}
