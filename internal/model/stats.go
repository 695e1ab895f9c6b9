package model

import "time"

// LifetimeDate 生命周期统计行的哨兵日期。MySQL 唯一索引对 NULL 不去重，
// 统一用 1970-01-01 占位保证 (content_kind, object_id, stat_date) 唯一约束生效。
var LifetimeDate = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// ContentInteractionStats 内容互动统计，按天一行 + 哨兵日期的生命周期行
type ContentInteractionStats struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ContentKind     string    `gorm:"type:varchar(20);uniqueIndex:idx_stats_target_date;not null" json:"content_kind"`
	ObjectID        uint64    `gorm:"uniqueIndex:idx_stats_target_date;not null" json:"object_id"`
	StatDate        time.Time `gorm:"type:date;uniqueIndex:idx_stats_target_date;not null" json:"stat_date"`
	ViewCount       int64     `gorm:"default:0" json:"view_count"`
	PlayCount       int64     `gorm:"default:0" json:"play_count"`
	CompletionCount int64     `gorm:"default:0" json:"completion_count"`
	LikeCount       int64     `gorm:"default:0" json:"like_count"`
	DislikeCount    int64     `gorm:"default:0" json:"dislike_count"`
	CommentCount    int64     `gorm:"default:0" json:"comment_count"`
	ShareCount      int64     `gorm:"default:0" json:"share_count"`
	FavoriteCount   int64     `gorm:"default:0" json:"favorite_count"`
	TotalPlayTime   int64     `gorm:"default:0" json:"total_play_time"` // 秒
	AvgPlayTime     float64   `gorm:"default:0" json:"avg_play_time"`   // 派生，定时重算
	CompletionRate  float64   `gorm:"default:0" json:"completion_rate"` // 派生，定时重算
	UpdatedAt       time.Time `json:"updated_at"`
}

func (ContentInteractionStats) TableName() string {
	return "content_interaction_stats"
}

// UserBehaviorStats 用户行为统计，按 (user_id, stat_date) 一行
type UserBehaviorStats struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint64    `gorm:"uniqueIndex:idx_user_stats_date;not null" json:"user_id"`
	StatDate      time.Time `gorm:"type:date;uniqueIndex:idx_user_stats_date;not null" json:"stat_date"`
	ViewCount     int64     `gorm:"default:0" json:"view_count"`
	PlayCount     int64     `gorm:"default:0" json:"play_count"`
	LikeCount     int64     `gorm:"default:0" json:"like_count"`
	CommentCount  int64     `gorm:"default:0" json:"comment_count"`
	ShareCount    int64     `gorm:"default:0" json:"share_count"`
	FavoriteCount int64     `gorm:"default:0" json:"favorite_count"`
	TotalPlayTime int64     `gorm:"default:0" json:"total_play_time"` // 秒
	UpdatedAt     time.Time `json:"updated_at"`
}

func (UserBehaviorStats) TableName() string {
	return "user_behavior_stats"
}
