package model

import "time"

// 话题走势类型
const (
	TrendBreaking   = "breaking"
	TrendRising     = "rising"
	TrendHot        = "hot"
	TrendPersistent = "persistent"
)

// TrendingTopic 热点话题，engagement/velocity 由定时任务确定性重算
type TrendingTopic struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Keyword           string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"keyword"`
	TrendType         string    `gorm:"type:varchar(20);index;default:rising" json:"trend_type"` // breaking/rising/hot/persistent
	MentionCount      int64     `gorm:"default:0" json:"mention_count"`
	SearchCount       int64     `gorm:"default:0" json:"search_count"`
	RelatedNewsCount  int64     `gorm:"default:0" json:"related_news_count"`
	PriorMentionCount int64     `gorm:"default:0" json:"prior_mention_count"` // 上一轮快照，速度计算基准
	EngagementScore   float64   `gorm:"index;default:0" json:"engagement_score"`
	VelocityScore     float64   `gorm:"default:0" json:"velocity_score"`
	LowVelocityCycles int       `gorm:"default:0" json:"low_velocity_cycles"`
	IsActive          bool      `gorm:"index;default:true" json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (TrendingTopic) TableName() string {
	return "trending_topics"
}
