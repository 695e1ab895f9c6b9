package model

import "time"

// 审核状态。removed 是落地后下架的扩展状态，不在标准流转里
const (
	ModerationPending   = "pending"
	ModerationApproved  = "approved"
	ModerationRejected  = "rejected"
	ModerationFlagged   = "flagged"
	ModerationReviewing = "reviewing"
	ModerationAppealing = "appealing"
	ModerationRemoved   = "removed"
)

// ContentModeration 审核记录，只追加不修改，最新一条即当前状态
type ContentModeration struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ContentKind      string    `gorm:"type:varchar(20);index:idx_mod_target;not null" json:"content_kind"`
	ObjectID         uint64    `gorm:"index:idx_mod_target;not null" json:"object_id"`
	Status           string    `gorm:"type:varchar(20);index;not null" json:"status"`
	Priority         int       `gorm:"default:0" json:"priority"`
	ModeratorID      uint64    `gorm:"default:0" json:"moderator_id"` // 0 表示系统自动
	Reason           string    `gorm:"type:varchar(500)" json:"reason"`
	AiScore          float64   `gorm:"default:0" json:"ai_score"`
	AiFlags          []string  `gorm:"type:json;serializer:json" json:"ai_flags"`
	UserReportsCount int64     `gorm:"default:0" json:"user_reports_count"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`
}

func (ContentModeration) TableName() string {
	return "content_moderations"
}
