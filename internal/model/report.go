package model

import "time"

// Report 举报记录，追加写，24h 去重靠 redis 锁
type Report struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint64    `gorm:"index:idx_report_user_target;not null" json:"user_id"`
	ContentKind string    `gorm:"type:varchar(20);index:idx_report_user_target;not null" json:"content_kind"`
	ObjectID    uint64    `gorm:"index:idx_report_user_target;not null" json:"object_id"`
	Reason      string    `gorm:"type:varchar(50);not null" json:"reason"`
	Description string    `gorm:"type:varchar(500)" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Report) TableName() string {
	return "reports"
}
