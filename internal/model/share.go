package model

import "time"

// Share 分享记录，追加写，同一用户可多次分享同一内容
type Share struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint64    `gorm:"index:idx_share_user_target;not null" json:"user_id"`
	ContentKind string    `gorm:"type:varchar(20);index:idx_share_user_target;not null" json:"content_kind"`
	ObjectID    uint64    `gorm:"index:idx_share_user_target;not null" json:"object_id"`
	Platform    string    `gorm:"type:varchar(30)" json:"platform"` // wechat/weibo/qq/link...
	CreatedAt   time.Time `json:"created_at"`
}

func (Share) TableName() string {
	return "shares"
}
