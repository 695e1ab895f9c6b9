package model

import "time"

// Like 点赞/点踩记录，(user_id, content_kind, object_id) 唯一，重复提交走更新
type Like struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint64    `gorm:"uniqueIndex:idx_like_user_target;not null" json:"user_id"`
	ContentKind string    `gorm:"type:varchar(20);uniqueIndex:idx_like_user_target;not null" json:"content_kind"`
	ObjectID    uint64    `gorm:"uniqueIndex:idx_like_user_target;not null" json:"object_id"`
	IsLike      bool      `gorm:"default:true" json:"is_like"` // true 点赞，false 点踩
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Like) TableName() string {
	return "likes"
}
