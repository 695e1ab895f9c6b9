package model

import "time"

// Comment 评论，parent_id 为空表示根评论；回复时父评论 reply_count 原子自增
type Comment struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint64    `gorm:"index;not null" json:"user_id"`
	ContentKind string    `gorm:"type:varchar(20);index:idx_comment_target;not null" json:"content_kind"`
	ObjectID    uint64    `gorm:"index:idx_comment_target;not null" json:"object_id"`
	ParentID    *uint64   `gorm:"index" json:"parent_id"`
	Content     string    `gorm:"type:varchar(2000);not null" json:"content"`
	Emoji       string    `gorm:"type:varchar(20)" json:"emoji"`
	ReplyCount  int64     `gorm:"default:0" json:"reply_count"`
	IsPinned    bool      `gorm:"default:false" json:"is_pinned"`
	IsHidden    bool      `gorm:"default:false" json:"is_hidden"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}
