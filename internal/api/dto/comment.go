package dto

import "time"

// CommentReq 发评论/回复
type CommentReq struct {
	ContentRefDTO
	ParentID *uint64 `json:"parent_id" binding:"omitempty,min=1"`
	Content  string  `json:"content" binding:"required,min=1,max=2000"`
	Emoji    string  `json:"emoji" binding:"omitempty,max=20"`
}

// CommentDTO 评论
type CommentDTO struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"user_id"`
	ContentKind string    `json:"content_kind"`
	ObjectID    uint64    `json:"object_id"`
	ParentID    *uint64   `json:"parent_id,omitempty"`
	Content     string    `json:"content"`
	Emoji       string    `json:"emoji,omitempty"`
	ReplyCount  int64     `json:"reply_count"`
	IsPinned    bool      `json:"is_pinned"`
	CreatedAt   time.Time `json:"created_at"`
}
