package dto

import "time"

// ModerationReq 提交审核记录
type ModerationReq struct {
	ContentRefDTO
	Status   string   `json:"status" binding:"required,oneof=pending approved rejected flagged reviewing appealing removed"`
	Priority int      `json:"priority" binding:"omitempty,min=0,max=10"`
	Reason   string   `json:"reason" binding:"omitempty,max=500"`
	AiScore  float64  `json:"ai_score" binding:"omitempty,min=0,max=1"`
	AiFlags  []string `json:"ai_flags" binding:"omitempty,max=20"`
}

// ModerationRecordDTO 审核记录
type ModerationRecordDTO struct {
	ID               uint64    `json:"id"`
	Status           string    `json:"status"`
	Priority         int       `json:"priority"`
	ModeratorID      uint64    `json:"moderator_id"`
	Reason           string    `json:"reason,omitempty"`
	AiScore          float64   `json:"ai_score"`
	UserReportsCount int64     `json:"user_reports_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// ModerationHistoryDTO 审核历史 + 当前状态
type ModerationHistoryDTO struct {
	CurrentStatus string                 `json:"current_status"`
	History       []*ModerationRecordDTO `json:"history"`
}
