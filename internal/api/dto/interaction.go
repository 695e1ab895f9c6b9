package dto

import "time"

// LikeReq 点赞/点踩
type LikeReq struct {
	ContentRefDTO
	IsLike *bool `json:"is_like" binding:"required"`
}

// UnlikeReq 取消点赞
type UnlikeReq struct {
	ContentRefDTO
}

// LikeStatusDTO 点赞状态
type LikeStatusDTO struct {
	Exists bool `json:"exists"`
	IsLike bool `json:"is_like"`
}

// FavoriteReq 收藏
type FavoriteReq struct {
	ContentRefDTO
	FolderName string   `json:"folder_name" binding:"omitempty,max=100"`
	Tags       []string `json:"tags" binding:"omitempty,max=10"`
	Notes      string   `json:"notes" binding:"omitempty,max=500"`
	IsPrivate  bool     `json:"is_private"`
}

// BatchFavoriteReq 批量收藏
type BatchFavoriteReq struct {
	Items []FavoriteReq `json:"items" binding:"required,min=1,max=50,dive"`
}

// BatchDeleteReq 批量删除（收藏/播放记录）
type BatchDeleteReq struct {
	IDs []uint64 `json:"ids" binding:"required,min=1,max=100"`
}

// BatchResultDTO 批量操作结果
type BatchResultDTO struct {
	Affected int64 `json:"affected"`
}

// ShareReq 分享
type ShareReq struct {
	ContentRefDTO
	Platform string `json:"platform" binding:"omitempty,max=30"`
}

// ReportReq 举报
type ReportReq struct {
	ContentRefDTO
	Reason      string `json:"reason" binding:"required,max=50"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// PlayHistoryReq 播放上报
type PlayHistoryReq struct {
	ContentRefDTO
	PlayDuration  int64  `json:"play_duration" binding:"required,min=0"`
	TotalDuration int64  `json:"total_duration" binding:"omitempty,min=0"`
	PlaySource    string `json:"play_source" binding:"omitempty,max=30"`
	Device        string `json:"device" binding:"omitempty,max=50"`
	Network       string `json:"network" binding:"omitempty,max=20"`
	SessionID     string `json:"session_id" binding:"omitempty,max=64"`
}

// PlayHistoryDTO 播放记录
type PlayHistoryDTO struct {
	ID             uint64    `json:"id"`
	ContentKind    string    `json:"content_kind"`
	ObjectID       uint64    `json:"object_id"`
	PlayDuration   int64     `json:"play_duration"`
	TotalDuration  int64     `json:"total_duration"`
	CompletionRate float64   `json:"completion_rate"`
	PlaySource     string    `json:"play_source"`
	CreatedAt      time.Time `json:"created_at"`
}

// TotalDurationDTO 累计播放时长
type TotalDurationDTO struct {
	TotalDuration int64 `json:"total_duration"`
}

// FavoriteDTO 收藏项
type FavoriteDTO struct {
	ID          uint64    `json:"id"`
	ContentKind string    `json:"content_kind"`
	ObjectID    uint64    `json:"object_id"`
	FolderName  string    `json:"folder_name"`
	Tags        []string  `json:"tags"`
	Notes       string    `json:"notes"`
	IsPrivate   bool      `json:"is_private"`
	CreatedAt   time.Time `json:"created_at"`
}
