package dto

import "time"

// RecommendQuery 个性化推荐请求
type RecommendQuery struct {
	ListType string `form:"list_type,default=feed" binding:"omitempty,max=30"`
	Count    int    `form:"count,default=10" binding:"omitempty,min=1,max=50"`
}

// RecommendItemDTO 推荐项
type RecommendItemDTO struct {
	ContentKind    string   `json:"content_kind"`
	ObjectID       uint64   `json:"object_id"`
	AlgorithmType  string   `json:"algorithm_type"`
	Score          float64  `json:"score"`
	Reasons        []string `json:"reasons"`
	PositionInList int      `json:"position_in_list"`
	SessionID      string   `json:"session_id"`
}

// OutcomeReq 推荐回流上报。session_id 缺省时匹配任意会话的曝光
type OutcomeReq struct {
	ContentRefDTO
	Outcome   string `json:"outcome" binding:"required,oneof=view click play like share favorite"`
	SessionID string `json:"session_id" binding:"omitempty,max=64"`
}

// RecentQuery 最近推荐曝光请求
type RecentQuery struct {
	Limit int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}

// RecentImpressionDTO 最近一次推荐曝光及其回流位
type RecentImpressionDTO struct {
	ContentKind     string     `json:"content_kind"`
	ObjectID        uint64     `json:"object_id"`
	AlgorithmType   string     `json:"algorithm_type"`
	Score           float64    `json:"score"`
	PositionInList  int        `json:"position_in_list"`
	SessionID       string     `json:"session_id"`
	IsViewed        bool       `json:"is_viewed"`
	IsClicked       bool       `json:"is_clicked"`
	IsPlayed        bool       `json:"is_played"`
	IsLiked         bool       `json:"is_liked"`
	IsShared        bool       `json:"is_shared"`
	IsFavorited     bool       `json:"is_favorited"`
	InteractionTime *time.Time `json:"interaction_time"`
	CreatedAt       time.Time  `json:"created_at"`
}

// AlgorithmStatsQuery 推荐效果统计请求
type AlgorithmStatsQuery struct {
	Days int `form:"days,default=7" binding:"omitempty,min=1,max=90"`
}
