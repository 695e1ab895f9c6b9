package dto

// ProfileDTO 用户画像
type ProfileDTO struct {
	UserID     uint64             `json:"user_id"`
	Interests  map[string]float64 `json:"interests"`
	ActiveDays int                `json:"active_days"`
}

// InterestDeltaReq 兴趣增量更新
type InterestDeltaReq struct {
	Deltas map[string]float64 `json:"deltas" binding:"required,min=1,max=50"`
}
