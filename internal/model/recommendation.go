package model

import "time"

// Recommendation 推荐曝光记录，回流行为只翻转一次对应布尔位
type Recommendation struct {
	ID              uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint64     `gorm:"index:idx_rec_user_target;not null" json:"user_id"`
	ContentKind     string     `gorm:"type:varchar(20);index:idx_rec_user_target;not null" json:"content_kind"`
	ObjectID        uint64     `gorm:"index:idx_rec_user_target;not null" json:"object_id"`
	AlgorithmType   string     `gorm:"type:varchar(30);index;not null" json:"algorithm_type"`
	Score           float64    `gorm:"default:0" json:"score"`
	Reasons         []string   `gorm:"type:json;serializer:json" json:"reasons"`
	PositionInList  int        `gorm:"default:0" json:"position_in_list"`
	ListType        string     `gorm:"type:varchar(30)" json:"list_type"`
	SessionID       string     `gorm:"type:varchar(64);index" json:"session_id"`
	IsViewed        bool       `gorm:"default:false" json:"is_viewed"`
	IsClicked       bool       `gorm:"default:false" json:"is_clicked"`
	IsPlayed        bool       `gorm:"default:false" json:"is_played"`
	IsLiked         bool       `gorm:"default:false" json:"is_liked"`
	IsShared        bool       `gorm:"default:false" json:"is_shared"`
	IsFavorited     bool       `gorm:"default:false" json:"is_favorited"`
	InteractionTime *time.Time `json:"interaction_time"` // 首次回流时间，只写一次
	CreatedAt       time.Time  `gorm:"index" json:"created_at"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}

// 回流行为类型。favorite 是标准五种之外的扩展
const (
	OutcomeView     = "view"
	OutcomeClick    = "click"
	OutcomePlay     = "play"
	OutcomeLike     = "like"
	OutcomeShare    = "share"
	OutcomeFavorite = "favorite"
)
