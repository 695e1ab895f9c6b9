package repository

import (
	"Meenews/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// AlgorithmStats 单算法的曝光转化聚合
type AlgorithmStats struct {
	AlgorithmType string `json:"algorithm_type"`
	Impressions   int64  `json:"impressions"`
	Views         int64  `json:"views"`
	Clicks        int64  `json:"clicks"`
	Plays         int64  `json:"plays"`
	Likes         int64  `json:"likes"`
	Shares        int64  `json:"shares"`
	Favorites     int64  `json:"favorites"`
}

type RecommendationRepo interface {
	BatchCreate(ctx context.Context, records []*model.Recommendation) error
	// ResolveOutcome 把回流行为记到窗口内最近一次曝光上；布尔位只翻转一次，
	// interaction_time 只写首次。sessionID 为空时不按会话过滤。
	// 返回受影响行数（0 表示已翻转或未投放）。
	ResolveOutcome(ctx context.Context, userID uint64, kind string, objectID uint64, sessionID, outcome string, since time.Time) (int64, error)
	// HasImpression 窗口内是否存在该用户对该内容（和会话）的曝光
	HasImpression(ctx context.Context, userID uint64, kind string, objectID uint64, sessionID string, since time.Time) (bool, error)
	StatsByAlgorithm(ctx context.Context, since time.Time) ([]*AlgorithmStats, error)
	ListRecent(ctx context.Context, userID uint64, limit int) ([]*model.Recommendation, error)
}

type RecommendationRepoImpl struct {
	db *gorm.DB
}

func NewRecommendationRepo(db *gorm.DB) RecommendationRepo {
	return &RecommendationRepoImpl{db}
}

func (s *RecommendationRepoImpl) BatchCreate(ctx context.Context, records []*model.Recommendation) error {
	if len(records) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).CreateInBatches(records, 100).Error
}

var outcomeColumns = map[string]string{
	model.OutcomeView:     "is_viewed",
	model.OutcomeClick:    "is_clicked",
	model.OutcomePlay:     "is_played",
	model.OutcomeLike:     "is_liked",
	model.OutcomeShare:    "is_shared",
	model.OutcomeFavorite: "is_favorited",
}

func (s *RecommendationRepoImpl) ResolveOutcome(ctx context.Context, userID uint64, kind string, objectID uint64, sessionID, outcome string, since time.Time) (int64, error) {
	column, ok := outcomeColumns[outcome]
	if !ok {
		return 0, gorm.ErrInvalidField
	}

	// 子查询定位窗口内最近一次未翻转该位的曝光
	subQuery := s.db.WithContext(ctx).Model(&model.Recommendation{}).
		Select("id").
		Where("user_id = ? AND content_kind = ? AND object_id = ?", userID, kind, objectID).
		Where(column+" = ?", false).
		Where("created_at >= ?", since).
		Order("created_at DESC").
		Limit(1)
	if sessionID != "" {
		subQuery = subQuery.Where("session_id = ?", sessionID)
	}

	result := s.db.WithContext(ctx).Model(&model.Recommendation{}).
		Where("id = (?)", subQuery).
		Updates(map[string]interface{}{
			column:             true,
			"interaction_time": gorm.Expr("COALESCE(interaction_time, ?)", time.Now()),
		})
	return result.RowsAffected, result.Error
}

func (s *RecommendationRepoImpl) HasImpression(ctx context.Context, userID uint64, kind string, objectID uint64, sessionID string, since time.Time) (bool, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&model.Recommendation{}).
		Where("user_id = ? AND content_kind = ? AND object_id = ? AND created_at >= ?", userID, kind, objectID, since)
	if sessionID != "" {
		query = query.Where("session_id = ?", sessionID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (s *RecommendationRepoImpl) StatsByAlgorithm(ctx context.Context, since time.Time) ([]*AlgorithmStats, error) {
	var stats []*AlgorithmStats
	err := s.db.WithContext(ctx).Model(&model.Recommendation{}).
		Select(`algorithm_type,
			COUNT(*) AS impressions,
			SUM(is_viewed) AS views,
			SUM(is_clicked) AS clicks,
			SUM(is_played) AS plays,
			SUM(is_liked) AS likes,
			SUM(is_shared) AS shares,
			SUM(is_favorited) AS favorites`).
		Where("created_at >= ?", since).
		Group("algorithm_type").
		Scan(&stats).Error
	return stats, err
}

func (s *RecommendationRepoImpl) ListRecent(ctx context.Context, userID uint64, limit int) ([]*model.Recommendation, error) {
	var records []*model.Recommendation
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}
