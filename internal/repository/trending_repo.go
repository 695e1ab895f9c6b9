package repository

import (
	"Meenews/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrendingRepo interface {
	UpsertTopic(ctx context.Context, topic *model.TrendingTopic) error
	IncrMention(ctx context.Context, keyword string, mentions, searches, relatedNews int64) error
	ListActive(ctx context.Context, limit int) ([]*model.TrendingTopic, error)
	ListByIDs(ctx context.Context, ids []uint64) ([]*model.TrendingTopic, error)
	ListAll(ctx context.Context, limit, offset int) ([]*model.TrendingTopic, error)
	// SaveScores 落盘一轮打分结果并滚动 prior 快照
	SaveScores(ctx context.Context, topic *model.TrendingTopic) error
	CountActive(ctx context.Context) (int64, error)
}

type TrendingRepoImpl struct {
	db *gorm.DB
}

func NewTrendingRepo(db *gorm.DB) TrendingRepo {
	return &TrendingRepoImpl{db}
}

func (s *TrendingRepoImpl) UpsertTopic(ctx context.Context, topic *model.TrendingTopic) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "keyword"}},
		DoNothing: true,
	}).Create(topic).Error
}

func (s *TrendingRepoImpl) IncrMention(ctx context.Context, keyword string, mentions, searches, relatedNews int64) error {
	return s.db.WithContext(ctx).Model(&model.TrendingTopic{}).
		Where("keyword = ?", keyword).
		Updates(map[string]interface{}{
			"mention_count":      gorm.Expr("mention_count + ?", mentions),
			"search_count":       gorm.Expr("search_count + ?", searches),
			"related_news_count": gorm.Expr("related_news_count + ?", relatedNews),
		}).Error
}

func (s *TrendingRepoImpl) ListActive(ctx context.Context, limit int) ([]*model.TrendingTopic, error) {
	var topics []*model.TrendingTopic
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("engagement_score DESC").
		Limit(limit).
		Find(&topics).Error
	return topics, err
}

func (s *TrendingRepoImpl) ListByIDs(ctx context.Context, ids []uint64) ([]*model.TrendingTopic, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var topics []*model.TrendingTopic
	err := s.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&topics).Error
	return topics, err
}

func (s *TrendingRepoImpl) ListAll(ctx context.Context, limit, offset int) ([]*model.TrendingTopic, error) {
	var topics []*model.TrendingTopic
	err := s.db.WithContext(ctx).
		Order("engagement_score DESC").
		Limit(limit).Offset(offset).
		Find(&topics).Error
	return topics, err
}

func (s *TrendingRepoImpl) SaveScores(ctx context.Context, topic *model.TrendingTopic) error {
	return s.db.WithContext(ctx).Model(&model.TrendingTopic{}).
		Where("id = ?", topic.ID).
		Updates(map[string]interface{}{
			"engagement_score":    topic.EngagementScore,
			"velocity_score":      topic.VelocityScore,
			"trend_type":          topic.TrendType,
			"low_velocity_cycles": topic.LowVelocityCycles,
			"is_active":           topic.IsActive,
			"prior_mention_count": topic.MentionCount,
		}).Error
}

func (s *TrendingRepoImpl) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.TrendingTopic{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}
