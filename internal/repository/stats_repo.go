package repository

import (
	"Meenews/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatsDelta 一次互动对计数列的增量，零值列不变
type StatsDelta struct {
	View       int64
	Play       int64
	Completion int64
	Like       int64
	Dislike    int64
	Comment    int64
	Share      int64
	Favorite   int64
	PlayTime   int64
}

type StatsRepo interface {
	// ApplyContentDelta 对 (kind, objectID, statDate) 行做增量，行不存在则创建
	ApplyContentDelta(ctx context.Context, kind string, objectID uint64, statDate time.Time, delta StatsDelta) error
	// ApplyUserDelta 用户行为统计镜像
	ApplyUserDelta(ctx context.Context, userID uint64, statDate time.Time, delta StatsDelta) error

	GetContentStats(ctx context.Context, kind string, objectID uint64, statDate time.Time) (*model.ContentInteractionStats, error)
	DailySeries(ctx context.Context, kind string, objectID uint64, from, to time.Time) ([]*model.ContentInteractionStats, error)
	GetUserStats(ctx context.Context, userID uint64, statDate time.Time) (*model.UserBehaviorStats, error)
	SumUserPlayTime(ctx context.Context, userID uint64) (int64, error)

	// RecomputeDerived 从原始计数重算派生列，避免增量漂移
	RecomputeDerived(ctx context.Context, kind string, objectID uint64) error
}

type StatsRepoImpl struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) StatsRepo {
	return &StatsRepoImpl{db}
}

func contentAssignments(delta StatsDelta) map[string]interface{} {
	assignments := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if delta.View != 0 {
		assignments["view_count"] = gorm.Expr("view_count + ?", delta.View)
	}
	if delta.Play != 0 {
		assignments["play_count"] = gorm.Expr("play_count + ?", delta.Play)
	}
	if delta.Completion != 0 {
		assignments["completion_count"] = gorm.Expr("completion_count + ?", delta.Completion)
	}
	if delta.Like != 0 {
		assignments["like_count"] = gorm.Expr("like_count + ?", delta.Like)
	}
	if delta.Dislike != 0 {
		assignments["dislike_count"] = gorm.Expr("dislike_count + ?", delta.Dislike)
	}
	if delta.Comment != 0 {
		assignments["comment_count"] = gorm.Expr("comment_count + ?", delta.Comment)
	}
	if delta.Share != 0 {
		assignments["share_count"] = gorm.Expr("share_count + ?", delta.Share)
	}
	if delta.Favorite != 0 {
		assignments["favorite_count"] = gorm.Expr("favorite_count + ?", delta.Favorite)
	}
	if delta.PlayTime != 0 {
		assignments["total_play_time"] = gorm.Expr("total_play_time + ?", delta.PlayTime)
	}
	return assignments
}

func (s *StatsRepoImpl) ApplyContentDelta(ctx context.Context, kind string, objectID uint64, statDate time.Time, delta StatsDelta) error {
	row := &model.ContentInteractionStats{
		ContentKind:     kind,
		ObjectID:        objectID,
		StatDate:        statDate,
		ViewCount:       delta.View,
		PlayCount:       delta.Play,
		CompletionCount: delta.Completion,
		LikeCount:       delta.Like,
		DislikeCount:    delta.Dislike,
		CommentCount:    delta.Comment,
		ShareCount:      delta.Share,
		FavoriteCount:   delta.Favorite,
		TotalPlayTime:   delta.PlayTime,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "content_kind"}, {Name: "object_id"}, {Name: "stat_date"}},
		DoUpdates: clause.Assignments(contentAssignments(delta)),
	}).Create(row).Error
}

func (s *StatsRepoImpl) ApplyUserDelta(ctx context.Context, userID uint64, statDate time.Time, delta StatsDelta) error {
	assignments := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if delta.View != 0 {
		assignments["view_count"] = gorm.Expr("view_count + ?", delta.View)
	}
	if delta.Play != 0 {
		assignments["play_count"] = gorm.Expr("play_count + ?", delta.Play)
	}
	if delta.Like != 0 {
		assignments["like_count"] = gorm.Expr("like_count + ?", delta.Like)
	}
	if delta.Comment != 0 {
		assignments["comment_count"] = gorm.Expr("comment_count + ?", delta.Comment)
	}
	if delta.Share != 0 {
		assignments["share_count"] = gorm.Expr("share_count + ?", delta.Share)
	}
	if delta.Favorite != 0 {
		assignments["favorite_count"] = gorm.Expr("favorite_count + ?", delta.Favorite)
	}
	if delta.PlayTime != 0 {
		assignments["total_play_time"] = gorm.Expr("total_play_time + ?", delta.PlayTime)
	}

	row := &model.UserBehaviorStats{
		UserID:        userID,
		StatDate:      statDate,
		ViewCount:     delta.View,
		PlayCount:     delta.Play,
		LikeCount:     delta.Like,
		CommentCount:  delta.Comment,
		ShareCount:    delta.Share,
		FavoriteCount: delta.Favorite,
		TotalPlayTime: delta.PlayTime,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "stat_date"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(row).Error
}

func (s *StatsRepoImpl) GetContentStats(ctx context.Context, kind string, objectID uint64, statDate time.Time) (*model.ContentInteractionStats, error) {
	var stats model.ContentInteractionStats
	err := s.db.WithContext(ctx).
		Where("content_kind = ? AND object_id = ? AND stat_date = ?", kind, objectID, statDate.Format("2006-01-02")).
		First(&stats).Error
	return &stats, err
}

func (s *StatsRepoImpl) DailySeries(ctx context.Context, kind string, objectID uint64, from, to time.Time) ([]*model.ContentInteractionStats, error) {
	var series []*model.ContentInteractionStats
	err := s.db.WithContext(ctx).
		Where("content_kind = ? AND object_id = ? AND stat_date >= ? AND stat_date <= ? AND stat_date > ?",
			kind, objectID, from.Format("2006-01-02"), to.Format("2006-01-02"), model.LifetimeDate.Format("2006-01-02")).
		Order("stat_date ASC").
		Find(&series).Error
	return series, err
}

func (s *StatsRepoImpl) GetUserStats(ctx context.Context, userID uint64, statDate time.Time) (*model.UserBehaviorStats, error) {
	var stats model.UserBehaviorStats
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND stat_date = ?", userID, statDate.Format("2006-01-02")).
		First(&stats).Error
	return &stats, err
}

func (s *StatsRepoImpl) SumUserPlayTime(ctx context.Context, userID uint64) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.UserBehaviorStats{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(total_play_time), 0)").
		Scan(&total).Error
	return total, err
}

func (s *StatsRepoImpl) RecomputeDerived(ctx context.Context, kind string, objectID uint64) error {
	return s.db.WithContext(ctx).Model(&model.ContentInteractionStats{}).
		Where("content_kind = ? AND object_id = ?", kind, objectID).
		Updates(map[string]interface{}{
			"avg_play_time":   gorm.Expr("IF(play_count > 0, total_play_time / play_count, 0)"),
			"completion_rate": gorm.Expr("IF(play_count > 0, completion_count / play_count, 0)"),
		}).Error
}
