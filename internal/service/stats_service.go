package service

import (
	"Meenews/internal/model"
	"Meenews/internal/pkg/consts"
	"Meenews/internal/pkg/redis"
	"Meenews/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"time"

	"gorm.io/gorm"
)

// StatsService 统计聚合：每次互动同时落当天行和生命周期哨兵行，
// 再把目标丢进脏集合等定时任务重算派生列
type StatsService struct {
	statsRepo repository.StatsRepo
}

func NewStatsService(statsRepo repository.StatsRepo) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Apply 记录一次互动增量。userID 为 0 时跳过用户侧镜像（匿名浏览）
func (s *StatsService) Apply(ctx context.Context, userID uint64, kind string, objectID uint64, delta repository.StatsDelta) error {
	statDate := today()

	if err := s.statsRepo.ApplyContentDelta(ctx, kind, objectID, statDate, delta); err != nil {
		return err
	}
	if err := s.statsRepo.ApplyContentDelta(ctx, kind, objectID, model.LifetimeDate, delta); err != nil {
		return err
	}

	if userID != 0 {
		if err := s.statsRepo.ApplyUserDelta(ctx, userID, statDate, delta); err != nil {
			return err
		}
	}

	s.markDirty(ctx, kind, objectID)
	return nil
}

func (s *StatsService) markDirty(ctx context.Context, kind string, objectID uint64) {
	member := fmt.Sprintf("%s:%d", kind, objectID)
	if err := redis.SAdd(ctx, consts.StatsDirtyKey, member); err != nil {
		log.WarnContext(ctx, "标记统计脏数据失败", "member", member, "err", err)
	}
}

// ContentStatsResult 内容统计查询结果
type ContentStatsResult struct {
	Lifetime *model.ContentInteractionStats   `json:"lifetime"`
	Daily    []*model.ContentInteractionStats `json:"daily"`
}

// ContentStats 返回生命周期累计 + 最近 days 天逐日序列，派生列读时重算
func (s *StatsService) ContentStats(ctx context.Context, kind string, objectID uint64, days int) (*ContentStatsResult, error) {
	if days <= 0 || days > 90 {
		days = 7
	}

	lifetime, err := s.statsRepo.GetContentStats(ctx, kind, objectID, model.LifetimeDate)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		lifetime = &model.ContentInteractionStats{
			ContentKind: kind,
			ObjectID:    objectID,
			StatDate:    model.LifetimeDate,
		}
	}
	fillDerived(lifetime)

	to := today()
	from := to.AddDate(0, 0, -(days - 1))
	daily, err := s.statsRepo.DailySeries(ctx, kind, objectID, from, to)
	if err != nil {
		return nil, err
	}
	for _, row := range daily {
		fillDerived(row)
	}

	return &ContentStatsResult{Lifetime: lifetime, Daily: daily}, nil
}

// fillDerived 派生列由原始计数重算，不信增量累积值
func fillDerived(row *model.ContentInteractionStats) {
	if row.PlayCount > 0 {
		row.AvgPlayTime = float64(row.TotalPlayTime) / float64(row.PlayCount)
		row.CompletionRate = float64(row.CompletionCount) / float64(row.PlayCount)
	} else {
		row.AvgPlayTime = 0
		row.CompletionRate = 0
	}
}

// UserTotalPlayTime 用户累计播放时长（秒），优先读缓存
func (s *StatsService) UserTotalPlayTime(ctx context.Context, userID uint64) (int64, error) {
	cacheKey := fmt.Sprintf("%s%d", consts.UserPlayTotalKey, userID)
	if cached, err := redis.GetInt64(ctx, cacheKey); err == nil && cached >= 0 {
		return cached, nil
	}

	total, err := s.statsRepo.SumUserPlayTime(ctx, userID)
	if err != nil {
		return 0, err
	}

	if err := redis.SetWithExpiration(ctx, cacheKey, total, 5*time.Minute); err != nil {
		log.WarnContext(ctx, "写入播放时长缓存失败", "user_id", userID, "err", err)
	}
	return total, nil
}

// RecomputeDerived 定时任务入口：重算目标的派生列
func (s *StatsService) RecomputeDerived(ctx context.Context, kind string, objectID uint64) error {
	return s.statsRepo.RecomputeDerived(ctx, kind, objectID)
}
