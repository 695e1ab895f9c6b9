package service

import (
	"Meenews/internal/api/config"
	"Meenews/internal/model"
	"Meenews/internal/pkg/consts"
	"Meenews/internal/pkg/redis"
	"Meenews/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// TrendingService 热点话题的确定性打分与查询
type TrendingService struct {
	repo repository.TrendingRepo
	cfg  *config.TrendingConfig
}

func NewTrendingService(repo repository.TrendingRepo, cfg *config.TrendingConfig) *TrendingService {
	return &TrendingService{repo: repo, cfg: cfg}
}

// RegisterTopic 登记话题，已存在时幂等
func (s *TrendingService) RegisterTopic(ctx context.Context, topic *model.TrendingTopic) error {
	if topic.Keyword == "" {
		return ErrParamInvalid
	}
	if topic.TrendType == "" {
		topic.TrendType = model.TrendRising
	}
	return s.repo.UpsertTopic(ctx, topic)
}

// RecordMention 话题计数增量，由资讯入库/搜索链路回调
func (s *TrendingService) RecordMention(ctx context.Context, keyword string, mentions, searches, relatedNews int64) error {
	if keyword == "" {
		return ErrParamInvalid
	}
	return s.repo.IncrMention(ctx, keyword, mentions, searches, relatedNews)
}

// Current 当前活跃话题，按互动分降序。先查 ZSET 缓存，缓存空或异常时回源 MySQL
func (s *TrendingService) Current(ctx context.Context, limit int) ([]*model.TrendingTopic, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	members, err := redis.ZRevRange(ctx, consts.TrendingCurrentKey, 0, int64(limit-1))
	if err != nil {
		log.WarnContext(ctx, "读取热点缓存失败", "err", err)
	} else if len(members) > 0 {
		if topics, ok := s.topicsFromCache(ctx, members); ok {
			return topics, nil
		}
	}
	return s.repo.ListActive(ctx, limit)
}

// topicsFromCache 按缓存成员 "id:keyword" 回表，保持缓存给出的顺序。
// 任一成员解析不了或回表缺行时放弃缓存结果
func (s *TrendingService) topicsFromCache(ctx context.Context, members []string) ([]*model.TrendingTopic, bool) {
	ids := make([]uint64, 0, len(members))
	for _, member := range members {
		idPart, _, found := strings.Cut(member, ":")
		if !found {
			return nil, false
		}
		id, err := strconv.ParseUint(idPart, 10, 64)
		if err != nil {
			return nil, false
		}
		ids = append(ids, id)
	}

	topics, err := s.repo.ListByIDs(ctx, ids)
	if err != nil {
		log.WarnContext(ctx, "热点缓存回表失败", "err", err)
		return nil, false
	}
	byID := make(map[uint64]*model.TrendingTopic, len(topics))
	for _, topic := range topics {
		byID[topic.ID] = topic
	}

	ordered := make([]*model.TrendingTopic, 0, len(ids))
	for _, id := range ids {
		topic, ok := byID[id]
		if !ok {
			return nil, false
		}
		ordered = append(ordered, topic)
	}
	return ordered, true
}

// TrendingOverview 话题面板统计
type TrendingOverview struct {
	ActiveCount int64                  `json:"active_count"`
	TopTopics   []*model.TrendingTopic `json:"top_topics"`
}

func (s *TrendingService) Overview(ctx context.Context) (*TrendingOverview, error) {
	count, err := s.repo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	top, err := s.repo.ListActive(ctx, 10)
	if err != nil {
		return nil, err
	}
	return &TrendingOverview{ActiveCount: count, TopTopics: top}, nil
}

// RecomputeAll 一轮打分：对每个活跃话题确定性重算速度和互动分，
// 连续低速若干轮后下线，并刷新 ZSET 缓存
func (s *TrendingService) RecomputeAll(ctx context.Context) error {
	topics, err := s.repo.ListActive(ctx, 1000)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := redis.DeleteKey(ctx, consts.TrendingCurrentKey); err != nil {
		log.WarnContext(ctx, "清除热点缓存失败", "err", err)
	}

	for _, topic := range topics {
		s.scoreTopic(topic)
		if err := s.repo.SaveScores(ctx, topic); err != nil {
			log.ErrorContext(ctx, "落盘话题分数失败", "keyword", topic.Keyword, "err", err)
			continue
		}
		if topic.IsActive {
			member := fmt.Sprintf("%d:%s", topic.ID, topic.Keyword)
			if err := redis.ZAdd(ctx, consts.TrendingCurrentKey, topic.EngagementScore, member); err != nil {
				log.WarnContext(ctx, "写入热点缓存失败", "keyword", topic.Keyword, "err", err)
			}
		}
	}

	// 只保留分数最高的 50 条
	if err := redis.ZRemRangeByRank(ctx, consts.TrendingCurrentKey, 0, -51); err != nil {
		log.WarnContext(ctx, "裁剪热点缓存失败", "err", err)
	}
	return nil
}

// scoreTopic 纯函数式打分：
// velocity = (当前提及 - 上轮提及) / max(上轮提及, 1)
// engagement = Σ 权重 * min(count/scale, 1)，截断到 [0,1]
func (s *TrendingService) scoreTopic(topic *model.TrendingTopic) {
	prior := topic.PriorMentionCount
	base := prior
	if base < 1 {
		base = 1
	}
	topic.VelocityScore = float64(topic.MentionCount-prior) / float64(base)

	engagement := s.cfg.MentionWeight*normalize(topic.MentionCount, s.cfg.MentionScale) +
		s.cfg.SearchWeight*normalize(topic.SearchCount, s.cfg.SearchScale) +
		s.cfg.NewsWeight*normalize(topic.RelatedNewsCount, s.cfg.NewsScale)
	if engagement > 1 {
		engagement = 1
	}
	if engagement < 0 {
		engagement = 0
	}
	topic.EngagementScore = engagement

	// breaking 看爆发速度，rising 看上升速度，hot 看互动绝对量，其余归入 persistent
	switch {
	case topic.VelocityScore > 2.0:
		topic.TrendType = model.TrendBreaking
	case topic.VelocityScore > 0.5:
		topic.TrendType = model.TrendRising
	case engagement >= 0.6:
		topic.TrendType = model.TrendHot
	default:
		topic.TrendType = model.TrendPersistent
	}

	if topic.VelocityScore < s.cfg.VelocityFloor {
		topic.LowVelocityCycles++
	} else {
		topic.LowVelocityCycles = 0
	}

	cycles := s.cfg.DeactivateCycles
	if cycles <= 0 {
		cycles = 3
	}
	if topic.LowVelocityCycles >= cycles {
		topic.IsActive = false
	}
}

func normalize(count int64, scale float64) float64 {
	if scale <= 0 || count <= 0 {
		return 0
	}
	value := float64(count) / scale
	if value > 1 {
		return 1
	}
	return value
}
