package service

import (
	"Meenews/internal/api/config"
	"Meenews/internal/model"
	"Meenews/internal/repository"
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Candidate 候选内容
type Candidate struct {
	ContentKind string
	ObjectID    uint64
	Score       float64
	Reasons     []string
}

// CandidateSource 候选生成器，算法可插拔
type CandidateSource interface {
	Candidates(ctx context.Context, userID uint64, count int) ([]Candidate, error)
	Name() string
}

// OutcomeRecorder 互动台账事件回流到推荐曝光的入口
type OutcomeRecorder interface {
	RecordOutcome(ctx context.Context, userID uint64, kind string, objectID uint64, sessionID, outcome string) error
}

// RecommendationService 推荐曝光与回流记账
type RecommendationService struct {
	repo   repository.RecommendationRepo
	source CandidateSource
	cfg    *config.RecommendConfig
}

func NewRecommendationService(repo repository.RecommendationRepo, source CandidateSource, cfg *config.RecommendConfig) *RecommendationService {
	return &RecommendationService{repo: repo, source: source, cfg: cfg}
}

func (s *RecommendationService) outcomeWindow() time.Duration {
	hours := s.cfg.OutcomeWindowHours
	if hours <= 0 {
		hours = 72
	}
	return time.Duration(hours) * time.Hour
}

// Personalized 生成个性化推荐并记录曝光，position 按返回顺序回填
func (s *RecommendationService) Personalized(ctx context.Context, userID uint64, listType string, count int) ([]*model.Recommendation, error) {
	if count <= 0 || count > 50 {
		count = s.cfg.CandidateCount
		if count <= 0 {
			count = 10
		}
	}

	candidates, err := s.source.Candidates(ctx, userID, count)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	sessionID := uuid.New().String()
	records := make([]*model.Recommendation, 0, len(candidates))
	for i, candidate := range candidates {
		records = append(records, &model.Recommendation{
			UserID:         userID,
			ContentKind:    candidate.ContentKind,
			ObjectID:       candidate.ObjectID,
			AlgorithmType:  s.source.Name(),
			Score:          candidate.Score,
			Reasons:        candidate.Reasons,
			PositionInList: i + 1,
			ListType:       listType,
			SessionID:      sessionID,
		})
	}

	if err := s.repo.BatchCreate(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

// RecordOutcome 把回流行为记到窗口内最近一次曝光上；sessionID 非空时只匹配该会话的曝光。
// 从未投放过的目标报 NotFound，已翻转过的位重复上报是无操作。
func (s *RecommendationService) RecordOutcome(ctx context.Context, userID uint64, kind string, objectID uint64, sessionID, outcome string) error {
	switch outcome {
	case model.OutcomeView, model.OutcomeClick, model.OutcomePlay, model.OutcomeLike, model.OutcomeShare, model.OutcomeFavorite:
	default:
		return ErrParamInvalid
	}

	since := time.Now().Add(-s.outcomeWindow())
	affected, err := s.repo.ResolveOutcome(ctx, userID, kind, objectID, sessionID, outcome, since)
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	// 没翻到位：要么窗口内没投放过（NotFound），要么该位已翻转（幂等成功）
	exists, err := s.repo.HasImpression(ctx, userID, kind, objectID, sessionID, since)
	if err != nil {
		return err
	}
	if !exists {
		return ErrImpressionNotFound
	}
	return nil
}

// Recent 用户最近收到的推荐曝光，最新在前
func (s *RecommendationService) Recent(ctx context.Context, userID uint64, limit int) ([]*model.Recommendation, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.ListRecent(ctx, userID, limit)
}

// Stats 各算法的曝光转化聚合，按曝光量排序
func (s *RecommendationService) Stats(ctx context.Context, days int) ([]*repository.AlgorithmStats, error) {
	if days <= 0 || days > 90 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days)
	stats, err := s.repo.StatsByAlgorithm(ctx, since)
	if err != nil {
		return nil, err
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Impressions > stats[j].Impressions
	})
	return stats, nil
}
