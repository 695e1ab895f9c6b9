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

	"gorm.io/gorm"
)

// ContentResolver 多态内容引用校验与归属查询
type ContentResolver interface {
	ResolveRef(ctx context.Context, kind string, objectID uint64) error
	// OwnerOf 返回内容作者；无作者概念的类型返回 0
	OwnerOf(ctx context.Context, kind string, objectID uint64) (uint64, error)
}

// ContentService 多态内容引用解析 + 公开资讯读取
type ContentService struct {
	registry *repository.ContentRegistry
	newsRepo repository.NewsRepo
	stats    *StatsService
	outcomes OutcomeRecorder
}

func NewContentService(registry *repository.ContentRegistry, newsRepo repository.NewsRepo, stats *StatsService, outcomes OutcomeRecorder) *ContentService {
	return &ContentService{
		registry: registry,
		newsRepo: newsRepo,
		stats:    stats,
		outcomes: outcomes,
	}
}

// ResolveRef 校验 (kind, objectID) 指向的内容真实存在
func (s *ContentService) ResolveRef(ctx context.Context, kind string, objectID uint64) error {
	store, ok := s.registry.Lookup(kind)
	if !ok {
		return ErrUnknownContentKind
	}
	exists, err := store.Exists(ctx, objectID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrContentNotFound
	}
	return nil
}

// OwnerOf 查询内容作者，调用前提是引用已通过 ResolveRef 校验
func (s *ContentService) OwnerOf(ctx context.Context, kind string, objectID uint64) (uint64, error) {
	store, ok := s.registry.Lookup(kind)
	if !ok {
		return 0, ErrUnknownContentKind
	}
	return store.OwnerID(ctx, objectID)
}

// GetNews 公开资讯详情，viewerID 为 0 表示匿名
func (s *ContentService) GetNews(ctx context.Context, newsID, viewerID uint64) (*model.RawNews, error) {
	news, err := s.newsRepo.GetByID(ctx, newsID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	s.trackView(ctx, viewerID, model.KindNews, newsID)
	return news, nil
}

// ListNews 公开资讯列表
func (s *ContentService) ListNews(ctx context.Context, category string, page, pageSize int) ([]*model.RawNews, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > consts.MaxPageSize {
		pageSize = consts.DefaultPageSize
	}

	list, err := s.newsRepo.ListPublished(ctx, category, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.newsRepo.CountPublished(ctx, category)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// trackView 浏览计数尽力而为，失败只记日志不影响主流程
func (s *ContentService) trackView(ctx context.Context, viewerID uint64, kind string, objectID uint64) {
	if err := s.stats.Apply(ctx, viewerID, kind, objectID, repository.StatsDelta{View: 1}); err != nil {
		log.WarnContext(ctx, "记录浏览失败", "kind", kind, "object_id", objectID, "err", err)
		return
	}
	cacheKey := fmt.Sprintf("%s%s:%d", consts.ContentViewCountKey, kind, objectID)
	if err := redis.IncrBy(ctx, cacheKey, 1); err != nil {
		log.WarnContext(ctx, "浏览计数缓存失败", "key", cacheKey, "err", err)
	}

	// 登录用户的浏览回流到推荐曝光台账，未投放过属正常
	if viewerID > 0 && s.outcomes != nil {
		err := s.outcomes.RecordOutcome(ctx, viewerID, kind, objectID, "", model.OutcomeView)
		if err != nil && !errors.Is(err, ErrImpressionNotFound) {
			log.WarnContext(ctx, "浏览回流记录失败", "kind", kind, "object_id", objectID, "err", err)
		}
	}
}
