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

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// InteractionService 互动台账：点赞/收藏幂等，分享/举报/播放追加，评论树
type InteractionService struct {
	content        ContentResolver
	repo           repository.InteractionRepo
	commentRepo    repository.CommentRepo
	moderationRepo repository.ModerationRepo
	stats          *StatsService
	outcomes       OutcomeRecorder
}

func NewInteractionService(
	content ContentResolver,
	repo repository.InteractionRepo,
	commentRepo repository.CommentRepo,
	moderationRepo repository.ModerationRepo,
	stats *StatsService,
	outcomes OutcomeRecorder,
) *InteractionService {
	return &InteractionService{
		content:        content,
		repo:           repo,
		commentRepo:    commentRepo,
		moderationRepo: moderationRepo,
		stats:          stats,
		outcomes:       outcomes,
	}
}

// feedOutcome 互动事件尽力回流到推荐曝光台账；目标从未投放过属正常情况
func (s *InteractionService) feedOutcome(ctx context.Context, userID uint64, kind string, objectID uint64, sessionID, outcome string) {
	if s.outcomes == nil {
		return
	}
	err := s.outcomes.RecordOutcome(ctx, userID, kind, objectID, sessionID, outcome)
	if err != nil && !errors.Is(err, ErrImpressionNotFound) {
		log.WarnContext(ctx, "推荐回流记录失败", "outcome", outcome, "kind", kind, "object_id", objectID, "err", err)
	}
}

// isDuplicateError 判断是否为 MySQL 唯一键冲突
func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// withConflictRetry 唯一键竞态重试一次，仍失败按冲突上报
func withConflictRetry(fn func() error) error {
	err := fn()
	if err == nil || !isDuplicateError(err) {
		return err
	}
	if err = fn(); err == nil {
		return nil
	}
	if isDuplicateError(err) {
		return ErrConflict
	}
	return err
}

// Like 点赞或点踩，同一目标重复提交只改极性不加行
func (s *InteractionService) Like(ctx context.Context, userID uint64, kind string, objectID uint64, isLike bool) error {
	if err := s.content.ResolveRef(ctx, kind, objectID); err != nil {
		return err
	}

	prev, err := s.repo.GetLike(ctx, userID, kind, objectID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		prev = nil
	}

	var created bool
	err = withConflictRetry(func() error {
		like := &model.Like{
			UserID:      userID,
			ContentKind: kind,
			ObjectID:    objectID,
			IsLike:      isLike,
		}
		var upsertErr error
		created, upsertErr = s.repo.UpsertLike(ctx, like)
		return upsertErr
	})
	if err != nil {
		return err
	}

	delta := repository.StatsDelta{}
	switch {
	case created:
		if isLike {
			delta.Like = 1
		} else {
			delta.Dislike = 1
		}
	case prev != nil && prev.IsLike != isLike:
		// 极性翻转，两列对冲
		if isLike {
			delta.Like, delta.Dislike = 1, -1
		} else {
			delta.Like, delta.Dislike = -1, 1
		}
	default:
		// 重复同向操作，计数不动
		return nil
	}

	if err := s.stats.Apply(ctx, userID, kind, objectID, delta); err != nil {
		return err
	}
	s.bumpCount(ctx, consts.ContentLikeCountKey, kind, objectID, delta.Like)
	if delta.Like == 1 {
		s.feedOutcome(ctx, userID, kind, objectID, "", model.OutcomeLike)
	}
	return nil
}

// Unlike 取消点赞/点踩，目标上没有记录时幂等成功
func (s *InteractionService) Unlike(ctx context.Context, userID uint64, kind string, objectID uint64) error {
	if err := s.content.ResolveRef(ctx, kind, objectID); err != nil {
		return err
	}

	prev, err := s.repo.GetLike(ctx, userID, kind, objectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	affected, err := s.repo.DeleteLike(ctx, userID, kind, objectID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return nil
	}

	delta := repository.StatsDelta{}
	if prev.IsLike {
		delta.Like = -1
	} else {
		delta.Dislike = -1
	}
	if err := s.stats.Apply(ctx, userID, kind, objectID, delta); err != nil {
		return err
	}
	s.bumpCount(ctx, consts.ContentLikeCountKey, kind, objectID, delta.Like)
	return nil
}

// LikeStatusResult 点赞状态查询结果
type LikeStatusResult struct {
	Exists bool `json:"exists"`
	IsLike bool `json:"is_like"`
}

func (s *InteractionService) LikeStatus(ctx context.Context, userID uint64, kind string, objectID uint64) (*LikeStatusResult, error) {
	if err := s.content.ResolveRef(ctx, kind, objectID); err != nil {
		return nil, err
	}
	like, err := s.repo.GetLike(ctx, userID, kind, objectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &LikeStatusResult{Exists: false}, nil
		}
		return nil, err
	}
	return &LikeStatusResult{Exists: true, IsLike: like.IsLike}, nil
}

// Favorite 收藏，重复收藏幂等返回已有行
func (s *InteractionService) Favorite(ctx context.Context, favorite *model.Favorite) error {
	if err := s.content.ResolveRef(ctx, favorite.ContentKind, favorite.ObjectID); err != nil {
		return err
	}
	if favorite.FolderName == "" {
		favorite.FolderName = consts.DefaultFavoriteFolder
	}

	var created bool
	err := withConflictRetry(func() error {
		var upsertErr error
		created, upsertErr = s.repo.UpsertFavorite(ctx, favorite)
		return upsertErr
	})
	if err != nil {
		return err
	}
	if !created {
		return nil
	}

	if err := s.stats.Apply(ctx, favorite.UserID, favorite.ContentKind, favorite.ObjectID, repository.StatsDelta{Favorite: 1}); err != nil {
		return err
	}
	s.bumpCount(ctx, consts.ContentFavoriteCountKey, favorite.ContentKind, favorite.ObjectID, 1)
	s.feedOutcome(ctx, favorite.UserID, favorite.ContentKind, favorite.ObjectID, "", model.OutcomeFavorite)
	return nil
}

// BatchFavorite 批量收藏，逐条幂等，返回新建条数
func (s *InteractionService) BatchFavorite(ctx context.Context, favorites []*model.Favorite) (int, error) {
	createdCount := 0
	for _, favorite := range favorites {
		before := favorite.ID
		if err := s.Favorite(ctx, favorite); err != nil {
			return createdCount, err
		}
		if favorite.ID != before {
			createdCount++
		}
	}
	return createdCount, nil
}

// BatchDeleteFavorites 批量取消收藏，只删自己的行，返回删除条数
func (s *InteractionService) BatchDeleteFavorites(ctx context.Context, userID uint64, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrParamInvalid
	}

	rows, err := s.repo.FindFavoritesByIDs(ctx, userID, ids)
	if err != nil {
		return 0, err
	}
	affected, err := s.repo.BatchDeleteFavorites(ctx, userID, ids)
	if err != nil {
		return 0, err
	}

	for _, row := range rows {
		if err := s.stats.Apply(ctx, userID, row.ContentKind, row.ObjectID, repository.StatsDelta{Favorite: -1}); err != nil {
			log.WarnContext(ctx, "收藏统计回退失败", "favorite_id", row.ID, "err", err)
		}
		s.bumpCount(ctx, consts.ContentFavoriteCountKey, row.ContentKind, row.ObjectID, -1)
	}
	return affected, nil
}

func (s *InteractionService) ListFavorites(ctx context.Context, userID uint64, folderName string, page, pageSize int) ([]*model.Favorite, int64, error) {
	limit, offset := normalizePage(page, pageSize)
	favorites, err := s.repo.ListFavorites(ctx, userID, folderName, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountFavorites(ctx, userID, folderName)
	if err != nil {
		return nil, 0, err
	}
	return favorites, total, nil
}

// Share 分享，追加写
func (s *InteractionService) Share(ctx context.Context, userID uint64, kind string, objectID uint64, platform string) error {
	if err := s.content.ResolveRef(ctx, kind, objectID); err != nil {
		return err
	}

	share := &model.Share{
		UserID:      userID,
		ContentKind: kind,
		ObjectID:    objectID,
		Platform:    platform,
	}
	if err := s.repo.CreateShare(ctx, share); err != nil {
		return err
	}

	if err := s.stats.Apply(ctx, userID, kind, objectID, repository.StatsDelta{Share: 1}); err != nil {
		return err
	}
	s.bumpCount(ctx, consts.ContentShareCountKey, kind, objectID, 1)
	s.feedOutcome(ctx, userID, kind, objectID, "", model.OutcomeShare)
	return nil
}

// Report 举报，同一用户对同一目标 24h 内去重；达到阈值自动挂 flagged 审核记录
func (s *InteractionService) Report(ctx context.Context, userID uint64, kind string, objectID uint64, reason, description string) error {
	if err := s.content.ResolveRef(ctx, kind, objectID); err != nil {
		return err
	}

	lockKey := fmt.Sprintf("%s%d:%s:%d", consts.ReportLock, userID, kind, objectID)
	locked, err := redis.TryLock(ctx, lockKey, 1, 24*time.Hour, 1)
	if err != nil {
		return err
	}
	if !locked {
		return ErrActionDuplicate
	}

	report := &model.Report{
		UserID:      userID,
		ContentKind: kind,
		ObjectID:    objectID,
		Reason:      reason,
		Description: description,
	}
	if err := s.repo.CreateReport(ctx, report); err != nil {
		// 入库失败时释放锁，允许用户重试
		redis.UnLock(ctx, lockKey, 1)
		return err
	}

	s.bumpCount(ctx, consts.ContentReportCountKey, kind, objectID, 1)

	count, err := s.repo.CountReports(ctx, kind, objectID)
	if err != nil {
		log.WarnContext(ctx, "统计举报数失败", "kind", kind, "object_id", objectID, "err", err)
		return nil
	}
	if count == consts.ReportFlagThreshold {
		record := &model.ContentModeration{
			ContentKind:      kind,
			ObjectID:         objectID,
			Status:           model.ModerationFlagged,
			Priority:         1,
			Reason:           "用户举报达到阈值",
			UserReportsCount: count,
		}
		if err := s.moderationRepo.CreateRecord(ctx, record); err != nil {
			log.ErrorContext(ctx, "自动标记审核失败", "kind", kind, "object_id", objectID, "err", err)
		}
	}
	return nil
}

// RecordPlay 记录一次播放，完播判定按完成率阈值
func (s *InteractionService) RecordPlay(ctx context.Context, history *model.PlayHistory) error {
	if err := s.content.ResolveRef(ctx, history.ContentKind, history.ObjectID); err != nil {
		return err
	}

	if history.TotalDuration > 0 {
		history.CompletionRate = float64(history.PlayDuration) / float64(history.TotalDuration)
		if history.CompletionRate > 1 {
			history.CompletionRate = 1
		}
	}

	if err := s.repo.CreatePlayHistory(ctx, history); err != nil {
		return err
	}

	delta := repository.StatsDelta{Play: 1, PlayTime: history.PlayDuration}
	if history.CompletionRate >= consts.PlayCompletionRate {
		delta.Completion = 1
	}
	if err := s.stats.Apply(ctx, history.UserID, history.ContentKind, history.ObjectID, delta); err != nil {
		return err
	}

	// 播放时长缓存失效，下次查询重算
	cacheKey := fmt.Sprintf("%s%d", consts.UserPlayTotalKey, history.UserID)
	if err := redis.DeleteKey(ctx, cacheKey); err != nil {
		log.WarnContext(ctx, "清除播放时长缓存失败", "user_id", history.UserID, "err", err)
	}
	s.feedOutcome(ctx, history.UserID, history.ContentKind, history.ObjectID, history.SessionID, model.OutcomePlay)
	return nil
}

func (s *InteractionService) ListPlayHistory(ctx context.Context, userID uint64, page, pageSize int) ([]*model.PlayHistory, error) {
	limit, offset := normalizePage(page, pageSize)
	return s.repo.ListPlayHistory(ctx, userID, limit, offset)
}

// BatchDeletePlayHistory 删除自己的播放记录，不回退统计
func (s *InteractionService) BatchDeletePlayHistory(ctx context.Context, userID uint64, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrParamInvalid
	}
	return s.repo.BatchDeletePlayHistory(ctx, userID, ids)
}

func (s *InteractionService) TotalPlayDuration(ctx context.Context, userID uint64) (int64, error) {
	return s.repo.SumPlayDuration(ctx, userID)
}

// CreateComment 发评论/回复，父评论校验与 reply_count 自增在仓储事务内完成
func (s *InteractionService) CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := s.content.ResolveRef(ctx, comment.ContentKind, comment.ObjectID); err != nil {
		return err
	}

	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrParentNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if err := s.stats.Apply(ctx, comment.UserID, comment.ContentKind, comment.ObjectID, repository.StatsDelta{Comment: 1}); err != nil {
		return err
	}
	s.bumpCount(ctx, consts.ContentCommentCountKey, comment.ContentKind, comment.ObjectID, 1)
	return nil
}

// DeleteComment 删除自己的评论
func (s *InteractionService) DeleteComment(ctx context.Context, userID, commentID uint64) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if comment.UserID != userID {
		return ErrForbidden
	}

	affected, err := s.commentRepo.DeleteOwned(ctx, userID, commentID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCommentNotFound
	}

	if err := s.stats.Apply(ctx, userID, comment.ContentKind, comment.ObjectID, repository.StatsDelta{Comment: -1}); err != nil {
		return err
	}
	s.bumpCount(ctx, consts.ContentCommentCountKey, comment.ContentKind, comment.ObjectID, -1)
	return nil
}

func (s *InteractionService) ListComments(ctx context.Context, kind string, objectID uint64, page, pageSize int) ([]*model.Comment, int64, error) {
	if err := s.content.ResolveRef(ctx, kind, objectID); err != nil {
		return nil, 0, err
	}
	limit, offset := normalizePage(page, pageSize)
	comments, err := s.commentRepo.ListByTarget(ctx, kind, objectID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.commentRepo.CountByTarget(ctx, kind, objectID)
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (s *InteractionService) ListReplies(ctx context.Context, parentID uint64, page, pageSize int) ([]*model.Comment, error) {
	limit, offset := normalizePage(page, pageSize)
	return s.commentRepo.ListReplies(ctx, parentID, limit, offset)
}

// bumpCount 热点计数缓存尽力而为
func (s *InteractionService) bumpCount(ctx context.Context, prefix, kind string, objectID uint64, delta int64) {
	if delta == 0 {
		return
	}
	key := fmt.Sprintf("%s%s:%d", prefix, kind, objectID)
	if err := redis.IncrBy(ctx, key, delta); err != nil {
		log.WarnContext(ctx, "计数缓存更新失败", "key", key, "err", err)
	}
}

func normalizePage(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > consts.MaxPageSize {
		pageSize = consts.DefaultPageSize
	}
	return pageSize, (page - 1) * pageSize
}
