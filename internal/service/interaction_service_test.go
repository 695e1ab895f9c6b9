package service

import (
	"Meenews/internal/model"
	"Meenews/internal/pkg/consts"
	"Meenews/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type interactionFixture struct {
	svc        *InteractionService
	repo       *fakeInteractionRepo
	comments   *fakeCommentRepo
	moderation *fakeModerationRepo
	stats      *fakeStatsRepo
	outcomes   *fakeOutcomeRecorder
}

func newInteractionFixture(resolveErr error) *interactionFixture {
	repo := newFakeInteractionRepo()
	comments := newFakeCommentRepo()
	moderation := &fakeModerationRepo{}
	stats := &fakeStatsRepo{}
	outcomes := &fakeOutcomeRecorder{}
	svc := NewInteractionService(&fakeResolver{err: resolveErr}, repo, comments, moderation, NewStatsService(stats), outcomes)
	return &interactionFixture{svc: svc, repo: repo, comments: comments, moderation: moderation, stats: stats, outcomes: outcomes}
}

// sumDelta 汇总生命周期哨兵行上的增量，等价于日行之和
func sumDelta(f *fakeStatsRepo) repository.StatsDelta {
	total := repository.StatsDelta{}
	for _, call := range f.contentCalls {
		if !call.statDate.Equal(model.LifetimeDate) {
			continue
		}
		total.View += call.delta.View
		total.Play += call.delta.Play
		total.Completion += call.delta.Completion
		total.Like += call.delta.Like
		total.Dislike += call.delta.Dislike
		total.Comment += call.delta.Comment
		total.Share += call.delta.Share
		total.Favorite += call.delta.Favorite
		total.PlayTime += call.delta.PlayTime
	}
	return total
}

// TestLike_FirstTime 首次点赞：台账落一行，当天行和生命周期行各加一次
func TestLike_FirstTime(t *testing.T) {
	fx := newInteractionFixture(nil)
	ctx := context.Background()

	require.NoError(t, fx.svc.Like(ctx, 1, model.KindNews, 100, true))

	require.Len(t, fx.repo.likes, 1)
	require.Len(t, fx.stats.contentCalls, 2)
	require.Len(t, fx.stats.userCalls, 1)
	require.Equal(t, int64(1), sumDelta(fx.stats).Like)
	require.Equal(t, int64(0), sumDelta(fx.stats).Dislike)
}

// TestLike_RepeatSameDirection 重复同向点赞：行数与计数都不变
func TestLike_RepeatSameDirection(t *testing.T) {
	fx := newInteractionFixture(nil)
	ctx := context.Background()

	require.NoError(t, fx.svc.Like(ctx, 1, model.KindNews, 100, true))
	require.NoError(t, fx.svc.Like(ctx, 1, model.KindNews, 100, true))

	require.Len(t, fx.repo.likes, 1)
	require.Equal(t, int64(1), sumDelta(fx.stats).Like)
}

// TestLike_PolarityFlip 点赞改点踩：不加行，两列对冲
func TestLike_PolarityFlip(t *testing.T) {
	fx := newInteractionFixture(nil)
	ctx := context.Background()

	require.NoError(t, fx.svc.Like(ctx, 1, model.KindNews, 100, true))
	require.NoError(t, fx.svc.Like(ctx, 1, model.KindNews, 100, false))

	require.Len(t, fx.repo.likes, 1)
	total := sumDelta(fx.stats)
	require.Equal(t, int64(0), total.Like)
	require.Equal(t, int64(1), total.Dislike)
}

// TestUnlike 取消点赞回退计数，没有记录时幂等成功
func TestUnlike(t *testing.T) {
	fx := newInteractionFixture(nil)
	ctx := context.Background()

	require.NoError(t, fx.svc.Like(ctx, 1, model.KindNews, 100, true))
	require.NoError(t, fx.svc.Unlike(ctx, 1, model.KindNews, 100))
	require.Equal(t, int64(0), sumDelta(fx.stats).Like)
	require.Empty(t, fx.repo.likes)

	calls := len(fx.stats.contentCalls)
	require.NoError(t, fx.svc.Unlike(ctx, 1, model.KindNews, 100))
	require.Len(t, fx.stats.contentCalls, calls)
}

// TestLike_ContentMissing 目标不存在时直接报错，不落台账
func TestLike_ContentMissing(t *testing.T) {
	fx := newInteractionFixture(ErrContentNotFound)

	err := fx.svc.Like(context.Background(), 1, model.KindNews, 100, true)
	require.ErrorIs(t, err, ErrContentNotFound)
	require.Empty(t, fx.repo.likes)
	require.Empty(t, fx.stats.contentCalls)
}

// TestLikeStatus 点赞状态查询
func TestLikeStatus(t *testing.T) {
	fx := newInteractionFixture(nil)
	ctx := context.Background()

	status, err := fx.svc.LikeStatus(ctx, 1, model.KindNews, 100)
	require.NoError(t, err)
	require.False(t, status.Exists)

	require.NoError(t, fx.svc.Like(ctx, 1, model.KindNews, 100, false))
	status, err = fx.svc.LikeStatus(ctx, 1, model.KindNews, 100)
	require.NoError(t, err)
	require.True(t, status.Exists)
	require.False(t, status.IsLike)
}

// TestFavorite 收藏幂等，默认收藏夹兜底
func TestFavorite(t *testing.T) {
	fx := newInteractionFixture(nil)
	ctx := context.Background()

	favorite := &model.Favorite{UserID: 1, ContentKind: model.KindArticle, ObjectID: 7}
	require.NoError(t, fx.svc.Favorite(ctx, favorite))
	require.Equal(t, consts.DefaultFavoriteFolder, favorite.FolderName)
	require.Equal(t, int64(1), sumDelta(fx.stats).Favorite)

	repeat := &model.Favorite{UserID: 1, ContentKind: model.KindArticle, ObjectID: 7}
	require.NoError(t, fx.svc.Favorite(ctx, repeat))
	require.Len(t, fx.repo.favorites, 1)
	require.Equal(t, int64(1), sumDelta(fx.stats).Favorite)
}

// TestFavorite_UpdateMutableFields 重复收藏改收藏夹和备注时覆盖原行
func TestFavorite_UpdateMutableFields(t *testing.T) {
	fx := newInteractionFixture(nil)
	ctx := context.Background()

	first := &model.Favorite{UserID: 1, ContentKind: model.KindArticle, ObjectID: 7, Notes: "初版"}
	require.NoError(t, fx.svc.Favorite(ctx, first))

	update := &model.Favorite{UserID: 1, ContentKind: model.KindArticle, ObjectID: 7, FolderName: "深度阅读", Notes: "改版", IsPrivate: true}
	require.NoError(t, fx.svc.Favorite(ctx, update))

	require.Len(t, fx.repo.favorites, 1)
	stored := fx.repo.favorites[likeKey(1, model.KindArticle, 7)]
	require.Equal(t, "深度阅读", stored.FolderName)
	require.Equal(t, "改版", stored.Notes)
	require.True(t, stored.IsPrivate)
	// 覆盖不算新建，统计不加
	require.Equal(t, int64(1), sumDelta(fx.stats).Favorite)
}

// TestInteractionOutcomeFeed 互动事件回流到推荐曝光台账：
// 新增点赞/收藏/分享/播放各记一次，重复幂等操作不重复回流
func TestInteractionOutcomeFeed(t *testing.T) {
	fx := newInteractionFixture(nil)
	ctx := context.Background()

	require.NoError(t, fx.svc.Like(ctx, 1, model.KindNews, 100, true))
	require.NoError(t, fx.svc.Like(ctx, 1, model.KindNews, 100, true))
	require.NoError(t, fx.svc.Favorite(ctx, &model.Favorite{UserID: 1, ContentKind: model.KindNews, ObjectID: 100}))
	require.NoError(t, fx.svc.Favorite(ctx, &model.Favorite{UserID: 1, ContentKind: model.KindNews, ObjectID: 100}))
	require.NoError(t, fx.svc.Share(ctx, 1, model.KindNews, 100, "wechat"))
	require.NoError(t, fx.svc.RecordPlay(ctx, &model.PlayHistory{
		UserID: 1, ContentKind: model.KindVideo, ObjectID: 9,
		PlayDuration: 50, TotalDuration: 100, SessionID: "session-a",
	}))

	var outcomes []string
	for _, call := range fx.outcomes.calls {
		outcomes = append(outcomes, call.outcome)
	}
	require.Equal(t, []string{model.OutcomeLike, model.OutcomeFavorite, model.OutcomeShare, model.OutcomePlay}, outcomes)
	require.Equal(t, "session-a", fx.outcomes.calls[3].sessionID)
}

// TestInteractionOutcomeFeed_DislikeNotCounted 点踩和极性翻回不算点赞回流
func TestInteractionOutcomeFeed_DislikeNotCounted(t *testing.T) {
	fx := newInteractionFixture(nil)
	ctx := context.Background()

	require.NoError(t, fx.svc.Like(ctx, 1, model.KindNews, 100, false))
	require.Empty(t, fx.outcomes.calls)

	// 点踩翻成点赞算一次回流
	require.NoError(t, fx.svc.Like(ctx, 1, model.KindNews, 100, true))
	require.Len(t, fx.outcomes.calls, 1)
	require.Equal(t, model.OutcomeLike, fx.outcomes.calls[0].outcome)
}

// TestBatchFavorite 批量收藏只统计新建条数
func TestBatchFavorite(t *testing.T) {
	fx := newInteractionFixture(nil)
	ctx := context.Background()

	require.NoError(t, fx.svc.Favorite(ctx, &model.Favorite{UserID: 1, ContentKind: model.KindArticle, ObjectID: 7}))

	created, err := fx.svc.BatchFavorite(ctx, []*model.Favorite{
		{UserID: 1, ContentKind: model.KindArticle, ObjectID: 7},
		{UserID: 1, ContentKind: model.KindVideo, ObjectID: 8},
	})
	require.NoError(t, err)
	require.Equal(t, 1, created)
	require.Len(t, fx.repo.favorites, 2)
}

// TestBatchDeleteFavorites 批量取消收藏回退统计
func TestBatchDeleteFavorites(t *testing.T) {
	fx := newInteractionFixture(nil)
	ctx := context.Background()

	first := &model.Favorite{UserID: 1, ContentKind: model.KindArticle, ObjectID: 7}
	second := &model.Favorite{UserID: 1, ContentKind: model.KindVideo, ObjectID: 8}
	require.NoError(t, fx.svc.Favorite(ctx, first))
	require.NoError(t, fx.svc.Favorite(ctx, second))

	affected, err := fx.svc.BatchDeleteFavorites(ctx, 1, []uint64{first.ID, second.ID})
	require.NoError(t, err)
	require.Equal(t, int64(2), affected)
	require.Equal(t, int64(0), sumDelta(fx.stats).Favorite)

	_, err = fx.svc.BatchDeleteFavorites(ctx, 1, nil)
	require.ErrorIs(t, err, ErrParamInvalid)
}

// TestShare 分享追加写，每次都计数
func TestShare(t *testing.T) {
	fx := newInteractionFixture(nil)
	ctx := context.Background()

	require.NoError(t, fx.svc.Share(ctx, 1, model.KindNews, 100, "wechat"))
	require.NoError(t, fx.svc.Share(ctx, 1, model.KindNews, 100, "wechat"))

	require.Len(t, fx.repo.shares, 2)
	require.Equal(t, int64(2), sumDelta(fx.stats).Share)
}

// TestRecordPlay 完成率按时长折算，达到阈值记一次完播
func TestRecordPlay(t *testing.T) {
	tests := []struct {
		name           string
		playDuration   int64
		totalDuration  int64
		wantRate       float64
		wantCompletion int64
	}{
		{name: "完播", playDuration: 95, totalDuration: 100, wantRate: 0.95, wantCompletion: 1},
		{name: "中途退出", playDuration: 40, totalDuration: 100, wantRate: 0.4, wantCompletion: 0},
		{name: "超时截断", playDuration: 130, totalDuration: 100, wantRate: 1, wantCompletion: 1},
		{name: "无总时长", playDuration: 60, totalDuration: 0, wantRate: 0, wantCompletion: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newInteractionFixture(nil)
			history := &model.PlayHistory{
				UserID:        1,
				ContentKind:   model.KindVideo,
				ObjectID:      9,
				PlayDuration:  tt.playDuration,
				TotalDuration: tt.totalDuration,
			}
			require.NoError(t, fx.svc.RecordPlay(context.Background(), history))
			require.InDelta(t, tt.wantRate, history.CompletionRate, 1e-9)

			total := sumDelta(fx.stats)
			require.Equal(t, int64(1), total.Play)
			require.Equal(t, tt.wantCompletion, total.Completion)
			require.Equal(t, tt.playDuration, total.PlayTime)
		})
	}
}

// TestCreateComment 根评论与回复；父评论不存在时报错且不计数
func TestCreateComment(t *testing.T) {
	fx := newInteractionFixture(nil)
	ctx := context.Background()

	root := &model.Comment{UserID: 1, ContentKind: model.KindNews, ObjectID: 100, Content: "不错"}
	require.NoError(t, fx.svc.CreateComment(ctx, root))
	require.NotZero(t, root.ID)

	reply := &model.Comment{UserID: 2, ContentKind: model.KindNews, ObjectID: 100, ParentID: &root.ID, Content: "同感"}
	require.NoError(t, fx.svc.CreateComment(ctx, reply))
	require.Equal(t, int64(1), fx.comments.comments[root.ID].ReplyCount)
	require.Equal(t, int64(2), sumDelta(fx.stats).Comment)

	missing := uint64(999)
	orphan := &model.Comment{UserID: 3, ContentKind: model.KindNews, ObjectID: 100, ParentID: &missing, Content: "挂空"}
	err := fx.svc.CreateComment(ctx, orphan)
	require.ErrorIs(t, err, ErrCommentNotFound)
	require.Equal(t, int64(2), sumDelta(fx.stats).Comment)
}

// TestDeleteComment 只能删自己的评论
func TestDeleteComment(t *testing.T) {
	fx := newInteractionFixture(nil)
	ctx := context.Background()

	comment := &model.Comment{UserID: 1, ContentKind: model.KindNews, ObjectID: 100, Content: "先发后删"}
	require.NoError(t, fx.svc.CreateComment(ctx, comment))

	require.ErrorIs(t, fx.svc.DeleteComment(ctx, 2, comment.ID), ErrForbidden)

	require.NoError(t, fx.svc.DeleteComment(ctx, 1, comment.ID))
	require.Equal(t, int64(0), sumDelta(fx.stats).Comment)

	require.ErrorIs(t, fx.svc.DeleteComment(ctx, 1, comment.ID), ErrCommentNotFound)
}

// TestBatchDeletePlayHistory 只删自己的播放记录，不回退统计
func TestBatchDeletePlayHistory(t *testing.T) {
	fx := newInteractionFixture(nil)
	ctx := context.Background()

	history := &model.PlayHistory{UserID: 1, ContentKind: model.KindVideo, ObjectID: 9, PlayDuration: 10, TotalDuration: 100}
	require.NoError(t, fx.svc.RecordPlay(ctx, history))

	affected, err := fx.svc.BatchDeletePlayHistory(ctx, 1, []uint64{history.ID})
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)
	require.Equal(t, int64(1), sumDelta(fx.stats).Play)

	_, err = fx.svc.BatchDeletePlayHistory(ctx, 1, nil)
	require.ErrorIs(t, err, ErrParamInvalid)
}
