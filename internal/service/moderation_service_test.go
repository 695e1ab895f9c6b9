package service

import (
	"Meenews/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSubmit 非法状态报参数错误，合法状态追加记录
func TestSubmit(t *testing.T) {
	repo := &fakeModerationRepo{}
	svc := NewModerationService(&fakeResolver{}, repo)
	ctx := context.Background()

	err := svc.Submit(ctx, &model.ContentModeration{ContentKind: model.KindNews, ObjectID: 100, Status: "deleted"})
	require.ErrorIs(t, err, ErrParamInvalid)
	require.Empty(t, repo.records)

	err = svc.Submit(ctx, &model.ContentModeration{ContentKind: model.KindNews, ObjectID: 100, Status: model.ModerationPending})
	require.NoError(t, err)
	require.Len(t, repo.records, 1)
}

// TestSubmit_AllStatuses 标准流转的六种状态和 removed 扩展都能落库
func TestSubmit_AllStatuses(t *testing.T) {
	repo := &fakeModerationRepo{}
	svc := NewModerationService(&fakeResolver{}, repo)
	ctx := context.Background()

	statuses := []string{
		model.ModerationPending,
		model.ModerationApproved,
		model.ModerationRejected,
		model.ModerationFlagged,
		model.ModerationReviewing,
		model.ModerationAppealing,
		model.ModerationRemoved,
	}
	for _, status := range statuses {
		err := svc.Submit(ctx, &model.ContentModeration{ContentKind: model.KindNews, ObjectID: 100, Status: status})
		require.NoError(t, err, status)
	}
	require.Len(t, repo.records, len(statuses))

	status, err := svc.CurrentStatus(ctx, model.KindNews, 100)
	require.NoError(t, err)
	require.Equal(t, model.ModerationRemoved, status)
}

// TestPendingCount 按状态统计积压，非法状态报参数错误
func TestPendingCount(t *testing.T) {
	repo := &fakeModerationRepo{}
	svc := NewModerationService(&fakeResolver{}, repo)
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx, &model.ContentModeration{ContentKind: model.KindNews, ObjectID: 1, Status: model.ModerationPending}))
	require.NoError(t, svc.Submit(ctx, &model.ContentModeration{ContentKind: model.KindNews, ObjectID: 2, Status: model.ModerationPending}))
	require.NoError(t, svc.Submit(ctx, &model.ContentModeration{ContentKind: model.KindNews, ObjectID: 3, Status: model.ModerationApproved}))

	count, err := svc.PendingCount(ctx, model.ModerationPending)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	_, err = svc.PendingCount(ctx, "whatever")
	require.ErrorIs(t, err, ErrParamInvalid)
}

// TestHistory 无记录时当前状态为 unmoderated；有记录时取最新一条
func TestHistory(t *testing.T) {
	repo := &fakeModerationRepo{}
	svc := NewModerationService(&fakeResolver{}, repo)
	ctx := context.Background()

	view, err := svc.History(ctx, model.KindNews, 100, 1, 20)
	require.NoError(t, err)
	require.Equal(t, ModerationStatusNone, view.CurrentStatus)
	require.Empty(t, view.History)

	require.NoError(t, svc.Submit(ctx, &model.ContentModeration{ContentKind: model.KindNews, ObjectID: 100, Status: model.ModerationPending}))
	require.NoError(t, svc.Submit(ctx, &model.ContentModeration{ContentKind: model.KindNews, ObjectID: 100, Status: model.ModerationApproved}))

	view, err = svc.History(ctx, model.KindNews, 100, 1, 20)
	require.NoError(t, err)
	require.Equal(t, model.ModerationApproved, view.CurrentStatus)
	require.Len(t, view.History, 2)
	// 最新在前
	require.Equal(t, model.ModerationApproved, view.History[0].Status)
	require.Equal(t, model.ModerationPending, view.History[1].Status)
}

// TestCurrentStatus 状态随追加记录演进，历史不丢
func TestCurrentStatus(t *testing.T) {
	repo := &fakeModerationRepo{}
	svc := NewModerationService(&fakeResolver{}, repo)
	ctx := context.Background()

	status, err := svc.CurrentStatus(ctx, model.KindNews, 100)
	require.NoError(t, err)
	require.Equal(t, ModerationStatusNone, status)

	for _, s := range []string{model.ModerationPending, model.ModerationRejected, model.ModerationApproved} {
		require.NoError(t, svc.Submit(ctx, &model.ContentModeration{ContentKind: model.KindNews, ObjectID: 100, Status: s}))
	}

	status, err = svc.CurrentStatus(ctx, model.KindNews, 100)
	require.NoError(t, err)
	require.Equal(t, model.ModerationApproved, status)
	require.Len(t, repo.records, 3)
}
