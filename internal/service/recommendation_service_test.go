package service

import (
	"Meenews/internal/api/config"
	"Meenews/internal/model"
	"Meenews/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newRecommendationFixture(repo *fakeRecommendationRepo, source CandidateSource) *RecommendationService {
	return NewRecommendationService(repo, source, &config.RecommendConfig{
		OutcomeWindowHours: 72,
		CandidateCount:     10,
	})
}

// TestPersonalized 位次按返回顺序回填，同一批共享 session
func TestPersonalized(t *testing.T) {
	repo := &fakeRecommendationRepo{}
	source := &fakeCandidateSource{candidates: []Candidate{
		{ContentKind: model.KindNews, ObjectID: 1, Score: 0.9, Reasons: []string{"interest:科技"}},
		{ContentKind: model.KindNews, ObjectID: 2, Score: 0.5, Reasons: []string{"latest"}},
	}}
	svc := newRecommendationFixture(repo, source)

	records, err := svc.Personalized(context.Background(), 1, "feed", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Len(t, repo.created, 2)

	require.Equal(t, 1, records[0].PositionInList)
	require.Equal(t, 2, records[1].PositionInList)
	require.Equal(t, "fixed", records[0].AlgorithmType)
	require.NotEmpty(t, records[0].SessionID)
	require.Equal(t, records[0].SessionID, records[1].SessionID)
}

// TestPersonalized_NoCandidates 候选为空时不落曝光
func TestPersonalized_NoCandidates(t *testing.T) {
	repo := &fakeRecommendationRepo{}
	svc := newRecommendationFixture(repo, &fakeCandidateSource{})

	records, err := svc.Personalized(context.Background(), 1, "feed", 10)
	require.NoError(t, err)
	require.Empty(t, records)
	require.Empty(t, repo.created)
}

// TestRecordOutcome 回流行为的三种结局：翻转成功、重复无操作、未投放报错；
// 五种标准回流位加 favorite 扩展都要能走通
func TestRecordOutcome(t *testing.T) {
	tests := []struct {
		name          string
		outcome       string
		affected      int64
		hasImpression bool
		wantErr       error
	}{
		{name: "浏览回流", outcome: model.OutcomeView, affected: 1},
		{name: "点击回流", outcome: model.OutcomeClick, affected: 1},
		{name: "播放回流", outcome: model.OutcomePlay, affected: 1},
		{name: "点赞回流", outcome: model.OutcomeLike, affected: 1},
		{name: "分享回流", outcome: model.OutcomeShare, affected: 1},
		{name: "收藏回流", outcome: model.OutcomeFavorite, affected: 1},
		{name: "重复回流无操作", outcome: model.OutcomeClick, affected: 0, hasImpression: true},
		{name: "未投放过", outcome: model.OutcomeClick, affected: 0, wantErr: ErrImpressionNotFound},
		{name: "非法行为", outcome: "bookmark", wantErr: ErrParamInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRecommendationRepo{resolveAffected: tt.affected, hasImpression: tt.hasImpression}
			svc := newRecommendationFixture(repo, &fakeCandidateSource{})

			err := svc.RecordOutcome(context.Background(), 1, model.KindNews, 100, "", tt.outcome)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

// TestRecordOutcome_Window 回流窗口按配置生效，session 透传到仓储
func TestRecordOutcome_Window(t *testing.T) {
	repo := &fakeRecommendationRepo{resolveAffected: 1}
	svc := NewRecommendationService(repo, &fakeCandidateSource{}, &config.RecommendConfig{OutcomeWindowHours: 24})

	require.NoError(t, svc.RecordOutcome(context.Background(), 1, model.KindNews, 100, "session-a", model.OutcomePlay))
	require.Equal(t, "session-a", repo.resolveSession)

	wantSince := time.Now().Add(-24 * time.Hour)
	require.WithinDuration(t, wantSince, repo.resolveSince, time.Minute)
}

// TestRecent 最近曝光透传仓储，limit 超界兜底
func TestRecent(t *testing.T) {
	repo := &fakeRecommendationRepo{}
	svc := newRecommendationFixture(repo, &fakeCandidateSource{candidates: []Candidate{
		{ContentKind: model.KindNews, ObjectID: 1, Score: 0.9},
	}})
	ctx := context.Background()

	_, err := svc.Personalized(ctx, 1, "feed", 10)
	require.NoError(t, err)

	records, err := svc.Recent(ctx, 1, 500)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

// TestStats 按曝光量降序
func TestStats(t *testing.T) {
	repo := &fakeRecommendationRepo{stats: []*repository.AlgorithmStats{
		{AlgorithmType: "profile_weight", Impressions: 10},
		{AlgorithmType: "latest", Impressions: 40},
	}}
	svc := newRecommendationFixture(repo, &fakeCandidateSource{})

	stats, err := svc.Stats(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "latest", stats[0].AlgorithmType)
	require.Equal(t, "profile_weight", stats[1].AlgorithmType)
}
