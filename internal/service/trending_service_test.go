package service

import (
	"Meenews/internal/api/config"
	"Meenews/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func testTrendingConfig() *config.TrendingConfig {
	return &config.TrendingConfig{
		MentionWeight:    0.5,
		SearchWeight:     0.3,
		NewsWeight:       0.2,
		MentionScale:     100,
		SearchScale:      100,
		NewsScale:        50,
		VelocityFloor:    0.1,
		DeactivateCycles: 3,
	}
}

// TestScoreTopic 打分是纯函数：同样的输入总产生同样的分数和趋势类型
func TestScoreTopic(t *testing.T) {
	tests := []struct {
		name           string
		topic          model.TrendingTopic
		wantVelocity   float64
		wantEngagement float64
		wantType       string
	}{
		{
			name:           "爆发式增长",
			topic:          model.TrendingTopic{MentionCount: 31, PriorMentionCount: 10},
			wantVelocity:   2.1,
			wantEngagement: 0.5 * 0.31,
			wantType:       model.TrendBreaking,
		},
		{
			name:           "快速上升",
			topic:          model.TrendingTopic{MentionCount: 25, PriorMentionCount: 10, SearchCount: 10, RelatedNewsCount: 5},
			wantVelocity:   1.5,
			wantEngagement: 0.5*0.25 + 0.3*0.1 + 0.2*0.1,
			wantType:       model.TrendRising,
		},
		{
			name:           "回落后长尾",
			topic:          model.TrendingTopic{MentionCount: 4, PriorMentionCount: 10},
			wantVelocity:   -0.6,
			wantEngagement: 0.5 * 0.04,
			wantType:       model.TrendPersistent,
		},
		{
			name:           "高热平稳",
			topic:          model.TrendingTopic{MentionCount: 100, PriorMentionCount: 100, SearchCount: 100, RelatedNewsCount: 50},
			wantVelocity:   0,
			wantEngagement: 1,
			wantType:       model.TrendHot,
		},
		{
			name:           "低热长尾",
			topic:          model.TrendingTopic{MentionCount: 11, PriorMentionCount: 10},
			wantVelocity:   0.1,
			wantEngagement: 0.5 * 0.11,
			wantType:       model.TrendPersistent,
		},
		{
			name:           "冷启动无上轮快照",
			topic:          model.TrendingTopic{MentionCount: 2, PriorMentionCount: 0},
			wantVelocity:   2,
			wantEngagement: 0.5 * 0.02,
			wantType:       model.TrendRising,
		},
	}

	svc := NewTrendingService(newFakeTrendingRepo(), testTrendingConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic := tt.topic
			svc.scoreTopic(&topic)
			require.InDelta(t, tt.wantVelocity, topic.VelocityScore, 1e-9)
			require.InDelta(t, tt.wantEngagement, topic.EngagementScore, 1e-9)
			require.Equal(t, tt.wantType, topic.TrendType)

			// 同样输入再算一遍结果一致
			again := tt.topic
			svc.scoreTopic(&again)
			require.Equal(t, topic.VelocityScore, again.VelocityScore)
			require.Equal(t, topic.EngagementScore, again.EngagementScore)
		})
	}
}

// TestScoreTopic_Deactivation 连续低速若干轮后话题下线，速度回升则清零计数
func TestScoreTopic_Deactivation(t *testing.T) {
	svc := NewTrendingService(newFakeTrendingRepo(), testTrendingConfig())

	topic := &model.TrendingTopic{MentionCount: 10, PriorMentionCount: 10, IsActive: true}
	for i := 0; i < 2; i++ {
		svc.scoreTopic(topic)
		require.True(t, topic.IsActive)
	}
	require.Equal(t, 2, topic.LowVelocityCycles)

	// 速度回升，计数清零
	topic.MentionCount = 30
	svc.scoreTopic(topic)
	require.Zero(t, topic.LowVelocityCycles)
	require.True(t, topic.IsActive)

	// 再连续三轮低速后下线
	topic.MentionCount = 10
	topic.PriorMentionCount = 10
	for i := 0; i < 3; i++ {
		svc.scoreTopic(topic)
	}
	require.False(t, topic.IsActive)
}

// TestNormalize 归一化截断到 [0,1]，非法基准返回 0
func TestNormalize(t *testing.T) {
	require.Zero(t, normalize(10, 0))
	require.Zero(t, normalize(0, 100))
	require.Zero(t, normalize(-5, 100))
	require.InDelta(t, 0.5, normalize(50, 100), 1e-9)
	require.InDelta(t, 1.0, normalize(200, 100), 1e-9)
}

// TestRegisterTopic 空关键词报错，趋势类型缺省为 rising
func TestRegisterTopic(t *testing.T) {
	repo := newFakeTrendingRepo()
	svc := NewTrendingService(repo, testTrendingConfig())
	ctx := context.Background()

	require.ErrorIs(t, svc.RegisterTopic(ctx, &model.TrendingTopic{}), ErrParamInvalid)

	topic := &model.TrendingTopic{Keyword: "人工智能"}
	require.NoError(t, svc.RegisterTopic(ctx, topic))
	require.Equal(t, model.TrendRising, topic.TrendType)
	require.Len(t, repo.upserted, 1)
}

// TestRecordMention 空关键词报错，计数透传到仓储
func TestRecordMention(t *testing.T) {
	repo := newFakeTrendingRepo()
	svc := NewTrendingService(repo, testTrendingConfig())
	ctx := context.Background()

	require.ErrorIs(t, svc.RecordMention(ctx, "", 1, 0, 0), ErrParamInvalid)

	require.NoError(t, svc.RecordMention(ctx, "人工智能", 3, 2, 1))
	require.Equal(t, [3]int64{3, 2, 1}, repo.mentions["人工智能"])
}

// TestCurrent_CacheMiss 缓存不可用时回源 MySQL
func TestCurrent_CacheMiss(t *testing.T) {
	repo := newFakeTrendingRepo()
	repo.active = []*model.TrendingTopic{{ID: 1, Keyword: "人工智能", IsActive: true}}
	svc := NewTrendingService(repo, testTrendingConfig())

	topics, err := svc.Current(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, topics, 1)
	require.Equal(t, "人工智能", topics[0].Keyword)
}

// TestTopicsFromCache 按缓存成员顺序回表；成员损坏或回表缺行时放弃缓存
func TestTopicsFromCache(t *testing.T) {
	repo := newFakeTrendingRepo()
	repo.active = []*model.TrendingTopic{
		{ID: 1, Keyword: "人工智能", IsActive: true},
		{ID: 2, Keyword: "新能源", IsActive: true},
	}
	svc := NewTrendingService(repo, testTrendingConfig())
	ctx := context.Background()

	topics, ok := svc.topicsFromCache(ctx, []string{"2:新能源", "1:人工智能"})
	require.True(t, ok)
	require.Len(t, topics, 2)
	require.Equal(t, uint64(2), topics[0].ID)
	require.Equal(t, uint64(1), topics[1].ID)

	_, ok = svc.topicsFromCache(ctx, []string{"乱码"})
	require.False(t, ok)

	// 缓存里的话题已下线，回表缺行
	_, ok = svc.topicsFromCache(ctx, []string{"99:不存在"})
	require.False(t, ok)
}

// TestRecomputeAll 打分落盘并滚动快照，下线话题不进缓存
func TestRecomputeAll(t *testing.T) {
	repo := newFakeTrendingRepo()
	repo.active = []*model.TrendingTopic{
		{ID: 1, Keyword: "人工智能", MentionCount: 25, PriorMentionCount: 10, IsActive: true},
		{ID: 2, Keyword: "过气话题", MentionCount: 5, PriorMentionCount: 5, IsActive: true, LowVelocityCycles: 2},
	}
	svc := NewTrendingService(repo, testTrendingConfig())

	require.NoError(t, svc.RecomputeAll(context.Background()))

	require.Len(t, repo.saved, 2)
	require.True(t, repo.saved[0].IsActive)
	require.False(t, repo.saved[1].IsActive)
}
