package service

import (
	"Meenews/internal/model"
	"Meenews/internal/repository"
	"context"
	"sort"
)

// ProfileWeightSource 按用户兴趣权重给最新资讯打分的默认候选源。
// 同输入同输出，分数 = 类目兴趣权重，无画像时退化为 0 分按时间序
type ProfileWeightSource struct {
	newsRepo    repository.NewsRepo
	profileRepo repository.ProfileRepo
}

func NewProfileWeightSource(newsRepo repository.NewsRepo, profileRepo repository.ProfileRepo) *ProfileWeightSource {
	return &ProfileWeightSource{newsRepo: newsRepo, profileRepo: profileRepo}
}

func (s *ProfileWeightSource) Name() string {
	return "profile_weight"
}

func (s *ProfileWeightSource) Candidates(ctx context.Context, userID uint64, count int) ([]Candidate, error) {
	profile, err := s.profileRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 候选池取近期资讯，规模放大后再截断
	pool, err := s.newsRepo.ListPublished(ctx, "", count*5, 0)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(pool))
	for _, news := range pool {
		score := profile.Interests[news.Category]
		reasons := []string{"latest"}
		if score > 0 {
			reasons = []string{"interest:" + news.Category}
		}
		candidates = append(candidates, Candidate{
			ContentKind: model.KindNews,
			ObjectID:    news.ID,
			Score:       score,
			Reasons:     reasons,
		})
	}

	// 稳定排序：分数降序，同分保持时间序
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > count {
		candidates = candidates[:count]
	}
	return candidates, nil
}
