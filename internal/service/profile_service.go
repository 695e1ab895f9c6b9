package service

import (
	"Meenews/internal/model"
	"Meenews/internal/repository"
	"context"
)

// ProfileService 用户兴趣画像的确定性更新
type ProfileService struct {
	repo repository.ProfileRepo
}

func NewProfileService(repo repository.ProfileRepo) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) Get(ctx context.Context, userID uint64) (*model.UserProfile, error) {
	return s.repo.GetOrCreate(ctx, userID)
}

// ApplyInterestDelta 按显式增量更新兴趣权重并截断到 [0,1]，
// 同样的输入总产生同样的画像
func (s *ProfileService) ApplyInterestDelta(ctx context.Context, userID uint64, deltas map[string]float64) (*model.UserProfile, error) {
	if len(deltas) == 0 {
		return nil, ErrParamInvalid
	}

	profile, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.Interests == nil {
		profile.Interests = map[string]float64{}
	}

	for category, delta := range deltas {
		value := profile.Interests[category] + delta
		if value > 1 {
			value = 1
		}
		if value < 0 {
			value = 0
		}
		profile.Interests[category] = value
	}

	if err := s.repo.SaveInterests(ctx, userID, profile.Interests); err != nil {
		return nil, err
	}
	return profile, nil
}
