package repository

import (
	"Meenews/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepo interface {
	// GetOrCreate 画像不存在时创建空画像
	GetOrCreate(ctx context.Context, userID uint64) (*model.UserProfile, error)
	SaveInterests(ctx context.Context, userID uint64, interests map[string]float64) error
}

type ProfileRepoImpl struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepo {
	return &ProfileRepoImpl{db}
}

func (s *ProfileRepoImpl) GetOrCreate(ctx context.Context, userID uint64) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile = model.UserProfile{
		UserID:    userID,
		Interests: map[string]float64{},
	}
	// 并发创建时撞唯一键则读已有行
	createErr := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&profile).Error
	if createErr != nil {
		return nil, createErr
	}
	if profile.ID == 0 {
		if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
			return nil, err
		}
	}
	return &profile, nil
}

func (s *ProfileRepoImpl) SaveInterests(ctx context.Context, userID uint64, interests map[string]float64) error {
	return s.db.WithContext(ctx).Model(&model.UserProfile{}).
		Where("user_id = ?", userID).
		Update("interests", interests).Error
}
