package repository

import (
	"Meenews/internal/model"
	"context"

	"gorm.io/gorm"
)

type ModerationRepo interface {
	CreateRecord(ctx context.Context, record *model.ContentModeration) error
	// ListHistory 审核历史，最新在前
	ListHistory(ctx context.Context, kind string, objectID uint64, limit, offset int) ([]*model.ContentModeration, error)
	// LatestRecord 当前状态即最新一条记录
	LatestRecord(ctx context.Context, kind string, objectID uint64) (*model.ContentModeration, error)
	CountPendingByStatus(ctx context.Context, status string) (int64, error)
}

type ModerationRepoImpl struct {
	db *gorm.DB
}

func NewModerationRepo(db *gorm.DB) ModerationRepo {
	return &ModerationRepoImpl{db}
}

func (s *ModerationRepoImpl) CreateRecord(ctx context.Context, record *model.ContentModeration) error {
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *ModerationRepoImpl) ListHistory(ctx context.Context, kind string, objectID uint64, limit, offset int) ([]*model.ContentModeration, error) {
	var records []*model.ContentModeration
	err := s.db.WithContext(ctx).
		Where("content_kind = ? AND object_id = ?", kind, objectID).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&records).Error
	return records, err
}

func (s *ModerationRepoImpl) LatestRecord(ctx context.Context, kind string, objectID uint64) (*model.ContentModeration, error) {
	var record model.ContentModeration
	err := s.db.WithContext(ctx).
		Where("content_kind = ? AND object_id = ?", kind, objectID).
		Order("created_at DESC, id DESC").
		First(&record).Error
	return &record, err
}

func (s *ModerationRepoImpl) CountPendingByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ContentModeration{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
