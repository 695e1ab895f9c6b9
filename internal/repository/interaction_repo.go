package repository

import (
	"Meenews/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InteractionRepo interface {
	// UpsertLike 幂等写入点赞/点踩，返回本次是否新建了行
	UpsertLike(ctx context.Context, like *model.Like) (bool, error)
	DeleteLike(ctx context.Context, userID uint64, kind string, objectID uint64) (int64, error)
	GetLike(ctx context.Context, userID uint64, kind string, objectID uint64) (*model.Like, error)

	// UpsertFavorite 幂等收藏，已存在时覆盖收藏夹等可变字段，返回本次是否新建
	UpsertFavorite(ctx context.Context, favorite *model.Favorite) (bool, error)
	FindFavoritesByIDs(ctx context.Context, userID uint64, ids []uint64) ([]*model.Favorite, error)
	BatchDeleteFavorites(ctx context.Context, userID uint64, ids []uint64) (int64, error)
	ListFavorites(ctx context.Context, userID uint64, folderName string, limit, offset int) ([]*model.Favorite, error)
	CountFavorites(ctx context.Context, userID uint64, folderName string) (int64, error)

	CreateShare(ctx context.Context, share *model.Share) error
	CreateReport(ctx context.Context, report *model.Report) error
	CountReports(ctx context.Context, kind string, objectID uint64) (int64, error)

	CreatePlayHistory(ctx context.Context, history *model.PlayHistory) error
	ListPlayHistory(ctx context.Context, userID uint64, limit, offset int) ([]*model.PlayHistory, error)
	BatchDeletePlayHistory(ctx context.Context, userID uint64, ids []uint64) (int64, error)
	SumPlayDuration(ctx context.Context, userID uint64) (int64, error)
}

type InteractionRepoImpl struct {
	db *gorm.DB
}

func NewInteractionRepo(db *gorm.DB) InteractionRepo {
	return &InteractionRepoImpl{db}
}

func (s *InteractionRepoImpl) UpsertLike(ctx context.Context, like *model.Like) (bool, error) {
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "content_kind"}, {Name: "object_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"is_like":    like.IsLike,
			"updated_at": time.Now(),
		}),
	}).Create(like)
	if result.Error != nil {
		return false, result.Error
	}
	// MySQL 的 ON DUPLICATE KEY：新插入 affected=1，更新 affected=2
	return result.RowsAffected == 1, nil
}

func (s *InteractionRepoImpl) DeleteLike(ctx context.Context, userID uint64, kind string, objectID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND content_kind = ? AND object_id = ?", userID, kind, objectID).
		Delete(&model.Like{})
	return result.RowsAffected, result.Error
}

func (s *InteractionRepoImpl) GetLike(ctx context.Context, userID uint64, kind string, objectID uint64) (*model.Like, error) {
	var like model.Like
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND content_kind = ? AND object_id = ?", userID, kind, objectID).
		First(&like).Error
	return &like, err
}

func (s *InteractionRepoImpl) UpsertFavorite(ctx context.Context, favorite *model.Favorite) (bool, error) {
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "content_kind"}, {Name: "object_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"folder_name", "tags", "notes", "is_private", "updated_at"}),
	}).Create(favorite)
	if result.Error != nil {
		return false, result.Error
	}
	// MySQL 的 ON DUPLICATE KEY：1 新建，2 更新，0 未变
	return result.RowsAffected == 1, nil
}

func (s *InteractionRepoImpl) FindFavoritesByIDs(ctx context.Context, userID uint64, ids []uint64) ([]*model.Favorite, error) {
	var favorites []*model.Favorite
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&favorites).Error
	return favorites, err
}

func (s *InteractionRepoImpl) BatchDeleteFavorites(ctx context.Context, userID uint64, ids []uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Delete(&model.Favorite{})
	return result.RowsAffected, result.Error
}

func (s *InteractionRepoImpl) ListFavorites(ctx context.Context, userID uint64, folderName string, limit, offset int) ([]*model.Favorite, error) {
	var favorites []*model.Favorite
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if folderName != "" {
		query = query.Where("folder_name = ?", folderName)
	}
	err := query.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&favorites).Error
	return favorites, err
}

func (s *InteractionRepoImpl) CountFavorites(ctx context.Context, userID uint64, folderName string) (int64, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&model.Favorite{}).Where("user_id = ?", userID)
	if folderName != "" {
		query = query.Where("folder_name = ?", folderName)
	}
	err := query.Count(&count).Error
	return count, err
}

func (s *InteractionRepoImpl) CreateShare(ctx context.Context, share *model.Share) error {
	return s.db.WithContext(ctx).Create(share).Error
}

func (s *InteractionRepoImpl) CreateReport(ctx context.Context, report *model.Report) error {
	return s.db.WithContext(ctx).Create(report).Error
}

func (s *InteractionRepoImpl) CountReports(ctx context.Context, kind string, objectID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Report{}).
		Where("content_kind = ? AND object_id = ?", kind, objectID).
		Count(&count).Error
	return count, err
}

func (s *InteractionRepoImpl) CreatePlayHistory(ctx context.Context, history *model.PlayHistory) error {
	return s.db.WithContext(ctx).Create(history).Error
}

func (s *InteractionRepoImpl) ListPlayHistory(ctx context.Context, userID uint64, limit, offset int) ([]*model.PlayHistory, error) {
	var histories []*model.PlayHistory
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&histories).Error
	return histories, err
}

func (s *InteractionRepoImpl) BatchDeletePlayHistory(ctx context.Context, userID uint64, ids []uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Delete(&model.PlayHistory{})
	return result.RowsAffected, result.Error
}

func (s *InteractionRepoImpl) SumPlayDuration(ctx context.Context, userID uint64) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.PlayHistory{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(play_duration), 0)").
		Scan(&total).Error
	return total, err
}
