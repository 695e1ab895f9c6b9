package repository

import (
	"Meenews/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrParentNotFound = errors.New("parent comment not found")

type CommentRepo interface {
	// CreateComment 创建评论；带 parent_id 时在同一事务内校验父评论并自增其 reply_count
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, commentID uint64) (*model.Comment, error)
	DeleteOwned(ctx context.Context, userID, commentID uint64) (int64, error)
	ListByTarget(ctx context.Context, kind string, objectID uint64, limit, offset int) ([]*model.Comment, error)
	ListReplies(ctx context.Context, parentID uint64, limit, offset int) ([]*model.Comment, error)
	CountByTarget(ctx context.Context, kind string, objectID uint64) (int64, error)
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db}
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if comment.ParentID != nil {
			var parent model.Comment
			err := tx.Select("id", "content_kind", "object_id").
				Where("id = ? AND is_hidden = ?", *comment.ParentID, false).
				First(&parent).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrParentNotFound
				}
				return err
			}
			// 回复挂在父评论的目标内容下
			if parent.ContentKind != comment.ContentKind || parent.ObjectID != comment.ObjectID {
				return ErrParentNotFound
			}
		}

		if err := tx.Create(comment).Error; err != nil {
			return err
		}

		if comment.ParentID != nil {
			return tx.Model(&model.Comment{}).
				Where("id = ?", *comment.ParentID).
				Update("reply_count", gorm.Expr("reply_count + 1")).Error
		}
		return nil
	})
}

func (s *CommentRepoImpl) GetByID(ctx context.Context, commentID uint64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_hidden = ?", commentID, false).
		First(&comment).Error
	return &comment, err
}

// DeleteOwned 软删除自己的评论，返回受影响行数
func (s *CommentRepoImpl) DeleteOwned(ctx context.Context, userID, commentID uint64) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ? AND user_id = ? AND is_hidden = ?", commentID, userID, false).
		Update("is_hidden", true)
	return result.RowsAffected, result.Error
}

func (s *CommentRepoImpl) ListByTarget(ctx context.Context, kind string, objectID uint64, limit, offset int) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Where("content_kind = ? AND object_id = ? AND parent_id IS NULL AND is_hidden = ?", kind, objectID, false).
		Order("is_pinned DESC, created_at DESC").
		Limit(limit).Offset(offset).
		Find(&comments).Error
	return comments, err
}

func (s *CommentRepoImpl) ListReplies(ctx context.Context, parentID uint64, limit, offset int) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Where("parent_id = ? AND is_hidden = ?", parentID, false).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&comments).Error
	return comments, err
}

func (s *CommentRepoImpl) CountByTarget(ctx context.Context, kind string, objectID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("content_kind = ? AND object_id = ? AND is_hidden = ?", kind, objectID, false).
		Count(&count).Error
	return count, err
}
