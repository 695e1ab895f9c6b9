package repository

import (
	"Meenews/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrTagMissing = errors.New("tag not found")

// TagAttachment 一次打标的标签名和关联属性
type TagAttachment struct {
	Names        []string
	Relevance    float64
	Confidence   float64
	IsAutoTagged bool
	TaggedBy     uint64
}

// ContentTagView 标签及其在具体内容上的关联属性
type ContentTagView struct {
	ID           uint64  `json:"id"`
	Name         string  `json:"name"`
	TagType      string  `json:"tag_type"`
	UsageCount   int64   `json:"usage_count"`
	Relevance    float64 `json:"relevance"`
	Confidence   float64 `json:"confidence"`
	IsAutoTagged bool    `json:"is_auto_tagged"`
	TaggedBy     uint64  `json:"tagged_by"`
}

type TagRepo interface {
	CreateTag(ctx context.Context, tag *model.ContentTag) (bool, error)
	GetTagByName(ctx context.Context, name string) (*model.ContentTag, error)
	ListTags(ctx context.Context, tagType string, limit, offset int) ([]*model.ContentTag, error)

	// AttachTags 全有或全无：任一标签不存在则整体回滚；只有新建的关联会自增 usage_count
	AttachTags(ctx context.Context, kind string, objectID uint64, attachment TagAttachment) ([]*model.ContentTag, error)
	ListByTarget(ctx context.Context, kind string, objectID uint64) ([]*ContentTagView, error)
	DetachTag(ctx context.Context, kind string, objectID uint64, tagID uint64) (int64, error)
}

type TagRepoImpl struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) TagRepo {
	return &TagRepoImpl{db}
}

func (s *TagRepoImpl) CreateTag(ctx context.Context, tag *model.ContentTag) (bool, error) {
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(tag)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (s *TagRepoImpl) GetTagByName(ctx context.Context, name string) (*model.ContentTag, error) {
	var tag model.ContentTag
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error
	return &tag, err
}

func (s *TagRepoImpl) ListTags(ctx context.Context, tagType string, limit, offset int) ([]*model.ContentTag, error) {
	var tags []*model.ContentTag
	query := s.db.WithContext(ctx).Model(&model.ContentTag{})
	if tagType != "" {
		query = query.Where("tag_type = ?", tagType)
	}
	err := query.Order("usage_count DESC").
		Limit(limit).Offset(offset).
		Find(&tags).Error
	return tags, err
}

func (s *TagRepoImpl) AttachTags(ctx context.Context, kind string, objectID uint64, attachment TagAttachment) ([]*model.ContentTag, error) {
	var attached []*model.ContentTag

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, name := range attachment.Names {
			var tag model.ContentTag
			if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrTagMissing
				}
				return err
			}

			relation := &model.ContentTagRelation{
				ContentKind:  kind,
				ObjectID:     objectID,
				TagID:        tag.ID,
				Relevance:    attachment.Relevance,
				Confidence:   attachment.Confidence,
				IsAutoTagged: attachment.IsAutoTagged,
				TaggedBy:     attachment.TaggedBy,
			}
			result := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "content_kind"}, {Name: "object_id"}, {Name: "tag_id"}},
				DoNothing: true,
			}).Create(relation)
			if result.Error != nil {
				return result.Error
			}

			// 关联已存在时不重复计数
			if result.RowsAffected == 1 {
				if err := tx.Model(&model.ContentTag{}).
					Where("id = ?", tag.ID).
					Update("usage_count", gorm.Expr("usage_count + 1")).Error; err != nil {
					return err
				}
			}
			attached = append(attached, &tag)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return attached, nil
}

func (s *TagRepoImpl) ListByTarget(ctx context.Context, kind string, objectID uint64) ([]*ContentTagView, error) {
	var views []*ContentTagView
	err := s.db.WithContext(ctx).Model(&model.ContentTag{}).
		Select(`content_tags.id, content_tags.name, content_tags.tag_type, content_tags.usage_count,
			content_tag_relations.relevance, content_tag_relations.confidence,
			content_tag_relations.is_auto_tagged, content_tag_relations.tagged_by`).
		Joins("JOIN content_tag_relations ON content_tag_relations.tag_id = content_tags.id").
		Where("content_tag_relations.content_kind = ? AND content_tag_relations.object_id = ?", kind, objectID).
		Order("content_tag_relations.relevance DESC").
		Scan(&views).Error
	return views, err
}

func (s *TagRepoImpl) DetachTag(ctx context.Context, kind string, objectID uint64, tagID uint64) (int64, error) {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("content_kind = ? AND object_id = ? AND tag_id = ?", kind, objectID, tagID).
			Delete(&model.ContentTagRelation{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		if affected == 1 {
			return tx.Model(&model.ContentTag{}).
				Where("id = ? AND usage_count > 0", tagID).
				Update("usage_count", gorm.Expr("usage_count - 1")).Error
		}
		return nil
	})
	return affected, err
}
