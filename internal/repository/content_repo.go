package repository

import (
	"Meenews/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// ContentStore 单一内容类型的存在性与归属校验
type ContentStore interface {
	Exists(ctx context.Context, objectID uint64) (bool, error)
	// OwnerID 返回内容作者；无作者概念的类型（如抓取的资讯）返回 0
	OwnerID(ctx context.Context, objectID uint64) (uint64, error)
}

// ContentRegistry 多态内容注册表，kind -> 对应表的 store
type ContentRegistry struct {
	stores map[string]ContentStore
}

func NewContentRegistry(db *gorm.DB) *ContentRegistry {
	return &ContentRegistry{
		stores: map[string]ContentStore{
			model.KindArticle: &tableStore{db: db, ownerColumn: "author_id", model: func() interface{} { return &model.Article{} }},
			model.KindVideo:   &tableStore{db: db, ownerColumn: "author_id", model: func() interface{} { return &model.VideoContent{} }},
			model.KindAudio:   &tableStore{db: db, ownerColumn: "author_id", model: func() interface{} { return &model.AudioContent{} }},
			model.KindNews:    &tableStore{db: db, model: func() interface{} { return &model.RawNews{} }},
			model.KindComment: &tableStore{db: db, ownerColumn: "user_id", model: func() interface{} { return &model.Comment{} }},
		},
	}
}

// Lookup 按内容类型取 store，未注册的类型返回 false
func (s *ContentRegistry) Lookup(kind string) (ContentStore, bool) {
	store, ok := s.stores[kind]
	return store, ok
}

type tableStore struct {
	db          *gorm.DB
	ownerColumn string // 空表示该类型没有作者
	model       func() interface{}
}

func (s *tableStore) Exists(ctx context.Context, objectID uint64) (bool, error) {
	err := s.db.WithContext(ctx).
		Select("id").
		Where("id = ?", objectID).
		First(s.model()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *tableStore) OwnerID(ctx context.Context, objectID uint64) (uint64, error) {
	if s.ownerColumn == "" {
		return 0, nil
	}
	var owner uint64
	err := s.db.WithContext(ctx).
		Model(s.model()).
		Select(s.ownerColumn).
		Where("id = ?", objectID).
		Scan(&owner).Error
	return owner, err
}

type NewsRepo interface {
	GetByID(ctx context.Context, id uint64) (*model.RawNews, error)
	ListPublished(ctx context.Context, category string, limit, offset int) ([]*model.RawNews, error)
	CountPublished(ctx context.Context, category string) (int64, error)
}

type NewsRepoImpl struct {
	db *gorm.DB
}

func NewNewsRepo(db *gorm.DB) NewsRepo {
	return &NewsRepoImpl{db}
}

func (s *NewsRepoImpl) GetByID(ctx context.Context, id uint64) (*model.RawNews, error) {
	var news model.RawNews
	err := s.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, "published").
		First(&news).Error
	return &news, err
}

func (s *NewsRepoImpl) ListPublished(ctx context.Context, category string, limit, offset int) ([]*model.RawNews, error) {
	var list []*model.RawNews
	query := s.db.WithContext(ctx).Where("status = ?", "published")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Order("published_at DESC").
		Limit(limit).Offset(offset).
		Find(&list).Error
	return list, err
}

func (s *NewsRepoImpl) CountPublished(ctx context.Context, category string) (int64, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&model.RawNews{}).Where("status = ?", "published")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Count(&count).Error
	return count, err
}
