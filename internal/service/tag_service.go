package service

import (
	"Meenews/internal/model"
	"Meenews/internal/pkg/consts"
	"Meenews/internal/repository"
	"context"
	"errors"
)

// TagService 标签字典与内容打标
type TagService struct {
	content ContentResolver
	repo    repository.TagRepo
}

func NewTagService(content ContentResolver, repo repository.TagRepo) *TagService {
	return &TagService{content: content, repo: repo}
}

// CreateTag 新建标签，同名已存在时报错
func (s *TagService) CreateTag(ctx context.Context, tag *model.ContentTag) error {
	if tag.Name == "" {
		return ErrParamInvalid
	}
	if tag.TagType == "" {
		tag.TagType = model.TagTypeKeyword
	}

	created, err := s.repo.CreateTag(ctx, tag)
	if err != nil {
		return err
	}
	if !created {
		return ErrTagExist
	}
	return nil
}

func (s *TagService) ListTags(ctx context.Context, tagType string, page, pageSize int) ([]*model.ContentTag, error) {
	limit, offset := normalizePage(page, pageSize)
	return s.repo.ListTags(ctx, tagType, limit, offset)
}

// checkTagCapability 打标/摘标要求作者本人或管理员；
// 无作者概念的内容（如抓取的资讯）只有管理员能动
func (s *TagService) checkTagCapability(ctx context.Context, kind string, objectID uint64, userID uint64, roles []string) error {
	for _, role := range roles {
		if role == consts.RoleAdmin {
			return nil
		}
	}
	owner, err := s.content.OwnerOf(ctx, kind, objectID)
	if err != nil {
		return err
	}
	if owner == 0 || owner != userID {
		return ErrForbidden
	}
	return nil
}

// TagAttachRequest 一次打标请求，零值的分数落库时按 1 处理
type TagAttachRequest struct {
	Names        []string
	Relevance    float64
	Confidence   float64
	IsAutoTagged bool
}

// AttachTags 给内容打标，全有或全无：任一标签不存在整体失败
func (s *TagService) AttachTags(ctx context.Context, kind string, objectID uint64, req TagAttachRequest, userID uint64, roles []string) ([]*model.ContentTag, error) {
	if len(req.Names) == 0 || req.Relevance < 0 || req.Relevance > 1 || req.Confidence < 0 || req.Confidence > 1 {
		return nil, ErrParamInvalid
	}
	if err := s.content.ResolveRef(ctx, kind, objectID); err != nil {
		return nil, err
	}
	if err := s.checkTagCapability(ctx, kind, objectID, userID, roles); err != nil {
		return nil, err
	}

	relevance := req.Relevance
	if relevance == 0 {
		relevance = 1
	}
	confidence := req.Confidence
	if confidence == 0 {
		confidence = 1
	}

	attached, err := s.repo.AttachTags(ctx, kind, objectID, repository.TagAttachment{
		Names:        req.Names,
		Relevance:    relevance,
		Confidence:   confidence,
		IsAutoTagged: req.IsAutoTagged,
		TaggedBy:     userID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrTagMissing) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return attached, nil
}

// ListByTarget 内容的标签及关联属性，公开接口
func (s *TagService) ListByTarget(ctx context.Context, kind string, objectID uint64) ([]*repository.ContentTagView, error) {
	if err := s.content.ResolveRef(ctx, kind, objectID); err != nil {
		return nil, err
	}
	return s.repo.ListByTarget(ctx, kind, objectID)
}

// DetachTag 摘除内容上的标签
func (s *TagService) DetachTag(ctx context.Context, kind string, objectID uint64, tagID uint64, userID uint64, roles []string) error {
	if err := s.content.ResolveRef(ctx, kind, objectID); err != nil {
		return err
	}
	if err := s.checkTagCapability(ctx, kind, objectID, userID, roles); err != nil {
		return err
	}
	affected, err := s.repo.DetachTag(ctx, kind, objectID, tagID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTagNotFound
	}
	return nil
}
