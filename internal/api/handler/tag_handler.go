package handler

import (
	"Meenews/internal/api/dto"
	"Meenews/internal/model"
	"Meenews/internal/pkg/response"
	"Meenews/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type TagHandler struct {
	tagSvc *service.TagService
}

func NewTagHandler(tagSvc *service.TagService) *TagHandler {
	return &TagHandler{
		tagSvc: tagSvc,
	}
}

// CreateTag 新建标签，管理员接口
func (s *TagHandler) CreateTag(c *gin.Context) {
	var req dto.CreateTagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	tag := &model.ContentTag{
		Name:        req.Name,
		TagType:     req.TagType,
		Description: req.Description,
	}
	if err := s.tagSvc.CreateTag(c.Request.Context(), tag); err != nil {
		response.Error(c, err)
		return
	}

	var result dto.TagDTO
	if err := copier.Copy(&result, tag); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListTags 标签字典
func (s *TagHandler) ListTags(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	tagType := c.Query("tag_type")

	tags, err := s.tagSvc.ListTags(c.Request.Context(), tagType, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	var list []*dto.TagDTO
	if err := copier.Copy(&list, tags); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// AttachTags 给内容打标，作者本人或管理员可操作
func (s *TagHandler) AttachTags(c *gin.Context) {
	userID := c.GetUint64("user_id")
	roles := c.GetStringSlice("roles")
	var req dto.AttachTagsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	attached, err := s.tagSvc.AttachTags(c.Request.Context(), req.ContentKind, req.ObjectID, service.TagAttachRequest{
		Names:        req.Names,
		Relevance:    req.Relevance,
		Confidence:   req.Confidence,
		IsAutoTagged: req.IsAutoTagged,
	}, userID, roles)
	if err != nil {
		response.Error(c, err)
		return
	}

	var list []*dto.TagDTO
	if err := copier.Copy(&list, attached); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// ListByTarget 内容的标签及关联属性，公开接口
func (s *TagHandler) ListByTarget(c *gin.Context) {
	kind := c.Param("kind")
	objectID, err := strconv.ParseUint(c.Param("object_id"), 10, 64)
	if err != nil || objectID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	views, err := s.tagSvc.ListByTarget(c.Request.Context(), kind, objectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	var list []*dto.TaggedTagDTO
	if err := copier.Copy(&list, views); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// DetachTag 摘除内容上的标签，作者本人或管理员可操作
func (s *TagHandler) DetachTag(c *gin.Context) {
	userID := c.GetUint64("user_id")
	roles := c.GetStringSlice("roles")
	kind := c.Param("kind")
	objectID, err := strconv.ParseUint(c.Param("object_id"), 10, 64)
	if err != nil || objectID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	tagID, err := strconv.ParseUint(c.Param("tag_id"), 10, 64)
	if err != nil || tagID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.tagSvc.DetachTag(c.Request.Context(), kind, objectID, tagID, userID, roles); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
