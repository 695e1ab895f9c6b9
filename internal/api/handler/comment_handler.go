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

type CommentHandler struct {
	interactionSvc *service.InteractionService
}

func NewCommentHandler(interactionSvc *service.InteractionService) *CommentHandler {
	return &CommentHandler{
		interactionSvc: interactionSvc,
	}
}

// Create 发评论/回复
func (s *CommentHandler) Create(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.CommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	comment := &model.Comment{
		UserID:      userID,
		ContentKind: req.ContentKind,
		ObjectID:    req.ObjectID,
		ParentID:    req.ParentID,
		Content:     req.Content,
		Emoji:       req.Emoji,
	}
	if err := s.interactionSvc.CreateComment(c.Request.Context(), comment); err != nil {
		response.Error(c, err)
		return
	}

	var result dto.CommentDTO
	if err := copier.Copy(&result, comment); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// List 目标内容的根评论
func (s *CommentHandler) List(c *gin.Context) {
	var ref dto.ContentRefDTO
	if err := c.ShouldBindQuery(&ref); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	comments, total, err := s.interactionSvc.ListComments(c.Request.Context(), ref.ContentKind, ref.ObjectID, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	var list []*dto.CommentDTO
	if err := copier.Copy(&list, comments); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.PageResult{List: list, Total: total, Page: query.Page, Size: query.PageSize})
}

// Replies 某条评论的回复列表
func (s *CommentHandler) Replies(c *gin.Context) {
	parentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || parentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	replies, err := s.interactionSvc.ListReplies(c.Request.Context(), parentID, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	var list []*dto.CommentDTO
	if err := copier.Copy(&list, replies); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// Delete 删除自己的评论
func (s *CommentHandler) Delete(c *gin.Context) {
	userID := c.GetUint64("user_id")
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.interactionSvc.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
