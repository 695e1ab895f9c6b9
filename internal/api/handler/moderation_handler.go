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

type ModerationHandler struct {
	moderationSvc *service.ModerationService
}

func NewModerationHandler(moderationSvc *service.ModerationService) *ModerationHandler {
	return &ModerationHandler{
		moderationSvc: moderationSvc,
	}
}

// Submit 提交审核记录，审核/管理员接口
func (s *ModerationHandler) Submit(c *gin.Context) {
	moderatorID := c.GetUint64("user_id")
	var req dto.ModerationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	record := &model.ContentModeration{
		ContentKind: req.ContentKind,
		ObjectID:    req.ObjectID,
		Status:      req.Status,
		Priority:    req.Priority,
		ModeratorID: moderatorID,
		Reason:      req.Reason,
		AiScore:     req.AiScore,
		AiFlags:     req.AiFlags,
	}
	if err := s.moderationSvc.Submit(c.Request.Context(), record); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// History 审核历史（最新在前）与当前状态
func (s *ModerationHandler) History(c *gin.Context) {
	kind := c.Param("kind")
	objectID, err := strconv.ParseUint(c.Param("object_id"), 10, 64)
	if err != nil || objectID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	view, err := s.moderationSvc.History(c.Request.Context(), kind, objectID, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	var history []*dto.ModerationRecordDTO
	if err := copier.Copy(&history, view.History); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ModerationHistoryDTO{CurrentStatus: view.CurrentStatus, History: history})
}

// PendingCount 审核积压数量，status 缺省统计 pending
func (s *ModerationHandler) PendingCount(c *gin.Context) {
	status := c.DefaultQuery("status", model.ModerationPending)

	count, err := s.moderationSvc.PendingCount(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"status": status, "count": count})
}
