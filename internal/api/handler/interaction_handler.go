package handler

import (
	"Meenews/internal/api/dto"
	"Meenews/internal/model"
	"Meenews/internal/pkg/response"
	"Meenews/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type InteractionHandler struct {
	interactionSvc *service.InteractionService
}

func NewInteractionHandler(interactionSvc *service.InteractionService) *InteractionHandler {
	return &InteractionHandler{
		interactionSvc: interactionSvc,
	}
}

// Like 点赞/点踩内容
func (s *InteractionHandler) Like(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.LikeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.interactionSvc.Like(c.Request.Context(), userID, req.ContentKind, req.ObjectID, *req.IsLike); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Unlike 取消点赞/点踩
func (s *InteractionHandler) Unlike(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.UnlikeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.interactionSvc.Unlike(c.Request.Context(), userID, req.ContentKind, req.ObjectID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// LikeStatus 查询当前用户对目标的点赞状态
func (s *InteractionHandler) LikeStatus(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var query dto.ContentRefDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	status, err := s.interactionSvc.LikeStatus(c.Request.Context(), userID, query.ContentKind, query.ObjectID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.LikeStatusDTO{Exists: status.Exists, IsLike: status.IsLike})
}

// Favorite 收藏内容
func (s *InteractionHandler) Favorite(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.FavoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	favorite := &model.Favorite{
		UserID:      userID,
		ContentKind: req.ContentKind,
		ObjectID:    req.ObjectID,
		FolderName:  req.FolderName,
		Tags:        req.Tags,
		Notes:       req.Notes,
		IsPrivate:   req.IsPrivate,
	}
	if err := s.interactionSvc.Favorite(c.Request.Context(), favorite); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// BatchFavorite 批量收藏
func (s *InteractionHandler) BatchFavorite(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.BatchFavoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	favorites := make([]*model.Favorite, 0, len(req.Items))
	for _, item := range req.Items {
		favorites = append(favorites, &model.Favorite{
			UserID:      userID,
			ContentKind: item.ContentKind,
			ObjectID:    item.ObjectID,
			FolderName:  item.FolderName,
			Tags:        item.Tags,
			Notes:       item.Notes,
			IsPrivate:   item.IsPrivate,
		})
	}

	created, err := s.interactionSvc.BatchFavorite(c.Request.Context(), favorites)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.BatchResultDTO{Affected: int64(created)})
}

// BatchDeleteFavorites 批量取消收藏
func (s *InteractionHandler) BatchDeleteFavorites(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.BatchDeleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	affected, err := s.interactionSvc.BatchDeleteFavorites(c.Request.Context(), userID, req.IDs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.BatchResultDTO{Affected: affected})
}

// ListFavorites 收藏列表
func (s *InteractionHandler) ListFavorites(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	folderName := c.Query("folder_name")

	favorites, total, err := s.interactionSvc.ListFavorites(c.Request.Context(), userID, folderName, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	var list []*dto.FavoriteDTO
	if err := copier.Copy(&list, favorites); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.PageResult{List: list, Total: total, Page: query.Page, Size: query.PageSize})
}

// Share 分享内容
func (s *InteractionHandler) Share(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.ShareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.interactionSvc.Share(c.Request.Context(), userID, req.ContentKind, req.ObjectID, req.Platform); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Report 举报内容
func (s *InteractionHandler) Report(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.ReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.interactionSvc.Report(c.Request.Context(), userID, req.ContentKind, req.ObjectID, req.Reason, req.Description); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// RecordPlay 上报播放记录
func (s *InteractionHandler) RecordPlay(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.PlayHistoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	history := &model.PlayHistory{
		UserID:        userID,
		ContentKind:   req.ContentKind,
		ObjectID:      req.ObjectID,
		PlayDuration:  req.PlayDuration,
		TotalDuration: req.TotalDuration,
		PlaySource:    req.PlaySource,
		Device:        req.Device,
		Network:       req.Network,
		SessionID:     req.SessionID,
	}
	if err := s.interactionSvc.RecordPlay(c.Request.Context(), history); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ListPlayHistory 播放历史
func (s *InteractionHandler) ListPlayHistory(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	histories, err := s.interactionSvc.ListPlayHistory(c.Request.Context(), userID, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	var list []*dto.PlayHistoryDTO
	if err := copier.Copy(&list, histories); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// BatchDeletePlayHistory 批量删除播放记录
func (s *InteractionHandler) BatchDeletePlayHistory(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.BatchDeleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	affected, err := s.interactionSvc.BatchDeletePlayHistory(c.Request.Context(), userID, req.IDs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.BatchResultDTO{Affected: affected})
}

// TotalPlayDuration 累计播放时长
func (s *InteractionHandler) TotalPlayDuration(c *gin.Context) {
	userID := c.GetUint64("user_id")
	total, err := s.interactionSvc.TotalPlayDuration(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.TotalDurationDTO{TotalDuration: total})
}
