package kafka

import (
	"Meenews/internal/model"
	"Meenews/internal/repository"
	"Meenews/internal/service"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// InteractionEvent 客户端 SDK 批量上报 / 离线导入的交互事件
type InteractionEvent struct {
	UserID        uint64 `json:"user_id"`
	ContentKind   string `json:"content_kind"`
	ObjectID      uint64 `json:"object_id"`
	Action        string `json:"action"` // like/dislike/unlike/favorite/share/play/view
	PlayDuration  int64  `json:"play_duration,omitempty"`
	TotalDuration int64  `json:"total_duration,omitempty"`
	Platform      string `json:"platform,omitempty"`
	SessionID     string `json:"session_id,omitempty"`
}

// InteractionEventsHandler 把离线交互事件回放进同一套互动台账，
// 幂等语义与请求链路一致，不会重复计数
type InteractionEventsHandler struct {
	interactionSvc *service.InteractionService
	statsSvc       *service.StatsService
}

func NewInteractionEventsHandler(interactionSvc *service.InteractionService, statsSvc *service.StatsService) *InteractionEventsHandler {
	return &InteractionEventsHandler{
		interactionSvc: interactionSvc,
		statsSvc:       statsSvc,
	}
}

func (s *InteractionEventsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("interaction events consumer setup")
	return nil
}

func (s *InteractionEventsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("interaction events consumer cleanup")
	return nil
}

func (s *InteractionEventsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("interaction events consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("interaction events process batch error", "err", err)
		return err
	}
	return nil
}

func (s *InteractionEventsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event InteractionEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		// 坏消息不重试，记日志后跳过
		log.ErrorContext(ctx, "unmarshal interaction event error", "err", err)
		return nil
	}

	err := s.dispatch(ctx, &event)
	if err == nil {
		return nil
	}
	// 业务性失败（目标不存在、重复操作等）重试也不会成功，跳过
	if _, known := service.ErrorMap[err]; known {
		log.WarnContext(ctx, "skip interaction event", "action", event.Action, "err", err)
		return nil
	}
	return err
}

func (s *InteractionEventsHandler) dispatch(ctx context.Context, event *InteractionEvent) error {
	switch event.Action {
	case "like":
		return s.interactionSvc.Like(ctx, event.UserID, event.ContentKind, event.ObjectID, true)
	case "dislike":
		return s.interactionSvc.Like(ctx, event.UserID, event.ContentKind, event.ObjectID, false)
	case "unlike":
		return s.interactionSvc.Unlike(ctx, event.UserID, event.ContentKind, event.ObjectID)
	case "favorite":
		return s.interactionSvc.Favorite(ctx, &model.Favorite{
			UserID:      event.UserID,
			ContentKind: event.ContentKind,
			ObjectID:    event.ObjectID,
		})
	case "share":
		return s.interactionSvc.Share(ctx, event.UserID, event.ContentKind, event.ObjectID, event.Platform)
	case "play":
		return s.interactionSvc.RecordPlay(ctx, &model.PlayHistory{
			UserID:        event.UserID,
			ContentKind:   event.ContentKind,
			ObjectID:      event.ObjectID,
			PlayDuration:  event.PlayDuration,
			TotalDuration: event.TotalDuration,
			PlaySource:    "offline_import",
			SessionID:     event.SessionID,
		})
	case "view":
		return s.statsSvc.Apply(ctx, event.UserID, event.ContentKind, event.ObjectID, repository.StatsDelta{View: 1})
	default:
		log.WarnContext(ctx, "unknown interaction action", "action", event.Action)
		return nil
	}
}
