package job

import (
	"Meenews/internal/pkg/logger"
	"Meenews/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// TrendingJob 热点话题周期性重算
type TrendingJob struct {
	trendingSvc *service.TrendingService
}

func NewTrendingJob(trendingSvc *service.TrendingService) *TrendingJob {
	return &TrendingJob{trendingSvc: trendingSvc}
}

func (s *TrendingJob) Run() {
	traceID := "job-trending-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	if err := s.trendingSvc.RecomputeAll(ctx); err != nil {
		log.ErrorContext(ctx, "trending recompute error", "err", err)
		return
	}
	log.InfoContext(ctx, "trending recompute finished")
}
