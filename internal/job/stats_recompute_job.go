package job

import (
	"Meenews/internal/pkg/consts"
	"Meenews/internal/pkg/logger"
	"Meenews/internal/pkg/redis"
	"Meenews/internal/service"
	"context"
	log "log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// StatsRecomputeJob 从脏集合取出有过互动的内容，重算统计派生列
type StatsRecomputeJob struct {
	statsSvc *service.StatsService
}

func NewStatsRecomputeJob(statsSvc *service.StatsService) *StatsRecomputeJob {
	return &StatsRecomputeJob{statsSvc: statsSvc}
}

func (s *StatsRecomputeJob) Run() {
	traceID := "job-stats-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.StatsDirtyKey + ":processing"
	if err := redis.Rename(ctx, consts.StatsDirtyKey, processingKey); err != nil {
		// 脏集合为空时 RENAME 报错，本轮无事可做
		return
	}

	members, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get stats dirty set error", "err", err)
		return
	}

	for _, member := range members {
		kind, objectID, ok := parseDirtyMember(member)
		if !ok {
			log.WarnContext(ctx, "invalid dirty member", "member", member)
			continue
		}
		if err := s.statsSvc.RecomputeDerived(ctx, kind, objectID); err != nil {
			log.ErrorContext(ctx, "recompute stats error", "kind", kind, "object_id", objectID, "err", err)
		}
	}

	if err := redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete processing set error", "err", err)
	}
	log.InfoContext(ctx, "stats recompute finished", "count", len(members))
}

// parseDirtyMember 解析 "kind:id" 形式的脏集合成员
func parseDirtyMember(member string) (string, uint64, bool) {
	idx := strings.LastIndex(member, ":")
	if idx <= 0 || idx == len(member)-1 {
		return "", 0, false
	}
	objectID, err := strconv.ParseUint(member[idx+1:], 10, 64)
	if err != nil || objectID == 0 {
		return "", 0, false
	}
	return member[:idx], objectID, true
}
