package service

import (
	"Meenews/internal/model"
	"Meenews/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

// 未有任何审核记录时的当前状态
const ModerationStatusNone = "unmoderated"

var validModerationStatus = map[string]bool{
	model.ModerationPending:   true,
	model.ModerationApproved:  true,
	model.ModerationRejected:  true,
	model.ModerationFlagged:   true,
	model.ModerationReviewing: true,
	model.ModerationAppealing: true,
	model.ModerationRemoved:   true,
}

// ModerationService 审核流水：只追加，任意状态间可迁移
type ModerationService struct {
	content ContentResolver
	repo    repository.ModerationRepo
}

func NewModerationService(content ContentResolver, repo repository.ModerationRepo) *ModerationService {
	return &ModerationService{content: content, repo: repo}
}

// Submit 提交一条审核记录
func (s *ModerationService) Submit(ctx context.Context, record *model.ContentModeration) error {
	if !validModerationStatus[record.Status] {
		return ErrParamInvalid
	}
	if err := s.content.ResolveRef(ctx, record.ContentKind, record.ObjectID); err != nil {
		return err
	}
	return s.repo.CreateRecord(ctx, record)
}

// ModerationView 审核历史 + 当前状态
type ModerationView struct {
	CurrentStatus string                     `json:"current_status"`
	History       []*model.ContentModeration `json:"history"`
}

// History 审核历史，最新在前；无记录时状态为 unmoderated
func (s *ModerationService) History(ctx context.Context, kind string, objectID uint64, page, pageSize int) (*ModerationView, error) {
	if err := s.content.ResolveRef(ctx, kind, objectID); err != nil {
		return nil, err
	}

	limit, offset := normalizePage(page, pageSize)
	records, err := s.repo.ListHistory(ctx, kind, objectID, limit, offset)
	if err != nil {
		return nil, err
	}

	status := ModerationStatusNone
	latest, err := s.repo.LatestRecord(ctx, kind, objectID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	} else {
		status = latest.Status
	}

	return &ModerationView{CurrentStatus: status, History: records}, nil
}

// PendingCount 指定审核状态的积压数量
func (s *ModerationService) PendingCount(ctx context.Context, status string) (int64, error) {
	if !validModerationStatus[status] {
		return 0, ErrParamInvalid
	}
	return s.repo.CountPendingByStatus(ctx, status)
}

// CurrentStatus 当前审核状态
func (s *ModerationService) CurrentStatus(ctx context.Context, kind string, objectID uint64) (string, error) {
	if err := s.content.ResolveRef(ctx, kind, objectID); err != nil {
		return "", err
	}
	latest, err := s.repo.LatestRecord(ctx, kind, objectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ModerationStatusNone, nil
		}
		return "", err
	}
	return latest.Status, nil
}
