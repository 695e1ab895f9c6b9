package service

import (
	"Meenews/internal/model"
	"Meenews/internal/repository"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// fakeResolver 固定返回 err，nil 表示内容存在；owner 是内容作者，0 表示无作者
type fakeResolver struct {
	err      error
	owner    uint64
	ownerErr error
}

func (f *fakeResolver) ResolveRef(ctx context.Context, kind string, objectID uint64) error {
	return f.err
}

func (f *fakeResolver) OwnerOf(ctx context.Context, kind string, objectID uint64) (uint64, error) {
	return f.owner, f.ownerErr
}

type contentDeltaCall struct {
	kind     string
	objectID uint64
	statDate time.Time
	delta    repository.StatsDelta
}

type userDeltaCall struct {
	userID   uint64
	statDate time.Time
	delta    repository.StatsDelta
}

type fakeStatsRepo struct {
	contentCalls []contentDeltaCall
	userCalls    []userDeltaCall

	lifetime    *model.ContentInteractionStats
	daily       []*model.ContentInteractionStats
	seriesFrom  time.Time
	seriesTo    time.Time
	sumPlayTime int64
	recomputed  []string
}

func (f *fakeStatsRepo) ApplyContentDelta(ctx context.Context, kind string, objectID uint64, statDate time.Time, delta repository.StatsDelta) error {
	f.contentCalls = append(f.contentCalls, contentDeltaCall{kind: kind, objectID: objectID, statDate: statDate, delta: delta})
	return nil
}

func (f *fakeStatsRepo) ApplyUserDelta(ctx context.Context, userID uint64, statDate time.Time, delta repository.StatsDelta) error {
	f.userCalls = append(f.userCalls, userDeltaCall{userID: userID, statDate: statDate, delta: delta})
	return nil
}

func (f *fakeStatsRepo) GetContentStats(ctx context.Context, kind string, objectID uint64, statDate time.Time) (*model.ContentInteractionStats, error) {
	if f.lifetime == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.lifetime, nil
}

func (f *fakeStatsRepo) DailySeries(ctx context.Context, kind string, objectID uint64, from, to time.Time) ([]*model.ContentInteractionStats, error) {
	f.seriesFrom, f.seriesTo = from, to
	return f.daily, nil
}

func (f *fakeStatsRepo) GetUserStats(ctx context.Context, userID uint64, statDate time.Time) (*model.UserBehaviorStats, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStatsRepo) SumUserPlayTime(ctx context.Context, userID uint64) (int64, error) {
	return f.sumPlayTime, nil
}

func (f *fakeStatsRepo) RecomputeDerived(ctx context.Context, kind string, objectID uint64) error {
	f.recomputed = append(f.recomputed, fmt.Sprintf("%s:%d", kind, objectID))
	return nil
}

func likeKey(userID uint64, kind string, objectID uint64) string {
	return fmt.Sprintf("%d:%s:%d", userID, kind, objectID)
}

// fakeInteractionRepo 内存版互动仓储，保留真实实现的幂等语义
type fakeInteractionRepo struct {
	nextID    uint64
	likes     map[string]*model.Like
	favorites map[string]*model.Favorite

	shares      []*model.Share
	reports     []*model.Report
	reportCount int64

	plays []*model.PlayHistory
}

func newFakeInteractionRepo() *fakeInteractionRepo {
	return &fakeInteractionRepo{
		likes:     map[string]*model.Like{},
		favorites: map[string]*model.Favorite{},
	}
}

func (f *fakeInteractionRepo) UpsertLike(ctx context.Context, like *model.Like) (bool, error) {
	key := likeKey(like.UserID, like.ContentKind, like.ObjectID)
	if existing, ok := f.likes[key]; ok {
		existing.IsLike = like.IsLike
		like.ID = existing.ID
		return false, nil
	}
	f.nextID++
	like.ID = f.nextID
	stored := *like
	f.likes[key] = &stored
	return true, nil
}

func (f *fakeInteractionRepo) DeleteLike(ctx context.Context, userID uint64, kind string, objectID uint64) (int64, error) {
	key := likeKey(userID, kind, objectID)
	if _, ok := f.likes[key]; !ok {
		return 0, nil
	}
	delete(f.likes, key)
	return 1, nil
}

func (f *fakeInteractionRepo) GetLike(ctx context.Context, userID uint64, kind string, objectID uint64) (*model.Like, error) {
	like, ok := f.likes[likeKey(userID, kind, objectID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *like
	return &copied, nil
}

func (f *fakeInteractionRepo) UpsertFavorite(ctx context.Context, favorite *model.Favorite) (bool, error) {
	key := likeKey(favorite.UserID, favorite.ContentKind, favorite.ObjectID)
	if existing, ok := f.favorites[key]; ok {
		existing.FolderName = favorite.FolderName
		existing.Tags = favorite.Tags
		existing.Notes = favorite.Notes
		existing.IsPrivate = favorite.IsPrivate
		favorite.ID = existing.ID
		return false, nil
	}
	f.nextID++
	favorite.ID = f.nextID
	stored := *favorite
	f.favorites[key] = &stored
	return true, nil
}

func (f *fakeInteractionRepo) FindFavoritesByIDs(ctx context.Context, userID uint64, ids []uint64) ([]*model.Favorite, error) {
	var rows []*model.Favorite
	for _, favorite := range f.favorites {
		if favorite.UserID != userID {
			continue
		}
		for _, id := range ids {
			if favorite.ID == id {
				copied := *favorite
				rows = append(rows, &copied)
			}
		}
	}
	return rows, nil
}

func (f *fakeInteractionRepo) BatchDeleteFavorites(ctx context.Context, userID uint64, ids []uint64) (int64, error) {
	var affected int64
	for key, favorite := range f.favorites {
		if favorite.UserID != userID {
			continue
		}
		for _, id := range ids {
			if favorite.ID == id {
				delete(f.favorites, key)
				affected++
			}
		}
	}
	return affected, nil
}

func (f *fakeInteractionRepo) ListFavorites(ctx context.Context, userID uint64, folderName string, limit, offset int) ([]*model.Favorite, error) {
	var rows []*model.Favorite
	for _, favorite := range f.favorites {
		if favorite.UserID == userID && (folderName == "" || favorite.FolderName == folderName) {
			copied := *favorite
			rows = append(rows, &copied)
		}
	}
	return rows, nil
}

func (f *fakeInteractionRepo) CountFavorites(ctx context.Context, userID uint64, folderName string) (int64, error) {
	rows, _ := f.ListFavorites(ctx, userID, folderName, 0, 0)
	return int64(len(rows)), nil
}

func (f *fakeInteractionRepo) CreateShare(ctx context.Context, share *model.Share) error {
	f.nextID++
	share.ID = f.nextID
	f.shares = append(f.shares, share)
	return nil
}

func (f *fakeInteractionRepo) CreateReport(ctx context.Context, report *model.Report) error {
	f.nextID++
	report.ID = f.nextID
	f.reports = append(f.reports, report)
	return nil
}

func (f *fakeInteractionRepo) CountReports(ctx context.Context, kind string, objectID uint64) (int64, error) {
	if f.reportCount > 0 {
		return f.reportCount, nil
	}
	return int64(len(f.reports)), nil
}

func (f *fakeInteractionRepo) CreatePlayHistory(ctx context.Context, history *model.PlayHistory) error {
	f.nextID++
	history.ID = f.nextID
	f.plays = append(f.plays, history)
	return nil
}

func (f *fakeInteractionRepo) ListPlayHistory(ctx context.Context, userID uint64, limit, offset int) ([]*model.PlayHistory, error) {
	var rows []*model.PlayHistory
	for _, play := range f.plays {
		if play.UserID == userID {
			rows = append(rows, play)
		}
	}
	return rows, nil
}

func (f *fakeInteractionRepo) BatchDeletePlayHistory(ctx context.Context, userID uint64, ids []uint64) (int64, error) {
	var kept []*model.PlayHistory
	var affected int64
	for _, play := range f.plays {
		deleted := false
		if play.UserID == userID {
			for _, id := range ids {
				if play.ID == id {
					deleted = true
				}
			}
		}
		if deleted {
			affected++
		} else {
			kept = append(kept, play)
		}
	}
	f.plays = kept
	return affected, nil
}

func (f *fakeInteractionRepo) SumPlayDuration(ctx context.Context, userID uint64) (int64, error) {
	var total int64
	for _, play := range f.plays {
		if play.UserID == userID {
			total += play.PlayDuration
		}
	}
	return total, nil
}

// fakeCommentRepo 内存评论树
type fakeCommentRepo struct {
	nextID   uint64
	comments map[uint64]*model.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[uint64]*model.Comment{}}
}

func (f *fakeCommentRepo) CreateComment(ctx context.Context, comment *model.Comment) error {
	if comment.ParentID != nil {
		parent, ok := f.comments[*comment.ParentID]
		if !ok || parent.IsHidden {
			return repository.ErrParentNotFound
		}
		if parent.ContentKind != comment.ContentKind || parent.ObjectID != comment.ObjectID {
			return repository.ErrParentNotFound
		}
		parent.ReplyCount++
	}
	f.nextID++
	comment.ID = f.nextID
	stored := *comment
	f.comments[comment.ID] = &stored
	return nil
}

func (f *fakeCommentRepo) GetByID(ctx context.Context, commentID uint64) (*model.Comment, error) {
	comment, ok := f.comments[commentID]
	if !ok || comment.IsHidden {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *comment
	return &copied, nil
}

func (f *fakeCommentRepo) DeleteOwned(ctx context.Context, userID, commentID uint64) (int64, error) {
	comment, ok := f.comments[commentID]
	if !ok || comment.IsHidden || comment.UserID != userID {
		return 0, nil
	}
	comment.IsHidden = true
	return 1, nil
}

func (f *fakeCommentRepo) ListByTarget(ctx context.Context, kind string, objectID uint64, limit, offset int) ([]*model.Comment, error) {
	var rows []*model.Comment
	for _, comment := range f.comments {
		if comment.ContentKind == kind && comment.ObjectID == objectID && comment.ParentID == nil && !comment.IsHidden {
			rows = append(rows, comment)
		}
	}
	return rows, nil
}

func (f *fakeCommentRepo) ListReplies(ctx context.Context, parentID uint64, limit, offset int) ([]*model.Comment, error) {
	var rows []*model.Comment
	for _, comment := range f.comments {
		if comment.ParentID != nil && *comment.ParentID == parentID && !comment.IsHidden {
			rows = append(rows, comment)
		}
	}
	return rows, nil
}

func (f *fakeCommentRepo) CountByTarget(ctx context.Context, kind string, objectID uint64) (int64, error) {
	rows, _ := f.ListByTarget(ctx, kind, objectID, 0, 0)
	return int64(len(rows)), nil
}

// fakeModerationRepo 追加式审核流水
type fakeModerationRepo struct {
	records []*model.ContentModeration
}

func (f *fakeModerationRepo) CreateRecord(ctx context.Context, record *model.ContentModeration) error {
	record.ID = uint64(len(f.records) + 1)
	f.records = append(f.records, record)
	return nil
}

func (f *fakeModerationRepo) ListHistory(ctx context.Context, kind string, objectID uint64, limit, offset int) ([]*model.ContentModeration, error) {
	var rows []*model.ContentModeration
	for i := len(f.records) - 1; i >= 0; i-- {
		record := f.records[i]
		if record.ContentKind == kind && record.ObjectID == objectID {
			rows = append(rows, record)
		}
	}
	return rows, nil
}

func (f *fakeModerationRepo) LatestRecord(ctx context.Context, kind string, objectID uint64) (*model.ContentModeration, error) {
	for i := len(f.records) - 1; i >= 0; i-- {
		record := f.records[i]
		if record.ContentKind == kind && record.ObjectID == objectID {
			return record, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeModerationRepo) CountPendingByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	for _, record := range f.records {
		if record.Status == status {
			count++
		}
	}
	return count, nil
}

// fakeTagRepo 标签字典
type fakeTagRepo struct {
	nextID     uint64
	tags       map[string]*model.ContentTag
	attachErr  error
	attached   []*model.ContentTag
	attachment repository.TagAttachment
	listed     []*repository.ContentTagView
	detached   int64
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: map[string]*model.ContentTag{}}
}

func (f *fakeTagRepo) CreateTag(ctx context.Context, tag *model.ContentTag) (bool, error) {
	if _, ok := f.tags[tag.Name]; ok {
		return false, nil
	}
	f.nextID++
	tag.ID = f.nextID
	f.tags[tag.Name] = tag
	return true, nil
}

func (f *fakeTagRepo) GetTagByName(ctx context.Context, name string) (*model.ContentTag, error) {
	tag, ok := f.tags[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tag, nil
}

func (f *fakeTagRepo) ListTags(ctx context.Context, tagType string, limit, offset int) ([]*model.ContentTag, error) {
	var rows []*model.ContentTag
	for _, tag := range f.tags {
		if tagType == "" || tag.TagType == tagType {
			rows = append(rows, tag)
		}
	}
	return rows, nil
}

func (f *fakeTagRepo) AttachTags(ctx context.Context, kind string, objectID uint64, attachment repository.TagAttachment) ([]*model.ContentTag, error) {
	if f.attachErr != nil {
		return nil, f.attachErr
	}
	var attached []*model.ContentTag
	for _, name := range attachment.Names {
		tag, ok := f.tags[name]
		if !ok {
			return nil, repository.ErrTagMissing
		}
		attached = append(attached, tag)
	}
	f.attached = attached
	f.attachment = attachment
	return attached, nil
}

func (f *fakeTagRepo) ListByTarget(ctx context.Context, kind string, objectID uint64) ([]*repository.ContentTagView, error) {
	return f.listed, nil
}

func (f *fakeTagRepo) DetachTag(ctx context.Context, kind string, objectID uint64, tagID uint64) (int64, error) {
	return f.detached, nil
}

// fakeRecommendationRepo 曝光台账
type fakeRecommendationRepo struct {
	created         []*model.Recommendation
	resolveAffected int64
	resolveSince    time.Time
	resolveSession  string
	resolveOutcomes []string
	hasImpression   bool
	stats           []*repository.AlgorithmStats
	statsSince      time.Time
}

func (f *fakeRecommendationRepo) BatchCreate(ctx context.Context, records []*model.Recommendation) error {
	f.created = append(f.created, records...)
	return nil
}

func (f *fakeRecommendationRepo) ResolveOutcome(ctx context.Context, userID uint64, kind string, objectID uint64, sessionID, outcome string, since time.Time) (int64, error) {
	f.resolveSince = since
	f.resolveSession = sessionID
	f.resolveOutcomes = append(f.resolveOutcomes, outcome)
	return f.resolveAffected, nil
}

func (f *fakeRecommendationRepo) HasImpression(ctx context.Context, userID uint64, kind string, objectID uint64, sessionID string, since time.Time) (bool, error) {
	return f.hasImpression, nil
}

func (f *fakeRecommendationRepo) StatsByAlgorithm(ctx context.Context, since time.Time) ([]*repository.AlgorithmStats, error) {
	f.statsSince = since
	return f.stats, nil
}

func (f *fakeRecommendationRepo) ListRecent(ctx context.Context, userID uint64, limit int) ([]*model.Recommendation, error) {
	return f.created, nil
}

// fakeTrendingRepo 热点话题
type fakeTrendingRepo struct {
	upserted []*model.TrendingTopic
	active   []*model.TrendingTopic
	saved    []*model.TrendingTopic
	mentions map[string][3]int64
}

func newFakeTrendingRepo() *fakeTrendingRepo {
	return &fakeTrendingRepo{mentions: map[string][3]int64{}}
}

func (f *fakeTrendingRepo) UpsertTopic(ctx context.Context, topic *model.TrendingTopic) error {
	f.upserted = append(f.upserted, topic)
	return nil
}

func (f *fakeTrendingRepo) IncrMention(ctx context.Context, keyword string, mentions, searches, relatedNews int64) error {
	prev := f.mentions[keyword]
	f.mentions[keyword] = [3]int64{prev[0] + mentions, prev[1] + searches, prev[2] + relatedNews}
	return nil
}

func (f *fakeTrendingRepo) ListActive(ctx context.Context, limit int) ([]*model.TrendingTopic, error) {
	return f.active, nil
}

func (f *fakeTrendingRepo) ListByIDs(ctx context.Context, ids []uint64) ([]*model.TrendingTopic, error) {
	var rows []*model.TrendingTopic
	for _, id := range ids {
		for _, topic := range f.active {
			if topic.ID == id && topic.IsActive {
				rows = append(rows, topic)
			}
		}
	}
	return rows, nil
}

func (f *fakeTrendingRepo) ListAll(ctx context.Context, limit, offset int) ([]*model.TrendingTopic, error) {
	return f.active, nil
}

func (f *fakeTrendingRepo) SaveScores(ctx context.Context, topic *model.TrendingTopic) error {
	f.saved = append(f.saved, topic)
	return nil
}

func (f *fakeTrendingRepo) CountActive(ctx context.Context) (int64, error) {
	return int64(len(f.active)), nil
}

// fakeProfileRepo 用户画像
type fakeProfileRepo struct {
	profile *model.UserProfile
	saved   map[string]float64
}

func (f *fakeProfileRepo) GetOrCreate(ctx context.Context, userID uint64) (*model.UserProfile, error) {
	if f.profile == nil {
		f.profile = &model.UserProfile{ID: 1, UserID: userID, Interests: map[string]float64{}}
	}
	return f.profile, nil
}

func (f *fakeProfileRepo) SaveInterests(ctx context.Context, userID uint64, interests map[string]float64) error {
	f.saved = interests
	return nil
}

type outcomeCall struct {
	userID    uint64
	kind      string
	objectID  uint64
	sessionID string
	outcome   string
}

// fakeOutcomeRecorder 记录互动事件回流
type fakeOutcomeRecorder struct {
	calls []outcomeCall
	err   error
}

func (f *fakeOutcomeRecorder) RecordOutcome(ctx context.Context, userID uint64, kind string, objectID uint64, sessionID, outcome string) error {
	f.calls = append(f.calls, outcomeCall{userID: userID, kind: kind, objectID: objectID, sessionID: sessionID, outcome: outcome})
	return f.err
}

// fakeCandidateSource 固定候选列表
type fakeCandidateSource struct {
	candidates []Candidate
	err        error
}

func (f *fakeCandidateSource) Candidates(ctx context.Context, userID uint64, count int) ([]Candidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.candidates, nil
}

func (f *fakeCandidateSource) Name() string {
	return "fixed"
}
