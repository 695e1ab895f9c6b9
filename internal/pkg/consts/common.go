package consts

const (
	ContentStatusPublished = "published"
	ContentStatusDraft     = "draft"
	ContentStatusArchived  = "archived"
)

const (
	RoleAdmin = "ADMIN"
	RoleAudit = "AUDIT"
)

const (
	DefaultFavoriteFolder = "默认收藏夹"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

const (
	// ReportFlagThreshold 举报数达到该值时自动生成 flagged 审核记录
	ReportFlagThreshold = 10
	// PlayCompletionRate 完播判定阈值
	PlayCompletionRate = 0.9
)
