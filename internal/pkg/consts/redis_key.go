package consts

const (
	ContentLikeCountKey     = "content:like:count:"
	ContentFavoriteCountKey = "content:favorite:count:"
	ContentCommentCountKey  = "content:comment:count:"
	ContentShareCountKey    = "content:share:count:"
	ContentViewCountKey     = "content:view:count:"
	ContentReportCountKey   = "content:report:count:"
	StatsDirtyKey           = "stats:dirty"
	TrendingCurrentKey      = "trending:current"
	UserPlayTotalKey        = "user:play:total:"
)

const (
	ReportLock        = "report:lock:"
	ProfileUpdateLock = "profile:update:lock:"
)
