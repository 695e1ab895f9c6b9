package dto

// StatsQuery 内容统计查询
type StatsQuery struct {
	ContentKind string `form:"content_kind" binding:"required,oneof=article video audio news comment"`
	Days        int    `form:"days,default=7" binding:"omitempty,min=1,max=90"`
}

// NewsQuery 公开资讯列表查询
type NewsQuery struct {
	PageQuery
	Category string `form:"category" binding:"omitempty,max=50"`
}
