package dto

// Response 统一响应封装
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// PageResult 分页响应体
type PageResult struct {
	List  interface{} `json:"list"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Size  int         `json:"size"`
}

// ContentRefDTO 多态内容引用
type ContentRefDTO struct {
	ContentKind string `json:"content_kind" form:"content_kind" binding:"required,oneof=article video audio news comment"`
	ObjectID    uint64 `json:"object_id" form:"object_id" binding:"required,min=1"`
}

// PageQuery 通用分页参数
type PageQuery struct {
	Page     int `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}
