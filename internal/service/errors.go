package service

import "errors"

var (
	ErrParamInvalid       = errors.New("参数错误")
	ErrUnknownContentKind = errors.New("不支持的内容类型")
	ErrContentNotFound    = errors.New("内容不存在")
	ErrCommentNotFound    = errors.New("评论不存在")
	ErrTagNotFound        = errors.New("标签不存在")
	ErrTagExist           = errors.New("标签已存在")
	ErrActionDuplicate    = errors.New("请勿重复操作")
	ErrImpressionNotFound = errors.New("推荐记录不存在")
	ErrTopicNotFound      = errors.New("话题不存在")
	ErrForbidden          = errors.New("权限不足")
	ErrConflict           = errors.New("操作冲突，请稍后重试")
)

// ErrorMap 业务错误到响应码的映射，未登记的错误按 500 处理
var ErrorMap = map[error]int{
	ErrParamInvalid:       400,
	ErrUnknownContentKind: 404,
	ErrContentNotFound:    404,
	ErrCommentNotFound:    404,
	ErrTagNotFound:        404,
	ErrTagExist:           400,
	ErrActionDuplicate:    400,
	ErrImpressionNotFound: 404,
	ErrTopicNotFound:      404,
	ErrForbidden:          403,
	ErrConflict:           409,
}
