package dto

// CreateTagReq 新建标签
type CreateTagReq struct {
	Name        string `json:"name" binding:"required,min=1,max=50"`
	TagType     string `json:"tag_type" binding:"omitempty,oneof=topic category keyword emotion region person organization event custom"`
	Description string `json:"description" binding:"omitempty,max=200"`
}

// AttachTagsReq 内容打标，分数缺省按 1 处理
type AttachTagsReq struct {
	ContentRefDTO
	Names        []string `json:"names" binding:"required,min=1,max=20"`
	Relevance    float64  `json:"relevance" binding:"omitempty,min=0,max=1"`
	Confidence   float64  `json:"confidence" binding:"omitempty,min=0,max=1"`
	IsAutoTagged bool     `json:"is_auto_tagged"`
}

// TagDTO 标签
type TagDTO struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	TagType    string `json:"tag_type"`
	UsageCount int64  `json:"usage_count"`
}

// TaggedTagDTO 标签及其在具体内容上的关联属性
type TaggedTagDTO struct {
	ID           uint64  `json:"id"`
	Name         string  `json:"name"`
	TagType      string  `json:"tag_type"`
	UsageCount   int64   `json:"usage_count"`
	Relevance    float64 `json:"relevance"`
	Confidence   float64 `json:"confidence"`
	IsAutoTagged bool    `json:"is_auto_tagged"`
	TaggedBy     uint64  `json:"tagged_by"`
}
