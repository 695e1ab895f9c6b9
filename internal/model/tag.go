package model

import "time"

// 标签类型
const (
	TagTypeTopic    = "topic"
	TagTypeCategory = "category"
	TagTypeKeyword  = "keyword"
	TagTypeEmotion  = "emotion"
	TagTypeRegion   = "region"
	TagTypePerson   = "person"
	TagTypeOrg      = "organization"
	TagTypeEvent    = "event"
	TagTypeCustom   = "custom"
)

// ContentTag 标签字典，name 全局唯一，usage_count 只随新建关联自增
type ContentTag struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	TagType         string    `gorm:"type:varchar(20);index;default:keyword" json:"tag_type"`
	Description     string    `gorm:"type:varchar(200)" json:"description"`
	UsageCount      int64     `gorm:"default:0" json:"usage_count"`
	PopularityScore float64   `gorm:"default:0" json:"popularity_score"`
	TrendingScore   float64   `gorm:"default:0" json:"trending_score"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (ContentTag) TableName() string {
	return "content_tags"
}

// ContentTagRelation 内容-标签关联，(content_kind, object_id, tag_id) 唯一
type ContentTagRelation struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ContentKind  string    `gorm:"type:varchar(20);uniqueIndex:idx_tag_rel;not null" json:"content_kind"`
	ObjectID     uint64    `gorm:"uniqueIndex:idx_tag_rel;not null" json:"object_id"`
	TagID        uint64    `gorm:"uniqueIndex:idx_tag_rel;index;not null" json:"tag_id"`
	Relevance    float64   `gorm:"default:1" json:"relevance"`
	Confidence   float64   `gorm:"default:1" json:"confidence"`
	IsAutoTagged bool      `gorm:"default:false" json:"is_auto_tagged"`
	TaggedBy     uint64    `gorm:"default:0" json:"tagged_by"`
	CreatedAt    time.Time `json:"created_at"`
}

func (ContentTagRelation) TableName() string {
	return "content_tag_relations"
}
