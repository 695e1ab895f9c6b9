package model

import "time"

// Favorite 收藏记录，(user_id, content_kind, object_id) 唯一，重复收藏幂等
type Favorite struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint64    `gorm:"uniqueIndex:idx_fav_user_target;not null" json:"user_id"`
	ContentKind string    `gorm:"type:varchar(20);uniqueIndex:idx_fav_user_target;not null" json:"content_kind"`
	ObjectID    uint64    `gorm:"uniqueIndex:idx_fav_user_target;not null" json:"object_id"`
	FolderName  string    `gorm:"type:varchar(100);default:默认收藏夹" json:"folder_name"`
	Tags        []string  `gorm:"type:json;serializer:json" json:"tags"`
	Notes       string    `gorm:"type:varchar(500)" json:"notes"`
	IsPrivate   bool      `gorm:"default:false" json:"is_private"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
