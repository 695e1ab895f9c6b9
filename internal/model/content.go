package model

import "time"

// 内容类型，多态引用 (content_kind, object_id) 的第一维
const (
	KindArticle = "article"
	KindVideo   = "video"
	KindAudio   = "audio"
	KindNews    = "news"
	KindComment = "comment"
)

// Article 图文内容
type Article struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"type:varchar(200);not null" json:"title"`
	Summary     string     `gorm:"type:varchar(500)" json:"summary"`
	Content     string     `gorm:"type:longtext" json:"content"`
	AuthorID    uint64     `gorm:"index;not null" json:"author_id"`
	CoverURL    string     `gorm:"type:varchar(500)" json:"cover_url"`
	Status      string     `gorm:"type:varchar(20);index;default:published" json:"status"`
	PublishedAt *time.Time `gorm:"index" json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Article) TableName() string {
	return "articles"
}

// VideoContent 视频内容
type VideoContent struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"type:varchar(200);not null" json:"title"`
	Description string     `gorm:"type:varchar(1000)" json:"description"`
	AuthorID    uint64     `gorm:"index;not null" json:"author_id"`
	VideoURL    string     `gorm:"type:varchar(500)" json:"video_url"`
	CoverURL    string     `gorm:"type:varchar(500)" json:"cover_url"`
	Duration    int64      `gorm:"default:0" json:"duration"` // 秒
	Status      string     `gorm:"type:varchar(20);index;default:published" json:"status"`
	PublishedAt *time.Time `gorm:"index" json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (VideoContent) TableName() string {
	return "video_contents"
}

// AudioContent 音频内容
type AudioContent struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"type:varchar(200);not null" json:"title"`
	Description string     `gorm:"type:varchar(1000)" json:"description"`
	AuthorID    uint64     `gorm:"index;not null" json:"author_id"`
	AudioURL    string     `gorm:"type:varchar(500)" json:"audio_url"`
	CoverURL    string     `gorm:"type:varchar(500)" json:"cover_url"`
	Duration    int64      `gorm:"default:0" json:"duration"` // 秒
	Status      string     `gorm:"type:varchar(20);index;default:published" json:"status"`
	PublishedAt *time.Time `gorm:"index" json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (AudioContent) TableName() string {
	return "audio_contents"
}

// RawNews 抓取入库的资讯快报
type RawNews struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"type:varchar(300);not null" json:"title"`
	Summary     string     `gorm:"type:varchar(1000)" json:"summary"`
	Content     string     `gorm:"type:longtext" json:"content"`
	Source      string     `gorm:"type:varchar(100);index" json:"source"`
	SourceURL   string     `gorm:"type:varchar(500)" json:"source_url"`
	Category    string     `gorm:"type:varchar(50);index" json:"category"`
	Status      string     `gorm:"type:varchar(20);index;default:published" json:"status"`
	PublishedAt *time.Time `gorm:"index" json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (RawNews) TableName() string {
	return "raw_news"
}
