package models

import (
	"time"
)

// VideoContent 视频内容模型
type VideoContent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// 标题，必填
	Title string `gorm:"size:200;not null" json:"title"`

	// 文件仓库中的实际文件名（上传时已做清洗和冲突重命名）
	VideoFilename string `gorm:"size:200;not null" json:"video_filename"`

	// 文字解析，可为空
	Analysis string `gorm:"type:text" json:"analysis"`

	// 所属分类
	CategoryID uint      `gorm:"index;not null" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// TableName 指定表名
func (VideoContent) TableName() string {
	return "video_content"
}
