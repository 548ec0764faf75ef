package models

import (
	"time"
)

// Category 视频分类模型
// 名称全局唯一，由数据库唯一索引兜底（避免并发下的先查后插竞争）
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`

	Videos []VideoContent `gorm:"foreignKey:CategoryID" json:"-"`
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
