package handles

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"minicatalog/config"
	"minicatalog/models"
)

// GetCategories 获取分类列表（按名称升序）
func GetCategories(c *gin.Context) {
	db := config.GetDB()

	var categories []models.Category
	if err := db.Order("name ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询分类失败"})
		return
	}

	// 没有分类时返回空数组而不是null
	list := make([]gin.H, 0, len(categories))
	for _, category := range categories {
		list = append(list, gin.H{
			"id":   category.ID,
			"name": category.Name,
		})
	}

	c.JSON(http.StatusOK, list)
}

// GetVideosByCategory 获取指定分类下的视频列表（按ID降序，最新的在前）
func GetVideosByCategory(c *gin.Context) {
	db := config.GetDB()

	categoryID, err := strconv.Atoi(c.Param("category_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "分类不存在"})
		return
	}

	var category models.Category
	if err := db.First(&category, categoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "分类不存在"})
		return
	}

	var videos []models.VideoContent
	if err := db.Where("category_id = ?", category.ID).Order("id DESC").Find(&videos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询视频失败"})
		return
	}

	list := make([]gin.H, 0, len(videos))
	for _, video := range videos {
		list = append(list, gin.H{
			"id":    video.ID,
			"title": video.Title,
		})
	}

	c.JSON(http.StatusOK, list)
}

// GetVideoDetails 获取视频详情（包含完整播放地址）
func GetVideoDetails(c *gin.Context) {
	db := config.GetDB()

	videoID, err := strconv.Atoi(c.Param("video_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "视频不存在"})
		return
	}

	var video models.VideoContent
	if err := db.First(&video, videoID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "视频不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        video.ID,
		"title":     video.Title,
		"video_url": uploadURL(c, video.VideoFilename),
		"analysis":  video.Analysis,
	})
}

// GetStats 获取目录统计信息
func GetStats(c *gin.Context) {
	db := config.GetDB()

	var categoryCount, videoCount int64
	db.Model(&models.Category{}).Count(&categoryCount)
	db.Model(&models.VideoContent{}).Count(&videoCount)

	var perCategory []struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Count int64  `json:"count"`
	}
	db.Model(&models.Category{}).
		Select("categories.id, categories.name, COUNT(video_content.id) as count").
		Joins("LEFT JOIN video_content ON video_content.category_id = categories.id").
		Group("categories.id, categories.name").
		Order("categories.name ASC").
		Scan(&perCategory)

	c.JSON(http.StatusOK, gin.H{
		"categories":          categoryCount,
		"videos":              videoCount,
		"videos_per_category": perCategory,
	})
}

// uploadURL 基于当前请求构造上传文件的绝对地址
// 请求缺少Host时退回到配置的公网地址
func uploadURL(c *gin.Context, filename string) string {
	host := c.Request.Host
	if host == "" {
		base := strings.TrimRight(config.AppConfig.WebAppURL, "/")
		return base + "/uploads/" + filename
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return fmt.Sprintf("%s://%s/uploads/%s", scheme, host, filename)
}
