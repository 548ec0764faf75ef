package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"minicatalog/config"
	"minicatalog/handles"
	"minicatalog/middleware"
	"minicatalog/storage"
)

// SetupRoutes 设置路由
func SetupRoutes(r *gin.Engine, store storage.FileStore) {
	adminHandler := handles.NewAdminHandler(store)

	// 首页重定向到小程序
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/mini-app")
	})
	r.GET("/mini-app", miniApp)

	// 上传文件直接按文件名回源（内联播放，不强制下载）
	r.Static("/uploads", config.AppConfig.UploadPath)

	// ============ 公开API（小程序端，只读）============
	public := r.Group("/api")
	public.Use(middleware.CORS())
	{
		public.GET("/health", healthCheck)
		public.GET("/categories", handles.GetCategories)
		public.GET("/videos/:category_id", handles.GetVideosByCategory)
		public.GET("/video/:video_id", handles.GetVideoDetails)
		public.GET("/stats", handles.GetStats)
	}

	// ============ 后台（会话认证）============
	r.GET("/admin/login", adminHandler.ShowLogin)
	r.POST("/admin/login", adminHandler.Login)
	r.GET("/admin/logout", adminHandler.Logout)

	admin := r.Group("/admin")
	admin.Use(middleware.AdminAuth())
	{
		admin.GET("", adminHandler.Dashboard)
		admin.POST("", adminHandler.Dashboard)
		admin.POST("/add_category", adminHandler.AddCategory)
		admin.POST("/add_video", adminHandler.AddVideo)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Server is running",
	})
}

func miniApp(c *gin.Context) {
	c.HTML(http.StatusOK, "mini_app.html", gin.H{})
}
