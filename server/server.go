package server

import (
	"fmt"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"minicatalog/config"
	"minicatalog/middleware"
	"minicatalog/routes"
	"minicatalog/storage"
)

type Server struct {
	Port   string
	router *gin.Engine
}

// NewServer 创建服务器实例
func NewServer(cfg *config.Config, store storage.FileStore) *Server {
	// 设置 Gin 模式 (release/debug)
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	// 请求体上限（上传视频的总闸）
	router.Use(middleware.BodySizeLimit(cfg.MaxUploadSize))

	// 基于签名Cookie的会话（后台登录标记）
	sessionStore := cookie.NewStore([]byte(cfg.SecretKey))
	router.Use(sessions.Sessions("catalog_session", sessionStore))

	router.LoadHTMLGlob("templates/*.html")

	// 设置路由
	routes.SetupRoutes(router, store)

	return &Server{
		Port:   cfg.ServerPort,
		router: router,
	}
}

// Start 启动服务器
func (s *Server) Start() error {
	fmt.Printf("服务器启动在端口: %s\n", s.Port)
	fmt.Printf("访问地址: http://localhost:%s\n", s.Port)

	if err := s.router.Run(":" + s.Port); err != nil {
		return fmt.Errorf("服务器启动失败: %w", err)
	}

	return nil
}
