/*
Package config 配置管理包

项目目录结构：
/minicatalog
├── main.go              # 程序入口，通过 --mode 选择运行模式
├── config/              # 配置相关
│   ├── config.go        # 应用配置（环境变量）
│   └── database.go      # 数据库连接和初始化
├── server/              # HTTP服务器组装
├── routes/              # 路由注册
├── handles/             # 业务逻辑处理层
│   ├── catalog_handler.go # 目录API（小程序端，只读）
│   └── admin_handler.go   # 后台管理（会话认证 + 上传）
├── middleware/          # 中间件（会话认证、CORS、请求体上限）
├── models/              # 数据库模型（Category / VideoContent）
├── storage/             # 上传文件存储（文件名清洗 + 冲突重命名）
├── bot/                 # Telegram机器人网关
└── templates/           # HTML模板（登录页、后台、小程序壳）

运行方式：
1. 服务器模式: ./minicatalog --mode=server
2. 机器人模式: ./minicatalog --mode=bot
*/
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	DatabasePath  string
	UploadPath    string
	MaxUploadSize int64

	AdminUsername string
	AdminPassword string
	SecretKey     string

	BotToken  string
	WebAppURL string
}

var AppConfig *Config

// LoadConfig 加载配置（存在 .env 文件时先加载，不存在则忽略）
func LoadConfig() {
	_ = godotenv.Load()

	AppConfig = &Config{
		ServerPort:    getEnv("PORT", "8080"),
		DatabasePath:  getEnv("DB_PATH", "catalog.db"),
		UploadPath:    getEnv("UPLOAD_PATH", "static/uploads"),
		MaxUploadSize: getEnvInt64("MAX_UPLOAD_SIZE", 500*1024*1024),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SecretKey:     os.Getenv("SECRET_KEY"),
		BotToken:      os.Getenv("TELEGRAM_BOT_TOKEN"),
		WebAppURL:     os.Getenv("WEB_APP_URL"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
