package main

import (
	"flag"
	"log"

	"minicatalog/bot"
	"minicatalog/config"
	"minicatalog/server"
	"minicatalog/storage"
)

func main() {
	mode := flag.String("mode", "server", "运行模式: server | bot")
	flag.Parse()

	config.LoadConfig()

	switch *mode {
	case "server":
		runServer()
	case "bot":
		runBot()
	default:
		log.Fatalf("未知的运行模式: %s", *mode)
	}
}

func runServer() {
	cfg := config.AppConfig

	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Println("⚠️ 未配置 ADMIN_USERNAME / ADMIN_PASSWORD，后台将无法登录")
	}
	if cfg.SecretKey == "" {
		log.Println("⚠️ 未配置 SECRET_KEY，会话签名不安全")
	}

	if err := config.InitDatabase(cfg.DatabasePath); err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	store, err := storage.NewDirStore(cfg.UploadPath)
	if err != nil {
		log.Fatalf("初始化上传目录失败: %v", err)
	}

	srv := server.NewServer(cfg, store)
	if err := srv.Start(); err != nil {
		log.Fatal(err)
	}
}

func runBot() {
	cfg := config.AppConfig

	// 机器人缺少必要配置时直接退出
	if cfg.BotToken == "" || cfg.WebAppURL == "" {
		log.Fatal("必须配置 TELEGRAM_BOT_TOKEN 和 WEB_APP_URL")
	}

	if err := bot.Start(cfg.BotToken, cfg.WebAppURL); err != nil {
		log.Fatalf("机器人启动失败: %v", err)
	}
}
