// Package bot Telegram机器人网关
//
// 独立于Web服务运行：/start 时回复打开小程序的按钮，
// 收到小程序 sendData() 发回的数据时原样回显，不做解析也不落库。
package bot

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	api       *tgbotapi.BotAPI
	webAppURL string
}

// Start 启动机器人，长轮询逐条处理更新（阻塞）
func Start(token, webAppURL string) error {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return err
	}

	b := &Bot{
		api:       api,
		webAppURL: strings.TrimRight(webAppURL, "/"),
	}
	log.Printf("机器人已登录: @%s", api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)

	for update := range updates {
		b.HandleUpdate(update)
	}

	return nil
}

// HandleUpdate 处理单条更新
func (b *Bot) HandleUpdate(update tgbotapi.Update) {
	msg := update.Message
	if msg == nil {
		return
	}

	switch {
	case msg.WebAppData != nil:
		b.handleWebAppData(msg)
	case msg.IsCommand():
		b.handleCommand(msg)
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.sendStartMessage(msg.Chat.ID)
	case "help":
		b.send(msg.Chat.ID, "发送 /start 打开内容目录")
	}
}

// sendStartMessage 回复带小程序按钮的欢迎消息
func (b *Bot) sendStartMessage(chatID int64) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.InlineKeyboardButton{
				Text:   "打开目录",
				WebApp: &tgbotapi.WebAppInfo{URL: b.webAppURL + "/mini-app"},
			},
		),
	)

	reply := tgbotapi.NewMessage(chatID, "你好！点击下方按钮打开内容目录。")
	reply.ReplyMarkup = keyboard
	if _, err := b.api.Send(reply); err != nil {
		log.Printf("发送欢迎消息失败: %v", err)
	}
}

// handleWebAppData 回显小程序发回的数据（原样，不解析）
func (b *Bot) handleWebAppData(msg *tgbotapi.Message) {
	b.send(msg.Chat.ID, "收到来自小程序的数据: "+msg.WebAppData.Data)
}

func (b *Bot) send(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("发送消息失败: %v", err)
	}
}
