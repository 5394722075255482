package telegramimpl

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/insta-repost-curator/internal/telegram"
	"github.com/orgball2608/insta-repost-curator/pkg/config"
	"github.com/orgball2608/insta-repost-curator/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TelegramImpl struct {
	TgBot  *tgbotapi.BotAPI
	Logger logger.Logger
	UserID int64
}

func New(opts Opts) (*TelegramImpl, error) {
	log := opts.Logger.WithComponent("Telegram")
	cfg := opts.Config.Telegram

	if cfg.Token == "" {
		log.Info("TELEGRAM_TOKEN not set, operator notifications are disabled")
		return &TelegramImpl{Logger: log}, nil
	}

	tgBot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		log.Error("Error creating bot", "Error", err)
		return nil, err
	}

	return NewWithBot(tgBot, cfg.User, log), nil
}

// NewWithBot wraps an existing bot client.
func NewWithBot(bot *tgbotapi.BotAPI, userID int64, log logger.Logger) *TelegramImpl {
	return &TelegramImpl{
		TgBot:  bot,
		Logger: log,
		UserID: userID,
	}
}

var _ telegram.Client = (*TelegramImpl)(nil)

func (tg *TelegramImpl) SendMessageToUser(text string) error {
	if tg.TgBot == nil || tg.UserID == 0 {
		tg.Logger.Debug("Skipping operator notification")
		return nil
	}

	msg := tgbotapi.NewMessage(tg.UserID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.DisableWebPagePreview = true

	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending message to user", "userID", tg.UserID, "error", err)
		return fmt.Errorf("failed to send message: %w", err)
	}

	tg.Logger.Info("Message sent to user", "userID", tg.UserID)
	return nil
}
