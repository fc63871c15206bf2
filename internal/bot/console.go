// Package bot implements the chat-based admin console. Administrators
// browse and act on applications through a Telegram bot: list commands with
// free-text filters, per-application detail views, and inline status
// transition controls. The console holds no per-session state; everything
// needed to resume an interaction travels inside the callback payloads
// (see callback.go).
package bot

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/cupcycle/go-leads-backend/internal/filter"
	"github.com/cupcycle/go-leads-backend/internal/services"
)

const helpMessage = `👋 Привет! Я бот для управления заявками.

📋 Основные команды:
• /заявки — активные заявки (новые + в работе)
• /заявки новые — только новые
• /заявки в работе — только в работе
• /заявки завершённые — завершённые
• /заявки стаканчики — бесплатные стаканчики
• /заявки бренд — заявки от брендов

💡 После отправки заявки вы получите уведомление с кнопками для быстрого изменения статуса.`

// telegramClient is the narrow slice of the Telegram API the console
// handlers use. *tgbotapi.BotAPI satisfies it; tests substitute a fake.
type telegramClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Config carries the console's explicit configuration: no ambient globals.
type Config struct {
	// Token authenticates the bot with the Telegram API.
	Token string
	// AdminIDs is the static allow-list of administrator identities.
	// Filtered list commands and push notifications are scoped to it.
	AdminIDs []int64
	// PageSize is the number of applications per list page.
	PageSize int
}

// Console is the admin console controller. It owns the long-poll update
// loop and maps inbound commands and callback activations onto the
// application service.
type Console struct {
	api      *tgbotapi.BotAPI
	client   telegramClient
	svc      *services.ApplicationService
	admins   []int64
	pageSize int
}

// New connects to the Telegram API and returns a ready Console.
func New(cfg Config, svc *services.ApplicationService) (*Console, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}
	log.Info().Str("bot", api.Self.UserName).Msg("telegram bot authorized")

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 5
	}
	return &Console{
		api:      api,
		client:   api,
		svc:      svc,
		admins:   cfg.AdminIDs,
		pageSize: pageSize,
	}, nil
}

// Run consumes the long-poll update stream until ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	u.AllowedUpdates = []string{tgbotapi.UpdateTypeMessage, tgbotapi.UpdateTypeCallbackQuery}

	updates := c.api.GetUpdatesChan(u)
	go func() {
		<-ctx.Done()
		c.api.StopReceivingUpdates()
	}()

	for update := range updates {
		switch {
		case update.Message != nil:
			c.handleMessage(ctx, update.Message)
		case update.CallbackQuery != nil:
			c.handleCallback(ctx, update.CallbackQuery)
		}
	}
	return nil
}

// handleMessage dispatches text commands.
func (c *Console) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.Chat == nil || msg.From == nil {
		return
	}
	cmd, args, _ := strings.Cut(strings.TrimSpace(msg.Text), " ")
	// Strip a bot mention suffix like /applications@LeadsBot.
	if at := strings.IndexByte(cmd, '@'); at > 0 {
		cmd = cmd[:at]
	}
	cmd = strings.ToLower(cmd)
	args = strings.TrimSpace(args)

	switch cmd {
	case "/start":
		c.sendHelp(msg.Chat.ID)
	case "/заявки", "/applications":
		if args != "" && !c.isAdmin(msg.From.ID) {
			c.send(tgbotapi.NewMessage(msg.Chat.ID, "🚫 Доступ запрещён."))
			return
		}
		c.sendList(ctx, msg.Chat.ID, args, 1)
	}
}

// handleCallback maps a control activation back onto a stateful operation.
// Every activation is answered so the pressed button never appears stuck,
// including malformed or stale payloads.
func (c *Console) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	cb, err := DecodeCallback(query.Data)
	if err != nil || query.Message == nil {
		log.Warn().Str("data", query.Data).Msg("ignoring malformed callback")
		c.answer(query.ID, "")
		return
	}

	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID

	switch cb.Action {
	case ActionSelect:
		app, err := c.svc.Get(ctx, cb.ID)
		if err != nil {
			c.answerAlert(query.ID, "Заявка не найдена")
			return
		}
		c.editOrSend(chatID, messageID, renderDetail(app), renderDetailKeyboard(app.ID))
		c.answer(query.ID, "")

	case ActionStatus:
		app, err := c.svc.SetStatus(ctx, cb.ID, cb.Status)
		if err != nil {
			if errors.Is(err, services.ErrApplicationNotFound) {
				c.answerAlert(query.ID, "Заявка не найдена")
				return
			}
			log.Error().Err(err).Int64("id", cb.ID).Msg("status update failed")
			c.answerAlert(query.ID, "Не удалось изменить статус")
			return
		}
		// Replace the message in place with a short confirmation; the
		// plain edit drops the inline keyboard.
		c.editOrSendText(chatID, messageID, renderStatusChanged(app.ID, app.Status))
		c.answer(query.ID, "Статус изменён: "+app.Status.Label())

	case ActionPage:
		// The keyboard layout differs between pages, so the old message
		// is deleted and the new page sent fresh instead of edited.
		c.request(tgbotapi.NewDeleteMessage(chatID, messageID))
		c.sendList(ctx, chatID, cb.FilterText, cb.Page)
		c.answer(query.ID, "")

	case ActionBack:
		c.request(tgbotapi.NewDeleteMessage(chatID, messageID))
		c.sendList(ctx, chatID, "", 1)
		c.answer(query.ID, "")

	case ActionNoop:
		c.answer(query.ID, "")
	}
}

// sendList resolves filterText, fetches the requested page, and sends the
// rendered list to chatID.
func (c *Console) sendList(ctx context.Context, chatID int64, filterText string, page int) {
	resolved := filter.Resolve(filterText)

	apps, total, err := c.svc.ListPage(ctx, resolved.Filter, page, c.pageSize)
	if err != nil {
		log.Error().Err(err).Str("filter", filterText).Msg("list query failed")
		c.send(tgbotapi.NewMessage(chatID, "⚠️ Не удалось загрузить заявки, попробуйте позже."))
		return
	}
	if len(apps) == 0 {
		c.send(tgbotapi.NewMessage(chatID, renderEmptyList(resolved.Description)))
		return
	}

	text, kb := renderList(apps, resolved.Description, filterText, page, c.pageSize, total)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	c.send(msg)
}

// sendHelp sends the /start help text with a persistent reply keyboard of
// common list invocations.
func (c *Console) sendHelp(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, helpMessage)
	msg.ReplyMarkup = tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/заявки"),
			tgbotapi.NewKeyboardButton("/заявки новые"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/заявки стаканчики"),
			tgbotapi.NewKeyboardButton("/заявки бренд"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/заявки завершённые"),
			tgbotapi.NewKeyboardButton("/заявки в работе"),
		),
	)
	c.send(msg)
}

// editOrSend edits the given message in place, falling back to a fresh
// message when the edit is rejected (e.g., the message is too old).
func (c *Console) editOrSend(chatID int64, messageID int, text string, kb tgbotapi.InlineKeyboardMarkup) {
	if _, err := c.client.Send(tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, kb)); err != nil {
		log.Warn().Err(err).Int64("chat", chatID).Msg("edit rejected, sending new message")
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ReplyMarkup = kb
		c.send(msg)
	}
}

// editOrSendText is the keyboard-less variant of editOrSend, used for
// status confirmations that replace a message with plain text.
func (c *Console) editOrSendText(chatID int64, messageID int, text string) {
	if _, err := c.client.Send(tgbotapi.NewEditMessageText(chatID, messageID, text)); err != nil {
		log.Warn().Err(err).Int64("chat", chatID).Msg("edit rejected, sending new message")
		c.send(tgbotapi.NewMessage(chatID, text))
	}
}

func (c *Console) isAdmin(userID int64) bool {
	for _, id := range c.admins {
		if id == userID {
			return true
		}
	}
	return false
}

// send delivers a message, logging delivery failures instead of
// propagating them.
func (c *Console) send(m tgbotapi.Chattable) {
	if _, err := c.client.Send(m); err != nil {
		log.Error().Err(err).Msg("telegram send failed")
	}
}

// request fires a non-message API call (delete, callback answer).
func (c *Console) request(m tgbotapi.Chattable) {
	if _, err := c.client.Request(m); err != nil {
		log.Error().Err(err).Msg("telegram request failed")
	}
}

func (c *Console) answer(queryID, text string) {
	c.request(tgbotapi.NewCallback(queryID, text))
}

func (c *Console) answerAlert(queryID, text string) {
	c.request(tgbotapi.NewCallbackWithAlert(queryID, text))
}