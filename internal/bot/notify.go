package bot

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/cupcycle/go-leads-backend/internal/domain"
)

// ApplicationCreated pushes a creation notification to every configured
// admin. Dispatch is concurrent and best-effort: a failure to reach one
// admin is logged and never blocks delivery to the others or the caller.
func (c *Console) ApplicationCreated(app *domain.Application) {
	text, kb := renderPush(app)

	var wg sync.WaitGroup
	for _, adminID := range c.admins {
		wg.Add(1)
		go func(adminID int64) {
			defer wg.Done()
			msg := tgbotapi.NewMessage(adminID, text)
			msg.ReplyMarkup = kb
			if _, err := c.client.Send(msg); err != nil {
				log.Error().Err(err).
					Int64("admin", adminID).
					Int64("application", app.ID).
					Msg("admin notification failed")
			}
		}(adminID)
	}
	wg.Wait()
}
