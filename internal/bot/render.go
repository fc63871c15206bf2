// Message rendering for the admin console. Everything here is pure: given
// application records and a pagination cursor, these functions produce the
// outbound text plus the inline keyboard whose callback data encodes the
// state needed to resume the interaction later.
package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/cupcycle/go-leads-backend/internal/domain"
)

// selectButtonsPerRow is how many per-application select buttons share one
// keyboard row in list views.
const selectButtonsPerRow = 5

// renderList produces the list-view text and keyboard for one page of
// applications. description labels the active filter, filterText is the raw
// argument re-encoded into the page controls, and total is the full match
// count used to decide whether prev/next controls appear.
func renderList(apps []domain.Application, description, filterText string, page, pageSize int, total int64) (string, tgbotapi.InlineKeyboardMarkup) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📋 Заявки (%s):\n\n", description)
	for _, app := range apps {
		fmt.Fprintf(&sb, "#%d [%s] — %s — %s\n", app.ID, app.Type.Glyph(), app.Contact, app.Status.Label())
	}
	sb.WriteString("\n👉 Нажмите на номер заявки для изменения:")

	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, app := range apps {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("#%d", app.ID),
			Callback{Action: ActionSelect, ID: app.ID}.Encode(),
		))
		if len(row) == selectButtonsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	if nav := navRow(page, pageSize, total, filterText); nav != nil {
		rows = append(rows, nav)
	}

	return sb.String(), tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// navRow builds the previous/indicator/next control row, or nil when the
// result fits on a single page. Previous appears only on page > 1, next
// only below the last page.
func navRow(page, pageSize int, total int64, filterText string) []tgbotapi.InlineKeyboardButton {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages <= 1 {
		return nil
	}

	var nav []tgbotapi.InlineKeyboardButton
	if page > 1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(
			"⬅️",
			Callback{Action: ActionPage, Page: page - 1, FilterText: filterText}.Encode(),
		))
	}
	nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(
		fmt.Sprintf("стр. %d/%d", page, totalPages),
		Callback{Action: ActionNoop}.Encode(),
	))
	if page < totalPages {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(
			"➡️",
			Callback{Action: ActionPage, Page: page + 1, FilterText: filterText}.Encode(),
		))
	}
	return nav
}

// renderEmptyList is the message sent when no application matches the filter.
func renderEmptyList(description string) string {
	return fmt.Sprintf("📭 Нет заявок (%s).", description)
}

// renderDetail produces the full-field detail text for one application.
// Which fields appear follows the type invariant: city for cups, size and
// comment for brand.
func renderDetail(app *domain.Application) string {
	var sb strings.Builder
	sb.WriteString(app.Type.Heading())
	fmt.Fprintf(&sb, "\n🆔 Заявка #%d", app.ID)
	fmt.Fprintf(&sb, "\nКонтакт: %s", app.Contact)
	if app.Type == domain.TypeCups {
		fmt.Fprintf(&sb, "\nГород: %s", deref(app.City))
	}
	fmt.Fprintf(&sb, "\nТелефон: %s", app.Phone)
	if app.Type == domain.TypeBrand {
		fmt.Fprintf(&sb, "\nРазмер: %s", deref(app.Size))
		fmt.Fprintf(&sb, "\nКомментарий: %s", deref(app.Comment))
	}
	fmt.Fprintf(&sb, "\n\nТекущий статус: %s", app.Status.Label())
	return sb.String()
}

// statusRows are the transition controls. All three transitions are offered
// unconditionally, including re-applying the current status.
func statusRows(id int64) [][]tgbotapi.InlineKeyboardButton {
	return [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			"✅ В работе", Callback{Action: ActionStatus, ID: id, Status: domain.StatusInProgress}.Encode())),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			"❌ Отклонена", Callback{Action: ActionStatus, ID: id, Status: domain.StatusRejected}.Encode())),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			"✔️ Завершена", Callback{Action: ActionStatus, ID: id, Status: domain.StatusDone}.Encode())),
	}
}

// renderDetailKeyboard is the detail-view keyboard: status transitions plus
// the back-to-list control.
func renderDetailKeyboard(id int64) tgbotapi.InlineKeyboardMarkup {
	rows := statusRows(id)
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
		"⬅️ Назад к списку", Callback{Action: ActionBack}.Encode())))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// renderPush produces the creation notification pushed to every admin:
// the detail rendering with a 🆕 marker, plus the status transition
// keyboard (no back control, since there is no list to return to).
func renderPush(app *domain.Application) (string, tgbotapi.InlineKeyboardMarkup) {
	var sb strings.Builder
	sb.WriteString(app.Type.Heading())
	fmt.Fprintf(&sb, "\n🆕 Заявка #%d", app.ID)
	fmt.Fprintf(&sb, "\nКонтакт: %s", app.Contact)
	if app.Type == domain.TypeCups {
		fmt.Fprintf(&sb, "\nГород: %s", deref(app.City))
	}
	fmt.Fprintf(&sb, "\nТелефон: %s", app.Phone)
	if app.Type == domain.TypeBrand {
		fmt.Fprintf(&sb, "\nРазмер: %s", deref(app.Size))
		fmt.Fprintf(&sb, "\nКомментарий: %s", deref(app.Comment))
	}
	fmt.Fprintf(&sb, "\nСтатус: %s", domain.StatusNew.Label())
	return sb.String(), tgbotapi.NewInlineKeyboardMarkup(statusRows(app.ID)...)
}

// renderStatusChanged is the in-place replacement for a message whose
// application just changed status.
func renderStatusChanged(id int64, status domain.Status) string {
	return fmt.Sprintf("🆔 Заявка #%d\nСтатус: %s", id, status.Label())
}

func deref(s *string) string {
	if s == nil || *s == "" {
		return "—"
	}
	return *s
}
