package bot

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cupcycle/go-leads-backend/internal/domain"
)

func cupsApp(id int64, status domain.Status) domain.Application {
	city := "Москва"
	return domain.Application{
		ID: id, Type: domain.TypeCups, Contact: "Ivan", Phone: "79990000000",
		City: &city, Status: status,
	}
}

func TestRenderList_RowsAndSelectGrouping(t *testing.T) {
	var apps []domain.Application
	for i := int64(7); i >= 1; i-- { // newest first, as the store returns them
		apps = append(apps, cupsApp(i, domain.StatusNew))
	}

	text, kb := renderList(apps, "активные", "", 1, 20, 7)

	if !strings.Contains(text, "📋 Заявки (активные):") {
		t.Fatalf("missing heading: %q", text)
	}
	if !strings.Contains(text, "#7 [🥤] — Ivan — 🔴 новая") {
		t.Fatalf("missing list row: %q", text)
	}
	// 7 select buttons → one full row of 5 and one row of 2; fits one page
	// so no nav row.
	if len(kb.InlineKeyboard) != 2 {
		t.Fatalf("keyboard rows = %d, want 2", len(kb.InlineKeyboard))
	}
	if len(kb.InlineKeyboard[0]) != 5 || len(kb.InlineKeyboard[1]) != 2 {
		t.Fatalf("select grouping = %d,%d", len(kb.InlineKeyboard[0]), len(kb.InlineKeyboard[1]))
	}
	if got := *kb.InlineKeyboard[0][0].CallbackData; got != "select:7" {
		t.Fatalf("first select payload = %q", got)
	}
}

func TestRenderList_PaginationEdges(t *testing.T) {
	page := make([]domain.Application, 5)
	for i := range page {
		page[i] = cupsApp(int64(12-i), domain.StatusNew)
	}

	// 12 matches, page size 5 → 3 pages. Page 1: indicator + next only.
	_, kb := renderList(page, "активные", "", 1, 5, 12)
	nav := kb.InlineKeyboard[len(kb.InlineKeyboard)-1]
	if len(nav) != 2 {
		t.Fatalf("page 1 nav buttons = %d, want 2", len(nav))
	}
	if nav[0].Text != "стр. 1/3" || *nav[0].CallbackData != "noop" {
		t.Fatalf("page 1 indicator = %q/%q", nav[0].Text, *nav[0].CallbackData)
	}
	if *nav[1].CallbackData != "page:2:" {
		t.Fatalf("page 1 next payload = %q", *nav[1].CallbackData)
	}

	// Page 3 (2 rows): previous + indicator only.
	last := []domain.Application{cupsApp(2, domain.StatusNew), cupsApp(1, domain.StatusNew)}
	_, kb = renderList(last, "активные", "стаканчики", 3, 5, 12)
	nav = kb.InlineKeyboard[len(kb.InlineKeyboard)-1]
	if len(nav) != 2 {
		t.Fatalf("page 3 nav buttons = %d, want 2", len(nav))
	}
	if *nav[0].CallbackData != "page:2:стаканчики" {
		t.Fatalf("page 3 prev payload = %q", *nav[0].CallbackData)
	}
	if nav[1].Text != "стр. 3/3" {
		t.Fatalf("page 3 indicator = %q", nav[1].Text)
	}

	// Page 2: all three controls.
	_, kb = renderList(page, "активные", "", 2, 5, 12)
	nav = kb.InlineKeyboard[len(kb.InlineKeyboard)-1]
	if len(nav) != 3 {
		t.Fatalf("page 2 nav buttons = %d, want 3", len(nav))
	}
}

func TestRenderDetail_FieldsPerType(t *testing.T) {
	app := cupsApp(3, domain.StatusInProgress)
	text := renderDetail(&app)
	for _, want := range []string{"🥤 Бесплатные стаканчики", "🆔 Заявка #3", "Город: Москва", "Телефон: 79990000000", "Текущий статус: 🟡 в работе"} {
		if !strings.Contains(text, want) {
			t.Fatalf("detail missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Размер") || strings.Contains(text, "Комментарий") {
		t.Fatalf("cups detail must not show brand fields:\n%s", text)
	}

	size := "250 мл"
	brand := domain.Application{
		ID: 4, Type: domain.TypeBrand, Contact: "ООО Ромашка", Phone: "78120000000",
		Size: &size, Status: domain.StatusNew,
	}
	text = renderDetail(&brand)
	for _, want := range []string{"🏢 Заявка для бренда", "Размер: 250 мл", "Комментарий: —"} {
		if !strings.Contains(text, want) {
			t.Fatalf("brand detail missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Город") {
		t.Fatalf("brand detail must not show city:\n%s", text)
	}
}

func TestRenderDetailKeyboard_TransitionsAndBack(t *testing.T) {
	kb := renderDetailKeyboard(9)
	if len(kb.InlineKeyboard) != 4 {
		t.Fatalf("detail keyboard rows = %d, want 4", len(kb.InlineKeyboard))
	}
	want := []string{"status:9:in_progress", "status:9:rejected", "status:9:done", "back_to_list"}
	for i, w := range want {
		if got := *kb.InlineKeyboard[i][0].CallbackData; got != w {
			t.Fatalf("row %d payload = %q, want %q", i, got, w)
		}
	}
}

func TestRenderPush_NewStatusAndNoBackControl(t *testing.T) {
	app := cupsApp(11, domain.StatusDone) // status in the record is ignored for push
	text, kb := renderPush(&app)
	if !strings.Contains(text, "🆕 Заявка #11") {
		t.Fatalf("push missing new marker:\n%s", text)
	}
	if !strings.Contains(text, "Статус: 🔴 новая") {
		t.Fatalf("push must always show status new:\n%s", text)
	}
	if len(kb.InlineKeyboard) != 3 {
		t.Fatalf("push keyboard rows = %d, want 3", len(kb.InlineKeyboard))
	}
	for _, row := range kb.InlineKeyboard {
		if *row[0].CallbackData == "back_to_list" {
			t.Fatal("push keyboard must not contain back control")
		}
	}
}

func TestRenderEmptyListAndStatusChanged(t *testing.T) {
	if got := renderEmptyList("бренды"); got != "📭 Нет заявок (бренды)." {
		t.Fatalf("empty list = %q", got)
	}
	got := renderStatusChanged(5, domain.StatusDone)
	want := fmt.Sprintf("🆔 Заявка #5\nСтатус: %s", domain.StatusDone.Label())
	if got != want {
		t.Fatalf("status changed = %q, want %q", got, want)
	}
}
