package filter

import (
	"testing"

	"github.com/cupcycle/go-leads-backend/internal/domain"
)

func TestResolve_EmptyYieldsActiveDefault(t *testing.T) {
	got := Resolve("")
	if got.Type != nil || got.Status != nil {
		t.Fatalf("empty input must not constrain type/status: %+v", got)
	}
	if len(got.Statuses) != 2 ||
		got.Statuses[0] != domain.StatusNew ||
		got.Statuses[1] != domain.StatusInProgress {
		t.Fatalf("expected active status set, got %v", got.Statuses)
	}
	if got.Description != "активные" {
		t.Fatalf("description = %q", got.Description)
	}
}

func TestResolve_UnrecognizedYieldsActiveDefault(t *testing.T) {
	got := Resolve("что-то непонятное")
	if got.Type != nil || got.Status != nil || len(got.Statuses) != 2 {
		t.Fatalf("unrecognized input must fall back to active default: %+v", got)
	}
}

func TestResolve_TypeKeywords(t *testing.T) {
	for raw, want := range map[string]domain.ApplicationType{
		"стаканчики": domain.TypeCups,
		"cups":       domain.TypeCups,
		"бренд":      domain.TypeBrand,
		"brand":      domain.TypeBrand,
		"БРЕНД":      domain.TypeBrand, // case-insensitive
	} {
		got := Resolve(raw)
		if got.Type == nil || *got.Type != want {
			t.Fatalf("Resolve(%q): type = %v, want %v", raw, got.Type, want)
		}
		if got.Status != nil || len(got.Statuses) != 0 {
			t.Fatalf("Resolve(%q): unexpected status constraint", raw)
		}
	}
}

func TestResolve_StatusKeywordsAndDiacriticVariants(t *testing.T) {
	for raw, want := range map[string]domain.Status{
		"новые":       domain.StatusNew,
		"в работе":    domain.StatusInProgress,
		"завершённые": domain.StatusDone,
		"завершенные": domain.StatusDone, // е spelling
		"отклонённые": domain.StatusRejected,
		"отклоненные": domain.StatusRejected,
	} {
		got := Resolve(raw)
		if got.Status == nil || *got.Status != want {
			t.Fatalf("Resolve(%q): status = %v, want %v", raw, got.Status, want)
		}
	}
}

func TestResolve_CombinedTypeAndStatus(t *testing.T) {
	for _, raw := range []string{"бренд завершённые", "бренд завершенные"} {
		got := Resolve(raw)
		if got.Type == nil || *got.Type != domain.TypeBrand {
			t.Fatalf("Resolve(%q): type = %v", raw, got.Type)
		}
		if got.Status == nil || *got.Status != domain.StatusDone {
			t.Fatalf("Resolve(%q): status = %v", raw, got.Status)
		}
		if got.Description != `бренды + статус "завершённые"` {
			t.Fatalf("Resolve(%q): description = %q", raw, got.Description)
		}
	}
}

func TestResolve_StatusPriorityOrder(t *testing.T) {
	// "новые" wins over later keywords when several appear.
	got := Resolve("новые отклонённые")
	if got.Status == nil || *got.Status != domain.StatusNew {
		t.Fatalf("expected first-match priority, got %v", got.Status)
	}
}
