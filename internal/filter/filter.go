// Package filter resolves the free-text argument of the list command into
// a structured store predicate plus a human-readable description.
//
// Resolution is pure and total: it performs no I/O and never fails.
// Unrecognized or empty input falls back to the implicit "active" filter
// (new + in-progress applications) rather than an unbounded listing.
package filter

import (
	"strings"

	"github.com/cupcycle/go-leads-backend/internal/domain"
)

// Resolved is the outcome of parsing a raw filter string.
type Resolved struct {
	domain.Filter

	// Description is the localized label shown in list headings,
	// e.g. `стаканчики + статус "новые"` or `активные`.
	Description string
}

var typeKeywords = []struct {
	words []string
	typ   domain.ApplicationType
	label string
}{
	{[]string{"стаканчики", "cups"}, domain.TypeCups, "стаканчики"},
	{[]string{"бренд", "brand"}, domain.TypeBrand, "бренды"},
}

// Status keywords are checked in a fixed priority order; the first match
// wins. Spellings with and without ё map to the same status.
var statusKeywords = []struct {
	words  []string
	status domain.Status
	label  string
}{
	{[]string{"новые"}, domain.StatusNew, "новые"},
	{[]string{"в работе"}, domain.StatusInProgress, "в работе"},
	{[]string{"завершённые", "завершенные"}, domain.StatusDone, "завершённые"},
	{[]string{"отклонённые", "отклоненные"}, domain.StatusRejected, "отклонённые"},
}

// Resolve parses raw (case-insensitive, whitespace-insensitive) into a
// Resolved filter. Type and status keywords are matched independently by
// substring, so "бренд завершённые" constrains both dimensions.
func Resolve(raw string) Resolved {
	text := strings.ToLower(strings.TrimSpace(raw))

	var out Resolved
	var parts []string

	for _, tk := range typeKeywords {
		if containsAny(text, tk.words) {
			t := tk.typ
			out.Type = &t
			parts = append(parts, tk.label)
			break
		}
	}

	for _, sk := range statusKeywords {
		if containsAny(text, sk.words) {
			s := sk.status
			out.Status = &s
			parts = append(parts, `статус "`+sk.label+`"`)
			break
		}
	}

	if out.Type == nil && out.Status == nil {
		out.Filter = domain.ActiveFilter()
		out.Description = "активные"
		return out
	}

	out.Description = strings.Join(parts, " + ")
	return out
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
