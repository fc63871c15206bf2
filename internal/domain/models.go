// Package domain defines the persistence model for incoming applications.
// The Application type is mapped with GORM and forms the core data layer
// of the leads backend.
package domain

import "time"

// ApplicationType discriminates the two kinds of submissions the site
// accepts: free-cup requests and brand requests.
type ApplicationType string

const (
	TypeCups  ApplicationType = "cups"
	TypeBrand ApplicationType = "brand"
)

// Valid reports whether t is one of the supported application types.
func (t ApplicationType) Valid() bool {
	return t == TypeCups || t == TypeBrand
}

// Glyph returns the emoji marker used in list rows for this type.
func (t ApplicationType) Glyph() string {
	if t == TypeBrand {
		return "🏢"
	}
	return "🥤"
}

// Heading returns the display heading for this type.
func (t ApplicationType) Heading() string {
	if t == TypeBrand {
		return "🏢 Заявка для бренда"
	}
	return "🥤 Бесплатные стаканчики"
}

// Status is the lifecycle state of an application. The canonical ASCII
// values are what is persisted and what travels in callback data; Label
// renders the localized display form.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusRejected   Status = "rejected"
)

// Valid reports whether s is one of the lifecycle statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusDone, StatusRejected:
		return true
	}
	return false
}

// Label returns the emoji-decorated display label for s. Unknown values
// are rendered verbatim so stale rows still display something.
func (s Status) Label() string {
	switch s {
	case StatusNew:
		return "🔴 новая"
	case StatusInProgress:
		return "🟡 в работе"
	case StatusDone:
		return "✅ завершена"
	case StatusRejected:
		return "❌ отклонена"
	}
	return string(s)
}

// Application represents a single end-user submission of either kind,
// tracked through a status lifecycle. Exactly one of City (cups) or Size
// (brand) is meaningful, determined by Type; the non-applicable fields
// are stored as NULL.
//
// Fields:
//   - ID: auto-increment primary key, used as the external reference in
//     every chat control.
//   - Type: "cups" or "brand"; immutable after creation.
//   - Contact / Phone: required for both kinds. Phone arrives already
//     normalized to a digit string by the submitting client; the store
//     does not validate its format.
//   - City: cups only. Size and Comment: brand only (Comment optional).
//   - Status: mutated only through explicit status-change operations;
//     no automatic transitions.
//   - CreatedAt: set once at creation, immutable.
type Application struct {
	ID        int64           `json:"id"         gorm:"primaryKey;autoIncrement"`
	Type      ApplicationType `json:"type"       gorm:"type:varchar(16);not null;index:idx_app_type;index:idx_app_type_status,priority:1"`
	Contact   string          `json:"contact"    gorm:"type:varchar(255);not null"`
	Phone     string          `json:"phone"      gorm:"type:varchar(32);not null"`
	City      *string         `json:"city"       gorm:"type:varchar(255)"`
	Size      *string         `json:"size"       gorm:"type:varchar(255)"`
	Comment   *string         `json:"comment"    gorm:"type:text"`
	Status    Status          `json:"status"     gorm:"type:varchar(16);not null;default:'new';index:idx_app_status;index:idx_app_type_status,priority:2"`
	CreatedAt time.Time       `json:"created_at"`
}

// TableName returns the database table name for Application.
func (Application) TableName() string { return "applications" }
