// Package repo implements the data persistence layer for applications,
// backed by GORM. This file provides repository functions for the
// Application model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When an application is not found, GetApplication returns
//     gorm.ErrRecordNotFound (also exported here as ErrNotFound).
//   - UpdateApplicationStatus is deliberately a no-op when the id does not
//     exist; callers detect nonexistence by re-fetching.
//   - On other DB errors the raw gorm error is propagated.
//
// Filters are composed with parameterized Where clauses only; user-derived
// text never reaches the query string.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/cupcycle/go-leads-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateApplication inserts a new application row. Status is forced to
// "new" and CreatedAt to the current UTC time regardless of what the
// caller set; the generated id is written back into app.
func CreateApplication(ctx context.Context, db *gorm.DB, app *domain.Application) error {
	app.ID = 0
	app.Status = domain.StatusNew
	app.CreatedAt = time.Now().UTC()
	return db.WithContext(ctx).Create(app).Error
}

// GetApplication fetches a single application by id, or ErrNotFound.
func GetApplication(ctx context.Context, db *gorm.DB, id int64) (*domain.Application, error) {
	var app domain.Application
	if err := db.WithContext(ctx).Where("id = ?", id).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// CountApplications returns the number of rows matching f.
func CountApplications(ctx context.Context, db *gorm.DB, f domain.Filter) (int64, error) {
	var total int64
	err := applyFilter(db.WithContext(ctx).Model(&domain.Application{}), f).
		Count(&total).Error
	return total, err
}

// ListApplicationsPage returns rows matching f ordered by id descending
// (most recent first), skipping offset and bounded by limit.
func ListApplicationsPage(ctx context.Context, db *gorm.DB, f domain.Filter, offset, limit int) ([]domain.Application, error) {
	var out []domain.Application
	err := applyFilter(db.WithContext(ctx), f).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// ListApplications returns every application, newest id first. Used by the
// administrative export endpoint; no filter, no pagination.
func ListApplications(ctx context.Context, db *gorm.DB) ([]domain.Application, error) {
	var out []domain.Application
	err := db.WithContext(ctx).Order("id DESC").Find(&out).Error
	return out, err
}

// UpdateApplicationStatus unconditionally overwrites the status of the
// given id. A missing id is not an error: zero rows are affected and the
// caller's subsequent re-fetch surfaces ErrNotFound.
func UpdateApplicationStatus(ctx context.Context, db *gorm.DB, id int64, status domain.Status) error {
	return db.WithContext(ctx).
		Model(&domain.Application{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Store adapts the package's free functions to the repository interface
// shape expected by the service layer, so callers can inject it without
// re-declaring per-call shims.
type Store struct{}

func (Store) CreateApplication(ctx context.Context, db *gorm.DB, app *domain.Application) error {
	return CreateApplication(ctx, db, app)
}

func (Store) GetApplication(ctx context.Context, db *gorm.DB, id int64) (*domain.Application, error) {
	return GetApplication(ctx, db, id)
}

func (Store) CountApplications(ctx context.Context, db *gorm.DB, f domain.Filter) (int64, error) {
	return CountApplications(ctx, db, f)
}

func (Store) ListApplicationsPage(ctx context.Context, db *gorm.DB, f domain.Filter, offset, limit int) ([]domain.Application, error) {
	return ListApplicationsPage(ctx, db, f, offset, limit)
}

func (Store) ListApplications(ctx context.Context, db *gorm.DB) ([]domain.Application, error) {
	return ListApplications(ctx, db)
}

func (Store) UpdateApplicationStatus(ctx context.Context, db *gorm.DB, id int64, status domain.Status) error {
	return UpdateApplicationStatus(ctx, db, id, status)
}

// applyFilter composes the optional constraints of f onto q. Status and
// Statuses are not expected to be set together; when both are, the single
// equality wins.
func applyFilter(q *gorm.DB, f domain.Filter) *gorm.DB {
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	switch {
	case f.Status != nil:
		q = q.Where("status = ?", *f.Status)
	case len(f.Statuses) > 0:
		q = q.Where("status IN ?", f.Statuses)
	}
	return q
}
