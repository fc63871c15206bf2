// Package services – ApplicationService
//
// This file implements the ApplicationService, which owns the application
// lifecycle. It validates submissions (type discrimination plus the per-type
// required fields), nulls out the fields that do not apply to the chosen
// type, and coordinates repository operations for creation, filtered
// paginated listing, and status changes.
//
// Service-level errors (e.g., ErrApplicationNotFound) are returned for
// predictable cases so handlers and the admin console can map them to user
// facing results consistently.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/cupcycle/go-leads-backend/internal/domain"
)

// ApplicationRepo defines the repository contract required by
// ApplicationService. Implementations are responsible for persistence of
// application records.
type ApplicationRepo interface {
	// CreateApplication inserts a new row, forcing status "new", and
	// writes the generated id back into app.
	CreateApplication(ctx context.Context, db *gorm.DB, app *domain.Application) error

	// GetApplication fetches one row by id or repo.ErrNotFound.
	GetApplication(ctx context.Context, db *gorm.DB, id int64) (*domain.Application, error)

	// CountApplications returns the number of rows matching f.
	CountApplications(ctx context.Context, db *gorm.DB, f domain.Filter) (int64, error)

	// ListApplicationsPage returns matching rows, newest id first.
	ListApplicationsPage(ctx context.Context, db *gorm.DB, f domain.Filter, offset, limit int) ([]domain.Application, error)

	// ListApplications returns every row, newest id first.
	ListApplications(ctx context.Context, db *gorm.DB) ([]domain.Application, error)

	// UpdateApplicationStatus overwrites the status; no-op when id is missing.
	UpdateApplicationStatus(ctx context.Context, db *gorm.DB, id int64, status domain.Status) error
}

// SubmitInput is the raw submission payload before validation.
type SubmitInput struct {
	Type    string
	Contact string
	Phone   string
	City    string
	Size    string
	Comment string
}

// ApplicationService provides application-level operations: validated
// creation, retrieval, filtered paginated listing, and status changes.
type ApplicationService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the application repository used by this service.
	Repo ApplicationRepo
}

// NewApplicationService constructs an ApplicationService.
func NewApplicationService(db *gorm.DB, r ApplicationRepo) *ApplicationService {
	return &ApplicationService{DB: db, Repo: r}
}

// Submit validates input and persists a new application with status "new".
// Validation order follows the submission contract: type first, then the
// per-type required fields. Fields that do not apply to the chosen type are
// stored as NULL regardless of what the client sent.
func (s *ApplicationService) Submit(ctx context.Context, in SubmitInput) (*domain.Application, error) {
	typ := domain.ApplicationType(strings.TrimSpace(in.Type))
	if !typ.Valid() {
		return nil, ErrInvalidType
	}

	contact := strings.TrimSpace(in.Contact)
	phone := strings.TrimSpace(in.Phone)

	app := &domain.Application{Type: typ, Contact: contact, Phone: phone}

	switch typ {
	case domain.TypeCups:
		city := strings.TrimSpace(in.City)
		if contact == "" || city == "" || phone == "" {
			return nil, ErrMissingCupsFields
		}
		app.City = &city
	case domain.TypeBrand:
		size := strings.TrimSpace(in.Size)
		if contact == "" || phone == "" || size == "" {
			return nil, ErrMissingBrandFields
		}
		app.Size = &size
		if comment := strings.TrimSpace(in.Comment); comment != "" {
			app.Comment = &comment
		}
	}

	if err := s.Repo.CreateApplication(ctx, s.DB, app); err != nil {
		return nil, err
	}
	return app, nil
}

// Get fetches one application by id, mapping a missing row to
// ErrApplicationNotFound.
func (s *ApplicationService) Get(ctx context.Context, id int64) (*domain.Application, error) {
	app, err := s.Repo.GetApplication(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return app, nil
}

// ListPage returns a page of applications matching f plus the total match
// count. It applies defaults for invalid page/pageSize.
func (s *ApplicationService) ListPage(ctx context.Context, f domain.Filter, page, pageSize int) ([]domain.Application, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 5
	}
	offset := (page - 1) * pageSize

	total, err := s.Repo.CountApplications(ctx, s.DB, f)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Application{}, 0, nil
	}

	items, err := s.Repo.ListApplicationsPage(ctx, s.DB, f, offset, pageSize)
	return items, total, err
}

// Export returns every application, newest id first, for the external
// administrative endpoint.
func (s *ApplicationService) Export(ctx context.Context) ([]domain.Application, error) {
	return s.Repo.ListApplications(ctx, s.DB)
}

// SetStatus overwrites the status of the given application and returns the
// refreshed record. Re-applying the current status is allowed and succeeds;
// a missing id surfaces as ErrApplicationNotFound via the re-fetch.
func (s *ApplicationService) SetStatus(ctx context.Context, id int64, status domain.Status) (*domain.Application, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if err := s.Repo.UpdateApplicationStatus(ctx, s.DB, id, status); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}
