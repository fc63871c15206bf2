// Application HTTP handlers.
//
// This file exposes the public submission endpoint and the administrative
// export endpoint:
//   - POST /api/submit        (create application from the site form)
//   - GET  /api/applications  (full export, newest first)
//   - GET  /test              (liveness probe)
//
// Handlers are transport-thin: they validate input, call the application
// service, and translate results into HTTP responses. A successful
// submission additionally fans out a notification to the admin console
// without blocking the response.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cupcycle/go-leads-backend/internal/domain"
	"github.com/cupcycle/go-leads-backend/internal/http/middleware"
	"github.com/cupcycle/go-leads-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// ApplicationService defines the application lifecycle operations consumed
// by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ApplicationService interface {
	// Submit validates a raw submission and persists a new application.
	Submit(ctx context.Context, in services.SubmitInput) (*domain.Application, error)
	// Export returns every application, newest first.
	Export(ctx context.Context) ([]domain.Application, error)
}

// Notifier receives freshly created applications for out-of-band delivery
// (the Telegram admin console). Implementations must never block the caller
// for long and must swallow delivery errors.
type Notifier interface {
	ApplicationCreated(app *domain.Application)
}

// NopNotifier is a Notifier that discards notifications. Used when the
// admin console is not configured.
type NopNotifier struct{}

// ApplicationCreated implements Notifier.
func (NopNotifier) ApplicationCreated(*domain.Application) {}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints of the application store.
type Handlers struct {
	appSvc   ApplicationService
	notifier Notifier
}

// New constructs a Handlers instance bound to the given service and
// notifier. A nil notifier is replaced with NopNotifier.
func New(appSvc ApplicationService, notifier Notifier) *Handlers {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Handlers{appSvc: appSvc, notifier: notifier}
}

//
// DTOs
//

// SubmitRequest is the JSON payload accepted by POST /api/submit. All
// fields are optional at the transport level; the service enforces the
// per-type required set.
type SubmitRequest struct {
	// Type discriminates the submission: "cups" or "brand".
	Type string `json:"type"`
	// Contact is the applicant's name or contact person.
	Contact string `json:"contact"`
	// Phone is the callback phone number.
	Phone string `json:"phone"`
	// City is the delivery city (cups only).
	City string `json:"city,omitempty"`
	// Size is the requested print run or batch size (brand only).
	Size string `json:"size,omitempty"`
	// Comment is an optional free-form note (brand only).
	Comment string `json:"comment,omitempty"`
}

// SubmitResponse is the success payload of POST /api/submit.
type SubmitResponse struct {
	OK bool `json:"ok"`
}

//
// Endpoints
//

// SubmitApplication handles POST /api/submit.
//
// Validation failures map to 400 with a stable error code the front-end
// branches on; storage failures map to 500 "save_error". On success the new
// application is pushed to the admin console asynchronously and the client
// receives {"ok":true}.
func (h *Handlers) SubmitApplication(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	app, err := h.appSvc.Submit(c.Request.Context(), services.SubmitInput{
		Type:    req.Type,
		Contact: req.Contact,
		Phone:   req.Phone,
		City:    req.City,
		Size:    req.Size,
		Comment: req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidType):
			fail(c, http.StatusBadRequest, ErrCodeInvalidType, err.Error())
		case errors.Is(err, services.ErrMissingCupsFields),
			errors.Is(err, services.ErrMissingBrandFields):
			fail(c, http.StatusBadRequest, ErrCodeMissingFields, err.Error())
		default:
			middleware.LoggerFrom(c).Error().Err(err).Msg("submit failed")
			fail(c, http.StatusInternalServerError, ErrCodeSaveError, "could not save application")
		}
		return
	}

	go h.notifier.ApplicationCreated(app)

	c.JSON(http.StatusOK, SubmitResponse{OK: true})
}

// ListApplications handles GET /api/applications: the full set of
// applications, newest first, as a JSON array.
func (h *Handlers) ListApplications(c *gin.Context) {
	apps, err := h.appSvc.Export(c.Request.Context())
	if err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("export failed")
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "could not list applications")
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Liveness handles GET /test, the minimal liveness probe.
func (h *Handlers) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, SubmitResponse{OK: true})
}
