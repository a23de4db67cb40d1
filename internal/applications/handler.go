package applications

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jobhunt-backend/internal/shared/server/respond"
	"jobhunt-backend/internal/shared/telemetry"
)

type Handler struct {
	Repo Repo
}

func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/applications", h.create)
	rg.GET("/applications", h.list)
	rg.GET("/applications/analytics", h.analytics)
	rg.GET("/applications/:id", h.get)
	rg.PUT("/applications/:id", h.update)
	rg.DELETE("/applications/:id", h.remove)
}

func (h *Handler) create(c *gin.Context) {
	var req ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	app, err := fromRequest(req)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	app.ID = uuid.NewString()
	app.CreatedAt = time.Now().UTC()

	if err := h.Repo.Create(c.Request.Context(), app); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create application", nil)
		return
	}
	telemetry.Info("application.created", map[string]any{
		"id":      app.ID,
		"company": app.Company,
		"status":  string(app.Status),
	})
	respond.Created(c, toResponse(app))
}

func (h *Handler) list(c *gin.Context) {
	apps, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list applications", nil)
		return
	}
	out := make([]ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, toResponse(app))
	}
	respond.OK(c, gin.H{"applications": out})
}

func (h *Handler) get(c *gin.Context) {
	app, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.readError(c, err)
		return
	}
	respond.OK(c, toResponse(app))
}

func (h *Handler) update(c *gin.Context) {
	var req ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	app, err := fromRequest(req)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	existing, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.readError(c, err)
		return
	}
	app.ID = existing.ID
	app.CreatedAt = existing.CreatedAt

	if err := h.Repo.Update(c.Request.Context(), app); err != nil {
		h.readError(c, err)
		return
	}
	respond.OK(c, toResponse(app))
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.readError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) analytics(c *gin.Context) {
	a, err := ComputeAnalytics(c.Request.Context(), h.Repo)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute analytics", nil)
		return
	}
	respond.OK(c, a)
}

func (h *Handler) readError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "not_found", "application not found", nil)
		return
	}
	respond.Error(c, http.StatusInternalServerError, "internal_error", "application lookup failed", nil)
}

// fromRequest validates and converts the wire shape. A blank applied date
// defaults to today; a blank status defaults to Applied.
func fromRequest(req ApplicationRequest) (Application, error) {
	app := Application{
		Position: strings.TrimSpace(req.Position),
		Company:  strings.TrimSpace(req.Company),
		Location: strings.TrimSpace(req.Location),
		Notes:    req.Notes,
	}
	if app.Position == "" {
		return Application{}, errors.New("position is required")
	}
	if app.Company == "" {
		return Application{}, errors.New("company is required")
	}

	if s := strings.TrimSpace(req.AppliedOn); s != "" {
		d, err := time.Parse(AppliedOnLayout, s)
		if err != nil {
			return Application{}, errors.New("applied_on must use format " + AppliedOnLayout)
		}
		app.AppliedOn = d
	} else {
		now := time.Now().UTC()
		app.AppliedOn = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	status := Status(strings.TrimSpace(req.Status))
	if status == "" {
		status = StatusApplied
	}
	if !status.Valid() {
		return Application{}, errors.New("status must be one of Applied, Interviewing, Offer, Rejected")
	}
	app.Status = status
	return app, nil
}
