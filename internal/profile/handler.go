package profile

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

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
	rg.GET("/profile", h.get)
	rg.PUT("/profile", h.put)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.Repo.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// An unset profile reads back empty rather than erroring; the
			// frontend treats it as a blank form.
			respond.OK(c, Profile{WorkExperience: []WorkExperience{}})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load profile", nil)
		return
	}
	if p.WorkExperience == nil {
		p.WorkExperience = []WorkExperience{}
	}
	respond.OK(c, p)
}

func (h *Handler) put(c *gin.Context) {
	var p Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid profile payload", nil)
		return
	}
	if issues := validateDates(p.WorkExperience); len(issues) > 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid work experience dates", issues)
		return
	}
	p.Normalize()
	p.UpdatedAt = time.Now().UTC()
	if err := h.Repo.Save(c.Request.Context(), p); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save profile", nil)
		return
	}
	telemetry.Info("profile.saved", map[string]any{
		"experience_count": len(p.WorkExperience),
	})
	if p.WorkExperience == nil {
		p.WorkExperience = []WorkExperience{}
	}
	respond.OK(c, p)
}

// validateDates checks that non-empty dates parse in the display layout.
// Empty dates are allowed; "Present" is allowed as an end date.
func validateDates(exps []WorkExperience) []map[string]string {
	var issues []map[string]string
	for i, exp := range exps {
		if !validDate(exp.StartDate, false) {
			issues = append(issues, map[string]string{
				"field": "work_experience[" + strconv.Itoa(i) + "].start_date",
				"issue": "expected format " + DateLayout,
			})
		}
		if !validDate(exp.EndDate, true) {
			issues = append(issues, map[string]string{
				"field": "work_experience[" + strconv.Itoa(i) + "].end_date",
				"issue": "expected format " + DateLayout + " or " + PresentMarker,
			})
		}
	}
	return issues
}

func validDate(s string, allowPresent bool) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	if allowPresent && strings.EqualFold(s, PresentMarker) {
		return true
	}
	if _, err := time.Parse(DateLayout, s); err == nil {
		return true
	}
	// Tolerate single-digit days, e.g. "Jan 2, 2006".
	_, err := time.Parse("Jan 2, 2006", s)
	return err == nil
}
