package coverletters

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobhunt-backend/internal/extract"
	"jobhunt-backend/internal/llm"
	"jobhunt-backend/internal/shared/server/respond"
	"jobhunt-backend/internal/shared/storage/object"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes mounts the cover letter endpoints. The generate parameter
// lets the caller wrap POST with extra middleware such as a rate limit.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, generate ...gin.HandlerFunc) {
	post := append(append([]gin.HandlerFunc{}, generate...), h.generate)
	rg.POST("/cover-letters", post...)
	rg.GET("/cover-letters", h.list)
	rg.GET("/cover-letters/:key", h.session)
	rg.GET("/cover-letters/:key/job-description", h.jobDescription)
	rg.GET("/cover-letters/:key/letter", h.letter)
	rg.GET("/cover-letters/:key/document", h.document)
}

func (h *Handler) generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set("sessionKey", "")

	res, err := h.Svc.Generate(c.Request.Context(), GenerateInput{
		JobDescription:  req.JobDescription,
		ResumeName:      strings.TrimSpace(req.Resume),
		TitleOverride:   req.Title,
		CompanyOverride: req.Company,
	})
	if err != nil {
		h.generateError(c, err)
		return
	}
	c.Set("sessionKey", res.SessionKey)
	respond.Created(c, res)
}

func (h *Handler) generateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, llm.ErrMissingAPIKey):
		respond.Error(c, http.StatusPreconditionFailed, "missing_api_key", "generation API key is not configured", nil)
	case errors.Is(err, object.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, extract.ErrNotPDF):
		respond.Error(c, http.StatusUnprocessableEntity, "invalid_resume", "stored resume is not a readable PDF", nil)
	case errors.Is(err, llm.ErrGeneration):
		respond.Error(c, http.StatusBadGateway, "generation_failed", "letter generation failed", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate cover letter", nil)
	}
}

func (h *Handler) list(c *gin.Context) {
	keys, err := h.Svc.Sessions.List()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list sessions", nil)
		return
	}
	if keys == nil {
		keys = []string{}
	}
	respond.OK(c, ListResponse{Sessions: keys})
}

func (h *Handler) session(c *gin.Context) {
	key := c.Param("key")
	names, err := h.Svc.Sessions.Artifacts(key)
	if err != nil {
		h.readError(c, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	respond.OK(c, SessionResponse{Key: key, Artifacts: names})
}

func (h *Handler) jobDescription(c *gin.Context) {
	h.textArtifact(c, JobDescriptionArtifact)
}

func (h *Handler) letter(c *gin.Context) {
	h.textArtifact(c, CoverLetterArtifact)
}

func (h *Handler) textArtifact(c *gin.Context, name string) {
	data, err := h.Svc.Sessions.Artifact(c.Param("key"), name)
	if err != nil {
		h.readError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", data)
}

func (h *Handler) document(c *gin.Context) {
	key := c.Param("key")
	names, err := h.Svc.Sessions.Artifacts(key)
	if err != nil {
		h.readError(c, err)
		return
	}
	var docName string
	for _, name := range names {
		if strings.HasSuffix(name, ".pdf") {
			docName = name
			break
		}
	}
	if docName == "" {
		h.readError(c, ErrArtifactNotFound)
		return
	}
	data, err := h.Svc.Sessions.Artifact(key, docName)
	if err != nil {
		h.readError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+docName+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *Handler) readError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
	case errors.Is(err, ErrArtifactNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "artifact not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read session", nil)
	}
}
