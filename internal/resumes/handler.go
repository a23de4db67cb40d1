package resumes

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobhunt-backend/internal/shared/server/respond"
	"jobhunt-backend/internal/shared/storage/object"
)

const maxUploadSize = 10 << 20 // 10MB

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.upload)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:name", h.download)
	rg.DELETE("/resumes/:name", h.remove)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	resume, err := h.Svc.Upload(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "resume must be a .pdf file", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store resume", nil)
		}
		return
	}
	respond.Created(c, resume)
}

func (h *Handler) list(c *gin.Context) {
	names, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", nil)
		return
	}
	if names == nil {
		names = []string{}
	}
	respond.OK(c, gin.H{"resumes": names})
}

func (h *Handler) download(c *gin.Context) {
	name := c.Param("name")
	rc, err := h.Svc.Open(c.Request.Context(), name)
	if err != nil {
		h.readError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Header("Content-Type", "application/pdf")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("name")); err != nil {
		h.readError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) readError(c *gin.Context, err error) {
	if errors.Is(err, object.ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		return
	}
	respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read resume", nil)
}
